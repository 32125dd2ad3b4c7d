package handler

import (
	"context"

	"github.com/sirupsen/logrus"

	"clinic-crm/internal/drafts"
	"clinic-crm/internal/rpc"
)

func draftKey(owner, kind, key string) (drafts.Kind, error) {
	k := drafts.Kind(kind)
	if err := drafts.Validate(owner, k, key); err != nil {
		return "", invalid(err.Error())
	}
	return k, nil
}

func (h *Handler) PutDraft(ctx context.Context, req *rpc.Draft) (*rpc.Draft, error) {
	owner, err := uid(ctx)
	if err != nil {
		return nil, err
	}
	kind, err := draftKey(owner, req.Kind, req.Key)
	if err != nil {
		return nil, err
	}
	rec := drafts.Record{Owner: owner, Kind: kind, Key: req.Key, Value: req.Value, UpdatedAt: h.now()}
	if err := h.drafts.Put(ctx, rec); err != nil {
		return nil, h.storeErr(err, logrus.Fields{"user_id": owner, "kind": kind})
	}
	return &rpc.Draft{Kind: req.Kind, Key: req.Key, Value: req.Value, UpdatedAt: rec.UpdatedAt}, nil
}

func (h *Handler) GetDraft(ctx context.Context, req *rpc.DraftKey) (*rpc.Draft, error) {
	owner, err := uid(ctx)
	if err != nil {
		return nil, err
	}
	kind, err := draftKey(owner, req.Kind, req.Key)
	if err != nil {
		return nil, err
	}
	rec, err := h.drafts.Get(ctx, owner, kind, req.Key)
	if err != nil {
		return nil, h.storeErr(err, logrus.Fields{"user_id": owner, "kind": kind})
	}
	return &rpc.Draft{Kind: string(rec.Kind), Key: rec.Key, Value: rec.Value, UpdatedAt: rec.UpdatedAt}, nil
}

func (h *Handler) DeleteDraft(ctx context.Context, req *rpc.DraftKey) (*rpc.Empty, error) {
	owner, err := uid(ctx)
	if err != nil {
		return nil, err
	}
	kind, err := draftKey(owner, req.Kind, req.Key)
	if err != nil {
		return nil, err
	}
	if err := h.drafts.Delete(ctx, owner, kind, req.Key); err != nil {
		return nil, h.storeErr(err, logrus.Fields{"user_id": owner, "kind": kind})
	}
	return &rpc.Empty{}, nil
}
