package handler

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"clinic-crm/internal/mailbox"
	"clinic-crm/internal/model"
	"clinic-crm/internal/rpc"
)

func folderOrInbox(f model.Folder) (model.Folder, error) {
	if f == "" {
		return model.FolderInbox, nil
	}
	if !f.Valid() {
		return "", invalid(fmt.Sprintf("unknown folder %q", f))
	}
	return f, nil
}

func (h *Handler) ownedEmail(owner, id string) (model.Email, error) {
	if id == "" {
		return model.Email{}, invalid("id required")
	}
	e, err := h.store.Emails.Get(id)
	if err != nil || e.OwnerID != owner {
		return model.Email{}, status.Error(codes.NotFound, "email not found")
	}
	return e, nil
}

// SaveEmail stores a message in the caller's mailbox, creating it when the
// ID is empty or unknown.
func (h *Handler) SaveEmail(ctx context.Context, req *rpc.Email) (*rpc.Email, error) {
	owner, err := uid(ctx)
	if err != nil {
		return nil, err
	}
	e := model.Email(*req)
	if e.Folder, err = folderOrInbox(e.Folder); err != nil {
		return nil, err
	}
	if e.ID == "" {
		e.ID = uuid.New().String()
	} else if cur, err := h.store.Emails.Get(e.ID); err == nil && cur.OwnerID != owner {
		return nil, status.Error(codes.NotFound, "email not found")
	}
	e.OwnerID = owner
	if e.Date.IsZero() {
		e.Date = h.now()
	}
	if _, err := h.store.Emails.Upsert(e); err != nil {
		return nil, h.storeErr(err, logrus.Fields{"email_id": e.ID})
	}
	out := rpc.Email(e)
	return &out, nil
}

func (h *Handler) UpdateEmail(ctx context.Context, req *rpc.EmailUpdate) (*rpc.Email, error) {
	owner, err := uid(ctx)
	if err != nil {
		return nil, err
	}
	e, err := h.ownedEmail(owner, req.ID)
	if err != nil {
		return nil, err
	}
	if req.Read != nil {
		e.Read = *req.Read
	}
	if req.Starred != nil {
		e.Starred = *req.Starred
	}
	if req.Folder != "" {
		if !req.Folder.Valid() {
			return nil, invalid(fmt.Sprintf("unknown folder %q", req.Folder))
		}
		e.Folder = req.Folder
	}
	if err := h.store.Emails.Update(e); err != nil {
		return nil, h.storeErr(err, logrus.Fields{"email_id": e.ID})
	}
	out := rpc.Email(e)
	return &out, nil
}

// ListEmails returns one folder's visible messages along with the unread
// badge for every folder and every label in the mailbox.
func (h *Handler) ListEmails(ctx context.Context, req *rpc.EmailQuery) (*rpc.EmailListResponse, error) {
	owner, err := uid(ctx)
	if err != nil {
		return nil, err
	}
	folder, err := folderOrInbox(req.Folder)
	if err != nil {
		return nil, err
	}
	mine := h.store.Emails.Find(func(e model.Email) bool { return e.OwnerID == owner })

	visible := mailbox.Sort(mailbox.Filter(mine, folder, req.Query, req.Chips), mailbox.SortOption(req.Sort))
	resp := &rpc.EmailListResponse{
		Emails: make([]rpc.Email, len(visible)),
		Labels: mailbox.AllLabels(mine),
	}
	for i, e := range visible {
		resp.Emails[i] = rpc.Email(e)
	}
	counts := mailbox.UnreadCounts(mine)
	for _, f := range model.Folders() {
		if n := counts[f]; n > 0 {
			resp.UnreadCounts = append(resp.UnreadCounts, rpc.FolderCount{Folder: f, Count: n})
		}
	}
	return resp, nil
}
