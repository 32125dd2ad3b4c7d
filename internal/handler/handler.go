package handler

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"clinic-crm/internal/auth"
	"clinic-crm/internal/drafts"
	"clinic-crm/internal/events"
	"clinic-crm/internal/middleware"
	"clinic-crm/internal/model"
	"clinic-crm/internal/observability/metrics"
	"clinic-crm/internal/rpc"
	"clinic-crm/internal/schedule"
	"clinic-crm/internal/store"
	"clinic-crm/pkg/logging"
)

var _ rpc.CRMServer = (*Handler)(nil)

type Handler struct {
	store     *store.Store
	tokens    *auth.Tokens
	drafts    drafts.Store
	events    events.Publisher
	metrics   *metrics.RPCMetrics
	extractor schedule.DateTimeExtractor
	log       logrus.FieldLogger
	now       func() time.Time

	// serializes the overlap check with the write that follows it
	bookMu sync.Mutex
}

type Option func(*Handler)

func WithDrafts(d drafts.Store) Option {
	return func(h *Handler) { h.drafts = d }
}

func WithEvents(p events.Publisher) Option {
	return func(h *Handler) { h.events = p }
}

func WithMetrics(m *metrics.RPCMetrics) Option {
	return func(h *Handler) { h.metrics = m }
}

func WithLogger(l logrus.FieldLogger) Option {
	return func(h *Handler) { h.log = l }
}

func WithExtractor(x schedule.DateTimeExtractor) Option {
	return func(h *Handler) { h.extractor = x }
}

func New(st *store.Store, tokens *auth.Tokens, opts ...Option) *Handler {
	h := &Handler{
		store:     st,
		tokens:    tokens,
		drafts:    drafts.NewMemory(),
		events:    events.Nop{},
		extractor: schedule.RegexExtractor{},
		log:       logging.Discard(),
		now:       func() time.Time { return time.Now().UTC() },
	}
	for _, o := range opts {
		o(h)
	}
	return h
}

func uid(ctx context.Context) (string, error) {
	id, ok := middleware.UserID(ctx)
	if !ok {
		return "", status.Error(codes.Unauthenticated, "not signed in")
	}
	return id, nil
}

func invalid(msg string) error { return status.Error(codes.InvalidArgument, msg) }

// storeErr maps domain errors to gRPC codes. Anything unexpected is logged
// and reported as a bare internal error.
func (h *Handler) storeErr(err error, fields logrus.Fields) error {
	switch {
	case errors.Is(err, store.ErrNotFound), errors.Is(err, drafts.ErrNotFound):
		return status.Error(codes.NotFound, "not found")
	case errors.Is(err, store.ErrExists):
		return status.Error(codes.AlreadyExists, "already exists")
	case errors.Is(err, store.ErrMissingID):
		return invalid("id required")
	case errors.Is(err, model.ErrInvalidTransition):
		return status.Error(codes.FailedPrecondition, err.Error())
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return status.FromContextError(err).Err()
	}
	h.log.WithFields(fields).WithError(err).Error("request failed")
	return status.Error(codes.Internal, "internal error")
}
