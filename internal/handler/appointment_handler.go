package handler

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"clinic-crm/internal/events"
	"clinic-crm/internal/model"
	"clinic-crm/internal/rpc"
	"clinic-crm/internal/schedule"
)

func validateAppointment(a model.Appointment) error {
	if strings.TrimSpace(a.Title) == "" {
		return invalid("title required")
	}
	if _, ok := schedule.ParseClock(a.Time); !ok {
		return invalid("time must look like 14:30 or 2:30 PM")
	}
	if a.Duration < 0 {
		return invalid("duration cannot be negative")
	}
	if a.Duration > model.MaxDuration {
		return invalid(fmt.Sprintf("duration cannot exceed %d minutes", model.MaxDuration))
	}
	if !a.Status.Valid() {
		return invalid(fmt.Sprintf("unknown status %q", a.Status))
	}
	return nil
}

// owned returns the caller's appointment. Other users' appointments are
// reported as missing.
func (h *Handler) owned(owner, id string) (model.Appointment, error) {
	if id == "" {
		return model.Appointment{}, invalid("id required")
	}
	a, err := h.store.Appointments.Get(id)
	if err != nil || a.OwnerID != owner {
		return model.Appointment{}, status.Error(codes.NotFound, "appointment not found")
	}
	return a, nil
}

// active lists the owner's appointments that still occupy the calendar.
func (h *Handler) active(owner string) []model.Appointment {
	return h.store.Appointments.Find(func(a model.Appointment) bool {
		return a.OwnerID == owner && a.Status != model.StatusCanceled
	})
}

func (h *Handler) conflictErr(a model.Appointment, source string) error {
	if a.Status == model.StatusCanceled {
		return nil
	}
	clashes := schedule.Conflicting(a, h.active(a.OwnerID))
	if len(clashes) == 0 {
		return nil
	}
	h.metrics.ObserveConflict(source)
	return status.Errorf(codes.AlreadyExists, "overlaps %d appointment(s), next free business day is %s",
		len(clashes), schedule.SuggestNextBusinessDay(a.Date).Format(time.DateOnly))
}

func (h *Handler) publish(ctx context.Context, t events.Type, a model.Appointment, prev model.AppointmentStatus) {
	ev := events.NewAppointmentEvent(t, a)
	ev.PreviousStatus = prev
	err := h.events.Publish(ctx, ev)
	h.metrics.ObserveEvent(string(t), err == nil)
	if err != nil {
		h.log.WithFields(logrus.Fields{"event": t, "appointment_id": a.ID}).WithError(err).Warn("publish failed")
	}
}

func (h *Handler) CreateAppointment(ctx context.Context, req *rpc.Appointment) (*rpc.Appointment, error) {
	owner, err := uid(ctx)
	if err != nil {
		return nil, err
	}
	a, err := req.Model()
	if err != nil {
		return nil, invalid(err.Error())
	}
	a.ID = uuid.New().String()
	a.OwnerID = owner
	if a.Status == "" {
		a.Status = model.StatusUpcoming
	}
	if err := validateAppointment(a); err != nil {
		return nil, err
	}

	h.bookMu.Lock()
	defer h.bookMu.Unlock()
	if err := h.conflictErr(a, "create"); err != nil {
		return nil, err
	}
	if err := h.store.Appointments.Add(a); err != nil {
		return nil, h.storeErr(err, logrus.Fields{"appointment_id": a.ID})
	}

	h.log.WithFields(logrus.Fields{"appointment_id": a.ID, "user_id": owner}).Info("appointment created")
	h.publish(ctx, events.AppointmentCreated, a, "")
	out := rpc.AppointmentFrom(a)
	return &out, nil
}

// UpdateAppointment replaces the editable fields. An empty status keeps the
// current one; a different one must be a legal transition.
func (h *Handler) UpdateAppointment(ctx context.Context, req *rpc.Appointment) (*rpc.Appointment, error) {
	owner, err := uid(ctx)
	if err != nil {
		return nil, err
	}
	h.bookMu.Lock()
	defer h.bookMu.Unlock()
	cur, err := h.owned(owner, req.ID)
	if err != nil {
		return nil, err
	}
	a, err := req.Model()
	if err != nil {
		return nil, invalid(err.Error())
	}
	a.OwnerID = owner
	if a.Status == "" {
		a.Status = cur.Status
	}
	if err := validateAppointment(a); err != nil {
		return nil, err
	}
	if !cur.Status.CanTransition(a.Status) {
		return nil, h.storeErr(fmt.Errorf("%w: %s -> %s", model.ErrInvalidTransition, cur.Status, a.Status), nil)
	}
	if err := h.conflictErr(a, "update"); err != nil {
		return nil, err
	}
	if err := h.store.Appointments.Update(a); err != nil {
		return nil, h.storeErr(err, logrus.Fields{"appointment_id": a.ID})
	}

	h.publish(ctx, events.AppointmentUpdated, a, "")
	if a.Status != cur.Status {
		h.publish(ctx, events.AppointmentStatusChanged, a, cur.Status)
	}
	out := rpc.AppointmentFrom(a)
	return &out, nil
}

func (h *Handler) SetAppointmentStatus(ctx context.Context, req *rpc.StatusRequest) (*rpc.Appointment, error) {
	owner, err := uid(ctx)
	if err != nil {
		return nil, err
	}
	h.bookMu.Lock()
	defer h.bookMu.Unlock()
	cur, err := h.owned(owner, req.ID)
	if err != nil {
		return nil, err
	}
	if !req.Status.Valid() {
		return nil, invalid(fmt.Sprintf("unknown status %q", req.Status))
	}
	next, err := model.TransitionAppointment(cur, req.Status)
	if err != nil {
		return nil, h.storeErr(err, nil)
	}
	if next.Status != cur.Status {
		if err := h.store.Appointments.Update(next); err != nil {
			return nil, h.storeErr(err, logrus.Fields{"appointment_id": next.ID})
		}
		h.publish(ctx, events.AppointmentStatusChanged, next, cur.Status)
	}
	out := rpc.AppointmentFrom(next)
	return &out, nil
}

func (h *Handler) DeleteAppointment(ctx context.Context, req *rpc.IDRequest) (*rpc.Empty, error) {
	owner, err := uid(ctx)
	if err != nil {
		return nil, err
	}
	a, err := h.owned(owner, req.ID)
	if err != nil {
		return nil, err
	}
	if err := h.store.Appointments.Delete(a.ID); err != nil {
		return nil, h.storeErr(err, logrus.Fields{"appointment_id": a.ID})
	}
	h.publish(ctx, events.AppointmentDeleted, a, "")
	return &rpc.Empty{}, nil
}

func (h *Handler) ListAppointments(ctx context.Context, req *rpc.AppointmentQuery) (*rpc.AppointmentList, error) {
	owner, err := uid(ctx)
	if err != nil {
		return nil, err
	}
	mine := h.store.Appointments.Find(func(a model.Appointment) bool { return a.OwnerID == owner })
	list := schedule.SortAppointments(schedule.FilterAppointments(mine, schedule.AppointmentFilter(*req)))

	out := &rpc.AppointmentList{Items: make([]rpc.Appointment, 0, len(list))}
	for _, a := range list {
		out.Items = append(out.Items, rpc.AppointmentFrom(a))
	}
	return out, nil
}

// CheckConflict is a dry run of the overlap check. Unreadable times and
// canceled candidates never conflict. When req.ID is set that appointment is ignored, so an edit is not
// reported as clashing with itself.
func (h *Handler) CheckConflict(ctx context.Context, req *rpc.Appointment) (*rpc.ConflictResponse, error) {
	owner, err := uid(ctx)
	if err != nil {
		return nil, err
	}
	a, err := req.Model()
	if err != nil {
		return nil, invalid(err.Error())
	}
	a.OwnerID = owner

	resp := &rpc.ConflictResponse{}
	if a.Status == model.StatusCanceled {
		return resp, nil
	}
	for _, c := range schedule.Conflicting(a, h.active(owner)) {
		resp.ConflictingIDs = append(resp.ConflictingIDs, c.ID)
	}
	if len(resp.ConflictingIDs) > 0 {
		resp.Conflict = true
		resp.SuggestedDate = schedule.SuggestNextBusinessDay(a.Date).Format(time.DateOnly)
		h.metrics.ObserveConflict("check")
	}
	return resp, nil
}

func (h *Handler) ExtractSchedule(ctx context.Context, req *rpc.ExtractRequest) (*rpc.ExtractResponse, error) {
	resp := &rpc.ExtractResponse{}
	for _, d := range h.extractor.Dates(req.Text) {
		resp.Dates = append(resp.Dates, d.Format(time.DateOnly))
	}
	for _, c := range h.extractor.Times(req.Text) {
		resp.Times = append(resp.Times, c.String())
	}
	return resp, nil
}

func (h *Handler) DurationOptions(ctx context.Context, _ *rpc.Empty) (*rpc.DurationOptionList, error) {
	opts := schedule.DurationOptions()
	out := &rpc.DurationOptionList{Items: make([]rpc.DurationOption, len(opts))}
	for i, o := range opts {
		out.Items[i] = rpc.DurationOption(o)
	}
	return out, nil
}
