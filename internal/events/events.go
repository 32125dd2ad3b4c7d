// Package events announces appointment lifecycle changes to other services.
package events

import (
	"context"
	"sync"
	"time"

	"clinic-crm/internal/model"
)

type Type string

const (
	AppointmentCreated       Type = "appointment.created"
	AppointmentUpdated       Type = "appointment.updated"
	AppointmentStatusChanged Type = "appointment.status_changed"
	AppointmentDeleted       Type = "appointment.deleted"
)

type AppointmentEvent struct {
	Type           Type                    `json:"type"`
	AppointmentID  string                  `json:"appointment_id"`
	OwnerID        string                  `json:"owner_id"`
	Title          string                  `json:"title,omitempty"`
	Date           string                  `json:"date,omitempty"`
	Time           string                  `json:"time,omitempty"`
	Status         model.AppointmentStatus `json:"status,omitempty"`
	PreviousStatus model.AppointmentStatus `json:"previous_status,omitempty"`
	OccurredAt     time.Time               `json:"occurred_at"`
}

// NewAppointmentEvent snapshots a for publishing.
func NewAppointmentEvent(t Type, a model.Appointment) AppointmentEvent {
	ev := AppointmentEvent{
		Type:          t,
		AppointmentID: a.ID,
		OwnerID:       a.OwnerID,
		Title:         a.Title,
		Time:          a.Time,
		Status:        a.Status,
		OccurredAt:    time.Now().UTC(),
	}
	if !a.Date.IsZero() {
		ev.Date = a.Date.Format(time.DateOnly)
	}
	return ev
}

type Publisher interface {
	Publish(ctx context.Context, ev AppointmentEvent) error
	Close() error
}

// Nop drops every event. Used when no broker is configured.
type Nop struct{}

func (Nop) Publish(context.Context, AppointmentEvent) error { return nil }
func (Nop) Close() error                                    { return nil }

// Recorder keeps published events in memory.
type Recorder struct {
	mu     sync.Mutex
	events []AppointmentEvent
	Err    error // returned from Publish when set
}

func (r *Recorder) Publish(_ context.Context, ev AppointmentEvent) error {
	if r.Err != nil {
		return r.Err
	}
	r.mu.Lock()
	r.events = append(r.events, ev)
	r.mu.Unlock()
	return nil
}

func (r *Recorder) Close() error { return nil }

func (r *Recorder) Events() []AppointmentEvent {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]AppointmentEvent, len(r.events))
	copy(out, r.events)
	return out
}
