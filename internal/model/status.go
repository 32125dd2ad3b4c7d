package model

import (
	"errors"
	"fmt"
)

var ErrInvalidTransition = errors.New("invalid status transition")

type AppointmentStatus string

const (
	StatusUpcoming  AppointmentStatus = "upcoming"
	StatusCompleted AppointmentStatus = "completed"
	StatusCanceled  AppointmentStatus = "canceled"
)

// completed and canceled are terminal
var appointmentTransitions = map[AppointmentStatus][]AppointmentStatus{
	StatusUpcoming:  {StatusCompleted, StatusCanceled},
	StatusCompleted: nil,
	StatusCanceled:  nil,
}

func (s AppointmentStatus) Valid() bool {
	_, ok := appointmentTransitions[s]
	return ok
}

// CanTransition reports whether an appointment in status s may move to next.
// Staying in the same status is always allowed.
func (s AppointmentStatus) CanTransition(next AppointmentStatus) bool {
	if !s.Valid() || !next.Valid() {
		return false
	}
	if s == next {
		return true
	}
	for _, to := range appointmentTransitions[s] {
		if to == next {
			return true
		}
	}
	return false
}

// TransitionAppointment returns a copy of a moved to status next.
func TransitionAppointment(a Appointment, next AppointmentStatus) (Appointment, error) {
	if !a.Status.CanTransition(next) {
		return a, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, a.Status, next)
	}
	a.Status = next
	return a, nil
}
