package schedule

import (
	"time"

	"clinic-crm/internal/model"
)

// Interval is a half-open [Start, End) range of minutes within one day.
type Interval struct {
	Start int
	End   int
}

func (i Interval) Overlaps(o Interval) bool {
	return i.Start < o.End && o.Start < i.End
}

// AppointmentInterval converts the appointment's clock string and duration
// into minutes of its day. ok is false when Time does not parse. Durations
// past MaxDuration are clamped to it.
func AppointmentInterval(a model.Appointment) (Interval, bool) {
	c, ok := ParseClock(a.Time)
	if !ok {
		return Interval{}, false
	}
	start := c.Minutes()
	return Interval{Start: start, End: start + min(a.DurationOrDefault(), model.MaxDuration)}, true
}

func SameDay(a, b time.Time) bool {
	y1, m1, d1 := a.Date()
	y2, m2, d2 := b.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// Conflicting returns the appointments in existing that overlap candidate on
// the same calendar day. An entry sharing the candidate's ID is the one being
// edited and is skipped. Appointments whose time does not parse are ignored.
func Conflicting(candidate model.Appointment, existing []model.Appointment) []model.Appointment {
	want, ok := AppointmentInterval(candidate)
	if !ok {
		return nil
	}
	var out []model.Appointment
	for _, e := range existing {
		if candidate.ID != "" && e.ID == candidate.ID {
			continue
		}
		if !SameDay(candidate.Date, e.Date) {
			continue
		}
		got, ok := AppointmentInterval(e)
		if !ok {
			continue
		}
		if want.Overlaps(got) {
			out = append(out, e)
		}
	}
	return out
}

func CheckConflicts(candidate model.Appointment, existing []model.Appointment) bool {
	return len(Conflicting(candidate, existing)) > 0
}
