package schedule

import (
	"math"
	"slices"
	"time"

	"clinic-crm/internal/filter"
	"clinic-crm/internal/model"
)

// AppointmentFilter narrows a calendar view. From and To are inclusive
// calendar days; a zero bound leaves that side open.
type AppointmentFilter struct {
	From     time.Time
	To       time.Time
	Statuses []model.AppointmentStatus
	Types    []string
	Query    string
}

func (f AppointmentFilter) Predicate() filter.Predicate[model.Appointment] {
	return filter.All[model.Appointment](
		func(a model.Appointment) bool {
			day := dayKey(a.Date)
			if !f.From.IsZero() && day < dayKey(f.From) {
				return false
			}
			return f.To.IsZero() || day <= dayKey(f.To)
		},
		func(a model.Appointment) bool { return filter.OneOf(f.Statuses, a.Status) },
		func(a model.Appointment) bool { return filter.OneOf(f.Types, a.Type) },
		func(a model.Appointment) bool {
			return filter.Contains(f.Query, a.Title, a.Name, a.Type, a.Location, a.Notes)
		},
	)
}

func FilterAppointments(list []model.Appointment, f AppointmentFilter) []model.Appointment {
	return filter.Apply(list, f.Predicate())
}

// SortAppointments returns a copy ordered by day, then start time.
// Appointments with an unreadable time sort last within their day.
func SortAppointments(list []model.Appointment) []model.Appointment {
	out := slices.Clone(list)
	slices.SortStableFunc(out, func(a, b model.Appointment) int {
		if d := dayKey(a.Date) - dayKey(b.Date); d != 0 {
			return d
		}
		return startMinute(a) - startMinute(b)
	})
	return out
}

func dayKey(t time.Time) int {
	y, m, d := t.Date()
	return y*10000 + int(m)*100 + d
}

func startMinute(a model.Appointment) int {
	c, ok := ParseClock(a.Time)
	if !ok {
		return math.MaxInt32
	}
	return c.Minutes()
}
