package schedule

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"clinic-crm/internal/model"
)

func date(y int, m time.Month, d int) time.Time { return time.Date(y, m, d, 0, 0, 0, 0, time.UTC) }

func appt(id string, day time.Time, clock string, minutes int) model.Appointment {
	return model.Appointment{ID: id, Date: day, Time: clock, Duration: minutes, Status: model.StatusUpcoming}
}

func TestParseClock(t *testing.T) {
	tests := []struct {
		in   string
		want Clock
		ok   bool
	}{
		{"9:30 AM", Clock{9, 30}, true},
		{"9:30am", Clock{9, 30}, true},
		{"  2:05 p.m. ", Clock{14, 5}, true},
		{"12:00 AM", Clock{0, 0}, true},
		{"12:15 PM", Clock{12, 15}, true},
		{"14:45", Clock{14, 45}, true},
		{"00:10", Clock{0, 10}, true},
		{"13:00 PM", Clock{}, false},
		{"0:30 am", Clock{}, false},
		{"24:00", Clock{}, false},
		{"9:60", Clock{}, false},
		{"noon", Clock{}, false},
		{"", Clock{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParseClock(tt.in)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestClockString(t *testing.T) {
	assert.Equal(t, "12:00 AM", Clock{0, 0}.String())
	assert.Equal(t, "9:05 AM", Clock{9, 5}.String())
	assert.Equal(t, "12:30 PM", Clock{12, 30}.String())
	assert.Equal(t, "11:59 PM", Clock{23, 59}.String())
}

func TestFormatDuration(t *testing.T) {
	tests := map[int]string{
		-5:  "0 minutes",
		0:   "0 minutes",
		1:   "1 minute",
		45:  "45 minutes",
		60:  "1 hour",
		75:  "1 hour 15 min",
		90:  "1.5 hours",
		120: "2 hours",
		125: "2 hours 5 min",
		150: "2 hours 30 min",
	}
	for in, want := range tests {
		assert.Equal(t, want, FormatDuration(in), "FormatDuration(%d)", in)
	}
}

func TestDurationOptions(t *testing.T) {
	opts := DurationOptions()
	require.Len(t, opts, 6)
	var minutes []int
	for _, o := range opts {
		minutes = append(minutes, o.Minutes)
		assert.Equal(t, FormatDuration(o.Minutes), o.Label)
	}
	assert.Equal(t, []int{15, 30, 45, 60, 90, 120}, minutes)

	opts[0].Minutes = 999
	assert.Equal(t, 15, DurationOptions()[0].Minutes, "callers get a fresh slice")
}

func TestSuggestNextBusinessDay(t *testing.T) {
	tests := []struct {
		name string
		ref  time.Time
		want time.Time
	}{
		{"monday to tuesday", date(2024, 3, 11), date(2024, 3, 12)},
		{"thursday to friday", date(2024, 3, 14), date(2024, 3, 15)},
		{"friday to monday", time.Date(2024, 3, 15, 16, 30, 0, 0, time.UTC), date(2024, 3, 18)},
		{"saturday to monday", date(2024, 3, 16), date(2024, 3, 18)},
		{"sunday to monday", date(2024, 3, 17), date(2024, 3, 18)},
		{"month rollover", date(2024, 5, 31), date(2024, 6, 3)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SuggestNextBusinessDay(tt.ref)
			assert.True(t, tt.want.Equal(got), "got %s want %s", got, tt.want)
		})
	}
}

func TestCheckConflicts(t *testing.T) {
	mon := date(2024, 3, 11)
	tue := date(2024, 3, 12)

	tests := []struct {
		name      string
		candidate model.Appointment
		existing  []model.Appointment
		want      bool
	}{
		{"adjacent slots", appt("a", mon, "9:00 AM", 30), []model.Appointment{appt("b", mon, "9:30 AM", 30)}, false},
		{"partial overlap", appt("a", mon, "9:00 AM", 45), []model.Appointment{appt("b", mon, "9:30 AM", 30)}, true},
		{"same slot", appt("a", mon, "10:00", 60), []model.Appointment{appt("b", mon, "10:00 AM", 60)}, true},
		{"contained", appt("a", mon, "10:15 AM", 15), []model.Appointment{appt("b", mon, "10:00 AM", 60)}, true},
		{"default duration", appt("a", mon, "10:00 AM", 0), []model.Appointment{appt("b", mon, "10:45 AM", 15)}, true},
		{"different day", appt("a", mon, "9:00 AM", 120), []model.Appointment{appt("b", tue, "9:00 AM", 120)}, false},
		{"editing itself", appt("a", mon, "9:00 AM", 60), []model.Appointment{appt("a", mon, "9:00 AM", 60)}, false},
		{"unparseable existing ignored", appt("a", mon, "9:00 AM", 60), []model.Appointment{appt("b", mon, "soon", 60)}, false},
		{"unparseable candidate", appt("a", mon, "later", 60), []model.Appointment{appt("b", mon, "9:00 AM", 60)}, false},
		{"no existing", appt("a", mon, "9:00 AM", 60), nil, false},
		{"huge duration", appt("a", mon, "9:00 AM", math.MaxInt-100), []model.Appointment{appt("b", mon, "10:00", 30)}, true},
		{"huge existing duration", appt("a", mon, "10:00", 30), []model.Appointment{appt("b", mon, "9:00 AM", math.MaxInt-100)}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CheckConflicts(tt.candidate, tt.existing))
		})
	}
}

func TestCheckConflictsSymmetric(t *testing.T) {
	mon := date(2024, 3, 11)
	clocks := []string{"8:00 AM", "8:30 AM", "9:00 AM", "9:15 AM", "9:45 AM", "10:00 AM", "bogus"}
	durations := []int{0, 15, 30, 45, 90}

	for _, ca := range clocks {
		for _, da := range durations {
			for _, cb := range clocks {
				for _, db := range durations {
					a := appt("a", mon, ca, da)
					b := appt("b", mon, cb, db)
					require.Equal(t,
						CheckConflicts(a, []model.Appointment{b}),
						CheckConflicts(b, []model.Appointment{a}),
						"%s/%d vs %s/%d", ca, da, cb, db)
				}
			}
		}
	}
}

func TestAppointmentIntervalClampsDuration(t *testing.T) {
	iv, ok := AppointmentInterval(appt("a", date(2024, 3, 11), "9:00 AM", math.MaxInt))
	require.True(t, ok)
	assert.Equal(t, Interval{Start: 540, End: 540 + model.MaxDuration}, iv)
}

func TestConflictingReturnsOverlaps(t *testing.T) {
	mon := date(2024, 3, 11)
	existing := []model.Appointment{
		appt("early", mon, "8:00 AM", 60),
		appt("mid", mon, "9:30 AM", 30),
		appt("late", mon, "11:00 AM", 30),
	}
	got := Conflicting(appt("new", mon, "8:30 AM", 90), existing)
	require.Len(t, got, 2)
	assert.Equal(t, "early", got[0].ID)
	assert.Equal(t, "mid", got[1].ID)
}

func TestExtractDates(t *testing.T) {
	text := "Can we move it to 15/03/2024 or 3-4-24? Not 31/02/2024, and not 13/13/2023. Also 1.12.2025."
	got := ExtractDates(text)
	require.Len(t, got, 3)
	assert.Equal(t, date(2024, 3, 15), got[0])
	assert.Equal(t, date(2024, 4, 3), got[1], "ambiguous tokens resolve day-first")
	assert.Equal(t, date(2025, 12, 1), got[2])

	assert.Empty(t, ExtractDates("no dates here, version 1.2.3"))
}

func TestExtractTimes(t *testing.T) {
	text := "I'm free at 9:30 am, 2:15PM or 16:45. 25:00 won't work and 10:30 amazing is just a time."
	got := ExtractTimes(text)
	require.Len(t, got, 4)
	assert.Equal(t, Clock{9, 30}, got[0])
	assert.Equal(t, Clock{14, 15}, got[1])
	assert.Equal(t, Clock{16, 45}, got[2])
	assert.Equal(t, Clock{10, 30}, got[3])
}

func TestExtractorInterface(t *testing.T) {
	var x DateTimeExtractor = RegexExtractor{}
	assert.Len(t, x.Dates("1/1/2024"), 1)
	assert.Len(t, x.Times("at 12:00 pm"), 1)
}

func TestFilterAppointments(t *testing.T) {
	list := []model.Appointment{
		{ID: "1", Title: "Checkup", Name: "Ana Ruiz", Type: "consultation", Date: date(2024, 3, 10), Time: "9:00 AM", Status: model.StatusCompleted},
		{ID: "2", Title: "Follow up", Name: "Ben Okafor", Type: "follow-up", Date: time.Date(2024, 3, 12, 23, 0, 0, 0, time.UTC), Time: "3:00 PM", Status: model.StatusUpcoming},
		{ID: "3", Title: "Lab review", Name: "Ana Ruiz", Type: "follow-up", Date: date(2024, 3, 15), Time: "11:00 AM", Status: model.StatusCanceled},
	}
	idsOf := func(as []model.Appointment) []string {
		var out []string
		for _, a := range as {
			out = append(out, a.ID)
		}
		return out
	}

	assert.Equal(t, []string{"2", "3"}, idsOf(FilterAppointments(list, AppointmentFilter{From: date(2024, 3, 11)})))
	assert.Equal(t, []string{"1", "2"}, idsOf(FilterAppointments(list, AppointmentFilter{To: date(2024, 3, 12)})), "inclusive end day")
	assert.Equal(t, []string{"3"}, idsOf(FilterAppointments(list, AppointmentFilter{Query: "ana", Types: []string{"follow-up"}})))
	assert.Equal(t, []string{"2"}, idsOf(FilterAppointments(list, AppointmentFilter{Statuses: []model.AppointmentStatus{model.StatusUpcoming}})))
	assert.NotNil(t, FilterAppointments(nil, AppointmentFilter{}))
}

func TestSortAppointments(t *testing.T) {
	mon, tue := date(2024, 3, 11), date(2024, 3, 12)
	in := []model.Appointment{
		appt("tue-am", tue, "9:00 AM", 30),
		appt("mon-bad", mon, "whenever", 30),
		appt("mon-pm", mon, "1:00 PM", 30),
		appt("mon-am", mon, "08:15", 30),
	}
	out := SortAppointments(in)
	var got []string
	for _, a := range out {
		got = append(got, a.ID)
	}
	assert.Equal(t, []string{"mon-am", "mon-pm", "mon-bad", "tue-am"}, got)
	assert.Equal(t, "tue-am", in[0].ID, "input untouched")
}
