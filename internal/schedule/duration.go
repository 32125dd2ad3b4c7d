package schedule

import (
	"fmt"
	"time"
)

// FormatDuration renders a minute count for display: "45 minutes", "1 hour",
// "1.5 hours", "2 hours", "2 hours 5 min".
func FormatDuration(minutes int) string {
	switch {
	case minutes <= 0:
		return "0 minutes"
	case minutes == 1:
		return "1 minute"
	case minutes < 60:
		return fmt.Sprintf("%d minutes", minutes)
	case minutes == 60:
		return "1 hour"
	case minutes == 90:
		return "1.5 hours"
	}
	h, m := minutes/60, minutes%60
	unit := "hours"
	if h == 1 {
		unit = "hour"
	}
	if m == 0 {
		return fmt.Sprintf("%d %s", h, unit)
	}
	return fmt.Sprintf("%d %s %d min", h, unit, m)
}

type DurationOption struct {
	Minutes int
	Label   string
}

var durationChoices = []int{15, 30, 45, 60, 90, 120}

// DurationOptions lists the lengths offered when booking.
func DurationOptions() []DurationOption {
	out := make([]DurationOption, len(durationChoices))
	for i, m := range durationChoices {
		out[i] = DurationOption{Minutes: m, Label: FormatDuration(m)}
	}
	return out
}

// SuggestNextBusinessDay returns the start of the day after ref, rolled
// forward past Saturday and Sunday. Holidays are not considered.
func SuggestNextBusinessDay(ref time.Time) time.Time {
	y, m, d := ref.Date()
	next := time.Date(y, m, d+1, 0, 0, 0, 0, ref.Location())
	switch next.Weekday() {
	case time.Saturday:
		next = next.AddDate(0, 0, 2)
	case time.Sunday:
		next = next.AddDate(0, 0, 1)
	}
	return next
}
