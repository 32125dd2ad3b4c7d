package schedule

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Clock is a wall-clock time of day.
type Clock struct {
	Hour   int
	Minute int
}

var clockRe = regexp.MustCompile(`(?i)^(\d{1,2}):(\d{2})(?:\s*([ap])\.?m\.?)?$`)

// ParseClock accepts "9:30 AM", "9:30pm", "9:30 p.m." and 24-hour "14:30".
func ParseClock(s string) (Clock, bool) {
	m := clockRe.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return Clock{}, false
	}
	return clockFromParts(m[1], m[2], m[3])
}

func clockFromParts(hh, mm, meridiem string) (Clock, bool) {
	h, err := strconv.Atoi(hh)
	if err != nil {
		return Clock{}, false
	}
	m, err := strconv.Atoi(mm)
	if err != nil || m > 59 {
		return Clock{}, false
	}
	switch strings.ToLower(meridiem) {
	case "":
		if h > 23 {
			return Clock{}, false
		}
	case "a", "p":
		if h < 1 || h > 12 {
			return Clock{}, false
		}
		h %= 12
		if strings.EqualFold(meridiem, "p") {
			h += 12
		}
	}
	return Clock{Hour: h, Minute: m}, true
}

// Minutes returns the minute of the day.
func (c Clock) Minutes() int { return c.Hour*60 + c.Minute }

func (c Clock) String() string {
	h, suffix := c.Hour%12, "AM"
	if h == 0 {
		h = 12
	}
	if c.Hour >= 12 {
		suffix = "PM"
	}
	return fmt.Sprintf("%d:%02d %s", h, c.Minute, suffix)
}
