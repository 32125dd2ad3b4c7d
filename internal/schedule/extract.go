package schedule

import (
	"regexp"
	"strconv"
	"time"
)

// DateTimeExtractor pulls scheduling hints out of free text such as an email
// body. Extraction is best effort: tokens that do not parse are dropped and
// nothing is ever reported as an error.
type DateTimeExtractor interface {
	Dates(text string) []time.Time
	Times(text string) []Clock
}

var (
	dateTokenRe = regexp.MustCompile(`\b(\d{1,2})[/.\-](\d{1,2})[/.\-](\d{4}|\d{2})\b`)
	timeTokenRe = regexp.MustCompile(`(?i)\b(\d{1,2}):(\d{2})(?:\s*([ap])\.?m\b\.?|\b)`)
)

// RegexExtractor reads day-first D/M/Y dates and H:MM times with an optional
// am/pm suffix. Ambiguous dates such as 03/04/2023 always resolve day-first
// (3 April); no locale detection is attempted.
type RegexExtractor struct{}

func (RegexExtractor) Dates(text string) []time.Time {
	var out []time.Time
	for _, m := range dateTokenRe.FindAllStringSubmatch(text, -1) {
		if d, ok := civilDate(m[1], m[2], m[3]); ok {
			out = append(out, d)
		}
	}
	return out
}

func (RegexExtractor) Times(text string) []Clock {
	var out []Clock
	for _, m := range timeTokenRe.FindAllStringSubmatch(text, -1) {
		if c, ok := clockFromParts(m[1], m[2], m[3]); ok {
			out = append(out, c)
		}
	}
	return out
}

func ExtractDates(text string) []time.Time { return RegexExtractor{}.Dates(text) }

func ExtractTimes(text string) []Clock { return RegexExtractor{}.Times(text) }

func civilDate(dd, mm, yy string) (time.Time, bool) {
	day, _ := strconv.Atoi(dd)
	month, _ := strconv.Atoi(mm)
	year, _ := strconv.Atoi(yy)
	if len(yy) == 2 {
		year += 2000
	}
	if day < 1 || month < 1 || month > 12 {
		return time.Time{}, false
	}
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	// time.Date normalizes 31/02 into March
	if t.Day() != day || int(t.Month()) != month {
		return time.Time{}, false
	}
	return t, true
}
