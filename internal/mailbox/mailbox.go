// Package mailbox derives the visible email list from a mailbox: folder
// selection, search, filter chips, sort order and the sidebar aggregates.
// Every function is pure and leaves its input slice untouched.
package mailbox

import (
	"slices"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"clinic-crm/internal/filter"
	"clinic-crm/internal/model"
)

// MatchesSearch reports whether query occurs, ignoring case, in the subject,
// sender name, sender address, preview, body or any label.
func MatchesSearch(e model.Email, query string) bool {
	fields := append([]string{e.Subject, e.SenderName, e.SenderEmail, e.Preview, e.Body}, e.Labels...)
	return filter.Contains(query, fields...)
}

// Filter keeps the emails in folder that match query and every chip.
// label: chips are alternatives to each other; everything else must hold.
func Filter(emails []model.Email, folder model.Folder, query string, chips []string) []model.Email {
	preds := []filter.Predicate[model.Email]{
		func(e model.Email) bool { return e.Folder == folder },
	}
	if strings.TrimSpace(query) != "" {
		preds = append(preds, func(e model.Email) bool { return MatchesSearch(e, query) })
	}

	var labels []string
	for _, raw := range chips {
		c, ok := ParseChip(raw)
		if !ok {
			continue
		}
		if c.Kind == ChipLabel {
			labels = append(labels, c.Label)
			continue
		}
		preds = append(preds, c.predicate())
	}
	if len(labels) > 0 {
		preds = append(preds, func(e model.Email) bool { return filter.AnyOf(labels, e.Labels) })
	}
	return filter.Apply(emails, filter.All(preds...))
}

type SortOption string

const (
	SortNewest  SortOption = "newest"
	SortOldest  SortOption = "oldest"
	SortUnread  SortOption = "unread"
	SortSender  SortOption = "sender"
	SortSubject SortOption = "subject"
)

// Sort returns a stably sorted copy. Unknown options sort newest first.
func Sort(emails []model.Email, opt SortOption) []model.Email {
	out := slices.Clone(emails)
	if out == nil {
		out = []model.Email{}
	}
	newest := func(a, b model.Email) int { return b.Date.Compare(a.Date) }

	var cmp func(a, b model.Email) int
	switch opt {
	case SortOldest:
		cmp = func(a, b model.Email) int { return a.Date.Compare(b.Date) }
	case SortUnread:
		cmp = func(a, b model.Email) int {
			if a.Read != b.Read {
				if !a.Read {
					return -1
				}
				return 1
			}
			return newest(a, b)
		}
	case SortSender:
		col := collate.New(language.English, collate.IgnoreCase)
		cmp = func(a, b model.Email) int { return col.CompareString(a.SenderName, b.SenderName) }
	case SortSubject:
		col := collate.New(language.English, collate.IgnoreCase)
		cmp = func(a, b model.Email) int { return col.CompareString(a.Subject, b.Subject) }
	default:
		cmp = newest
	}
	slices.SortStableFunc(out, cmp)
	return out
}

// UnreadCounts maps each folder holding unread mail to its unread total.
func UnreadCounts(emails []model.Email) map[model.Folder]int {
	counts := make(map[model.Folder]int)
	for _, e := range emails {
		if !e.Read {
			counts[e.Folder]++
		}
	}
	return counts
}

// AllLabels lists every label in use, sorted and without duplicates.
func AllLabels(emails []model.Email) []string {
	out := []string{}
	for _, e := range emails {
		out = append(out, e.Labels...)
	}
	slices.Sort(out)
	return slices.Compact(out)
}
