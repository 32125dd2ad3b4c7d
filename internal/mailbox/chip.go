package mailbox

import (
	"slices"
	"strings"

	"clinic-crm/internal/filter"
	"clinic-crm/internal/model"
)

type ChipKind string

const (
	ChipStarred     ChipKind = "starred"
	ChipUnread      ChipKind = "unread"
	ChipAttachments ChipKind = "attachments"
	ChipWithLabels  ChipKind = "withLabels"
	ChipLabel       ChipKind = "label"
)

const labelPrefix = "label:"

// Chip is one active filter toggle in the email toolbar.
type Chip struct {
	Kind  ChipKind
	Label string // set for ChipLabel
}

// ParseChip reads "starred", "unread", "attachments", "withLabels" or
// "label:<name>". Anything else is not a chip and reports false.
func ParseChip(s string) (Chip, bool) {
	switch k := ChipKind(s); k {
	case ChipStarred, ChipUnread, ChipAttachments, ChipWithLabels:
		return Chip{Kind: k}, true
	}
	if name, ok := strings.CutPrefix(s, labelPrefix); ok && name != "" {
		return Chip{Kind: ChipLabel, Label: name}, true
	}
	return Chip{}, false
}

func (c Chip) String() string {
	if c.Kind == ChipLabel {
		return labelPrefix + c.Label
	}
	return string(c.Kind)
}

func (c Chip) predicate() filter.Predicate[model.Email] {
	switch c.Kind {
	case ChipStarred:
		return func(e model.Email) bool { return e.Starred }
	case ChipUnread:
		return func(e model.Email) bool { return !e.Read }
	case ChipAttachments:
		return func(e model.Email) bool { return e.HasAttachments }
	case ChipWithLabels:
		return func(e model.Email) bool { return len(e.Labels) > 0 }
	case ChipLabel:
		return func(e model.Email) bool { return slices.Contains(e.Labels, c.Label) }
	}
	return nil
}
