package model

import "time"

type User struct {
	ID           string
	Email        string
	PasswordHash string
	Name         string
	CreatedAt    time.Time
}

// Appointment is a calendar entry. Date carries the calendar day only; the
// time of day lives in Time as the string the user picked ("9:30 AM").
type Appointment struct {
	ID       string
	Title    string
	Date     time.Time
	Time     string
	Duration int // minutes, 0 means DefaultDuration
	Type     string
	Name     string
	Status   AppointmentStatus
	Location string
	Notes    string
	OwnerID  string
}

const (
	DefaultDuration = 60
	// MaxDuration caps a booking at one full day.
	MaxDuration     = 24 * 60
)

// DurationOrDefault returns the booked length in minutes.
func (a Appointment) DurationOrDefault() int {
	if a.Duration <= 0 {
		return DefaultDuration
	}
	return a.Duration
}

type Email struct {
	ID             string
	OwnerID        string
	SenderName     string
	SenderEmail    string
	Recipient      string
	Subject        string
	Preview        string
	Body           string
	Date           time.Time
	Read           bool
	Starred        bool
	Folder         Folder
	Labels         []string
	HasAttachments bool
}

type Folder string

const (
	FolderInbox   Folder = "inbox"
	FolderStarred Folder = "starred"
	FolderSent    Folder = "sent"
	FolderDrafts  Folder = "drafts"
	FolderArchive Folder = "archive"
	FolderTrash   Folder = "trash"
)

func Folders() []Folder {
	return []Folder{FolderInbox, FolderStarred, FolderSent, FolderDrafts, FolderArchive, FolderTrash}
}

func (f Folder) Valid() bool {
	switch f {
	case FolderInbox, FolderStarred, FolderSent, FolderDrafts, FolderArchive, FolderTrash:
		return true
	}
	return false
}
