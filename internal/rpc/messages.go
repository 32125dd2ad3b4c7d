package rpc

import (
	"errors"
	"fmt"
	"time"

	"clinic-crm/internal/model"
	"clinic-crm/internal/schedule"
)

type RegisterRequest struct {
	Email    string
	Password string
	Name     string
}

func (m *RegisterRequest) AppendWire(b []byte) []byte {
	b = appendString(b, 1, m.Email)
	b = appendString(b, 2, m.Password)
	return appendString(b, 3, m.Name)
}

func (m *RegisterRequest) ConsumeWire(b []byte) error {
	return eachField(b, func(f field) error {
		switch f.num {
		case 1:
			m.Email = f.str()
		case 2:
			m.Password = f.str()
		case 3:
			m.Name = f.str()
		}
		return nil
	})
}

type LoginRequest struct {
	Email    string
	Password string
}

func (m *LoginRequest) AppendWire(b []byte) []byte {
	b = appendString(b, 1, m.Email)
	return appendString(b, 2, m.Password)
}

func (m *LoginRequest) ConsumeWire(b []byte) error {
	return eachField(b, func(f field) error {
		switch f.num {
		case 1:
			m.Email = f.str()
		case 2:
			m.Password = f.str()
		}
		return nil
	})
}

type AuthResponse struct {
	Token     string
	UserID    string
	ExpiresAt time.Time
}

func (m *AuthResponse) AppendWire(b []byte) []byte {
	b = appendString(b, 1, m.Token)
	b = appendString(b, 2, m.UserID)
	return appendTime(b, 3, m.ExpiresAt)
}

func (m *AuthResponse) ConsumeWire(b []byte) error {
	return eachField(b, func(f field) error {
		var err error
		switch f.num {
		case 1:
			m.Token = f.str()
		case 2:
			m.UserID = f.str()
		case 3:
			m.ExpiresAt, err = f.timestamp()
		}
		return err
	})
}

// Appointment carries its calendar day as "YYYY-MM-DD".
type Appointment struct {
	ID       string
	Title    string
	Date     string
	Time     string
	Duration int
	Type     string
	Name     string
	Status   model.AppointmentStatus
	Location string
	Notes    string
}

func AppointmentFrom(a model.Appointment) Appointment {
	out := Appointment{
		ID: a.ID, Title: a.Title, Time: a.Time, Duration: a.Duration,
		Type: a.Type, Name: a.Name, Status: a.Status, Location: a.Location, Notes: a.Notes,
	}
	if !a.Date.IsZero() {
		out.Date = a.Date.Format(time.DateOnly)
	}
	return out
}

var ErrBadDate = errors.New("date must be YYYY-MM-DD")

// Model converts m back to the domain type. The owner is left empty.
func (m *Appointment) Model() (model.Appointment, error) {
	day, err := time.Parse(time.DateOnly, m.Date)
	if err != nil {
		return model.Appointment{}, fmt.Errorf("%w: %q", ErrBadDate, m.Date)
	}
	return model.Appointment{
		ID: m.ID, Title: m.Title, Date: day, Time: m.Time, Duration: m.Duration,
		Type: m.Type, Name: m.Name, Status: m.Status, Location: m.Location, Notes: m.Notes,
	}, nil
}

func (m *Appointment) AppendWire(b []byte) []byte {
	b = appendString(b, 1, m.ID)
	b = appendString(b, 2, m.Title)
	b = appendString(b, 3, m.Date)
	b = appendString(b, 4, m.Time)
	b = appendInt(b, 5, int64(m.Duration))
	b = appendString(b, 6, m.Type)
	b = appendString(b, 7, m.Name)
	b = appendString(b, 8, string(m.Status))
	b = appendString(b, 9, m.Location)
	return appendString(b, 10, m.Notes)
}

func (m *Appointment) ConsumeWire(b []byte) error {
	return eachField(b, func(f field) error {
		switch f.num {
		case 1:
			m.ID = f.str()
		case 2:
			m.Title = f.str()
		case 3:
			m.Date = f.str()
		case 4:
			m.Time = f.str()
		case 5:
			m.Duration = int(f.i64())
		case 6:
			m.Type = f.str()
		case 7:
			m.Name = f.str()
		case 8:
			m.Status = model.AppointmentStatus(f.str())
		case 9:
			m.Location = f.str()
		case 10:
			m.Notes = f.str()
		}
		return nil
	})
}

type AppointmentList = List[Appointment, *Appointment]

type AppointmentQuery schedule.AppointmentFilter

func (m *AppointmentQuery) AppendWire(b []byte) []byte {
	b = appendTime(b, 1, m.From)
	b = appendTime(b, 2, m.To)
	b = appendStrings(b, 3, m.Statuses)
	b = appendStrings(b, 4, m.Types)
	return appendString(b, 5, m.Query)
}

func (m *AppointmentQuery) ConsumeWire(b []byte) error {
	return eachField(b, func(f field) error {
		var err error
		switch f.num {
		case 1:
			m.From, err = f.timestamp()
		case 2:
			m.To, err = f.timestamp()
		case 3:
			m.Statuses = append(m.Statuses, model.AppointmentStatus(f.str()))
		case 4:
			m.Types = append(m.Types, f.str())
		case 5:
			m.Query = f.str()
		}
		return err
	})
}

// IDRequest addresses a single appointment or email.
type IDRequest struct {
	ID string
}

func (m *IDRequest) AppendWire(b []byte) []byte { return appendString(b, 1, m.ID) }

func (m *IDRequest) ConsumeWire(b []byte) error {
	return eachField(b, func(f field) error {
		if f.num == 1 {
			m.ID = f.str()
		}
		return nil
	})
}

type StatusRequest struct {
	ID     string
	Status model.AppointmentStatus
}

func (m *StatusRequest) AppendWire(b []byte) []byte {
	b = appendString(b, 1, m.ID)
	return appendString(b, 2, string(m.Status))
}

func (m *StatusRequest) ConsumeWire(b []byte) error {
	return eachField(b, func(f field) error {
		switch f.num {
		case 1:
			m.ID = f.str()
		case 2:
			m.Status = model.AppointmentStatus(f.str())
		}
		return nil
	})
}

type ConflictResponse struct {
	Conflict       bool
	ConflictingIDs []string
	SuggestedDate  string // next business day, set only on conflict
}

func (m *ConflictResponse) AppendWire(b []byte) []byte {
	b = appendBool(b, 1, m.Conflict)
	b = appendStrings(b, 2, m.ConflictingIDs)
	return appendString(b, 3, m.SuggestedDate)
}

func (m *ConflictResponse) ConsumeWire(b []byte) error {
	return eachField(b, func(f field) error {
		switch f.num {
		case 1:
			m.Conflict = f.flag()
		case 2:
			m.ConflictingIDs = append(m.ConflictingIDs, f.str())
		case 3:
			m.SuggestedDate = f.str()
		}
		return nil
	})
}

type ExtractRequest struct {
	Text string
}

func (m *ExtractRequest) AppendWire(b []byte) []byte { return appendString(b, 1, m.Text) }

func (m *ExtractRequest) ConsumeWire(b []byte) error {
	return eachField(b, func(f field) error {
		if f.num == 1 {
			m.Text = f.str()
		}
		return nil
	})
}

// ExtractResponse lists dates as "YYYY-MM-DD" and times as "3:04 PM".
type ExtractResponse struct {
	Dates []string
	Times []string
}

func (m *ExtractResponse) AppendWire(b []byte) []byte {
	b = appendStrings(b, 1, m.Dates)
	return appendStrings(b, 2, m.Times)
}

func (m *ExtractResponse) ConsumeWire(b []byte) error {
	return eachField(b, func(f field) error {
		switch f.num {
		case 1:
			m.Dates = append(m.Dates, f.str())
		case 2:
			m.Times = append(m.Times, f.str())
		}
		return nil
	})
}

type DurationOption schedule.DurationOption

func (m *DurationOption) AppendWire(b []byte) []byte {
	b = appendInt(b, 1, int64(m.Minutes))
	return appendString(b, 2, m.Label)
}

func (m *DurationOption) ConsumeWire(b []byte) error {
	return eachField(b, func(f field) error {
		switch f.num {
		case 1:
			m.Minutes = int(f.i64())
		case 2:
			m.Label = f.str()
		}
		return nil
	})
}

type DurationOptionList = List[DurationOption, *DurationOption]

// Email omits the owner on the wire; the server fills it from the caller.
type Email model.Email

func (m *Email) AppendWire(b []byte) []byte {
	b = appendString(b, 1, m.ID)
	b = appendString(b, 2, m.SenderName)
	b = appendString(b, 3, m.SenderEmail)
	b = appendString(b, 4, m.Recipient)
	b = appendString(b, 5, m.Subject)
	b = appendString(b, 6, m.Preview)
	b = appendString(b, 7, m.Body)
	b = appendTime(b, 8, m.Date)
	b = appendBool(b, 9, m.Read)
	b = appendBool(b, 10, m.Starred)
	b = appendString(b, 11, string(m.Folder))
	b = appendStrings(b, 12, m.Labels)
	return appendBool(b, 13, m.HasAttachments)
}

func (m *Email) ConsumeWire(b []byte) error {
	return eachField(b, func(f field) error {
		var err error
		switch f.num {
		case 1:
			m.ID = f.str()
		case 2:
			m.SenderName = f.str()
		case 3:
			m.SenderEmail = f.str()
		case 4:
			m.Recipient = f.str()
		case 5:
			m.Subject = f.str()
		case 6:
			m.Preview = f.str()
		case 7:
			m.Body = f.str()
		case 8:
			m.Date, err = f.timestamp()
		case 9:
			m.Read = f.flag()
		case 10:
			m.Starred = f.flag()
		case 11:
			m.Folder = model.Folder(f.str())
		case 12:
			m.Labels = append(m.Labels, f.str())
		case 13:
			m.HasAttachments = f.flag()
		}
		return err
	})
}

// EmailUpdate changes flags or moves an email. Unset fields are kept.
type EmailUpdate struct {
	ID      string
	Read    *bool
	Starred *bool
	Folder  model.Folder
}

func (m *EmailUpdate) AppendWire(b []byte) []byte {
	b = appendString(b, 1, m.ID)
	b = appendOptBool(b, 2, m.Read)
	b = appendOptBool(b, 3, m.Starred)
	return appendString(b, 4, string(m.Folder))
}

func (m *EmailUpdate) ConsumeWire(b []byte) error {
	return eachField(b, func(f field) error {
		switch f.num {
		case 1:
			m.ID = f.str()
		case 2:
			m.Read = f.flagP()
		case 3:
			m.Starred = f.flagP()
		case 4:
			m.Folder = model.Folder(f.str())
		}
		return nil
	})
}

type EmailQuery struct {
	Folder model.Folder
	Query  string
	Chips  []string
	Sort   string
}

func (m *EmailQuery) AppendWire(b []byte) []byte {
	b = appendString(b, 1, string(m.Folder))
	b = appendString(b, 2, m.Query)
	b = appendStrings(b, 3, m.Chips)
	return appendString(b, 4, m.Sort)
}

func (m *EmailQuery) ConsumeWire(b []byte) error {
	return eachField(b, func(f field) error {
		switch f.num {
		case 1:
			m.Folder = model.Folder(f.str())
		case 2:
			m.Query = f.str()
		case 3:
			m.Chips = append(m.Chips, f.str())
		case 4:
			m.Sort = f.str()
		}
		return nil
	})
}

type FolderCount struct {
	Folder model.Folder
	Count  int
}

func (m *FolderCount) AppendWire(b []byte) []byte {
	b = appendString(b, 1, string(m.Folder))
	return appendInt(b, 2, int64(m.Count))
}

func (m *FolderCount) ConsumeWire(b []byte) error {
	return eachField(b, func(f field) error {
		switch f.num {
		case 1:
			m.Folder = model.Folder(f.str())
		case 2:
			m.Count = int(f.i64())
		}
		return nil
	})
}

type EmailListResponse struct {
	Emails       []Email
	UnreadCounts []FolderCount
	Labels       []string
}

func (m *EmailListResponse) AppendWire(b []byte) []byte {
	for i := range m.Emails {
		b = appendMessage(b, 1, &m.Emails[i])
	}
	for i := range m.UnreadCounts {
		b = appendMessage(b, 2, &m.UnreadCounts[i])
	}
	return appendStrings(b, 3, m.Labels)
}

func (m *EmailListResponse) ConsumeWire(b []byte) error {
	return eachField(b, func(f field) error {
		switch f.num {
		case 1:
			var e Email
			if err := f.message(&e); err != nil {
				return err
			}
			m.Emails = append(m.Emails, e)
		case 2:
			var c FolderCount
			if err := f.message(&c); err != nil {
				return err
			}
			m.UnreadCounts = append(m.UnreadCounts, c)
		case 3:
			m.Labels = append(m.Labels, f.str())
		}
		return nil
	})
}

type DraftKey struct {
	Kind string
	Key  string
}

func (m *DraftKey) AppendWire(b []byte) []byte {
	b = appendString(b, 1, m.Kind)
	return appendString(b, 2, m.Key)
}

func (m *DraftKey) ConsumeWire(b []byte) error {
	return eachField(b, func(f field) error {
		switch f.num {
		case 1:
			m.Kind = f.str()
		case 2:
			m.Key = f.str()
		}
		return nil
	})
}

type Draft struct {
	Kind      string
	Key       string
	Value     string
	UpdatedAt time.Time
}

func (m *Draft) AppendWire(b []byte) []byte {
	b = appendString(b, 1, m.Kind)
	b = appendString(b, 2, m.Key)
	b = appendString(b, 3, m.Value)
	return appendTime(b, 4, m.UpdatedAt)
}

func (m *Draft) ConsumeWire(b []byte) error {
	return eachField(b, func(f field) error {
		var err error
		switch f.num {
		case 1:
			m.Kind = f.str()
		case 2:
			m.Key = f.str()
		case 3:
			m.Value = f.str()
		case 4:
			m.UpdatedAt, err = f.timestamp()
		}
		return err
	})
}
