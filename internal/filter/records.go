package filter

import (
	"time"

	"clinic-crm/internal/model"
)

type ContactFilter struct {
	Query    string
	Statuses []model.ContactStatus
	Types    []model.ContactType
	Tags     []string
	From, To time.Time // last contacted
}

func (f ContactFilter) Predicate() Predicate[model.Contact] {
	return All[model.Contact](
		func(c model.Contact) bool {
			return Contains(f.Query, c.Name, c.Email, c.Phone, c.Organization)
		},
		func(c model.Contact) bool { return OneOf(f.Statuses, c.Status) },
		func(c model.Contact) bool { return OneOf(f.Types, c.Type) },
		func(c model.Contact) bool { return AnyOf(f.Tags, c.Tags) },
		func(c model.Contact) bool { return Within(c.LastContacted, f.From, f.To) },
	)
}

func (f ContactFilter) Apply(list []model.Contact) []model.Contact {
	return Apply(list, f.Predicate())
}

type DealFilter struct {
	Query         string
	Stages        []model.DealStage
	Priorities    []model.Priority
	MinValueCents int64
	From, To      time.Time // expected close
}

func (f DealFilter) Predicate() Predicate[model.Deal] {
	return All[model.Deal](
		func(d model.Deal) bool {
			return Contains(f.Query, d.Title, d.Contact, d.Organization, d.Owner)
		},
		func(d model.Deal) bool { return OneOf(f.Stages, d.Stage) },
		func(d model.Deal) bool { return OneOf(f.Priorities, d.Priority) },
		func(d model.Deal) bool { return d.ValueCents >= f.MinValueCents },
		func(d model.Deal) bool { return Within(d.ExpectedClose, f.From, f.To) },
	)
}

func (f DealFilter) Apply(list []model.Deal) []model.Deal {
	return Apply(list, f.Predicate())
}

type CallFilter struct {
	Query      string
	Directions []model.CallDirection
	Statuses   []model.CallStatus
	From, To   time.Time
}

func (f CallFilter) Predicate() Predicate[model.CallRecord] {
	return All[model.CallRecord](
		func(c model.CallRecord) bool { return Contains(f.Query, c.Contact, c.Phone, c.Notes) },
		func(c model.CallRecord) bool { return OneOf(f.Directions, c.Direction) },
		func(c model.CallRecord) bool { return OneOf(f.Statuses, c.Status) },
		func(c model.CallRecord) bool { return Within(c.StartedAt, f.From, f.To) },
	)
}

func (f CallFilter) Apply(list []model.CallRecord) []model.CallRecord {
	return Apply(list, f.Predicate())
}

type PatientFilter struct {
	Query    string
	Statuses []model.RecordStatus
	Provider string
}

func (f PatientFilter) Predicate() Predicate[model.Patient] {
	return All[model.Patient](
		func(p model.Patient) bool { return Contains(f.Query, p.Name, p.MRN, p.Email, p.Phone) },
		func(p model.Patient) bool { return OneOf(f.Statuses, p.Status) },
		func(p model.Patient) bool { return f.Provider == "" || p.PrimaryProvider == f.Provider },
	)
}

func (f PatientFilter) Apply(list []model.Patient) []model.Patient {
	return Apply(list, f.Predicate())
}

type OrganizationFilter struct {
	Query    string
	Types    []model.OrganizationType
	Statuses []model.RecordStatus
}

func (f OrganizationFilter) Predicate() Predicate[model.Organization] {
	return All[model.Organization](
		func(o model.Organization) bool { return Contains(f.Query, o.Name, o.Email, o.Phone, o.Address) },
		func(o model.Organization) bool { return OneOf(f.Types, o.Type) },
		func(o model.Organization) bool { return OneOf(f.Statuses, o.Status) },
	)
}

func (f OrganizationFilter) Apply(list []model.Organization) []model.Organization {
	return Apply(list, f.Predicate())
}

type PrescriptionFilter struct {
	Query     string
	Statuses  []model.PrescriptionStatus
	PatientID string
	From, To  time.Time // issued
}

func (f PrescriptionFilter) Predicate() Predicate[model.Prescription] {
	return All[model.Prescription](
		func(p model.Prescription) bool {
			return Contains(f.Query, p.Medication, p.PatientName, p.Prescriber)
		},
		func(p model.Prescription) bool { return OneOf(f.Statuses, p.Status) },
		func(p model.Prescription) bool { return f.PatientID == "" || p.PatientID == f.PatientID },
		func(p model.Prescription) bool { return Within(p.IssuedAt, f.From, f.To) },
	)
}

func (f PrescriptionFilter) Apply(list []model.Prescription) []model.Prescription {
	return Apply(list, f.Predicate())
}
