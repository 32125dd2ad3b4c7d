// Package store keeps the CRM's working set in memory: one collection per
// entity, each mutated only through its add/update/delete methods.
package store

import (
	"errors"

	"clinic-crm/internal/model"
)

var (
	ErrNotFound  = errors.New("store: not found")
	ErrExists    = errors.New("store: already exists")
	ErrMissingID = errors.New("store: missing id")
)

type Store struct {
	Users         *Users
	Appointments  *Collection[model.Appointment]
	Emails        *Collection[model.Email]
	Contacts      *Collection[model.Contact]
	Deals         *Collection[model.Deal]
	Calls         *Collection[model.CallRecord]
	Patients      *Collection[model.Patient]
	Organizations *Collection[model.Organization]
	Prescriptions *Collection[model.Prescription]
}

func New() *Store {
	return &Store{
		Users:         NewUsers(),
		Appointments:  NewCollection(func(a model.Appointment) string { return a.ID }),
		Emails:        NewCollection(func(e model.Email) string { return e.ID }),
		Contacts:      NewCollection(func(c model.Contact) string { return c.ID }),
		Deals:         NewCollection(func(d model.Deal) string { return d.ID }),
		Calls:         NewCollection(func(c model.CallRecord) string { return c.ID }),
		Patients:      NewCollection(func(p model.Patient) string { return p.ID }),
		Organizations: NewCollection(func(o model.Organization) string { return o.ID }),
		Prescriptions: NewCollection(func(p model.Prescription) string { return p.ID }),
	}
}
