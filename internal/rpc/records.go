package rpc

import (
	"clinic-crm/internal/filter"
	"clinic-crm/internal/model"
)

// Record kinds accepted by DeleteRecord.
const (
	KindContact      = "contact"
	KindDeal         = "deal"
	KindCall         = "call"
	KindPatient      = "patient"
	KindOrganization = "organization"
	KindPrescription = "prescription"
)

type RecordRef struct {
	Kind string
	ID   string
}

func (m *RecordRef) AppendWire(b []byte) []byte {
	b = appendString(b, 1, m.Kind)
	return appendString(b, 2, m.ID)
}

func (m *RecordRef) ConsumeWire(b []byte) error {
	return eachField(b, func(f field) error {
		switch f.num {
		case 1:
			m.Kind = f.str()
		case 2:
			m.ID = f.str()
		}
		return nil
	})
}

type Contact model.Contact

func (m *Contact) AppendWire(b []byte) []byte {
	b = appendString(b, 1, m.ID)
	b = appendString(b, 2, m.Name)
	b = appendString(b, 3, m.Email)
	b = appendString(b, 4, m.Phone)
	b = appendString(b, 5, m.Organization)
	b = appendString(b, 6, string(m.Type))
	b = appendString(b, 7, string(m.Status))
	b = appendStrings(b, 8, m.Tags)
	b = appendTime(b, 9, m.LastContacted)
	return appendTime(b, 10, m.CreatedAt)
}

func (m *Contact) ConsumeWire(b []byte) error {
	return eachField(b, func(f field) error {
		var err error
		switch f.num {
		case 1:
			m.ID = f.str()
		case 2:
			m.Name = f.str()
		case 3:
			m.Email = f.str()
		case 4:
			m.Phone = f.str()
		case 5:
			m.Organization = f.str()
		case 6:
			m.Type = model.ContactType(f.str())
		case 7:
			m.Status = model.ContactStatus(f.str())
		case 8:
			m.Tags = append(m.Tags, f.str())
		case 9:
			m.LastContacted, err = f.timestamp()
		case 10:
			m.CreatedAt, err = f.timestamp()
		}
		return err
	})
}

type ContactList = List[Contact, *Contact]

type ContactQuery filter.ContactFilter

func (m *ContactQuery) AppendWire(b []byte) []byte {
	b = appendString(b, 1, m.Query)
	b = appendStrings(b, 2, m.Statuses)
	b = appendStrings(b, 3, m.Types)
	b = appendStrings(b, 4, m.Tags)
	b = appendTime(b, 5, m.From)
	return appendTime(b, 6, m.To)
}

func (m *ContactQuery) ConsumeWire(b []byte) error {
	return eachField(b, func(f field) error {
		var err error
		switch f.num {
		case 1:
			m.Query = f.str()
		case 2:
			m.Statuses = append(m.Statuses, model.ContactStatus(f.str()))
		case 3:
			m.Types = append(m.Types, model.ContactType(f.str()))
		case 4:
			m.Tags = append(m.Tags, f.str())
		case 5:
			m.From, err = f.timestamp()
		case 6:
			m.To, err = f.timestamp()
		}
		return err
	})
}

type Deal model.Deal

func (m *Deal) AppendWire(b []byte) []byte {
	b = appendString(b, 1, m.ID)
	b = appendString(b, 2, m.Title)
	b = appendString(b, 3, m.Contact)
	b = appendString(b, 4, m.Organization)
	b = appendString(b, 5, string(m.Stage))
	b = appendString(b, 6, string(m.Priority))
	b = appendInt(b, 7, m.ValueCents)
	b = appendTime(b, 8, m.ExpectedClose)
	return appendString(b, 9, m.Owner)
}

func (m *Deal) ConsumeWire(b []byte) error {
	return eachField(b, func(f field) error {
		var err error
		switch f.num {
		case 1:
			m.ID = f.str()
		case 2:
			m.Title = f.str()
		case 3:
			m.Contact = f.str()
		case 4:
			m.Organization = f.str()
		case 5:
			m.Stage = model.DealStage(f.str())
		case 6:
			m.Priority = model.Priority(f.str())
		case 7:
			m.ValueCents = f.i64()
		case 8:
			m.ExpectedClose, err = f.timestamp()
		case 9:
			m.Owner = f.str()
		}
		return err
	})
}

type DealList = List[Deal, *Deal]

type DealQuery filter.DealFilter

func (m *DealQuery) AppendWire(b []byte) []byte {
	b = appendString(b, 1, m.Query)
	b = appendStrings(b, 2, m.Stages)
	b = appendStrings(b, 3, m.Priorities)
	b = appendInt(b, 4, m.MinValueCents)
	b = appendTime(b, 5, m.From)
	return appendTime(b, 6, m.To)
}

func (m *DealQuery) ConsumeWire(b []byte) error {
	return eachField(b, func(f field) error {
		var err error
		switch f.num {
		case 1:
			m.Query = f.str()
		case 2:
			m.Stages = append(m.Stages, model.DealStage(f.str()))
		case 3:
			m.Priorities = append(m.Priorities, model.Priority(f.str()))
		case 4:
			m.MinValueCents = f.i64()
		case 5:
			m.From, err = f.timestamp()
		case 6:
			m.To, err = f.timestamp()
		}
		return err
	})
}

type CallRecord model.CallRecord

func (m *CallRecord) AppendWire(b []byte) []byte {
	b = appendString(b, 1, m.ID)
	b = appendString(b, 2, m.Contact)
	b = appendString(b, 3, m.Phone)
	b = appendString(b, 4, string(m.Direction))
	b = appendString(b, 5, string(m.Status))
	b = appendInt(b, 6, int64(m.DurationSeconds))
	b = appendTime(b, 7, m.StartedAt)
	return appendString(b, 8, m.Notes)
}

func (m *CallRecord) ConsumeWire(b []byte) error {
	return eachField(b, func(f field) error {
		var err error
		switch f.num {
		case 1:
			m.ID = f.str()
		case 2:
			m.Contact = f.str()
		case 3:
			m.Phone = f.str()
		case 4:
			m.Direction = model.CallDirection(f.str())
		case 5:
			m.Status = model.CallStatus(f.str())
		case 6:
			m.DurationSeconds = int(f.i64())
		case 7:
			m.StartedAt, err = f.timestamp()
		case 8:
			m.Notes = f.str()
		}
		return err
	})
}

type CallList = List[CallRecord, *CallRecord]

type CallQuery filter.CallFilter

func (m *CallQuery) AppendWire(b []byte) []byte {
	b = appendString(b, 1, m.Query)
	b = appendStrings(b, 2, m.Directions)
	b = appendStrings(b, 3, m.Statuses)
	b = appendTime(b, 4, m.From)
	return appendTime(b, 5, m.To)
}

func (m *CallQuery) ConsumeWire(b []byte) error {
	return eachField(b, func(f field) error {
		var err error
		switch f.num {
		case 1:
			m.Query = f.str()
		case 2:
			m.Directions = append(m.Directions, model.CallDirection(f.str()))
		case 3:
			m.Statuses = append(m.Statuses, model.CallStatus(f.str()))
		case 4:
			m.From, err = f.timestamp()
		case 5:
			m.To, err = f.timestamp()
		}
		return err
	})
}

type Patient model.Patient

func (m *Patient) AppendWire(b []byte) []byte {
	b = appendString(b, 1, m.ID)
	b = appendString(b, 2, m.Name)
	b = appendTime(b, 3, m.DateOfBirth)
	b = appendString(b, 4, m.Gender)
	b = appendString(b, 5, m.Phone)
	b = appendString(b, 6, m.Email)
	b = appendString(b, 7, m.MRN)
	b = appendString(b, 8, string(m.Status))
	b = appendString(b, 9, m.PrimaryProvider)
	b = appendString(b, 10, m.OrganizationID)
	return appendTime(b, 11, m.LastVisit)
}

func (m *Patient) ConsumeWire(b []byte) error {
	return eachField(b, func(f field) error {
		var err error
		switch f.num {
		case 1:
			m.ID = f.str()
		case 2:
			m.Name = f.str()
		case 3:
			m.DateOfBirth, err = f.timestamp()
		case 4:
			m.Gender = f.str()
		case 5:
			m.Phone = f.str()
		case 6:
			m.Email = f.str()
		case 7:
			m.MRN = f.str()
		case 8:
			m.Status = model.RecordStatus(f.str())
		case 9:
			m.PrimaryProvider = f.str()
		case 10:
			m.OrganizationID = f.str()
		case 11:
			m.LastVisit, err = f.timestamp()
		}
		return err
	})
}

type PatientList = List[Patient, *Patient]

type PatientQuery filter.PatientFilter

func (m *PatientQuery) AppendWire(b []byte) []byte {
	b = appendString(b, 1, m.Query)
	b = appendStrings(b, 2, m.Statuses)
	return appendString(b, 3, m.Provider)
}

func (m *PatientQuery) ConsumeWire(b []byte) error {
	return eachField(b, func(f field) error {
		switch f.num {
		case 1:
			m.Query = f.str()
		case 2:
			m.Statuses = append(m.Statuses, model.RecordStatus(f.str()))
		case 3:
			m.Provider = f.str()
		}
		return nil
	})
}

type Organization model.Organization

func (m *Organization) AppendWire(b []byte) []byte {
	b = appendString(b, 1, m.ID)
	b = appendString(b, 2, m.Name)
	b = appendString(b, 3, string(m.Type))
	b = appendString(b, 4, m.Phone)
	b = appendString(b, 5, m.Email)
	b = appendString(b, 6, m.Address)
	return appendString(b, 7, string(m.Status))
}

func (m *Organization) ConsumeWire(b []byte) error {
	return eachField(b, func(f field) error {
		switch f.num {
		case 1:
			m.ID = f.str()
		case 2:
			m.Name = f.str()
		case 3:
			m.Type = model.OrganizationType(f.str())
		case 4:
			m.Phone = f.str()
		case 5:
			m.Email = f.str()
		case 6:
			m.Address = f.str()
		case 7:
			m.Status = model.RecordStatus(f.str())
		}
		return nil
	})
}

type OrganizationList = List[Organization, *Organization]

type OrganizationQuery filter.OrganizationFilter

func (m *OrganizationQuery) AppendWire(b []byte) []byte {
	b = appendString(b, 1, m.Query)
	b = appendStrings(b, 2, m.Types)
	return appendStrings(b, 3, m.Statuses)
}

func (m *OrganizationQuery) ConsumeWire(b []byte) error {
	return eachField(b, func(f field) error {
		switch f.num {
		case 1:
			m.Query = f.str()
		case 2:
			m.Types = append(m.Types, model.OrganizationType(f.str()))
		case 3:
			m.Statuses = append(m.Statuses, model.RecordStatus(f.str()))
		}
		return nil
	})
}

type Prescription model.Prescription

func (m *Prescription) AppendWire(b []byte) []byte {
	b = appendString(b, 1, m.ID)
	b = appendString(b, 2, m.PatientID)
	b = appendString(b, 3, m.PatientName)
	b = appendString(b, 4, m.Medication)
	b = appendString(b, 5, m.Dosage)
	b = appendString(b, 6, m.Frequency)
	b = appendString(b, 7, m.Prescriber)
	b = appendString(b, 8, string(m.Status))
	b = appendTime(b, 9, m.IssuedAt)
	return appendInt(b, 10, int64(m.Refills))
}

func (m *Prescription) ConsumeWire(b []byte) error {
	return eachField(b, func(f field) error {
		var err error
		switch f.num {
		case 1:
			m.ID = f.str()
		case 2:
			m.PatientID = f.str()
		case 3:
			m.PatientName = f.str()
		case 4:
			m.Medication = f.str()
		case 5:
			m.Dosage = f.str()
		case 6:
			m.Frequency = f.str()
		case 7:
			m.Prescriber = f.str()
		case 8:
			m.Status = model.PrescriptionStatus(f.str())
		case 9:
			m.IssuedAt, err = f.timestamp()
		case 10:
			m.Refills = int(f.i64())
		}
		return err
	})
}

type PrescriptionList = List[Prescription, *Prescription]

type PrescriptionQuery filter.PrescriptionFilter

func (m *PrescriptionQuery) AppendWire(b []byte) []byte {
	b = appendString(b, 1, m.Query)
	b = appendStrings(b, 2, m.Statuses)
	b = appendString(b, 3, m.PatientID)
	b = appendTime(b, 4, m.From)
	return appendTime(b, 5, m.To)
}

func (m *PrescriptionQuery) ConsumeWire(b []byte) error {
	return eachField(b, func(f field) error {
		var err error
		switch f.num {
		case 1:
			m.Query = f.str()
		case 2:
			m.Statuses = append(m.Statuses, model.PrescriptionStatus(f.str()))
		case 3:
			m.PatientID = f.str()
		case 4:
			m.From, err = f.timestamp()
		case 5:
			m.To, err = f.timestamp()
		}
		return err
	})
}
