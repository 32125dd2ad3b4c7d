package handler

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"clinic-crm/internal/filter"
	"clinic-crm/internal/model"
	"clinic-crm/internal/rpc"
	"clinic-crm/internal/store"
)

// CRM records are shared by every signed-in user; unlike appointments and
// email they carry no owner.

func required(field, v string) error {
	if strings.TrimSpace(v) == "" {
		return invalid(field + " required")
	}
	return nil
}

// save assigns an ID when missing and upserts v.
func save[T any](h *Handler, c *store.Collection[T], v *T, id *string) error {
	if *id == "" {
		*id = uuid.New().String()
	}
	if _, err := c.Upsert(*v); err != nil {
		return h.storeErr(err, logrus.Fields{"record_id": *id})
	}
	return nil
}

func convert[From, To any](in []From, f func(From) To) []To {
	out := make([]To, len(in))
	for i, v := range in {
		out[i] = f(v)
	}
	return out
}

func (h *Handler) SaveContact(ctx context.Context, req *rpc.Contact) (*rpc.Contact, error) {
	c := model.Contact(*req)
	if err := required("name", c.Name); err != nil {
		return nil, err
	}
	if c.Status == "" {
		c.Status = model.ContactActive
	}
	if c.CreatedAt.IsZero() {
		c.CreatedAt = h.now()
	}
	if err := save(h, h.store.Contacts, &c, &c.ID); err != nil {
		return nil, err
	}
	out := rpc.Contact(c)
	return &out, nil
}

func (h *Handler) ListContacts(ctx context.Context, req *rpc.ContactQuery) (*rpc.ContactList, error) {
	list := filter.ContactFilter(*req).Apply(h.store.Contacts.List())
	return &rpc.ContactList{Items: convert(list, func(c model.Contact) rpc.Contact { return rpc.Contact(c) })}, nil
}

func (h *Handler) SaveDeal(ctx context.Context, req *rpc.Deal) (*rpc.Deal, error) {
	d := model.Deal(*req)
	if err := required("title", d.Title); err != nil {
		return nil, err
	}
	if d.ValueCents < 0 {
		return nil, invalid("value cannot be negative")
	}
	if d.Stage == "" {
		d.Stage = model.StageLead
	}
	if d.Priority == "" {
		d.Priority = model.PriorityMedium
	}
	if err := save(h, h.store.Deals, &d, &d.ID); err != nil {
		return nil, err
	}
	out := rpc.Deal(d)
	return &out, nil
}

func (h *Handler) ListDeals(ctx context.Context, req *rpc.DealQuery) (*rpc.DealList, error) {
	list := filter.DealFilter(*req).Apply(h.store.Deals.List())
	return &rpc.DealList{Items: convert(list, func(d model.Deal) rpc.Deal { return rpc.Deal(d) })}, nil
}

func (h *Handler) SaveCall(ctx context.Context, req *rpc.CallRecord) (*rpc.CallRecord, error) {
	c := model.CallRecord(*req)
	if strings.TrimSpace(c.Contact) == "" && strings.TrimSpace(c.Phone) == "" {
		return nil, invalid("contact or phone required")
	}
	if c.DurationSeconds < 0 {
		return nil, invalid("duration cannot be negative")
	}
	if c.StartedAt.IsZero() {
		c.StartedAt = h.now()
	}
	if err := save(h, h.store.Calls, &c, &c.ID); err != nil {
		return nil, err
	}
	out := rpc.CallRecord(c)
	return &out, nil
}

func (h *Handler) ListCalls(ctx context.Context, req *rpc.CallQuery) (*rpc.CallList, error) {
	list := filter.CallFilter(*req).Apply(h.store.Calls.List())
	return &rpc.CallList{Items: convert(list, func(c model.CallRecord) rpc.CallRecord { return rpc.CallRecord(c) })}, nil
}

func (h *Handler) SavePatient(ctx context.Context, req *rpc.Patient) (*rpc.Patient, error) {
	p := model.Patient(*req)
	if err := required("name", p.Name); err != nil {
		return nil, err
	}
	if p.Status == "" {
		p.Status = model.RecordActive
	}
	if err := save(h, h.store.Patients, &p, &p.ID); err != nil {
		return nil, err
	}
	out := rpc.Patient(p)
	return &out, nil
}

func (h *Handler) ListPatients(ctx context.Context, req *rpc.PatientQuery) (*rpc.PatientList, error) {
	list := filter.PatientFilter(*req).Apply(h.store.Patients.List())
	return &rpc.PatientList{Items: convert(list, func(p model.Patient) rpc.Patient { return rpc.Patient(p) })}, nil
}

func (h *Handler) SaveOrganization(ctx context.Context, req *rpc.Organization) (*rpc.Organization, error) {
	o := model.Organization(*req)
	if err := required("name", o.Name); err != nil {
		return nil, err
	}
	if o.Status == "" {
		o.Status = model.RecordActive
	}
	if err := save(h, h.store.Organizations, &o, &o.ID); err != nil {
		return nil, err
	}
	out := rpc.Organization(o)
	return &out, nil
}

func (h *Handler) ListOrganizations(ctx context.Context, req *rpc.OrganizationQuery) (*rpc.OrganizationList, error) {
	list := filter.OrganizationFilter(*req).Apply(h.store.Organizations.List())
	return &rpc.OrganizationList{Items: convert(list, func(o model.Organization) rpc.Organization { return rpc.Organization(o) })}, nil
}

// SavePrescription fills in the patient name from the patient record when
// only the ID is given.
func (h *Handler) SavePrescription(ctx context.Context, req *rpc.Prescription) (*rpc.Prescription, error) {
	p := model.Prescription(*req)
	if err := required("medication", p.Medication); err != nil {
		return nil, err
	}
	if p.Refills < 0 {
		return nil, invalid("refills cannot be negative")
	}
	if p.PatientID != "" && p.PatientName == "" {
		if pt, err := h.store.Patients.Get(p.PatientID); err == nil {
			p.PatientName = pt.Name
		}
	}
	if p.Status == "" {
		p.Status = model.RxPending
	}
	if p.IssuedAt.IsZero() {
		p.IssuedAt = h.now()
	}
	if err := save(h, h.store.Prescriptions, &p, &p.ID); err != nil {
		return nil, err
	}
	out := rpc.Prescription(p)
	return &out, nil
}

func (h *Handler) ListPrescriptions(ctx context.Context, req *rpc.PrescriptionQuery) (*rpc.PrescriptionList, error) {
	list := filter.PrescriptionFilter(*req).Apply(h.store.Prescriptions.List())
	return &rpc.PrescriptionList{Items: convert(list, func(p model.Prescription) rpc.Prescription { return rpc.Prescription(p) })}, nil
}

func (h *Handler) DeleteRecord(ctx context.Context, req *rpc.RecordRef) (*rpc.Empty, error) {
	if req.ID == "" {
		return nil, invalid("id required")
	}
	del := map[string]func(string) error{
		rpc.KindContact:      h.store.Contacts.Delete,
		rpc.KindDeal:         h.store.Deals.Delete,
		rpc.KindCall:         h.store.Calls.Delete,
		rpc.KindPatient:      h.store.Patients.Delete,
		rpc.KindOrganization: h.store.Organizations.Delete,
		rpc.KindPrescription: h.store.Prescriptions.Delete,
	}[req.Kind]
	if del == nil {
		return nil, invalid(fmt.Sprintf("unknown record kind %q", req.Kind))
	}
	if err := del(req.ID); err != nil {
		return nil, h.storeErr(err, logrus.Fields{"kind": req.Kind, "record_id": req.ID})
	}
	return &rpc.Empty{}, nil
}
