package model

import "time"

type ContactType string

const (
	ContactPatient  ContactType = "patient"
	ContactProvider ContactType = "provider"
	ContactVendor   ContactType = "vendor"
	ContactPartner  ContactType = "partner"
)

type ContactStatus string

const (
	ContactActive   ContactStatus = "active"
	ContactInactive ContactStatus = "inactive"
	ContactLead     ContactStatus = "lead"
)

type Contact struct {
	ID            string
	Name          string
	Email         string
	Phone         string
	Organization  string
	Type          ContactType
	Status        ContactStatus
	Tags          []string
	LastContacted time.Time
	CreatedAt     time.Time
}

type DealStage string

const (
	StageLead        DealStage = "lead"
	StageQualified   DealStage = "qualified"
	StageProposal    DealStage = "proposal"
	StageNegotiation DealStage = "negotiation"
	StageWon         DealStage = "won"
	StageLost        DealStage = "lost"
)

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

type Deal struct {
	ID            string
	Title         string
	Contact       string
	Organization  string
	Stage         DealStage
	Priority      Priority
	ValueCents    int64
	ExpectedClose time.Time
	Owner         string
}

type CallDirection string

const (
	CallInbound  CallDirection = "inbound"
	CallOutbound CallDirection = "outbound"
)

type CallStatus string

const (
	CallCompleted CallStatus = "completed"
	CallMissed    CallStatus = "missed"
	CallVoicemail CallStatus = "voicemail"
	CallScheduled CallStatus = "scheduled"
)

type CallRecord struct {
	ID              string
	Contact         string
	Phone           string
	Direction       CallDirection
	Status          CallStatus
	DurationSeconds int
	StartedAt       time.Time
	Notes           string
}

type RecordStatus string

const (
	RecordActive   RecordStatus = "active"
	RecordInactive RecordStatus = "inactive"
)

type Patient struct {
	ID              string
	Name            string
	DateOfBirth     time.Time
	Gender          string
	Phone           string
	Email           string
	MRN             string
	Status          RecordStatus
	PrimaryProvider string
	OrganizationID  string
	LastVisit       time.Time
}

type OrganizationType string

const (
	OrgClinic     OrganizationType = "clinic"
	OrgHospital   OrganizationType = "hospital"
	OrgPharmacy   OrganizationType = "pharmacy"
	OrgLaboratory OrganizationType = "laboratory"
	OrgInsurer    OrganizationType = "insurer"
)

type Organization struct {
	ID      string
	Name    string
	Type    OrganizationType
	Phone   string
	Email   string
	Address string
	Status  RecordStatus
}

type PrescriptionStatus string

const (
	RxPending      PrescriptionStatus = "pending"
	RxActive       PrescriptionStatus = "active"
	RxCompleted    PrescriptionStatus = "completed"
	RxDiscontinued PrescriptionStatus = "discontinued"
)

type Prescription struct {
	ID          string
	PatientID   string
	PatientName string
	Medication  string
	Dosage      string
	Frequency   string
	Prescriber  string
	Status      PrescriptionStatus
	IssuedAt    time.Time
	Refills     int
}
