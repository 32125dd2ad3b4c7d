package rpc

import (
	"context"

	"google.golang.org/grpc"
)

// Client calls CRMService over any gRPC connection.
type Client struct {
	cc grpc.ClientConnInterface
}

func NewClient(cc grpc.ClientConnInterface) *Client { return &Client{cc: cc} }

func invoke[Resp any, P interface {
	*Resp
	Message
}](ctx context.Context, c *Client, name string, in Message, opts []grpc.CallOption) (P, error) {
	out := P(new(Resp))
	opts = append(opts, grpc.ForceCodec(Codec{}))
	if err := c.cc.Invoke(ctx, FullMethod(name), in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) Register(ctx context.Context, in *RegisterRequest, opts ...grpc.CallOption) (*AuthResponse, error) {
	return invoke[AuthResponse](ctx, c, "Register", in, opts)
}

func (c *Client) Login(ctx context.Context, in *LoginRequest, opts ...grpc.CallOption) (*AuthResponse, error) {
	return invoke[AuthResponse](ctx, c, "Login", in, opts)
}

func (c *Client) CreateAppointment(ctx context.Context, in *Appointment, opts ...grpc.CallOption) (*Appointment, error) {
	return invoke[Appointment](ctx, c, "CreateAppointment", in, opts)
}

func (c *Client) UpdateAppointment(ctx context.Context, in *Appointment, opts ...grpc.CallOption) (*Appointment, error) {
	return invoke[Appointment](ctx, c, "UpdateAppointment", in, opts)
}

func (c *Client) SetAppointmentStatus(ctx context.Context, in *StatusRequest, opts ...grpc.CallOption) (*Appointment, error) {
	return invoke[Appointment](ctx, c, "SetAppointmentStatus", in, opts)
}

func (c *Client) DeleteAppointment(ctx context.Context, in *IDRequest, opts ...grpc.CallOption) (*Empty, error) {
	return invoke[Empty](ctx, c, "DeleteAppointment", in, opts)
}

func (c *Client) ListAppointments(ctx context.Context, in *AppointmentQuery, opts ...grpc.CallOption) (*AppointmentList, error) {
	return invoke[AppointmentList](ctx, c, "ListAppointments", in, opts)
}

func (c *Client) CheckConflict(ctx context.Context, in *Appointment, opts ...grpc.CallOption) (*ConflictResponse, error) {
	return invoke[ConflictResponse](ctx, c, "CheckConflict", in, opts)
}

func (c *Client) ExtractSchedule(ctx context.Context, in *ExtractRequest, opts ...grpc.CallOption) (*ExtractResponse, error) {
	return invoke[ExtractResponse](ctx, c, "ExtractSchedule", in, opts)
}

func (c *Client) DurationOptions(ctx context.Context, opts ...grpc.CallOption) (*DurationOptionList, error) {
	return invoke[DurationOptionList](ctx, c, "DurationOptions", &Empty{}, opts)
}

func (c *Client) SaveEmail(ctx context.Context, in *Email, opts ...grpc.CallOption) (*Email, error) {
	return invoke[Email](ctx, c, "SaveEmail", in, opts)
}

func (c *Client) UpdateEmail(ctx context.Context, in *EmailUpdate, opts ...grpc.CallOption) (*Email, error) {
	return invoke[Email](ctx, c, "UpdateEmail", in, opts)
}

func (c *Client) ListEmails(ctx context.Context, in *EmailQuery, opts ...grpc.CallOption) (*EmailListResponse, error) {
	return invoke[EmailListResponse](ctx, c, "ListEmails", in, opts)
}

func (c *Client) SaveContact(ctx context.Context, in *Contact, opts ...grpc.CallOption) (*Contact, error) {
	return invoke[Contact](ctx, c, "SaveContact", in, opts)
}

func (c *Client) ListContacts(ctx context.Context, in *ContactQuery, opts ...grpc.CallOption) (*ContactList, error) {
	return invoke[ContactList](ctx, c, "ListContacts", in, opts)
}

func (c *Client) SaveDeal(ctx context.Context, in *Deal, opts ...grpc.CallOption) (*Deal, error) {
	return invoke[Deal](ctx, c, "SaveDeal", in, opts)
}

func (c *Client) ListDeals(ctx context.Context, in *DealQuery, opts ...grpc.CallOption) (*DealList, error) {
	return invoke[DealList](ctx, c, "ListDeals", in, opts)
}

func (c *Client) SaveCall(ctx context.Context, in *CallRecord, opts ...grpc.CallOption) (*CallRecord, error) {
	return invoke[CallRecord](ctx, c, "SaveCall", in, opts)
}

func (c *Client) ListCalls(ctx context.Context, in *CallQuery, opts ...grpc.CallOption) (*CallList, error) {
	return invoke[CallList](ctx, c, "ListCalls", in, opts)
}

func (c *Client) SavePatient(ctx context.Context, in *Patient, opts ...grpc.CallOption) (*Patient, error) {
	return invoke[Patient](ctx, c, "SavePatient", in, opts)
}

func (c *Client) ListPatients(ctx context.Context, in *PatientQuery, opts ...grpc.CallOption) (*PatientList, error) {
	return invoke[PatientList](ctx, c, "ListPatients", in, opts)
}

func (c *Client) SaveOrganization(ctx context.Context, in *Organization, opts ...grpc.CallOption) (*Organization, error) {
	return invoke[Organization](ctx, c, "SaveOrganization", in, opts)
}

func (c *Client) ListOrganizations(ctx context.Context, in *OrganizationQuery, opts ...grpc.CallOption) (*OrganizationList, error) {
	return invoke[OrganizationList](ctx, c, "ListOrganizations", in, opts)
}

func (c *Client) SavePrescription(ctx context.Context, in *Prescription, opts ...grpc.CallOption) (*Prescription, error) {
	return invoke[Prescription](ctx, c, "SavePrescription", in, opts)
}

func (c *Client) ListPrescriptions(ctx context.Context, in *PrescriptionQuery, opts ...grpc.CallOption) (*PrescriptionList, error) {
	return invoke[PrescriptionList](ctx, c, "ListPrescriptions", in, opts)
}

func (c *Client) DeleteRecord(ctx context.Context, in *RecordRef, opts ...grpc.CallOption) (*Empty, error) {
	return invoke[Empty](ctx, c, "DeleteRecord", in, opts)
}

func (c *Client) PutDraft(ctx context.Context, in *Draft, opts ...grpc.CallOption) (*Draft, error) {
	return invoke[Draft](ctx, c, "PutDraft", in, opts)
}

func (c *Client) GetDraft(ctx context.Context, in *DraftKey, opts ...grpc.CallOption) (*Draft, error) {
	return invoke[Draft](ctx, c, "GetDraft", in, opts)
}

func (c *Client) DeleteDraft(ctx context.Context, in *DraftKey, opts ...grpc.CallOption) (*Empty, error) {
	return invoke[Empty](ctx, c, "DeleteDraft", in, opts)
}
