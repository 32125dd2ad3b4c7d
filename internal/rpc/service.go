// Package rpc defines the crm.v1.CRMService gRPC surface: its messages,
// wire codec, service descriptor and a typed client.
package rpc

import (
	"context"
	"fmt"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const ServiceName = "crm.v1.CRMService"

// FullMethod returns the "/service/method" path gRPC routes on.
func FullMethod(name string) string { return "/" + ServiceName + "/" + name }

// Codec marshals Message values in protobuf wire format. Install it with
// grpc.ForceServerCodec on the server and grpc.ForceCodec on clients.
type Codec struct{}

func (Codec) Marshal(v any) ([]byte, error) {
	m, ok := v.(Message)
	if !ok {
		return nil, fmt.Errorf("rpc: cannot marshal %T", v)
	}
	return m.AppendWire(nil), nil
}

func (Codec) Unmarshal(data []byte, v any) error {
	m, ok := v.(Message)
	if !ok {
		return fmt.Errorf("rpc: cannot unmarshal into %T", v)
	}
	return m.ConsumeWire(data)
}

func (Codec) Name() string { return "proto" }

type CRMServer interface {
	Register(context.Context, *RegisterRequest) (*AuthResponse, error)
	Login(context.Context, *LoginRequest) (*AuthResponse, error)

	CreateAppointment(context.Context, *Appointment) (*Appointment, error)
	UpdateAppointment(context.Context, *Appointment) (*Appointment, error)
	SetAppointmentStatus(context.Context, *StatusRequest) (*Appointment, error)
	DeleteAppointment(context.Context, *IDRequest) (*Empty, error)
	ListAppointments(context.Context, *AppointmentQuery) (*AppointmentList, error)
	CheckConflict(context.Context, *Appointment) (*ConflictResponse, error)
	ExtractSchedule(context.Context, *ExtractRequest) (*ExtractResponse, error)
	DurationOptions(context.Context, *Empty) (*DurationOptionList, error)

	SaveEmail(context.Context, *Email) (*Email, error)
	UpdateEmail(context.Context, *EmailUpdate) (*Email, error)
	ListEmails(context.Context, *EmailQuery) (*EmailListResponse, error)

	SaveContact(context.Context, *Contact) (*Contact, error)
	ListContacts(context.Context, *ContactQuery) (*ContactList, error)
	SaveDeal(context.Context, *Deal) (*Deal, error)
	ListDeals(context.Context, *DealQuery) (*DealList, error)
	SaveCall(context.Context, *CallRecord) (*CallRecord, error)
	ListCalls(context.Context, *CallQuery) (*CallList, error)
	SavePatient(context.Context, *Patient) (*Patient, error)
	ListPatients(context.Context, *PatientQuery) (*PatientList, error)
	SaveOrganization(context.Context, *Organization) (*Organization, error)
	ListOrganizations(context.Context, *OrganizationQuery) (*OrganizationList, error)
	SavePrescription(context.Context, *Prescription) (*Prescription, error)
	ListPrescriptions(context.Context, *PrescriptionQuery) (*PrescriptionList, error)
	DeleteRecord(context.Context, *RecordRef) (*Empty, error)

	PutDraft(context.Context, *Draft) (*Draft, error)
	GetDraft(context.Context, *DraftKey) (*Draft, error)
	DeleteDraft(context.Context, *DraftKey) (*Empty, error)
}

// method builds the descriptor for one unary RPC.
func method[Req any, PReq interface {
	*Req
	Message
}, Resp Message](name string, call func(CRMServer, context.Context, PReq) (Resp, error)) grpc.MethodDesc {
	return grpc.MethodDesc{
		MethodName: name,
		Handler: func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
			in := PReq(new(Req))
			if err := dec(in); err != nil {
				return nil, status.Errorf(codes.InvalidArgument, "decode %s: %v", name, err)
			}
			if interceptor == nil {
				return call(srv.(CRMServer), ctx, in)
			}
			info := &grpc.UnaryServerInfo{Server: srv, FullMethod: FullMethod(name)}
			handler := func(ctx context.Context, req any) (any, error) {
				return call(srv.(CRMServer), ctx, req.(PReq))
			}
			return interceptor(ctx, in, info, handler)
		},
	}
}

var ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*CRMServer)(nil),
	Methods: []grpc.MethodDesc{
		method("Register", CRMServer.Register),
		method("Login", CRMServer.Login),
		method("CreateAppointment", CRMServer.CreateAppointment),
		method("UpdateAppointment", CRMServer.UpdateAppointment),
		method("SetAppointmentStatus", CRMServer.SetAppointmentStatus),
		method("DeleteAppointment", CRMServer.DeleteAppointment),
		method("ListAppointments", CRMServer.ListAppointments),
		method("CheckConflict", CRMServer.CheckConflict),
		method("ExtractSchedule", CRMServer.ExtractSchedule),
		method("DurationOptions", CRMServer.DurationOptions),
		method("SaveEmail", CRMServer.SaveEmail),
		method("UpdateEmail", CRMServer.UpdateEmail),
		method("ListEmails", CRMServer.ListEmails),
		method("SaveContact", CRMServer.SaveContact),
		method("ListContacts", CRMServer.ListContacts),
		method("SaveDeal", CRMServer.SaveDeal),
		method("ListDeals", CRMServer.ListDeals),
		method("SaveCall", CRMServer.SaveCall),
		method("ListCalls", CRMServer.ListCalls),
		method("SavePatient", CRMServer.SavePatient),
		method("ListPatients", CRMServer.ListPatients),
		method("SaveOrganization", CRMServer.SaveOrganization),
		method("ListOrganizations", CRMServer.ListOrganizations),
		method("SavePrescription", CRMServer.SavePrescription),
		method("ListPrescriptions", CRMServer.ListPrescriptions),
		method("DeleteRecord", CRMServer.DeleteRecord),
		method("PutDraft", CRMServer.PutDraft),
		method("GetDraft", CRMServer.GetDraft),
		method("DeleteDraft", CRMServer.DeleteDraft),
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "crm/v1/crm.proto",
}

func RegisterCRMServer(s grpc.ServiceRegistrar, srv CRMServer) {
	s.RegisterService(&ServiceDesc, srv)
}
