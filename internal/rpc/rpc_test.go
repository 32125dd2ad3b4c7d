package rpc

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/encoding/protowire"

	"clinic-crm/internal/model"
)

func TestAppointmentModelConversion(t *testing.T) {
	a := model.Appointment{
		ID: "a1", Title: "Checkup", Date: time.Date(2024, 3, 11, 0, 0, 0, 0, time.UTC),
		Time: "9:30 AM", Duration: 45, Status: model.StatusUpcoming, OwnerID: "u1",
	}
	wire := AppointmentFrom(a)
	assert.Equal(t, "2024-03-11", wire.Date)

	back, err := wire.Model()
	require.NoError(t, err)
	a.OwnerID = ""
	assert.Equal(t, a, back)

	_, err = (&Appointment{Date: "11/03/2024"}).Model()
	assert.ErrorIs(t, err, ErrBadDate)
	_, err = (&Appointment{}).Model()
	assert.ErrorIs(t, err, ErrBadDate)
}

func TestEmailUpdateKeepsExplicitFalse(t *testing.T) {
	no := false
	in := &EmailUpdate{ID: "e1", Read: &no}
	var out EmailUpdate
	require.NoError(t, Codec{}.Unmarshal(mustMarshal(t, in), &out))

	require.NotNil(t, out.Read)
	assert.False(t, *out.Read)
	assert.Nil(t, out.Starred, "unset flags stay unset")
}

func TestTimesSurviveTheWire(t *testing.T) {
	when := time.Date(2024, 3, 11, 14, 5, 7, 123, time.FixedZone("EST", -5*3600))
	in := &Contact{ID: "c1", LastContacted: when}
	var out Contact
	require.NoError(t, Codec{}.Unmarshal(mustMarshal(t, in), &out))
	assert.True(t, when.Equal(out.LastContacted))
	assert.True(t, out.CreatedAt.IsZero(), "zero times are omitted")
}

func TestUnknownFieldsAreSkipped(t *testing.T) {
	b := (&IDRequest{ID: "x"}).AppendWire(nil)
	b = protowire.AppendTag(b, 99, protowire.Fixed64Type)
	b = protowire.AppendFixed64(b, 42)
	b = protowire.AppendTag(b, 98, protowire.VarintType)
	b = protowire.AppendVarint(b, 7)

	var out IDRequest
	require.NoError(t, out.ConsumeWire(b))
	assert.Equal(t, "x", out.ID)
}

func TestTruncatedInputFails(t *testing.T) {
	b := (&RegisterRequest{Email: "doc@clinic.org"}).AppendWire(nil)
	var out RegisterRequest
	assert.Error(t, out.ConsumeWire(b[:len(b)-3]))
}

func TestListAndNestedMessages(t *testing.T) {
	in := &EmailListResponse{
		Emails:       []Email{{ID: "e1", Labels: []string{"lab", "urgent"}}, {ID: "e2", Read: true}},
		UnreadCounts: []FolderCount{{Folder: model.FolderInbox, Count: 2}},
		Labels:       []string{"lab", "urgent"},
	}
	var out EmailListResponse
	require.NoError(t, Codec{}.Unmarshal(mustMarshal(t, in), &out))
	assert.Equal(t, in, &out)

	list := &PatientList{Items: []Patient{{ID: "p1", Status: model.RecordActive}, {ID: "p2"}}}
	var back PatientList
	require.NoError(t, Codec{}.Unmarshal(mustMarshal(t, list), &back))
	assert.Equal(t, list.Items, back.Items)
}

func TestQueriesCarryFilterState(t *testing.T) {
	in := &DealQuery{
		Query: "ehr", Stages: []model.DealStage{model.StageProposal, model.StageWon},
		MinValueCents: 100000, From: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}
	var out DealQuery
	require.NoError(t, Codec{}.Unmarshal(mustMarshal(t, in), &out))
	assert.Equal(t, in, &out)
}

func TestCodecRejectsForeignTypes(t *testing.T) {
	_, err := Codec{}.Marshal("not a message")
	assert.Error(t, err)
	assert.Error(t, Codec{}.Unmarshal(nil, 42))
	assert.Equal(t, "proto", Codec{}.Name())
}

func TestServiceDescCoversServer(t *testing.T) {
	names := map[string]bool{}
	for _, m := range ServiceDesc.Methods {
		assert.False(t, names[m.MethodName], "duplicate %s", m.MethodName)
		names[m.MethodName] = true
	}
	assert.Len(t, names, 29)
	assert.Equal(t, "/crm.v1.CRMService/Login", FullMethod("Login"))
}

func mustMarshal(t *testing.T, m Message) []byte {
	t.Helper()
	b, err := Codec{}.Marshal(m)
	require.NoError(t, err)
	return b
}
