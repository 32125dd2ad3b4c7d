package store

import (
	"context"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"clinic-crm/internal/model"
)

func contact(id, name string) model.Contact { return model.Contact{ID: id, Name: name} }

func TestCollectionAddGetList(t *testing.T) {
	s := New()
	require.NoError(t, s.Contacts.Add(contact("c1", "Jane")))
	require.NoError(t, s.Contacts.Add(contact("c2", "John")))

	assert.ErrorIs(t, s.Contacts.Add(contact("c1", "Dup")), ErrExists)
	assert.ErrorIs(t, s.Contacts.Add(contact("", "NoID")), ErrMissingID)

	got, err := s.Contacts.Get("c2")
	require.NoError(t, err)
	assert.Equal(t, "John", got.Name)

	_, err = s.Contacts.Get("nope")
	assert.ErrorIs(t, err, ErrNotFound)

	assert.Equal(t, 2, s.Contacts.Len())
	assert.Equal(t, []model.Contact{contact("c1", "Jane"), contact("c2", "John")}, s.Contacts.List())
}

func TestCollectionUpdateUpsertDelete(t *testing.T) {
	c := NewCollection(func(d model.Deal) string { return d.ID })

	assert.ErrorIs(t, c.Update(model.Deal{ID: "d1"}), ErrNotFound)

	created, err := c.Upsert(model.Deal{ID: "d1", Title: "EHR"})
	require.NoError(t, err)
	assert.True(t, created)

	created, err = c.Upsert(model.Deal{ID: "d1", Title: "EHR rollout"})
	require.NoError(t, err)
	assert.False(t, created)

	require.NoError(t, c.Update(model.Deal{ID: "d1", Title: "EHR phase 2"}))
	got, _ := c.Get("d1")
	assert.Equal(t, "EHR phase 2", got.Title)

	require.NoError(t, c.Delete("d1"))
	assert.ErrorIs(t, c.Delete("d1"), ErrNotFound)
	assert.Empty(t, c.List())
}

func TestCollectionSnapshotsAreStable(t *testing.T) {
	c := NewCollection(func(p model.Patient) string { return p.ID })
	require.NoError(t, c.Add(model.Patient{ID: "p1", Name: "Ana"}))

	snap := c.List()
	require.NoError(t, c.Update(model.Patient{ID: "p1", Name: "Ana Ruiz"}))
	require.NoError(t, c.Add(model.Patient{ID: "p2", Name: "Ben"}))

	assert.Equal(t, "Ana", snap[0].Name)
	assert.Len(t, snap, 1)

	snap[0].Name = "changed by caller"
	got, _ := c.Get("p1")
	assert.Equal(t, "Ana Ruiz", got.Name)
}

func TestCollectionReplaceAndFind(t *testing.T) {
	c := NewCollection(func(o model.Organization) string { return o.ID })
	assert.ErrorIs(t, c.Replace([]model.Organization{{ID: "o1"}, {ID: "o1"}}), ErrExists)
	assert.ErrorIs(t, c.Replace([]model.Organization{{ID: ""}}), ErrMissingID)

	orgs := []model.Organization{
		{ID: "o1", Type: model.OrgClinic},
		{ID: "o2", Type: model.OrgPharmacy},
		{ID: "o3", Type: model.OrgClinic},
	}
	require.NoError(t, c.Replace(orgs))
	orgs[0].Type = model.OrgInsurer

	clinics := c.Find(func(o model.Organization) bool { return o.Type == model.OrgClinic })
	require.Len(t, clinics, 2)
	assert.Equal(t, "o1", clinics[0].ID)
	assert.Equal(t, "o3", clinics[1].ID)
}

func TestCollectionConcurrentWriters(t *testing.T) {
	c := NewCollection(func(cr model.CallRecord) string { return cr.ID })
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = c.Add(model.CallRecord{ID: uuid.NewString()})
			_ = c.List()
		}()
	}
	wg.Wait()
	assert.Equal(t, 50, c.Len())
}

func TestUsers(t *testing.T) {
	ctx := context.Background()
	s := NewUsers()

	u := &model.User{ID: uuid.NewString(), Email: "Doc@Clinic.org", Name: "Doc"}
	require.NoError(t, s.CreateUser(ctx, u))
	assert.False(t, u.CreatedAt.IsZero())

	dup := &model.User{ID: uuid.NewString(), Email: " doc@clinic.org"}
	assert.ErrorIs(t, s.CreateUser(ctx, dup), ErrExists)

	got, err := s.UserByEmail(ctx, "DOC@clinic.org")
	require.NoError(t, err)
	assert.Equal(t, u.ID, got.ID)

	byID, err := s.UserByID(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, "Doc", byID.Name)

	_, err = s.UserByEmail(ctx, "ghost@clinic.org")
	assert.ErrorIs(t, err, ErrNotFound)

	canceled, cancel := context.WithCancel(ctx)
	cancel()
	_, err = s.UserByEmail(canceled, u.Email)
	assert.ErrorIs(t, err, context.Canceled)
}
