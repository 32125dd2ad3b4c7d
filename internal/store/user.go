package store

import (
	"context"
	"strings"
	"sync"
	"time"

	"clinic-crm/internal/model"
)

// Users holds operator accounts. Emails are unique ignoring case.
type Users struct {
	mu      sync.RWMutex
	byID    map[string]model.User
	byEmail map[string]string
}

func NewUsers() *Users {
	return &Users{
		byID:    make(map[string]model.User),
		byEmail: make(map[string]string),
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (s *Users) CreateUser(ctx context.Context, u *model.User) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if u.ID == "" {
		return ErrMissingID
	}
	key := normalizeEmail(u.Email)

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.byEmail[key]; ok {
		return ErrExists
	}
	if _, ok := s.byID[u.ID]; ok {
		return ErrExists
	}
	if u.CreatedAt.IsZero() {
		u.CreatedAt = time.Now().UTC()
	}
	s.byID[u.ID] = *u
	s.byEmail[key] = u.ID
	return nil
}

func (s *Users) UserByEmail(ctx context.Context, email string) (*model.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	id, ok := s.byEmail[normalizeEmail(email)]
	if !ok {
		return nil, ErrNotFound
	}
	u := s.byID[id]
	return &u, nil
}

func (s *Users) UserByID(ctx context.Context, id string) (*model.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.byID[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &u, nil
}
