package drafts

import (
	"context"
	"sync"
)

type memKey struct {
	owner string
	kind  Kind
	key   string
}

type Memory struct {
	mu   sync.RWMutex
	recs map[memKey]Record
}

func NewMemory() *Memory {
	return &Memory{recs: make(map[memKey]Record)}
}

func (m *Memory) Put(_ context.Context, r Record) error {
	if err := Validate(r.Owner, r.Kind, r.Key); err != nil {
		return err
	}
	m.mu.Lock()
	m.recs[memKey{r.Owner, r.Kind, r.Key}] = stamp(r)
	m.mu.Unlock()
	return nil
}

func (m *Memory) Get(_ context.Context, owner string, kind Kind, key string) (Record, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	r, ok := m.recs[memKey{owner, kind, key}]
	if !ok {
		return Record{}, ErrNotFound
	}
	return r, nil
}

func (m *Memory) Delete(_ context.Context, owner string, kind Kind, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	k := memKey{owner, kind, key}
	if _, ok := m.recs[k]; !ok {
		return ErrNotFound
	}
	delete(m.recs, k)
	return nil
}
