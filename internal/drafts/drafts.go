// Package drafts stores opaque per-user blobs such as unsent email drafts and
// signatures. Nothing else in the CRM reads their contents.
package drafts

import (
	"context"
	"errors"
	"fmt"
	"time"
)

var ErrNotFound = errors.New("drafts: not found")

type Kind string

const (
	KindCompose   Kind = "compose"
	KindSignature Kind = "signature"
)

func (k Kind) Valid() bool { return k == KindCompose || k == KindSignature }

type Record struct {
	Owner     string    `json:"owner"`
	Kind      Kind      `json:"kind"`
	Key       string    `json:"key"`
	Value     string    `json:"value"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Store interface {
	Put(ctx context.Context, r Record) error
	Get(ctx context.Context, owner string, kind Kind, key string) (Record, error)
	Delete(ctx context.Context, owner string, kind Kind, key string) error
}

// Validate checks the addressing fields shared by every backend.
func Validate(owner string, kind Kind, key string) error {
	switch {
	case owner == "":
		return errors.New("drafts: owner is required")
	case !kind.Valid():
		return fmt.Errorf("drafts: unknown kind %q", kind)
	case key == "":
		return errors.New("drafts: key is required")
	}
	return nil
}

func stamp(r Record) Record {
	if r.UpdatedAt.IsZero() {
		r.UpdatedAt = time.Now().UTC()
	}
	return r
}
