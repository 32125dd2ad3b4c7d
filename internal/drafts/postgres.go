package drafts

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const schema = `CREATE TABLE IF NOT EXISTS drafts (
	owner_id   TEXT        NOT NULL,
	kind       TEXT        NOT NULL,
	key        TEXT        NOT NULL,
	value      TEXT        NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL,
	PRIMARY KEY (owner_id, kind, key)
)`

// db is the slice of pgxpool.Pool the store needs.
type db interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type Postgres struct {
	db db
}

func NewPostgres(pool db) *Postgres {
	return &Postgres{db: pool}
}

// EnsureSchema creates the drafts table if it does not exist yet.
func (s *Postgres) EnsureSchema(ctx context.Context) error {
	if _, err := s.db.Exec(ctx, schema); err != nil {
		return fmt.Errorf("drafts: create table: %w", err)
	}
	return nil
}

func (s *Postgres) Put(ctx context.Context, r Record) error {
	if err := Validate(r.Owner, r.Kind, r.Key); err != nil {
		return err
	}
	r = stamp(r)
	_, err := s.db.Exec(ctx,
		`INSERT INTO drafts (owner_id, kind, key, value, updated_at) VALUES ($1,$2,$3,$4,$5)
		 ON CONFLICT (owner_id, kind, key) DO UPDATE SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at`,
		r.Owner, string(r.Kind), r.Key, r.Value, r.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("drafts: upsert: %w", err)
	}
	return nil
}

func (s *Postgres) Get(ctx context.Context, owner string, kind Kind, key string) (Record, error) {
	r := Record{Owner: owner, Kind: kind, Key: key}
	var updated time.Time
	err := s.db.QueryRow(ctx,
		`SELECT value, updated_at FROM drafts WHERE owner_id = $1 AND kind = $2 AND key = $3`,
		owner, string(kind), key,
	).Scan(&r.Value, &updated)
	if errors.Is(err, pgx.ErrNoRows) {
		return Record{}, ErrNotFound
	}
	if err != nil {
		return Record{}, fmt.Errorf("drafts: select: %w", err)
	}
	r.UpdatedAt = updated.UTC()
	return r, nil
}

func (s *Postgres) Delete(ctx context.Context, owner string, kind Kind, key string) error {
	tag, err := s.db.Exec(ctx,
		`DELETE FROM drafts WHERE owner_id = $1 AND kind = $2 AND key = $3`,
		owner, string(kind), key,
	)
	if err != nil {
		return fmt.Errorf("drafts: delete: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
