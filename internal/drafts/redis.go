package drafts

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Redis keeps each record as a JSON string under drafts:<owner>:<kind>:<key>.
type Redis struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedis returns a Redis-backed store. A zero ttl keeps records forever.
func NewRedis(client *redis.Client, ttl time.Duration) *Redis {
	return &Redis{client: client, ttl: ttl}
}

func redisKey(owner string, kind Kind, key string) string {
	return fmt.Sprintf("drafts:%s:%s:%s", owner, kind, key)
}

func (s *Redis) Put(ctx context.Context, r Record) error {
	if err := Validate(r.Owner, r.Kind, r.Key); err != nil {
		return err
	}
	data, err := json.Marshal(stamp(r))
	if err != nil {
		return fmt.Errorf("drafts: encode: %w", err)
	}
	if err := s.client.Set(ctx, redisKey(r.Owner, r.Kind, r.Key), data, s.ttl).Err(); err != nil {
		return fmt.Errorf("drafts: redis set: %w", err)
	}
	return nil
}

func (s *Redis) Get(ctx context.Context, owner string, kind Kind, key string) (Record, error) {
	data, err := s.client.Get(ctx, redisKey(owner, kind, key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return Record{}, ErrNotFound
	}
	if err != nil {
		return Record{}, fmt.Errorf("drafts: redis get: %w", err)
	}
	var r Record
	if err := json.Unmarshal(data, &r); err != nil {
		return Record{}, fmt.Errorf("drafts: decode: %w", err)
	}
	return r, nil
}

func (s *Redis) Delete(ctx context.Context, owner string, kind Kind, key string) error {
	n, err := s.client.Del(ctx, redisKey(owner, kind, key)).Result()
	if err != nil {
		return fmt.Errorf("drafts: redis del: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
