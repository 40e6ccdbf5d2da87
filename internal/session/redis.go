package session

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "session:"

// RedisStore keeps sessions in Redis with a TTL matching ExpiresAt, so the
// store evicts dead sessions on its own and survives server restarts.
type RedisStore struct {
	rdb *redis.Client
}

func NewRedisStore(rdb *redis.Client) *RedisStore { return &RedisStore{rdb: rdb} }

func (s *RedisStore) Save(ctx context.Context, token string, rec *Record) error {
	payload, err := json.Marshal(rec)
	if err != nil {
		return err
	}
	ttl := time.Until(rec.ExpiresAt)
	if ttl <= 0 {
		return nil
	}
	// Single SET with TTL — atomic, no partial state.
	return s.rdb.Set(ctx, keyPrefix+token, payload, ttl).Err()
}

func (s *RedisStore) Find(ctx context.Context, token string) (*Record, error) {
	payload, err := s.rdb.Get(ctx, keyPrefix+token).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	rec := &Record{}
	if err := json.Unmarshal(payload, rec); err != nil {
		// A corrupt record is as good as no record.
		return nil, nil
	}
	return rec, nil
}

func (s *RedisStore) Delete(ctx context.Context, token string) error {
	return s.rdb.Del(ctx, keyPrefix+token).Err()
}

var _ Store = (*RedisStore)(nil)
