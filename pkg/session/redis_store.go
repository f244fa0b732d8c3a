package session

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

type redisKeys struct {
	prefix string
	suffix string
}

func (k redisKeys) key(token string) string {
	return k.prefix + token + k.suffix
}

// RedisOption configures a RedisStore.
type RedisOption func(*redisKeys)

// WithKeyPrefix prepends a namespace to every redis key, so a session with
// token "1234" and prefix "sess:" is stored under "sess:1234".
func WithKeyPrefix(prefix string) RedisOption {
	return func(k *redisKeys) {
		k.prefix = prefix
	}
}

// WithKeySuffix appends a namespace to every redis key.
func WithKeySuffix(suffix string) RedisOption {
	return func(k *redisKeys) {
		k.suffix = suffix
	}
}

// RedisStore is a Store implementation on top of redis. Payloads are JSON
// encoded; expiry rides on redis key TTLs, so redis evicts expired sessions
// by itself and no sweep is needed.
type RedisStore[Data any] struct {
	client redis.UniversalClient
	keys   redisKeys
}

// NewRedisStore creates a redis-backed store. The client is owned by the
// caller.
func NewRedisStore[Data any](client redis.UniversalClient, opts ...RedisOption) *RedisStore[Data] {
	s := &RedisStore[Data]{client: client}
	for _, opt := range opts {
		opt(&s.keys)
	}
	return s
}

// Get returns the payload stored under token. Keys past their TTL are gone
// from redis, so expired and absent are naturally the same answer.
func (s *RedisStore[Data]) Get(ctx context.Context, token string) (Data, bool, error) {
	var zero Data

	b, err := s.client.Get(ctx, s.keys.key(token)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return zero, false, nil
		}
		return zero, false, errors.Join(ErrStoreUnavailable, err)
	}

	var data Data
	if err := json.Unmarshal(b, &data); err != nil {
		return zero, false, errors.Join(ErrSerialization, err)
	}

	return data, true, nil
}

// Set writes the JSON-encoded payload with expiry ttl.
func (s *RedisStore[Data]) Set(ctx context.Context, token string, data Data, ttl time.Duration) error {
	b, err := json.Marshal(data)
	if err != nil {
		return errors.Join(ErrSerialization, err)
	}

	if err := s.client.Set(ctx, s.keys.key(token), b, ttl).Err(); err != nil {
		return errors.Join(ErrStoreUnavailable, err)
	}
	return nil
}

// Touch refreshes the key TTL without rewriting the payload. EXPIRE on a
// missing key reports false without an error, which matches the no-op
// contract for absent tokens.
func (s *RedisStore[Data]) Touch(ctx context.Context, token string, ttl time.Duration) error {
	if err := s.client.Expire(ctx, s.keys.key(token), ttl).Err(); err != nil {
		return errors.Join(ErrStoreUnavailable, err)
	}
	return nil
}

// Remove deletes the key. Idempotent.
func (s *RedisStore[Data]) Remove(ctx context.Context, token string) error {
	if err := s.client.Del(ctx, s.keys.key(token)).Err(); err != nil {
		return errors.Join(ErrStoreUnavailable, err)
	}
	return nil
}
