package session

import (
	"context"
	"sync"
	"time"
)

type memoryRecord[Data any] struct {
	data      Data
	expiresAt time.Time
}

func (r memoryRecord[Data]) expired(now time.Time) bool {
	return now.After(r.expiresAt)
}

// MemoryStore is the reference Store implementation backed by a process-local
// map. Expired records are treated as absent on read and evicted
// opportunistically; a background sweeper additionally purges records that
// are never read again, bounding memory growth from abandoned sessions.
//
// All records are lost on process restart. Use a durable Store implementation
// (RedisStore, PGStore, MongoStore) when sessions must survive restarts or be
// shared between processes.
type MemoryStore[Data any] struct {
	mu      sync.RWMutex
	records map[string]memoryRecord[Data]

	ticker    *time.Ticker
	done      chan struct{}
	closeOnce sync.Once
}

// NewMemoryStore creates an in-memory store. cleanupInterval controls the
// background sweep cadence; 0 disables the sweeper, leaving only lazy
// eviction on read.
func NewMemoryStore[Data any](cleanupInterval time.Duration) *MemoryStore[Data] {
	s := &MemoryStore[Data]{
		records: make(map[string]memoryRecord[Data]),
		done:    make(chan struct{}),
	}

	if cleanupInterval > 0 {
		s.ticker = time.NewTicker(cleanupInterval)
		go s.sweep()
	}

	return s
}

// Get returns the payload stored under token. Expired records are reported
// as absent and evicted in place.
func (s *MemoryStore[Data]) Get(ctx context.Context, token string) (Data, bool, error) {
	var zero Data

	s.mu.RLock()
	rec, ok := s.records[token]
	s.mu.RUnlock()

	if !ok {
		return zero, false, nil
	}

	if rec.expired(time.Now()) {
		s.mu.Lock()
		// Re-check under the write lock: a concurrent Set may have
		// replaced the record with a live one.
		if cur, ok := s.records[token]; ok && cur.expired(time.Now()) {
			delete(s.records, token)
		}
		s.mu.Unlock()
		return zero, false, nil
	}

	return rec.data, true, nil
}

// Set creates or overwrites the record under token with expiry now + ttl.
func (s *MemoryStore[Data]) Set(ctx context.Context, token string, data Data, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.records[token] = memoryRecord[Data]{
		data:      data,
		expiresAt: time.Now().Add(ttl),
	}
	return nil
}

// Touch refreshes the expiry of a live record. Absent or already-expired
// tokens are left untouched.
func (s *MemoryStore[Data]) Touch(ctx context.Context, token string, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.records[token]
	if !ok || rec.expired(time.Now()) {
		return nil
	}

	rec.expiresAt = time.Now().Add(ttl)
	s.records[token] = rec
	return nil
}

// Remove deletes the record under token. Idempotent.
func (s *MemoryStore[Data]) Remove(ctx context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.records, token)
	return nil
}

// DeleteExpired purges all expired records in one batched critical section
// and returns the number removed.
func (s *MemoryStore[Data]) DeleteExpired(ctx context.Context) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var n int64
	now := time.Now()
	for token, rec := range s.records {
		if rec.expired(now) {
			delete(s.records, token)
			n++
		}
	}
	return n, nil
}

// Len reports the number of records currently held, including expired ones
// not yet evicted.
func (s *MemoryStore[Data]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}

// Close stops the background sweeper. Safe to call multiple times.
func (s *MemoryStore[Data]) Close() error {
	s.closeOnce.Do(func() {
		if s.ticker != nil {
			s.ticker.Stop()
		}
		close(s.done)
	})
	return nil
}

func (s *MemoryStore[Data]) sweep() {
	for {
		select {
		case <-s.ticker.C:
			_, _ = s.DeleteExpired(context.Background())
		case <-s.done:
			return
		}
	}
}
