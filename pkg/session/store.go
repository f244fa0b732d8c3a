package session

import (
	"context"
	"time"
)

// Store defines the persistence contract for session data. The Data type
// parameter is the application-defined session payload; the core treats it
// as opaque. Implementations must be safe for concurrent use by multiple
// in-flight requests.
//
// Absent and expired records are indistinguishable to callers: both are
// reported as found == false with a nil error. Errors signal backend
// failure (I/O, connectivity, serialization) only.
type Store[Data any] interface {
	// Get returns the payload stored under token. An absent or expired
	// record yields the zero value and found == false.
	Get(ctx context.Context, token string) (data Data, found bool, err error)

	// Set creates or overwrites the record under token and resets its
	// expiry to now + ttl.
	Set(ctx context.Context, token string, data Data, ttl time.Duration) error

	// Touch resets the record's expiry to now + ttl without rewriting the
	// payload. Touching an absent token is a no-op.
	Touch(ctx context.Context, token string, ttl time.Duration) error

	// Remove deletes the record under token. Removing an absent token is
	// not an error.
	Remove(ctx context.Context, token string) error
}

// StoreWithCleanup is an optional interface for stores that can purge
// expired records in bulk. Backends without server-side expiry implement it
// so callers can run a periodic sweep.
type StoreWithCleanup[Data any] interface {
	Store[Data]

	// DeleteExpired removes all expired records and returns how many were
	// deleted.
	DeleteExpired(ctx context.Context) (int64, error)
}
