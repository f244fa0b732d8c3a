package session

import "errors"

var (
	// ErrStoreUnavailable indicates a backend-level failure (I/O, connectivity).
	// Never used for "not found", which stores report as absence, not as an error.
	ErrStoreUnavailable = errors.New("session.store_unavailable")

	// ErrSerialization indicates the session payload could not be encoded or decoded.
	ErrSerialization = errors.New("session.serialization_failed")

	// ErrNoToken indicates the request carries no session token.
	ErrNoToken = errors.New("session.no_token")
)
