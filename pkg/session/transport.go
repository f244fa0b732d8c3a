package session

import (
	"net/http"
	"time"
)

// Transport is the boundary between the session core and the host's web
// request context: it defines how session tokens travel between client and
// server. The core only ever reads one named token per request and writes
// one token (or a deletion) per response.
type Transport interface {
	// GetToken extracts the session token from the request. Returns
	// ErrNoToken when the request carries none.
	GetToken(r *http.Request) (string, error)

	// SetToken writes the token to the response with the given lifetime.
	SetToken(w http.ResponseWriter, token string, ttl time.Duration) error

	// ClearToken instructs the client to discard the token.
	ClearToken(w http.ResponseWriter) error
}
