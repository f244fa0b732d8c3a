package session

import (
	"net/http"
	"strings"
	"time"
)

// HeaderTransport carries the session token in an HTTP header. Intended for
// non-browser clients (mobile apps, service-to-service calls) where cookies
// are inconvenient; browsers should use CookieTransport so the token gets
// HttpOnly/Secure protection.
type HeaderTransport struct {
	header string
	scheme string
}

// HeaderOption configures a HeaderTransport.
type HeaderOption func(*HeaderTransport)

// WithHeaderScheme sets the auth-scheme prefix expected before the token,
// e.g. "Bearer ". An empty scheme sends and accepts the bare token.
func WithHeaderScheme(scheme string) HeaderOption {
	return func(t *HeaderTransport) {
		t.scheme = scheme
	}
}

// NewHeaderTransport creates a header-based transport. The default scheme is
// "Bearer ".
func NewHeaderTransport(header string, opts ...HeaderOption) *HeaderTransport {
	t := &HeaderTransport{
		header: header,
		scheme: "Bearer ",
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// GetToken extracts the session token from the configured header.
func (t *HeaderTransport) GetToken(r *http.Request) (string, error) {
	value := r.Header.Get(t.header)
	if value == "" {
		return "", ErrNoToken
	}
	return strings.TrimPrefix(value, t.scheme), nil
}

// SetToken writes the token to the response header, plus an "-Expires"
// companion header so clients know when to re-authenticate.
func (t *HeaderTransport) SetToken(w http.ResponseWriter, token string, ttl time.Duration) error {
	w.Header().Set(t.header, t.scheme+token)
	if ttl > 0 {
		w.Header().Set(t.header+"-Expires", time.Now().Add(ttl).Format(time.RFC3339))
	}
	return nil
}

// ClearToken removes the token headers from the response.
func (t *HeaderTransport) ClearToken(w http.ResponseWriter) error {
	w.Header().Del(t.header)
	w.Header().Del(t.header + "-Expires")
	return nil
}
