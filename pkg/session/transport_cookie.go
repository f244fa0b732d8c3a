package session

import (
	"net/http"
	"time"

	"github.com/dmitrymomot/sessionkit/pkg/cookie"
)

// CookieTransport carries the session token in an HTTP cookie. The value is
// HMAC-signed by the cookie manager, so a tampered cookie fails verification
// on read and is treated as no token at all.
type CookieTransport struct {
	cookies *cookie.Manager
	name    string
	options []cookie.Option
}

// NewCookieTransport creates a cookie-based transport. The given options are
// applied to every written cookie on top of the manager's defaults.
func NewCookieTransport(cm *cookie.Manager, name string, opts ...cookie.Option) *CookieTransport {
	return &CookieTransport{
		cookies: cm,
		name:    name,
		options: opts,
	}
}

// GetToken extracts and verifies the session token from the cookie.
func (t *CookieTransport) GetToken(r *http.Request) (string, error) {
	token, err := t.cookies.GetSigned(r, t.name)
	if err != nil {
		return "", ErrNoToken
	}
	return token, nil
}

// SetToken writes the signed session cookie with Max-Age = ttl.
func (t *CookieTransport) SetToken(w http.ResponseWriter, token string, ttl time.Duration) error {
	opts := append([]cookie.Option{cookie.WithMaxAge(int(ttl.Seconds()))}, t.options...)
	return t.cookies.SetSigned(w, t.name, token, opts...)
}

// ClearToken expires the session cookie on the client.
func (t *CookieTransport) ClearToken(w http.ResponseWriter) error {
	t.cookies.Delete(w, t.name, t.options...)
	return nil
}
