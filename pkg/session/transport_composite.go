package session

import (
	"net/http"
	"time"
)

// CompositeTransport reads the token from the first transport that yields
// one and writes through all of them. Useful when browser and API clients
// share a backend: cookie first, header as fallback.
type CompositeTransport struct {
	transports []Transport
}

// NewCompositeTransport combines transports in lookup order.
func NewCompositeTransport(transports ...Transport) *CompositeTransport {
	return &CompositeTransport{transports: transports}
}

// GetToken returns the token from the first transport that finds one.
func (t *CompositeTransport) GetToken(r *http.Request) (string, error) {
	for _, tr := range t.transports {
		if token, err := tr.GetToken(r); err == nil && token != "" {
			return token, nil
		}
	}
	return "", ErrNoToken
}

// SetToken writes the token through every transport, returning the last
// error seen.
func (t *CompositeTransport) SetToken(w http.ResponseWriter, token string, ttl time.Duration) error {
	var lastErr error
	for _, tr := range t.transports {
		if err := tr.SetToken(w, token, ttl); err != nil {
			lastErr = err
		}
	}
	return lastErr
}

// ClearToken clears the token through every transport, returning the last
// error seen.
func (t *CompositeTransport) ClearToken(w http.ResponseWriter) error {
	var lastErr error
	for _, tr := range t.transports {
		if err := tr.ClearToken(w); err != nil {
			lastErr = err
		}
	}
	return lastErr
}
