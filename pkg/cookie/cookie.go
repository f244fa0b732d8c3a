package cookie

import (
	"crypto/hmac"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"net/http"
	"slices"
	"strings"
	"time"
)

// minSecretLength keeps HMAC keys at a usable strength; sha256-sized keys
// are the sweet spot.
const minSecretLength = 32

// Manager writes and reads cookies with a set of default attributes and an
// HMAC-SHA256 signing scheme. Multiple secrets support key rotation: the
// first secret signs, all secrets verify, so cookies issued under a retired
// key stay valid during the transition.
type Manager struct {
	secrets  []string
	defaults Options
}

// New creates a cookie manager. At least one non-empty secret of 32+
// characters is required.
func New(secrets []string, opts ...Option) (*Manager, error) {
	secrets = slices.DeleteFunc(slices.Clone(secrets), func(s string) bool { return s == "" })
	if len(secrets) == 0 {
		return nil, ErrNoSecret
	}

	for i, s := range secrets {
		if len(s) < minSecretLength {
			return nil, fmt.Errorf("%w: secret %d is %d chars, need at least %d", ErrSecretTooShort, i, len(s), minSecretLength)
		}
	}

	defaults := Options{
		Path:     "/",
		HTTPOnly: true,
		SameSite: http.SameSiteLaxMode,
	}

	return &Manager{
		secrets:  secrets,
		defaults: applyOptions(defaults, opts),
	}, nil
}

// Set writes a plain cookie with the manager defaults overridden by opts.
func (m *Manager) Set(w http.ResponseWriter, name, value string, opts ...Option) error {
	o := applyOptions(m.defaults, opts)

	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     o.Path,
		Domain:   o.Domain,
		MaxAge:   o.MaxAge,
		Secure:   o.Secure,
		HttpOnly: o.HTTPOnly,
		SameSite: o.SameSite,
	})
	return nil
}

// Get reads a plain cookie value.
func (m *Manager) Get(r *http.Request, name string) (string, error) {
	c, err := r.Cookie(name)
	if err != nil {
		if errors.Is(err, http.ErrNoCookie) {
			return "", ErrCookieNotFound
		}
		return "", err
	}
	return c.Value, nil
}

// Delete instructs the client to drop the cookie: empty value, epoch
// expiry, negative Max-Age. Path and Domain must match the cookie being
// deleted, so the same opts used on Set should be passed here.
func (m *Manager) Delete(w http.ResponseWriter, name string, opts ...Option) {
	o := applyOptions(m.defaults, opts)

	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    "",
		Path:     o.Path,
		Domain:   o.Domain,
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
		Secure:   o.Secure,
		HttpOnly: o.HTTPOnly,
		SameSite: o.SameSite,
	})
}

// SetSigned writes a cookie whose value carries an HMAC signature.
func (m *Manager) SetSigned(w http.ResponseWriter, name, value string, opts ...Option) error {
	return m.Set(w, name, m.sign(value), opts...)
}

// GetSigned reads a signed cookie and verifies its signature. Tampered or
// malformed values are rejected.
func (m *Manager) GetSigned(r *http.Request, name string) (string, error) {
	signed, err := m.Get(r, name)
	if err != nil {
		return "", err
	}
	return m.verify(signed)
}

func (m *Manager) sign(value string) string {
	mac := hmac.New(sha256.New, []byte(m.secrets[0]))
	mac.Write([]byte(value))
	sig := base64.RawURLEncoding.EncodeToString(mac.Sum(nil))

	return base64.RawURLEncoding.EncodeToString([]byte(value)) + "." + sig
}

func (m *Manager) verify(signed string) (string, error) {
	encoded, sig, ok := strings.Cut(signed, ".")
	if !ok {
		return "", ErrInvalidFormat
	}

	value, err := base64.RawURLEncoding.DecodeString(encoded)
	if err != nil {
		return "", ErrInvalidFormat
	}

	for _, secret := range m.secrets {
		mac := hmac.New(sha256.New, []byte(secret))
		mac.Write(value)
		want := base64.RawURLEncoding.EncodeToString(mac.Sum(nil))

		if subtle.ConstantTimeCompare([]byte(sig), []byte(want)) == 1 {
			return string(value), nil
		}
	}

	return "", ErrInvalidSignature
}
