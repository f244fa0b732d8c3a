package session

import (
	"net/http"
	"strings"
	"time"
)

// Config holds session manager configuration.
type Config struct {
	// CookieName is the name of the session cookie (default: "sid").
	CookieName string `env:"SESSION_COOKIE_NAME" envDefault:"sid"`

	// TTL is the session time-to-live applied on every write and refresh.
	TTL time.Duration `env:"SESSION_TTL" envDefault:"24h"`

	// CleanupInterval is the background sweep cadence for the default
	// memory store (0 disables the sweeper).
	CleanupInterval time.Duration `env:"SESSION_CLEANUP_INTERVAL" envDefault:"5m"`

	// Sliding extends the session expiry on every resolved request,
	// keeping active sessions alive indefinitely.
	Sliding bool `env:"SESSION_SLIDING" envDefault:"false"`

	CookiePath   string `env:"SESSION_COOKIE_PATH" envDefault:"/"`
	CookieDomain string `env:"SESSION_COOKIE_DOMAIN"`

	// CookieSecure should stay enabled in production; disable only for
	// local development over plain HTTP.
	CookieSecure   bool   `env:"SESSION_COOKIE_SECURE" envDefault:"true"`
	CookieHTTPOnly bool   `env:"SESSION_COOKIE_HTTP_ONLY" envDefault:"true"`
	CookieSameSite string `env:"SESSION_COOKIE_SAME_SITE" envDefault:"lax"`
}

// DefaultConfig returns the default session configuration.
func DefaultConfig() Config {
	return Config{
		CookieName:      "sid",
		TTL:             24 * time.Hour,
		CleanupInterval: 5 * time.Minute,
		CookiePath:      "/",
		CookieSecure:    true,
		CookieHTTPOnly:  true,
		CookieSameSite:  "lax",
	}
}

// SameSite maps the configured policy name to its http.SameSite value.
// Unrecognized values fall back to Lax.
func (c Config) SameSite() http.SameSite {
	switch strings.ToLower(c.CookieSameSite) {
	case "strict":
		return http.SameSiteStrictMode
	case "none":
		return http.SameSiteNoneMode
	case "default":
		return http.SameSiteDefaultMode
	default:
		return http.SameSiteLaxMode
	}
}
