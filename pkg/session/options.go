package session

import (
	"log/slog"
	"time"

	"github.com/dmitrymomot/sessionkit/pkg/cookie"
)

// Option is a functional option for configuring the Manager.
type Option[Data any] func(*Manager[Data])

// WithStore sets the session store. The caller keeps ownership and is
// responsible for closing it.
func WithStore[Data any](store Store[Data]) Option[Data] {
	return func(m *Manager[Data]) {
		m.store = store
	}
}

// WithTransport sets a custom token transport, replacing the default cookie
// transport.
func WithTransport[Data any](transport Transport) Option[Data] {
	return func(m *Manager[Data]) {
		m.transport = transport
	}
}

// WithConfig replaces the whole configuration.
func WithConfig[Data any](config Config) Option[Data] {
	return func(m *Manager[Data]) {
		m.config = config
	}
}

// WithCookieName sets the session cookie name.
func WithCookieName[Data any](name string) Option[Data] {
	return func(m *Manager[Data]) {
		m.config.CookieName = name
	}
}

// WithTTL sets the session time-to-live.
func WithTTL[Data any](ttl time.Duration) Option[Data] {
	return func(m *Manager[Data]) {
		m.config.TTL = ttl
	}
}

// WithCleanupInterval sets the background sweep cadence used by the default
// memory store.
func WithCleanupInterval[Data any](interval time.Duration) Option[Data] {
	return func(m *Manager[Data]) {
		m.config.CleanupInterval = interval
	}
}

// WithSlidingExpiration extends session expiry on every resolved request.
func WithSlidingExpiration[Data any]() Option[Data] {
	return func(m *Manager[Data]) {
		m.config.Sliding = true
	}
}

// WithCookieManager sets the cookie manager for the default cookie
// transport. Extra cookie options override the config-derived defaults.
func WithCookieManager[Data any](cm *cookie.Manager, opts ...cookie.Option) Option[Data] {
	return func(m *Manager[Data]) {
		m.cookieMgr = cm
		m.cookieOptions = opts
	}
}

// WithLogger sets the logger for swallowed resolution failures and cookie
// write errors. Defaults to a discarding logger.
func WithLogger[Data any](log *slog.Logger) Option[Data] {
	return func(m *Manager[Data]) {
		if log != nil {
			m.log = log
		}
	}
}
