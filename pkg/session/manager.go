package session

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/dmitrymomot/sessionkit/pkg/cookie"
)

// Manager coordinates the session lifecycle: resolving the inbound token,
// handing out per-request Session handles, and committing deferred cookie
// updates at response time.
//
// A Manager is constructed once at startup and shared by all requests; it is
// read-only after construction.
type Manager[Data any] struct {
	store     Store[Data]
	transport Transport
	config    Config
	log       *slog.Logger

	cookieMgr     *cookie.Manager
	cookieOptions []cookie.Option
	ownStore      bool
}

// New creates a session manager with the given options. Without WithStore
// the manager falls back to an in-memory store; without WithTransport it
// builds a cookie transport, which requires WithCookieManager.
func New[Data any](opts ...Option[Data]) *Manager[Data] {
	m := &Manager[Data]{
		config: DefaultConfig(),
		log:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	}

	for _, opt := range opts {
		opt(m)
	}

	if m.store == nil {
		m.store = NewMemoryStore[Data](m.config.CleanupInterval)
		m.ownStore = true
	}

	if m.transport == nil {
		if m.cookieMgr == nil {
			// Fail fast on misconfiguration instead of running without a
			// way to bind sessions to clients.
			panic("session: cookie manager is required when using the default cookie transport")
		}
		m.transport = NewCookieTransport(m.cookieMgr, m.config.CookieName, m.cookieDefaults()...)
	}

	return m
}

// Resolve reads the session token from the request and loads the associated
// record. Every failure mode (missing cookie, tampered token, absent or
// expired record, backend outage) yields a fresh anonymous handle: an
// invalid session must never surface as a request error. Backend failures
// are logged and swallowed.
func (m *Manager[Data]) Resolve(ctx context.Context, r *http.Request) *Session[Data] {
	sess := &Session[Data]{manager: m}

	token, err := m.transport.GetToken(r)
	if err != nil || token == "" {
		return sess
	}

	// The cookie value is untrusted input; it is nothing more than a
	// candidate lookup key until the store confirms it.
	data, found, err := m.store.Get(ctx, token)
	if err != nil {
		m.log.WarnContext(ctx, "session resolve failed, continuing anonymous",
			slog.Any("error", err))
		return sess
	}
	if !found {
		return sess
	}

	sess.token = token
	sess.value = data
	sess.present = true

	if m.config.Sliding {
		if err := m.store.Touch(ctx, token, m.config.TTL); err != nil {
			m.log.WarnContext(ctx, "session touch failed", slog.Any("error", err))
		} else {
			sess.pending = actionSetOrRefresh
		}
	}

	return sess
}

// TTL returns the configured session time-to-live.
func (m *Manager[Data]) TTL() time.Duration {
	return m.config.TTL
}

// Close releases resources owned by the manager. Only stores created by the
// manager itself are closed; injected stores belong to the caller.
func (m *Manager[Data]) Close() error {
	if m.ownStore {
		if c, ok := m.store.(io.Closer); ok {
			return c.Close()
		}
	}
	return nil
}

// commit consumes the handle's pending cookie action exactly once. Called by
// the middleware before response headers are flushed.
func (m *Manager[Data]) commit(w http.ResponseWriter, s *Session[Data]) {
	switch s.pending {
	case actionSetOrRefresh:
		if err := m.transport.SetToken(w, s.token, m.config.TTL); err != nil {
			m.log.Warn("session cookie write failed", slog.Any("error", err))
		}
	case actionClear:
		if err := m.transport.ClearToken(w); err != nil {
			m.log.Warn("session cookie clear failed", slog.Any("error", err))
		}
	}
	s.pending = actionNone
}

func (m *Manager[Data]) cookieDefaults() []cookie.Option {
	opts := []cookie.Option{
		cookie.WithPath(m.config.CookiePath),
		cookie.WithHTTPOnly(m.config.CookieHTTPOnly),
		cookie.WithSameSite(m.config.SameSite()),
	}
	if m.config.CookieDomain != "" {
		opts = append(opts, cookie.WithDomain(m.config.CookieDomain))
	}
	if m.config.CookieSecure {
		opts = append(opts, cookie.WithSecure(true))
	}
	return append(opts, m.cookieOptions...)
}
