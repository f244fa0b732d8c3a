// Package session provides cookie-bound server-side sessions for Go web
// applications: opaque cryptographically-random tokens, pluggable expiring
// storage back-ends and deferred cookie writes, generic over an
// application-defined payload type.
//
// The package is storage-agnostic: anything satisfying the Store interface
// can hold session records. A concurrent in-memory store ships as the
// reference implementation, alongside durable stores for Redis, PostgreSQL
// and MongoDB that share the exact same observable semantics: swapping
// back-ends never changes what the application sees.
//
// # Architecture
//
// A Manager is built once at startup and shared by all requests. Its
// Middleware resolves the inbound cookie into a per-request Session handle,
// injects the handle into the request context, and commits any pending
// cookie mutation exactly once right before response headers go out. The
// handle itself never touches the wire: Get/Set/RegenerateToken/Destroy
// buffer a single pending cookie action that the middleware consumes.
//
//	request ──► Middleware ──► Resolve (cookie → Store lookup, fail-open)
//	                │
//	                ▼
//	            Session handle in context (Get/Set/Touch/Regenerate/Destroy)
//	                │
//	                ▼
//	response ◄─ commit pending cookie action (set, refresh or clear)
//
// # Usage
//
//	import (
//	    "github.com/dmitrymomot/sessionkit/pkg/cookie"
//	    "github.com/dmitrymomot/sessionkit/pkg/session"
//	)
//
//	type Profile struct {
//	    UserID string `json:"user_id"`
//	}
//
//	cookies, _ := cookie.New([]string{"0123456789abcdef0123456789abcdef"})
//	manager := session.New(
//	    session.WithCookieManager[Profile](cookies),
//	    session.WithTTL[Profile](12*time.Hour),
//	)
//
//	mux := http.NewServeMux()
//	mux.HandleFunc("/login", func(w http.ResponseWriter, r *http.Request) {
//	    sess := session.MustFromContext[Profile](r.Context())
//	    // Regenerate before writing the authenticated payload so a
//	    // fixated pre-login token never carries privileges.
//	    _ = sess.RegenerateToken(r.Context())
//	    _ = sess.Set(r.Context(), Profile{UserID: "alice"})
//	})
//	http.ListenAndServe(":8080", manager.Middleware(mux))
//
// Non-cookie clients can use a header transport instead:
//
//	session.WithTransport[Profile](session.NewHeaderTransport("X-Session-Token"))
//
// # Expiry
//
// Every Set and Touch resets the record expiry to now + TTL. The memory
// store checks expiry lazily on every read and sweeps eagerly on a
// configurable interval; Redis and MongoDB expire keys server-side;
// PGStore exposes DeleteExpired for a periodic job.
//
// # Error handling
//
// Resolution is fail-open: a missing, tampered or expired cookie, or even a
// store outage during lookup, yields an anonymous session, never a request
// error. Explicit writes (Set, Touch, RegenerateToken, Destroy) surface
// store failures to the caller. Store-level failures are classified as
// ErrStoreUnavailable or ErrSerialization; "not found" is an absence, never
// an error.
//
// # Concurrency
//
// The Manager and its Store are shared and internally synchronized; each
// Session handle belongs to exactly one request. Concurrent requests
// carrying the same token are last-writer-wins at the store level; the
// package provides no cross-request transactional isolation.
package session
