package session

import (
	"context"
)

// pendingAction is the deferred cookie mutation accumulated during a request
// and consumed exactly once when the response is finalized.
type pendingAction uint8

const (
	actionNone pendingAction = iota
	actionSetOrRefresh
	actionClear
)

// Session is the per-request handle bound to one resolved (or not yet
// assigned) token. It never writes cookies itself: all cookie effects are
// buffered as a pending action and committed by the middleware at response
// time, so nothing becomes observable to the client until then.
//
// A handle is exclusively owned by its request and must not be shared across
// requests. Store writes go through immediately; only the cookie update is
// deferred.
type Session[Data any] struct {
	manager *Manager[Data]

	token   string
	fresh   bool // token was generated during this request
	value   Data
	present bool
	pending pendingAction
}

// Token returns the current session token, or "" when no session is
// established.
func (s *Session[Data]) Token() string {
	return s.token
}

// Active reports whether the handle currently holds a session value.
func (s *Session[Data]) Active() bool {
	return s.present
}

// Get returns the session value resolved at the start of the request. The
// store is not hit again; writes within the same request update the cached
// value, so a Set followed by a Get observes the new value.
func (s *Session[Data]) Get() (Data, bool) {
	return s.value, s.present
}

// Set writes the session value to the store under the current token,
// allocating a fresh token when none is assigned yet, and schedules a cookie
// set/refresh. Store failures are returned to the caller: silently dropping
// a write would let the application believe state persisted.
func (s *Session[Data]) Set(ctx context.Context, data Data) error {
	if s.token == "" {
		s.token = NewToken()
		s.fresh = true
	}

	if err := s.manager.store.Set(ctx, s.token, data, s.manager.config.TTL); err != nil {
		return err
	}

	s.value = data
	s.present = true
	s.pending = actionSetOrRefresh
	return nil
}

// Touch refreshes the store record's expiry and schedules a cookie refresh.
// A no-op when no session is established.
func (s *Session[Data]) Touch(ctx context.Context) error {
	if s.token == "" {
		return nil
	}

	if err := s.manager.store.Touch(ctx, s.token, s.manager.config.TTL); err != nil {
		return err
	}

	s.pending = actionSetOrRefresh
	return nil
}

// RegenerateToken swaps the session onto a new token, migrating the current
// value and removing the old record. Call it after any privilege change
// (typically login) to defeat session fixation: the pre-authentication token
// a fixation attacker may know stops resolving.
//
// The value is written under the new token before the old record is removed,
// so the token held by this handle resolves at every point. Callable with no
// value set, which establishes a fresh empty session under a new token. If
// the token was already freshly generated during this request there is
// nothing to defend against and the call is a no-op.
func (s *Session[Data]) RegenerateToken(ctx context.Context) error {
	if s.fresh {
		return nil
	}

	old := s.token
	s.token = NewToken()
	s.fresh = true

	if s.present {
		if err := s.manager.store.Set(ctx, s.token, s.value, s.manager.config.TTL); err != nil {
			s.token = old
			s.fresh = false
			return err
		}
	}

	if old != "" {
		if err := s.manager.store.Remove(ctx, old); err != nil {
			return err
		}
	}

	s.pending = actionSetOrRefresh
	return nil
}

// Destroy removes the session record from the store and schedules the
// client cookie for deletion.
func (s *Session[Data]) Destroy(ctx context.Context) error {
	if s.token != "" {
		if err := s.manager.store.Remove(ctx, s.token); err != nil {
			return err
		}
	}

	var zero Data
	s.token = ""
	s.fresh = false
	s.value = zero
	s.present = false
	s.pending = actionClear
	return nil
}
