package session

import "context"

type sessionContextKey struct{}

// WithSession returns a context carrying the request's session handle.
func WithSession[Data any](ctx context.Context, sess *Session[Data]) context.Context {
	return context.WithValue(ctx, sessionContextKey{}, sess)
}

// FromContext retrieves the session handle placed in the context by the
// middleware. The Data type must match the manager's.
func FromContext[Data any](ctx context.Context) (*Session[Data], bool) {
	sess, ok := ctx.Value(sessionContextKey{}).(*Session[Data])
	return sess, ok
}

// MustFromContext retrieves the session handle or panics. Use only below
// the session middleware.
func MustFromContext[Data any](ctx context.Context) *Session[Data] {
	sess, ok := FromContext[Data](ctx)
	if !ok {
		panic("session: no session in context")
	}
	return sess
}
