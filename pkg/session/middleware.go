package session

import "net/http"

// Middleware resolves the session at request start, injects the handle into
// the request context, and commits the pending cookie action exactly once
// immediately before response headers are flushed (or after the handler
// returns, whichever comes first).
func (m *Manager[Data]) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sess := m.Resolve(r.Context(), r)

		cw := &commitWriter{ResponseWriter: w}
		cw.commit = func() { m.commit(w, sess) }

		next.ServeHTTP(cw, r.WithContext(WithSession(r.Context(), sess)))

		// Handlers that write no body still get their cookie update.
		cw.finalize()
	})
}

// RequireSession rejects requests without an established session with 401.
// Must run below Middleware.
func (m *Manager[Data]) RequireSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sess, ok := FromContext[Data](r.Context())
		if !ok || !sess.Active() {
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// commitWriter runs the commit hook once, before the first header or body
// write. Cookie headers cannot be added after the response has started.
type commitWriter struct {
	http.ResponseWriter
	commit    func()
	committed bool
}

func (w *commitWriter) WriteHeader(code int) {
	w.finalize()
	w.ResponseWriter.WriteHeader(code)
}

func (w *commitWriter) Write(b []byte) (int, error) {
	w.finalize()
	return w.ResponseWriter.Write(b)
}

func (w *commitWriter) finalize() {
	if !w.committed {
		w.committed = true
		w.commit()
	}
}

// Unwrap supports http.ResponseController.
func (w *commitWriter) Unwrap() http.ResponseWriter {
	return w.ResponseWriter
}
