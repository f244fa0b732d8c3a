package session_test

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/sessionkit/pkg/cookie"
	"github.com/dmitrymomot/sessionkit/pkg/session"
)

func TestCookieTransport(t *testing.T) {
	cookies, err := cookie.New([]string{testSecret}, cookie.WithSecure(false))
	require.NoError(t, err)

	transport := session.NewCookieTransport(cookies, "sid")

	t.Run("round trip", func(t *testing.T) {
		token := session.NewToken()

		w := httptest.NewRecorder()
		require.NoError(t, transport.SetToken(w, token, time.Hour))

		c := sessionCookie(t, w.Result())
		require.NotNil(t, c)
		assert.Equal(t, 3600, c.MaxAge)

		r := httptest.NewRequest("GET", "/", nil)
		r.AddCookie(c)

		got, err := transport.GetToken(r)
		require.NoError(t, err)
		assert.Equal(t, token, got)
	})

	t.Run("missing cookie", func(t *testing.T) {
		_, err := transport.GetToken(httptest.NewRequest("GET", "/", nil))
		assert.ErrorIs(t, err, session.ErrNoToken)
	})

	t.Run("tampered cookie", func(t *testing.T) {
		w := httptest.NewRecorder()
		require.NoError(t, transport.SetToken(w, session.NewToken(), time.Hour))
		c := sessionCookie(t, w.Result())
		require.NotNil(t, c)
		c.Value += "x"

		r := httptest.NewRequest("GET", "/", nil)
		r.AddCookie(c)

		_, err := transport.GetToken(r)
		assert.ErrorIs(t, err, session.ErrNoToken)
	})

	t.Run("clear expires cookie", func(t *testing.T) {
		w := httptest.NewRecorder()
		require.NoError(t, transport.ClearToken(w))

		c := sessionCookie(t, w.Result())
		require.NotNil(t, c)
		assert.Empty(t, c.Value)
		assert.Negative(t, c.MaxAge)
	})
}

func TestHeaderTransport(t *testing.T) {
	t.Run("bearer scheme by default", func(t *testing.T) {
		transport := session.NewHeaderTransport("Authorization")

		w := httptest.NewRecorder()
		require.NoError(t, transport.SetToken(w, "tok123", time.Hour))
		assert.Equal(t, "Bearer tok123", w.Header().Get("Authorization"))
		assert.NotEmpty(t, w.Header().Get("Authorization-Expires"))

		r := httptest.NewRequest("GET", "/", nil)
		r.Header.Set("Authorization", "Bearer tok123")

		got, err := transport.GetToken(r)
		require.NoError(t, err)
		assert.Equal(t, "tok123", got)
	})

	t.Run("bare token with empty scheme", func(t *testing.T) {
		transport := session.NewHeaderTransport(tokenHeader, session.WithHeaderScheme(""))

		w := httptest.NewRecorder()
		require.NoError(t, transport.SetToken(w, "tok123", 0))
		assert.Equal(t, "tok123", w.Header().Get(tokenHeader))
		assert.Empty(t, w.Header().Get(tokenHeader+"-Expires"))

		r := httptest.NewRequest("GET", "/", nil)
		r.Header.Set(tokenHeader, "tok123")

		got, err := transport.GetToken(r)
		require.NoError(t, err)
		assert.Equal(t, "tok123", got)
	})

	t.Run("missing header", func(t *testing.T) {
		transport := session.NewHeaderTransport(tokenHeader)
		_, err := transport.GetToken(httptest.NewRequest("GET", "/", nil))
		assert.ErrorIs(t, err, session.ErrNoToken)
	})

	t.Run("clear removes both headers", func(t *testing.T) {
		transport := session.NewHeaderTransport(tokenHeader)

		w := httptest.NewRecorder()
		require.NoError(t, transport.SetToken(w, "tok123", time.Hour))
		require.NoError(t, transport.ClearToken(w))

		assert.Empty(t, w.Header().Get(tokenHeader))
		assert.Empty(t, w.Header().Get(tokenHeader+"-Expires"))
	})
}

func TestCompositeTransport(t *testing.T) {
	cookies, err := cookie.New([]string{testSecret}, cookie.WithSecure(false))
	require.NoError(t, err)

	cookieTr := session.NewCookieTransport(cookies, "sid")
	headerTr := session.NewHeaderTransport(tokenHeader, session.WithHeaderScheme(""))
	composite := session.NewCompositeTransport(cookieTr, headerTr)

	t.Run("first transport wins", func(t *testing.T) {
		w := httptest.NewRecorder()
		require.NoError(t, cookieTr.SetToken(w, "cookie-token", time.Hour))
		c := sessionCookie(t, w.Result())
		require.NotNil(t, c)

		r := httptest.NewRequest("GET", "/", nil)
		r.AddCookie(c)
		r.Header.Set(tokenHeader, "header-token")

		got, err := composite.GetToken(r)
		require.NoError(t, err)
		assert.Equal(t, "cookie-token", got)
	})

	t.Run("falls back to later transports", func(t *testing.T) {
		r := httptest.NewRequest("GET", "/", nil)
		r.Header.Set(tokenHeader, "header-token")

		got, err := composite.GetToken(r)
		require.NoError(t, err)
		assert.Equal(t, "header-token", got)
	})

	t.Run("no transport finds a token", func(t *testing.T) {
		_, err := composite.GetToken(httptest.NewRequest("GET", "/", nil))
		assert.ErrorIs(t, err, session.ErrNoToken)
	})

	t.Run("writes through all transports", func(t *testing.T) {
		w := httptest.NewRecorder()
		require.NoError(t, composite.SetToken(w, "tok123", time.Hour))

		assert.NotNil(t, sessionCookie(t, w.Result()))
		assert.Equal(t, "tok123", w.Header().Get(tokenHeader))
	})
}
