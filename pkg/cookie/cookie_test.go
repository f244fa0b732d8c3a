package cookie_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/sessionkit/pkg/cookie"
)

const (
	testSecret    = "0123456789abcdef0123456789abcdef"
	rotatedSecret = "fedcba9876543210fedcba9876543210"
)

func newManager(t *testing.T, secrets ...string) *cookie.Manager {
	t.Helper()
	m, err := cookie.New(secrets)
	require.NoError(t, err)
	return m
}

func firstCookie(t *testing.T, w *httptest.ResponseRecorder, name string) *http.Cookie {
	t.Helper()
	for _, c := range w.Result().Cookies() {
		if c.Name == name {
			return c
		}
	}
	return nil
}

func requestWithCookie(c *http.Cookie) *http.Request {
	r := httptest.NewRequest("GET", "/", nil)
	r.AddCookie(c)
	return r
}

func TestNew(t *testing.T) {
	t.Run("requires a secret", func(t *testing.T) {
		_, err := cookie.New(nil)
		assert.ErrorIs(t, err, cookie.ErrNoSecret)

		_, err = cookie.New([]string{""})
		assert.ErrorIs(t, err, cookie.ErrNoSecret)
	})

	t.Run("rejects short secrets", func(t *testing.T) {
		_, err := cookie.New([]string{"too-short"})
		assert.ErrorIs(t, err, cookie.ErrSecretTooShort)

		_, err = cookie.New([]string{testSecret, "short"})
		assert.ErrorIs(t, err, cookie.ErrSecretTooShort)
	})

	t.Run("drops empty secrets before validation", func(t *testing.T) {
		_, err := cookie.New([]string{"", testSecret})
		assert.NoError(t, err)
	})
}

func TestManager_SetGet(t *testing.T) {
	m := newManager(t, testSecret)

	t.Run("round trip", func(t *testing.T) {
		w := httptest.NewRecorder()
		require.NoError(t, m.Set(w, "theme", "dark"))

		c := firstCookie(t, w, "theme")
		require.NotNil(t, c)
		assert.Equal(t, "dark", c.Value)
		assert.Equal(t, "/", c.Path)
		assert.True(t, c.HttpOnly)

		got, err := m.Get(requestWithCookie(c), "theme")
		require.NoError(t, err)
		assert.Equal(t, "dark", got)
	})

	t.Run("missing cookie", func(t *testing.T) {
		_, err := m.Get(httptest.NewRequest("GET", "/", nil), "theme")
		assert.ErrorIs(t, err, cookie.ErrCookieNotFound)
	})

	t.Run("per-call options override defaults", func(t *testing.T) {
		w := httptest.NewRecorder()
		require.NoError(t, m.Set(w, "theme", "dark",
			cookie.WithPath("/app"),
			cookie.WithMaxAge(60),
			cookie.WithSameSite(http.SameSiteStrictMode),
		))

		c := firstCookie(t, w, "theme")
		require.NotNil(t, c)
		assert.Equal(t, "/app", c.Path)
		assert.Equal(t, 60, c.MaxAge)
		assert.Equal(t, http.SameSiteStrictMode, c.SameSite)
	})
}

func TestManager_Delete(t *testing.T) {
	m := newManager(t, testSecret)

	w := httptest.NewRecorder()
	m.Delete(w, "theme")

	c := firstCookie(t, w, "theme")
	require.NotNil(t, c)
	assert.Empty(t, c.Value)
	assert.Negative(t, c.MaxAge)
}

func TestManager_Signed(t *testing.T) {
	m := newManager(t, testSecret)

	t.Run("round trip", func(t *testing.T) {
		w := httptest.NewRecorder()
		require.NoError(t, m.SetSigned(w, "sid", "token-value"))

		c := firstCookie(t, w, "sid")
		require.NotNil(t, c)
		assert.NotEqual(t, "token-value", c.Value)
		assert.Contains(t, c.Value, ".")

		got, err := m.GetSigned(requestWithCookie(c), "sid")
		require.NoError(t, err)
		assert.Equal(t, "token-value", got)
	})

	t.Run("tampered value", func(t *testing.T) {
		w := httptest.NewRecorder()
		require.NoError(t, m.SetSigned(w, "sid", "token-value"))

		c := firstCookie(t, w, "sid")
		require.NotNil(t, c)
		encoded, sig, _ := strings.Cut(c.Value, ".")
		c.Value = encoded + "x." + sig

		_, err := m.GetSigned(requestWithCookie(c), "sid")
		assert.Error(t, err)
	})

	t.Run("tampered signature", func(t *testing.T) {
		w := httptest.NewRecorder()
		require.NoError(t, m.SetSigned(w, "sid", "token-value"))

		c := firstCookie(t, w, "sid")
		require.NotNil(t, c)
		c.Value += "x"

		_, err := m.GetSigned(requestWithCookie(c), "sid")
		assert.ErrorIs(t, err, cookie.ErrInvalidSignature)
	})

	t.Run("unsigned value rejected", func(t *testing.T) {
		_, err := m.GetSigned(requestWithCookie(&http.Cookie{Name: "sid", Value: "bare-value"}), "sid")
		assert.ErrorIs(t, err, cookie.ErrInvalidFormat)
	})

	t.Run("signed by another key", func(t *testing.T) {
		other := newManager(t, rotatedSecret)

		w := httptest.NewRecorder()
		require.NoError(t, other.SetSigned(w, "sid", "token-value"))

		c := firstCookie(t, w, "sid")
		require.NotNil(t, c)

		_, err := m.GetSigned(requestWithCookie(c), "sid")
		assert.ErrorIs(t, err, cookie.ErrInvalidSignature)
	})
}

func TestManager_KeyRotation(t *testing.T) {
	oldManager := newManager(t, rotatedSecret)

	// Cookie issued before the rotation.
	w := httptest.NewRecorder()
	require.NoError(t, oldManager.SetSigned(w, "sid", "token-value"))
	oldCookie := firstCookie(t, w, "sid")
	require.NotNil(t, oldCookie)

	// New deployments sign with the fresh key but still verify the old one.
	rotated := newManager(t, testSecret, rotatedSecret)

	got, err := rotated.GetSigned(requestWithCookie(oldCookie), "sid")
	require.NoError(t, err)
	assert.Equal(t, "token-value", got)

	w = httptest.NewRecorder()
	require.NoError(t, rotated.SetSigned(w, "sid", "token-value"))
	newCookie := firstCookie(t, w, "sid")
	require.NotNil(t, newCookie)
	assert.NotEqual(t, oldCookie.Value, newCookie.Value)

	// Once the old key is retired, its cookies stop verifying.
	final := newManager(t, testSecret)
	_, err = final.GetSigned(requestWithCookie(oldCookie), "sid")
	assert.ErrorIs(t, err, cookie.ErrInvalidSignature)
}
