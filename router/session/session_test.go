package session

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofrs/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newContext(e *echo.Echo, cookies ...*http.Cookie) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func findCookie(rec *httptest.ResponseRecorder) *http.Cookie {
	for _, c := range rec.Result().Cookies() {
		if c.Name == CookieName {
			return c
		}
	}
	return nil
}

func TestCookieStore(t *testing.T) {
	t.Parallel()

	e := echo.New()
	store := NewCookieStore(Config{Secret: []byte("0123456789abcdef0123456789abcdef")})
	userID := uuid.Must(uuid.NewV7())

	t.Run("no cookie", func(t *testing.T) {
		t.Parallel()
		c, _ := newContext(e)
		id, err := store.GetUserID(c)
		require.NoError(t, err)
		assert.Equal(t, uuid.Nil, id)
	})

	t.Run("issue, read and revoke", func(t *testing.T) {
		t.Parallel()
		c, rec := newContext(e)
		require.NoError(t, store.IssueSession(c, userID))
		cookie := findCookie(rec)
		require.NotNil(t, cookie)
		assert.True(t, cookie.HttpOnly)
		assert.Equal(t, DefaultMaxAge, cookie.MaxAge)

		c, _ = newContext(e, cookie)
		id, err := store.GetUserID(c)
		require.NoError(t, err)
		assert.Equal(t, userID, id)

		c, rec = newContext(e, cookie)
		require.NoError(t, store.RevokeSession(c))
		if revoked := findCookie(rec); assert.NotNil(t, revoked) {
			assert.Less(t, revoked.MaxAge, 0)
		}
	})

	t.Run("cookie signed with another key", func(t *testing.T) {
		t.Parallel()
		other := NewCookieStore(Config{Secret: []byte("fedcba9876543210fedcba9876543210"), MaxAge: 60})
		c, rec := newContext(e)
		require.NoError(t, other.IssueSession(c, userID))
		cookie := findCookie(rec)
		require.NotNil(t, cookie)
		assert.Equal(t, 60, cookie.MaxAge)

		c, _ = newContext(e, cookie)
		id, err := store.GetUserID(c)
		require.NoError(t, err)
		assert.Equal(t, uuid.Nil, id)
	})
}
