package v1

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/traPtitech/traQ-moderation/model"
	"github.com/traPtitech/traQ-moderation/repository"
	"github.com/traPtitech/traQ-moderation/router/session"
	"github.com/traPtitech/traQ-moderation/service/rbac/role"
	"github.com/traPtitech/traQ-moderation/utils/optional"
)

func TestHandlers_Login(t *testing.T) {
	t.Parallel()

	t.Run("bad request", func(t *testing.T) {
		t.Parallel()
		env := setup(t)
		env.R(t).POST("/api/v1/login").
			WithJSON(map[string]string{"name": "無効な名前"}).
			Expect().
			Status(http.StatusBadRequest)
	})

	t.Run("unknown user", func(t *testing.T) {
		t.Parallel()
		env := setup(t)
		env.R(t).POST("/api/v1/login").
			WithJSON(map[string]string{"name": "nobody"}).
			Expect().
			Status(http.StatusUnauthorized)
	})

	t.Run("banned user", func(t *testing.T) {
		t.Parallel()
		env := setup(t)
		u := env.user(t, role.User)
		require.NoError(t, env.repo.UpdateUserSanction(u.ID, repository.UpdateUserSanctionArgs{
			BannedUntil: optional.From(model.PermanentBanUntil),
			BanReason:   optional.From("spam"),
		}))

		env.R(t).POST("/api/v1/login").
			WithJSON(map[string]string{"name": u.Name}).
			Expect().
			Status(http.StatusUnauthorized).
			JSON().Object().Value("message").String().HasPrefix("Your account has been permanently suspended.")
	})

	t.Run("success", func(t *testing.T) {
		t.Parallel()
		env := setup(t)
		u := env.user(t, role.User)
		s := env.S(t, u)

		env.R(t).GET("/api/v1/users/me/sanction").
			WithCookie(session.CookieName, s).
			Expect().
			Status(http.StatusOK).
			JSON().Object().
			HasValue("blocked", false).
			HasValue("reason", "none")
	})
}

func TestHandlers_Logout(t *testing.T) {
	t.Parallel()
	env := setup(t)
	u := env.user(t, role.User)
	s := env.S(t, u)

	env.R(t).POST("/api/v1/logout").
		WithCookie(session.CookieName, s).
		Expect().
		Status(http.StatusNoContent).
		Header("Set-Cookie").Contains("Max-Age=0")
}

func TestUserAuthenticate(t *testing.T) {
	t.Parallel()

	t.Run("not logged in", func(t *testing.T) {
		t.Parallel()
		env := setup(t)
		env.R(t).GET("/api/v1/users/me/sanction").
			Expect().
			Status(http.StatusUnauthorized)
	})

	t.Run("forged cookie", func(t *testing.T) {
		t.Parallel()
		env := setup(t)
		env.R(t).GET("/api/v1/users/me/sanction").
			WithCookie(session.CookieName, "forged").
			Expect().
			Status(http.StatusUnauthorized)
	})

	t.Run("banned after login", func(t *testing.T) {
		t.Parallel()
		env := setup(t)
		u := env.user(t, role.User)
		s := env.S(t, u)
		require.NoError(t, env.repo.UpdateUserSanction(u.ID, repository.UpdateUserSanctionArgs{
			BannedUntil: optional.From(time.Now().Add(24 * time.Hour)),
			BanReason:   optional.From("harassment"),
		}))

		res := env.R(t).GET("/api/v1/users/me/sanction").
			WithCookie(session.CookieName, s).
			Expect()
		res.Status(http.StatusForbidden)
		res.Header("Set-Cookie").Contains("Max-Age=0")
		res.JSON().Object().Value("message").String().Contains(`Reason: "harassment"`)
	})

	t.Run("expired ban", func(t *testing.T) {
		t.Parallel()
		env := setup(t)
		u := env.user(t, role.User)
		s := env.S(t, u)
		require.NoError(t, env.repo.UpdateUserSanction(u.ID, repository.UpdateUserSanctionArgs{
			BannedUntil: optional.From(time.Now().Add(-time.Minute)),
			BanReason:   optional.From("spam"),
		}))

		env.R(t).GET("/api/v1/users/me/sanction").
			WithCookie(session.CookieName, s).
			Expect().
			Status(http.StatusOK).
			JSON().Object().HasValue("blocked", false)
	})
}

func TestHandlers_GetMySanction(t *testing.T) {
	t.Parallel()
	env := setup(t)
	u := env.user(t, role.User)
	s := env.S(t, u)
	require.NoError(t, env.repo.UpdateUserSanction(u.ID, repository.UpdateUserSanctionArgs{
		MutedUntil: optional.From(time.Now().Add(72 * time.Hour)),
	}))

	obj := env.R(t).GET("/api/v1/users/me/sanction").
		WithCookie(session.CookieName, s).
		Expect().
		Status(http.StatusOK).
		JSON().Object()
	obj.HasValue("blocked", true)
	obj.HasValue("reason", "muted")
	obj.Value("message").String().HasSuffix("You cannot create content during this period.")
	obj.Value("until").String().NotEmpty()
}
