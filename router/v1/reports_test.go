package v1

import (
	"net/http"
	"testing"
	"time"

	"github.com/gofrs/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/traPtitech/traQ-moderation/model"
	"github.com/traPtitech/traQ-moderation/repository"
	"github.com/traPtitech/traQ-moderation/router/session"
	"github.com/traPtitech/traQ-moderation/service/rbac/role"
	"github.com/traPtitech/traQ-moderation/testutils"
	"github.com/traPtitech/traQ-moderation/utils/optional"
)

func TestHandlers_PostReport(t *testing.T) {
	t.Parallel()

	path := "/api/v1/reports"

	t.Run("not logged in", func(t *testing.T) {
		t.Parallel()
		env := setup(t)
		env.R(t).POST(path).
			WithJSON(&PostReportRequest{ContentType: "post", ContentID: uuid.Must(uuid.NewV7()), Reason: "spam"}).
			Expect().
			Status(http.StatusUnauthorized)
	})

	t.Run("bad request", func(t *testing.T) {
		t.Parallel()
		env := setup(t)
		s := env.S(t, env.user(t, role.User))
		cases := []PostReportRequest{
			{ContentType: "video", ContentID: uuid.Must(uuid.NewV7()), Reason: "spam"},
			{ContentType: "post", ContentID: uuid.Nil, Reason: "spam"},
			{ContentType: "post", ContentID: uuid.Must(uuid.NewV7()), Reason: ""},
		}
		for _, req := range cases {
			env.R(t).POST(path).
				WithCookie(session.CookieName, s).
				WithJSON(&req).
				Expect().
				Status(http.StatusBadRequest)
		}
	})

	t.Run("success", func(t *testing.T) {
		t.Parallel()
		env := setup(t)
		reporter := env.user(t, role.User)
		author := env.user(t, role.User)
		post := testutils.MustMakePost(t, env.repo, author.ID, "buy cheap pills")
		s := env.S(t, reporter)

		obj := env.R(t).POST(path).
			WithCookie(session.CookieName, s).
			WithJSON(&PostReportRequest{ContentType: "post", ContentID: post.ID, Reason: "spam", Details: "link farm"}).
			Expect().
			Status(http.StatusCreated).
			JSON().Object()
		obj.HasValue("reporterUserId", reporter.ID.String())
		obj.HasValue("contentType", "post")
		obj.HasValue("contentId", post.ID.String())
		obj.HasValue("status", "pending")
		obj.Value("reviewedByUserId").IsNull()
	})

	t.Run("muted user can read and report", func(t *testing.T) {
		t.Parallel()
		env := setup(t)
		reporter := env.user(t, role.User)
		post := testutils.MustMakePost(t, env.repo, env.user(t, role.User).ID, "rude words")
		s := env.S(t, reporter)
		require.NoError(t, env.repo.UpdateUserSanction(reporter.ID, repository.UpdateUserSanctionArgs{
			MutedUntil: optional.From(time.Now().Add(72 * time.Hour)),
		}))

		env.R(t).GET("/api/v1/users/me/notifications").
			WithCookie(session.CookieName, s).
			Expect().
			Status(http.StatusOK)
		env.R(t).POST(path).
			WithCookie(session.CookieName, s).
			WithJSON(&PostReportRequest{ContentType: "post", ContentID: post.ID, Reason: "harassment"}).
			Expect().
			Status(http.StatusCreated).
			JSON().Object().
			HasValue("reporterUserId", reporter.ID.String())
	})

	t.Run("banned user", func(t *testing.T) {
		t.Parallel()
		env := setup(t)
		reporter := env.user(t, role.User)
		post := testutils.MustMakePost(t, env.repo, env.user(t, role.User).ID, "rude words")
		s := env.S(t, reporter)
		require.NoError(t, env.repo.UpdateUserSanction(reporter.ID, repository.UpdateUserSanctionArgs{
			BannedUntil: optional.From(time.Now().Add(72 * time.Hour)),
			BanReason:   optional.From("spam"),
		}))

		env.R(t).POST(path).
			WithCookie(session.CookieName, s).
			WithJSON(&PostReportRequest{ContentType: "post", ContentID: post.ID, Reason: "harassment"}).
			Expect().
			Status(http.StatusForbidden)
	})
}

func TestHandlers_GetReports(t *testing.T) {
	t.Parallel()
	env := setup(t)
	reporter := env.user(t, role.User)
	author := env.user(t, role.User)
	post := testutils.MustMakePost(t, env.repo, author.ID, "post")
	r1 := testutils.MustMakeReport(t, env.repo, reporter.ID, model.ContentTypePost, post.ID)
	r2 := testutils.MustMakeReport(t, env.repo, reporter.ID, model.ContentTypePost, post.ID)
	r3 := testutils.MustMakeReport(t, env.repo, reporter.ID, model.ContentTypePost, post.ID)
	testutils.MustSetReportStatus(t, env.repo, r3.ID, model.ReportStatusDismissed)
	missing := uuid.Must(uuid.NewV7())
	r4 := testutils.MustMakeReport(t, env.repo, reporter.ID, model.ContentTypeComment, missing)

	t.Run("forbidden", func(t *testing.T) {
		t.Parallel()
		env.R(t).GET("/api/v1/reports").
			WithCookie(session.CookieName, env.S(t, reporter)).
			Expect().
			Status(http.StatusForbidden)
	})

	t.Run("success", func(t *testing.T) {
		t.Parallel()
		arr := env.R(t).GET("/api/v1/reports").
			WithCookie(session.CookieName, env.S(t, env.user(t, role.Moderator))).
			Expect().
			Status(http.StatusOK).
			JSON().Array()
		arr.Length().IsEqual(3)
		arr.Value(1).Object().HasValue("id", r2.ID.String())

		first := arr.Value(0).Object()
		first.HasValue("id", r1.ID.String())
		first.HasValue("reporterName", reporter.Name)
		first.HasValue("reportedUserId", author.ID.String())
		first.HasValue("reportedUserName", author.Name)
		first.HasValue("contentLink", "/posts/"+post.ID.String())

		last := arr.Value(2).Object()
		last.HasValue("id", r4.ID.String())
		last.Value("reportedUserId").IsNull()
		last.Value("reportedUserName").IsNull()
		last.HasValue("contentLink", "/comments/"+missing.String())
	})
}

func TestHandlers_GetReport(t *testing.T) {
	t.Parallel()
	env := setup(t)
	reporter := env.user(t, role.User)
	post := testutils.MustMakePost(t, env.repo, reporter.ID, "post")
	r := testutils.MustMakeReport(t, env.repo, reporter.ID, model.ContentTypePost, post.ID)
	s := env.S(t, env.user(t, role.Moderator))

	t.Run("invalid id", func(t *testing.T) {
		t.Parallel()
		env.R(t).GET("/api/v1/reports/{reportID}", "not-a-uuid").
			WithCookie(session.CookieName, s).
			Expect().
			Status(http.StatusNotFound)
	})

	t.Run("not found", func(t *testing.T) {
		t.Parallel()
		env.R(t).GET("/api/v1/reports/{reportID}", uuid.Must(uuid.NewV7())).
			WithCookie(session.CookieName, s).
			Expect().
			Status(http.StatusNotFound)
	})

	t.Run("success", func(t *testing.T) {
		t.Parallel()
		env.R(t).GET("/api/v1/reports/{reportID}", r.ID).
			WithCookie(session.CookieName, s).
			Expect().
			Status(http.StatusOK).
			JSON().Object().HasValue("id", r.ID.String())
	})
}

func TestHandlers_PostResolveReport(t *testing.T) {
	t.Parallel()

	path := "/api/v1/reports/{reportID}/resolve"

	t.Run("forbidden", func(t *testing.T) {
		t.Parallel()
		env := setup(t)
		u := env.user(t, role.User)
		post := testutils.MustMakePost(t, env.repo, u.ID, "post")
		r := testutils.MustMakeReport(t, env.repo, u.ID, model.ContentTypePost, post.ID)

		env.R(t).POST(path, r.ID).
			WithCookie(session.CookieName, env.S(t, u)).
			WithJSON(&PostResolveReportRequest{Action: "uphold", Reason: "spam"}).
			Expect().
			Status(http.StatusForbidden)
	})

	t.Run("invalid reason", func(t *testing.T) {
		t.Parallel()
		env := setup(t)
		u := env.user(t, role.User)
		post := testutils.MustMakePost(t, env.repo, u.ID, "post")
		r := testutils.MustMakeReport(t, env.repo, u.ID, model.ContentTypePost, post.ID)
		s := env.S(t, env.user(t, role.Moderator))

		for _, req := range []PostResolveReportRequest{
			{Action: "uphold", Reason: "not_a_violation"},
			{Action: "dismiss", Reason: "custom", CustomMessage: "   "},
			{Action: "ban", Reason: "spam"},
		} {
			env.R(t).POST(path, r.ID).
				WithCookie(session.CookieName, s).
				WithJSON(&req).
				Expect().
				Status(http.StatusBadRequest)
		}

		got, err := env.repo.GetReport(r.ID)
		require.NoError(t, err)
		assert.Equal(t, model.ReportStatusPending, got.Status)
	})

	t.Run("uphold and hide", func(t *testing.T) {
		t.Parallel()
		env := setup(t)
		reporter := env.user(t, role.User)
		author := env.user(t, role.User)
		mod := env.user(t, role.Moderator)
		post := testutils.MustMakePost(t, env.repo, author.ID, "buy cheap pills")
		r := testutils.MustMakeReport(t, env.repo, reporter.ID, model.ContentTypePost, post.ID)
		s := env.S(t, mod)

		env.R(t).POST(path, r.ID).
			WithCookie(session.CookieName, s).
			WithJSON(&PostResolveReportRequest{Action: "uphold", Reason: "spam", HideContent: true}).
			Expect().
			Status(http.StatusNoContent)

		got, err := env.repo.GetReport(r.ID)
		require.NoError(t, err)
		assert.Equal(t, model.ReportStatusActionTaken, got.Status)
		assert.Equal(t, mod.ID, got.ReviewedBy.V)
		p, err := env.repo.GetPost(post.ID)
		require.NoError(t, err)
		assert.False(t, p.IsVisible)

		// 二重処理
		env.R(t).POST(path, r.ID).
			WithCookie(session.CookieName, s).
			WithJSON(&PostResolveReportRequest{Action: "dismiss", Reason: "not_a_violation"}).
			Expect().
			Status(http.StatusConflict)
	})

	t.Run("content not found", func(t *testing.T) {
		t.Parallel()
		env := setup(t)
		reporter := env.user(t, role.User)
		r := testutils.MustMakeReport(t, env.repo, reporter.ID, model.ContentTypeComment, uuid.Must(uuid.NewV7()))

		env.R(t).POST(path, r.ID).
			WithCookie(session.CookieName, env.S(t, env.user(t, role.Moderator))).
			WithJSON(&PostResolveReportRequest{Action: "dismiss", Reason: "not_a_violation"}).
			Expect().
			Status(http.StatusNotFound)

		got, err := env.repo.GetReport(r.ID)
		require.NoError(t, err)
		assert.Equal(t, model.ReportStatusErrorContentNotFound, got.Status)
	})
}
