package report

import (
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/gofrs/uuid"
	"github.com/golang/mock/gomock"
	"github.com/leandro-lugaresi/hub"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/traPtitech/traQ-moderation/model"
	"github.com/traPtitech/traQ-moderation/repository"
	"github.com/traPtitech/traQ-moderation/service/audit"
	"github.com/traPtitech/traQ-moderation/service/audit/mock_audit"
	"github.com/traPtitech/traQ-moderation/service/content"
	"github.com/traPtitech/traQ-moderation/service/notification"
	"github.com/traPtitech/traQ-moderation/service/notification/mock_notification"
	"github.com/traPtitech/traQ-moderation/service/rbac"
	"github.com/traPtitech/traQ-moderation/service/rbac/role"
	"github.com/traPtitech/traQ-moderation/service/reason"
	"github.com/traPtitech/traQ-moderation/testutils"
	"github.com/traPtitech/traQ-moderation/utils/optional"
)

func setup(t *testing.T, notif notification.Dispatcher) (Manager, repository.Repository) {
	t.Helper()
	repo := testutils.NewTestRepository(t)
	r := rbac.New()
	if notif == nil {
		notif = notification.NewService(repo, zap.NewNop())
	}
	m := NewManager(repo, r, audit.NewTrail(repo, r), notif, content.NewVisibility(), hub.New(), zap.NewNop())
	return m, repo
}

func getNotifications(t *testing.T, repo repository.Repository, userID uuid.UUID) []*model.Notification {
	t.Helper()
	ns, err := repo.GetNotifications(repository.NotificationsQuery{UserID: userID, Limit: 100})
	require.NoError(t, err)
	return ns
}

func getResolveLogs(t *testing.T, repo repository.Repository) []*model.ActionLog {
	t.Helper()
	logs, err := repo.GetActionLogs(repository.ActionLogsQuery{ActionType: optional.From(model.ActionReportResolve), Limit: 100})
	require.NoError(t, err)
	return logs
}

func TestManager_FileReport(t *testing.T) {
	t.Parallel()

	m, repo := setup(t, nil)
	reporter := testutils.MustMakeUser(t, repo, testutils.Random, role.User)
	author := testutils.MustMakeUser(t, repo, testutils.Random, role.User)
	post := testutils.MustMakePost(t, repo, author.ID, "buy cheap stuff")

	t.Run("success", func(t *testing.T) {
		r, err := m.FileReport(reporter.Actor(), FileArgs{
			ContentType: model.ContentTypePost,
			ContentID:   post.ID,
			Reason:      " spam ",
			Details:     "links everywhere",
		})
		if assert.NoError(t, err) {
			assert.Equal(t, model.ReportStatusPending, r.Status)
			assert.Equal(t, reporter.ID, r.ReporterID)
			assert.Equal(t, "spam", r.Reason)
			assert.False(t, r.ReviewedBy.Valid)
		}
		assert.Empty(t, getResolveLogs(t, repo))
	})

	t.Run("invalid content type", func(t *testing.T) {
		_, err := m.FileReport(reporter.Actor(), FileArgs{ContentType: "video", ContentID: post.ID, Reason: "spam"})
		assert.ErrorIs(t, err, ErrInvalidArgument)
	})

	t.Run("empty reason", func(t *testing.T) {
		_, err := m.FileReport(reporter.Actor(), FileArgs{ContentType: model.ContentTypePost, ContentID: post.ID, Reason: "   "})
		assert.ErrorIs(t, err, ErrInvalidArgument)
	})

	t.Run("too long reason", func(t *testing.T) {
		_, err := m.FileReport(reporter.Actor(), FileArgs{ContentType: model.ContentTypePost, ContentID: post.ID, Reason: strings.Repeat("a", 501)})
		assert.ErrorIs(t, err, ErrInvalidArgument)
	})

	t.Run("nil content id", func(t *testing.T) {
		_, err := m.FileReport(reporter.Actor(), FileArgs{ContentType: model.ContentTypePost, Reason: "spam"})
		assert.ErrorIs(t, err, ErrInvalidArgument)
	})

	t.Run("unknown role", func(t *testing.T) {
		_, err := m.FileReport(model.Actor{ID: reporter.ID, Role: "bot"}, FileArgs{ContentType: model.ContentTypePost, ContentID: post.ID, Reason: "spam"})
		assert.ErrorIs(t, err, rbac.ErrPermissionDenied)
	})
}

func TestManager_GetPendingReports(t *testing.T) {
	t.Parallel()

	m, repo := setup(t, nil)
	user := testutils.MustMakeUser(t, repo, testutils.Random, role.User)
	moderator := testutils.MustMakeUser(t, repo, testutils.Random, role.Moderator)
	post := testutils.MustMakePost(t, repo, user.ID, "hello")
	r1 := testutils.MustMakeReport(t, repo, user.ID, model.ContentTypePost, post.ID)
	r2 := testutils.MustMakeReport(t, repo, user.ID, model.ContentTypePost, post.ID)
	r3 := testutils.MustMakeReport(t, repo, user.ID, model.ContentTypePost, post.ID)
	testutils.MustSetReportStatus(t, repo, r2.ID, model.ReportStatusDismissed)

	_, err := m.GetPendingReports(user.Actor())
	assert.ErrorIs(t, err, rbac.ErrPermissionDenied)

	reports, err := m.GetPendingReports(moderator.Actor())
	if assert.NoError(t, err) && assert.Len(t, reports, 2) {
		assert.Equal(t, r1.ID, reports[0].ID)
		assert.Equal(t, r3.ID, reports[1].ID)
	}
}

func TestManager_ResolveReport(t *testing.T) {
	t.Parallel()

	t.Run("uphold and hide", func(t *testing.T) {
		t.Parallel()
		m, repo := setup(t, nil)
		u1 := testutils.MustMakeUser(t, repo, testutils.Random, role.User)
		u2 := testutils.MustMakeUser(t, repo, testutils.Random, role.User)
		mod := testutils.MustMakeUser(t, repo, testutils.Random, role.Moderator)
		p1 := testutils.MustMakePost(t, repo, u2.ID, "buy cheap watches at example dot com")

		r, err := m.FileReport(u1.Actor(), FileArgs{ContentType: model.ContentTypePost, ContentID: p1.ID, Reason: "spam"})
		require.NoError(t, err)

		require.NoError(t, m.ResolveReport(mod.Actor(), r.ID, ResolveArgs{Action: ActionUphold, ReasonKey: "spam", HideContent: true}))

		got, err := repo.GetReport(r.ID)
		require.NoError(t, err)
		assert.Equal(t, model.ReportStatusActionTaken, got.Status)
		assert.Equal(t, mod.ID, got.ReviewedBy.V)
		assert.True(t, got.ReviewedAt.Valid)

		post, err := repo.GetPost(p1.ID)
		require.NoError(t, err)
		assert.False(t, post.IsVisible)

		if ns := getNotifications(t, repo, u1.ID); assert.Len(t, ns, 1) {
			assert.Contains(t, ns[0].Message, "has been approved")
			assert.Equal(t, model.NotificationTypeReportResolved, ns[0].Type)
		}
		if ns := getNotifications(t, repo, u2.ID); assert.Len(t, ns, 1) {
			assert.Contains(t, ns[0].Message, "/appeals/new?report_id="+r.ID.String())
			assert.Equal(t, model.NotificationTypeContentRemoved, ns[0].Type)
		}
		if logs := getResolveLogs(t, repo); assert.Len(t, logs, 1) {
			assert.Equal(t, mod.ID, logs[0].ActorID)
			assert.Equal(t, u2.ID, logs[0].TargetUserID.V)
			assert.Equal(t, p1.ID, logs[0].TargetContentID.V)
			assert.Contains(t, logs[0].Details, "buy cheap watches at example dot com")
			assert.Contains(t, logs[0].Details, "Content hidden.")
		}
	})

	t.Run("uphold without hide", func(t *testing.T) {
		t.Parallel()
		m, repo := setup(t, nil)
		u1 := testutils.MustMakeUser(t, repo, testutils.Random, role.User)
		u2 := testutils.MustMakeUser(t, repo, testutils.Random, role.User)
		mod := testutils.MustMakeUser(t, repo, testutils.Random, role.Moderator)
		p1 := testutils.MustMakePost(t, repo, u2.ID, "rude words")
		r := testutils.MustMakeReport(t, repo, u1.ID, model.ContentTypePost, p1.ID)

		require.NoError(t, m.ResolveReport(mod.Actor(), r.ID, ResolveArgs{Action: ActionUphold, ReasonKey: "harassment"}))

		post, err := repo.GetPost(p1.ID)
		require.NoError(t, err)
		assert.True(t, post.IsVisible)
	})

	t.Run("uphold hides shared post quote", func(t *testing.T) {
		t.Parallel()
		m, repo := setup(t, nil)
		u1 := testutils.MustMakeUser(t, repo, testutils.Random, role.User)
		u2 := testutils.MustMakeUser(t, repo, testutils.Random, role.User)
		mod := testutils.MustMakeUser(t, repo, testutils.Random, role.Moderator)
		p := testutils.MustMakePost(t, repo, u1.ID, "original")
		sp := testutils.MustMakeSharedPost(t, repo, p.ID, u2.ID, "hateful quote")
		r := testutils.MustMakeReport(t, repo, u1.ID, model.ContentTypeSharedPost, sp.ID)

		require.NoError(t, m.ResolveReport(mod.Actor(), r.ID, ResolveArgs{Action: ActionUphold, ReasonKey: "hate_speech", HideContent: true}))

		got, err := repo.GetSharedPost(sp.ID)
		require.NoError(t, err)
		assert.Equal(t, content.RedactionMarker, got.QuoteContent.V)
		if logs := getResolveLogs(t, repo); assert.Len(t, logs, 1) {
			assert.Contains(t, logs[0].Details, "hateful quote")
		}
	})

	t.Run("dismiss with custom reason", func(t *testing.T) {
		t.Parallel()
		m, repo := setup(t, nil)
		u1 := testutils.MustMakeUser(t, repo, testutils.Random, role.User)
		u2 := testutils.MustMakeUser(t, repo, testutils.Random, role.User)
		mod := testutils.MustMakeUser(t, repo, testutils.Random, role.Moderator)
		c := testutils.MustMakeComment(t, repo, testutils.MustMakePost(t, repo, u2.ID, "post").ID, u2.ID, "comment")
		r := testutils.MustMakeReport(t, repo, u1.ID, model.ContentTypeComment, c.ID)

		require.NoError(t, m.ResolveReport(mod.Actor(), r.ID, ResolveArgs{
			Action:        ActionDismiss,
			ReasonKey:     reason.Custom,
			CustomMessage: "<b>fine</b>",
			HideContent:   true,
		}))

		got, err := repo.GetReport(r.ID)
		require.NoError(t, err)
		assert.Equal(t, model.ReportStatusDismissed, got.Status)

		comment, err := repo.GetComment(c.ID)
		require.NoError(t, err)
		assert.True(t, comment.IsVisible)

		if ns := getNotifications(t, repo, u1.ID); assert.Len(t, ns, 1) {
			assert.Contains(t, ns[0].Message, "&lt;b&gt;fine&lt;/b&gt;")
			assert.Contains(t, ns[0].Message, "appeal it")
		}
		assert.Empty(t, getNotifications(t, repo, u2.ID))
		assert.Len(t, getResolveLogs(t, repo), 1)
	})

	t.Run("already resolved", func(t *testing.T) {
		t.Parallel()
		m, repo := setup(t, nil)
		u1 := testutils.MustMakeUser(t, repo, testutils.Random, role.User)
		mod := testutils.MustMakeUser(t, repo, testutils.Random, role.Moderator)
		p := testutils.MustMakePost(t, repo, u1.ID, "post")
		r := testutils.MustMakeReport(t, repo, u1.ID, model.ContentTypePost, p.ID)

		require.NoError(t, m.ResolveReport(mod.Actor(), r.ID, ResolveArgs{Action: ActionDismiss, ReasonKey: "not_a_violation"}))
		assert.ErrorIs(t, m.ResolveReport(mod.Actor(), r.ID, ResolveArgs{Action: ActionUphold, ReasonKey: "spam"}), ErrAlreadyResolved)

		got, err := repo.GetReport(r.ID)
		require.NoError(t, err)
		assert.Equal(t, model.ReportStatusDismissed, got.Status)
		assert.Len(t, getResolveLogs(t, repo), 1)
	})

	t.Run("concurrent resolve", func(t *testing.T) {
		t.Parallel()
		m, repo := setup(t, nil)
		u1 := testutils.MustMakeUser(t, repo, testutils.Random, role.User)
		mod1 := testutils.MustMakeUser(t, repo, testutils.Random, role.Moderator)
		mod2 := testutils.MustMakeUser(t, repo, testutils.Random, role.Moderator)
		p := testutils.MustMakePost(t, repo, u1.ID, "post")
		r := testutils.MustMakeReport(t, repo, u1.ID, model.ContentTypePost, p.ID)

		var wg sync.WaitGroup
		errs := make([]error, 2)
		for i, mod := range []*model.User{mod1, mod2} {
			wg.Add(1)
			go func() {
				defer wg.Done()
				errs[i] = m.ResolveReport(mod.Actor(), r.ID, ResolveArgs{Action: ActionDismiss, ReasonKey: "not_a_violation"})
			}()
		}
		wg.Wait()

		succeeded := 0
		for _, err := range errs {
			if err == nil {
				succeeded++
			} else {
				assert.ErrorIs(t, err, ErrAlreadyResolved)
			}
		}
		assert.Equal(t, 1, succeeded)
		assert.Len(t, getResolveLogs(t, repo), 1)
		assert.Len(t, getNotifications(t, repo, u1.ID), 1)
	})

	t.Run("content not found", func(t *testing.T) {
		t.Parallel()
		m, repo := setup(t, nil)
		u1 := testutils.MustMakeUser(t, repo, testutils.Random, role.User)
		mod := testutils.MustMakeUser(t, repo, testutils.Random, role.Moderator)
		r := testutils.MustMakeReport(t, repo, u1.ID, model.ContentTypePost, uuid.Must(uuid.NewV7()))

		assert.ErrorIs(t, m.ResolveReport(mod.Actor(), r.ID, ResolveArgs{Action: ActionUphold, ReasonKey: "spam", HideContent: true}), ErrContentNotFound)

		got, err := repo.GetReport(r.ID)
		require.NoError(t, err)
		assert.Equal(t, model.ReportStatusErrorContentNotFound, got.Status)
		if logs := getResolveLogs(t, repo); assert.Len(t, logs, 1) {
			assert.Equal(t, mod.ID, logs[0].ActorID)
			assert.False(t, logs[0].TargetUserID.Valid)
			assert.Equal(t, r.ContentID, logs[0].TargetContentID.V)
			assert.Contains(t, logs[0].Details, "content not found")
		}
		assert.Empty(t, getNotifications(t, repo, u1.ID))

		assert.ErrorIs(t, m.ResolveReport(mod.Actor(), r.ID, ResolveArgs{Action: ActionUphold, ReasonKey: "spam"}), ErrAlreadyResolved)
	})

	t.Run("orphaned author", func(t *testing.T) {
		t.Parallel()
		m, repo := setup(t, nil)
		u1 := testutils.MustMakeUser(t, repo, testutils.Random, role.User)
		mod := testutils.MustMakeUser(t, repo, testutils.Random, role.Moderator)
		orphan := uuid.Must(uuid.NewV7())
		p := testutils.MustMakePost(t, repo, orphan, "orphaned")
		r := testutils.MustMakeReport(t, repo, u1.ID, model.ContentTypePost, p.ID)

		require.NoError(t, m.ResolveReport(mod.Actor(), r.ID, ResolveArgs{Action: ActionUphold, ReasonKey: "spam", HideContent: true}))

		assert.Len(t, getNotifications(t, repo, u1.ID), 1)
		assert.Empty(t, getNotifications(t, repo, orphan))
		assert.Len(t, getResolveLogs(t, repo), 1)
	})

	t.Run("validation before storage", func(t *testing.T) {
		t.Parallel()
		m, repo := setup(t, nil)
		u1 := testutils.MustMakeUser(t, repo, testutils.Random, role.User)
		mod := testutils.MustMakeUser(t, repo, testutils.Random, role.Moderator)
		missing := uuid.Must(uuid.NewV7())

		assert.ErrorIs(t, m.ResolveReport(mod.Actor(), missing, ResolveArgs{Action: ActionUphold, ReasonKey: "not_a_violation"}), reason.ErrInvalidReason)
		assert.ErrorIs(t, m.ResolveReport(mod.Actor(), missing, ResolveArgs{Action: ActionDismiss, ReasonKey: reason.Custom}), reason.ErrInvalidReason)
		assert.ErrorIs(t, m.ResolveReport(mod.Actor(), missing, ResolveArgs{Action: "escalate", ReasonKey: "spam"}), ErrInvalidAction)
		assert.ErrorIs(t, m.ResolveReport(mod.Actor(), missing, ResolveArgs{Action: ActionUphold, ReasonKey: "spam"}), ErrNotFound)
		assert.ErrorIs(t, m.ResolveReport(u1.Actor(), missing, ResolveArgs{Action: ActionUphold, ReasonKey: "spam"}), rbac.ErrPermissionDenied)
	})

	t.Run("notification failure rolls back", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		notif := mock_notification.NewMockDispatcher(ctrl)

		m, repo := setup(t, notif)
		u1 := testutils.MustMakeUser(t, repo, testutils.Random, role.User)
		u2 := testutils.MustMakeUser(t, repo, testutils.Random, role.User)
		mod := testutils.MustMakeUser(t, repo, testutils.Random, role.Moderator)
		p := testutils.MustMakePost(t, repo, u2.ID, "post")
		r := testutils.MustMakeReport(t, repo, u1.ID, model.ContentTypePost, p.ID)

		gomock.InOrder(
			notif.EXPECT().
				Notify(gomock.Any(), u1.ID, gomock.Any(), model.NotificationTypeReportResolved, optional.From(r.ID)).
				Return(nil),
			notif.EXPECT().
				Notify(gomock.Any(), u2.ID, gomock.Any(), model.NotificationTypeContentRemoved, optional.From(r.ID)).
				Return(errors.New("broken")),
		)

		assert.Error(t, m.ResolveReport(mod.Actor(), r.ID, ResolveArgs{Action: ActionUphold, ReasonKey: "spam", HideContent: true}))

		got, err := repo.GetReport(r.ID)
		require.NoError(t, err)
		assert.Equal(t, model.ReportStatusPending, got.Status)
		post, err := repo.GetPost(p.ID)
		require.NoError(t, err)
		assert.True(t, post.IsVisible)
		assert.Empty(t, getResolveLogs(t, repo))
	})

	t.Run("audit failure rolls back", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		trail := mock_audit.NewMockTrail(ctrl)
		trail.EXPECT().
			Record(gomock.Any(), gomock.Any()).
			Return(errors.New("audit down")).
			Times(1)

		repo := testutils.NewTestRepository(t)
		m := NewManager(repo, rbac.New(), trail, notification.NewService(repo, zap.NewNop()), content.NewVisibility(), hub.New(), zap.NewNop())
		u1 := testutils.MustMakeUser(t, repo, testutils.Random, role.User)
		u2 := testutils.MustMakeUser(t, repo, testutils.Random, role.User)
		mod := testutils.MustMakeUser(t, repo, testutils.Random, role.Moderator)
		p := testutils.MustMakePost(t, repo, u2.ID, "post")
		r := testutils.MustMakeReport(t, repo, u1.ID, model.ContentTypePost, p.ID)

		assert.Error(t, m.ResolveReport(mod.Actor(), r.ID, ResolveArgs{Action: ActionUphold, ReasonKey: "spam", HideContent: true}))

		got, err := repo.GetReport(r.ID)
		require.NoError(t, err)
		assert.Equal(t, model.ReportStatusPending, got.Status)
		post, err := repo.GetPost(p.ID)
		require.NoError(t, err)
		assert.True(t, post.IsVisible)
		assert.Empty(t, getNotifications(t, repo, u1.ID))
		assert.Empty(t, getNotifications(t, repo, u2.ID))
	})
}
