package sanction

import (
	"errors"
	"testing"
	"time"

	"github.com/gofrs/uuid"
	"github.com/golang/mock/gomock"
	"github.com/leandro-lugaresi/hub"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/traPtitech/traQ-moderation/event"
	"github.com/traPtitech/traQ-moderation/model"
	"github.com/traPtitech/traQ-moderation/repository"
	"github.com/traPtitech/traQ-moderation/service/audit"
	"github.com/traPtitech/traQ-moderation/service/audit/mock_audit"
	"github.com/traPtitech/traQ-moderation/service/notification"
	"github.com/traPtitech/traQ-moderation/service/notification/mock_notification"
	"github.com/traPtitech/traQ-moderation/service/rbac"
	"github.com/traPtitech/traQ-moderation/service/rbac/role"
	"github.com/traPtitech/traQ-moderation/testutils"
	"github.com/traPtitech/traQ-moderation/utils/optional"
)

var fixedNow = time.Date(2026, 10, 1, 12, 0, 0, 0, time.UTC)

func setupAdministrator(t *testing.T, notif notification.Dispatcher) (*administrator, repository.Repository, *hub.Hub) {
	t.Helper()
	repo := testutils.NewTestRepository(t)
	r := rbac.New()
	if notif == nil {
		notif = notification.NewService(repo, zap.NewNop())
	}
	h := hub.New()
	a := NewAdministrator(repo, r, audit.NewTrail(repo, r), notif, h, zap.NewNop()).(*administrator)
	a.now = func() time.Time { return fixedNow }
	return a, repo, h
}

func actionLogsFor(t *testing.T, repo repository.Repository, targetID uuid.UUID) []*model.ActionLog {
	t.Helper()
	logs, err := repo.GetActionLogs(repository.ActionLogsQuery{TargetUserID: optional.From(targetID), Limit: 100})
	require.NoError(t, err)
	return logs
}

func notificationsFor(t *testing.T, repo repository.Repository, userID uuid.UUID) []*model.Notification {
	t.Helper()
	ns, err := repo.GetNotifications(repository.NotificationsQuery{UserID: userID, Limit: 100})
	require.NoError(t, err)
	return ns
}

func TestAdministrator_Sanction(t *testing.T) {
	t.Parallel()

	t.Run("mute", func(t *testing.T) {
		t.Parallel()
		a, repo, _ := setupAdministrator(t, nil)
		admin := testutils.MustMakeUser(t, repo, testutils.Random, role.Admin)
		target := testutils.MustMakeUser(t, repo, testutils.Random, role.User)

		require.NoError(t, a.Sanction(admin.Actor(), target.ID, "7_mute", "spamming links"))

		u, err := repo.GetUser(target.ID)
		require.NoError(t, err)
		if assert.True(t, u.MutedUntil.Valid) {
			assert.WithinDuration(t, fixedNow.AddDate(0, 0, 7), u.MutedUntil.V, time.Second)
		}
		assert.False(t, u.BannedUntil.Valid)

		ns := notificationsFor(t, repo, target.ID)
		if assert.Len(t, ns, 1) {
			assert.Equal(t, model.NotificationTypeSanction, ns[0].Type)
			assert.Equal(t, target.ID, ns[0].ReferenceID.V)
			assert.Contains(t, ns[0].Message, "October 8, 2026 at 12:00 UTC")
			assert.Contains(t, ns[0].Message, "spamming links")
		}
		logs := actionLogsFor(t, repo, target.ID)
		if assert.Len(t, logs, 1) {
			assert.Equal(t, model.ActionUserSanction, logs[0].ActionType)
			assert.Equal(t, admin.ID, logs[0].ActorID)
		}

		g := NewGuard()
		st := g.Check(u, fixedNow.Add(time.Hour))
		assert.False(t, st.Allows(ActionProduce))
		assert.True(t, st.Allows(ActionRead))
		assert.True(t, st.Allows(ActionReport))
		assert.False(t, g.Check(u, fixedNow.AddDate(0, 0, 8)).Blocked)
	})

	t.Run("ban clears mute", func(t *testing.T) {
		t.Parallel()
		a, repo, _ := setupAdministrator(t, nil)
		admin := testutils.MustMakeUser(t, repo, testutils.Random, role.Admin)
		target := testutils.MustMakeUser(t, repo, testutils.Random, role.User)

		require.NoError(t, a.Sanction(admin.Actor(), target.ID, "7_mute", "noise"))
		require.NoError(t, a.Sanction(admin.Actor(), target.ID, "3_ban", "harassment"))

		u, err := repo.GetUser(target.ID)
		require.NoError(t, err)
		assert.False(t, u.MutedUntil.Valid)
		if assert.True(t, u.BannedUntil.Valid) {
			assert.WithinDuration(t, fixedNow.AddDate(0, 0, 3), u.BannedUntil.V, time.Second)
		}
		assert.Equal(t, "harassment", u.BanReason.V)
		assert.Len(t, actionLogsFor(t, repo, target.ID), 2)
	})

	t.Run("mute keeps ban", func(t *testing.T) {
		t.Parallel()
		a, repo, _ := setupAdministrator(t, nil)
		admin := testutils.MustMakeUser(t, repo, testutils.Random, role.Admin)
		target := testutils.MustMakeUser(t, repo, testutils.Random, role.User)

		require.NoError(t, a.Sanction(admin.Actor(), target.ID, "3_ban", "harassment"))
		require.NoError(t, a.Sanction(admin.Actor(), target.ID, "7_mute", "noise"))

		u, err := repo.GetUser(target.ID)
		require.NoError(t, err)
		assert.True(t, u.BannedUntil.Valid)
		assert.True(t, u.MutedUntil.Valid)
		assert.Equal(t, "harassment", u.BanReason.V)
	})

	t.Run("permanent ban", func(t *testing.T) {
		t.Parallel()
		a, repo, _ := setupAdministrator(t, nil)
		coordinator := testutils.MustMakeUser(t, repo, testutils.Random, role.Coordinator)
		target := testutils.MustMakeUser(t, repo, testutils.Random, role.Moderator)

		require.NoError(t, a.Sanction(coordinator.Actor(), target.ID, "permanent_ban", "repeated abuse"))

		u, err := repo.GetUser(target.ID)
		require.NoError(t, err)
		assert.True(t, u.IsPermanentlyBanned())
		assert.Equal(t, ReasonBanned, NewGuard().Check(u, time.Now()).Reason)
	})

	t.Run("lift is idempotent", func(t *testing.T) {
		t.Parallel()
		a, repo, _ := setupAdministrator(t, nil)
		admin := testutils.MustMakeUser(t, repo, testutils.Random, role.Admin)
		target := testutils.MustMakeUser(t, repo, testutils.Random, role.User)

		require.NoError(t, a.Sanction(admin.Actor(), target.ID, "permanent_ban", "abuse"))
		require.NoError(t, a.Sanction(admin.Actor(), target.ID, "lift_sanctions", ""))
		require.NoError(t, a.Sanction(admin.Actor(), target.ID, "lift_sanctions", ""))

		u, err := repo.GetUser(target.ID)
		require.NoError(t, err)
		assert.False(t, u.BannedUntil.Valid)
		assert.False(t, u.MutedUntil.Valid)
		assert.False(t, u.BanReason.Valid)
		assert.Len(t, actionLogsFor(t, repo, target.ID), 3)
		assert.Len(t, notificationsFor(t, repo, target.ID), 3)
	})

	t.Run("publishes event", func(t *testing.T) {
		t.Parallel()
		a, repo, h := setupAdministrator(t, nil)
		admin := testutils.MustMakeUser(t, repo, testutils.Random, role.Admin)
		target := testutils.MustMakeUser(t, repo, testutils.Random, role.User)
		sub := h.Subscribe(1, event.UserSanctioned)
		defer h.Unsubscribe(sub)

		require.NoError(t, a.Sanction(admin.Actor(), target.ID, "1_ban", "spam"))

		select {
		case m := <-sub.Receiver:
			assert.Equal(t, target.ID, m.Fields["user_id"])
			assert.Equal(t, string(KindBan), m.Fields["action"])
		case <-time.After(time.Second):
			t.Fatal("event was not published")
		}
	})

	t.Run("rejections", func(t *testing.T) {
		t.Parallel()
		a, repo, _ := setupAdministrator(t, nil)
		admin := testutils.MustMakeUser(t, repo, testutils.Random, role.Admin)
		coordinator := testutils.MustMakeUser(t, repo, testutils.Random, role.Coordinator)
		moderator := testutils.MustMakeUser(t, repo, testutils.Random, role.Moderator)
		target := testutils.MustMakeUser(t, repo, testutils.Random, role.User)

		assert.ErrorIs(t, a.Sanction(moderator.Actor(), target.ID, "7_mute", "x"), rbac.ErrPermissionDenied)
		assert.ErrorIs(t, a.Sanction(admin.Actor(), admin.ID, "7_mute", "x"), ErrSelfTargetForbidden)
		assert.ErrorIs(t, a.Sanction(admin.Actor(), target.ID, "forever", "x"), ErrInvalidDuration)
		assert.ErrorIs(t, a.Sanction(admin.Actor(), target.ID, "7_mute", "  "), ErrReasonRequired)
		assert.ErrorIs(t, a.Sanction(coordinator.Actor(), admin.ID, "7_mute", "x"), rbac.ErrPermissionDenied)
		assert.ErrorIs(t, a.Sanction(coordinator.Actor(), testutils.MustMakeUser(t, repo, testutils.Random, role.Coordinator).ID, "7_mute", "x"), rbac.ErrPermissionDenied)
		assert.ErrorIs(t, a.Sanction(admin.Actor(), uuid.Must(uuid.NewV7()), "7_mute", "x"), ErrUserNotFound)

		for _, u := range []*model.User{admin, target} {
			assert.Empty(t, actionLogsFor(t, repo, u.ID))
			assert.Empty(t, notificationsFor(t, repo, u.ID))
		}
	})

	t.Run("notification failure rolls back", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		notif := mock_notification.NewMockDispatcher(ctrl)
		notif.EXPECT().
			Notify(gomock.Any(), gomock.Any(), gomock.Any(), model.NotificationTypeSanction, gomock.Any()).
			Return(errors.New("broken")).
			Times(1)

		a, repo, _ := setupAdministrator(t, notif)
		admin := testutils.MustMakeUser(t, repo, testutils.Random, role.Admin)
		target := testutils.MustMakeUser(t, repo, testutils.Random, role.User)

		assert.Error(t, a.Sanction(admin.Actor(), target.ID, "7_ban", "x"))

		u, err := repo.GetUser(target.ID)
		require.NoError(t, err)
		assert.False(t, u.BannedUntil.Valid)
		assert.Empty(t, actionLogsFor(t, repo, target.ID))
	})

	t.Run("audit failure rolls back", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		trail := mock_audit.NewMockTrail(ctrl)
		trail.EXPECT().
			Record(gomock.Any(), gomock.Any()).
			Return(errors.New("audit down")).
			Times(1)

		a, repo, _ := setupAdministrator(t, nil)
		a.trail = trail
		admin := testutils.MustMakeUser(t, repo, testutils.Random, role.Admin)
		target := testutils.MustMakeUser(t, repo, testutils.Random, role.User)

		assert.Error(t, a.Sanction(admin.Actor(), target.ID, "3_mute", "spam"))

		u, err := repo.GetUser(target.ID)
		require.NoError(t, err)
		assert.False(t, u.MutedUntil.Valid)
		assert.Empty(t, notificationsFor(t, repo, target.ID))
	})
}

func TestAdministrator_SetRole(t *testing.T) {
	t.Parallel()

	t.Run("admin promotes", func(t *testing.T) {
		t.Parallel()
		a, repo, _ := setupAdministrator(t, nil)
		admin := testutils.MustMakeUser(t, repo, testutils.Random, role.Admin)
		target := testutils.MustMakeUser(t, repo, testutils.Random, role.User)

		require.NoError(t, a.SetRole(admin.Actor(), target.ID, role.Coordinator))

		u, err := repo.GetUser(target.ID)
		require.NoError(t, err)
		assert.Equal(t, role.Coordinator, u.Role)
		logs := actionLogsFor(t, repo, target.ID)
		if assert.Len(t, logs, 1) {
			assert.Equal(t, model.ActionRoleChange, logs[0].ActionType)
			assert.Contains(t, logs[0].Details, "from 'user' to 'coordinator'")
		}
	})

	t.Run("coordinator cannot demote admin", func(t *testing.T) {
		t.Parallel()
		a, repo, _ := setupAdministrator(t, nil)
		coordinator := testutils.MustMakeUser(t, repo, testutils.Random, role.Coordinator)
		admin := testutils.MustMakeUser(t, repo, testutils.Random, role.Admin)

		assert.ErrorIs(t, a.SetRole(coordinator.Actor(), admin.ID, role.User), rbac.ErrPermissionDenied)

		u, err := repo.GetUser(admin.ID)
		require.NoError(t, err)
		assert.Equal(t, role.Admin, u.Role)
		assert.Empty(t, actionLogsFor(t, repo, admin.ID))
	})

	t.Run("coordinator cannot assign coordinator", func(t *testing.T) {
		t.Parallel()
		a, repo, _ := setupAdministrator(t, nil)
		coordinator := testutils.MustMakeUser(t, repo, testutils.Random, role.Coordinator)
		target := testutils.MustMakeUser(t, repo, testutils.Random, role.User)

		assert.ErrorIs(t, a.SetRole(coordinator.Actor(), target.ID, role.Coordinator), rbac.ErrPermissionDenied)
		assert.NoError(t, a.SetRole(coordinator.Actor(), target.ID, role.Moderator))
	})

	t.Run("rejections", func(t *testing.T) {
		t.Parallel()
		a, repo, _ := setupAdministrator(t, nil)
		admin := testutils.MustMakeUser(t, repo, testutils.Random, role.Admin)
		moderator := testutils.MustMakeUser(t, repo, testutils.Random, role.Moderator)
		target := testutils.MustMakeUser(t, repo, testutils.Random, role.User)

		assert.ErrorIs(t, a.SetRole(moderator.Actor(), target.ID, role.Moderator), rbac.ErrPermissionDenied)
		assert.ErrorIs(t, a.SetRole(admin.Actor(), admin.ID, role.User), ErrSelfTargetForbidden)
		assert.ErrorIs(t, a.SetRole(admin.Actor(), target.ID, "bot"), ErrInvalidRole)
		assert.ErrorIs(t, a.SetRole(admin.Actor(), uuid.Must(uuid.NewV7()), role.User), ErrUserNotFound)
		assert.Empty(t, actionLogsFor(t, repo, target.ID))
	})
}
