package notification

import (
	"testing"

	"github.com/gofrs/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/traPtitech/traQ-moderation/model"
	"github.com/traPtitech/traQ-moderation/service/rbac/role"
	"github.com/traPtitech/traQ-moderation/testutils"
	"github.com/traPtitech/traQ-moderation/utils/optional"
)

func TestService(t *testing.T) {
	t.Parallel()

	repo := testutils.NewTestRepository(t)
	s := NewService(repo, zap.NewNop())
	u1 := testutils.MustMakeUser(t, repo, testutils.Random, role.User)
	u2 := testutils.MustMakeUser(t, repo, testutils.Random, role.User)
	ref := uuid.Must(uuid.NewV7())

	require.NoError(t, s.Notify(repo, u1.ID, "first", model.NotificationTypeSanction, optional.From(u1.ID)))
	require.NoError(t, s.Notify(repo, u1.ID, "second", model.NotificationTypeReportResolved, optional.From(ref)))

	ns, err := s.GetNotifications(u1.Actor(), false, 0)
	require.NoError(t, err)
	if assert.Len(t, ns, 2) {
		assert.Equal(t, "second", ns[0].Message)
		assert.Equal(t, ref, ns[0].ReferenceID.V)
		assert.False(t, ns[0].IsRead)
	}

	assert.ErrorIs(t, s.MarkAsRead(u2.Actor(), ns[0].ID), ErrNotFound)
	assert.ErrorIs(t, s.MarkAsRead(u1.Actor(), uuid.Nil), ErrNotFound)
	require.NoError(t, s.MarkAsRead(u1.Actor(), ns[0].ID))
	require.NoError(t, s.MarkAsRead(u1.Actor(), ns[0].ID))

	unread, err := s.GetNotifications(u1.Actor(), true, 10)
	require.NoError(t, err)
	if assert.Len(t, unread, 1) {
		assert.Equal(t, "first", unread[0].Message)
	}

	others, err := s.GetNotifications(u2.Actor(), false, 10)
	require.NoError(t, err)
	assert.Empty(t, others)
}
