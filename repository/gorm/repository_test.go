package gorm

import (
	"errors"
	"fmt"
	"testing"

	"github.com/gofrs/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/traPtitech/traQ-moderation/model"
	"github.com/traPtitech/traQ-moderation/repository"
	"github.com/traPtitech/traQ-moderation/service/rbac/role"
	"github.com/traPtitech/traQ-moderation/utils/random"
)

const rand = "random"

func setup(t *testing.T) (repository.Repository, *assert.Assertions, *require.Assertions) {
	t.Helper()
	engine, err := gorm.Open(sqlite.Open(fmt.Sprintf("file:%s?mode=memory&cache=shared", random.AlphaNumeric(20))), &gorm.Config{
		Logger: logger.Discard,
	})
	require.NoError(t, err)
	db, err := engine.DB()
	require.NoError(t, err)
	// 同時に1接続のみ使用させ、トランザクションを直列化する
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	repo, init, err := NewGormRepository(engine, zap.NewNop(), true)
	require.NoError(t, err)
	require.True(t, init)
	return repo, assert.New(t), require.New(t)
}

func getDB(repo repository.Repository) *gorm.DB {
	return repo.(*Repository).db
}

func mustMakeUser(t *testing.T, repo repository.Repository, userName string, userRole string) *model.User {
	t.Helper()
	if userName == rand {
		userName = random.AlphaNumeric(32)
	}
	u, err := repo.CreateUser(repository.CreateUserArgs{Name: userName, Role: userRole})
	require.NoError(t, err)
	return u
}

func mustMakePost(t *testing.T, repo repository.Repository, userID uuid.UUID) *model.Post {
	t.Helper()
	p, err := repo.CreatePost(repository.CreatePostArgs{UserID: userID, Content: "buy cheap followers at example.com"})
	require.NoError(t, err)
	return p
}

func mustMakeReport(t *testing.T, repo repository.Repository, reporterID, contentID uuid.UUID) *model.Report {
	t.Helper()
	r, err := repo.CreateReport(repository.CreateReportArgs{
		ReporterID:  reporterID,
		ContentType: model.ContentTypePost,
		ContentID:   contentID,
		Reason:      "spam",
		Details:     "repeated links",
	})
	require.NoError(t, err)
	return r
}

func TestRepository_Transaction(t *testing.T) {
	t.Parallel()

	t.Run("commit", func(t *testing.T) {
		t.Parallel()
		repo, assert, require := setup(t)

		var created *model.User
		err := repo.Transaction(func(tx repository.Repository) error {
			u, err := tx.CreateUser(repository.CreateUserArgs{Name: "alice", Role: role.User})
			created = u
			return err
		})
		require.NoError(err)

		u, err := repo.GetUser(created.ID)
		require.NoError(err)
		assert.Equal("alice", u.Name)
	})

	t.Run("rollback", func(t *testing.T) {
		t.Parallel()
		repo, assert, _ := setup(t)

		errAbort := errors.New("abort")
		err := repo.Transaction(func(tx repository.Repository) error {
			if _, err := tx.CreateUser(repository.CreateUserArgs{Name: "bob", Role: role.User}); err != nil {
				return err
			}
			return errAbort
		})
		assert.ErrorIs(err, errAbort)

		_, err = repo.GetUserByName("bob")
		assert.ErrorIs(err, repository.ErrNotFound)
	})
}
