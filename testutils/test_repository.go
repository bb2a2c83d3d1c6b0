package testutils

import (
	"fmt"
	"testing"

	"github.com/gofrs/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/traPtitech/traQ-moderation/model"
	"github.com/traPtitech/traQ-moderation/repository"
	gormRepo "github.com/traPtitech/traQ-moderation/repository/gorm"
	"github.com/traPtitech/traQ-moderation/utils/optional"
	"github.com/traPtitech/traQ-moderation/utils/random"
)

// Random ランダムな名前を生成させるための指定
const Random = "random"

// NewTestDB テスト用のインメモリSQLiteデータベースを生成します
//
// 接続は1本に制限され、トランザクションは直列に実行されます。
func NewTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	engine, err := gorm.Open(sqlite.Open(fmt.Sprintf("file:%s?mode=memory&cache=shared", random.AlphaNumeric(20))), &gorm.Config{
		Logger: logger.Discard,
	})
	require.NoError(t, err)
	db, err := engine.DB()
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })
	return engine
}

// NewTestRepository マイグレーション済みのテスト用リポジトリを生成します
func NewTestRepository(t *testing.T) repository.Repository {
	t.Helper()
	repo, _, err := gormRepo.NewGormRepository(NewTestDB(t), zap.NewNop(), true)
	require.NoError(t, err)
	return repo
}

// MustMakeUser 指定したロールのユーザーを作成します
func MustMakeUser(t *testing.T, repo repository.UserRepository, name, role string) *model.User {
	t.Helper()
	if name == Random {
		name = random.AlphaNumeric(20)
	}
	u, err := repo.CreateUser(repository.CreateUserArgs{Name: name, Role: role})
	require.NoError(t, err)
	return u
}

// MustMakePost 投稿を作成します
func MustMakePost(t *testing.T, repo repository.ContentRepository, userID uuid.UUID, content string) *model.Post {
	t.Helper()
	p, err := repo.CreatePost(repository.CreatePostArgs{UserID: userID, Content: content})
	require.NoError(t, err)
	return p
}

// MustMakeComment コメントを作成します
func MustMakeComment(t *testing.T, repo repository.ContentRepository, postID, userID uuid.UUID, content string) *model.Comment {
	t.Helper()
	c, err := repo.CreateComment(repository.CreateCommentArgs{PostID: postID, UserID: userID, Content: content})
	require.NoError(t, err)
	return c
}

// MustMakeSharedPost 引用付きの共有投稿を作成します
func MustMakeSharedPost(t *testing.T, repo repository.ContentRepository, originalPostID, userID uuid.UUID, quote string) *model.SharedPost {
	t.Helper()
	s, err := repo.CreateSharedPost(repository.CreateSharedPostArgs{
		UserID:         userID,
		OriginalPostID: originalPostID,
		QuoteContent:   optional.From(quote),
	})
	require.NoError(t, err)
	return s
}

// MustMakeReport 状態pendingの通報を作成します
func MustMakeReport(t *testing.T, repo repository.ReportRepository, reporterID uuid.UUID, contentType model.ContentType, contentID uuid.UUID) *model.Report {
	t.Helper()
	r, err := repo.CreateReport(repository.CreateReportArgs{
		ReporterID:  reporterID,
		ContentType: contentType,
		ContentID:   contentID,
		Reason:      "spam",
	})
	require.NoError(t, err)
	return r
}

// MustSetReportStatus 通報の状態をpendingから強制的に変更します
func MustSetReportStatus(t *testing.T, repo repository.ReportRepository, reportID uuid.UUID, status model.ReportStatus) {
	t.Helper()
	require.NoError(t, repo.UpdateReportStatus(reportID, repository.UpdateReportStatusArgs{
		From: model.ReportStatusPending,
		To:   status,
	}))
}
