package gorm

import (
	"github.com/gofrs/uuid"
	"gorm.io/gorm"

	"github.com/traPtitech/traQ-moderation/model"
	"github.com/traPtitech/traQ-moderation/repository"
	"github.com/traPtitech/traQ-moderation/utils/optional"
)

// CreatePost implements ContentRepository interface.
func (repo *Repository) CreatePost(args repository.CreatePostArgs) (*model.Post, error) {
	if args.UserID == uuid.Nil {
		return nil, repository.ErrNilID
	}
	p := &model.Post{
		ID:        uuid.Must(uuid.NewV7()),
		UserID:    args.UserID,
		Content:   args.Content,
		IsVisible: true,
	}
	if err := repo.db.Create(p).Error; err != nil {
		return nil, err
	}
	return p, nil
}

// CreateComment implements ContentRepository interface.
func (repo *Repository) CreateComment(args repository.CreateCommentArgs) (*model.Comment, error) {
	if args.UserID == uuid.Nil || args.PostID == uuid.Nil {
		return nil, repository.ErrNilID
	}
	c := &model.Comment{
		ID:        uuid.Must(uuid.NewV7()),
		PostID:    args.PostID,
		UserID:    args.UserID,
		Content:   args.Content,
		IsVisible: true,
	}
	if err := repo.db.Create(c).Error; err != nil {
		return nil, err
	}
	return c, nil
}

// CreateSharedPost implements ContentRepository interface.
func (repo *Repository) CreateSharedPost(args repository.CreateSharedPostArgs) (*model.SharedPost, error) {
	if args.UserID == uuid.Nil || args.OriginalPostID == uuid.Nil {
		return nil, repository.ErrNilID
	}
	s := &model.SharedPost{
		ID:             uuid.Must(uuid.NewV7()),
		UserID:         args.UserID,
		OriginalPostID: args.OriginalPostID,
		QuoteContent:   args.QuoteContent,
	}
	if err := repo.db.Create(s).Error; err != nil {
		return nil, err
	}
	return s, nil
}

// GetPost implements ContentRepository interface.
func (repo *Repository) GetPost(id uuid.UUID) (*model.Post, error) {
	if id == uuid.Nil {
		return nil, repository.ErrNotFound
	}
	var p model.Post
	if err := repo.db.First(&p, &model.Post{ID: id}).Error; err != nil {
		return nil, convertError(err)
	}
	return &p, nil
}

// GetComment implements ContentRepository interface.
func (repo *Repository) GetComment(id uuid.UUID) (*model.Comment, error) {
	if id == uuid.Nil {
		return nil, repository.ErrNotFound
	}
	var c model.Comment
	if err := repo.db.First(&c, &model.Comment{ID: id}).Error; err != nil {
		return nil, convertError(err)
	}
	return &c, nil
}

// GetSharedPost implements ContentRepository interface.
func (repo *Repository) GetSharedPost(id uuid.UUID) (*model.SharedPost, error) {
	if id == uuid.Nil {
		return nil, repository.ErrNotFound
	}
	var s model.SharedPost
	if err := repo.db.First(&s, &model.SharedPost{ID: id}).Error; err != nil {
		return nil, convertError(err)
	}
	return &s, nil
}

// UpdatePostVisibility implements ContentRepository interface.
func (repo *Repository) UpdatePostVisibility(id uuid.UUID, visible bool) error {
	if id == uuid.Nil {
		return repository.ErrNilID
	}
	return updateExisting(repo.db, &model.Post{ID: id}, map[string]interface{}{"is_visible": visible})
}

// UpdateCommentVisibility implements ContentRepository interface.
func (repo *Repository) UpdateCommentVisibility(id uuid.UUID, visible bool) error {
	if id == uuid.Nil {
		return repository.ErrNilID
	}
	return updateExisting(repo.db, &model.Comment{ID: id}, map[string]interface{}{"is_visible": visible})
}

// UpdatePostContent implements ContentRepository interface.
func (repo *Repository) UpdatePostContent(id uuid.UUID, content string) error {
	if id == uuid.Nil {
		return repository.ErrNilID
	}
	return updateExisting(repo.db, &model.Post{ID: id}, map[string]interface{}{"content": content})
}

// UpdateSharedPostQuote implements ContentRepository interface.
func (repo *Repository) UpdateSharedPostQuote(id uuid.UUID, quote string) error {
	if id == uuid.Nil {
		return repository.ErrNilID
	}
	return updateExisting(repo.db, &model.SharedPost{ID: id}, map[string]interface{}{"quote_content": optional.From(quote)})
}

// updateExisting 主キーで指定したレコードを更新します
//
// 値が変化しない更新でもRowsAffectedが0になるDBがあるため、存在確認を先に行う
func updateExisting(db *gorm.DB, m interface{}, changes map[string]interface{}) error {
	return db.Transaction(func(tx *gorm.DB) error {
		var n int64
		if err := tx.Model(m).Where(m).Count(&n).Error; err != nil {
			return err
		}
		if n == 0 {
			return repository.ErrNotFound
		}
		return tx.Model(m).Updates(changes).Error
	})
}
