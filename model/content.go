package model

import (
	"time"

	"github.com/gofrs/uuid"

	"github.com/traPtitech/traQ-moderation/utils/optional"
)

// Post 投稿構造体
type Post struct {
	ID        uuid.UUID `gorm:"type:char(36);not null;primaryKey"`
	UserID    uuid.UUID `gorm:"type:char(36);not null;index"`
	Content   string    `gorm:"type:text;not null"`
	IsVisible bool      `gorm:"not null;default:true"`
	CreatedAt time.Time `gorm:"precision:6"`
	UpdatedAt time.Time `gorm:"precision:6"`
}

// TableName Post構造体のテーブル名
func (*Post) TableName() string {
	return "posts"
}

// Comment 投稿へのコメント構造体
type Comment struct {
	ID        uuid.UUID `gorm:"type:char(36);not null;primaryKey"`
	PostID    uuid.UUID `gorm:"type:char(36);not null;index"`
	UserID    uuid.UUID `gorm:"type:char(36);not null;index"`
	Content   string    `gorm:"type:text;not null"`
	IsVisible bool      `gorm:"not null;default:true"`
	CreatedAt time.Time `gorm:"precision:6"`
}

// TableName Comment構造体のテーブル名
func (*Comment) TableName() string {
	return "comments"
}

// SharedPost 投稿の共有(引用)構造体
//
// 元投稿とは独立して存在するため、非表示化は引用文の置き換えで行う
type SharedPost struct {
	ID             uuid.UUID           `gorm:"type:char(36);not null;primaryKey"`
	UserID         uuid.UUID           `gorm:"type:char(36);not null;index"`
	OriginalPostID uuid.UUID           `gorm:"type:char(36);not null;index"`
	QuoteContent   optional.Of[string] `gorm:"type:text"`
	CreatedAt      time.Time           `gorm:"precision:6"`
}

// TableName SharedPost構造体のテーブル名
func (*SharedPost) TableName() string {
	return "shared_posts"
}
