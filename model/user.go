package model

import (
	"time"

	"github.com/gofrs/uuid"

	"github.com/traPtitech/traQ-moderation/utils/optional"
)

// PermanentBanUntil 永久BANを表すbanned_untilの番兵値
var PermanentBanUntil = time.Date(9999, 12, 31, 0, 0, 0, 0, time.UTC)

// User ユーザー構造体
//
// BannedUntil, MutedUntilは期限切れでもクリアされない。判定は常に現在時刻と比較して行う
type User struct {
	ID          uuid.UUID              `gorm:"type:char(36);not null;primaryKey"`
	Name        string                 `gorm:"type:varchar(32);not null;uniqueIndex"`
	Role        string                 `gorm:"type:varchar(30);not null"`
	BannedUntil optional.Of[time.Time] `gorm:"precision:6"`
	MutedUntil  optional.Of[time.Time] `gorm:"precision:6"`
	BanReason   optional.Of[string]    `gorm:"type:text"`
	CreatedAt   time.Time              `gorm:"precision:6"`
	UpdatedAt   time.Time              `gorm:"precision:6"`
}

// TableName User構造体のテーブル名
func (*User) TableName() string {
	return "users"
}

// Actor ユーザーを操作主体として返します
func (u *User) Actor() Actor {
	return Actor{ID: u.ID, Role: u.Role}
}

// IsPermanentlyBanned 永久BANされているかどうか
func (u *User) IsPermanentlyBanned() bool {
	return u.BannedUntil.Valid && !u.BannedUntil.V.Before(PermanentBanUntil)
}

// Actor 操作を行うユーザー
//
// 各操作はセッションなどの暗黙の状態を参照せず、この値を明示的に受け取る
type Actor struct {
	ID   uuid.UUID
	Role string
}
