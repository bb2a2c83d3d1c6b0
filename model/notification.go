package model

import (
	"time"

	"github.com/gofrs/uuid"

	"github.com/traPtitech/traQ-moderation/utils/optional"
)

const (
	NotificationTypeSanction       = "sanction"
	NotificationTypeReportResolved = "report_resolved"
	NotificationTypeContentRemoved = "content_removed"
	NotificationTypeAppealResolved = "appeal_resolved"
)

// Notification ユーザー向け通知構造体
//
// MessageはHTMLを含む
type Notification struct {
	ID          uuid.UUID              `gorm:"type:char(36);not null;primaryKey"`
	UserID      uuid.UUID              `gorm:"type:char(36);not null;index:idx_notifications_user_id_created_at,priority:1"`
	Message     string                 `gorm:"type:text;not null"`
	Type        string                 `gorm:"type:varchar(50);not null"`
	ReferenceID optional.Of[uuid.UUID] `gorm:"type:char(36)"`
	IsRead      bool                   `gorm:"not null;default:false"`
	CreatedAt   time.Time              `gorm:"precision:6;index:idx_notifications_user_id_created_at,priority:2"`
}

// TableName Notification構造体のテーブル名
func (*Notification) TableName() string {
	return "notifications"
}
