package model

import (
	"time"

	"github.com/gofrs/uuid"

	"github.com/traPtitech/traQ-moderation/utils/optional"
)

// ContentType 通報対象コンテンツの種類
type ContentType string

const (
	ContentTypePost       ContentType = "post"
	ContentTypeComment    ContentType = "comment"
	ContentTypeSharedPost ContentType = "shared_post"
)

// Valid 有効なコンテンツ種類かどうか
func (t ContentType) Valid() bool {
	switch t {
	case ContentTypePost, ContentTypeComment, ContentTypeSharedPost:
		return true
	default:
		return false
	}
}

// ReportStatus 通報の状態
type ReportStatus string

const (
	ReportStatusPending              ReportStatus = "pending"
	ReportStatusDismissed            ReportStatus = "dismissed"
	ReportStatusActionTaken          ReportStatus = "action_taken"
	ReportStatusAppealed             ReportStatus = "appealed"
	ReportStatusErrorContentNotFound ReportStatus = "error_content_not_found"
)

// Report コンテンツ通報構造体
//
// ContentIDは外部キーではなく、ContentTypeに応じて参照先が変わる
type Report struct {
	ID          uuid.UUID              `gorm:"type:char(36);not null;primaryKey"`
	ReporterID  uuid.UUID              `gorm:"type:char(36);not null;index"`
	ContentType ContentType            `gorm:"type:varchar(20);not null"`
	ContentID   uuid.UUID              `gorm:"type:char(36);not null"`
	Reason      string                 `gorm:"type:text;not null"`
	Details     string                 `gorm:"type:text;not null"`
	Status      ReportStatus           `gorm:"type:varchar(30);not null;index:idx_reports_status_created_at,priority:1"`
	ReviewedBy  optional.Of[uuid.UUID] `gorm:"type:char(36)"`
	ReviewedAt  optional.Of[time.Time] `gorm:"precision:6"`
	CreatedAt   time.Time              `gorm:"precision:6;index:idx_reports_status_created_at,priority:2"`
}

// TableName Report構造体のテーブル名
func (*Report) TableName() string {
	return "reports"
}

// IsPending 未処理の通報かどうか
func (r *Report) IsPending() bool {
	return r.Status == ReportStatusPending
}
