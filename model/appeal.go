package model

import (
	"time"

	"github.com/gofrs/uuid"

	"github.com/traPtitech/traQ-moderation/utils/optional"
)

// AppealStatus 異議申し立ての状態
type AppealStatus string

const (
	AppealStatusPending  AppealStatus = "pending"
	AppealStatusApproved AppealStatus = "approved"
	AppealStatusDenied   AppealStatus = "denied"
)

// Appeal 通報の処理結果に対する異議申し立て構造体
//
// 1つの通報に対して高々1つ
type Appeal struct {
	ID               uuid.UUID              `gorm:"type:char(36);not null;primaryKey"`
	OriginalReportID uuid.UUID              `gorm:"type:char(36);not null;uniqueIndex"`
	UserID           uuid.UUID              `gorm:"type:char(36);not null;index"`
	Text             string                 `gorm:"column:appeal_text;type:text;not null"`
	ImageFileName    optional.Of[string]    `gorm:"column:appeal_image_filename;type:varchar(255)"`
	Status           AppealStatus           `gorm:"type:varchar(30);not null;index:idx_appeals_status_created_at,priority:1"`
	ReviewedBy       optional.Of[uuid.UUID] `gorm:"type:char(36)"`
	ReviewedAt       optional.Of[time.Time] `gorm:"precision:6"`
	CreatedAt        time.Time              `gorm:"precision:6;index:idx_appeals_status_created_at,priority:2"`

	OriginalReport *Report `gorm:"constraint:original_report_appeals_reports_id_foreign,OnUpdate:CASCADE,OnDelete:CASCADE;foreignKey:OriginalReportID"`
}

// TableName Appeal構造体のテーブル名
func (*Appeal) TableName() string {
	return "appeals"
}
