package model

import (
	"time"

	"github.com/gofrs/uuid"

	"github.com/traPtitech/traQ-moderation/utils/optional"
)

// ActionType 監査ログの操作種別
type ActionType string

const (
	ActionRoleChange       ActionType = "ROLE_CHANGE"
	ActionUserSanction     ActionType = "USER_SANCTION"
	ActionReportResolve    ActionType = "REPORT_RESOLVE"
	ActionAppealResolve    ActionType = "APPEAL_RESOLVE"
	ActionPostHideByMod    ActionType = "POST_HIDE_BY_MOD"
	ActionCommentHideByMod ActionType = "COMMENT_HIDE_BY_MOD"
	ActionPostEditByMod    ActionType = "POST_EDIT_BY_MOD"
)

// ActionLog 監査ログ構造体
//
// 追記専用。更新・削除は行わない
type ActionLog struct {
	ID              uuid.UUID              `gorm:"type:char(36);not null;primaryKey"`
	Timestamp       time.Time              `gorm:"precision:6;not null;index"`
	ActorID         uuid.UUID              `gorm:"type:char(36);not null;index"`
	ActionType      ActionType             `gorm:"type:varchar(50);not null"`
	TargetUserID    optional.Of[uuid.UUID] `gorm:"type:char(36);index"`
	TargetContentID optional.Of[uuid.UUID] `gorm:"type:char(36)"`
	Details         string                 `gorm:"type:text;not null"`
}

// TableName ActionLog構造体のテーブル名
func (*ActionLog) TableName() string {
	return "action_logs"
}
