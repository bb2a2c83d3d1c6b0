package repository

import (
	"github.com/gofrs/uuid"

	"github.com/traPtitech/traQ-moderation/model"
	"github.com/traPtitech/traQ-moderation/utils/optional"
)

// CreateActionLogArgs 監査ログ作成引数
type CreateActionLogArgs struct {
	ActorID         uuid.UUID
	ActionType      model.ActionType
	TargetUserID    optional.Of[uuid.UUID]
	TargetContentID optional.Of[uuid.UUID]
	Details         string
}

// ActionLogsQuery 監査ログ取得クエリ
type ActionLogsQuery struct {
	ActorID      optional.Of[uuid.UUID]
	TargetUserID optional.Of[uuid.UUID]
	ActionType   optional.Of[model.ActionType]
	Limit        int
}

// ActionLogRepository 監査ログリポジトリ
//
// 追記と参照のみを提供する
type ActionLogRepository interface {
	// CreateActionLog 監査ログを追記します
	//
	// 成功した場合、監査ログとnilを返します。
	// ActorIDにuuid.Nilを指定した場合、ErrNilIDを返します。
	// DBによるエラーを返すことがあります。
	CreateActionLog(args CreateActionLogArgs) (*model.ActionLog, error)
	// GetActionLogs 監査ログを新しい順に取得します
	//
	// 成功した場合、監査ログの配列とnilを返します。
	// DBによるエラーを返すことがあります。
	GetActionLogs(query ActionLogsQuery) ([]*model.ActionLog, error)
}
