//go:generate mockgen -source=$GOFILE -destination=mock_$GOPACKAGE/mock_$GOFILE

package audit

import (
	"github.com/gofrs/uuid"

	"github.com/traPtitech/traQ-moderation/model"
	"github.com/traPtitech/traQ-moderation/repository"
	"github.com/traPtitech/traQ-moderation/utils/optional"
)

// MaxRecent GetRecentで取得できる最大件数
const MaxRecent = 200

// Entry 監査ログとして記録する操作
type Entry struct {
	ActorID         uuid.UUID
	Action          model.ActionType
	TargetUserID    optional.Of[uuid.UUID]
	TargetContentID optional.Of[uuid.UUID]
	Details         string
}

// Trail 監査ログ
//
// 状態を変更する全てのモデレーション操作は、同じトランザクション内でRecordを呼ぶ。
// Recordが失敗した場合、呼び出し元はトランザクションを中断しなければならない。
type Trail interface {
	// Record 監査ログを追記します
	//
	// repoには呼び出し元のトランザクション内のリポジトリを渡します。
	Record(repo repository.ActionLogRepository, entry Entry) error
	// GetRecent 直近の監査ログを新しい順に取得します
	//
	// limitが0以下、もしくはMaxRecentを超える場合はMaxRecent件取得します。
	// coordinator以上でない場合、rbac.ErrPermissionDeniedを返します。
	GetRecent(actor model.Actor, limit int) ([]*model.ActionLog, error)
}
