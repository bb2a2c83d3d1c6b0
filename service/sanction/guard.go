package sanction

import (
	"errors"
	"fmt"
	"time"

	"github.com/traPtitech/traQ-moderation/model"
	"github.com/traPtitech/traQ-moderation/service/notification"
	"github.com/traPtitech/traQ-moderation/utils/optional"
)

// ErrSanctionBlocked 制裁中のため操作できません
var ErrSanctionBlocked = errors.New("blocked by sanction")

// BlockReason 制裁による制限の理由
type BlockReason string

const (
	// ReasonNone 制限なし
	ReasonNone BlockReason = "none"
	// ReasonBanned BAN中
	ReasonBanned BlockReason = "banned"
	// ReasonMuted ミュート中
	ReasonMuted BlockReason = "muted"
)

// Action Guardで判定する操作の分類
type Action int

const (
	// ActionRead 閲覧
	ActionRead Action = iota
	// ActionReport 通報
	ActionReport
	// ActionAppeal 異議申し立て
	ActionAppeal
	// ActionProduce 投稿・コメント・リアクション・メッセージ・共有などのコンテンツ作成
	ActionProduce
	// ActionModerate モデレーション操作
	ActionModerate
)

// Status ユーザーの制裁状態
type Status struct {
	Blocked bool
	Reason  BlockReason
	Message string
	// Until 制限の期限。制限がない場合は無効
	Until optional.Of[time.Time]
}

// Allows 指定した操作が許可されているかどうか
//
// BAN中は全ての操作を、ミュート中はコンテンツ作成のみを禁止する。
func (s Status) Allows(action Action) bool {
	switch s.Reason {
	case ReasonBanned:
		return false
	case ReasonMuted:
		return action != ActionProduce
	default:
		return true
	}
}

// BlockedError 制裁により操作が拒否されたエラー
type BlockedError struct {
	Status Status
}

// Error implements error interface.
func (e *BlockedError) Error() string {
	return e.Status.Message
}

// Is ErrSanctionBlockedとして扱えるようにします
func (e *BlockedError) Is(target error) bool {
	return target == ErrSanctionBlocked
}

// Guard 制裁状態の判定
//
// 期限切れの制裁はストレージから消さず、判定の度に現在時刻と比較する。
type Guard interface {
	// Check nowにおけるユーザーの制裁状態を返します
	Check(user *model.User, now time.Time) Status
	// Enforce nowにおいてユーザーが操作を行えない場合、*BlockedErrorを返します
	Enforce(user *model.User, action Action, now time.Time) error
}

type guard struct{}

// NewGuard Guardを生成します
func NewGuard() Guard {
	return &guard{}
}

func (g *guard) Check(user *model.User, now time.Time) Status {
	now = now.UTC()
	if user.BannedUntil.Valid && user.BannedUntil.V.After(now) {
		var msg string
		if user.IsPermanentlyBanned() {
			msg = "Your account has been permanently suspended."
		} else {
			msg = fmt.Sprintf("Your account is suspended until %s.", notification.FormatExpiry(user.BannedUntil.V))
		}
		if user.BanReason.Valid {
			msg += fmt.Sprintf(` Reason: "%s"`, user.BanReason.V)
		}
		return Status{
			Blocked: true,
			Reason:  ReasonBanned,
			Message: msg,
			Until:   user.BannedUntil,
		}
	}
	if user.MutedUntil.Valid && user.MutedUntil.V.After(now) {
		return Status{
			Blocked: true,
			Reason:  ReasonMuted,
			Message: fmt.Sprintf("Your account is muted until %s. You cannot create content during this period.", notification.FormatExpiry(user.MutedUntil.V)),
			Until:   user.MutedUntil,
		}
	}
	return Status{Reason: ReasonNone}
}

func (g *guard) Enforce(user *model.User, action Action, now time.Time) error {
	st := g.Check(user, now)
	if st.Allows(action) {
		return nil
	}
	return &BlockedError{Status: st}
}
