package report

import (
	"errors"

	"github.com/gofrs/uuid"

	"github.com/traPtitech/traQ-moderation/model"
	"github.com/traPtitech/traQ-moderation/service/content"
)

var (
	// ErrInvalidArgument 通報の内容が不正です
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrNotFound 通報が存在しません
	ErrNotFound = errors.New("report not found")
	// ErrAlreadyResolved 通報は既に処理されています
	ErrAlreadyResolved = errors.New("report already resolved")
	// ErrInvalidAction 不正な処理の種類です
	ErrInvalidAction = errors.New("invalid action")
	// ErrContentNotFound 通報対象のコンテンツが存在しません
	//
	// 通報はerror_content_not_foundとして処理済みになります。
	ErrContentNotFound = content.ErrContentNotFound
)

// Action 通報の処理内容
type Action string

const (
	// ActionDismiss 却下
	ActionDismiss Action = "dismiss"
	// ActionUphold 承認(措置実施)
	ActionUphold Action = "uphold"
)

// FileArgs 通報引数
type FileArgs struct {
	ContentType model.ContentType
	ContentID   uuid.UUID
	Reason      string
	Details     string
}

// ResolveArgs 通報処理引数
type ResolveArgs struct {
	Action Action
	// ReasonKey 定義済みの理由キー、もしくはreason.Custom
	ReasonKey string
	// CustomMessage ReasonKeyがreason.Customの場合の理由文
	CustomMessage string
	// HideContent 承認時に対象コンテンツを非表示にするかどうか
	HideContent bool
}

// Manager 通報マネージャー
type Manager interface {
	// FileReport 通報を行います
	//
	// 成功した場合、状態pendingの通報とnilを返します。
	// 引数が不正な場合、ErrInvalidArgumentを返します。
	FileReport(actor model.Actor, args FileArgs) (*model.Report, error)
	// GetPendingReports 未処理の通報を古い順に取得します
	//
	// moderator以上でない場合、rbac.ErrPermissionDeniedを返します。
	GetPendingReports(actor model.Actor) ([]*model.Report, error)
	// GetReport 通報を取得します
	//
	// moderator以上でない場合、rbac.ErrPermissionDeniedを返します。
	// 存在しない場合、ErrNotFoundを返します。
	GetReport(actor model.Actor, reportID uuid.UUID) (*model.Report, error)
	// ResolveReport 通報を処理します
	//
	// 理由が不正な場合、ストレージに触れる前にreason.ErrInvalidReasonを返します。
	// 存在しない場合、ErrNotFoundを返します。
	// 既に処理されている場合、ErrAlreadyResolvedを返します。
	// 対象コンテンツが存在しない場合、通報をerror_content_not_foundとして確定させた上でErrContentNotFoundを返します。
	ResolveReport(actor model.Actor, reportID uuid.UUID, args ResolveArgs) error
}
