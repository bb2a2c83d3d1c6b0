package appeal

import (
	"errors"
	"io"

	"github.com/gofrs/uuid"

	"github.com/traPtitech/traQ-moderation/model"
)

var (
	// ErrInvalidArgument 異議申し立ての内容が不正です
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrNotFound 異議申し立て、もしくは対象の通報が存在しません
	ErrNotFound = errors.New("not found")
	// ErrAlreadyAppealed 通報に対して既に異議申し立てが行われています
	ErrAlreadyAppealed = errors.New("report already appealed")
	// ErrNotEligible 異議申し立てを行う資格がありません
	ErrNotEligible = errors.New("not eligible to appeal")
	// ErrUnsupportedImage 添付画像の形式に対応していません
	ErrUnsupportedImage = errors.New("unsupported image type")
	// ErrImageTooLarge 添付画像が大きすぎます
	ErrImageTooLarge = errors.New("too large image file")
	// ErrImageNotFound 添付画像が存在しません
	ErrImageNotFound = errors.New("image not found")
	// ErrAlreadyResolved 異議申し立ては既に処理されています
	ErrAlreadyResolved = errors.New("appeal already resolved")
	// ErrInvalidAction 不正な処理の種類です
	ErrInvalidAction = errors.New("invalid action")
)

// Action 異議申し立ての処理内容
type Action string

const (
	// ActionApprove 承認
	ActionApprove Action = "approve"
	// ActionDeny 却下
	ActionDeny Action = "deny"
)

// Image 添付画像
type Image struct {
	// FileName 元のファイル名
	//
	// 形式は内容から判定します
	FileName string
	Src      io.Reader
}

// FileArgs 異議申し立て引数
type FileArgs struct {
	ReportID uuid.UUID
	Text     string
	Image    *Image
}

// ResolveArgs 異議申し立て処理引数
type ResolveArgs struct {
	Action        Action
	ReasonKey     string
	CustomMessage string
}

// Manager 異議申し立てマネージャー
type Manager interface {
	// FileAppeal 通報の処理結果に異議を申し立てます
	//
	// 申し立てできるのは、却下された通報の通報者と、措置が取られたコンテンツの作成者です。
	// 既に申し立て済みの場合、ErrAlreadyAppealedを返します。
	// 通報が存在しない場合、ErrNotFoundを返します。
	// 資格がない場合、ErrNotEligibleを返します。
	FileAppeal(actor model.Actor, args FileArgs) (*model.Appeal, error)
	// GetPendingAppeals 未処理の異議申し立てを古い順に取得します
	//
	// coordinator以上でない場合、rbac.ErrPermissionDeniedを返します。
	GetPendingAppeals(actor model.Actor) ([]*model.Appeal, error)
	// ResolveAppeal 異議申し立てを処理します
	//
	// 理由が不正な場合、ストレージに触れる前にreason.ErrInvalidReasonを返します。
	// 存在しない場合、ErrNotFoundを返します。
	// 既に処理されている場合、ErrAlreadyResolvedを返します。
	ResolveAppeal(actor model.Actor, appealID uuid.UUID, args ResolveArgs) error
	// OpenImage 異議申し立ての添付画像を開きます
	//
	// coordinator以上か申立人本人のみ開けます。
	// 成功した場合、画像とそのMIMEタイプを返します。呼び出し元は画像を閉じる必要があります。
	OpenImage(actor model.Actor, appealID uuid.UUID) (io.ReadCloser, string, error)
}
