package repository

import (
	"time"

	"github.com/gofrs/uuid"

	"github.com/traPtitech/traQ-moderation/model"
	"github.com/traPtitech/traQ-moderation/utils/optional"
)

// CreateAppealArgs 異議申し立て作成引数
type CreateAppealArgs struct {
	ReportID      uuid.UUID
	UserID        uuid.UUID
	Text          string
	ImageFileName optional.Of[string]
}

// AppealsQuery 異議申し立て取得クエリ
type AppealsQuery struct {
	Status optional.Of[model.AppealStatus]
	Limit  int
	Offset int
}

// UpdateAppealStatusArgs 異議申し立て状態の条件付き更新引数
type UpdateAppealStatusArgs struct {
	From       model.AppealStatus
	To         model.AppealStatus
	ReviewerID uuid.UUID
	ReviewedAt time.Time
}

// AppealRepository 異議申し立てリポジトリ
type AppealRepository interface {
	// CreateAppeal 状態pendingの異議申し立てを作成します
	//
	// 成功した場合、異議申し立てとnilを返します。
	// 既に同じ通報に対する異議申し立てが存在する場合、ErrAlreadyExistsを返します。
	// 引数にuuid.Nilを指定した場合、ErrNilIDを返します。
	// DBによるエラーを返すことがあります。
	CreateAppeal(args CreateAppealArgs) (*model.Appeal, error)
	// GetAppeal 指定したIDの異議申し立てを取得します
	//
	// 成功した場合、異議申し立てとnilを返します。
	// 存在しなかった場合、ErrNotFoundを返します。
	// DBによるエラーを返すことがあります。
	GetAppeal(id uuid.UUID) (*model.Appeal, error)
	// GetAppealByReportID 指定した通報に対する異議申し立てを取得します
	//
	// 成功した場合、異議申し立てとnilを返します。
	// 存在しなかった場合、ErrNotFoundを返します。
	// DBによるエラーを返すことがあります。
	GetAppealByReportID(reportID uuid.UUID) (*model.Appeal, error)
	// GetAppeals 異議申し立てを作成日時の昇順で取得します
	//
	// 成功した場合、異議申し立ての配列とnilを返します。
	// DBによるエラーを返すことがあります。
	GetAppeals(query AppealsQuery) ([]*model.Appeal, error)
	// CountAppeals 指定した状態の異議申し立て数を返します
	//
	// DBによるエラーを返すことがあります。
	CountAppeals(status model.AppealStatus) (int64, error)
	// UpdateAppealStatus 異議申し立ての状態がFromである場合に限りToへ更新します
	//
	// 成功した場合、nilを返します。
	// 存在しない、もしくは状態がFromでない場合、ErrPreconditionFailedを返します。
	// 引数にuuid.Nilを指定した場合、ErrNilIDを返します。
	// DBによるエラーを返すことがあります。
	UpdateAppealStatus(id uuid.UUID, args UpdateAppealStatusArgs) error
}
