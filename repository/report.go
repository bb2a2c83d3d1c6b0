package repository

import (
	"time"

	"github.com/gofrs/uuid"

	"github.com/traPtitech/traQ-moderation/model"
	"github.com/traPtitech/traQ-moderation/utils/optional"
)

// CreateReportArgs 通報作成引数
type CreateReportArgs struct {
	ReporterID  uuid.UUID
	ContentType model.ContentType
	ContentID   uuid.UUID
	Reason      string
	Details     string
}

// ReportsQuery 通報取得クエリ
type ReportsQuery struct {
	Status optional.Of[model.ReportStatus]
	Limit  int
	Offset int
}

// UpdateReportStatusArgs 通報状態の条件付き更新引数
type UpdateReportStatusArgs struct {
	// From 更新前に期待する状態
	From model.ReportStatus
	// To 更新後の状態
	To model.ReportStatus
	// ReviewerID 処理者。無効な場合は処理者情報を変更しない
	ReviewerID optional.Of[uuid.UUID]
	ReviewedAt time.Time
}

// ReportRepository 通報リポジトリ
type ReportRepository interface {
	// CreateReport 状態pendingの通報を作成します
	//
	// 成功した場合、通報とnilを返します。
	// 引数にuuid.Nilを指定した場合、ErrNilIDを返します。
	// DBによるエラーを返すことがあります。
	CreateReport(args CreateReportArgs) (*model.Report, error)
	// GetReport 指定したIDの通報を取得します
	//
	// 成功した場合、通報とnilを返します。
	// 存在しなかった場合、ErrNotFoundを返します。
	// DBによるエラーを返すことがあります。
	GetReport(id uuid.UUID) (*model.Report, error)
	// GetReports 通報を作成日時の昇順で取得します
	//
	// 成功した場合、通報の配列とnilを返します。
	// DBによるエラーを返すことがあります。
	GetReports(query ReportsQuery) ([]*model.Report, error)
	// CountReports 指定した状態の通報数を返します
	//
	// DBによるエラーを返すことがあります。
	CountReports(status model.ReportStatus) (int64, error)
	// UpdateReportStatus 通報の状態がFromである場合に限りToへ更新します
	//
	// 成功した場合、nilを返します。
	// 通報が存在しない、もしくは状態がFromでない場合、ErrPreconditionFailedを返します。
	// 引数にuuid.Nilを指定した場合、ErrNilIDを返します。
	// DBによるエラーを返すことがあります。
	UpdateReportStatus(id uuid.UUID, args UpdateReportStatusArgs) error
}
