package repository

import (
	"time"

	"github.com/gofrs/uuid"

	"github.com/traPtitech/traQ-moderation/model"
	"github.com/traPtitech/traQ-moderation/utils/optional"
)

// CreateUserArgs ユーザー作成引数
type CreateUserArgs struct {
	Name string
	Role string
}

// UpdateUserSanctionArgs ユーザー制裁状態更新引数
//
// 無効な値はNULLとして書き込まれる
type UpdateUserSanctionArgs struct {
	BannedUntil optional.Of[time.Time]
	MutedUntil  optional.Of[time.Time]
	BanReason   optional.Of[string]
}

// UserRepository ユーザーリポジトリ
type UserRepository interface {
	// CreateUser ユーザーを作成します
	//
	// 成功した場合、ユーザーとnilを返します。
	// 既に同名のユーザーが存在する場合、ErrAlreadyExistsを返します。
	// 引数に問題がある場合、ArgumentErrorを返します。
	// DBによるエラーを返すことがあります。
	CreateUser(args CreateUserArgs) (*model.User, error)
	// GetUser 指定したIDのユーザーを取得します
	//
	// 成功した場合、ユーザーとnilを返します。
	// 存在しなかった場合、ErrNotFoundを返します。
	// DBによるエラーを返すことがあります。
	GetUser(id uuid.UUID) (*model.User, error)
	// GetUserByName 指定した名前のユーザーを取得します
	//
	// 成功した場合、ユーザーとnilを返します。
	// 存在しなかった場合、ErrNotFoundを返します。
	// DBによるエラーを返すことがあります。
	GetUserByName(name string) (*model.User, error)
	// GetUsers 全ユーザーを作成日時の昇順で取得します
	//
	// 成功した場合、ユーザーの配列とnilを返します。
	// DBによるエラーを返すことがあります。
	GetUsers() ([]*model.User, error)
	// UpdateUserRole 指定したユーザーのロールを変更します
	//
	// 成功した場合、nilを返します。
	// 存在しないユーザーの場合、ErrNotFoundを返します。
	// 引数にuuid.Nilを指定した場合、ErrNilIDを返します。
	// DBによるエラーを返すことがあります。
	UpdateUserRole(id uuid.UUID, role string) error
	// UpdateUserSanction 指定したユーザーの制裁状態を上書きします
	//
	// 成功した場合、nilを返します。
	// 存在しないユーザーの場合、ErrNotFoundを返します。
	// 引数にuuid.Nilを指定した場合、ErrNilIDを返します。
	// DBによるエラーを返すことがあります。
	UpdateUserSanction(id uuid.UUID, args UpdateUserSanctionArgs) error
}
