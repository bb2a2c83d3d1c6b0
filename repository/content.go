package repository

import (
	"github.com/gofrs/uuid"

	"github.com/traPtitech/traQ-moderation/model"
	"github.com/traPtitech/traQ-moderation/utils/optional"
)

// CreatePostArgs 投稿作成引数
type CreatePostArgs struct {
	UserID  uuid.UUID
	Content string
}

// CreateCommentArgs コメント作成引数
type CreateCommentArgs struct {
	PostID  uuid.UUID
	UserID  uuid.UUID
	Content string
}

// CreateSharedPostArgs 共有投稿作成引数
type CreateSharedPostArgs struct {
	UserID         uuid.UUID
	OriginalPostID uuid.UUID
	QuoteContent   optional.Of[string]
}

// ContentRepository 投稿・コメント・共有投稿リポジトリ
//
// モデレーションで必要な可視性と本文の操作のみを扱う
type ContentRepository interface {
	// CreatePost 投稿を作成します
	//
	// 成功した場合、投稿とnilを返します。
	// 引数にuuid.Nilを指定した場合、ErrNilIDを返します。
	// DBによるエラーを返すことがあります。
	CreatePost(args CreatePostArgs) (*model.Post, error)
	// CreateComment コメントを作成します
	//
	// 成功した場合、コメントとnilを返します。
	// 引数にuuid.Nilを指定した場合、ErrNilIDを返します。
	// DBによるエラーを返すことがあります。
	CreateComment(args CreateCommentArgs) (*model.Comment, error)
	// CreateSharedPost 共有投稿を作成します
	//
	// 成功した場合、共有投稿とnilを返します。
	// 引数にuuid.Nilを指定した場合、ErrNilIDを返します。
	// DBによるエラーを返すことがあります。
	CreateSharedPost(args CreateSharedPostArgs) (*model.SharedPost, error)
	// GetPost 指定したIDの投稿を取得します
	//
	// 非表示の投稿も取得します。
	// 存在しなかった場合、ErrNotFoundを返します。
	// DBによるエラーを返すことがあります。
	GetPost(id uuid.UUID) (*model.Post, error)
	// GetComment 指定したIDのコメントを取得します
	//
	// 非表示のコメントも取得します。
	// 存在しなかった場合、ErrNotFoundを返します。
	// DBによるエラーを返すことがあります。
	GetComment(id uuid.UUID) (*model.Comment, error)
	// GetSharedPost 指定したIDの共有投稿を取得します
	//
	// 存在しなかった場合、ErrNotFoundを返します。
	// DBによるエラーを返すことがあります。
	GetSharedPost(id uuid.UUID) (*model.SharedPost, error)
	// UpdatePostVisibility 投稿の可視性を変更します
	//
	// 存在しなかった場合、ErrNotFoundを返します。
	// 引数にuuid.Nilを指定した場合、ErrNilIDを返します。
	// DBによるエラーを返すことがあります。
	UpdatePostVisibility(id uuid.UUID, visible bool) error
	// UpdateCommentVisibility コメントの可視性を変更します
	//
	// 存在しなかった場合、ErrNotFoundを返します。
	// 引数にuuid.Nilを指定した場合、ErrNilIDを返します。
	// DBによるエラーを返すことがあります。
	UpdateCommentVisibility(id uuid.UUID, visible bool) error
	// UpdatePostContent 投稿の本文を変更します
	//
	// 存在しなかった場合、ErrNotFoundを返します。
	// 引数にuuid.Nilを指定した場合、ErrNilIDを返します。
	// DBによるエラーを返すことがあります。
	UpdatePostContent(id uuid.UUID, content string) error
	// UpdateSharedPostQuote 共有投稿の引用文を置き換えます
	//
	// 存在しなかった場合、ErrNotFoundを返します。
	// 引数にuuid.Nilを指定した場合、ErrNilIDを返します。
	// DBによるエラーを返すことがあります。
	UpdateSharedPostQuote(id uuid.UUID, quote string) error
}
