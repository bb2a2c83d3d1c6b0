package content

import (
	"errors"
	"fmt"

	"github.com/gofrs/uuid"

	"github.com/traPtitech/traQ-moderation/model"
	"github.com/traPtitech/traQ-moderation/repository"
)

var (
	// ErrContentNotFound 指定したコンテンツが存在しません
	ErrContentNotFound = errors.New("content not found")
	// ErrUnknownContentType 未知のコンテンツ種類です
	ErrUnknownContentType = errors.New("unknown content type")
)

// RedactionMarker 共有投稿の引用文を置き換える文字列
const RedactionMarker = "[content removed by moderation]"

// SnippetLength 監査ログに残すコンテンツ抜粋の最大文字数
const SnippetLength = 100

// Visibility コンテンツの可視性を操作するコラボレーター
//
// 全てのメソッドは呼び出し元のトランザクション内で操作するリポジトリを受け取る
type Visibility interface {
	// SetVisible コンテンツの可視性を変更します
	//
	// 投稿とコメントは表示フラグを切り替えます。
	// 共有投稿は非表示化時に引用文をRedactionMarkerで置き換え、再表示は何もしません。
	// 存在しない場合、ErrContentNotFoundを返します。
	SetVisible(repo repository.ContentRepository, contentType model.ContentType, id uuid.UUID, visible bool) error
	// ResolveAuthor コンテンツの作成者IDを返します
	//
	// 存在しない場合、ErrContentNotFoundを返します。
	ResolveAuthor(repo repository.ContentRepository, contentType model.ContentType, id uuid.UUID) (uuid.UUID, error)
	// Snippet コンテンツ本文の先頭SnippetLength文字を返します
	//
	// 存在しない場合、ErrContentNotFoundを返します。
	Snippet(repo repository.ContentRepository, contentType model.ContentType, id uuid.UUID) (string, error)
}

type visibility struct{}

// NewVisibility Visibilityを生成します
func NewVisibility() Visibility {
	return &visibility{}
}

func (v *visibility) SetVisible(repo repository.ContentRepository, contentType model.ContentType, id uuid.UUID, visible bool) error {
	var err error
	switch contentType {
	case model.ContentTypePost:
		err = repo.UpdatePostVisibility(id, visible)
	case model.ContentTypeComment:
		err = repo.UpdateCommentVisibility(id, visible)
	case model.ContentTypeSharedPost:
		if visible {
			// 元の引用文は残っていないため戻せない
			_, err = repo.GetSharedPost(id)
		} else {
			err = repo.UpdateSharedPostQuote(id, RedactionMarker)
		}
	default:
		return ErrUnknownContentType
	}
	return convertError(err)
}

func (v *visibility) ResolveAuthor(repo repository.ContentRepository, contentType model.ContentType, id uuid.UUID) (uuid.UUID, error) {
	switch contentType {
	case model.ContentTypePost:
		p, err := repo.GetPost(id)
		if err != nil {
			return uuid.Nil, convertError(err)
		}
		return p.UserID, nil
	case model.ContentTypeComment:
		c, err := repo.GetComment(id)
		if err != nil {
			return uuid.Nil, convertError(err)
		}
		return c.UserID, nil
	case model.ContentTypeSharedPost:
		s, err := repo.GetSharedPost(id)
		if err != nil {
			return uuid.Nil, convertError(err)
		}
		return s.UserID, nil
	default:
		return uuid.Nil, ErrUnknownContentType
	}
}

func (v *visibility) Snippet(repo repository.ContentRepository, contentType model.ContentType, id uuid.UUID) (string, error) {
	var text string
	switch contentType {
	case model.ContentTypePost:
		p, err := repo.GetPost(id)
		if err != nil {
			return "", convertError(err)
		}
		text = p.Content
	case model.ContentTypeComment:
		c, err := repo.GetComment(id)
		if err != nil {
			return "", convertError(err)
		}
		text = c.Content
	case model.ContentTypeSharedPost:
		s, err := repo.GetSharedPost(id)
		if err != nil {
			return "", convertError(err)
		}
		text = s.QuoteContent.ValueOrZero()
	default:
		return "", ErrUnknownContentType
	}
	return Excerpt(text, SnippetLength), nil
}

// Excerpt sの先頭n文字を返します。切り詰めた場合は末尾に"..."を付けます
func Excerpt(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n]) + "..."
}

func convertError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, repository.ErrNotFound), errors.Is(err, repository.ErrNilID):
		return ErrContentNotFound
	default:
		return fmt.Errorf("failed to access content: %w", err)
	}
}
