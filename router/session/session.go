package session

import (
	"fmt"
	"net/http"

	"github.com/gofrs/uuid"
	"github.com/gorilla/sessions"
	"github.com/labstack/echo/v4"
)

const (
	// CookieName セッションクッキー名
	CookieName = "r_session"
	// DefaultMaxAge セッションの既定の有効期間(秒)
	DefaultMaxAge = 60 * 60 * 24 * 14 // 2 weeks

	keyUserID = "userId"
)

// Store セッションストア
type Store interface {
	// GetUserID リクエストのセッションに紐づくユーザーIDを返します
	//
	// 未ログイン、もしくはセッションが不正な場合はuuid.Nilを返します。
	GetUserID(c echo.Context) (uuid.UUID, error)
	// IssueSession 指定したユーザーとしてログインしたセッションを発行します
	IssueSession(c echo.Context, userID uuid.UUID) error
	// RevokeSession リクエストのセッションを破棄します
	RevokeSession(c echo.Context) error
}

// Config セッション設定
type Config struct {
	// Secret クッキーの署名鍵
	Secret []byte
	// MaxAge セッションの有効期間(秒)
	MaxAge int
	// Secure HTTPS接続のみでクッキーを送信するかどうか
	Secure bool
}

type cookieStore struct {
	store *sessions.CookieStore
}

// NewCookieStore gorilla/sessionsによる署名付きクッキーのセッションストアを生成します
func NewCookieStore(config Config) Store {
	maxAge := config.MaxAge
	if maxAge <= 0 {
		maxAge = DefaultMaxAge
	}
	s := sessions.NewCookieStore(config.Secret)
	s.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   maxAge,
		Secure:   config.Secure,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
	s.MaxAge(maxAge)
	return &cookieStore{store: s}
}

func (s *cookieStore) get(c echo.Context) *sessions.Session {
	// 署名が不正なクッキーの場合もエラーと共に新しいセッションが返る
	sess, _ := s.store.Get(c.Request(), CookieName)
	return sess
}

func (s *cookieStore) GetUserID(c echo.Context) (uuid.UUID, error) {
	sess := s.get(c)
	v, ok := sess.Values[keyUserID].(string)
	if !ok {
		return uuid.Nil, nil
	}
	id, err := uuid.FromString(v)
	if err != nil {
		return uuid.Nil, nil
	}
	return id, nil
}

func (s *cookieStore) IssueSession(c echo.Context, userID uuid.UUID) error {
	sess := s.get(c)
	sess.Values[keyUserID] = userID.String()
	if err := sess.Save(c.Request(), c.Response()); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	return nil
}

func (s *cookieStore) RevokeSession(c echo.Context) error {
	sess := s.get(c)
	delete(sess.Values, keyUserID)
	sess.Options.MaxAge = -1
	if err := sess.Save(c.Request(), c.Response()); err != nil {
		return fmt.Errorf("failed to revoke session: %w", err)
	}
	return nil
}
