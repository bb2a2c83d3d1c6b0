package v1

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gavv/httpexpect/v2"
	"github.com/labstack/echo/v4"
	"github.com/leandro-lugaresi/hub"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/traPtitech/traQ-moderation/model"
	"github.com/traPtitech/traQ-moderation/repository"
	"github.com/traPtitech/traQ-moderation/router/extension"
	"github.com/traPtitech/traQ-moderation/router/session"
	"github.com/traPtitech/traQ-moderation/service/appeal"
	"github.com/traPtitech/traQ-moderation/service/audit"
	"github.com/traPtitech/traQ-moderation/service/content"
	"github.com/traPtitech/traQ-moderation/service/counter"
	"github.com/traPtitech/traQ-moderation/service/notification"
	"github.com/traPtitech/traQ-moderation/service/rbac"
	"github.com/traPtitech/traQ-moderation/service/report"
	"github.com/traPtitech/traQ-moderation/service/sanction"
	"github.com/traPtitech/traQ-moderation/testutils"
	"github.com/traPtitech/traQ-moderation/utils/storage"
)

type env struct {
	repo   repository.Repository
	fs     *storage.InMemoryFileStorage
	server *httptest.Server
}

// setup テスト用のサーバーを起動します
//
// テスト毎に独立したインメモリデータベースを使用します
func setup(t *testing.T) *env {
	t.Helper()
	repo := testutils.NewTestRepository(t)
	fs := storage.NewInMemoryFileStorage()
	h := hub.New()
	t.Cleanup(h.Close)
	logger := zap.NewNop()

	r := rbac.New()
	trail := audit.NewTrail(repo, r)
	notif := notification.NewService(repo, logger)
	vis := content.NewVisibility()
	pc, err := counter.NewPendingCounter(repo, h, logger)
	require.NoError(t, err)

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = extension.ErrorHandler(logger)
	e.Binder = &extension.Binder{}
	e.Use(extension.Wrap())

	handlers := &Handlers{
		RBAC:             r,
		Repo:             repo,
		SessStore:        session.NewCookieStore(session.Config{Secret: []byte("test-secret-test-secret-test-sec")}),
		Guard:            sanction.NewGuard(),
		SanctionAdmin:    sanction.NewAdministrator(repo, r, trail, notif, h, logger),
		ReportManager:    report.NewManager(repo, r, trail, notif, vis, h, logger),
		AppealManager:    appeal.NewManager(repo, r, trail, notif, vis, fs, h, logger),
		ContentModerator: content.NewModerator(repo, r, trail, vis, h, logger),
		Visibility:       vis,
		AuditTrail:       trail,
		Notification:     notif,
		PendingCounter:   pc,
		Logger:           logger,
		Config: Config{
			Development: true,
			Version:     "version",
			Revision:    "revision",
		},
	}
	handlers.Setup(e.Group("/api"))

	s := httptest.NewServer(e)
	t.Cleanup(s.Close)
	return &env{repo: repo, fs: fs, server: s}
}

// R リクエストテスターを作成
func (e *env) R(t *testing.T) *httpexpect.Expect {
	t.Helper()
	return httpexpect.WithConfig(httpexpect.Config{
		BaseURL:  e.server.URL,
		Reporter: httpexpect.NewAssertReporter(t),
		Printers: []httpexpect.Printer{
			httpexpect.NewCurlPrinter(t),
			httpexpect.NewDebugPrinter(t, true),
		},
		Client: &http.Client{
			Jar:     nil, // クッキーは保持しない
			Timeout: time.Second * 30,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				return http.ErrUseLastResponse // リダイレクトを自動処理しない
			},
		},
	})
}

// S 指定ユーザーでログインし、セッションクッキーの値を返します
func (e *env) S(t *testing.T, user *model.User) string {
	t.Helper()
	return e.R(t).POST("/api/v1/login").
		WithJSON(map[string]string{"name": user.Name}).
		Expect().
		Status(http.StatusNoContent).
		Cookie(session.CookieName).
		Value().
		Raw()
}

// user 指定したロールのユーザーを作成します
func (e *env) user(t *testing.T, role string) *model.User {
	t.Helper()
	return testutils.MustMakeUser(t, e.repo, testutils.Random, role)
}

// reload ユーザーをDBから取得し直します
func (e *env) reload(t *testing.T, u *model.User) *model.User {
	t.Helper()
	u, err := e.repo.GetUser(u.ID)
	require.NoError(t, err)
	return u
}
