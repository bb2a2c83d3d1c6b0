package router

import (
	"github.com/traPtitech/traQ-moderation/router/session"
	v1 "github.com/traPtitech/traQ-moderation/router/v1"
)

// Config APIサーバー設定
type Config struct {
	// Development 開発モードかどうか
	Development bool
	// Version サーバーバージョン
	Version string
	// Revision サーバーリビジョン
	Revision string
	// AccessLogging アクセスログを記録するかどうか
	AccessLogging bool
	// AllowOrigins CORSで許可するオリジン。空の場合は全て許可
	AllowOrigins []string
	// Session セッション設定
	Session session.Config
}

func provideSessionConfig(c *Config) session.Config {
	return c.Session
}

func provideV1Config(c *Config) v1.Config {
	return v1.Config{
		Development: c.Development,
		Version:     c.Version,
		Revision:    c.Revision,
	}
}
