//go:build wireinject
// +build wireinject

package router

import (
	"github.com/google/wire"
	"go.uber.org/zap"

	"github.com/traPtitech/traQ-moderation/repository"
	"github.com/traPtitech/traQ-moderation/router/session"
	v1 "github.com/traPtitech/traQ-moderation/router/v1"
	"github.com/traPtitech/traQ-moderation/service"
)

func newRouter(repo repository.Repository, ss *service.Services, logger *zap.Logger, config *Config) *Router {
	wire.Build(
		service.ProviderSet,
		newEcho,
		provideSessionConfig,
		provideV1Config,
		session.NewCookieStore,
		wire.Struct(new(v1.Handlers), "*"),
		wire.Struct(new(Router), "*"),
	)
	return nil
}
