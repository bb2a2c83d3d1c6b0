//go:build wireinject
// +build wireinject

package cmd

import (
	"github.com/google/wire"
	"github.com/leandro-lugaresi/hub"
	"go.uber.org/zap"

	"github.com/traPtitech/traQ-moderation/repository"
	"github.com/traPtitech/traQ-moderation/router"
	"github.com/traPtitech/traQ-moderation/service"
	"github.com/traPtitech/traQ-moderation/service/appeal"
	"github.com/traPtitech/traQ-moderation/service/audit"
	"github.com/traPtitech/traQ-moderation/service/content"
	"github.com/traPtitech/traQ-moderation/service/counter"
	"github.com/traPtitech/traQ-moderation/service/notification"
	"github.com/traPtitech/traQ-moderation/service/rbac"
	"github.com/traPtitech/traQ-moderation/service/report"
	"github.com/traPtitech/traQ-moderation/service/sanction"
	"github.com/traPtitech/traQ-moderation/utils/storage"
)

func newServer(hub *hub.Hub, repo repository.Repository, fs storage.FileStorage, logger *zap.Logger, c *Config) (*Server, error) {
	wire.Build(
		appeal.NewManager,
		audit.NewTrail,
		content.NewModerator,
		content.NewVisibility,
		counter.NewDecisionCounter,
		counter.NewPendingCounter,
		notification.NewService,
		rbac.New,
		report.NewManager,
		sanction.NewAdministrator,
		sanction.NewGuard,
		router.Setup,
		provideRouterConfig,
		wire.Struct(new(service.Services), "*"),
		wire.Struct(new(Server), "*"),
		wire.Bind(new(repository.ActionLogRepository), new(repository.Repository)),
		wire.Bind(new(repository.NotificationRepository), new(repository.Repository)),
		wire.Bind(new(notification.Dispatcher), new(*notification.Service)),
	)
	return nil, nil
}
