package v1

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/traPtitech/traQ-moderation/repository"
	"github.com/traPtitech/traQ-moderation/router/consts"
	"github.com/traPtitech/traQ-moderation/router/middlewares"
	"github.com/traPtitech/traQ-moderation/router/session"
	"github.com/traPtitech/traQ-moderation/service/appeal"
	"github.com/traPtitech/traQ-moderation/service/audit"
	"github.com/traPtitech/traQ-moderation/service/content"
	"github.com/traPtitech/traQ-moderation/service/counter"
	"github.com/traPtitech/traQ-moderation/service/notification"
	"github.com/traPtitech/traQ-moderation/service/rbac"
	"github.com/traPtitech/traQ-moderation/service/rbac/permission"
	"github.com/traPtitech/traQ-moderation/service/rbac/role"
	"github.com/traPtitech/traQ-moderation/service/report"
	"github.com/traPtitech/traQ-moderation/service/sanction"
)

// Handlers ハンドラ
type Handlers struct {
	RBAC             rbac.RBAC
	Repo             repository.Repository
	SessStore        session.Store
	Guard            sanction.Guard
	SanctionAdmin    sanction.Administrator
	ReportManager    report.Manager
	AppealManager    appeal.Manager
	ContentModerator content.Moderator
	Visibility       content.Visibility
	AuditTrail       audit.Trail
	Notification     *notification.Service
	PendingCounter   *counter.PendingCounter
	Logger           *zap.Logger
	Config
}

// Config v1 APIの設定
type Config struct {
	// Development 開発モードかどうか。trueの場合のみユーザー名でのログインを許可します
	Development bool
	Version     string
	Revision    string
}

// Setup APIルーティングを行います
func (h *Handlers) Setup(e *echo.Group) {
	// middleware preparation
	requires := middlewares.AccessControlMiddlewareGenerator(h.RBAC)
	retrieve := middlewares.NewParamRetriever(h.Repo)
	blockBanned := middlewares.BlockSanctioned(sanction.ActionReport)
	blockAppeal := middlewares.BlockSanctioned(sanction.ActionAppeal)

	api := e.Group("/v1", middlewares.UserAuthenticate(h.Repo, h.SessStore, h.Guard, h.Logger.Named("auth")))
	{
		apiReports := api.Group("/reports")
		{
			apiReports.POST("", h.PostReport, blockBanned, requires(permission.FileReport))
			apiReports.GET("", h.GetReports, requires(permission.GetPendingReports))
			apiReportsRID := apiReports.Group("/:reportID", retrieve.UUID(consts.ParamReportID))
			{
				apiReportsRID.GET("", h.GetReport, requires(permission.GetPendingReports))
				apiReportsRID.POST("/resolve", h.PostResolveReport, requires(permission.ResolveReport))
			}
		}
		apiAppeals := api.Group("/appeals")
		{
			apiAppeals.POST("", h.PostAppeal, blockAppeal, requires(permission.FileAppeal))
			apiAppeals.GET("", h.GetAppeals, requires(permission.GetPendingAppeals))
			apiAppealsAID := apiAppeals.Group("/:appealID", retrieve.UUID(consts.ParamAppealID))
			{
				apiAppealsAID.POST("/resolve", h.PostResolveAppeal, requires(permission.ResolveAppeal))
				apiAppealsAID.GET("/image", h.GetAppealImage)
			}
		}
		apiUsers := api.Group("/users")
		{
			apiUsers.GET("", h.GetUsers, requires(permission.GetUsers))
			apiUsersMe := apiUsers.Group("/me")
			{
				apiUsersMe.GET("/sanction", h.GetMySanction)
				apiUsersMe.GET("/notifications", h.GetMyNotifications, requires(permission.GetMyNotifications))
				apiUsersMe.POST("/notifications/:notificationID/read", h.PostReadNotification, requires(permission.GetMyNotifications), retrieve.UUID(consts.ParamNotificationID))
			}
			apiUsersUID := apiUsers.Group("/:userID", retrieve.UserID())
			{
				apiUsersUID.PUT("/role", h.PutUserRole, requires(permission.ChangeUserRole))
				apiUsersUID.POST("/sanction", h.PostUserSanction, requires(permission.SanctionUser))
			}
		}
		api.GET("/action-logs", h.GetActionLogs, requires(permission.GetActionLogs))
		api.GET("/moderation/queue", h.GetModerationQueue, middlewares.RequireLevel(h.RBAC, role.Level(role.Moderator)))
		apiPosts := api.Group("/posts/:postID", retrieve.UUID(consts.ParamPostID))
		{
			apiPosts.PUT("", h.PutPost, requires(permission.EditContent))
			apiPosts.POST("/hide", h.PostHidePost, requires(permission.HideContent))
		}
		api.POST("/comments/:commentID/hide", h.PostHideComment, requires(permission.HideContent), retrieve.UUID(consts.ParamCommentID))
		api.POST("/logout", h.Logout)
	}

	apiNoAuth := e.Group("/v1")
	{
		if h.Development {
			apiNoAuth.POST("/login", h.Login)
		}
	}
}
