package router

import (
	"net/http"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"github.com/traPtitech/traQ-moderation/repository"
	"github.com/traPtitech/traQ-moderation/router/consts"
	"github.com/traPtitech/traQ-moderation/router/extension"
	"github.com/traPtitech/traQ-moderation/router/middlewares"
	"github.com/traPtitech/traQ-moderation/router/session"
	v1 "github.com/traPtitech/traQ-moderation/router/v1"
	"github.com/traPtitech/traQ-moderation/service"
)

type Router struct {
	e         *echo.Echo
	sessStore session.Store
	v1        *v1.Handlers
}

func Setup(repo repository.Repository, ss *service.Services, logger *zap.Logger, config *Config) *echo.Echo {
	r := newRouter(repo, ss, logger.Named("router"), config)

	api := r.e.Group("/api")
	api.GET("/metrics", echoprometheus.NewHandler())
	api.GET("/ping", func(c echo.Context) error { return c.String(http.StatusOK, http.StatusText(http.StatusOK)) })
	r.v1.Setup(api)

	return r.e
}

func newEcho(logger *zap.Logger, config *Config) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = extension.ErrorHandler(logger)
	e.Binder = &extension.Binder{}

	// ミドルウェア設定
	e.Use(middlewares.ServerVersion(config.Version))
	e.Use(middlewares.RequestID())
	if config.AccessLogging {
		e.Use(middlewares.AccessLogging(logger.Named("access_log"), config.Development))
	}
	e.Use(middlewares.Recovery(logger))
	e.Use(extension.Wrap())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     config.AllowOrigins,
		AllowCredentials: len(config.AllowOrigins) > 0,
		ExposeHeaders:    []string{consts.HeaderVersion, echo.HeaderXRequestID},
		AllowHeaders:     []string{echo.HeaderContentType},
		MaxAge:           3600,
	}))
	e.Use(echoprometheus.NewMiddleware("traq_moderation"))

	return e
}
