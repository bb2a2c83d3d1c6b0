package middlewares

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/traPtitech/traQ-moderation/model"
	"github.com/traPtitech/traQ-moderation/router/consts"
	"github.com/traPtitech/traQ-moderation/router/extension/herror"
	"github.com/traPtitech/traQ-moderation/service/rbac"
	"github.com/traPtitech/traQ-moderation/service/rbac/permission"
	"github.com/traPtitech/traQ-moderation/service/sanction"
)

// AccessControlMiddlewareGenerator アクセスコントロールミドルウェアのジェネレーターを返します
func AccessControlMiddlewareGenerator(r rbac.RBAC) func(p ...permission.Permission) echo.MiddlewareFunc {
	return func(p ...permission.Permission) echo.MiddlewareFunc {
		return func(next echo.HandlerFunc) echo.HandlerFunc {
			return func(c echo.Context) error {
				user := c.Get(consts.KeyUser).(*model.User)
				for _, v := range p {
					if !r.IsGranted(user.Role, v) {
						// NG
						return echo.NewHTTPError(http.StatusForbidden, fmt.Sprintf("you are not permitted to request to '%s'", c.Request().URL.Path))
					}
				}

				return next(c) // OK
			}
		}
	}
}

// RequireLevel 指定したロールレベル以上のユーザーのみを通すミドルウェア
func RequireLevel(r rbac.RBAC, level int) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user := c.Get(consts.KeyUser).(*model.User)
			if !r.Authorize(user.Role, level) {
				return echo.NewHTTPError(http.StatusForbidden, fmt.Sprintf("you are not permitted to request to '%s'", c.Request().URL.Path))
			}
			return next(c)
		}
	}
}

// BlockSanctioned 制裁中のユーザーによる指定した操作を制限するミドルウェア
func BlockSanctioned(action sanction.Action) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			status, ok := c.Get(consts.KeySanction).(sanction.Status)
			if ok && !status.Allows(action) {
				return herror.Forbidden(status.Message)
			}
			return next(c)
		}
	}
}
