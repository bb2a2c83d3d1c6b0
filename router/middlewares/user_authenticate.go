package middlewares

import (
	"context"
	"errors"
	"time"

	"github.com/gofrs/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"github.com/traPtitech/traQ-moderation/model"
	"github.com/traPtitech/traQ-moderation/repository"
	"github.com/traPtitech/traQ-moderation/router/consts"
	"github.com/traPtitech/traQ-moderation/router/extension/ctxkey"
	"github.com/traPtitech/traQ-moderation/router/extension/herror"
	"github.com/traPtitech/traQ-moderation/router/session"
	"github.com/traPtitech/traQ-moderation/service/sanction"
)

// UserAuthenticate リクエスト認証ミドルウェア
//
// BANされているユーザーのセッションは破棄される
func UserAuthenticate(repo repository.UserRepository, sessStore session.Store, guard sanction.Guard, logger *zap.Logger) echo.MiddlewareFunc {
	var sfUser singleflight.Group

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			uid, err := sessStore.GetUserID(c)
			if err != nil {
				return herror.InternalServerError(err)
			}
			if uid == uuid.Nil {
				return herror.Unauthorized("You are not logged in")
			}

			// ユーザー取得
			uI, err, _ := sfUser.Do(uid.String(), func() (interface{}, error) { return repo.GetUser(uid) })
			if err != nil {
				if errors.Is(err, repository.ErrNotFound) {
					if err := sessStore.RevokeSession(c); err != nil {
						return herror.InternalServerError(err)
					}
					return herror.Unauthorized("You are not logged in")
				}
				return herror.InternalServerError(err)
			}
			user := uI.(*model.User)

			// 制裁状態を確認
			status := guard.Check(user, time.Now())
			if status.Reason == sanction.ReasonBanned {
				if err := sessStore.RevokeSession(c); err != nil {
					return herror.InternalServerError(err)
				}
				logger.Info("session revoked for banned user", zap.Stringer("userId", user.ID))
				return herror.Forbidden(status.Message)
			}

			c.Set(consts.KeyUser, user)
			c.Set(consts.KeyUserID, user.ID)
			c.Set(consts.KeySanction, status)
			c.SetRequest(c.Request().WithContext(context.WithValue(c.Request().Context(), ctxkey.UserID, user.ID)))
			return next(c)
		}
	}
}
