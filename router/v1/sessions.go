package v1

import (
	"errors"
	"net/http"
	"time"

	vd "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/traPtitech/traQ-moderation/repository"
	"github.com/traPtitech/traQ-moderation/router/extension/herror"
	"github.com/traPtitech/traQ-moderation/service/sanction"
	"github.com/traPtitech/traQ-moderation/utils/validator"
)

// LoginRequest POST /login リクエストボディ
type LoginRequest struct {
	Name string `json:"name" form:"name"`
}

func (r LoginRequest) Validate() error {
	return vd.ValidateStruct(&r,
		vd.Field(&r.Name, validator.UserNameRuleRequired...),
	)
}

// Login POST /login
//
// 開発モードでのみ有効。ユーザー名のみでログインします
func (h *Handlers) Login(c echo.Context) error {
	var req LoginRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	user, err := h.Repo.GetUserByName(req.Name)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return herror.Unauthorized("wrong name")
		}
		return herror.InternalServerError(err)
	}

	if status := h.Guard.Check(user, time.Now()); status.Reason == sanction.ReasonBanned {
		return herror.Unauthorized(status.Message)
	}

	if err := h.SessStore.IssueSession(c, user.ID); err != nil {
		return herror.InternalServerError(err)
	}
	h.Logger.Info("user logged in", zap.Stringer("userId", user.ID))
	return c.NoContent(http.StatusNoContent)
}

// Logout POST /logout
func (h *Handlers) Logout(c echo.Context) error {
	if err := h.SessStore.RevokeSession(c); err != nil {
		return herror.InternalServerError(err)
	}
	return c.NoContent(http.StatusNoContent)
}
