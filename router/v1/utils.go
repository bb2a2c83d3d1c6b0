package v1

import (
	"errors"
	"strconv"

	vd "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/gofrs/uuid"
	"github.com/labstack/echo/v4"

	"github.com/traPtitech/traQ-moderation/model"
	"github.com/traPtitech/traQ-moderation/router/consts"
	"github.com/traPtitech/traQ-moderation/router/extension/herror"
)

// bindAndValidate 構造体iにFormDataまたはJsonをデシリアライズします
func bindAndValidate(c echo.Context, i interface{}) error {
	if err := c.Bind(i); err != nil {
		return err
	}
	if err := vd.Validate(i); err != nil {
		var ie vd.InternalError
		if errors.As(err, &ie) {
			return herror.InternalServerError(ie.InternalError())
		}
		return herror.BadRequest(err)
	}
	return nil
}

// isTrue 文字列sが"1", "t", "T", "true", "TRUE", "True"の場合にtrueを返す
func isTrue(s string) (b bool) {
	b, _ = strconv.ParseBool(s)
	return
}

// getRequestUser リクエストしてきたユーザーの情報を取得
func getRequestUser(c echo.Context) *model.User {
	return c.Get(consts.KeyUser).(*model.User)
}

// getRequestActor リクエストしてきたユーザーを操作主体として取得
func getRequestActor(c echo.Context) model.Actor {
	return getRequestUser(c).Actor()
}

// getParamUser URLの:userIDに対応するユーザー構造体を取得
func getParamUser(c echo.Context) *model.User {
	return c.Get(consts.KeyParamUser).(*model.User)
}

// getParamAsUUID URLのパラメータをUUIDとして取得
func getParamAsUUID(c echo.Context, param string) uuid.UUID {
	return c.Get(param).(uuid.UUID)
}
