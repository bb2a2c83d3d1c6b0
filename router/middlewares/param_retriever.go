package middlewares

import (
	"errors"

	"github.com/gofrs/uuid"
	"github.com/labstack/echo/v4"

	"github.com/traPtitech/traQ-moderation/repository"
	"github.com/traPtitech/traQ-moderation/router/consts"
	"github.com/traPtitech/traQ-moderation/router/extension/herror"
)

// ParamRetriever リクエストパスパラメータで指定された各種エンティティをrepositoryから取得するミドルウェア
type ParamRetriever struct {
	repo repository.Repository
}

// NewParamRetriever ParamRetrieverを生成
func NewParamRetriever(repo repository.Repository) *ParamRetriever {
	return &ParamRetriever{repo: repo}
}

func (pr *ParamRetriever) byUUID(param string, key string, f func(c echo.Context, v uuid.UUID) (interface{}, error)) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			v, err := uuid.FromString(c.Param(param))
			if err != nil || v == uuid.Nil {
				return herror.NotFound()
			}

			r, err := f(c, v)
			if err != nil {
				return pr.error(err)
			}

			c.Set(key, r)
			return next(c)
		}
	}
}

func (pr *ParamRetriever) error(err error) error {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		return herror.NotFound()
	default:
		return herror.InternalServerError(err)
	}
}

// UUID パスパラメータparamがUUIDであることを確認し、uuid.UUIDとして保存します
func (pr *ParamRetriever) UUID(param string) echo.MiddlewareFunc {
	return pr.byUUID(param, param, func(_ echo.Context, v uuid.UUID) (interface{}, error) {
		return v, nil
	})
}

// UserID リクエストURLの`userID`パラメータからUserを取り出す
func (pr *ParamRetriever) UserID() echo.MiddlewareFunc {
	return pr.byUUID(consts.ParamUserID, consts.KeyParamUser, func(_ echo.Context, v uuid.UUID) (interface{}, error) {
		return pr.repo.GetUser(v)
	})
}
