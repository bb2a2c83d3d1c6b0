package extension

import (
	"errors"
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/traPtitech/traQ-moderation/logging"
	"github.com/traPtitech/traQ-moderation/router/extension/herror"
)

// ErrorHandler カスタムエラーハンドラ
func ErrorHandler(logger *zap.Logger) echo.HTTPErrorHandler {
	return func(e error, c echo.Context) {
		var (
			code int
			body interface{}
			he   *echo.HTTPError
			ie   *herror.InternalError
		)

		switch {
		case e == nil:
			return
		case errors.As(e, &he):
			if herr, ok := he.Internal.(*echo.HTTPError); ok {
				he = herr
			}
			switch m := he.Message.(type) {
			case string:
				body = echo.Map{"message": m}
			case error:
				body = echo.Map{"message": m.Error()}
			default:
				body = echo.Map{"message": http.StatusText(he.Code)}
			}
			code = he.Code
		case errors.As(e, &ie):
			logger.Error(ie.Err.Error(), append(ie.Fields, logging.Trace(GetTraceID(c)))...)
			code = http.StatusInternalServerError
			body = echo.Map{"message": http.StatusText(http.StatusInternalServerError)}
		default:
			logger.Error(e.Error(), logging.Trace(GetTraceID(c)))
			code = http.StatusInternalServerError
			body = echo.Map{"message": http.StatusText(http.StatusInternalServerError)}
		}

		if !c.Response().Committed {
			if c.Request().Method == http.MethodHead {
				e = c.NoContent(code)
			} else {
				e = json(c, code, body, jsoniter.ConfigFastest)
			}
			if e != nil {
				logger.Warn("failed to send error response", zap.Error(e), logging.Trace(GetTraceID(c)))
			}
		}
	}
}
