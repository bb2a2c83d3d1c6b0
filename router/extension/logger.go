package extension

import (
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/traPtitech/traQ-moderation/utils/random"
)

// GetRequestID リクエストIDを返します
func GetRequestID(c echo.Context) string {
	if rid := c.Response().Header().Get(echo.HeaderXRequestID); len(rid) > 0 {
		return rid
	}
	rid := c.Request().Header.Get(echo.HeaderXRequestID)
	if len(rid) == 0 {
		rid = random.AlphaNumeric(32)
	}
	return rid
}

// GetTraceID トレースIDを返します
//
// Cloud Traceのヘッダーがある場合はそのトレースID部分を、ない場合はリクエストIDを返します
func GetTraceID(c echo.Context) string {
	if h := c.Request().Header.Get("X-Cloud-Trace-Context"); len(h) > 0 {
		id, _, _ := strings.Cut(h, "/")
		return id
	}
	return GetRequestID(c)
}
