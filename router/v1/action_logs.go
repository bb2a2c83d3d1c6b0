package v1

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/traPtitech/traQ-moderation/router/extension/herror"
)

// GetActionLogs GET /action-logs
func (h *Handlers) GetActionLogs(c echo.Context) error {
	limit := 0
	if s := c.QueryParam("limit"); len(s) > 0 {
		v, err := strconv.Atoi(s)
		if err != nil || v < 0 {
			return herror.BadRequest("invalid limit")
		}
		limit = v
	}

	logs, err := h.AuditTrail.GetRecent(getRequestActor(c), limit)
	if err != nil {
		return herror.FromService(err)
	}
	return c.JSON(http.StatusOK, formatActionLogs(logs))
}
