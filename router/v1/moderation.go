package v1

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/traPtitech/traQ-moderation/router/extension/herror"
)

// GetModerationQueue GET /moderation/queue
func (h *Handlers) GetModerationQueue(c echo.Context) error {
	if err := h.PendingCounter.Refresh(); err != nil {
		return herror.InternalServerError(err)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"pendingReports": h.PendingCounter.Reports(),
		"pendingAppeals": h.PendingCounter.Appeals(),
	})
}
