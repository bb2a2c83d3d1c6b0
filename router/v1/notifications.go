package v1

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/traPtitech/traQ-moderation/router/consts"
	"github.com/traPtitech/traQ-moderation/router/extension/herror"
)

// GetMyNotifications GET /users/me/notifications
func (h *Handlers) GetMyNotifications(c echo.Context) error {
	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	ns, err := h.Notification.GetNotifications(getRequestActor(c), isTrue(c.QueryParam("unread")), limit)
	if err != nil {
		return herror.InternalServerError(err)
	}
	return c.JSON(http.StatusOK, formatNotifications(ns))
}

// PostReadNotification POST /users/me/notifications/:notificationID/read
func (h *Handlers) PostReadNotification(c echo.Context) error {
	if err := h.Notification.MarkAsRead(getRequestActor(c), getParamAsUUID(c, consts.ParamNotificationID)); err != nil {
		return herror.FromService(err)
	}
	return c.NoContent(http.StatusNoContent)
}
