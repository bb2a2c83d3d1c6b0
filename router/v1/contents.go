package v1

import (
	"net/http"

	vd "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/labstack/echo/v4"

	"github.com/traPtitech/traQ-moderation/router/consts"
	"github.com/traPtitech/traQ-moderation/router/extension/herror"
	"github.com/traPtitech/traQ-moderation/utils/validator"
)

// PostHidePost POST /posts/:postID/hide
func (h *Handlers) PostHidePost(c echo.Context) error {
	if err := h.ContentModerator.HidePost(getRequestActor(c), getParamAsUUID(c, consts.ParamPostID)); err != nil {
		return herror.FromService(err)
	}
	return c.NoContent(http.StatusNoContent)
}

// PostHideComment POST /comments/:commentID/hide
func (h *Handlers) PostHideComment(c echo.Context) error {
	if err := h.ContentModerator.HideComment(getRequestActor(c), getParamAsUUID(c, consts.ParamCommentID)); err != nil {
		return herror.FromService(err)
	}
	return c.NoContent(http.StatusNoContent)
}

// PutPostRequest PUT /posts/:postID リクエストボディ
type PutPostRequest struct {
	Content string `json:"content"`
}

func (r PutPostRequest) Validate() error {
	return vd.ValidateStruct(&r,
		vd.Field(&r.Content, validator.PostContentRuleRequired...),
	)
}

// PutPost PUT /posts/:postID
func (h *Handlers) PutPost(c echo.Context) error {
	var req PutPostRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	if err := h.ContentModerator.EditPost(getRequestActor(c), getParamAsUUID(c, consts.ParamPostID), req.Content); err != nil {
		return herror.FromService(err)
	}
	return c.NoContent(http.StatusNoContent)
}
