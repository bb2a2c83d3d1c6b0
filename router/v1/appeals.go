package v1

import (
	"errors"
	"net/http"

	vd "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/gofrs/uuid"
	"github.com/labstack/echo/v4"

	"github.com/traPtitech/traQ-moderation/router/consts"
	"github.com/traPtitech/traQ-moderation/router/extension/herror"
	"github.com/traPtitech/traQ-moderation/service/appeal"
	"github.com/traPtitech/traQ-moderation/utils/validator"
)

// PostAppealRequest POST /appeals リクエストボディ
//
// multipart/form-dataの場合はimageフィールドで画像を添付できる
type PostAppealRequest struct {
	ReportID string `json:"reportId" form:"reportId"`
	Text     string `json:"appealText" form:"appealText"`
}

func (r PostAppealRequest) Validate() error {
	return vd.ValidateStruct(&r,
		vd.Field(&r.ReportID, vd.Required, validator.NotNilUUID),
		vd.Field(&r.Text, validator.AppealTextRuleRequired...),
	)
}

// PostAppeal POST /appeals
func (h *Handlers) PostAppeal(c echo.Context) error {
	var req PostAppealRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	args := appeal.FileArgs{
		ReportID: uuid.FromStringOrNil(req.ReportID),
		Text:     req.Text,
	}
	if fh, err := c.FormFile("image"); err == nil {
		// ファイルサイズ制限
		if fh.Size > appeal.MaxImageSize {
			return herror.BadRequest("too large image file (limit exceeded)")
		}
		src, err := fh.Open()
		if err != nil {
			return herror.InternalServerError(err)
		}
		defer src.Close()
		args.Image = &appeal.Image{FileName: fh.Filename, Src: src}
	} else if !errors.Is(err, http.ErrMissingFile) && !errors.Is(err, http.ErrNotMultipart) {
		return herror.BadRequest(err)
	}

	a, err := h.AppealManager.FileAppeal(getRequestActor(c), args)
	if err != nil {
		return herror.FromService(err)
	}
	return c.JSON(http.StatusCreated, formatAppeal(a))
}

// GetAppeals GET /appeals
func (h *Handlers) GetAppeals(c echo.Context) error {
	as, err := h.AppealManager.GetPendingAppeals(getRequestActor(c))
	if err != nil {
		return herror.FromService(err)
	}
	res, err := newQueueResolver(h.Repo, h.Visibility).appeals(as)
	if err != nil {
		return herror.InternalServerError(err)
	}
	return c.JSON(http.StatusOK, res)
}

// PostResolveAppealRequest POST /appeals/:appealID/resolve リクエストボディ
type PostResolveAppealRequest struct {
	Action        string `json:"action"`
	Reason        string `json:"reason"`
	CustomMessage string `json:"customMessage"`
}

func (r PostResolveAppealRequest) Validate() error {
	return vd.ValidateStruct(&r,
		vd.Field(&r.Action, vd.Required, vd.In(string(appeal.ActionApprove), string(appeal.ActionDeny))),
		vd.Field(&r.Reason, vd.Required),
	)
}

// PostResolveAppeal POST /appeals/:appealID/resolve
func (h *Handlers) PostResolveAppeal(c echo.Context) error {
	var req PostResolveAppealRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	err := h.AppealManager.ResolveAppeal(getRequestActor(c), getParamAsUUID(c, consts.ParamAppealID), appeal.ResolveArgs{
		Action:        appeal.Action(req.Action),
		ReasonKey:     req.Reason,
		CustomMessage: req.CustomMessage,
	})
	if err != nil {
		return herror.FromService(err)
	}
	return c.NoContent(http.StatusNoContent)
}

// GetAppealImage GET /appeals/:appealID/image
func (h *Handlers) GetAppealImage(c echo.Context) error {
	f, mimeType, err := h.AppealManager.OpenImage(getRequestActor(c), getParamAsUUID(c, consts.ParamAppealID))
	if err != nil {
		return herror.FromService(err)
	}
	defer f.Close()

	c.Response().Header().Set(consts.HeaderCacheControl, "private, max-age=86400")
	return c.Stream(http.StatusOK, mimeType, f)
}
