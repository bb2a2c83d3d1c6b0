package v1

import (
	"net/http"

	vd "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/gofrs/uuid"
	"github.com/labstack/echo/v4"

	"github.com/traPtitech/traQ-moderation/model"
	"github.com/traPtitech/traQ-moderation/router/consts"
	"github.com/traPtitech/traQ-moderation/router/extension/herror"
	"github.com/traPtitech/traQ-moderation/service/report"
	"github.com/traPtitech/traQ-moderation/utils/validator"
)

// PostReportRequest POST /reports リクエストボディ
type PostReportRequest struct {
	ContentType string    `json:"contentType"`
	ContentID   uuid.UUID `json:"contentId"`
	Reason      string    `json:"reason"`
	Details     string    `json:"details"`
}

func (r PostReportRequest) Validate() error {
	return vd.ValidateStruct(&r,
		vd.Field(&r.ContentType, vd.Required, vd.In(string(model.ContentTypePost), string(model.ContentTypeComment), string(model.ContentTypeSharedPost))),
		vd.Field(&r.ContentID, vd.Required, validator.NotNilUUID),
		vd.Field(&r.Reason, validator.ReportReasonRuleRequired...),
		vd.Field(&r.Details, validator.ReportDetailsRule...),
	)
}

// PostReport POST /reports
func (h *Handlers) PostReport(c echo.Context) error {
	var req PostReportRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	r, err := h.ReportManager.FileReport(getRequestActor(c), report.FileArgs{
		ContentType: model.ContentType(req.ContentType),
		ContentID:   req.ContentID,
		Reason:      req.Reason,
		Details:     req.Details,
	})
	if err != nil {
		return herror.FromService(err)
	}
	return c.JSON(http.StatusCreated, formatReport(r))
}

// GetReports GET /reports
func (h *Handlers) GetReports(c echo.Context) error {
	rs, err := h.ReportManager.GetPendingReports(getRequestActor(c))
	if err != nil {
		return herror.FromService(err)
	}
	res, err := newQueueResolver(h.Repo, h.Visibility).reports(rs)
	if err != nil {
		return herror.InternalServerError(err)
	}
	return c.JSON(http.StatusOK, res)
}

// GetReport GET /reports/:reportID
func (h *Handlers) GetReport(c echo.Context) error {
	r, err := h.ReportManager.GetReport(getRequestActor(c), getParamAsUUID(c, consts.ParamReportID))
	if err != nil {
		return herror.FromService(err)
	}
	return c.JSON(http.StatusOK, formatReport(r))
}

// PostResolveReportRequest POST /reports/:reportID/resolve リクエストボディ
type PostResolveReportRequest struct {
	Action        string `json:"action"`
	Reason        string `json:"reason"`
	CustomMessage string `json:"customMessage"`
	HideContent   bool   `json:"hideContent"`
}

func (r PostResolveReportRequest) Validate() error {
	return vd.ValidateStruct(&r,
		vd.Field(&r.Action, vd.Required, vd.In(string(report.ActionDismiss), string(report.ActionUphold))),
		vd.Field(&r.Reason, vd.Required),
	)
}

// PostResolveReport POST /reports/:reportID/resolve
func (h *Handlers) PostResolveReport(c echo.Context) error {
	var req PostResolveReportRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	err := h.ReportManager.ResolveReport(getRequestActor(c), getParamAsUUID(c, consts.ParamReportID), report.ResolveArgs{
		Action:        report.Action(req.Action),
		ReasonKey:     req.Reason,
		CustomMessage: req.CustomMessage,
		HideContent:   req.HideContent,
	})
	if err != nil {
		return herror.FromService(err)
	}
	return c.NoContent(http.StatusNoContent)
}
