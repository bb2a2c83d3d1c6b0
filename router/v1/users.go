package v1

import (
	"net/http"
	"time"

	vd "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/labstack/echo/v4"

	"github.com/traPtitech/traQ-moderation/router/extension/herror"
	"github.com/traPtitech/traQ-moderation/service/rbac/role"
)

// GetUsers GET /users
func (h *Handlers) GetUsers(c echo.Context) error {
	users, err := h.Repo.GetUsers()
	if err != nil {
		return herror.InternalServerError(err)
	}
	return c.JSON(http.StatusOK, formatUsers(users))
}

// PutUserRoleRequest PUT /users/:userID/role リクエストボディ
type PutUserRoleRequest struct {
	Role string `json:"role"`
}

func (r PutUserRoleRequest) Validate() error {
	return vd.ValidateStruct(&r,
		vd.Field(&r.Role, vd.Required, vd.In(role.User, role.Moderator, role.Coordinator, role.Admin)),
	)
}

// PutUserRole PUT /users/:userID/role
func (h *Handlers) PutUserRole(c echo.Context) error {
	var req PutUserRoleRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	if err := h.SanctionAdmin.SetRole(getRequestActor(c), getParamUser(c).ID, req.Role); err != nil {
		return herror.FromService(err)
	}
	return c.NoContent(http.StatusNoContent)
}

// PostUserSanctionRequest POST /users/:userID/sanction リクエストボディ
type PostUserSanctionRequest struct {
	Duration string `json:"duration"`
	Reason   string `json:"reason"`
}

func (r PostUserSanctionRequest) Validate() error {
	return vd.ValidateStruct(&r,
		vd.Field(&r.Duration, vd.Required),
		vd.Field(&r.Reason, vd.RuneLength(0, 1000)),
	)
}

// PostUserSanction POST /users/:userID/sanction
func (h *Handlers) PostUserSanction(c echo.Context) error {
	var req PostUserSanctionRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	if err := h.SanctionAdmin.Sanction(getRequestActor(c), getParamUser(c).ID, req.Duration, req.Reason); err != nil {
		return herror.FromService(err)
	}
	return c.NoContent(http.StatusNoContent)
}

// GetMySanction GET /users/me/sanction
func (h *Handlers) GetMySanction(c echo.Context) error {
	return c.JSON(http.StatusOK, formatSanctionStatus(h.Guard.Check(getRequestUser(c), time.Now())))
}
