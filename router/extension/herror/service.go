package herror

import (
	"errors"

	"github.com/traPtitech/traQ-moderation/service/appeal"
	"github.com/traPtitech/traQ-moderation/service/content"
	"github.com/traPtitech/traQ-moderation/service/notification"
	"github.com/traPtitech/traQ-moderation/service/rbac"
	"github.com/traPtitech/traQ-moderation/service/reason"
	"github.com/traPtitech/traQ-moderation/service/report"
	"github.com/traPtitech/traQ-moderation/service/sanction"
)

// FromService サービス層のエラーを対応するHTTPエラーに変換します
//
// 既知のエラーでない場合は500エラーになります
func FromService(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, rbac.ErrPermissionDenied),
		errors.Is(err, appeal.ErrNotEligible):
		return Forbidden(err.Error())
	case errors.Is(err, sanction.ErrSanctionBlocked):
		var be *sanction.BlockedError
		if errors.As(err, &be) {
			return Forbidden(be.Status.Message)
		}
		return Forbidden(err.Error())
	case errors.Is(err, report.ErrAlreadyResolved),
		errors.Is(err, appeal.ErrAlreadyResolved),
		errors.Is(err, appeal.ErrAlreadyAppealed):
		return Conflict(err.Error())
	case errors.Is(err, report.ErrNotFound),
		errors.Is(err, appeal.ErrNotFound),
		errors.Is(err, appeal.ErrImageNotFound),
		errors.Is(err, content.ErrContentNotFound),
		errors.Is(err, sanction.ErrUserNotFound),
		errors.Is(err, notification.ErrNotFound):
		return NotFound(err.Error())
	case errors.Is(err, report.ErrInvalidArgument),
		errors.Is(err, report.ErrInvalidAction),
		errors.Is(err, appeal.ErrInvalidArgument),
		errors.Is(err, appeal.ErrInvalidAction),
		errors.Is(err, appeal.ErrUnsupportedImage),
		errors.Is(err, appeal.ErrImageTooLarge),
		errors.Is(err, reason.ErrInvalidReason),
		errors.Is(err, sanction.ErrSelfTargetForbidden),
		errors.Is(err, sanction.ErrInvalidDuration),
		errors.Is(err, sanction.ErrReasonRequired),
		errors.Is(err, sanction.ErrInvalidRole),
		errors.Is(err, content.ErrEmptyContent),
		errors.Is(err, content.ErrUnknownContentType):
		return BadRequest(err.Error())
	default:
		return InternalServerError(err)
	}
}
