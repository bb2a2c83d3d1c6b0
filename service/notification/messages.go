package notification

import (
	"fmt"
	"html"
	"time"

	"github.com/gofrs/uuid"

	"github.com/traPtitech/traQ-moderation/model"
)

// ExpiryLayout 制裁の期限を通知に埋め込む際の書式
const ExpiryLayout = "January 2, 2006 at 15:04 MST"

// ContentPath コンテンツへのパス
func ContentPath(contentType model.ContentType, id uuid.UUID) string {
	switch contentType {
	case model.ContentTypeComment:
		return "/comments/" + id.String()
	case model.ContentTypeSharedPost:
		return "/shared-posts/" + id.String()
	default:
		return "/posts/" + id.String()
	}
}

// AppealPath 通報に対する異議申し立てフォームへのパス
func AppealPath(reportID uuid.UUID) string {
	return "/appeals/new?report_id=" + reportID.String()
}

func contentNoun(contentType model.ContentType) string {
	switch contentType {
	case model.ContentTypeComment:
		return "comment"
	case model.ContentTypeSharedPost:
		return "shared post"
	default:
		return "post"
	}
}

func contentAnchor(contentType model.ContentType, id uuid.UUID) string {
	return fmt.Sprintf(`<a href="%s">%s</a>`, ContentPath(contentType, id), contentNoun(contentType))
}

func appealAnchor(reportID uuid.UUID, label string) string {
	return fmt.Sprintf(`<a href="%s">%s</a>`, html.EscapeString(AppealPath(reportID)), label)
}

// ReportUpheldMessage 通報が承認されたことを通報者に伝える文面
func ReportUpheldMessage(contentType model.ContentType, contentID uuid.UUID) string {
	return fmt.Sprintf("Your report on a %s has been approved and action has been taken. Thank you for helping keep the community safe.",
		contentAnchor(contentType, contentID))
}

// ReportDismissedMessage 通報が却下されたことを通報者に伝える文面
func ReportDismissedMessage(contentType model.ContentType, contentID, reportID uuid.UUID, reason string) string {
	return fmt.Sprintf("Your report on a %s has been reviewed. %s If you disagree with this decision, you can %s.",
		contentAnchor(contentType, contentID), html.EscapeString(reason), appealAnchor(reportID, "appeal it"))
}

// ContentActionTakenMessage コンテンツに措置が取られたことを作成者に伝える文面
func ContentActionTakenMessage(contentType model.ContentType, contentID, reportID uuid.UUID, reason string) string {
	return fmt.Sprintf("Action has been taken on your %s. %s If you believe this is a mistake, you can %s.",
		contentAnchor(contentType, contentID), html.EscapeString(reason), appealAnchor(reportID, "appeal this decision"))
}

// AppealResolvedMessage 異議申し立ての結果を申立人に伝える文面
func AppealResolvedMessage(approved bool, reason string) string {
	if approved {
		return "Your appeal has been approved. " + html.EscapeString(reason)
	}
	return "Your appeal has been denied. " + html.EscapeString(reason)
}

// SanctionsLiftedMessage 全ての制裁が解除されたことを伝える文面
func SanctionsLiftedMessage() string {
	return "All sanctions on your account have been lifted."
}

// PermanentBanMessage 永久BANを伝える文面
func PermanentBanMessage(reason string) string {
	return fmt.Sprintf(`Your account has been permanently suspended. Reason: "%s"`, html.EscapeString(reason))
}

// MuteMessage ミュートを伝える文面
func MuteMessage(until time.Time, reason string) string {
	return fmt.Sprintf(`Your account has been muted until %s. Reason: "%s"`, FormatExpiry(until), html.EscapeString(reason))
}

// BanMessage 期限付きBANを伝える文面
func BanMessage(until time.Time, reason string) string {
	return fmt.Sprintf(`Your account has been suspended until %s. Reason: "%s"`, FormatExpiry(until), html.EscapeString(reason))
}

// FormatExpiry 制裁の期限をUTCで整形します
func FormatExpiry(t time.Time) string {
	return t.UTC().Format(ExpiryLayout)
}
