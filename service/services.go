package service

import (
	"github.com/traPtitech/traQ-moderation/service/appeal"
	"github.com/traPtitech/traQ-moderation/service/audit"
	"github.com/traPtitech/traQ-moderation/service/content"
	"github.com/traPtitech/traQ-moderation/service/counter"
	"github.com/traPtitech/traQ-moderation/service/notification"
	"github.com/traPtitech/traQ-moderation/service/rbac"
	"github.com/traPtitech/traQ-moderation/service/report"
	"github.com/traPtitech/traQ-moderation/service/sanction"
)

type Services struct {
	AppealManager    appeal.Manager
	AuditTrail       audit.Trail
	ContentModerator content.Moderator
	DecisionCounter  *counter.DecisionCounter
	Notification     *notification.Service
	PendingCounter   *counter.PendingCounter
	RBAC             rbac.RBAC
	ReportManager    report.Manager
	SanctionAdmin    sanction.Administrator
	SanctionGuard    sanction.Guard
	Visibility       content.Visibility
}
