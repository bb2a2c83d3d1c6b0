package v1

import (
	"time"

	"github.com/gofrs/uuid"
	"github.com/samber/lo"

	"github.com/traPtitech/traQ-moderation/model"
	"github.com/traPtitech/traQ-moderation/service/sanction"
	"github.com/traPtitech/traQ-moderation/utils/optional"
)

type reportResponse struct {
	ID          uuid.UUID              `json:"id"`
	ReporterID  uuid.UUID              `json:"reporterUserId"`
	ContentType model.ContentType      `json:"contentType"`
	ContentID   uuid.UUID              `json:"contentId"`
	Reason      string                 `json:"reason"`
	Details     string                 `json:"details"`
	Status      model.ReportStatus     `json:"status"`
	ReviewedBy  optional.Of[uuid.UUID] `json:"reviewedByUserId"`
	ReviewedAt  optional.Of[time.Time] `json:"reviewedAt"`
	CreatedAt   time.Time              `json:"createdAt"`
}

func formatReport(r *model.Report) *reportResponse {
	return &reportResponse{
		ID:          r.ID,
		ReporterID:  r.ReporterID,
		ContentType: r.ContentType,
		ContentID:   r.ContentID,
		Reason:      r.Reason,
		Details:     r.Details,
		Status:      r.Status,
		ReviewedBy:  r.ReviewedBy,
		ReviewedAt:  r.ReviewedAt,
		CreatedAt:   r.CreatedAt,
	}
}

type appealResponse struct {
	ID               uuid.UUID              `json:"id"`
	OriginalReportID uuid.UUID              `json:"originalReportId"`
	UserID           uuid.UUID              `json:"userId"`
	Text             string                 `json:"appealText"`
	HasImage         bool                   `json:"hasImage"`
	Status           model.AppealStatus     `json:"status"`
	ReviewedBy       optional.Of[uuid.UUID] `json:"reviewedByUserId"`
	ReviewedAt       optional.Of[time.Time] `json:"reviewedAt"`
	CreatedAt        time.Time              `json:"createdAt"`
	OriginalReport   *reportResponse        `json:"originalReport,omitempty"`
}

func formatAppeal(a *model.Appeal) *appealResponse {
	res := &appealResponse{
		ID:               a.ID,
		OriginalReportID: a.OriginalReportID,
		UserID:           a.UserID,
		Text:             a.Text,
		HasImage:         a.ImageFileName.Valid,
		Status:           a.Status,
		ReviewedBy:       a.ReviewedBy,
		ReviewedAt:       a.ReviewedAt,
		CreatedAt:        a.CreatedAt,
	}
	if a.OriginalReport != nil {
		res.OriginalReport = formatReport(a.OriginalReport)
	}
	return res
}

type userResponse struct {
	ID          uuid.UUID              `json:"id"`
	Name        string                 `json:"name"`
	Role        string                 `json:"role"`
	BannedUntil optional.Of[time.Time] `json:"bannedUntil"`
	MutedUntil  optional.Of[time.Time] `json:"mutedUntil"`
	BanReason   optional.Of[string]    `json:"banReason"`
	CreatedAt   time.Time              `json:"createdAt"`
}

func formatUser(u *model.User) *userResponse {
	return &userResponse{
		ID:          u.ID,
		Name:        u.Name,
		Role:        u.Role,
		BannedUntil: u.BannedUntil,
		MutedUntil:  u.MutedUntil,
		BanReason:   u.BanReason,
		CreatedAt:   u.CreatedAt,
	}
}

func formatUsers(us []*model.User) []*userResponse {
	return lo.Map(us, func(u *model.User, _ int) *userResponse { return formatUser(u) })
}

type sanctionStatusResponse struct {
	Blocked bool                   `json:"blocked"`
	Reason  sanction.BlockReason   `json:"reason"`
	Message string                 `json:"message"`
	Until   optional.Of[time.Time] `json:"until"`
}

func formatSanctionStatus(s sanction.Status) *sanctionStatusResponse {
	return &sanctionStatusResponse{
		Blocked: s.Blocked,
		Reason:  s.Reason,
		Message: s.Message,
		Until:   s.Until,
	}
}

type notificationResponse struct {
	ID          uuid.UUID              `json:"id"`
	Message     string                 `json:"message"`
	Type        string                 `json:"type"`
	ReferenceID optional.Of[uuid.UUID] `json:"referenceId"`
	IsRead      bool                   `json:"isRead"`
	CreatedAt   time.Time              `json:"createdAt"`
}

func formatNotifications(ns []*model.Notification) []*notificationResponse {
	return lo.Map(ns, func(n *model.Notification, _ int) *notificationResponse {
		return &notificationResponse{
			ID:          n.ID,
			Message:     n.Message,
			Type:        n.Type,
			ReferenceID: n.ReferenceID,
			IsRead:      n.IsRead,
			CreatedAt:   n.CreatedAt,
		}
	})
}

type actionLogResponse struct {
	ID              uuid.UUID              `json:"id"`
	Timestamp       time.Time              `json:"timestamp"`
	ActorID         uuid.UUID              `json:"actorUserId"`
	ActionType      model.ActionType       `json:"actionType"`
	TargetUserID    optional.Of[uuid.UUID] `json:"targetUserId"`
	TargetContentID optional.Of[uuid.UUID] `json:"targetContentId"`
	Details         string                 `json:"details"`
}

func formatActionLogs(ls []*model.ActionLog) []*actionLogResponse {
	return lo.Map(ls, func(l *model.ActionLog, _ int) *actionLogResponse {
		return &actionLogResponse{
			ID:              l.ID,
			Timestamp:       l.Timestamp,
			ActorID:         l.ActorID,
			ActionType:      l.ActionType,
			TargetUserID:    l.TargetUserID,
			TargetContentID: l.TargetContentID,
			Details:         l.Details,
		}
	})
}
