package report

import (
	"errors"
	"fmt"
	"strings"
	"time"

	vd "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/gofrs/uuid"
	"github.com/leandro-lugaresi/hub"
	"go.uber.org/zap"

	"github.com/traPtitech/traQ-moderation/event"
	"github.com/traPtitech/traQ-moderation/model"
	"github.com/traPtitech/traQ-moderation/repository"
	"github.com/traPtitech/traQ-moderation/service/audit"
	"github.com/traPtitech/traQ-moderation/service/content"
	"github.com/traPtitech/traQ-moderation/service/notification"
	"github.com/traPtitech/traQ-moderation/service/rbac"
	"github.com/traPtitech/traQ-moderation/service/rbac/permission"
	"github.com/traPtitech/traQ-moderation/service/reason"
	"github.com/traPtitech/traQ-moderation/utils/optional"
	"github.com/traPtitech/traQ-moderation/utils/validator"
)

type manager struct {
	repo  repository.Repository
	rbac  rbac.RBAC
	trail audit.Trail
	notif notification.Dispatcher
	vis   content.Visibility
	hub   *hub.Hub
	l     *zap.Logger
	now   func() time.Time
}

// NewManager 通報マネージャーを生成します
func NewManager(repo repository.Repository, rbac rbac.RBAC, trail audit.Trail, notif notification.Dispatcher, vis content.Visibility, hub *hub.Hub, logger *zap.Logger) Manager {
	return &manager{
		repo:  repo,
		rbac:  rbac,
		trail: trail,
		notif: notif,
		vis:   vis,
		hub:   hub,
		l:     logger.Named("report_manager"),
		now:   time.Now,
	}
}

func (m *manager) FileReport(actor model.Actor, args FileArgs) (*model.Report, error) {
	if !m.rbac.IsGranted(actor.Role, permission.FileReport) {
		return nil, rbac.ErrPermissionDenied
	}
	args.Reason = strings.TrimSpace(args.Reason)
	args.Details = strings.TrimSpace(args.Details)
	if !args.ContentType.Valid() || args.ContentID == uuid.Nil {
		return nil, ErrInvalidArgument
	}
	if err := vd.Validate(args.Reason, validator.ReportReasonRuleRequired...); err != nil {
		return nil, fmt.Errorf("%w: reason %s", ErrInvalidArgument, err.Error())
	}
	if err := vd.Validate(args.Details, validator.ReportDetailsRule...); err != nil {
		return nil, fmt.Errorf("%w: details %s", ErrInvalidArgument, err.Error())
	}

	r, err := m.repo.CreateReport(repository.CreateReportArgs{
		ReporterID:  actor.ID,
		ContentType: args.ContentType,
		ContentID:   args.ContentID,
		Reason:      args.Reason,
		Details:     args.Details,
	})
	if err != nil {
		return nil, err
	}

	m.l.Info("report filed",
		zap.Stringer("reportId", r.ID),
		zap.Stringer("reporterId", actor.ID),
		zap.String("contentType", string(r.ContentType)),
		zap.Stringer("contentId", r.ContentID))
	m.hub.Publish(hub.Message{
		Name: event.ReportFiled,
		Fields: hub.Fields{
			"report_id": r.ID,
			"report":    r,
		},
	})
	return r, nil
}

func (m *manager) GetPendingReports(actor model.Actor) ([]*model.Report, error) {
	if !m.rbac.IsGranted(actor.Role, permission.GetPendingReports) {
		return nil, rbac.ErrPermissionDenied
	}
	return m.repo.GetReports(repository.ReportsQuery{Status: optional.From(model.ReportStatusPending)})
}

func (m *manager) GetReport(actor model.Actor, reportID uuid.UUID) (*model.Report, error) {
	if !m.rbac.IsGranted(actor.Role, permission.GetPendingReports) {
		return nil, rbac.ErrPermissionDenied
	}
	r, err := m.repo.GetReport(reportID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return r, nil
}

func reasonKind(action Action) (reason.Kind, bool) {
	switch action {
	case ActionUphold:
		return reason.KindUphold, true
	case ActionDismiss:
		return reason.KindDismiss, true
	default:
		return 0, false
	}
}

func (m *manager) ResolveReport(actor model.Actor, reportID uuid.UUID, args ResolveArgs) error {
	if !m.rbac.IsGranted(actor.Role, permission.ResolveReport) {
		return rbac.ErrPermissionDenied
	}
	kind, ok := reasonKind(args.Action)
	if !ok {
		return ErrInvalidAction
	}
	rsn, err := reason.Parse(kind, args.ReasonKey, args.CustomMessage)
	if err != nil {
		return err
	}
	hide := args.Action == ActionUphold && args.HideContent

	var (
		report       *model.Report
		contentFound = true
		status       model.ReportStatus
	)
	now := m.now()
	err = m.repo.Transaction(func(tx repository.Repository) error {
		r, err := tx.GetReport(reportID)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return ErrNotFound
			}
			return err
		}
		if !r.IsPending() {
			return ErrAlreadyResolved
		}
		report = r

		authorID, err := m.vis.ResolveAuthor(tx, r.ContentType, r.ContentID)
		if err != nil {
			if !errors.Is(err, content.ErrContentNotFound) {
				return err
			}
			contentFound = false
			status = model.ReportStatusErrorContentNotFound
			if err := m.transition(tx, r.ID, actor.ID, status, now); err != nil {
				return err
			}
			return m.trail.Record(tx, audit.Entry{
				ActorID:         actor.ID,
				Action:          model.ActionReportResolve,
				TargetContentID: optional.From(r.ContentID),
				Details:         fmt.Sprintf("Closed report %s on %s %s: content not found.", r.ID, r.ContentType, r.ContentID),
			})
		}
		// 非表示にすると共有投稿の引用文は置き換えられるため、先に取得する
		snippet, err := m.vis.Snippet(tx, r.ContentType, r.ContentID)
		if err != nil {
			return err
		}

		status = model.ReportStatusDismissed
		if args.Action == ActionUphold {
			status = model.ReportStatusActionTaken
		}
		if err := m.transition(tx, r.ID, actor.ID, status, now); err != nil {
			return err
		}

		if hide {
			if err := m.vis.SetVisible(tx, r.ContentType, r.ContentID, false); err != nil {
				return err
			}
		}

		// 通報者への通知
		var reporterMessage string
		if args.Action == ActionUphold {
			reporterMessage = notification.ReportUpheldMessage(r.ContentType, r.ContentID)
		} else {
			reporterMessage = notification.ReportDismissedMessage(r.ContentType, r.ContentID, r.ID, rsn.Text)
		}
		if err := m.notif.Notify(tx, r.ReporterID, reporterMessage, model.NotificationTypeReportResolved, optional.From(r.ID)); err != nil {
			return err
		}

		// 作成者への通知
		if args.Action == ActionUphold {
			if _, err := tx.GetUser(authorID); err != nil {
				if !errors.Is(err, repository.ErrNotFound) {
					return err
				}
				m.l.Warn("content author not found, skipping notification",
					zap.Stringer("reportId", r.ID),
					zap.Stringer("authorId", authorID))
			} else {
				msg := notification.ContentActionTakenMessage(r.ContentType, r.ContentID, r.ID, rsn.Text)
				if err := m.notif.Notify(tx, authorID, msg, model.NotificationTypeContentRemoved, optional.From(r.ID)); err != nil {
					return err
				}
			}
		}

		return m.trail.Record(tx, audit.Entry{
			ActorID:         actor.ID,
			Action:          model.ActionReportResolve,
			TargetUserID:    optional.From(authorID),
			TargetContentID: optional.From(r.ContentID),
			Details:         resolveDetails(r, args.Action, rsn, snippet, hide),
		})
	})
	if err != nil {
		return err
	}

	m.l.Info("report resolved",
		zap.Stringer("reportId", reportID),
		zap.Stringer("actorId", actor.ID),
		zap.String("status", string(status)),
		zap.Bool("contentFound", contentFound))
	m.hub.Publish(hub.Message{
		Name: event.ReportResolved,
		Fields: hub.Fields{
			"report_id":     reportID,
			"report":        report,
			"reviewer_id":   actor.ID,
			"decision":      string(status),
			"content_found": contentFound,
		},
	})
	if !contentFound {
		return ErrContentNotFound
	}
	return nil
}

func (m *manager) transition(tx repository.ReportRepository, reportID, reviewerID uuid.UUID, to model.ReportStatus, now time.Time) error {
	err := tx.UpdateReportStatus(reportID, repository.UpdateReportStatusArgs{
		From:       model.ReportStatusPending,
		To:         to,
		ReviewerID: optional.From(reviewerID),
		ReviewedAt: now,
	})
	if errors.Is(err, repository.ErrPreconditionFailed) {
		return ErrAlreadyResolved
	}
	return err
}

func resolveDetails(r *model.Report, action Action, rsn reason.Reason, snippet string, hidden bool) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Resolved report %s on %s %s ('%s') as '%s'. Reason: ", r.ID, r.ContentType, r.ContentID, snippet, action)
	if rsn.IsCustom() {
		fmt.Fprintf(&b, "custom: %s", rsn.Text)
	} else {
		b.WriteString(rsn.Key)
	}
	if hidden {
		b.WriteString(". Content hidden.")
	} else {
		b.WriteString(".")
	}
	return b.String()
}
