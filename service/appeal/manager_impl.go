package appeal

import (
	"bytes"
	"errors"
	"fmt"
	"io"
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
	"github.com/traPtitech/traQ-moderation/utils/storage"
	"github.com/traPtitech/traQ-moderation/utils/validator"
)

type manager struct {
	repo  repository.Repository
	rbac  rbac.RBAC
	trail audit.Trail
	notif notification.Dispatcher
	vis   content.Visibility
	fs    storage.FileStorage
	hub   *hub.Hub
	l     *zap.Logger
	now   func() time.Time
}

// NewManager 異議申し立てマネージャーを生成します
func NewManager(repo repository.Repository, rbac rbac.RBAC, trail audit.Trail, notif notification.Dispatcher, vis content.Visibility, fs storage.FileStorage, hub *hub.Hub, logger *zap.Logger) Manager {
	return &manager{
		repo:  repo,
		rbac:  rbac,
		trail: trail,
		notif: notif,
		vis:   vis,
		fs:    fs,
		hub:   hub,
		l:     logger.Named("appeal_manager"),
		now:   time.Now,
	}
}

func (m *manager) FileAppeal(actor model.Actor, args FileArgs) (*model.Appeal, error) {
	if !m.rbac.IsGranted(actor.Role, permission.FileAppeal) {
		return nil, rbac.ErrPermissionDenied
	}
	args.Text = strings.TrimSpace(args.Text)
	if err := vd.Validate(args.Text, validator.AppealTextRuleRequired...); err != nil {
		return nil, fmt.Errorf("%w: text %s", ErrInvalidArgument, err.Error())
	}
	if args.ReportID == uuid.Nil {
		return nil, ErrNotFound
	}

	var imageKey optional.Of[string]
	if args.Image != nil {
		img, err := processImage(args.Image.Src)
		if err != nil {
			return nil, err
		}
		key := uuid.Must(uuid.NewV7()).String() + img.ext
		if err := m.fs.SaveByKey(bytes.NewReader(img.data), key, args.Image.FileName, img.mimeType); err != nil {
			return nil, fmt.Errorf("failed to save appeal image: %w", err)
		}
		imageKey = optional.From(key)
	}

	var appeal *model.Appeal
	err := m.repo.Transaction(func(tx repository.Repository) error {
		if _, err := tx.GetAppealByReportID(args.ReportID); err == nil {
			return ErrAlreadyAppealed
		} else if !errors.Is(err, repository.ErrNotFound) {
			return err
		}

		r, err := tx.GetReport(args.ReportID)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return ErrNotFound
			}
			return err
		}
		if err := m.checkEligibility(tx, actor, r); err != nil {
			return err
		}

		a, err := tx.CreateAppeal(repository.CreateAppealArgs{
			ReportID:      r.ID,
			UserID:        actor.ID,
			Text:          args.Text,
			ImageFileName: imageKey,
		})
		if err != nil {
			if errors.Is(err, repository.ErrAlreadyExists) {
				return ErrAlreadyAppealed
			}
			return err
		}
		err = tx.UpdateReportStatus(r.ID, repository.UpdateReportStatusArgs{
			From: r.Status,
			To:   model.ReportStatusAppealed,
		})
		if errors.Is(err, repository.ErrPreconditionFailed) {
			return ErrAlreadyAppealed
		}
		if err != nil {
			return err
		}
		appeal = a
		return nil
	})
	if err != nil {
		if imageKey.Valid {
			if derr := m.fs.DeleteByKey(imageKey.V); derr != nil {
				m.l.Warn("failed to delete orphaned appeal image", zap.String("key", imageKey.V), zap.Error(derr))
			}
		}
		return nil, err
	}

	m.l.Info("appeal filed",
		zap.Stringer("appealId", appeal.ID),
		zap.Stringer("reportId", args.ReportID),
		zap.Stringer("userId", actor.ID))
	m.hub.Publish(hub.Message{
		Name: event.AppealFiled,
		Fields: hub.Fields{
			"appeal_id": appeal.ID,
			"appeal":    appeal,
		},
	})
	return appeal, nil
}

// checkEligibility 却下された通報の通報者、もしくは措置が取られたコンテンツの作成者のみ申し立てできる
func (m *manager) checkEligibility(tx repository.ContentRepository, actor model.Actor, r *model.Report) error {
	switch r.Status {
	case model.ReportStatusDismissed:
		if r.ReporterID == actor.ID {
			return nil
		}
	case model.ReportStatusActionTaken:
		authorID, err := m.vis.ResolveAuthor(tx, r.ContentType, r.ContentID)
		if err != nil {
			if errors.Is(err, content.ErrContentNotFound) {
				return ErrNotEligible
			}
			return err
		}
		if authorID == actor.ID {
			return nil
		}
	case model.ReportStatusAppealed:
		return ErrAlreadyAppealed
	}
	return ErrNotEligible
}

func (m *manager) GetPendingAppeals(actor model.Actor) ([]*model.Appeal, error) {
	if !m.rbac.IsGranted(actor.Role, permission.GetPendingAppeals) {
		return nil, rbac.ErrPermissionDenied
	}
	return m.repo.GetAppeals(repository.AppealsQuery{Status: optional.From(model.AppealStatusPending)})
}

func reasonKind(action Action) (reason.Kind, bool) {
	switch action {
	case ActionApprove:
		return reason.KindApprove, true
	case ActionDeny:
		return reason.KindDeny, true
	default:
		return 0, false
	}
}

func (m *manager) ResolveAppeal(actor model.Actor, appealID uuid.UUID, args ResolveArgs) error {
	if !m.rbac.IsGranted(actor.Role, permission.ResolveAppeal) {
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
	approved := args.Action == ActionApprove
	status := model.AppealStatusDenied
	if approved {
		status = model.AppealStatusApproved
	}

	var appeal *model.Appeal
	now := m.now()
	err = m.repo.Transaction(func(tx repository.Repository) error {
		a, err := tx.GetAppeal(appealID)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return ErrNotFound
			}
			return err
		}
		if a.Status != model.AppealStatusPending {
			return ErrAlreadyResolved
		}

		err = tx.UpdateAppealStatus(a.ID, repository.UpdateAppealStatusArgs{
			From:       model.AppealStatusPending,
			To:         status,
			ReviewerID: actor.ID,
			ReviewedAt: now,
		})
		if errors.Is(err, repository.ErrPreconditionFailed) {
			return ErrAlreadyResolved
		}
		if err != nil {
			return err
		}

		r := a.OriginalReport
		if r == nil {
			if r, err = tx.GetReport(a.OriginalReportID); err != nil {
				return err
			}
		}
		if approved && (r.Status == model.ReportStatusActionTaken || r.Status == model.ReportStatusAppealed) {
			err := m.vis.SetVisible(tx, r.ContentType, r.ContentID, true)
			if err != nil && !errors.Is(err, content.ErrContentNotFound) {
				return err
			}
		}

		if err := m.notif.Notify(tx, a.UserID, notification.AppealResolvedMessage(approved, rsn.Text), model.NotificationTypeAppealResolved, optional.From(a.ID)); err != nil {
			return err
		}

		var details string
		if rsn.IsCustom() {
			details = fmt.Sprintf("Resolved appeal %s on report %s as '%s'. Reason: custom: %s.", a.ID, r.ID, args.Action, rsn.Text)
		} else {
			details = fmt.Sprintf("Resolved appeal %s on report %s as '%s'. Reason: %s.", a.ID, r.ID, args.Action, rsn.Key)
		}
		a.Status = status
		appeal = a
		return m.trail.Record(tx, audit.Entry{
			ActorID:         actor.ID,
			Action:          model.ActionAppealResolve,
			TargetUserID:    optional.From(a.UserID),
			TargetContentID: optional.From(r.ContentID),
			Details:         details,
		})
	})
	if err != nil {
		return err
	}

	m.l.Info("appeal resolved",
		zap.Stringer("appealId", appealID),
		zap.Stringer("actorId", actor.ID),
		zap.String("status", string(status)))
	m.hub.Publish(hub.Message{
		Name: event.AppealResolved,
		Fields: hub.Fields{
			"appeal_id":   appealID,
			"appeal":      appeal,
			"reviewer_id": actor.ID,
			"decision":    string(status),
		},
	})
	return nil
}

func (m *manager) OpenImage(actor model.Actor, appealID uuid.UUID) (io.ReadCloser, string, error) {
	a, err := m.repo.GetAppeal(appealID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, "", ErrNotFound
		}
		return nil, "", err
	}
	if a.UserID != actor.ID && !m.rbac.IsGranted(actor.Role, permission.GetPendingAppeals) {
		return nil, "", rbac.ErrPermissionDenied
	}
	if !a.ImageFileName.Valid {
		return nil, "", ErrImageNotFound
	}

	f, err := m.fs.OpenFileByKey(a.ImageFileName.V)
	if err != nil {
		if errors.Is(err, storage.ErrFileNotFound) {
			return nil, "", ErrImageNotFound
		}
		return nil, "", err
	}
	return f, imageMimeType(a.ImageFileName.V), nil
}
