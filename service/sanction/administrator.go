package sanction

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gofrs/uuid"
	"github.com/leandro-lugaresi/hub"
	"github.com/samber/lo"
	"go.uber.org/zap"

	"github.com/traPtitech/traQ-moderation/event"
	"github.com/traPtitech/traQ-moderation/model"
	"github.com/traPtitech/traQ-moderation/repository"
	"github.com/traPtitech/traQ-moderation/service/audit"
	"github.com/traPtitech/traQ-moderation/service/notification"
	"github.com/traPtitech/traQ-moderation/service/rbac"
	"github.com/traPtitech/traQ-moderation/service/rbac/permission"
	"github.com/traPtitech/traQ-moderation/service/rbac/role"
	"github.com/traPtitech/traQ-moderation/utils/optional"
)

var (
	// ErrSelfTargetForbidden 自分自身は対象にできません
	ErrSelfTargetForbidden = errors.New("cannot target yourself")
	// ErrReasonRequired 制裁理由が必要です
	ErrReasonRequired = errors.New("reason is required")
	// ErrInvalidRole 不正なロールです
	ErrInvalidRole = errors.New("invalid role")
	// ErrUserNotFound 対象のユーザーが存在しません
	ErrUserNotFound = errors.New("user not found")
)

// Administrator ユーザーの制裁・ロールの管理
type Administrator interface {
	// Sanction 対象ユーザーの制裁状態を変更します
	//
	// durationは"lift_sanctions", "permanent_ban", "{N}_mute", "{N}_ban"のいずれか。
	// 解除以外ではreasonが必須です。
	Sanction(actor model.Actor, targetID uuid.UUID, duration, reason string) error
	// SetRole 対象ユーザーのロールを変更します
	SetRole(actor model.Actor, targetID uuid.UUID, newRole string) error
}

type administrator struct {
	repo  repository.Repository
	rbac  rbac.RBAC
	trail audit.Trail
	notif notification.Dispatcher
	hub   *hub.Hub
	l     *zap.Logger
	now   func() time.Time
}

// NewAdministrator Administratorを生成します
func NewAdministrator(repo repository.Repository, rbac rbac.RBAC, trail audit.Trail, notif notification.Dispatcher, hub *hub.Hub, logger *zap.Logger) Administrator {
	return &administrator{
		repo:  repo,
		rbac:  rbac,
		trail: trail,
		notif: notif,
		hub:   hub,
		l:     logger.Named("sanction_administrator"),
		now:   time.Now,
	}
}

func (a *administrator) Sanction(actor model.Actor, targetID uuid.UUID, duration, reason string) error {
	if !a.rbac.IsGranted(actor.Role, permission.SanctionUser) {
		return rbac.ErrPermissionDenied
	}
	if actor.ID == targetID {
		return ErrSelfTargetForbidden
	}
	d, err := ParseDuration(duration)
	if err != nil {
		return err
	}
	reason = strings.TrimSpace(reason)
	if d.Kind != KindLift && len(reason) == 0 {
		return ErrReasonRequired
	}

	now := a.now().UTC()
	err = a.repo.Transaction(func(tx repository.Repository) error {
		target, err := tx.GetUser(targetID)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return ErrUserNotFound
			}
			return err
		}
		if !a.rbac.CanModify(actor.Role, target.Role) {
			return rbac.ErrPermissionDenied
		}

		args := repository.UpdateUserSanctionArgs{
			BannedUntil: target.BannedUntil,
			MutedUntil:  target.MutedUntil,
			BanReason:   target.BanReason,
		}
		var message, details string
		switch d.Kind {
		case KindLift:
			args = repository.UpdateUserSanctionArgs{}
			message = notification.SanctionsLiftedMessage()
			details = fmt.Sprintf("Lifted all sanctions on user '%s'.", target.Name)
		case KindPermanentBan:
			args.BannedUntil = optional.From(model.PermanentBanUntil)
			args.MutedUntil = optional.Of[time.Time]{}
			args.BanReason = optional.From(reason)
			message = notification.PermanentBanMessage(reason)
			details = fmt.Sprintf("Permanently banned user '%s'. Reason: %s", target.Name, reason)
		case KindMute:
			until := d.Until(now)
			args.MutedUntil = optional.From(until)
			message = notification.MuteMessage(until, reason)
			details = fmt.Sprintf("Muted user '%s' until %s. Reason: %s", target.Name, notification.FormatExpiry(until), reason)
		case KindBan:
			until := d.Until(now)
			args.BannedUntil = optional.From(until)
			args.MutedUntil = optional.Of[time.Time]{}
			args.BanReason = optional.From(reason)
			message = notification.BanMessage(until, reason)
			details = fmt.Sprintf("Banned user '%s' until %s. Reason: %s", target.Name, notification.FormatExpiry(until), reason)
		}

		if err := tx.UpdateUserSanction(target.ID, args); err != nil {
			return err
		}
		if err := a.notif.Notify(tx, target.ID, message, model.NotificationTypeSanction, optional.From(target.ID)); err != nil {
			return err
		}
		return a.trail.Record(tx, audit.Entry{
			ActorID:      actor.ID,
			Action:       model.ActionUserSanction,
			TargetUserID: optional.From(target.ID),
			Details:      details,
		})
	})
	if err != nil {
		return err
	}

	a.l.Info("user sanction changed",
		zap.Stringer("actorId", actor.ID),
		zap.Stringer("userId", targetID),
		zap.String("kind", string(d.Kind)))
	a.hub.Publish(hub.Message{
		Name: event.UserSanctioned,
		Fields: hub.Fields{
			"user_id":  targetID,
			"actor_id": actor.ID,
			"action":   string(d.Kind),
		},
	})
	return nil
}

func (a *administrator) SetRole(actor model.Actor, targetID uuid.UUID, newRole string) error {
	if !a.rbac.IsGranted(actor.Role, permission.ChangeUserRole) {
		return rbac.ErrPermissionDenied
	}
	if actor.ID == targetID {
		return ErrSelfTargetForbidden
	}
	if !role.Valid(newRole) {
		return ErrInvalidRole
	}

	var oldRole string
	err := a.repo.Transaction(func(tx repository.Repository) error {
		target, err := tx.GetUser(targetID)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return ErrUserNotFound
			}
			return err
		}
		assignable, err := a.rbac.AssignableRoles(actor.Role, target.Role)
		if err != nil {
			return err
		}
		if !lo.Contains(assignable, newRole) {
			return rbac.ErrPermissionDenied
		}
		oldRole = target.Role

		if err := tx.UpdateUserRole(target.ID, newRole); err != nil {
			return err
		}
		return a.trail.Record(tx, audit.Entry{
			ActorID:      actor.ID,
			Action:       model.ActionRoleChange,
			TargetUserID: optional.From(target.ID),
			Details:      fmt.Sprintf("Changed role of user '%s' from '%s' to '%s'.", target.Name, oldRole, newRole),
		})
	})
	if err != nil {
		return err
	}

	a.l.Info("user role changed",
		zap.Stringer("actorId", actor.ID),
		zap.Stringer("userId", targetID),
		zap.String("oldRole", oldRole),
		zap.String("newRole", newRole))
	a.hub.Publish(hub.Message{
		Name: event.UserRoleChanged,
		Fields: hub.Fields{
			"user_id":  targetID,
			"actor_id": actor.ID,
			"old_role": oldRole,
			"new_role": newRole,
		},
	})
	return nil
}
