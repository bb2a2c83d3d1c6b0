package notification

import (
	"errors"
	"fmt"

	"github.com/gofrs/uuid"
	"go.uber.org/zap"

	"github.com/traPtitech/traQ-moderation/model"
	"github.com/traPtitech/traQ-moderation/repository"
	"github.com/traPtitech/traQ-moderation/utils/optional"
)

// ErrNotFound 通知が見つかりません
var ErrNotFound = errors.New("notification not found")

// MaxListLimit 一度に取得できる通知の最大件数
const MaxListLimit = 100

// Service 通知サービス
type Service struct {
	repo repository.NotificationRepository
	l    *zap.Logger
}

// NewService 通知サービスを生成します
func NewService(repo repository.NotificationRepository, logger *zap.Logger) *Service {
	return &Service{
		repo: repo,
		l:    logger.Named("notification"),
	}
}

// Notify implements Dispatcher interface.
func (s *Service) Notify(repo repository.NotificationRepository, userID uuid.UUID, message, notificationType string, referenceID optional.Of[uuid.UUID]) error {
	n, err := repo.CreateNotification(repository.CreateNotificationArgs{
		UserID:      userID,
		Message:     message,
		Type:        notificationType,
		ReferenceID: referenceID,
	})
	if err != nil {
		return fmt.Errorf("failed to create notification: %w", err)
	}
	s.l.Debug("notification created",
		zap.Stringer("notificationId", n.ID),
		zap.Stringer("userId", userID),
		zap.String("type", notificationType))
	return nil
}

// GetNotifications actorの通知を新しい順に取得します
func (s *Service) GetNotifications(actor model.Actor, unreadOnly bool, limit int) ([]*model.Notification, error) {
	if limit <= 0 || limit > MaxListLimit {
		limit = MaxListLimit
	}
	return s.repo.GetNotifications(repository.NotificationsQuery{
		UserID:     actor.ID,
		UnreadOnly: unreadOnly,
		Limit:      limit,
	})
}

// MarkAsRead actorの通知を既読にします
//
// actorの通知でない場合、ErrNotFoundを返します。
func (s *Service) MarkAsRead(actor model.Actor, notificationID uuid.UUID) error {
	err := s.repo.MarkNotificationAsRead(notificationID, actor.ID)
	switch {
	case errors.Is(err, repository.ErrNotFound), errors.Is(err, repository.ErrNilID):
		return ErrNotFound
	case err != nil:
		return err
	}
	return nil
}
