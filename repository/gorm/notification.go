package gorm

import (
	"github.com/gofrs/uuid"

	"github.com/traPtitech/traQ-moderation/model"
	"github.com/traPtitech/traQ-moderation/repository"
)

// CreateNotification implements NotificationRepository interface.
func (repo *Repository) CreateNotification(args repository.CreateNotificationArgs) (*model.Notification, error) {
	if args.UserID == uuid.Nil {
		return nil, repository.ErrNilID
	}
	n := &model.Notification{
		ID:          uuid.Must(uuid.NewV7()),
		UserID:      args.UserID,
		Message:     args.Message,
		Type:        args.Type,
		ReferenceID: args.ReferenceID,
		IsRead:      false,
	}
	if err := repo.db.Create(n).Error; err != nil {
		return nil, err
	}
	return n, nil
}

// GetNotifications implements NotificationRepository interface.
func (repo *Repository) GetNotifications(query repository.NotificationsQuery) ([]*model.Notification, error) {
	notifications := make([]*model.Notification, 0)
	if query.UserID == uuid.Nil {
		return notifications, nil
	}
	tx := repo.db.Where("user_id = ?", query.UserID)
	if query.UnreadOnly {
		tx = tx.Where("is_read = ?", false)
	}
	if query.Limit > 0 {
		tx = tx.Limit(query.Limit)
	}
	return notifications, tx.Order("created_at DESC").Order("id DESC").Find(&notifications).Error
}

// MarkNotificationAsRead implements NotificationRepository interface.
func (repo *Repository) MarkNotificationAsRead(id, userID uuid.UUID) error {
	if id == uuid.Nil || userID == uuid.Nil {
		return repository.ErrNilID
	}
	var n model.Notification
	if err := repo.db.Where("id = ? AND user_id = ?", id, userID).First(&n).Error; err != nil {
		return convertError(err)
	}
	if n.IsRead {
		return nil
	}
	return repo.db.Model(&n).Update("is_read", true).Error
}
