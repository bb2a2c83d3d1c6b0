package repository

import (
	"github.com/gofrs/uuid"

	"github.com/traPtitech/traQ-moderation/model"
	"github.com/traPtitech/traQ-moderation/utils/optional"
)

// CreateNotificationArgs 通知作成引数
type CreateNotificationArgs struct {
	UserID      uuid.UUID
	Message     string
	Type        string
	ReferenceID optional.Of[uuid.UUID]
}

// NotificationsQuery 通知取得クエリ
type NotificationsQuery struct {
	UserID     uuid.UUID
	UnreadOnly bool
	Limit      int
}

// NotificationRepository 通知リポジトリ
type NotificationRepository interface {
	// CreateNotification 通知を作成します
	//
	// 成功した場合、通知とnilを返します。
	// UserIDにuuid.Nilを指定した場合、ErrNilIDを返します。
	// DBによるエラーを返すことがあります。
	CreateNotification(args CreateNotificationArgs) (*model.Notification, error)
	// GetNotifications 指定したユーザーの通知を新しい順に取得します
	//
	// 成功した場合、通知の配列とnilを返します。
	// DBによるエラーを返すことがあります。
	GetNotifications(query NotificationsQuery) ([]*model.Notification, error)
	// MarkNotificationAsRead 指定したユーザーの通知を既読にします
	//
	// 成功した場合、nilを返します。
	// 指定したユーザーの通知が存在しない場合、ErrNotFoundを返します。
	// 引数にuuid.Nilを指定した場合、ErrNilIDを返します。
	// DBによるエラーを返すことがあります。
	MarkNotificationAsRead(id, userID uuid.UUID) error
}
