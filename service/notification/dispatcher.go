//go:generate mockgen -source=$GOFILE -destination=mock_$GOPACKAGE/mock_$GOFILE

package notification

import (
	"github.com/gofrs/uuid"

	"github.com/traPtitech/traQ-moderation/repository"
	"github.com/traPtitech/traQ-moderation/utils/optional"
)

// Dispatcher ユーザー向け通知の送信者
type Dispatcher interface {
	// Notify ユーザーに通知を送ります
	//
	// repoには呼び出し元のトランザクション内のリポジトリを渡します。
	// messageはHTMLとして扱われます。
	Notify(repo repository.NotificationRepository, userID uuid.UUID, message, notificationType string, referenceID optional.Of[uuid.UUID]) error
}
