package migration

import (
	"github.com/go-gormigrate/gormigrate/v2"
	"gorm.io/gorm"
)

// v2 通知の(user_id, created_at)複合インデックス追加
func v2() *gormigrate.Migration {
	return &gormigrate.Migration{
		ID: "2",
		Migrate: func(db *gorm.DB) error {
			if db.Migrator().HasIndex(&v2Notification{}, "idx_notifications_user_id_created_at") {
				return nil
			}
			return db.Migrator().CreateIndex(&v2Notification{}, "idx_notifications_user_id_created_at")
		},
		Rollback: func(db *gorm.DB) error {
			return db.Migrator().DropIndex(&v2Notification{}, "idx_notifications_user_id_created_at")
		},
	}
}

type v2Notification struct {
	UserID    string `gorm:"type:char(36);not null;index:idx_notifications_user_id_created_at,priority:1"`
	CreatedAt int64  `gorm:"index:idx_notifications_user_id_created_at,priority:2"`
}

func (*v2Notification) TableName() string {
	return "notifications"
}
