package migration

import (
	"github.com/go-gormigrate/gormigrate/v2"

	"github.com/traPtitech/traQ-moderation/model"
)

// Migrations 全てのデータベースマイグレーション
//
// 新たなマイグレーションを行う場合は、この配列の末尾に必ず追加すること
func Migrations() []*gormigrate.Migration {
	return []*gormigrate.Migration{
		v1(), // 未処理キュー用の(status, created_at)複合インデックス追加
		v2(), // 通知の(user_id, created_at)複合インデックス追加
	}
}

// AllTables 最新のスキーマの全テーブルモデル
//
// 最新のスキーマの全テーブルのモデル構造体を記述すること
func AllTables() []interface{} {
	return []interface{}{
		&model.Appeal{},
		&model.Report{},
		&model.ActionLog{},
		&model.Notification{},
		&model.Comment{},
		&model.SharedPost{},
		&model.Post{},
		&model.User{},
	}
}
