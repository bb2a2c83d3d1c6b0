package migration

import (
	"github.com/go-gormigrate/gormigrate/v2"
	"gorm.io/gorm"
)

// v1 未処理キュー用の(status, created_at)複合インデックス追加
func v1() *gormigrate.Migration {
	type indexSpec struct {
		model any
		name  string
	}
	indexes := []indexSpec{
		{&v1Report{}, "idx_reports_status_created_at"},
		{&v1Appeal{}, "idx_appeals_status_created_at"},
	}
	return &gormigrate.Migration{
		ID: "1",
		Migrate: func(db *gorm.DB) error {
			for _, idx := range indexes {
				if db.Migrator().HasIndex(idx.model, idx.name) {
					continue
				}
				if err := db.Migrator().CreateIndex(idx.model, idx.name); err != nil {
					return err
				}
			}
			return nil
		},
		Rollback: func(db *gorm.DB) error {
			for _, idx := range indexes {
				if err := db.Migrator().DropIndex(idx.model, idx.name); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

type v1Report struct {
	Status    string `gorm:"type:varchar(30);not null;index:idx_reports_status_created_at,priority:1"`
	CreatedAt int64  `gorm:"index:idx_reports_status_created_at,priority:2"`
}

func (*v1Report) TableName() string {
	return "reports"
}

type v1Appeal struct {
	Status    string `gorm:"type:varchar(30);not null;index:idx_appeals_status_created_at,priority:1"`
	CreatedAt int64  `gorm:"index:idx_appeals_status_created_at,priority:2"`
}

func (*v1Appeal) TableName() string {
	return "appeals"
}
