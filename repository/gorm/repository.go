package gorm

import (
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/traPtitech/traQ-moderation/migration"
	"github.com/traPtitech/traQ-moderation/repository"
)

// Repository リポジトリ実装
type Repository struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewGormRepository リポジトリ実装を初期化して生成します
//
// doMigrationがtrueの場合、データベースのマイグレーションを実行します。
// スキーマが初期化された場合、initはtrueになります。
func NewGormRepository(db *gorm.DB, logger *zap.Logger, doMigration bool) (repo repository.Repository, init bool, err error) {
	r := &Repository{
		db:     db,
		logger: logger.Named("repository"),
	}
	if doMigration {
		if init, err = migration.Migrate(db); err != nil {
			return nil, false, err
		}
	}
	return r, init, nil
}

// Transaction implements Repository interface.
func (repo *Repository) Transaction(fn func(tx repository.Repository) error) error {
	return repo.db.Transaction(func(tx *gorm.DB) error {
		return fn(&Repository{db: tx, logger: repo.logger})
	})
}
