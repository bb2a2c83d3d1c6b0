package cmd

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/traPtitech/traQ-moderation/migration"
	"github.com/traPtitech/traQ-moderation/utils/gormzap"
)

// migrateCommand データベースマイグレーションコマンド
func migrateCommand() *cobra.Command {
	var dropDB bool

	cmd := cobra.Command{
		Use:   "migrate",
		Short: "Execute database schema migration only",
		Run: func(_ *cobra.Command, _ []string) {
			logger := getCLILogger()
			defer logger.Sync()

			engine, err := c.getDatabase()
			if err != nil {
				logger.Fatal("failed to connect database", zap.Error(err))
			}
			engine.Logger = gormzap.New(logger.Named("gorm"))
			db, err := engine.DB()
			if err != nil {
				logger.Fatal("failed to get *sql.DB", zap.Error(err))
			}
			defer db.Close()

			if dropDB {
				logger.Info("Dropping all tables...")
				if err := migration.DropAll(engine); err != nil {
					logger.Fatal("failed to drop tables", zap.Error(err))
				}
				logger.Info("all tables were dropped")
			}
			logger.Info("Migration started")
			init, err := migration.Migrate(engine)
			if err != nil {
				logger.Fatal("failed to migrate", zap.Error(err))
			}
			logger.Info("Migration finished", zap.Bool("init", init))
		},
	}

	flags := cmd.Flags()
	flags.BoolVar(&dropDB, "reset", false, "whether to truncate database (drop all tables)")

	return &cmd
}
