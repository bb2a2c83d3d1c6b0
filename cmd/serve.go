package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/leandro-lugaresi/hub"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/traPtitech/traQ-moderation/repository"
	gormRepo "github.com/traPtitech/traQ-moderation/repository/gorm"
	"github.com/traPtitech/traQ-moderation/service"
	"github.com/traPtitech/traQ-moderation/service/rbac/role"
	"github.com/traPtitech/traQ-moderation/utils/gormzap"
	"github.com/traPtitech/traQ-moderation/utils/random"
)

// serveCommand サーバー起動コマンド
func serveCommand() *cobra.Command {
	var (
		initAdmin    string
		initDataFile string
	)

	cmd := cobra.Command{
		Use:   "serve",
		Short: "Serve traQ moderation API",
		Run: func(_ *cobra.Command, _ []string) {
			// Logger
			logger := getLogger()
			defer logger.Sync()

			logger.Info(fmt.Sprintf("traQ-moderation %s (revision %s)", Version, Revision))

			// Message Hub
			hub := hub.New()

			// Database
			logger.Info("connecting database...")
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
			logger.Info("database connection was established")

			// FileStorage
			logger.Info("checking file storage...")
			fs, err := c.getFileStorage()
			if err != nil {
				logger.Fatal("failed to setup file storage", zap.Error(err))
			}
			logger.Info("file storage is ok")

			// Repository
			logger.Info("setting up repository...")
			repo, init, err := gormRepo.NewGormRepository(engine, logger, true)
			if err != nil {
				logger.Fatal("failed to initialize repository", zap.Error(err))
			}
			logger.Info("repository was set up")

			// Session
			if len(c.Session.Secret) == 0 {
				// 一時鍵を発行
				c.Session.Secret = random.SecureAlphaNumeric(64)
				logger.Warn("a temporary session secret was generated. Sessions are valid only during this running.")
			}

			// サーバー作成
			server, err := newServer(hub, repo, fs, logger, &c)
			if err != nil {
				logger.Fatal("failed to create server", zap.Error(err))
			}

			// 初期化
			if init {
				logger.Info("data initializing...")

				// 管理者ユーザーの作成
				if len(initAdmin) > 0 {
					u, err := repo.CreateUser(repository.CreateUserArgs{Name: initAdmin, Role: role.Admin})
					if err != nil {
						logger.Fatal("failed to init admin user", zap.Error(err))
					}
					logger.Info("admin user was created", zap.String("name", u.Name), zap.Stringer("uid", u.ID))
				}

				// 初期ユーザー投入
				if len(initDataFile) > 0 {
					if err := initData(repo, initDataFile, logger); err != nil {
						logger.Fatal("failed to init data", zap.Error(err))
					}
				}

				logger.Info("data initialization finished")
			}

			go func() {
				if err := server.Start(fmt.Sprintf(":%d", c.Port)); err != nil && !errors.Is(err, http.ErrServerClosed) {
					logger.Error("server error", zap.Error(err))
				}
				logger.Info("shutting down the server")
			}()

			logger.Info("traQ-moderation started")
			waitSIGINT()
			logger.Info("traQ-moderation shutting down...")

			ctx, cancel := context.WithTimeout(context.Background(), time.Duration(c.ShutdownTimeout)*time.Second)
			defer cancel()
			if err := server.Shutdown(ctx); err != nil {
				logger.Warn("abnormal shutdown", zap.Error(err))
			}
			logger.Info("traQ-moderation shutdown")
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&initAdmin, "init-admin", "traq", "name of the admin user created on the first start (empty to skip)")
	flags.StringVar(&initDataFile, "init-data", "", "yaml file of users inserted on the first start")

	return &cmd
}

// Server APIサーバー
type Server struct {
	L      *zap.Logger
	SS     *service.Services
	Router *echo.Echo
	Hub    *hub.Hub
}

// Start サーバーを起動します
func (s *Server) Start(address string) error {
	return s.Router.Start(address)
}

// Shutdown サーバーを停止します
func (s *Server) Shutdown(ctx context.Context) error {
	eg, ctx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		err := s.Router.Shutdown(ctx)
		s.L.Info("Router shutdown")
		return err
	})
	eg.Go(func() error {
		s.Hub.Close()
		s.L.Info("Hub shutdown")
		return nil
	})
	return eg.Wait()
}

func waitSIGINT() {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
}
