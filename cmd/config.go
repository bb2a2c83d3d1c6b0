package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/spf13/viper"
	gormMySQL "gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/traPtitech/traQ-moderation/router"
	"github.com/traPtitech/traQ-moderation/router/session"
	"github.com/traPtitech/traQ-moderation/utils/storage"
)

// Config 設定
type Config struct {
	// DevMode 開発モードかどうか (default: false)
	DevMode bool `mapstructure:"dev" yaml:"dev"`

	// Origin サーバーオリジン (default: http://localhost:3000)
	Origin string `mapstructure:"origin" yaml:"origin"`
	// Port サーバーポート番号 (default: 3000)
	Port int `mapstructure:"port" yaml:"port"`
	// AllowOrigins CORSで許可するオリジン
	AllowOrigins []string `mapstructure:"allowOrigins" yaml:"allowOrigins"`
	// ShutdownTimeout シャットダウン待機時間(秒) (default: 10)
	ShutdownTimeout int `mapstructure:"shutdownTimeout" yaml:"shutdownTimeout"`

	// AccessLog HTTPアクセスログ設定
	AccessLog struct {
		// Enabled 有効かどうか (default: true)
		Enabled bool `mapstructure:"enabled" yaml:"enabled"`
	} `mapstructure:"accessLog" yaml:"accessLog"`

	// Session セッション設定
	Session struct {
		// Secret Cookie署名鍵。空の場合は起動毎に生成した一時鍵を使用
		Secret string `mapstructure:"secret" yaml:"secret"`
		// MaxAge セッション有効期間(秒) (default: 1209600)
		MaxAge int `mapstructure:"maxAge" yaml:"maxAge"`
		// Secure Secure属性を付与するかどうか (default: false)
		Secure bool `mapstructure:"secure" yaml:"secure"`
	} `mapstructure:"session" yaml:"session"`

	// Database データベース設定
	Database struct {
		// Type データベースタイプ (default: mysql)
		// 	mysql: MySQL/MariaDB
		// 	postgres: PostgreSQL
		// 	sqlite: SQLite
		Type string `mapstructure:"type" yaml:"type"`
	} `mapstructure:"database" yaml:"database"`

	// MariaDB データベース接続設定
	MariaDB struct {
		// Host ホスト名 (default: 127.0.0.1)
		Host string `mapstructure:"host" yaml:"host"`
		// Port ポート番号 (default: 3306)
		Port int `mapstructure:"port" yaml:"port"`
		// Username ユーザー名 (default: root)
		Username string `mapstructure:"username" yaml:"username"`
		// Password パスワード (default: password)
		Password string `mapstructure:"password" yaml:"password"`
		// Database データベース名 (default: traq_moderation)
		Database string `mapstructure:"database" yaml:"database"`
		// Connection コネクション設定
		Connection connectionConfig `mapstructure:"connection" yaml:"connection"`
	} `mapstructure:"mariadb" yaml:"mariadb"`

	// Postgres PostgreSQL接続設定
	Postgres struct {
		// Host ホスト名 (default: 127.0.0.1)
		Host string `mapstructure:"host" yaml:"host"`
		// Port ポート番号 (default: 5432)
		Port int `mapstructure:"port" yaml:"port"`
		// Username ユーザー名 (default: postgres)
		Username string `mapstructure:"username" yaml:"username"`
		// Password パスワード (default: password)
		Password string `mapstructure:"password" yaml:"password"`
		// Database データベース名 (default: traq_moderation)
		Database string `mapstructure:"database" yaml:"database"`
		// SSLMode sslmode (default: disable)
		SSLMode string `mapstructure:"sslMode" yaml:"sslMode"`
		// Connection コネクション設定
		Connection connectionConfig `mapstructure:"connection" yaml:"connection"`
	} `mapstructure:"postgres" yaml:"postgres"`

	// SQLite SQLite設定
	SQLite struct {
		// File データベースファイルパス (default: ./moderation.db)
		File string `mapstructure:"file" yaml:"file"`
	} `mapstructure:"sqlite" yaml:"sqlite"`

	// Storage ファイルストレージ設定
	Storage struct {
		// Type ストレージタイプ (default: local)
		// 	local: ローカルストレージ
		// 	s3: S3互換オブジェクトストレージ
		// 	memory: メモリストレージ
		Type string `mapstructure:"type" yaml:"type"`

		// Local ローカルストレージ設定
		Local struct {
			// Dir 保存先ディレクトリ (default: ./storage)
			Dir string `mapstructure:"dir" yaml:"dir"`
		} `mapstructure:"local" yaml:"local"`

		// S3 S3オブジェクトストレージ設定
		S3 struct {
			// Bucket バケット名
			Bucket string `mapstructure:"bucket" yaml:"bucket"`
			// Region リージョン
			Region string `mapstructure:"region" yaml:"region"`
			// Endpoint エンドポイント
			Endpoint string `mapstructure:"endpoint" yaml:"endpoint"`
			// AccessKey アクセスキー
			AccessKey string `mapstructure:"accessKey" yaml:"accessKey"`
			// SecretKey シークレットキー
			SecretKey string `mapstructure:"secretKey" yaml:"secretKey"`
			// ForcePathStyle パス形式URLを強制するかどうか
			ForcePathStyle bool `mapstructure:"forcePathStyle" yaml:"forcePathStyle"`
		} `mapstructure:"s3" yaml:"s3"`
	} `mapstructure:"storage" yaml:"storage"`
}

type connectionConfig struct {
	// MaxOpen 最大オープン接続数. 0は無制限 (default: 0)
	MaxOpen int `mapstructure:"maxOpen" yaml:"maxOpen"`
	// MaxIdle 最大アイドル接続数 (default: 2)
	MaxIdle int `mapstructure:"maxIdle" yaml:"maxIdle"`
	// LifeTime 待機接続維持時間. 0は無制限 (default: 0)
	LifeTime int `mapstructure:"lifetime" yaml:"lifetime"`
}

func setDefaultConfigs() {
	viper.SetDefault("dev", false)
	viper.SetDefault("origin", "http://localhost:3000")
	viper.SetDefault("port", 3000)
	viper.SetDefault("allowOrigins", []string{})
	viper.SetDefault("shutdownTimeout", 10)

	viper.SetDefault("accessLog.enabled", true)

	viper.SetDefault("session.secret", "")
	viper.SetDefault("session.maxAge", session.DefaultMaxAge)
	viper.SetDefault("session.secure", false)

	viper.SetDefault("database.type", "mysql")

	viper.SetDefault("mariadb.host", "127.0.0.1")
	viper.SetDefault("mariadb.port", 3306)
	viper.SetDefault("mariadb.username", "root")
	viper.SetDefault("mariadb.password", "password")
	viper.SetDefault("mariadb.database", "traq_moderation")
	viper.SetDefault("mariadb.connection.maxOpen", 0)
	viper.SetDefault("mariadb.connection.maxIdle", 2)
	viper.SetDefault("mariadb.connection.lifetime", 0)

	viper.SetDefault("postgres.host", "127.0.0.1")
	viper.SetDefault("postgres.port", 5432)
	viper.SetDefault("postgres.username", "postgres")
	viper.SetDefault("postgres.password", "password")
	viper.SetDefault("postgres.database", "traq_moderation")
	viper.SetDefault("postgres.sslMode", "disable")
	viper.SetDefault("postgres.connection.maxOpen", 0)
	viper.SetDefault("postgres.connection.maxIdle", 2)
	viper.SetDefault("postgres.connection.lifetime", 0)

	viper.SetDefault("sqlite.file", "./moderation.db")

	viper.SetDefault("storage.type", "local")
	viper.SetDefault("storage.local.dir", "./storage")
	viper.SetDefault("storage.s3.bucket", "")
	viper.SetDefault("storage.s3.region", "")
	viper.SetDefault("storage.s3.endpoint", "")
	viper.SetDefault("storage.s3.accessKey", "")
	viper.SetDefault("storage.s3.secretKey", "")
	viper.SetDefault("storage.s3.forcePathStyle", false)
}

func (c Config) getFileStorage() (storage.FileStorage, error) {
	switch c.Storage.Type {
	case "s3":
		return storage.NewS3FileStorage(
			c.Storage.S3.Bucket,
			c.Storage.S3.Region,
			c.Storage.S3.Endpoint,
			c.Storage.S3.AccessKey,
			c.Storage.S3.SecretKey,
			c.Storage.S3.ForcePathStyle,
		)
	case "memory":
		return storage.NewInMemoryFileStorage(), nil
	case "local", "":
		return storage.NewLocalFileStorage(c.Storage.Local.Dir)
	default:
		return nil, fmt.Errorf("unknown storage type: %s", c.Storage.Type)
	}
}

func (c Config) getDatabase() (*gorm.DB, error) {
	config := &gorm.Config{
		Logger: logger.Discard,
		NowFunc: func() time.Time {
			return time.Now().Truncate(time.Microsecond)
		},
	}

	var (
		dialector gorm.Dialector
		conn      connectionConfig
	)
	switch strings.ToLower(c.Database.Type) {
	case "mysql", "mariadb", "":
		mc := mysql.NewConfig()
		mc.Net = "tcp"
		mc.Addr = fmt.Sprintf("%s:%d", c.MariaDB.Host, c.MariaDB.Port)
		mc.User = c.MariaDB.Username
		mc.Passwd = c.MariaDB.Password
		mc.DBName = c.MariaDB.Database
		mc.Collation = "utf8mb4_general_ci"
		mc.ParseTime = true
		mc.Loc = time.UTC
		mc.Params = map[string]string{"charset": "utf8mb4"}
		dialector = gormMySQL.New(gormMySQL.Config{DSNConfig: mc})
		conn = c.MariaDB.Connection
	case "postgres", "postgresql":
		dialector = postgres.Open(fmt.Sprintf(
			"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s TimeZone=UTC",
			c.Postgres.Host,
			c.Postgres.Port,
			c.Postgres.Username,
			c.Postgres.Password,
			c.Postgres.Database,
			c.Postgres.SSLMode,
		))
		conn = c.Postgres.Connection
	case "sqlite", "sqlite3":
		dialector = sqlite.Open(fmt.Sprintf("file:%s?_foreign_keys=on&_busy_timeout=5000", c.SQLite.File))
		// SQLiteは書き込みを直列化する
		conn = connectionConfig{MaxOpen: 1, MaxIdle: 1}
	default:
		return nil, fmt.Errorf("unknown database type: %s", c.Database.Type)
	}

	engine, err := gorm.Open(dialector, config)
	if err != nil {
		return nil, err
	}
	db, err := engine.DB()
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(conn.MaxOpen)
	db.SetMaxIdleConns(conn.MaxIdle)
	db.SetConnMaxLifetime(time.Duration(conn.LifeTime) * time.Second)
	return engine, nil
}

func provideRouterConfig(c *Config) *router.Config {
	return &router.Config{
		Development:   c.DevMode,
		Version:       Version,
		Revision:      Revision,
		AccessLogging: c.AccessLog.Enabled,
		AllowOrigins:  c.AllowOrigins,
		Session: session.Config{
			Secret: []byte(c.Session.Secret),
			MaxAge: c.Session.MaxAge,
			Secure: c.Session.Secure,
		},
	}
}
