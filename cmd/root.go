package cmd

import (
	"errors"
	"log"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/traPtitech/traQ-moderation/logging"
)

const serviceName = "traq-moderation"

var (
	Version  string
	Revision string
)

var (
	// configFile 設定ファイルyamlのパス
	configFile string
	// c 設定
	c Config
)

// Execute コマンドを実行します
func Execute() error {
	cobra.OnInitialize(initConfig)

	// rootコマンドはダミー。コマンドとしては使用しない
	rootCommand := &cobra.Command{
		Use:           "traQ-moderation",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	rootCommand.AddCommand(
		confCommand(),
		healthcheckCommand(),
		migrateCommand(),
		serveCommand(),
		versionCommand(),
	)

	flags := rootCommand.PersistentFlags()
	flags.StringVarP(&configFile, "config", "c", "", "config file path")
	flags.Bool("dev", false, "development mode")
	bindPFlag(flags, "dev")

	return rootCommand.Execute()
}

func initConfig() {
	setDefaultConfigs()
	if len(configFile) > 0 {
		viper.SetConfigFile(configFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigName("config")
	}
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.SetEnvPrefix("TRAQ_MOD")
	viper.AutomaticEnv()
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			log.Fatalf("failed to read config file: %v", err)
		}
	}
	if err := viper.Unmarshal(&c); err != nil {
		log.Fatal(err)
	}
}

func getLogger() *zap.Logger {
	level := zapcore.InfoLevel
	if c.DevMode {
		level = zapcore.DebugLevel
	}
	logger, err := logging.CreateNewLogger(serviceName, Version, logging.Config{
		Level:       level,
		Development: c.DevMode,
	})
	if err != nil {
		log.Fatalf("failed to create logger: %v", err)
	}
	return logger
}

// getCLILogger サーバー以外のコマンド用ロガー
func getCLILogger() *zap.Logger {
	logger, err := logging.CreateNewLogger(serviceName, Version, logging.Config{
		Level:       zapcore.InfoLevel,
		Development: true,
	})
	if err != nil {
		log.Fatalf("failed to create logger: %v", err)
	}
	return logger
}

func bindPFlag(flags *pflag.FlagSet, key string, flag ...string) {
	if len(flag) == 0 {
		flag = []string{key}
	}
	if err := viper.BindPFlag(key, flags.Lookup(flag[0])); err != nil {
		panic(err)
	}
}
