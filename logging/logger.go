package logging

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// CreateNewLogger ロガーを生成します
func CreateNewLogger(serviceName, serviceVersion string, config Config) (*zap.Logger, error) {
	zc := config.zapConfig()
	if config.Development {
		return zc.Build()
	}
	return zc.Build(zap.WrapCore(func(c zapcore.Core) zapcore.Core {
		return newCore(c, driverConfig{ServiceName: serviceName, ServiceVersion: serviceVersion})
	}))
}
