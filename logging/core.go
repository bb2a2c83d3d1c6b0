package logging

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type driverConfig struct {
	ServiceName    string
	ServiceVersion string
}

// core Stackdriver Logging用のフィールドを付与するzapcore.Core
type core struct {
	zapcore.Core
	config driverConfig
}

func newCore(c zapcore.Core, config driverConfig) zapcore.Core {
	return &core{Core: c, config: config}
}

// With implements zapcore.Core interface.
func (c *core) With(fields []zap.Field) zapcore.Core {
	return &core{
		Core:   c.Core.With(fields),
		config: c.config,
	}
}

// Check implements zapcore.Core interface.
func (c *core) Check(ent zapcore.Entry, ce *zapcore.CheckedEntry) *zapcore.CheckedEntry {
	if c.Enabled(ent.Level) {
		return ce.AddCore(ent, c)
	}
	return ce
}

// Write implements zapcore.Core interface.
func (c *core) Write(ent zapcore.Entry, fields []zapcore.Field) error {
	if !hasField(fields, sourceLocationKey) && ent.Caller.Defined {
		fields = append(fields, SourceLocation(ent.Caller.PC, ent.Caller.File, ent.Caller.Line, true))
	}
	if !hasField(fields, serviceContextKey) {
		fields = append(fields, ServiceContext(c.config.ServiceName, c.config.ServiceVersion))
	}
	// Error Reportingに拾わせるためにエラー以上のみcontextを付与
	if zapcore.ErrorLevel.Enabled(ent.Level) && !hasField(fields, contextKey) && ent.Caller.Defined {
		fields = append(fields, ErrorReport(ent.Caller.PC, ent.Caller.File, ent.Caller.Line, true))
	}
	return c.Core.Write(ent, fields)
}

func hasField(fields []zapcore.Field, key string) bool {
	for i := range fields {
		if fields[i].Key == key {
			return true
		}
	}
	return false
}
