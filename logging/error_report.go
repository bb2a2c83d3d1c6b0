package logging

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const contextKey = "context"

// ErrorReport Stackdriver Error Reporting context Field
func ErrorReport(pc uintptr, file string, line int, ok bool) zap.Field {
	loc := newSourceLocation(pc, file, line, ok)
	if loc == nil {
		return zap.Object(contextKey, (*reportContext)(nil))
	}
	return zap.Object(contextKey, &reportContext{ReportLocation: *loc})
}

type reportContext struct {
	ReportLocation sourceLocation `json:"reportLocation"`
}

// MarshalLogObject implements zapcore.ObjectMarshaller interface.
func (c reportContext) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	return enc.AddObject("reportLocation", zapcore.ObjectMarshalerFunc(func(enc zapcore.ObjectEncoder) error {
		enc.AddString("filePath", c.ReportLocation.File)
		enc.AddString("lineNumber", c.ReportLocation.Line)
		enc.AddString("functionName", c.ReportLocation.Function)
		return nil
	}))
}
