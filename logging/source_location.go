package logging

import (
	"runtime"
	"strconv"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const sourceLocationKey = "logging.googleapis.com/sourceLocation"

// SourceLocation Stackdriver logging sourceLocation Field
func SourceLocation(pc uintptr, file string, line int, ok bool) zap.Field {
	return zap.Object(sourceLocationKey, newSourceLocation(pc, file, line, ok))
}

type sourceLocation struct {
	File     string `json:"file"`
	Line     string `json:"line"`
	Function string `json:"function"`
}

// MarshalLogObject implements zapcore.ObjectMarshaller interface.
func (l sourceLocation) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddString("file", l.File)
	enc.AddString("line", l.Line)
	enc.AddString("function", l.Function)
	return nil
}

func newSourceLocation(pc uintptr, file string, line int, ok bool) *sourceLocation {
	if !ok {
		return nil
	}

	loc := &sourceLocation{
		File: file,
		Line: strconv.Itoa(line),
	}
	if fn := runtime.FuncForPC(pc); fn != nil {
		loc.Function = fn.Name()
	}
	return loc
}
