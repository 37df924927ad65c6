package logging

import (
	"fmt"
	"io"

	"github.com/mattn/go-isatty"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewLogger creates a logger writing to w with the specified parameters.
func NewLogger(params Parameters, w io.Writer) *zap.Logger {
	return zap.New(NewCore(params.Type, params.Level, w))
}

// NewCore creates a zap core based on the specified logger type and level.
func NewCore(loggerType LoggerType, level zapcore.Level, w io.Writer) zapcore.Core {
	ws := zapcore.Lock(zapcore.AddSync(w))
	switch loggerType {
	case LoggerConsole:
		ec := zap.NewDevelopmentEncoderConfig()
		if isTerminal(w) {
			ec.EncodeLevel = zapcore.CapitalColorLevelEncoder
		}
		return zapcore.NewCore(zapcore.NewConsoleEncoder(ec), ws, level)
	case LoggerJSON:
		ec := zap.NewProductionEncoderConfig()
		ec.EncodeTime = zapcore.ISO8601TimeEncoder
		return zapcore.NewCore(zapcore.NewJSONEncoder(ec), ws, level)
	default:
		panic(fmt.Sprintf("unsupported logger type %d", loggerType))
	}
}

func isTerminal(w io.Writer) bool {
	type fd interface{ Fd() uintptr }
	f, ok := w.(fd)
	return ok && isatty.IsTerminal(f.Fd())
}
