package logging

import (
	"go.uber.org/zap"
)

type zapLogger struct {
	sugar *zap.SugaredLogger
}

func (l *zapLogger) Printf(message string, args ...interface{}) {
	l.sugar.Infof(message, args...)
}

// NewDebugLogger returns a Logger backed by a zap development logger, for global
// debug output that is not tied to any particular test step.
func NewDebugLogger() Logger {
	z := zap.Must(zap.NewDevelopment(zap.AddCallerSkip(1)))
	return &zapLogger{sugar: z.Sugar()}
}
