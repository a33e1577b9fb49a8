package httperr

import (
	"log/slog"

	"go.uber.org/zap"
)

// ZapLogger adapts l to Logger. A nil l yields a nil Logger.
func ZapLogger(l *zap.Logger) Logger {
	if l == nil {
		return nil
	}
	return LoggerFunc(func(message string) { l.Warn(message) })
}

// SlogLogger adapts l to Logger. A nil l yields a nil Logger.
func SlogLogger(l *slog.Logger) Logger {
	if l == nil {
		return nil
	}
	return LoggerFunc(func(message string) { l.Warn(message) })
}
