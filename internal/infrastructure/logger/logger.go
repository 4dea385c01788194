package logger

import (
	"log/slog"
	"os"

	ports "prreview-service/internal/domain/ports/output"
)

const (
	envDev  = "dev"
	envTest = "test"
	envProd = "prod"
)

type Logger struct {
	l *slog.Logger
}

var _ ports.Logger = (*Logger)(nil)

// New builds a logger for the given environment: text/debug for dev and test,
// JSON/info for everything else.
func New(env string) *Logger {
	var handler slog.Handler
	switch env {
	case envDev, envTest:
		handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug})
	default:
		handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo})
	}
	return &Logger{l: slog.New(handler)}
}

func (lg *Logger) Info(msg string, args ...any)  { lg.l.Info(msg, args...) }
func (lg *Logger) Debug(msg string, args ...any) { lg.l.Debug(msg, args...) }
func (lg *Logger) Warn(msg string, args ...any)  { lg.l.Warn(msg, args...) }
func (lg *Logger) Error(msg string, args ...any) { lg.l.Error(msg, args...) }

func (lg *Logger) With(args ...any) ports.Logger {
	return &Logger{l: lg.l.With(args...)}
}
