package logger

import (
	"log/slog"
	"os"
	"strings"
)

var Logger *slog.Logger

// InitLogger configures the global slog logger. Format and level follow the
// logging section of the application config ("json"/"text", "debug".."error").
func InitLogger(level, format string) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level: parseLevel(level),
	}

	var handler slog.Handler
	if strings.EqualFold(format, "text") {
		handler = slog.NewTextHandler(os.Stdout, opts)
	} else {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	}

	Logger = slog.New(handler)
	slog.SetDefault(Logger)

	Logger.Info("Logger initialized")

	return Logger
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// SafeInfo logs at info level without panicking when the global logger has
// not been initialized (e.g. in tests).
func SafeInfo(msg string, args ...any) {
	if Logger == nil {
		return
	}
	Logger.Info(msg, args...)
}

// SafeWarn logs at warn level, tolerating an uninitialized global logger.
func SafeWarn(msg string, args ...any) {
	if Logger == nil {
		return
	}
	Logger.Warn(msg, args...)
}

// SafeError logs at error level, tolerating an uninitialized global logger.
func SafeError(msg string, args ...any) {
	if Logger == nil {
		return
	}
	Logger.Error(msg, args...)
}
