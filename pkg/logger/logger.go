package logger

import (
	"log/slog"
	"os"
	"sync"
)

var (
	log  *slog.Logger
	once sync.Once
)

// Init configures the global logger. Production gets JSON output,
// everything else a human-readable text handler with debug enabled.
func Init(environment string) {
	once.Do(func() {
		var handler slog.Handler

		if environment == "production" {
			handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level: slog.LevelInfo,
			})
		} else {
			handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
				Level: slog.LevelDebug,
			})
		}

		log = slog.New(handler)
	})
}

func instance() *slog.Logger {
	if log == nil {
		Init("development")
	}
	return log
}

func Debug(msg string, args ...any) {
	instance().Debug(msg, normalize(args)...)
}

func Info(msg string, args ...any) {
	instance().Info(msg, normalize(args)...)
}

func Warn(msg string, args ...any) {
	instance().Warn(msg, normalize(args)...)
}

func Error(msg string, args ...any) {
	instance().Error(msg, normalize(args)...)
}

// Fatal logs at error level and exits the process.
func Fatal(msg string, args ...any) {
	instance().Error(msg, normalize(args)...)
	os.Exit(1)
}

// normalize lets callers pass a bare error (or any odd trailing value)
// instead of a key/value pair.
func normalize(args []any) []any {
	if len(args) == 1 {
		if err, ok := args[0].(error); ok {
			return []any{"error", err}
		}
		return []any{"detail", args[0]}
	}
	if len(args)%2 != 0 {
		return append(args[:len(args)-1:len(args)-1], "detail", args[len(args)-1])
	}
	return args
}
