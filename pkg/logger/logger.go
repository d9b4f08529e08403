package logger

import (
	"log/slog"
	"os"
)

var log = slog.Default()

// Init configures the process logger. Production gets JSON lines, every
// other environment gets human-readable text with debug enabled.
func Init(environment string) {
	var handler slog.Handler
	if environment == "production" {
		handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo})
	} else {
		handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug})
	}
	log = slog.New(handler)
	slog.SetDefault(log)
}

func Info(msg string, args ...any) {
	log.Info(msg, normalize(args)...)
}

func Warn(msg string, args ...any) {
	log.Warn(msg, normalize(args)...)
}

func Error(msg string, args ...any) {
	log.Error(msg, normalize(args)...)
}

// Fatal logs at error level and exits.
func Fatal(msg string, args ...any) {
	log.Error(msg, normalize(args)...)
	os.Exit(1)
}

// normalize tolerates bare error/values mixed into key-value pairs so call
// sites can do Error("failed to X", err) as well as Info("x", "key", v).
func normalize(args []any) []any {
	out := make([]any, 0, len(args)+2)
	for i := 0; i < len(args); {
		if err, ok := args[i].(error); ok {
			out = append(out, "error", err.Error())
			i++
			continue
		}
		if key, ok := args[i].(string); ok && i+1 < len(args) {
			out = append(out, key, args[i+1])
			i += 2
			continue
		}
		out = append(out, "detail", args[i])
		i++
	}
	return out
}
