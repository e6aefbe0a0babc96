package logging

import (
	"io"
	"log/slog"
	"os"
)

// Setup builds the application logger: JSON lines to stdout, or to the
// configured log file when one is set. The returned logger is also
// installed as the slog default.
func Setup(level, file string) (*slog.Logger, error) {
	var out io.Writer = os.Stdout
	if file != "" {
		f, err := os.OpenFile(file, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, err
		}
		out = f
	}

	log := slog.New(slog.NewJSONHandler(out, &slog.HandlerOptions{
		Level: ParseLevel(level),
	})).With(slog.String("app", "chairman"))

	slog.SetDefault(log)
	return log, nil
}

func ParseLevel(level string) slog.Level {
	switch level {
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
