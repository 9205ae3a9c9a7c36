package logger

import (
	"log/slog"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

var Log *slog.Logger

func init() {
	Configure("info")
}

// Configure sets the level of the process slog logger and of zerolog's
// global logger used inside the field package.
func Configure(level string) {
	slogLevel := slog.LevelInfo
	zeroLevel := zerolog.InfoLevel

	switch strings.ToLower(level) {
	case "debug":
		slogLevel, zeroLevel = slog.LevelDebug, zerolog.DebugLevel
	case "warn", "warning":
		slogLevel, zeroLevel = slog.LevelWarn, zerolog.WarnLevel
	case "error":
		slogLevel, zeroLevel = slog.LevelError, zerolog.ErrorLevel
	}

	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slogLevel,
	})
	Log = slog.New(handler)
	slog.SetDefault(Log)
	zerolog.SetGlobalLevel(zeroLevel)
}
