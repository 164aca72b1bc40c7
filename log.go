package menunav

import (
	"log/slog"
	"os"
)

// logLevel controls navigation debug logging. Default is LevelInfo, which
// suppresses Debug records; SetVerbose(true) lowers it to LevelDebug.
var logLevel = new(slog.LevelVar)

// SetVerbose enables or disables debug logging for navigation.
// Call this from main() after parsing flags.
func SetVerbose(v bool) {
	if v {
		logLevel.Set(slog.LevelDebug)
	} else {
		logLevel.Set(slog.LevelInfo)
	}
}

// navLogger is shared by every Navigator unless replaced with WithLogger.
var navLogger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))
