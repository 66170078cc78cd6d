package cli

import (
	"log/slog"
	"os"

	slogmulti "github.com/samber/slog-multi"
	"github.com/urfave/cli/v3"
)

func logLevel(cmd *cli.Command) slog.Level {
	if cmd.Bool("debug") {
		return slog.LevelDebug
	}
	if cmd.Bool("verbose") {
		return slog.LevelInfo
	}
	return slog.LevelWarn
}

func newLogger(cmd *cli.Command) *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel(cmd),
	}))
}

// newServeLogger builds the server logger: text to stderr, and JSON to a file
// when one is configured. stdout stays untouched for the MCP protocol.
func newServeLogger(logFile string, level slog.Level) (*slog.Logger, func() error) {
	stderrHandler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})

	if logFile == "" {
		return slog.New(stderrHandler), func() error { return nil }
	}

	file, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
	if err != nil {
		logger := slog.New(stderrHandler)
		logger.Warn("failed to open log file, using stderr only",
			slog.String("file", logFile),
			slog.String("error", err.Error()),
		)
		return logger, func() error { return nil }
	}

	fileHandler := slog.NewJSONHandler(file, &slog.HandlerOptions{
		Level: level,
	})

	return slog.New(slogmulti.Fanout(stderrHandler, fileHandler)), file.Close
}
