package logger

import (
	"log/slog"
	"os"
)

// Init installs a JSON slog handler as the process default.
func Init(service string) {
	hostname, _ := os.Hostname()

	h := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	})
	slog.SetDefault(slog.New(h).With(
		slog.String("service", service),
		slog.String("hostname", hostname),
	))
}
