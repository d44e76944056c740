package logging

import (
	"log/slog"
	"os"
)

// Setup installs the JSON stdout logger as the slog default. main swaps in
// the database-backed handler later, once a connection exists; until then
// boot-time logs go to stdout only.
func Setup() {
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})
	slog.SetDefault(slog.New(handler))
}
