package main

import (
	"context"
	"log/slog"
	"os"

	"internhub/internal/app/bootstrap"
)

// API process entrypoint.
// Data flow:
// 1) Load config.
// 2) Build app wiring (ports + adapters + use cases).
// 3) Start HTTP server.
func main() {
	app, err := bootstrap.BuildAPI()
	if err != nil {
		slog.Error("api bootstrap failed", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := app.Close(); err != nil {
			slog.Error("api shutdown cleanup failed", "error", err)
		}
	}()

	if err := app.Run(context.Background()); err != nil {
		slog.Error("api server stopped", "error", err)
		os.Exit(1)
	}
}
