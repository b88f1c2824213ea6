package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/nfrund/sevahub/internal/config"
	"github.com/nfrund/sevahub/internal/logging"
	"github.com/nfrund/sevahub/internal/server"
	"github.com/spf13/afero"
)

func main() {
	cfg := config.New()
	logging.New(cfg.GetLogFormat(), cfg.GetLogLevel())

	// Create a new server instance.
	s, err := server.New(cfg, afero.NewOsFs())
	if err != nil {
		slog.Error("Failed to build server", "error", err)
		os.Exit(1)
	}

	// Register all application routes.
	if err := s.RegisterRoutes(context.Background()); err != nil {
		slog.Error("Failed to register routes", "error", err)
		os.Exit(1)
	}

	// Start the server.
	if err := s.Start(); err != nil {
		slog.Error("Server exited with error", "error", err)
		os.Exit(1)
	}
}
