package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/nfrund/sevahub/internal/app"
)

const shutdownTimeout = 10 * time.Second

// Start runs the HTTP server until an interrupt or terminate signal, then
// shuts down gracefully.
func (s *Server) Start() error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := app.StartBackground(ctx, s.Deps); err != nil {
		return err
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("server starting", "addr", s.Cfg.GetAppAddr(), "api", s.Cfg.GetAPIBaseURL())
		if err := s.E.Start(s.Cfg.GetAppAddr()); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("server stopped: %w", err)
	case <-waitForShutdown():
	}

	slog.Info("shutting down")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()

	err := s.E.Shutdown(shutdownCtx)
	s.shutdownModules(shutdownCtx)
	cancel()
	if closeErr := s.Deps.Bridge.Close(); closeErr != nil {
		slog.Error("failed to close pubsub", "error", closeErr)
	}
	return err
}
