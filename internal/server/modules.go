package server

import (
	"context"
	"fmt"
	"log/slog"
)

// bootModules runs the two module phases: every module registers its
// services first, then each one mounts its routes under /<name>.
func (s *Server) bootModules(ctx context.Context) error {
	for _, m := range s.modules {
		if err := m.Register(s.Injector); err != nil {
			return fmt.Errorf("register module %s: %w", m.Name(), err)
		}
	}

	for _, m := range s.modules {
		group := s.E.Group("/" + m.Name())
		if err := m.Boot(ctx, group, s.Injector); err != nil {
			return fmt.Errorf("boot module %s: %w", m.Name(), err)
		}
		slog.Debug("module booted", "module", m.Name())
	}
	return nil
}

// shutdownModules stops modules in reverse boot order.
func (s *Server) shutdownModules(ctx context.Context) {
	for i := len(s.modules) - 1; i >= 0; i-- {
		m := s.modules[i]
		if err := m.Shutdown(ctx); err != nil {
			slog.Error("module shutdown failed", "module", m.Name(), "error", err)
		}
	}
}
