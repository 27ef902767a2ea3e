// Package server runs the preview HTTP server.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/stolasapp/elemental/internal/config"
)

// Server serves one handler on a bound listener until its context ends.
type Server struct {
	httpServer      *http.Server
	listener        net.Listener
	logger          *slog.Logger
	shutdownTimeout time.Duration
}

// New binds cfg.Address and prepares handler to be served with the
// configured timeouts. Use "127.0.0.1:0" for a random available port.
func New(
	ctx context.Context,
	cfg config.Preview,
	handler http.Handler,
	logger *slog.Logger,
) (*Server, error) {
	var lc net.ListenConfig
	listener, err := lc.Listen(ctx, "tcp", cfg.Address)
	if err != nil {
		return nil, fmt.Errorf("failed to listen on %s: %w", cfg.Address, err)
	}
	return &Server{
		httpServer: &http.Server{
			Handler:           handler,
			ReadHeaderTimeout: cfg.ReadTimeout,
			ReadTimeout:       cfg.ReadTimeout,
			WriteTimeout:      cfg.WriteTimeout,
			ErrorLog:          slog.NewLogLogger(logger.Handler(), slog.LevelWarn),
		},
		listener:        listener,
		logger:          logger,
		shutdownTimeout: cfg.ShutdownTimeout,
	}, nil
}

// Addr returns the bound address.
func (s *Server) Addr() net.Addr { return s.listener.Addr() }

// Run serves requests until ctx is canceled, then stops accepting new ones
// and waits up to the shutdown timeout for in-flight renders. A stopped
// server cannot be run again.
func (s *Server) Run(ctx context.Context) error {
	grp, ctx := errgroup.WithContext(ctx)

	grp.Go(func() error {
		s.logger.InfoContext(ctx, "preview server listening",
			slog.String("address", s.Addr().String()))
		err := s.httpServer.Serve(s.listener)
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	})

	grp.Go(func() error {
		<-ctx.Done()
		s.logger.DebugContext(ctx, "shutting down preview server",
			slog.String("address", s.Addr().String()),
			slog.Duration("timeout", s.shutdownTimeout))
		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.shutdownTimeout)
		defer cancel()
		return s.httpServer.Shutdown(shutdownCtx)
	})

	return grp.Wait()
}
