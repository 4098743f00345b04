package app

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
)

// Run listens on the configured address and serves until ctx is cancelled.
func (a *App) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", a.config.Addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", a.config.Addr, err)
	}
	return a.Serve(ctx, ln)
}

// Serve accepts connections on ln until ctx is cancelled, then shuts the
// server down gracefully within the configured timeout.
func (a *App) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:     a.handler,
		BaseContext: func(net.Listener) context.Context { return a.ctx },
	}

	serveErr := make(chan error, 1)
	a.logger.Info("🚀 Server starting", "address", ln.Addr().String())
	go func() {
		err := srv.Serve(ln)
		// ErrServerClosed is the normal result of a graceful shutdown.
		if errors.Is(err, http.ErrServerClosed) {
			err = nil
		}
		serveErr <- err
	}()

	select {
	case err := <-serveErr:
		if err != nil {
			a.logger.Error("Server failed unexpectedly", "error", err)
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	if err := a.shutdown(srv); err != nil {
		return err
	}
	return <-serveErr
}

func (a *App) shutdown(srv *http.Server) error {
	ctx, cancel := context.WithTimeout(context.Background(), a.config.ShutdownTimeout)
	defer cancel()

	a.logger.Info("🏁 Shutting down server...")
	a.live.Close()
	if err := srv.Shutdown(ctx); err != nil {
		a.logger.Error("Server shutdown failed", "error", err)
		return err
	}

	a.logger.Debug("Server shut down gracefully.")
	return nil
}
