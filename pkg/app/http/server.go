package http

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/chainsafe/wifi-whitelist/pkg/config"
)

const (
	defaultShutdownTimeout   = 30 * time.Second
	defaultReadHeaderTimeout = 10 * time.Second
)

// NewServer builds an *http.Server for handler using the configured address
// and timeouts.
func NewServer(handler http.Handler, cfg *config.ServerConfig) *http.Server {
	return &http.Server{
		Addr:              net.JoinHostPort(cfg.Host, strconv.Itoa(cfg.Port)),
		Handler:           handler,
		ReadTimeout:       cfg.ReadTimeout,
		ReadHeaderTimeout: defaultReadHeaderTimeout,
		WriteTimeout:      cfg.WriteTimeout,
		IdleTimeout:       cfg.IdleTimeout,
	}
}

// ServeAndWait binds the configured address, serves handler and blocks until
// either ctx is canceled or the server fails. A bind failure is returned
// immediately. Otherwise the server is shut down gracefully within
// cfg.ShutdownTimeout.
func ServeAndWait(ctx context.Context, handler http.Handler, logger *zap.Logger, cfg *config.ServerConfig) error {
	if handler == nil {
		return fmt.Errorf("nil handler")
	}
	if cfg == nil {
		return fmt.Errorf("nil server config")
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	srv := NewServer(handler, cfg)

	ln, err := net.Listen("tcp", srv.Addr)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", srv.Addr, err)
	}

	return serve(ctx, srv, ln, logger, cfg.ShutdownTimeout)
}

func serve(ctx context.Context, srv *http.Server, ln net.Listener, logger *zap.Logger, shutdownTimeout time.Duration) error {
	if shutdownTimeout <= 0 {
		shutdownTimeout = defaultShutdownTimeout
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("HTTP server listening", zap.String("address", ln.Addr().String()))
		err := srv.Serve(ln)
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
			return
		}
		errCh <- nil
	}()

	var runErr error
	select {
	case <-ctx.Done():
		logger.Info("Shutdown signal received")
	case runErr = <-errCh:
		if runErr != nil {
			logger.Error("HTTP server error", zap.Error(runErr))
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	logger.Info("Shutting down HTTP server", zap.Duration("timeout", shutdownTimeout))
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP server shutdown error", zap.Error(err))
		return fmt.Errorf("http shutdown: %w", err)
	}

	if runErr != nil {
		return fmt.Errorf("http server failed: %w", runErr)
	}

	logger.Info("HTTP server stopped")
	return nil
}
