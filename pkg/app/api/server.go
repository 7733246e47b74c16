// Package api implements app.Runner for the API server process.
package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/chainsafe/wifi-whitelist/internal/metrics"
	apphttp "github.com/chainsafe/wifi-whitelist/pkg/app/http"
	"github.com/chainsafe/wifi-whitelist/pkg/config"
	"github.com/chainsafe/wifi-whitelist/pkg/dbutil"
	"github.com/chainsafe/wifi-whitelist/pkg/whitelist/service"
	"github.com/chainsafe/wifi-whitelist/pkg/whitelist/store"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

// Server holds cfg to init the api server.
type Server struct {
	cfg *config.Config
}

// NewServer initializes new api server.
func NewServer(cfg *config.Config) *Server {
	return &Server{cfg: cfg}
}

func (s *Server) Run() error {
	if s.cfg == nil {
		return fmt.Errorf("api server config is nil")
	}
	cfg := s.cfg

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger, err := config.NewLogger(cfg.Logging, "api-server")
	if err != nil {
		return fmt.Errorf("setup logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("Starting API server",
		zap.String("host", cfg.Server.Host),
		zap.Int("port", cfg.Server.Port),
	)

	db, err := dbutil.Connect(ctx, &cfg.Database)
	if err != nil {
		return fmt.Errorf("connect db: %w", err)
	}
	defer func() { _ = db.Close() }()

	logger.Info("Connected to database",
		zap.String("driver", cfg.Database.Driver),
		zap.String("database", cfg.Database.Database),
	)

	whitelistService := service.NewService(store.NewStore(db), logger)
	whitelistService = service.NewLog(service.NewMetrics(whitelistService, "http"), logger)

	router := s.setupRouter(whitelistService, logger)

	return apphttp.ServeAndWait(ctx, router, logger, &cfg.Server)
}

func (s *Server) setupRouter(whitelistService service.Service, logger *zap.Logger) chi.Router {
	r := chi.NewRouter()

	// Middleware stack
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	if s.cfg.Server.RequestTimeout > 0 {
		r.Use(middleware.Timeout(s.cfg.Server.RequestTimeout))
	}

	// Health check
	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})

	if s.cfg.Monitoring.Enabled {
		r.Handle(s.cfg.Monitoring.MetricsPath, metrics.Handler())
		logger.Info("Metrics endpoint enabled", zap.String("path", s.cfg.Monitoring.MetricsPath))
	}

	service.RegisterRoutes(r, whitelistService, logger)

	return r
}
