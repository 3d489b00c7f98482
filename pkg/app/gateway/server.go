// Package gateway implements app.Runner for the Mini App gateway process.
package gateway

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	apphttp "github.com/fineai/miniapp-gateway/pkg/app/http"
	"github.com/fineai/miniapp-gateway/pkg/backend"
	"github.com/fineai/miniapp-gateway/pkg/config"
	launchservice "github.com/fineai/miniapp-gateway/pkg/launch/service"
	"github.com/fineai/miniapp-gateway/pkg/launch/sessionstore"
	"github.com/fineai/miniapp-gateway/pkg/pgutil"
	pointsservice "github.com/fineai/miniapp-gateway/pkg/points/service"
	profileservice "github.com/fineai/miniapp-gateway/pkg/profile/service"
	"github.com/fineai/miniapp-gateway/pkg/telegram"
)

const eventStreamType = "text/event-stream"

// Server holds cfg to init the gateway.
type Server struct {
	cfg *config.GatewayConfig
}

// services are the business services mounted on the router.
type services struct {
	launch  launchservice.Service
	points  pointsservice.Service
	profile profileservice.Service
}

// NewServer initializes a new gateway server.
func NewServer(cfg *config.GatewayConfig) *Server {
	return &Server{cfg: cfg}
}

func (s *Server) Run() error {
	if s.cfg == nil {
		return fmt.Errorf("gateway config is nil")
	}
	cfg := s.cfg

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger, err := config.NewLogger(cfg.Logging)
	if err != nil {
		return fmt.Errorf("setup logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("Starting Mini App gateway",
		zap.String("host", cfg.Server.Host),
		zap.Int("port", cfg.Server.Port),
		zap.String("bot", cfg.Telegram.BotUsername),
		zap.Bool("allow_outside_host", cfg.Telegram.AllowOutsideHost),
	)

	db, err := pgutil.ConnectDB(ctx, &cfg.Database, logger)
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	backendClient, err := s.openBackend(logger)
	if err != nil {
		return err
	}

	svcs := services{
		launch: launchservice.NewLog(
			launchservice.NewService(sessionstore.NewStore(db), backendClient, cfg.Telegram.BotUsername, logger),
			logger,
		),
		points: pointsservice.NewLog(
			pointsservice.NewService(backendClient, time.Now, logger),
			logger,
		),
		profile: profileservice.NewLog(
			profileservice.NewService(backendClient, time.Now, logger),
			logger,
		),
	}

	router := s.newRouter(svcs, logger)

	return apphttp.ServeAndWait(ctx, router, logger, &cfg.Server)
}

func (s *Server) openBackend(logger *zap.Logger) (*backend.Client, error) {
	cfg := s.cfg.Backend

	tokens := backend.NewServiceTokenSource(cfg.JWTSecret, cfg.JWTIssuer, cfg.TokenTTL)
	client, err := backend.NewClient(cfg.BaseURL, tokens, &http.Client{Timeout: cfg.RequestTimeout}, logger)
	if err != nil {
		return nil, fmt.Errorf("create backend client: %w", err)
	}

	logger.Info("Backend API client ready",
		zap.String("base_url", cfg.BaseURL),
		zap.Duration("request_timeout", cfg.RequestTimeout),
	)
	return client, nil
}

func (s *Server) newRouter(svcs services, logger *zap.Logger) http.Handler {
	cfg := s.cfg

	r := chi.NewRouter()

	// Middleware stack
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	if len(cfg.Server.AllowedOrigins) > 0 {
		r.Use(apphttp.CORS(cfg.Server.AllowedOrigins))
	}
	r.Use(requestTimeout(cfg.Server.RequestTimeout))

	// Health check
	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})

	if cfg.Metrics.Enabled {
		r.Handle(cfg.Metrics.Path, promhttp.Handler())
		logger.Info("Metrics enabled", zap.String("path", cfg.Metrics.Path))
	}

	auth := telegram.NewAuthenticator(
		cfg.Telegram.BotToken,
		cfg.Telegram.InitDataTTL,
		cfg.Telegram.AllowOutsideHost,
		logger,
	)

	r.Route("/api/v1", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			r.Use(auth.Middleware)
			launchservice.RegisterRoutes(r, svcs.launch, logger)
			pointsservice.RegisterRoutes(r, svcs.points, cfg.Points.RefreshInterval, logger)
			profileservice.RegisterRoutes(r, svcs.profile, logger)
		})
	})

	return r
}

// requestTimeout applies chi's Timeout middleware to every request except
// event streams, which live as long as the client keeps them open.
func requestTimeout(d time.Duration) func(http.Handler) http.Handler {
	if d <= 0 {
		return func(next http.Handler) http.Handler { return next }
	}
	timeout := middleware.Timeout(d)
	return func(next http.Handler) http.Handler {
		withTimeout := timeout(next)
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if strings.Contains(r.Header.Get("Accept"), eventStreamType) {
				next.ServeHTTP(w, r)
				return
			}
			withTimeout.ServeHTTP(w, r)
		})
	}
}
