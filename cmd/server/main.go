package main

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"pizzaria-be/internal/api"
	"pizzaria-be/internal/audit"
	"pizzaria-be/internal/config"
	"pizzaria-be/internal/db"
	"pizzaria-be/internal/invoice"
	"pizzaria-be/internal/logger"
	"pizzaria-be/internal/metrics"
	"pizzaria-be/internal/middleware"
	"pizzaria-be/internal/order"
	"pizzaria-be/internal/pricing"

	"go.uber.org/zap"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.L().Fatal("invalid configuration", zap.Error(err))
	}
	logger.Init(cfg.AppEnv)
	defer logger.Sync()

	database, err := db.NewDatabase(cfg)
	if err != nil {
		logger.L().Fatal("database unavailable", zap.Error(err))
	}
	defer database.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	handler, err := buildHandler(ctx, cfg, database)
	if err != nil {
		logger.L().Fatal("failed to wire server", zap.Error(err))
	}

	srv := &http.Server{
		Addr:              ":" + cfg.AppPort,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		logger.L().Info("🍕 order API running",
			zap.String("addr", "http://localhost:"+cfg.AppPort),
			zap.String("audit_dir", cfg.AuditDir),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.L().Fatal("server stopped", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logger.L().Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.L().Error("graceful shutdown failed", zap.Error(err))
	}
}

// buildHandler wires the order service and returns the full middleware
// chain.
func buildHandler(ctx context.Context, cfg *config.Config, database *sql.DB) (http.Handler, error) {
	auditLog, err := audit.New(cfg.AuditDir)
	if err != nil {
		return nil, err
	}

	repo := order.NewRepository(database)
	emitter := invoice.NewEmitter(repo, cfg.InvoiceDelay)
	svc := order.NewService(repo, pricing.DefaultPriceBook(), auditLog, emitter)

	limiter := middleware.NewRateLimiter(cfg.InternalSecretKey)
	limiter.Start(ctx)

	return setupRouter(api.NewHandler(svc), limiter, metrics.NewRegistry(), cfg.CORSOrigins), nil
}

func setupRouter(h *api.Handler, limiter *middleware.RateLimiter, reg *metrics.Registry, origins []string) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})
	mux.HandleFunc("GET /metrics", reg.Handler())
	h.Routes(mux)

	var handler http.Handler = mux
	handler = limiter.Middleware(handler)
	handler = middleware.CORS(origins)(handler)
	handler = reg.Middleware(handler)
	handler = logger.LoggingMiddleware(handler)
	handler = logger.RequestIDMiddleware(handler)
	return handler
}
