package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/lmittmann/tint"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/worklink-app/worklink/config"
	"github.com/worklink-app/worklink/internal/email"
	"github.com/worklink-app/worklink/internal/health"
	"github.com/worklink-app/worklink/internal/infrastructure/postgres"
	ctxlog "github.com/worklink-app/worklink/internal/log"
	"github.com/worklink-app/worklink/internal/metrics"
	httptransport "github.com/worklink-app/worklink/internal/transport/http"
	"github.com/worklink-app/worklink/internal/transport/http/handler"
	"github.com/worklink-app/worklink/internal/usecase"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	logger := newLogger(cfg.Env, cfg.SlogLevel())

	if cfg.Env != "local" {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	pool, err := postgres.NewPool(ctx, cfg.DatabaseURL)
	if err != nil {
		stop()
		log.Fatalf("db: %v", err)
	}
	defer pool.Close()

	accountRepo := postgres.NewAccountRepository(pool)
	sessionRepo := postgres.NewSessionRepository(pool)
	inviteRepo := postgres.NewInviteRepository(pool)
	profileRepo := postgres.NewProfileRepository(pool)

	emailSender := email.NewSender(cfg.Env, cfg.ResendAPIKey, cfg.ResendFrom, logger)

	// Auth
	authUsecase := usecase.NewAuthUsecase(accountRepo, sessionRepo, inviteRepo, cfg.TokenDuration(), cfg.BcryptCost)
	authHandler := handler.NewAuthHandler(authUsecase, logger)

	// Authorization facts + account info
	authzUsecase := usecase.NewAuthzUsecase(accountRepo, profileRepo)
	accountHandler := handler.NewAccountHandler(authzUsecase, logger)

	// Invites
	inviteUsecase := usecase.NewInviteUsecase(accountRepo, inviteRepo, emailSender, cfg.InviteLinkBase, logger)
	inviteHandler := handler.NewInviteHandler(inviteUsecase, logger)

	// Profiles
	profileUsecase := usecase.NewProfileUsecase(accountRepo, profileRepo, authzUsecase)
	profileHandler := handler.NewProfileHandler(profileUsecase, logger)

	metrics.Register()
	checker := health.NewChecker(pool, logger, prometheus.DefaultRegisterer)

	srv := http.Server{
		Addr:    ":" + cfg.Port,
		Handler: httptransport.NewRouter(logger, authUsecase, authHandler, accountHandler, inviteHandler, profileHandler),
	}

	metricsSrv := metrics.NewServer(":"+cfg.MetricsPort, checker)

	go func() {
		logger.Info("server started", "port", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server: %v", err)
		}
	}()

	go func() {
		logger.Info("metrics server started", "port", cfg.MetricsPort)
		if err := metricsSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics server", "error", err)
		}
	}()

	<-ctx.Done()
	stop()
	logger.Info("shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown", "error", err)
	}
	if err := metricsSrv.Shutdown(shutdownCtx); err != nil {
		logger.Error("metrics server shutdown", "error", err)
	}
}

func newLogger(env string, level slog.Level) *slog.Logger {
	var inner slog.Handler
	if env == "local" {
		inner = tint.NewHandler(os.Stdout, &tint.Options{
			Level:      level,
			TimeFormat: time.Kitchen,
		})
	} else {
		inner = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			Level: level,
		})
	}
	return slog.New(ctxlog.NewContextHandler(inner))
}
