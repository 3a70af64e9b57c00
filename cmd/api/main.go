package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/therapy-scheduler/internal/audit"
	"github.com/BruksfildServices01/therapy-scheduler/internal/config"
	dbpkg "github.com/BruksfildServices01/therapy-scheduler/internal/db"
	"github.com/BruksfildServices01/therapy-scheduler/internal/infra/cache"
	"github.com/BruksfildServices01/therapy-scheduler/internal/logger"
	"github.com/BruksfildServices01/therapy-scheduler/internal/routes"
	"github.com/BruksfildServices01/therapy-scheduler/internal/timezone"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg := config.Load()

	zl, err := logger.New(cfg.IsProduction(), cfg.LogLevel)
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer func() { _ = zl.Sync() }()

	if err := run(cfg, zl); err != nil {
		zl.Fatal("server stopped", zap.Error(err))
	}
}

func run(cfg *config.Config, zl *zap.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := dbpkg.NewDB(cfg, zl)
	if err != nil {
		return err
	}
	if sqlDB, err := db.DB(); err == nil {
		defer sqlDB.Close()
	}

	deps := routes.Dependencies{
		DB:    db,
		Clock: timezone.NewSystemClock(cfg.Timezone),
		Log:   zl,
	}

	if cfg.RedisAddr != "" {
		rdb := cache.NewClient(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		defer rdb.Close()

		if err := rdb.Ping(ctx).Err(); err != nil {
			zl.Warn("redis unavailable, availability cache still attempted", zap.Error(err))
		}
		deps.Redis = rdb
	}

	dispatcher := audit.NewDispatcher(audit.New(db), zl)
	defer dispatcher.Close()
	deps.Audit = dispatcher

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()

	if err := routes.RegisterRoutes(r, cfg, deps); err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		zl.Info("server running",
			zap.String("addr", cfg.Addr()),
			zap.String("timezone", cfg.Timezone),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		zl.Info("shutdown signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	return srv.Shutdown(shutdownCtx)
}
