package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"autosalon/internal/config"
	"autosalon/internal/database"
	"autosalon/internal/logging"
	"autosalon/internal/storage"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger, err := logging.New(cfg.IsProdLike(), cfg.LogLevel)
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = logger.Sync() }()

	db, err := database.Connect(cfg.DSN, logger)
	if err != nil {
		logger.Fatal("db connect failed", zap.Error(err))
	}
	if err := database.Migrate(db); err != nil {
		logger.Fatal("migrate failed", zap.Error(err))
	}

	backend, closeBackend, err := openStorage(cfg, db, logger)
	if err != nil {
		logger.Fatal("storage backend failed", zap.Error(err))
	}
	defer closeBackend()

	if cfg.IsProdLike() {
		gin.SetMode(gin.ReleaseMode)
	}

	r, cleanup := buildRouter(cfg, db, backend, logger)
	defer cleanup()

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Info("server started",
			zap.String("addr", cfg.HTTPAddr),
			zap.String("env", cfg.AppEnv),
			zap.String("storage", cfg.Storage.Backend),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server failed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", zap.Error(err))
	}
}

// openStorage picks the backend for client-side state.
func openStorage(cfg *config.Config, db *gorm.DB, logger *zap.Logger) (storage.Backend, func(), error) {
	noop := func() {}

	switch cfg.Storage.Backend {
	case config.StorageMemory:
		logger.Warn("client storage is in memory; favorites and sessions are lost on restart")
		return storage.NewMemoryBackend(), noop, nil
	case config.StorageRedis:
		rb, err := storage.NewRedisBackend(cfg.Storage.RedisURL, cfg.Storage.RedisPrefix)
		if err != nil {
			return nil, noop, err
		}
		return rb, func() { _ = rb.Close() }, nil
	case config.StorageDatabase:
		return storage.NewGormBackend(db), noop, nil
	}
	return nil, noop, fmt.Errorf("unknown storage backend %q", cfg.Storage.Backend)
}
