package main

import (
	"context"
	"flag"
	"log"
	"time"

	"go.uber.org/zap"

	"autosalon/internal/config"
	"autosalon/internal/database"
	"autosalon/internal/logging"
	"autosalon/internal/storage"
)

// Removes stored favorites, history and tokens of clients that have been
// inactive longer than -max-age. Meant for cron.
func main() {
	maxAge := flag.Duration("max-age", 90*24*time.Hour, "drop entries not updated for this long")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger, err := logging.New(cfg.IsProdLike(), cfg.LogLevel)
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = logger.Sync() }()

	if cfg.Storage.Backend != config.StorageDatabase {
		logger.Info("storage cleanup skipped", zap.String("backend", cfg.Storage.Backend))
		return
	}

	db, err := database.Connect(cfg.DSN, logger)
	if err != nil {
		logger.Fatal("db connect failed", zap.Error(err))
	}

	n, err := storage.NewGormBackend(db).PurgeOlderThan(context.Background(), time.Now().Add(-*maxAge))
	if err != nil {
		logger.Fatal("cleanup storage_entries failed", zap.Error(err))
	}

	logger.Info("storage cleanup completed", zap.Int64("storage_entries", n), zap.Duration("max_age", *maxAge))
}
