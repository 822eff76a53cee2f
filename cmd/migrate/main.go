package main

import (
	"context"
	"flag"
	"math/rand"
	"time"

	"go.uber.org/zap"

	ledgerapp "github.com/yummin/backend/internal/application/ledger"
	"github.com/yummin/backend/internal/infrastructure/config"
	"github.com/yummin/backend/internal/infrastructure/logger"
	"github.com/yummin/backend/internal/infrastructure/persistence"
)

// Applies the sqlite schema and optionally fills the ledger with demo
// orders, so a fresh deployment has a populated dashboard:
//
//	go run ./cmd/migrate          # schema only
//	go run ./cmd/migrate -seed    # schema plus demo ledger
func main() {
	var seed bool
	var logLevel string
	flag.BoolVar(&seed, "seed", false, "replace the ledger with generated demo orders")
	flag.StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error)")
	flag.Parse()

	log := logger.New(logger.Config{
		Level:  logLevel,
		Format: "console",
		Output: "stdout",
	})
	defer func() {
		_ = log.Sync()
	}()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration", zap.Error(err))
	}

	// Opening the database runs the schema migration
	db, err := persistence.NewDatabase(&cfg.Database)
	if err != nil {
		log.Fatal("Failed to open database", zap.Error(err))
	}
	defer func() {
		_ = db.Close()
	}()
	log.Info("Schema migrated", zap.String("path", cfg.Database.Path))

	if !seed {
		return
	}

	ledger := ledgerapp.NewService(persistence.NewGormOrderRepository(db.DB), log)
	gen := ledgerapp.NewSeedGenerator(
		rand.New(rand.NewSource(time.Now().UnixNano())),
		cfg.Store.OrderIDPrefix,
		cfg.Store.SeedOrderCount,
	)

	count, err := ledger.Seed(context.Background(), gen)
	if err != nil {
		log.Fatal("Failed to seed ledger", zap.Error(err))
	}
	log.Info("Ledger seeded", zap.Int("orders", count))
}
