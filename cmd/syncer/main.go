package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/remybar/cta-server/internal/adapter"
	"github.com/remybar/cta-server/internal/config"
	"github.com/remybar/cta-server/internal/logger"
	"github.com/remybar/cta-server/internal/providers/ledger"
	"github.com/remybar/cta-server/internal/store"
	"github.com/remybar/cta-server/internal/syncer"
)

var (
	configFile = flag.String("config", "", "Path to configuration file")
	envPath    = flag.String("env", "config/", "Path to environment files")
)

func main() {
	flag.Parse()

	// Load configuration
	config.ChdirRepoRoot()
	cfg, err := config.LoadSyncerConfig(*configFile, *envPath)
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// Create context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize logger with sentry integration
	err = logger.Initialize(logger.Config{
		Debug:           cfg.Debug,
		SentryDSN:       cfg.SentryDSN,
		BreadcrumbLevel: zapcore.InfoLevel,
		Tags: map[string]string{
			"service": "syncer",
		},
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Flush(2 * time.Second)
	logger.InfoCtx(ctx, "Starting Syncer")

	// Connect to database
	db, err := gorm.Open(postgres.Open(cfg.Database.DSN()), &gorm.Config{})
	if err != nil {
		logger.FatalCtx(ctx, "Failed to connect to database", zap.Error(err))
	}

	// Configure connection pool
	if err := store.ConfigureConnectionPool(db, cfg.Database.MaxOpenConns, cfg.Database.MaxIdleConns, cfg.Database.ConnMaxLifetime, cfg.Database.ConnMaxIdleTime); err != nil {
		logger.FatalCtx(ctx, "Failed to configure connection pool", zap.Error(err))
	}
	logger.InfoCtx(ctx, "Connected to database",
		zap.Int("max_open_conns", cfg.Database.MaxOpenConns),
		zap.Int("max_idle_conns", cfg.Database.MaxIdleConns),
	)

	// Initialize store
	dataStore := store.NewPGStore(db)

	// Initialize adapters
	httpClient := adapter.NewHTTPClient(cfg.Ledger.HTTPTimeout)
	jsonAdapter := adapter.NewJSON()
	clock := adapter.NewClock()

	// Initialize ledger API client
	ledgerClient := ledger.NewClient(httpClient, cfg.Ledger.APIURL, jsonAdapter)

	// Initialize collection syncer
	syncerConfig := &syncer.CollectionSyncerConfig{
		Collection:    cfg.Ledger.Collection,
		PageSize:      cfg.Sync.PageSize,
		MaxRecords:    cfg.Sync.MaxRecords,
		CycleInterval: cfg.Sync.CycleInterval,
		CycleTimeout:  cfg.Sync.CycleTimeout,
	}
	collectionSyncer := syncer.NewCollectionSyncer(syncerConfig, dataStore, ledgerClient, clock)

	logger.InfoCtx(ctx, "Initialized collection syncer",
		zap.String("collection", cfg.Ledger.Collection),
		zap.Int("page_size", cfg.Sync.PageSize),
		zap.Int("max_records", cfg.Sync.MaxRecords),
		zap.Duration("cycle_interval", cfg.Sync.CycleInterval),
	)

	// Start the syncer in a goroutine
	errChan := make(chan error, 1)
	go func() {
		if err := collectionSyncer.Start(ctx); err != nil {
			errChan <- err
		}
	}()

	// Wait for interrupt signal or error
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		logger.InfoCtx(ctx, "Received shutdown signal", zap.String("signal", sig.String()))
	case err := <-errChan:
		logger.ErrorCtx(ctx, err)
	}

	// Cancel context to stop the syncer
	cancel()

	// Give the syncer time to shut down gracefully
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer shutdownCancel()

	if err := collectionSyncer.Stop(shutdownCtx); err != nil {
		logger.ErrorCtx(shutdownCtx, err)
	}

	logger.InfoCtx(shutdownCtx, "Syncer stopped")
}
