// cmd/api/main.go
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/your-org/storefront-backend/internal/config"
	"github.com/your-org/storefront-backend/internal/domain/cart"
	"github.com/your-org/storefront-backend/internal/domain/catalog"
	"github.com/your-org/storefront-backend/internal/domain/checkout"
	"github.com/your-org/storefront-backend/internal/domain/wishlist"
	"github.com/your-org/storefront-backend/internal/infrastructure/storage"
	httpserver "github.com/your-org/storefront-backend/internal/interfaces/http"
	"github.com/your-org/storefront-backend/internal/interfaces/http/routes"
	"github.com/your-org/storefront-backend/internal/pkg/logger"
	"github.com/your-org/storefront-backend/internal/pkg/receipt"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	appLogger := logger.New(cfg)
	appLogger.Infof("Starting %s v%s in %s mode", cfg.App.Name, cfg.App.Version, cfg.App.Environment)

	// Decode the raw catalog source; the catalog store itself does no I/O
	raw, err := loadRawCatalog(cfg.Catalog.SourcePath)
	if err != nil {
		appLogger.Fatalf("Failed to load catalog source: %v", err)
	}

	// Build the snapshot storage backend
	snapshots, redisStore, err := buildSnapshotStore(cfg)
	if err != nil {
		appLogger.Fatalf("Failed to initialize snapshot storage: %v", err)
	}
	if redisStore != nil {
		defer redisStore.Close()
	}

	// Build the stores: constructed once, injected everywhere
	catalogStore := catalog.NewStore(raw, cfg)
	cartStore := cart.NewStore(snapshots, cfg, appLogger)
	wishlistStore := wishlist.NewStore(snapshots, cfg, appLogger)

	// Rehydrate persisted state
	rehydrateCtx, cancelRehydrate := context.WithTimeout(context.Background(), 5*time.Second)
	cartStore.Restore(rehydrateCtx)
	wishlistStore.Restore(rehydrateCtx)
	cancelRehydrate()

	checkoutService := checkout.NewService(cartStore, cfg, appLogger)
	receiptService := receipt.NewService(cfg)

	appLogger.WithField("products", catalogStore.ProductCount()).Info("Catalog loaded")

	deps := &routes.Dependencies{
		Config:   cfg,
		Catalog:  catalogStore,
		Cart:     cartStore,
		Wishlist: wishlistStore,
		Checkout: checkoutService,
		Receipt:  receiptService,
	}

	server := httpserver.NewServer(cfg, appLogger, redisClientOf(redisStore), deps)

	// Start server in a goroutine
	go func() {
		if err := server.Start(); err != nil {
			appLogger.Fatalf("Failed to start HTTP server: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down gracefully")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Stop(ctx); err != nil {
		appLogger.Errorf("Failed to shutdown HTTP server gracefully: %v", err)
	}

	appLogger.Info("Server shutdown completed")
}

// loadRawCatalog reads and decodes the static nested catalog source
func loadRawCatalog(path string) (*catalog.RawCatalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog source %q: %w", path, err)
	}

	var raw catalog.RawCatalog
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse catalog source %q: %w", path, err)
	}

	return &raw, nil
}

// buildSnapshotStore constructs the configured snapshot backend. The
// redis store is returned separately so the server can reuse its client
// for rate limiting.
func buildSnapshotStore(cfg *config.Config) (storage.SnapshotStore, *storage.RedisStore, error) {
	switch cfg.Storage.Backend {
	case "redis":
		redisStore, err := storage.NewRedisStore(cfg)
		if err != nil {
			return nil, nil, err
		}
		return redisStore, redisStore, nil
	default:
		fileStore, err := storage.NewFileStore(cfg.Storage.Path)
		if err != nil {
			return nil, nil, err
		}
		return fileStore, nil, nil
	}
}

func redisClientOf(store *storage.RedisStore) *redis.Client {
	if store == nil {
		return nil
	}
	return store.Client()
}
