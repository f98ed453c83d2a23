// Package bootstrap holds the start-up steps shared by the CLI commands.
package bootstrap

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/jaras-platform/jaras/internal/domain/catalog"
	"github.com/jaras-platform/jaras/internal/infrastructure/catalogfile"
	"github.com/jaras-platform/jaras/internal/infrastructure/config"
	"github.com/jaras-platform/jaras/internal/infrastructure/database"
	"github.com/jaras-platform/jaras/internal/infrastructure/repository"
	"github.com/jaras-platform/jaras/internal/shared/biztime"
	sharedConfig "github.com/jaras-platform/jaras/internal/shared/config"
	"github.com/jaras-platform/jaras/internal/shared/logger"
)

const scriptsDir = "./internal/infrastructure/migration/scripts"

// Init loads configuration, the process logger and the business timezone.
// The gin mode derived from env overrides server.mode.
func Init(env, configPath string) (*config.Config, logger.Interface, error) {
	cfg, err := config.Load(env, configPath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}
	cfg.Server.Mode = GinMode(env)

	if err := logger.Init(&cfg.Logger, cfg.Server.Mode); err != nil {
		return nil, nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	// Remaining days and default end dates are counted in business days.
	if err := biztime.Init(cfg.Server.Timezone); err != nil {
		return nil, nil, fmt.Errorf("failed to initialize business timezone: %w", err)
	}

	return cfg, logger.NewLogger(), nil
}

// GinMode maps an environment name to a gin mode.
func GinMode(environment string) string {
	switch environment {
	case "production", "prod", "release":
		return "release"
	case "test", "testing":
		return "test"
	default:
		return "debug"
	}
}

// ScriptsPath is where `migrate create` writes new SQL files.
func ScriptsPath() (string, error) {
	path, err := filepath.Abs(scriptsDir)
	if err != nil {
		return "", fmt.Errorf("failed to get scripts path: %w", err)
	}
	return path, nil
}

// CatalogSource opens the configured catalog source. For the database
// source the package-level connection is initialised; callers close it
// with database.Close.
func CatalogSource(cfg *config.Config, log logger.Interface) (catalog.Source, error) {
	switch cfg.Catalog.Source {
	case sharedConfig.CatalogSourceFile:
		log.Infow("using file catalog source", "path", cfg.Catalog.FilePath)
		return catalogfile.NewFileSource(cfg.Catalog.FilePath), nil
	default:
		if err := database.Init(&cfg.Database); err != nil {
			return nil, fmt.Errorf("failed to initialize database: %w", err)
		}
		db := database.Get()
		return repository.NewDatabaseCatalogSource(
			repository.NewPlanRepository(db, log.Named("repository.plan")),
			repository.NewAddonRepository(db, log.Named("repository.addon")),
		), nil
	}
}

// Redis connects when redis.enabled is set. A failed ping is logged and
// reported as nil so the caller runs without Redis.
func Redis(ctx context.Context, cfg *sharedConfig.RedisConfig, log logger.Interface) *redis.Client {
	if !cfg.Enabled {
		return nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.GetAddr(),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		log.Warnw("redis unavailable, continuing without it", "address", cfg.GetAddr(), "error", err)
		_ = client.Close()
		return nil
	}

	log.Infow("redis connection established", "address", cfg.GetAddr())
	return client
}
