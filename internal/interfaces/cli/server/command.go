package server

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"

	appcatalog "github.com/jaras-platform/jaras/internal/application/catalog"
	pricingUsecases "github.com/jaras-platform/jaras/internal/application/pricing/usecases"
	"github.com/jaras-platform/jaras/internal/infrastructure/cache"
	"github.com/jaras-platform/jaras/internal/infrastructure/catalogfile"
	"github.com/jaras-platform/jaras/internal/infrastructure/config"
	"github.com/jaras-platform/jaras/internal/infrastructure/database"
	"github.com/jaras-platform/jaras/internal/infrastructure/migration"
	"github.com/jaras-platform/jaras/internal/infrastructure/ratelimit"
	"github.com/jaras-platform/jaras/internal/interfaces/cli/bootstrap"
	httpRouter "github.com/jaras-platform/jaras/internal/interfaces/http"
	sharedConfig "github.com/jaras-platform/jaras/internal/shared/config"
	"github.com/jaras-platform/jaras/internal/shared/logger"
	"github.com/jaras-platform/jaras/internal/shared/version"
)

var (
	env                string
	configPath         string
	autoMigrate        bool
	skipMigrationCheck bool
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "server",
		Short: "Start the HTTP server",
		Long:  `Start the Jaras pricing API with the specified configuration.`,
		RunE:  run,
	}

	cmd.Flags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")
	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to config file (default: ./configs/config.yaml)")
	cmd.Flags().BoolVar(&autoMigrate, "auto-migrate", false, "Run pending database migrations on startup")
	cmd.Flags().BoolVar(&skipMigrationCheck, "skip-migration-check", false, "Skip migration status check on startup")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	if envVar := os.Getenv("ENV"); envVar != "" {
		env = envVar
	}

	cfg, log, err := bootstrap.Init(env, configPath)
	if err != nil {
		return err
	}
	defer logger.Sync()

	log.Infow("starting server",
		"environment", env,
		"version", version.Version,
		"catalog_source", cfg.Catalog.Source)
	if !version.IsRelease(version.Version) {
		log.Warnw("running a development build", "version", version.Version)
	}

	gin.SetMode(cfg.Server.Mode)
	gin.DefaultWriter = io.Discard
	gin.DebugPrintRouteFunc = func(httpMethod, absolutePath, handlerName string, nuHandlers int) {}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	source, err := bootstrap.CatalogSource(cfg, log)
	if err != nil {
		return err
	}
	defer database.Close()

	if cfg.Catalog.Source == sharedConfig.CatalogSourceDatabase {
		if err := handleMigrations(cfg, log); err != nil {
			return fmt.Errorf("migration handling failed: %w", err)
		}
	}

	redisClient := bootstrap.Redis(ctx, &cfg.Redis, log)
	if redisClient != nil {
		defer redisClient.Close()
	}

	var snapshotCache appcatalog.SnapshotCache
	if redisClient != nil {
		snapshotCache = cache.NewRedisCatalogCache(redisClient, cfg.Redis.CatalogTTL(), log.Named("cache.catalog"))
	}

	provider := appcatalog.NewProvider(source, snapshotCache, log.Named("catalog.provider"))
	provider.Start(ctx)

	if cfg.Catalog.Source == sharedConfig.CatalogSourceFile && cfg.Catalog.Watch {
		watcher := catalogfile.NewWatcher(cfg.Catalog.FilePath, func() {
			if _, err := provider.Reload(ctx); err != nil {
				log.Errorw("catalog reload after file change failed", "error", err)
			}
		}, log)
		if err := watcher.Start(); err != nil {
			log.Warnw("catalog file watcher not started", "path", cfg.Catalog.FilePath, "error", err)
		} else {
			defer watcher.Stop()
		}
	}

	limiter, fallback := buildLimiters(&cfg.RateLimit, redisClient, log)

	router := httpRouter.NewRouter(httpRouter.Dependencies{
		Server:   cfg.Server,
		Settings: pricingUsecases.SettingsFromConfig(&cfg.Pricing),
		Provider: provider,
		Limiter:  limiter,
		Fallback: fallback,
		Logger:   log,
	})
	router.SetupRoutes()

	srv := &http.Server{
		Addr:         cfg.Server.GetAddr(),
		Handler:      router.GetEngine(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		log.Infow("server starting",
			"address", cfg.Server.GetAddr(),
			"mode", cfg.Server.Mode)

		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
	}()

	select {
	case err := <-serveErr:
		return fmt.Errorf("failed to start server: %w", err)
	case <-ctx.Done():
	}

	log.Infow("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Errorw("server forced to shutdown", "error", err)
		return err
	}

	log.Infow("server exited gracefully")
	return nil
}

// buildLimiters returns the Redis window limiter backed by the in-memory
// token bucket, or the token bucket alone without Redis.
func buildLimiters(cfg *sharedConfig.RateLimitConfig, client *redis.Client, log logger.Interface) (ratelimit.Limiter, ratelimit.Limiter) {
	if !cfg.Enabled {
		return nil, nil
	}

	bucket := ratelimit.NewTokenBucketLimiter(cfg.RequestsPerSecond, cfg.Burst)
	if client == nil {
		log.Infow("rate limiting in memory", "rps", cfg.RequestsPerSecond, "burst", cfg.Burst)
		return bucket, nil
	}

	log.Infow("rate limiting via redis",
		"requests", cfg.WindowRequests,
		"window", cfg.Window())
	return ratelimit.NewRedisWindowLimiter(client, cfg.WindowRequests, cfg.Window()), bucket
}

func handleMigrations(cfg *config.Config, log logger.Interface) error {
	if skipMigrationCheck {
		log.Infow("skipping migration check")
		return nil
	}

	scriptsPath, err := bootstrap.ScriptsPath()
	if err != nil {
		return err
	}
	strategy, err := migration.NewGooseStrategy(cfg.Database.GetDriver(), scriptsPath, log)
	if err != nil {
		return err
	}

	if autoMigrate {
		if env == "production" {
			log.Warnw("auto-migration is enabled in production environment - this is not recommended!")
		}
		return migration.NewManager(strategy, log).Migrate(database.Get())
	}

	current, err := strategy.GetVersion(database.Get())
	if err != nil {
		log.Warnw("failed to check migration status", "error", err)
		return nil
	}
	log.Infow("current migration version", "version", current)
	return nil
}
