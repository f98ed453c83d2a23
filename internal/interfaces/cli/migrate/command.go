package migrate

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jaras-platform/jaras/internal/infrastructure/config"
	"github.com/jaras-platform/jaras/internal/infrastructure/database"
	"github.com/jaras-platform/jaras/internal/infrastructure/migration"
	"github.com/jaras-platform/jaras/internal/interfaces/cli/bootstrap"
	"github.com/jaras-platform/jaras/internal/shared/logger"
)

var (
	env        string
	configPath string
	name       string
	steps      int
	auto       bool
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Database migration tools",
		Long:  `Manage the catalog schema: run migrations, check status and create new migration files.`,
	}

	cmd.PersistentFlags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")
	cmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to config file (default: ./configs/config.yaml)")

	cmd.AddCommand(
		newUpCommand(),
		newDownCommand(),
		newStatusCommand(),
		newCreateCommand(),
	)

	return cmd
}

func newUpCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "up",
		Short: "Run all pending migrations",
		Long:  `Apply all pending database migrations to bring the database schema up to date.`,
		RunE:  runUp,
	}

	cmd.Flags().BoolVar(&auto, "auto", false, "Use gorm AutoMigrate instead of the versioned SQL scripts (development only)")

	return cmd
}

func newDownCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "down",
		Short: "Rollback migrations",
		Long:  `Rollback a specified number of database migrations.`,
		RunE:  runDown,
	}

	cmd.Flags().IntVarP(&steps, "steps", "n", 1, "Number of migrations to rollback")

	return cmd
}

func newStatusCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show migration status",
		Long:  `Display the current migration version and status of the database.`,
		RunE:  runStatus,
	}
}

func newCreateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new migration",
		Long:  `Create a new SQL migration file for the configured database driver.`,
		RunE:  runCreate,
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", "Name of the migration (required)")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

// initEnv loads configuration and, when connect is set, opens the database.
func initEnv(connect bool) (*config.Config, string, logger.Interface, error) {
	cfg, log, err := bootstrap.Init(env, configPath)
	if err != nil {
		return nil, "", nil, err
	}

	if connect {
		if err := database.Init(&cfg.Database); err != nil {
			return nil, "", nil, fmt.Errorf("failed to initialize database: %w", err)
		}
	}

	scriptsPath, err := bootstrap.ScriptsPath()
	if err != nil {
		return nil, "", nil, err
	}

	return cfg, scriptsPath, log, nil
}

func runUp(cmd *cobra.Command, args []string) error {
	cfg, scriptsPath, log, err := initEnv(true)
	if err != nil {
		return err
	}
	defer logger.Sync()
	defer database.Close()

	log.Infow("running up migrations", "environment", env, "auto", auto)

	manager, err := migration.NewManagerFor(cfg.Database.GetDriver(), scriptsPath, auto, log)
	if err != nil {
		return err
	}

	if err := manager.Migrate(database.Get()); err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}

	log.Infow("migrations completed successfully")
	return nil
}

func runDown(cmd *cobra.Command, args []string) error {
	cfg, scriptsPath, log, err := initEnv(true)
	if err != nil {
		return err
	}
	defer logger.Sync()
	defer database.Close()

	log.Infow("running down migrations", "environment", env, "steps", steps)

	strategy, err := migration.NewGooseStrategy(cfg.Database.GetDriver(), scriptsPath, log)
	if err != nil {
		return err
	}

	if err := strategy.MigrateDown(database.Get(), steps); err != nil {
		log.Errorw("down migration failed", "error", err)
		return fmt.Errorf("down migration failed: %w", err)
	}

	log.Infow("down migration completed successfully")
	return nil
}

func runStatus(cmd *cobra.Command, args []string) error {
	cfg, scriptsPath, log, err := initEnv(true)
	if err != nil {
		return err
	}
	defer logger.Sync()
	defer database.Close()

	log.Infow("checking migration status", "environment", env)

	strategy, err := migration.NewGooseStrategy(cfg.Database.GetDriver(), scriptsPath, log)
	if err != nil {
		return err
	}

	version, err := strategy.GetVersion(database.Get())
	if err != nil {
		log.Errorw("failed to get migration version", "error", err)
		return fmt.Errorf("failed to get migration version: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "\nMigration Status:\n")
	fmt.Fprintf(out, "  Environment:     %s\n", env)
	fmt.Fprintf(out, "  Driver:          %s\n", cfg.Database.GetDriver())
	fmt.Fprintf(out, "  Current Version: %d\n", version)

	if err := strategy.Status(database.Get()); err != nil {
		log.Errorw("failed to get detailed status", "error", err)
		return fmt.Errorf("failed to get detailed status: %w", err)
	}

	return nil
}

func runCreate(cmd *cobra.Command, args []string) error {
	cfg, scriptsPath, log, err := initEnv(false)
	if err != nil {
		return err
	}
	defer logger.Sync()

	log.Infow("creating new migration", "name", name)

	strategy, err := migration.NewGooseStrategy(cfg.Database.GetDriver(), scriptsPath, log)
	if err != nil {
		return err
	}

	if err := strategy.Create(name); err != nil {
		log.Errorw("failed to create migration", "error", err)
		return fmt.Errorf("failed to create migration: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "✅ Migration '%s' created successfully\n", name)
	return nil
}
