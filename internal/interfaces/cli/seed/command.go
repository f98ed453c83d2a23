package seed

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jaras-platform/jaras/internal/infrastructure/database"
	"github.com/jaras-platform/jaras/internal/infrastructure/migration"
	"github.com/jaras-platform/jaras/internal/infrastructure/persistence/seeds"
	"github.com/jaras-platform/jaras/internal/infrastructure/repository"
	"github.com/jaras-platform/jaras/internal/interfaces/cli/bootstrap"
	shareddb "github.com/jaras-platform/jaras/internal/shared/db"
	"github.com/jaras-platform/jaras/internal/shared/logger"
)

var (
	env        string
	configPath string
	file       string
	migrate    bool
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Load a catalog YAML file into the database",
		Long:  `Upsert the plans and add-ons of a catalog YAML file into the catalog tables, matched by code.`,
		RunE:  run,
	}

	cmd.Flags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")
	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to config file (default: ./configs/config.yaml)")
	cmd.Flags().StringVarP(&file, "file", "f", "configs/catalog.yaml", "Catalog YAML file to seed from")
	cmd.Flags().BoolVar(&migrate, "migrate", false, "Run pending migrations before seeding")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	cfg, log, err := bootstrap.Init(env, configPath)
	if err != nil {
		return err
	}
	defer logger.Sync()

	if err := database.Init(&cfg.Database); err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer database.Close()
	db := database.Get()

	if migrate {
		scriptsPath, err := bootstrap.ScriptsPath()
		if err != nil {
			return err
		}
		manager, err := migration.NewManagerFor(cfg.Database.GetDriver(), scriptsPath, false, log)
		if err != nil {
			return err
		}
		if err := manager.Migrate(db); err != nil {
			return err
		}
	}

	seeder := seeds.NewCatalogSeeder(
		shareddb.NewTransactionManager(db),
		repository.NewPlanRepository(db, log.Named("repository.plan")),
		repository.NewAddonRepository(db, log.Named("repository.addon")),
		log,
	)

	result, err := seeder.SeedFile(cmd.Context(), file)
	if err != nil {
		return fmt.Errorf("failed to seed catalog: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "✅ Seeded %d plans and %d add-ons from %s\n", result.Plans, result.Addons, file)
	return nil
}
