package migration

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/jaras-platform/jaras/internal/infrastructure/persistence/models"
	"github.com/jaras-platform/jaras/internal/shared/logger"
)

func AutoMigrateModels() []interface{} {
	return []interface{}{
		&models.PlanModel{},
		&models.AddonModel{},
	}
}

// AutoMigrateStrategy derives the schema from the persistence models. It
// is meant for throwaway sqlite databases during development.
type AutoMigrateStrategy struct {
	logger logger.Interface
}

func NewAutoMigrateStrategy(log logger.Interface) *AutoMigrateStrategy {
	return &AutoMigrateStrategy{logger: log.With("component", "migration.automigrate")}
}

func (s *AutoMigrateStrategy) GetName() string {
	return "gorm_auto_migrate"
}

func (s *AutoMigrateStrategy) Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(AutoMigrateModels()...); err != nil {
		return fmt.Errorf("failed to auto-migrate models: %w", err)
	}
	s.logger.Infow("auto-migration completed", "models", len(AutoMigrateModels()))
	return nil
}
