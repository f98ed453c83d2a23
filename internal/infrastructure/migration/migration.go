package migration

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/jaras-platform/jaras/internal/shared/logger"
)

// Manager runs one migration strategy with logging around it.
type Manager struct {
	strategy Strategy
	logger   logger.Interface
}

func NewManager(strategy Strategy, log logger.Interface) *Manager {
	return &Manager{
		strategy: strategy,
		logger:   log.With("component", "migration.manager"),
	}
}

// NewManagerFor picks auto-migration when auto is set, goose otherwise.
func NewManagerFor(driver, scriptsPath string, auto bool, log logger.Interface) (*Manager, error) {
	if auto {
		return NewManager(NewAutoMigrateStrategy(log), log), nil
	}
	strategy, err := NewGooseStrategy(driver, scriptsPath, log)
	if err != nil {
		return nil, err
	}
	return NewManager(strategy, log), nil
}

func (m *Manager) Migrate(db *gorm.DB) error {
	m.logger.Infow("starting database migration", "strategy", m.strategy.GetName())

	if err := m.strategy.Migrate(db); err != nil {
		m.logger.Errorw("migration failed", "strategy", m.strategy.GetName(), "error", err)
		return fmt.Errorf("migration failed with strategy %s: %w", m.strategy.GetName(), err)
	}

	m.logger.Infow("database migration completed successfully", "strategy", m.strategy.GetName())
	return nil
}

func (m *Manager) Strategy() Strategy {
	return m.strategy
}
