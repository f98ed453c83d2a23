package migration

import (
	"embed"
	"fmt"
	"path"
	"path/filepath"
	"strings"
	"sync"

	"github.com/pressly/goose/v3"
	"gorm.io/gorm"

	"github.com/jaras-platform/jaras/internal/shared/config"
	"github.com/jaras-platform/jaras/internal/shared/logger"
)

//go:embed scripts/*/*.sql
var embeddedScripts embed.FS

const scriptsRoot = "scripts"

// goose keeps its dialect, base FS and logger in package globals.
var gooseMu sync.Mutex

// Strategy defines the interface for different migration strategies
type Strategy interface {
	// Migrate brings the schema up to date
	Migrate(db *gorm.DB) error
	// GetName returns the strategy name
	GetName() string
}

// Dialect maps a configured database driver to its goose dialect.
func Dialect(driver string) (string, error) {
	switch driver {
	case config.DriverMySQL:
		return "mysql", nil
	case config.DriverPostgres:
		return "postgres", nil
	case config.DriverSQLite:
		return "sqlite3", nil
	default:
		return "", fmt.Errorf("no migration dialect for driver %q", driver)
	}
}

// GooseStrategy runs the versioned SQL scripts embedded in the binary.
// New scripts are written under scriptsPath on disk.
type GooseStrategy struct {
	dialect     string
	scriptsPath string
	logger      logger.Interface
}

func NewGooseStrategy(driver, scriptsPath string, log logger.Interface) (*GooseStrategy, error) {
	dialect, err := Dialect(driver)
	if err != nil {
		return nil, err
	}
	return &GooseStrategy{
		dialect:     dialect,
		scriptsPath: scriptsPath,
		logger:      log.With("component", "migration.goose"),
	}, nil
}

func (s *GooseStrategy) GetName() string {
	return "goose"
}

func (s *GooseStrategy) embeddedDir() string {
	return path.Join(scriptsRoot, s.dialect)
}

// lock configures goose for this strategy and returns the unlock func.
func (s *GooseStrategy) lock() (func(), error) {
	gooseMu.Lock()
	goose.SetBaseFS(embeddedScripts)
	goose.SetLogger(&gooseLogger{log: s.logger})
	if err := goose.SetDialect(s.dialect); err != nil {
		gooseMu.Unlock()
		return nil, fmt.Errorf("failed to set goose dialect: %w", err)
	}
	return gooseMu.Unlock, nil
}

func (s *GooseStrategy) Migrate(db *gorm.DB) error {
	s.logger.Infow("starting goose migration", "dialect", s.dialect)

	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	unlock, err := s.lock()
	if err != nil {
		return err
	}
	defer unlock()

	currentVersion, err := goose.GetDBVersion(sqlDB)
	if err != nil {
		s.logger.Errorw("failed to get current version", "error", err)
		return fmt.Errorf("failed to get current version: %w", err)
	}

	if err := goose.Up(sqlDB, s.embeddedDir()); err != nil {
		s.logger.Errorw("migration failed", "error", err)
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	finalVersion, err := goose.GetDBVersion(sqlDB)
	if err != nil {
		return fmt.Errorf("failed to get final version: %w", err)
	}

	s.logger.Infow("migration completed successfully",
		"from_version", currentVersion,
		"to_version", finalVersion)

	return nil
}

func (s *GooseStrategy) MigrateDown(db *gorm.DB, steps int) error {
	s.logger.Infow("starting down migration", "steps", steps)

	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	unlock, err := s.lock()
	if err != nil {
		return err
	}
	defer unlock()

	for i := 0; i < steps; i++ {
		if err := goose.Down(sqlDB, s.embeddedDir()); err != nil {
			s.logger.Errorw("down migration failed", "error", err)
			return fmt.Errorf("failed to run down migration: %w", err)
		}
	}

	s.logger.Infow("down migration completed successfully")
	return nil
}

func (s *GooseStrategy) GetVersion(db *gorm.DB) (int64, error) {
	sqlDB, err := db.DB()
	if err != nil {
		return 0, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	unlock, err := s.lock()
	if err != nil {
		return 0, err
	}
	defer unlock()

	version, err := goose.GetDBVersion(sqlDB)
	if err != nil {
		return 0, fmt.Errorf("failed to get version: %w", err)
	}
	return version, nil
}

func (s *GooseStrategy) Status(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	unlock, err := s.lock()
	if err != nil {
		return err
	}
	defer unlock()

	if err := goose.Status(sqlDB, s.embeddedDir()); err != nil {
		return fmt.Errorf("failed to get status: %w", err)
	}
	return nil
}

// Create writes a new SQL migration for this dialect under scriptsPath.
func (s *GooseStrategy) Create(name string) error {
	unlock, err := s.lock()
	if err != nil {
		return err
	}
	defer unlock()

	goose.SetBaseFS(nil)
	dir := filepath.Join(s.scriptsPath, s.dialect)
	if err := goose.Create(nil, dir, name, "sql"); err != nil {
		return fmt.Errorf("failed to create migration: %w", err)
	}

	s.logger.Infow("migration created successfully", "name", name, "dir", dir)
	return nil
}

type gooseLogger struct {
	log logger.Interface
}

func (l *gooseLogger) Printf(format string, v ...interface{}) {
	l.log.Infow(strings.TrimSpace(fmt.Sprintf(format, v...)))
}

func (l *gooseLogger) Fatalf(format string, v ...interface{}) {
	l.log.Fatalw(strings.TrimSpace(fmt.Sprintf(format, v...)))
}
