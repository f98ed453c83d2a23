package config

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	sharedConfig "github.com/jaras-platform/jaras/internal/shared/config"
)

type Config struct {
	Server    sharedConfig.ServerConfig    `mapstructure:"server"`
	Database  sharedConfig.DatabaseConfig  `mapstructure:"database"`
	Logger    sharedConfig.LoggerConfig    `mapstructure:"logger"`
	Redis     sharedConfig.RedisConfig     `mapstructure:"redis"`
	Catalog   sharedConfig.CatalogConfig   `mapstructure:"catalog"`
	Pricing   sharedConfig.PricingConfig   `mapstructure:"pricing"`
	RateLimit sharedConfig.RateLimitConfig `mapstructure:"ratelimit"`
}

var (
	appConfig   *Config
	appConfigMu sync.RWMutex
)

// Load reads configs/config.yaml (or configPath when given), overlays
// JARAS_* environment variables and stores the result for Get.
func Load(env, configPath string) (*Config, error) {
	// .env is optional; real environment variables win over it.
	_ = godotenv.Load()

	v := viper.New()

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("./configs")
		v.AddConfigPath("../configs")
		v.AddConfigPath("../../configs")
	}

	v.SetEnvPrefix("JARAS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	if env != "" && env != "default" {
		v.Set("server.mode", env)
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := config.validate(); err != nil {
		return nil, err
	}

	appConfigMu.Lock()
	appConfig = &config
	appConfigMu.Unlock()

	return &config, nil
}

// Get returns the loaded configuration
func Get() *Config {
	appConfigMu.RLock()
	defer appConfigMu.RUnlock()
	return appConfig
}

func (c *Config) validate() error {
	if c.Pricing.VatRate < 0 || c.Pricing.VatRate >= 1 {
		return fmt.Errorf("pricing.vat_rate must be in [0, 1), got %v", c.Pricing.VatRate)
	}
	switch c.Catalog.Source {
	case sharedConfig.CatalogSourceDatabase:
	case sharedConfig.CatalogSourceFile:
		if c.Catalog.FilePath == "" {
			return fmt.Errorf("catalog.file_path is required when catalog.source is %q", sharedConfig.CatalogSourceFile)
		}
	default:
		return fmt.Errorf("unknown catalog.source %q", c.Catalog.Source)
	}
	switch c.Database.GetDriver() {
	case sharedConfig.DriverMySQL, sharedConfig.DriverPostgres, sharedConfig.DriverSQLite:
	default:
		return fmt.Errorf("unsupported database.driver %q", c.Database.Driver)
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	// Server defaults
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.mode", "debug")
	v.SetDefault("server.timezone", "Asia/Riyadh")

	// Database defaults
	v.SetDefault("database.driver", sharedConfig.DriverMySQL)
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 3306)
	v.SetDefault("database.username", "root")
	v.SetDefault("database.password", "password")
	v.SetDefault("database.database", "jaras_dev")
	v.SetDefault("database.max_idle_conns", 10)
	v.SetDefault("database.max_open_conns", 50)
	v.SetDefault("database.conn_max_lifetime", 60)

	// Logger defaults
	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "console")
	v.SetDefault("logger.output_path", "stdout")

	// Redis defaults
	v.SetDefault("redis.enabled", false)
	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.catalog_ttl_seconds", 300)

	// Catalog defaults
	v.SetDefault("catalog.source", sharedConfig.CatalogSourceDatabase)
	v.SetDefault("catalog.file_path", "./configs/catalog.yaml")
	v.SetDefault("catalog.watch", false)

	// Pricing defaults
	v.SetDefault("pricing.currency", "SAR")
	v.SetDefault("pricing.vat_rate", 0.15)
	v.SetDefault("pricing.include_vat_by_default", false)
	v.SetDefault("pricing.professional_plan_code", "P-0026")
	v.SetDefault("pricing.ota_addon_code", "ota_registration")
	v.SetDefault("pricing.default_term_months", 6)

	// Rate limit defaults
	v.SetDefault("ratelimit.enabled", true)
	v.SetDefault("ratelimit.requests_per_second", 10)
	v.SetDefault("ratelimit.burst", 20)
	v.SetDefault("ratelimit.window_requests", 300)
	v.SetDefault("ratelimit.window_seconds", 60)
}
