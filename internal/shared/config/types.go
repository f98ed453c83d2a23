package config

import (
	"fmt"
	"strings"
	"time"
)

type ServerConfig struct {
	Host           string   `mapstructure:"host"`
	Port           int      `mapstructure:"port"`
	Mode           string   `mapstructure:"mode"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
	Timezone       string   `mapstructure:"timezone"`
}

func (s *ServerConfig) GetAddr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

type DatabaseConfig struct {
	Driver          string `mapstructure:"driver"`
	Host            string `mapstructure:"host"`
	Port            int    `mapstructure:"port"`
	Username        string `mapstructure:"username"`
	Password        string `mapstructure:"password"`
	Database        string `mapstructure:"database"`
	SSLMode         string `mapstructure:"ssl_mode"`
	MaxIdleConns    int    `mapstructure:"max_idle_conns"`
	MaxOpenConns    int    `mapstructure:"max_open_conns"`
	ConnMaxLifetime int    `mapstructure:"conn_max_lifetime"`
}

const (
	DriverMySQL    = "mysql"
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// GetDSN builds the driver specific connection string. For sqlite the
// database field is the file path.
func (d *DatabaseConfig) GetDSN() string {
	switch d.GetDriver() {
	case DriverPostgres:
		sslMode := d.SSLMode
		if sslMode == "" {
			sslMode = "disable"
		}
		return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%d sslmode=%s TimeZone=UTC",
			d.Host, d.Username, d.Password, d.Database, d.Port, sslMode)
	case DriverSQLite:
		return d.Database
	default:
		return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&collation=utf8mb4_general_ci&parseTime=true&loc=UTC",
			d.Username, d.Password, d.Host, d.Port, d.Database)
	}
}

func (d *DatabaseConfig) GetDriver() string {
	driver := strings.ToLower(strings.TrimSpace(d.Driver))
	if driver == "" {
		return DriverMySQL
	}
	return driver
}

type LoggerConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	OutputPath string `mapstructure:"output_path"`
}

type RedisConfig struct {
	Enabled        bool   `mapstructure:"enabled"`
	Host           string `mapstructure:"host"`
	Port           int    `mapstructure:"port"`
	Password       string `mapstructure:"password"`
	DB             int    `mapstructure:"db"`
	CatalogTTLSecs int    `mapstructure:"catalog_ttl_seconds"`
}

func (r *RedisConfig) GetAddr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

func (r *RedisConfig) CatalogTTL() time.Duration {
	return time.Duration(r.CatalogTTLSecs) * time.Second
}

const (
	CatalogSourceDatabase = "database"
	CatalogSourceFile     = "file"
)

type CatalogConfig struct {
	Source   string `mapstructure:"source"`
	FilePath string `mapstructure:"file_path"`
	Watch    bool   `mapstructure:"watch"`
}

type PricingConfig struct {
	Currency             string  `mapstructure:"currency"`
	VatRate              float64 `mapstructure:"vat_rate"`
	IncludeVatByDefault  bool    `mapstructure:"include_vat_by_default"`
	ProfessionalPlanCode string  `mapstructure:"professional_plan_code"`
	OTAAddonCode         string  `mapstructure:"ota_addon_code"`
	DefaultTermMonths    int     `mapstructure:"default_term_months"`
}

type RateLimitConfig struct {
	Enabled           bool    `mapstructure:"enabled"`
	RequestsPerSecond float64 `mapstructure:"requests_per_second"`
	Burst             int     `mapstructure:"burst"`
	WindowRequests    int     `mapstructure:"window_requests"`
	WindowSeconds     int     `mapstructure:"window_seconds"`
}

func (r *RateLimitConfig) Window() time.Duration {
	return time.Duration(r.WindowSeconds) * time.Second
}
