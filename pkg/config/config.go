package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/creasty/defaults"
	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// EnvPrefix is the prefix of environment variables that override file settings,
// e.g. WHITELIST_DATABASE_PASSWORD overrides database.password.
const EnvPrefix = "WHITELIST"

// Supported database drivers
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
	DriverMySQL    = "mysql"
)

// Config represents the application configuration
type Config struct {
	Server     ServerConfig     `mapstructure:"server"`
	Database   DatabaseConfig   `mapstructure:"database"`
	Logging    LoggingConfig    `mapstructure:"logging"`
	Monitoring MonitoringConfig `mapstructure:"monitoring"`
	UI         UIConfig         `mapstructure:"ui"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Host            string        `mapstructure:"host" default:"0.0.0.0"`
	Port            int           `mapstructure:"port" default:"8080" validate:"min=1,max=65535"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout" default:"15s"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout" default:"15s"`
	IdleTimeout     time.Duration `mapstructure:"idle_timeout" default:"60s"`
	RequestTimeout  time.Duration `mapstructure:"request_timeout" default:"30s"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout" default:"30s"`
}

// DatabaseConfig contains database connection settings.
// For the sqlite driver Database is the file path (or ":memory:") and the
// network settings are ignored.
type DatabaseConfig struct {
	Driver       string `mapstructure:"driver" default:"postgres" validate:"oneof=postgres sqlite mysql"`
	Host         string `mapstructure:"host" default:"localhost" validate:"required_unless=Driver sqlite"`
	Port         int    `mapstructure:"port" default:"5432" validate:"min=1,max=65535"`
	User         string `mapstructure:"user"`
	Password     string `mapstructure:"password"`
	Database     string `mapstructure:"database" default:"whitelist" validate:"required"`
	SSLMode      string `mapstructure:"ssl_mode" default:"disable" validate:"oneof=disable require verify-full"`
	MaxOpenConns int    `mapstructure:"max_open_conns" default:"25" validate:"min=0"`
}

// LoggingConfig contains logging settings
type LoggingConfig struct {
	Level      string `mapstructure:"level" default:"info" validate:"oneof=debug info warn error"`
	Format     string `mapstructure:"format" default:"json" validate:"oneof=json console"`
	OutputPath string `mapstructure:"output_path" default:"stdout"`
}

// MonitoringConfig contains metrics settings
type MonitoringConfig struct {
	Enabled     bool   `mapstructure:"enabled"`
	MetricsPath string `mapstructure:"metrics_path" default:"/metrics" validate:"startswith=/"`
}

// UIConfig contains settings for the interactive form and CLI output
type UIConfig struct {
	Language string `mapstructure:"language" default:"en" validate:"oneof=en de"`
}

// Load loads configuration from an optional YAML file and WHITELIST_* environment
// variables, fills unset fields with defaults and validates the result.
func Load(configPath string) (*Config, error) {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	bindEnv(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := defaults.Set(&cfg); err != nil {
		return nil, fmt.Errorf("failed to apply config defaults: %w", err)
	}

	if err := Validate(&cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

// Validate checks struct-level constraints and reports the first offending key.
func Validate(cfg *Config) error {
	err := validator.New(validator.WithRequiredStructEnabled()).Struct(cfg)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		return fmt.Errorf("%s: failed on %q constraint (value %v)", fieldKey(fe.Namespace()), fe.Tag(), fe.Value())
	}
	return err
}

// bindEnv registers keys that are typically only provided through the
// environment, so Unmarshal sees them even when the file omits them.
func bindEnv(v *viper.Viper) {
	for _, key := range []string{
		"database.driver",
		"database.host",
		"database.port",
		"database.user",
		"database.password",
		"database.database",
		"logging.level",
		"server.port",
		"ui.language",
	} {
		_ = v.BindEnv(key)
	}
}

// fieldKey converts a validator namespace like "Config.Database.SSLMode"
// into a lower-cased dotted key ("database.sslmode").
func fieldKey(ns string) string {
	ns = strings.TrimPrefix(ns, "Config.")
	return strings.ToLower(ns)
}
