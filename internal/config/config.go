package config

import (
	"fmt"
	"os"

	"github.com/spf13/viper"
)

// Config carries yaml tags alongside the mapstructure ones so standalone
// scripts can yaml.Unmarshal the same file without pulling in viper.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Storage   StorageConfig   `mapstructure:"storage" yaml:"storage"`
	Database  DatabaseConfig  `mapstructure:"database" yaml:"database"`
	CORS      CORSConfig      `mapstructure:"cors" yaml:"cors"`
	RateLimit RateLimitConfig `mapstructure:"rate_limit" yaml:"rate_limit"`
	Tracing   TracingConfig   `mapstructure:"tracing" yaml:"tracing"`

	// Runtime flags, set from the command line rather than the config file.
	MigrateOnly bool `mapstructure:"-" yaml:"-"` // migrate/seed the store, then exit
}

type ServerConfig struct {
	Port string `yaml:"port"`
	Mode string `yaml:"mode"`
}

// StorageConfig selects the persistence backend. "json" keeps all state in
// flat files under DataDir; "database" uses the relational store.
type StorageConfig struct {
	Backend string `mapstructure:"backend" yaml:"backend"`
	DataDir string `mapstructure:"data_dir" yaml:"data_dir"`
}

type DatabaseConfig struct {
	Driver    string `mapstructure:"driver" yaml:"driver"` // sqlite or mysql
	Path      string `mapstructure:"path" yaml:"path"`     // sqlite file path
	Host      string `yaml:"host"`
	Port      int    `yaml:"port"`
	User      string `yaml:"user"`
	Password  string `yaml:"password"`
	DBName    string `yaml:"dbname"`
	Charset   string `yaml:"charset"`
	ParseTime bool   `yaml:"parsetime"`
}

type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins" yaml:"allowed_origins"`
}

type RateLimitConfig struct {
	MaxRequests   int `mapstructure:"max_requests" yaml:"max_requests"`
	WindowMinutes int `mapstructure:"window_minutes" yaml:"window_minutes"`
}

type TracingConfig struct {
	Enabled           bool   `mapstructure:"enabled" yaml:"enabled"`
	CollectorEndpoint string `mapstructure:"collector_endpoint" yaml:"collector_endpoint"`
}

func LoadConfig(path string) (*Config, error) {
	viper.AddConfigPath(path)
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	viper.SetEnvPrefix("PLP")
	viper.AutomaticEnv()

	// Storage
	viper.BindEnv("storage.backend", "STORAGE_BACKEND")
	viper.BindEnv("storage.data_dir", "STORAGE_DATA_DIR")

	// Database
	viper.BindEnv("database.driver", "DATABASE_DRIVER")
	viper.BindEnv("database.path", "DATABASE_PATH")
	viper.BindEnv("database.host", "DATABASE_HOST")
	viper.BindEnv("database.port", "DATABASE_PORT")
	viper.BindEnv("database.user", "DATABASE_USER")
	viper.BindEnv("database.password", "DATABASE_PASSWORD")
	viper.BindEnv("database.dbname", "DATABASE_NAME")

	// Server
	viper.BindEnv("server.port", "SERVER_PORT")
	viper.BindEnv("server.mode", "SERVER_MODE")

	// Tracing
	viper.BindEnv("tracing.enabled", "TRACING_ENABLED")
	viper.BindEnv("tracing.collector_endpoint", "TRACING_COLLECTOR_ENDPOINT")

	if err := viper.ReadInConfig(); err != nil {
		return nil, err
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	switch cfg.Storage.Backend {
	case "json", "database":
	default:
		return nil, fmt.Errorf("unknown storage backend %q (want json or database)", cfg.Storage.Backend)
	}

	if cfg.Storage.Backend == "json" || cfg.Database.Driver == "sqlite" {
		if cfg.Storage.DataDir == "" {
			cfg.Storage.DataDir = "data"
		}
		if _, err := os.Stat(cfg.Storage.DataDir); os.IsNotExist(err) {
			os.MkdirAll(cfg.Storage.DataDir, 0755)
		}
	}

	return &cfg, nil
}
