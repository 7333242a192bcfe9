package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig
	RateLimit  RateLimitConfig

	// Persistence
	Database DatabaseConfig
	Storage  StorageConfig

	// List endpoints
	Query QueryConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type RateLimitConfig struct {
	RequestsPerMin int
}

type DatabaseConfig struct {
	Driver          string
	DSN             string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	Migrate         bool
}

type StorageConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
	// MaxUploadSize is in bytes.
	MaxUploadSize int64
}

// QueryConfig tunes the filter/sort/paging engine behind every list endpoint.
type QueryConfig struct {
	DefaultLimit  int
	MaxLimit      int
	CaseSensitive bool
	LogRejections bool
	// Timezone anchors relative date filters such as "today".
	Timezone string
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")
	v.AddConfigPath(".")
	v.AddConfigPath("/etc/app/")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}
	return fromViper(v)
}

func fromViper(v *viper.Viper) (*Config, error) {
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	setDefaults(v)

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = v.GetString("environment.name")
	cfg.HTTPServer.Port = v.GetInt("http_server.port")
	cfg.HTTPServer.Mode = v.GetString("http_server.mode")
	cfg.Logger.Level = v.GetString("logger.level")
	cfg.Logger.Mode = v.GetString("logger.mode")
	cfg.Logger.Encoding = v.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = v.GetBool("logger.color_enabled")
	cfg.RateLimit.RequestsPerMin = v.GetInt("rate_limit.requests_per_min")

	// Database
	cfg.Database.Driver = strings.ToLower(v.GetString("database.driver"))
	cfg.Database.DSN = v.GetString("database.dsn")
	cfg.Database.MaxOpenConns = v.GetInt("database.max_open_conns")
	cfg.Database.MaxIdleConns = v.GetInt("database.max_idle_conns")
	cfg.Database.ConnMaxLifetime = v.GetDuration("database.conn_max_lifetime")
	cfg.Database.Migrate = v.GetBool("database.migrate")

	// Blob storage
	cfg.Storage.Endpoint = v.GetString("storage.endpoint")
	cfg.Storage.AccessKey = v.GetString("storage.access_key")
	cfg.Storage.SecretKey = v.GetString("storage.secret_key")
	cfg.Storage.Bucket = v.GetString("storage.bucket")
	cfg.Storage.UseSSL = v.GetBool("storage.use_ssl")
	cfg.Storage.MaxUploadSize = v.GetInt64("storage.max_upload_size")

	// Query engine
	cfg.Query.DefaultLimit = v.GetInt("query.default_limit")
	cfg.Query.MaxLimit = v.GetInt("query.max_limit")
	cfg.Query.CaseSensitive = v.GetBool("query.case_sensitive")
	cfg.Query.LogRejections = v.GetBool("query.log_rejections")
	cfg.Query.Timezone = v.GetString("query.timezone")

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.Database.Driver == "" {
		return fmt.Errorf("database.driver is required")
	}
	if c.Query.DefaultLimit <= 0 {
		return fmt.Errorf("query.default_limit must be positive")
	}
	if c.Query.MaxLimit < c.Query.DefaultLimit {
		return fmt.Errorf("query.max_limit (%d) is below query.default_limit (%d)", c.Query.MaxLimit, c.Query.DefaultLimit)
	}
	if _, err := time.LoadLocation(c.Query.Timezone); err != nil {
		return fmt.Errorf("query.timezone: %w", err)
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("environment.name", "development")
	v.SetDefault("http_server.port", 8080)
	v.SetDefault("http_server.mode", "debug")
	v.SetDefault("logger.level", "debug")
	v.SetDefault("logger.mode", "debug")
	v.SetDefault("logger.encoding", "console")
	v.SetDefault("logger.color_enabled", true)
	v.SetDefault("rate_limit.requests_per_min", 120)

	v.SetDefault("database.driver", "postgres")
	v.SetDefault("database.max_open_conns", 25)
	v.SetDefault("database.max_idle_conns", 5)
	v.SetDefault("database.conn_max_lifetime", "5m")
	v.SetDefault("database.migrate", true)

	v.SetDefault("storage.bucket", "catalog-files")
	v.SetDefault("storage.max_upload_size", 32<<20)

	v.SetDefault("query.default_limit", 10)
	v.SetDefault("query.max_limit", 100)
	v.SetDefault("query.case_sensitive", false)
	v.SetDefault("query.log_rejections", false)
	v.SetDefault("query.timezone", "UTC")
}
