package config

import (
	"strings"
	"testing"
	"time"

	"github.com/spf13/viper"
)

func load(t *testing.T, yaml string) (*Config, error) {
	t.Helper()
	v := viper.New()
	v.SetConfigType("yaml")
	if err := v.ReadConfig(strings.NewReader(yaml)); err != nil {
		t.Fatalf("read config: %v", err)
	}
	return fromViper(v)
}

func TestDefaults(t *testing.T) {
	cfg, err := load(t, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.HTTPServer.Port != 8080 || cfg.Database.Driver != "postgres" {
		t.Errorf("unexpected defaults: %+v", cfg)
	}
	if cfg.Query.DefaultLimit != 10 || cfg.Query.MaxLimit != 100 || cfg.Query.CaseSensitive {
		t.Errorf("unexpected query defaults: %+v", cfg.Query)
	}
	if cfg.Query.Timezone != "UTC" {
		t.Errorf("timezone = %q", cfg.Query.Timezone)
	}
	if cfg.Database.ConnMaxLifetime != 5*time.Minute {
		t.Errorf("conn_max_lifetime = %v", cfg.Database.ConnMaxLifetime)
	}
}

func TestOverrides(t *testing.T) {
	cfg, err := load(t, `
database:
  driver: SQLite
  dsn: ":memory:"
query:
  default_limit: 25
  max_limit: 50
  log_rejections: true
storage:
  endpoint: minio:9000
  use_ssl: true
`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Database.Driver != "sqlite" || cfg.Database.DSN != ":memory:" {
		t.Errorf("unexpected database config: %+v", cfg.Database)
	}
	if cfg.Query.DefaultLimit != 25 || cfg.Query.MaxLimit != 50 || !cfg.Query.LogRejections {
		t.Errorf("unexpected query config: %+v", cfg.Query)
	}
	if cfg.Storage.Endpoint != "minio:9000" || !cfg.Storage.UseSSL || cfg.Storage.Bucket != "catalog-files" {
		t.Errorf("unexpected storage config: %+v", cfg.Storage)
	}
}

func TestValidate(t *testing.T) {
	tcs := map[string]string{
		"Zero default limit":     "query:\n  default_limit: 0\n",
		"Max below default":      "query:\n  default_limit: 50\n  max_limit: 20\n",
		"Negative default limit": "query:\n  default_limit: -1\n",
		"Unknown timezone":       "query:\n  timezone: Mars/Olympus\n",
	}
	for name, yaml := range tcs {
		t.Run(name, func(t *testing.T) {
			if _, err := load(t, yaml); err == nil {
				t.Errorf("expected validation error")
			}
		})
	}
}
