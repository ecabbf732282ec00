package config

import (
	"strings"
	"testing"
	"time"
)

func TestFromEnvDefaults(t *testing.T) {
	for _, key := range []string{"HTTP_PORT", "DATA_BACKEND", "CACHE_TTL", "TIMEZONE", "REDIS_ADDR", "RABBITMQ_URL", "LOG_LEVEL", "LOG_FORMAT", "DB_MIGRATE", "METRICS_ENABLED", "MONGO_URI"} {
		t.Setenv(key, "")
	}

	cfg, err := FromEnv()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Addr() != ":8080" {
		t.Errorf("Addr = %q", cfg.Addr())
	}
	if cfg.DataBackend != BackendMongo {
		t.Errorf("DataBackend = %q", cfg.DataBackend)
	}
	if cfg.CacheTTL != 5*time.Minute {
		t.Errorf("CacheTTL = %v", cfg.CacheTTL)
	}
	if cfg.Timezone != time.UTC {
		t.Errorf("Timezone = %v", cfg.Timezone)
	}
	if cfg.RedisAddr != "" || cfg.RabbitMQURL != "" {
		t.Errorf("optional integrations must default to disabled")
	}
	if !cfg.DBMigrate || !cfg.MetricsEnabled {
		t.Errorf("DBMigrate and MetricsEnabled must default to true")
	}
}

func TestFromEnvOverrides(t *testing.T) {
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("DATA_BACKEND", "Postgres")
	t.Setenv("DATABASE_URL", "postgres://u:p@db:5432/x")
	t.Setenv("CACHE_TTL", "30s")
	t.Setenv("TIMEZONE", "America/Sao_Paulo")
	t.Setenv("METRICS_ENABLED", "false")
	t.Setenv("LOG_FORMAT", "json")

	cfg, err := FromEnv()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Addr() != ":9090" || cfg.DataBackend != BackendPostgres {
		t.Errorf("unexpected config %+v", cfg)
	}
	if cfg.CacheTTL != 30*time.Second {
		t.Errorf("CacheTTL = %v", cfg.CacheTTL)
	}
	if cfg.Timezone.String() != "America/Sao_Paulo" {
		t.Errorf("Timezone = %v", cfg.Timezone)
	}
	if cfg.MetricsEnabled {
		t.Errorf("MetricsEnabled should be false")
	}
}

func TestFromEnvInvalidValues(t *testing.T) {
	t.Setenv("DATA_BACKEND", "cassandra")
	t.Setenv("CACHE_TTL", "soon")
	t.Setenv("DB_MIGRATE", "maybe")
	t.Setenv("TIMEZONE", "Mars/Olympus")

	_, err := FromEnv()
	if err == nil {
		t.Fatal("expected error")
	}
	for _, key := range []string{"CACHE_TTL", "DB_MIGRATE", "TIMEZONE"} {
		if !strings.Contains(err.Error(), key) {
			t.Errorf("error should mention %s: %v", key, err)
		}
	}
}

func TestValidate(t *testing.T) {
	valid := Config{HTTPPort: "8080", DataBackend: BackendMemory, SeedURL: "http://seed", LogLevel: "info", LogFormat: "console"}
	if err := valid.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	tests := map[string]func(c *Config){
		"unknown backend":   func(c *Config) { c.DataBackend = "sqlite" },
		"mongo without uri": func(c *Config) { c.DataBackend = BackendMongo; c.MongoURI = "" },
		"empty port":        func(c *Config) { c.HTTPPort = "" },
		"bad log format":    func(c *Config) { c.LogFormat = "xml" },
		"bad log level":     func(c *Config) { c.LogLevel = "loud" },
	}
	for name, mutate := range tests {
		t.Run(name, func(t *testing.T) {
			c := valid
			mutate(&c)
			if err := c.Validate(); err == nil {
				t.Fatal("expected validation error")
			}
		})
	}
}
