package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "0.0.0.0:8080", cfg.Server.Address())
	assert.Equal(t, 15*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, []string{"*"}, cfg.Server.CORSAllowOrigins)
	assert.Equal(t, DriverPostgres, cfg.Database.Driver)
	assert.Equal(t, "db/migrations", cfg.Database.MigrationsPath)
	assert.False(t, cfg.Database.AutoMigrate)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, 0, cfg.RateLimit.RequestsPerSecond)
	assert.Equal(t, 5, cfg.Breaker.MaxFailures)
	assert.Equal(t, 30*time.Second, cfg.Breaker.ResetTimeout)
	assert.True(t, cfg.IsDevelopment())
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("APP_ENV", "production")
	t.Setenv("DB_DRIVER", "sqlite")
	t.Setenv("DB_SQLITE_PATH", "/tmp/accounts.db")
	t.Setenv("DB_CONN_MAX_LIFETIME", "30m")
	t.Setenv("AUTO_MIGRATE", "true")
	t.Setenv("LOG_LEVEL", "DEBUG")
	t.Setenv("LOG_FORMAT", "text")
	t.Setenv("CORS_ALLOW_ORIGINS", "https://a.example.com, https://b.example.com")
	t.Setenv("RATE_LIMIT_PER_SECOND", "20")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.True(t, cfg.IsProduction())
	assert.Equal(t, DriverSQLite, cfg.Database.Driver)
	assert.Equal(t, "/tmp/accounts.db", cfg.Database.SQLitePath)
	assert.Equal(t, 30*time.Minute, cfg.Database.ConnMaxLifetime)
	assert.True(t, cfg.Database.AutoMigrate)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
	assert.Equal(t, []string{"https://a.example.com", "https://b.example.com"}, cfg.Server.CORSAllowOrigins)
	assert.Equal(t, 20, cfg.RateLimit.RequestsPerSecond)
}

func TestLoad_InvalidValuesFallBackToDefaults(t *testing.T) {
	t.Setenv("DB_MAX_CONNECTIONS", "many")
	t.Setenv("SERVER_READ_TIMEOUT", "soon")
	t.Setenv("SEED_DATABASE", "maybe")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 25, cfg.Database.MaxConnections)
	assert.Equal(t, 15*time.Second, cfg.Server.ReadTimeout)
	assert.False(t, cfg.Database.SeedDatabase)
}

func TestLoad_RejectsInvalidConfiguration(t *testing.T) {
	testCases := []struct {
		name  string
		key   string
		value string
	}{
		{"unknown driver", "DB_DRIVER", "oracle"},
		{"unknown environment", "APP_ENV", "staging"},
		{"non numeric port", "SERVER_PORT", "http"},
		{"unknown log format", "LOG_FORMAT", "xml"},
		{"negative rate limit", "RATE_LIMIT_PER_SECOND", "-1"},
		{"negative breaker threshold", "DB_BREAKER_MAX_FAILURES", "-3"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv(tc.key, tc.value)

			cfg, err := Load()
			assert.Error(t, err)
			assert.Nil(t, cfg)
			assert.Contains(t, err.Error(), "invalid configuration")
		})
	}
}

func TestDatabaseConfig_ConnectionStrings(t *testing.T) {
	cfg := DatabaseConfig{
		Host:     "db",
		Port:     "5432",
		User:     "u",
		Password: "p",
		Name:     "accounts",
		SSLMode:  "disable",
	}

	assert.Equal(t, "host=db port=5432 user=u password=p dbname=accounts sslmode=disable", cfg.DSN())
	assert.Equal(t, "postgres://u:p@db:5432/accounts?sslmode=disable", cfg.URL())
}
