package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("DB_DRIVER", "")
	t.Setenv("DB_PATH", "")
	t.Setenv("CAST_STRATEGY", "")

	cfg := Load()

	assert.Equal(t, DriverSQLite, cfg.Database.Driver)
	assert.Equal(t, "movies.db", cfg.Database.Path)
	assert.Equal(t, "join", cfg.Cast.Strategy)
	assert.Equal(t, 10*time.Second, cfg.Database.QueryTimeout)
	assert.True(t, cfg.Database.AutoMigrate)
	assert.False(t, cfg.ImportBucketEnabled())
	require.NoError(t, cfg.Validate())
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("DB_DRIVER", "postgres")
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("DB_QUERY_TIMEOUT", "3s")
	t.Setenv("DB_AUTO_MIGRATE", "false")
	t.Setenv("DB_MAX_OPEN_CONNS", "not-a-number")
	t.Setenv("GEOCODE_RATE_PER_SECOND", "2.5")

	cfg := Load()

	assert.Equal(t, DriverPostgres, cfg.Database.Driver)
	assert.Equal(t, 3*time.Second, cfg.Database.QueryTimeout)
	assert.False(t, cfg.Database.AutoMigrate)
	assert.Equal(t, 10, cfg.Database.MaxOpenConns)
	assert.Equal(t, 2.5, cfg.Geocode.RatePerSecond)
	assert.Contains(t, cfg.Database.DSN(), "host=db.internal")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"unknown driver", func(c *Config) { c.Database.Driver = "oracle" }, "unsupported DB_DRIVER"},
		{"empty sqlite path", func(c *Config) { c.Database.Path = "" }, "DB_PATH"},
		{"bad strategy", func(c *Config) { c.Cast.Strategy = "lazy" }, "CAST_STRATEGY"},
		{"zero rate", func(c *Config) { c.Geocode.RatePerSecond = 0 }, "GEOCODE_RATE_PER_SECOND"},
		{"minio without credentials", func(c *Config) { c.MinIO.Endpoint = "localhost:9000" }, "MINIO_ACCESS_KEY_ID"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Load()
			cfg.Database.Driver = DriverSQLite
			cfg.Database.Path = "movies.db"
			cfg.Cast.Strategy = "join"
			cfg.Geocode.RatePerSecond = 1
			cfg.MinIO.Endpoint = ""
			tt.mutate(cfg)

			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
