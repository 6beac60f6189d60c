package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"CHARITY_DB_DRIVER", "DATABASE_URL", "CHARITY_LOG_LEVEL", "PORT", "CLIENT_URL", "ALLOWED_ORIGINS", "JWT_SECRET"} {
		t.Setenv(key, "")
	}
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.Equal(t, DriverSQLite, cfg.Database.Driver)
	assert.Equal(t, "charity.db", cfg.Database.DSN)
	assert.Equal(t, "warn", cfg.Logging.Level)
	assert.Equal(t, ":3000", cfg.Server.Addr)
	assert.Equal(t, 168*time.Hour, cfg.Auth.TokenTTL)
}

func TestLoad_File(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "charity.yaml")
	data := []byte(`
database:
  driver: postgres
  dsn: host=localhost dbname=charity
logging:
  level: debug
server:
  addr: ":9000"
auth:
  secret: s3cret
  token_ttl: 1h
`)
	require.NoError(t, os.WriteFile(path, data, 0644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, DriverPostgres, cfg.Database.Driver)
	assert.Equal(t, "host=localhost dbname=charity", cfg.Database.DSN)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, ":9000", cfg.Server.Addr)
	assert.Equal(t, "s3cret", cfg.Auth.Secret)
	assert.Equal(t, time.Hour, cfg.Auth.TokenTTL)
}

func TestLoad_InvalidYAML(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "charity.yaml")
	require.NoError(t, os.WriteFile(path, []byte("database: [unterminated"), 0644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestEnvOverrides(t *testing.T) {
	t.Run("DATABASE_URL with postgres scheme switches driver", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("DATABASE_URL", "postgres://u:p@localhost:5432/charity")

		cfg := DefaultConfig()
		cfg.applyEnvOverrides()

		assert.Equal(t, DriverPostgres, cfg.Database.Driver)
		assert.Equal(t, "postgres://u:p@localhost:5432/charity", cfg.Database.DSN)
	})

	t.Run("explicit driver wins over DSN scheme", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("CHARITY_DB_DRIVER", "SQLite")
		t.Setenv("DATABASE_URL", "postgres://u:p@localhost:5432/charity")

		cfg := DefaultConfig()
		cfg.applyEnvOverrides()

		assert.Equal(t, DriverSQLite, cfg.Database.Driver)
	})

	t.Run("PORT and origins", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("PORT", "8081")
		t.Setenv("CLIENT_URL", "https://charity.example")
		t.Setenv("ALLOWED_ORIGINS", " https://a.example , ,https://b.example")

		cfg := DefaultConfig()
		cfg.applyEnvOverrides()

		assert.Equal(t, ":8081", cfg.Server.Addr)
		assert.Contains(t, cfg.Server.AllowedOrigins, "https://charity.example")
		assert.Contains(t, cfg.Server.AllowedOrigins, "https://a.example")
		assert.Contains(t, cfg.Server.AllowedOrigins, "https://b.example")
		assert.NotContains(t, cfg.Server.AllowedOrigins, "")
	})

	t.Run("JWT_SECRET and log level", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("JWT_SECRET", "env-secret")
		t.Setenv("CHARITY_LOG_LEVEL", "error")

		cfg := DefaultConfig()
		cfg.applyEnvOverrides()

		assert.Equal(t, "env-secret", cfg.Auth.Secret)
		assert.Equal(t, "error", cfg.Logging.Level)
	})
}

func TestValidate(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())

	cfg.Database.Driver = DriverMySQL
	require.NoError(t, cfg.Validate())

	cfg.Database.Driver = "mssql"
	assert.Error(t, cfg.Validate())

	cfg = DefaultConfig()
	cfg.Logging.Level = "loud"
	assert.Error(t, cfg.Validate())

	cfg = DefaultConfig()
	cfg.Database.DSN = ""
	assert.Error(t, cfg.Validate())

	cfg = DefaultConfig()
	cfg.Server.AllowedOrigins = nil
	assert.Error(t, cfg.Validate())
}

func TestSaveRoundTrip(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "nested", "charity.yaml")
	cfg := DefaultConfig()
	cfg.Database.DSN = "other.db"
	require.NoError(t, cfg.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "other.db", loaded.Database.DSN)
}
