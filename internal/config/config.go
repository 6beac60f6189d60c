package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
	DriverMySQL    = "mysql"

	DefaultPath = "charity.yaml"
)

// Config holds all charity configuration.
type Config struct {
	Database DatabaseConfig `yaml:"database"`
	Logging  LoggingConfig  `yaml:"logging"`
	Server   ServerConfig   `yaml:"server"`
	Auth     AuthConfig     `yaml:"auth"`
}

type DatabaseConfig struct {
	Driver string `yaml:"driver"` // sqlite, postgres, mysql
	DSN    string `yaml:"dsn"`
}

type LoggingConfig struct {
	Level    string `yaml:"level"`    // debug, info, warn, error
	Encoding string `yaml:"encoding"` // json, console
	Output   string `yaml:"output"`   // stderr, stdout or a file path
}

type ServerConfig struct {
	Addr           string   `yaml:"addr"`
	AllowedOrigins []string `yaml:"allowed_origins"`
}

// AuthConfig controls bearer tokens on the JSON API. An empty secret leaves
// the API open.
type AuthConfig struct {
	Secret   string        `yaml:"secret"`
	TokenTTL time.Duration `yaml:"token_ttl"`
}

// DefaultConfig returns the configuration used when no file is present.
func DefaultConfig() *Config {
	return &Config{
		Database: DatabaseConfig{
			Driver: DriverSQLite,
			DSN:    "charity.db",
		},
		Logging: LoggingConfig{
			Level:    "warn",
			Encoding: "console",
			Output:   "stderr",
		},
		Server: ServerConfig{
			Addr: ":3000",
			AllowedOrigins: []string{
				"http://localhost:3000",
				"http://localhost:5173",
			},
		},
		Auth: AuthConfig{
			TokenTTL: 168 * time.Hour,
		},
	}
}

// LoadEnv reads .env files into the process environment. Missing files are
// not an error; the system environment is used as is.
func LoadEnv(files ...string) {
	_ = godotenv.Load(files...)
}

// Load reads configuration from a YAML file and applies environment
// overrides on top. A missing file yields the defaults.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	cfg.applyEnvOverrides()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Save writes the configuration to a YAML file.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

func (c *Config) applyEnvOverrides() {
	if driver := os.Getenv("CHARITY_DB_DRIVER"); driver != "" {
		c.Database.Driver = strings.ToLower(driver)
	}
	if dsn := os.Getenv("DATABASE_URL"); dsn != "" {
		c.Database.DSN = dsn
		if os.Getenv("CHARITY_DB_DRIVER") == "" && isPostgresURL(dsn) {
			c.Database.Driver = DriverPostgres
		}
	}

	if level := os.Getenv("CHARITY_LOG_LEVEL"); level != "" {
		c.Logging.Level = level
	}

	if port := os.Getenv("PORT"); port != "" {
		c.Server.Addr = ":" + port
	}

	if clientURL := os.Getenv("CLIENT_URL"); clientURL != "" {
		c.Server.AllowedOrigins = append(c.Server.AllowedOrigins, clientURL)
	}

	if allowedOrigins := os.Getenv("ALLOWED_ORIGINS"); allowedOrigins != "" {
		for _, origin := range strings.Split(allowedOrigins, ",") {
			trimmed := strings.TrimSpace(origin)
			if trimmed != "" {
				c.Server.AllowedOrigins = append(c.Server.AllowedOrigins, trimmed)
			}
		}
	}

	if secret := os.Getenv("JWT_SECRET"); secret != "" {
		c.Auth.Secret = secret
	}
}

// Validate checks that the configuration can be used to start the program.
func (c *Config) Validate() error {
	switch c.Database.Driver {
	case DriverSQLite, DriverPostgres, DriverMySQL:
	default:
		return fmt.Errorf("unsupported database driver %q", c.Database.Driver)
	}

	if c.Database.DSN == "" {
		return fmt.Errorf("database dsn is empty")
	}

	if _, err := zapcore.ParseLevel(c.Logging.Level); err != nil {
		return fmt.Errorf("invalid log level %q: %w", c.Logging.Level, err)
	}

	if len(c.Server.AllowedOrigins) == 0 {
		return fmt.Errorf("server allowed_origins is empty")
	}

	if c.Auth.TokenTTL <= 0 {
		return fmt.Errorf("auth token_ttl must be positive")
	}

	return nil
}

func isPostgresURL(dsn string) bool {
	return strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://")
}
