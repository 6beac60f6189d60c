package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charityfund/charity/internal/auth"
	"github.com/charityfund/charity/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// useWorkspace points the CLI at a fresh sqlite file and a missing config file.
func useWorkspace(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	t.Setenv("CHARITY_DB_DRIVER", config.DriverSQLite)
	t.Setenv("DATABASE_URL", filepath.Join(dir, "charity.db"))
	t.Setenv("CHARITY_LOG_LEVEL", "error")
	t.Setenv("JWT_SECRET", "")

	return filepath.Join(dir, "charity.yaml")
}

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()
	return out.String(), err
}

func TestMenuCmd(t *testing.T) {
	cfgPath := useWorkspace(t)

	out, err := execute(t, "4\nAlice\n\n\n9\nexit\n", "--config", cfgPath)
	require.NoError(t, err)

	assert.Contains(t, out, "Select an option (enter 'exit' to close):")
	assert.Contains(t, out, "Donor added successfully! (ID: 1)")
	assert.Contains(t, out, "Total Donations: 0.00")
}

func TestListCmd(t *testing.T) {
	cfgPath := useWorkspace(t)

	_, err := execute(t, "4\nAlice\nalice@example.org\n\nexit\n", "--config", cfgPath)
	require.NoError(t, err)

	out, err := execute(t, "", "list", "donors", "--config", cfgPath)
	require.NoError(t, err)
	assert.Contains(t, out, "List of Donors:")
	assert.Contains(t, out, "ID: 1, Name: Alice, Email: alice@example.org")

	out, err = execute(t, "", "list", "volunteer-projects", "--config", cfgPath)
	require.NoError(t, err)
	assert.Contains(t, out, "No volunteer projects found.")

	_, err = execute(t, "", "list", "sponsors", "--config", cfgPath)
	assert.Error(t, err)
}

func TestSumCmd(t *testing.T) {
	cfgPath := useWorkspace(t)

	script := strings.Join([]string{
		"4", "Alice", "", "",
		"6", "Shelter", "", "500",
		"5", "12.34", "1", "1",
		"5", "0.66", "1", "1",
		"exit",
	}, "\n") + "\n"

	_, err := execute(t, script, "--config", cfgPath)
	require.NoError(t, err)

	out, err := execute(t, "", "sum", "--config", cfgPath)
	require.NoError(t, err)
	assert.Equal(t, "Total Donations: 13.00\n", out)
}

func TestTokenCmd(t *testing.T) {
	cfgPath := useWorkspace(t)

	_, err := execute(t, "", "token", "--subject", "front-desk", "--config", cfgPath)
	assert.Error(t, err, "token needs a secret")

	t.Setenv("JWT_SECRET", "s3cret")

	out, err := execute(t, "", "token", "--subject", "front-desk", "--config", cfgPath)
	require.NoError(t, err)

	cfg := config.DefaultConfig()
	cfg.Auth.Secret = "s3cret"
	issuer, err := auth.NewIssuer(cfg.Auth)
	require.NoError(t, err)

	claims, err := issuer.VerifyJWT(strings.TrimSpace(out))
	require.NoError(t, err)
	assert.Equal(t, "front-desk", claims.Subject)
}

func TestInitCmd(t *testing.T) {
	cfgPath := useWorkspace(t)

	out, err := execute(t, "", "init", "--config", cfgPath)
	require.NoError(t, err)
	assert.Contains(t, out, "Config written to "+cfgPath)

	loaded, err := config.Load(cfgPath)
	require.NoError(t, err)
	assert.Equal(t, config.DriverSQLite, loaded.Database.Driver)
	assert.Equal(t, filepath.Join(filepath.Dir(cfgPath), "charity.db"), loaded.Database.DSN)

	_, err = execute(t, "", "init", "--config", cfgPath)
	assert.Error(t, err, "existing file is kept")

	_, err = execute(t, "", "init", "--force", "--config", cfgPath)
	require.NoError(t, err)
}

func TestInvalidConfig(t *testing.T) {
	cfgPath := useWorkspace(t)
	t.Setenv("CHARITY_DB_DRIVER", "oracle")

	_, err := execute(t, "", "sum", "--config", cfgPath)
	assert.Error(t, err)
}
