package mcpcfg_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ramki271/Incident-management/mcpcfg"
)

func Test_ConfigFromEnv(t *testing.T) {
	t.Setenv("DD_API_KEY", "abc123")
	t.Setenv("DD_APP_KEY", "def456")
	t.Setenv("DD_SITE", "datadoghq.eu")
	t.Setenv("GITHUB_PERSONAL_ACCESS_TOKEN", "ghp_token")

	cfg := mcpcfg.ConfigFromEnv()
	assert.Equal(t, "abc123", cfg.Datadog.APIKey)
	assert.Equal(t, "def456", cfg.Datadog.AppKey)
	assert.Equal(t, "datadoghq.eu", cfg.Datadog.Site)
	assert.Equal(t, "ghp_token", cfg.Github.Token)
}

func Test_LoadConfig(t *testing.T) {
	t.Setenv("DD_API_KEY", "abc123")
	t.Setenv("DD_APP_KEY", "def456")
	t.Setenv("GITHUB_PERSONAL_ACCESS_TOKEN", "ghp_token")

	cfg, err := mcpcfg.LoadConfig("testdata/mcp.yaml")
	require.NoError(t, err)
	assert.Equal(t, "abc123", cfg.Datadog.APIKey)
	assert.Equal(t, "def456", cfg.Datadog.AppKey)
	assert.Equal(t, "us5.datadoghq.com", cfg.Datadog.Site)
	assert.Equal(t, "ghp_token", cfg.Github.Token)

	_, err = mcpcfg.LoadConfig("testdata/missing.yaml")
	assert.Error(t, err)
}

func Test_LoadConfig_Empty(t *testing.T) {
	t.Setenv("DD_API_KEY", "abc123")

	cfg, err := mcpcfg.LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, "abc123", cfg.Datadog.APIKey)
}

func Test_LoadEnv(t *testing.T) {
	dir := t.TempDir()
	envFile := filepath.Join(dir, ".env")
	err := os.WriteFile(envFile, []byte("DD_API_KEY=from_dotenv\n"), 0o600)
	require.NoError(t, err)

	// godotenv does not override variables already set
	os.Unsetenv("DD_API_KEY")
	mcpcfg.LoadEnv(envFile)
	t.Cleanup(func() { os.Unsetenv("DD_API_KEY") })
	assert.Equal(t, "from_dotenv", os.Getenv("DD_API_KEY"))

	// missing files are not fatal
	mcpcfg.LoadEnv(filepath.Join(dir, "nope.env"))
}
