package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("LLM_API_KEY", "test-key")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8000", cfg.Port)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "./data/badger", cfg.HistoryDBPath)
	assert.Equal(t, 30*time.Second, cfg.HealthCacheTTL)
	assert.Equal(t, []string{"*"}, cfg.CORSAllowOrigins)

	assert.Equal(t, "gemini", cfg.LLM.Provider)
	assert.Equal(t, "test-key", cfg.LLM.APIKey)
	assert.Equal(t, time.Duration(0), cfg.LLM.Timeout)
	assert.Equal(t, 2048, cfg.LLM.MaxTokens)

	assert.Equal(t, 1433, cfg.SQLServer.Port)
	assert.True(t, cfg.SQLServer.Encrypt)
	assert.False(t, cfg.SQLServer.TrustServerCertificate)
	assert.False(t, cfg.SQLServer.IsConfigured())
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("LLM_API_KEY", "test-key")
	t.Setenv("LLM_PROVIDER", " Anthropic ")
	t.Setenv("LLM_TIMEOUT", "45s")
	t.Setenv("PORT", "9090")
	t.Setenv("CORS_ALLOW_ORIGINS", "http://localhost:3000,https://dash.example.com")
	t.Setenv("SQL_SERVER", "warehouse.example.com")
	t.Setenv("SQL_DATABASE", "bing_lake_db")
	t.Setenv("SQL_FEDAUTH", "ActiveDirectoryDefault")
	t.Setenv("SQL_ENCRYPT", "false")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "anthropic", cfg.LLM.Provider)
	assert.Equal(t, 45*time.Second, cfg.LLM.Timeout)
	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, []string{"http://localhost:3000", "https://dash.example.com"}, cfg.CORSAllowOrigins)
	assert.True(t, cfg.SQLServer.IsConfigured())
	assert.Equal(t, "ActiveDirectoryDefault", cfg.SQLServer.FedAuth)
	assert.False(t, cfg.SQLServer.Encrypt)
}

func TestLoad_RequiresAPIKey(t *testing.T) {
	t.Setenv("LLM_API_KEY", "")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "LLM_API_KEY")
}

func TestLoad_RejectsBadPort(t *testing.T) {
	t.Setenv("LLM_API_KEY", "test-key")
	t.Setenv("SQL_PORT", "70000")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SQL_PORT")
}
