package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

// Config is read from the environment (optionally seeded from a .env file).
// Secrets are never given defaults.
type Config struct {
	Port           string        `env:"PORT" env-default:"8000"`
	LogLevel       string        `env:"LOG_LEVEL" env-default:"info"`
	LogJSON        bool          `env:"LOG_JSON" env-default:"false"`
	HistoryDBPath  string        `env:"HISTORY_DB_PATH" env-default:"./data/badger"`
	HealthCacheTTL time.Duration `env:"HEALTH_CACHE_TTL" env-default:"30s"`

	// TODO: narrow to the dashboard origin before exposing this outside the dev network.
	CORSAllowOrigins []string `env:"CORS_ALLOW_ORIGINS" env-separator:"," env-default:"*"`

	LLM       LLMConfig
	SQLServer SQLServerConfig
}

type LLMConfig struct {
	Provider  string        `env:"LLM_PROVIDER" env-default:"gemini"` // gemini, openai, anthropic, dashscope
	APIKey    string        `env:"LLM_API_KEY"`
	Model     string        `env:"LLM_MODEL"`
	BaseURL   string        `env:"LLM_BASE_URL"`
	Timeout   time.Duration `env:"LLM_TIMEOUT" env-default:"0s"` // 0 waits for the provider indefinitely
	MaxTokens int           `env:"LLM_MAX_TOKENS" env-default:"2048"`
}

type SQLServerConfig struct {
	Server                 string `env:"SQL_SERVER"`
	Port                   int    `env:"SQL_PORT" env-default:"1433"`
	Database               string `env:"SQL_DATABASE"`
	UserID                 string `env:"SQL_USER"`
	Password               string `env:"SQL_PASSWORD"`
	Encrypt                bool   `env:"SQL_ENCRYPT" env-default:"true"`
	TrustServerCertificate bool   `env:"SQL_TRUST_SERVER_CERT" env-default:"false"`

	// FedAuth selects Azure AD authentication through the azuresql driver,
	// e.g. ActiveDirectoryDefault, ActiveDirectoryInteractive,
	// ActiveDirectoryServicePrincipal. Empty means SQL authentication.
	FedAuth  string `env:"SQL_FEDAUTH"`
	TenantID string `env:"SQL_TENANT_ID"`
}

// IsConfigured reports whether enough is set to attempt a connection.
func (c SQLServerConfig) IsConfigured() bool {
	return c.Server != "" && c.Database != ""
}

// Load reads configuration from the environment. A .env file in the working
// directory is loaded first when present; real environment variables win.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}
	if err := cleanenv.ReadEnv(cfg); err != nil {
		return nil, fmt.Errorf("failed to read environment: %w", err)
	}

	cfg.LLM.Provider = strings.ToLower(strings.TrimSpace(cfg.LLM.Provider))
	if cfg.LLM.APIKey == "" {
		return nil, fmt.Errorf("LLM_API_KEY is required")
	}
	if cfg.SQLServer.Port <= 0 || cfg.SQLServer.Port > 65535 {
		return nil, fmt.Errorf("invalid SQL_PORT: %d", cfg.SQLServer.Port)
	}

	return cfg, nil
}
