package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Supported insight providers.
const (
	ProviderOpenAI    = "openai"
	ProviderAnthropic = "anthropic"
)

// Supported history backends.
const (
	BackendMemory   = "memory"
	BackendSQLite   = "sqlite"
	BackendMongoDB  = "mongodb"
	BackendRedis    = "redis"
	BackendPostgres = "postgres"
)

// Config represents the full application configuration surface.
type Config struct {
	Server  ServerConfig
	Log     LogConfig
	AI      AIConfig
	History HistoryConfig
	Export  ExportConfig
	Sheets  SheetsConfig
}

// ServerConfig holds HTTP server related options.
type ServerConfig struct {
	Port string
}

// LogConfig holds logger options.
type LogConfig struct {
	Level string
}

// AIConfig holds settings for LLM providers. An empty key for the selected
// provider disables insights without failing startup.
type AIConfig struct {
	Provider         string
	OpenAIKey        string
	OpenAIModel      string
	OpenAIBaseURL    string
	AnthropicKey     string
	AnthropicModel   string
	AnthropicBaseURL string
	Timeout          time.Duration
}

// APIKey returns the key of the selected provider.
func (c AIConfig) APIKey() string {
	if c.Provider == ProviderAnthropic {
		return c.AnthropicKey
	}
	return c.OpenAIKey
}

// HistoryConfig selects and configures the history medium.
type HistoryConfig struct {
	Backend     string
	Key         string
	Capacity    int
	SQLitePath  string
	MongoURI    string
	MongoDB     string
	RedisURL    string
	PostgresDSN string
}

// ExportConfig holds the scheduled history export settings. An empty
// CronSchedule disables the export.
type ExportConfig struct {
	CronSchedule string
	Range        string
}

// Enabled reports whether the export job should be registered.
func (c ExportConfig) Enabled() bool {
	return c.CronSchedule != ""
}

// SheetsConfig contains configuration required to interact with Google Sheets.
type SheetsConfig struct {
	CredentialsPath string
	SpreadsheetID   string
}

// Load reads environment variables (optionally from the provided file) and
// materializes a Config instance.
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			if !errors.Is(err, os.ErrNotExist) {
				return nil, fmt.Errorf("failed loading env file %s: %w", envFile, err)
			}
		}
	} else {
		// Ignore the returned error here; missing .env files are acceptable when
		// configuration comes from the environment directly.
		_ = godotenv.Load()
	}

	capacity, err := strconv.Atoi(getenvWithDefault("HISTORY_CAPACITY", "50"))
	if err != nil {
		return nil, fmt.Errorf("HISTORY_CAPACITY must be an integer: %w", err)
	}

	timeout, err := time.ParseDuration(getenvWithDefault("AI_TIMEOUT", "30s"))
	if err != nil {
		return nil, fmt.Errorf("AI_TIMEOUT must be a duration: %w", err)
	}

	cfg := &Config{
		Server: ServerConfig{
			Port: getenvWithDefault("APP_PORT", "8080"),
		},
		Log: LogConfig{
			Level: getenvWithDefault("LOG_LEVEL", "info"),
		},
		AI: AIConfig{
			Provider:         strings.ToLower(getenvWithDefault("AI_PROVIDER", ProviderOpenAI)),
			OpenAIKey:        os.Getenv("OPENAI_API_KEY"),
			OpenAIModel:      getenvWithDefault("OPENAI_MODEL", "gpt-4o-mini"),
			OpenAIBaseURL:    getenvWithDefault("OPENAI_BASE_URL", "https://api.openai.com/v1"),
			AnthropicKey:     os.Getenv("ANTHROPIC_API_KEY"),
			AnthropicModel:   getenvWithDefault("ANTHROPIC_MODEL", "claude-3-haiku-20240307"),
			AnthropicBaseURL: getenvWithDefault("ANTHROPIC_BASE_URL", "https://api.anthropic.com"),
			Timeout:          timeout,
		},
		History: HistoryConfig{
			Backend:     strings.ToLower(getenvWithDefault("HISTORY_BACKEND", BackendSQLite)),
			Key:         getenvWithDefault("HISTORY_KEY", "bmi-history"),
			Capacity:    capacity,
			SQLitePath:  getenvWithDefault("SQLITE_PATH", "bmicare.db"),
			MongoURI:    os.Getenv("MONGODB_URI"),
			MongoDB:     getenvWithDefault("MONGODB_DB_NAME", "bmicare"),
			RedisURL:    os.Getenv("REDIS_URL"),
			PostgresDSN: os.Getenv("POSTGRES_DSN"),
		},
		Export: ExportConfig{
			CronSchedule: os.Getenv("HISTORY_EXPORT_CRON"),
			Range:        getenvWithDefault("HISTORY_EXPORT_RANGE", "History!A:H"),
		},
		Sheets: SheetsConfig{
			CredentialsPath: os.Getenv("GOOGLE_SHEETS_CREDENTIALS_PATH"),
			SpreadsheetID:   os.Getenv("GOOGLE_SHEET_ID"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate ensures that required configuration fields are populated.
func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}

	if c.Server.Port == "" {
		return errors.New("APP_PORT must be provided")
	}

	switch c.AI.Provider {
	case ProviderOpenAI, ProviderAnthropic:
	default:
		return fmt.Errorf("AI_PROVIDER %q is not supported", c.AI.Provider)
	}

	if c.AI.Timeout <= 0 {
		return errors.New("AI_TIMEOUT must be positive")
	}

	if c.History.Capacity <= 0 {
		return errors.New("HISTORY_CAPACITY must be positive")
	}

	if c.History.Key == "" {
		return errors.New("HISTORY_KEY must not be empty")
	}

	switch c.History.Backend {
	case BackendMemory:
	case BackendSQLite:
		if c.History.SQLitePath == "" {
			return errors.New("SQLITE_PATH must be provided")
		}
	case BackendMongoDB:
		if c.History.MongoURI == "" {
			return errors.New("MONGODB_URI must be provided")
		}
	case BackendRedis:
		if c.History.RedisURL == "" {
			return errors.New("REDIS_URL must be provided")
		}
	case BackendPostgres:
		if c.History.PostgresDSN == "" {
			return errors.New("POSTGRES_DSN must be provided")
		}
	default:
		return fmt.Errorf("HISTORY_BACKEND %q is not supported", c.History.Backend)
	}

	if c.Export.Enabled() {
		switch {
		case c.Sheets.CredentialsPath == "":
			return errors.New("GOOGLE_SHEETS_CREDENTIALS_PATH must be provided when HISTORY_EXPORT_CRON is set")
		case c.Sheets.SpreadsheetID == "":
			return errors.New("GOOGLE_SHEET_ID must be provided when HISTORY_EXPORT_CRON is set")
		case c.Export.Range == "":
			return errors.New("HISTORY_EXPORT_RANGE must not be empty")
		}
	}

	return nil
}

func getenvWithDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
