package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var configKeys = []string{
	"APP_PORT", "LOG_LEVEL",
	"AI_PROVIDER", "OPENAI_API_KEY", "OPENAI_MODEL", "OPENAI_BASE_URL",
	"ANTHROPIC_API_KEY", "ANTHROPIC_MODEL", "ANTHROPIC_BASE_URL", "AI_TIMEOUT",
	"HISTORY_BACKEND", "HISTORY_KEY", "HISTORY_CAPACITY", "SQLITE_PATH",
	"MONGODB_URI", "MONGODB_DB_NAME", "REDIS_URL", "POSTGRES_DSN",
	"HISTORY_EXPORT_CRON", "HISTORY_EXPORT_RANGE",
	"GOOGLE_SHEETS_CREDENTIALS_PATH", "GOOGLE_SHEET_ID",
}

// clearEnv unsets every key for the test. godotenv never overrides a variable
// that exists, even when empty, so the keys are removed rather than blanked.
// t.Setenv registers the restore.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range configKeys {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
}

func missingEnvFile(t *testing.T) string {
	return filepath.Join(t.TempDir(), "absent.env")
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load(missingEnvFile(t))
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, ProviderOpenAI, cfg.AI.Provider)
	assert.Equal(t, "gpt-4o-mini", cfg.AI.OpenAIModel)
	assert.Equal(t, 30*time.Second, cfg.AI.Timeout)
	assert.Empty(t, cfg.AI.APIKey())
	assert.Equal(t, BackendSQLite, cfg.History.Backend)
	assert.Equal(t, "bmi-history", cfg.History.Key)
	assert.Equal(t, 50, cfg.History.Capacity)
	assert.False(t, cfg.Export.Enabled())
	assert.Equal(t, "History!A:H", cfg.Export.Range)
}

func TestLoadFromEnvFile(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "test.env")
	content := "AI_PROVIDER=anthropic\nANTHROPIC_API_KEY=key-1\nHISTORY_BACKEND=memory\nHISTORY_CAPACITY=10\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, ProviderAnthropic, cfg.AI.Provider)
	assert.Equal(t, "key-1", cfg.AI.APIKey())
	assert.Equal(t, BackendMemory, cfg.History.Backend)
	assert.Equal(t, 10, cfg.History.Capacity)
}

func TestLoadRejectsBadNumbers(t *testing.T) {
	clearEnv(t)
	t.Setenv("HISTORY_CAPACITY", "fifty")
	_, err := Load(missingEnvFile(t))
	assert.ErrorContains(t, err, "HISTORY_CAPACITY")

	clearEnv(t)
	t.Setenv("AI_TIMEOUT", "soon")
	_, err = Load(missingEnvFile(t))
	assert.ErrorContains(t, err, "AI_TIMEOUT")
}

func validConfig() *Config {
	return &Config{
		Server:  ServerConfig{Port: "8080"},
		AI:      AIConfig{Provider: ProviderOpenAI, Timeout: time.Second},
		History: HistoryConfig{Backend: BackendMemory, Key: "bmi-history", Capacity: 50},
		Export:  ExportConfig{Range: "History!A:H"},
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"valid", func(*Config) {}, ""},
		{"missing port", func(c *Config) { c.Server.Port = "" }, "APP_PORT"},
		{"unknown provider", func(c *Config) { c.AI.Provider = "gemini" }, "AI_PROVIDER"},
		{"zero capacity", func(c *Config) { c.History.Capacity = 0 }, "HISTORY_CAPACITY"},
		{"unknown backend", func(c *Config) { c.History.Backend = "etcd" }, "HISTORY_BACKEND"},
		{"mongo without uri", func(c *Config) { c.History.Backend = BackendMongoDB }, "MONGODB_URI"},
		{"redis without url", func(c *Config) { c.History.Backend = BackendRedis }, "REDIS_URL"},
		{"postgres without dsn", func(c *Config) { c.History.Backend = BackendPostgres }, "POSTGRES_DSN"},
		{"export without credentials", func(c *Config) { c.Export.CronSchedule = "@hourly" }, "GOOGLE_SHEETS_CREDENTIALS_PATH"},
		{"export without sheet", func(c *Config) {
			c.Export.CronSchedule = "@hourly"
			c.Sheets.CredentialsPath = "creds.json"
		}, "GOOGLE_SHEET_ID"},
		{"export configured", func(c *Config) {
			c.Export.CronSchedule = "@hourly"
			c.Sheets = SheetsConfig{CredentialsPath: "creds.json", SpreadsheetID: "sheet"}
		}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}

	var nilCfg *Config
	assert.Error(t, nilCfg.Validate())
}
