package main

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/mamadbah2/bmicare/internal/config"
	"github.com/mamadbah2/bmicare/internal/repository"
	"github.com/mamadbah2/bmicare/internal/repository/memory"
	"github.com/mamadbah2/bmicare/internal/repository/mongodb"
	"github.com/mamadbah2/bmicare/internal/repository/postgres"
	"github.com/mamadbah2/bmicare/internal/repository/redis"
	"github.com/mamadbah2/bmicare/internal/repository/sqlite"
	"github.com/mamadbah2/bmicare/internal/service/insight"
	"github.com/mamadbah2/bmicare/pkg/clients/anthropic"
	"github.com/mamadbah2/bmicare/pkg/clients/openai"
)

// openHistoryMedium connects the key-value store selected by HISTORY_BACKEND.
func openHistoryMedium(ctx context.Context, cfg config.HistoryConfig) (repository.KeyValueStore, error) {
	switch cfg.Backend {
	case config.BackendMemory:
		return memory.NewStore(), nil
	case config.BackendSQLite:
		return sqlite.NewFileStore(cfg.SQLitePath)
	case config.BackendMongoDB:
		return mongodb.NewMongoDBRepository(ctx, cfg.MongoURI, cfg.MongoDB)
	case config.BackendRedis:
		return redis.NewStore(ctx, cfg.RedisURL)
	case config.BackendPostgres:
		return postgres.NewStore(cfg.PostgresDSN)
	default:
		return nil, fmt.Errorf("unsupported history backend %q", cfg.Backend)
	}
}

// newInsightClient returns the provider client, or nil when its key is
// missing so every insight request reports the configuration error.
func newInsightClient(cfg config.AIConfig, logger *zap.Logger) (insight.Completer, insight.Provider) {
	provider := insight.OpenAI
	if cfg.Provider == config.ProviderAnthropic {
		provider = insight.Anthropic
	}

	if cfg.APIKey() == "" {
		logger.Warn("insight provider key missing, analysis disabled",
			zap.String("provider", cfg.Provider),
			zap.String("env", provider.KeyEnv))
		return nil, provider
	}

	switch cfg.Provider {
	case config.ProviderAnthropic:
		logger.Info("anthropic insight client enabled", zap.String("model", cfg.AnthropicModel))
		return anthropic.NewClient(cfg.AnthropicKey, anthropic.Options{
			BaseURL: cfg.AnthropicBaseURL,
			Model:   cfg.AnthropicModel,
			Timeout: cfg.Timeout,
		}), provider
	default:
		logger.Info("openai insight client enabled", zap.String("model", cfg.OpenAIModel))
		return openai.NewClient(cfg.OpenAIKey, openai.Options{
			BaseURL: cfg.OpenAIBaseURL,
			Model:   cfg.OpenAIModel,
			Timeout: cfg.Timeout,
		}), provider
	}
}
