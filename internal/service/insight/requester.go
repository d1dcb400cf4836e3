// Package insight asks an external text-generation provider for a
// plain-language analysis of one BMI result.
package insight

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/mamadbah2/bmicare/internal/domain/models"
)

// FallbackText replaces an empty provider response.
const FallbackText = "Unable to generate analysis at this time."

// ErrNotConfigured is returned, wrapped with guidance, when no provider
// credential is available.
var ErrNotConfigured = errors.New("API key not configured")

// Provider names the text-generation backend and the variable holding its key.
type Provider struct {
	Name   string
	KeyEnv string
}

var (
	OpenAI    = Provider{Name: "OpenAI", KeyEnv: "OPENAI_API_KEY"}
	Anthropic = Provider{Name: "Anthropic", KeyEnv: "ANTHROPIC_API_KEY"}
)

// UpstreamError wraps a failed provider call.
type UpstreamError struct {
	Err error
}

func (e *UpstreamError) Error() string {
	return "Failed to generate AI analysis: " + e.Err.Error()
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}

// Completer is the provider boundary. Both pkg/clients implementations satisfy it.
type Completer interface {
	Complete(ctx context.Context, system, prompt string) (string, error)
}

// Requester issues one provider call per request.
type Requester struct {
	client   Completer
	provider Provider
	logger   *zap.Logger
}

// NewRequester wires a requester. A nil client makes every Request fail with
// ErrNotConfigured before any network call.
func NewRequester(client Completer, provider Provider, logger *zap.Logger) *Requester {
	if logger == nil {
		logger = zap.NewNop()
	}
	if provider.Name == "" {
		provider = OpenAI
	}
	return &Requester{client: client, provider: provider, logger: logger}
}

// Configured reports whether a provider is available.
func (r *Requester) Configured() bool {
	return r != nil && r.client != nil
}

// Request returns the generated prose for req. Provider failures come back as
// *UpstreamError; an empty response degrades to FallbackText.
func (r *Requester) Request(ctx context.Context, req models.InsightRequest) (string, error) {
	if !r.Configured() {
		return "", fmt.Errorf("%s %w. Please add %s to your environment variables.",
			r.provider.Name, ErrNotConfigured, r.provider.KeyEnv)
	}

	text, err := r.client.Complete(ctx, systemPrompt, BuildPrompt(req))
	if err != nil {
		r.logger.Error("insight request failed",
			zap.String("category", req.Category),
			zap.Error(err),
		)
		return "", &UpstreamError{Err: err}
	}

	text = strings.TrimSpace(text)
	if text == "" {
		r.logger.Warn("insight provider returned empty response", zap.String("category", req.Category))
		return FallbackText, nil
	}

	r.logger.Debug("insight generated", zap.String("category", req.Category), zap.Int("chars", len(text)))
	return text, nil
}

// NewRequest assembles the provider payload.
func NewRequest(age float64, result models.BMIResult, impact models.ReproductiveHealthImpact) models.InsightRequest {
	return models.InsightRequest{
		BMI:        result.BMI,
		Category:   result.CategoryLabel,
		Age:        age,
		Impacts:    impact.Impacts,
		Statistics: impact.Statistics,
	}
}

// Kind maps an insight error to the short tag shown next to the message.
func Kind(err error) string {
	var upstream *UpstreamError
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrNotConfigured):
		return "configuration"
	case errors.As(err, &upstream):
		return "upstream"
	default:
		return "unknown"
	}
}
