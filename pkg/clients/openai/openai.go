package openai

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

const (
	DefaultBaseURL = "https://api.openai.com/v1"
	DefaultModel   = "gpt-4o-mini"

	temperature = 0.7
	maxTokens   = 400
)

// Client defines the interface for single-turn text generation.
type Client interface {
	Complete(ctx context.Context, system, prompt string) (string, error)
}

// Options tunes the client. Zero values fall back to the defaults.
type Options struct {
	BaseURL string
	Model   string
	Timeout time.Duration
}

type openaiClient struct {
	httpClient *resty.Client
	model      string
}

// NewClient creates a chat-completions client authenticated with apiKey.
func NewClient(apiKey string, opts Options) Client {
	if opts.BaseURL == "" {
		opts.BaseURL = DefaultBaseURL
	}
	if opts.Model == "" {
		opts.Model = DefaultModel
	}
	if opts.Timeout <= 0 {
		opts.Timeout = 30 * time.Second
	}

	client := resty.New().
		SetBaseURL(strings.TrimRight(opts.BaseURL, "/")).
		SetAuthToken(apiKey).
		SetHeader("Content-Type", "application/json").
		SetTimeout(opts.Timeout)

	return &openaiClient{httpClient: client, model: opts.Model}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

type errorResponse struct {
	Error struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error"`
}

// Complete sends a system and a user message and returns the first choice's
// content. A response without choices is returned as "" without error.
func (c *openaiClient) Complete(ctx context.Context, system, prompt string) (string, error) {
	reqBody := chatRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "system", Content: system},
			{Role: "user", Content: prompt},
		},
		Temperature: temperature,
		MaxTokens:   maxTokens,
	}

	var (
		respBody chatResponse
		errBody  errorResponse
	)
	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetBody(reqBody).
		SetResult(&respBody).
		SetError(&errBody).
		Post("/chat/completions")

	if err != nil {
		return "", fmt.Errorf("openai api call: %w", err)
	}
	if resp.IsError() {
		if errBody.Error.Message != "" {
			return "", fmt.Errorf("openai api error: status %d: %s", resp.StatusCode(), errBody.Error.Message)
		}
		return "", fmt.Errorf("openai api error: status %d: %s", resp.StatusCode(), resp.String())
	}

	if len(respBody.Choices) == 0 {
		return "", nil
	}
	return strings.TrimSpace(respBody.Choices[0].Message.Content), nil
}
