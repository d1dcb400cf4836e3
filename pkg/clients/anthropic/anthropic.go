package anthropic

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

const (
	DefaultBaseURL = "https://api.anthropic.com"
	DefaultModel   = "claude-3-haiku-20240307"

	apiVersion = "2023-06-01"
	maxTokens  = 400
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

type anthropicClient struct {
	httpClient *resty.Client
	model      string
}

// NewClient creates a configured Anthropic client.
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
		SetHeader("x-api-key", apiKey).
		SetHeader("anthropic-version", apiVersion).
		SetHeader("content-type", "application/json").
		SetTimeout(opts.Timeout)

	return &anthropicClient{httpClient: client, model: opts.Model}
}

type messageRequest struct {
	Model     string    `json:"model"`
	MaxTokens int       `json:"max_tokens"`
	System    string    `json:"system"`
	Messages  []Message `json:"messages"`
}

type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type messageResponse struct {
	Content []struct {
		Type string `json:"type"`
		Text string `json:"text"`
	} `json:"content"`
}

// Complete sends one user turn and returns the concatenated text blocks of
// the reply. An empty reply is returned as "" without error.
func (c *anthropicClient) Complete(ctx context.Context, system, prompt string) (string, error) {
	reqBody := messageRequest{
		Model:     c.model,
		MaxTokens: maxTokens,
		System:    system,
		Messages:  []Message{{Role: "user", Content: prompt}},
	}

	var respBody messageResponse
	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetBody(reqBody).
		SetResult(&respBody).
		Post("/v1/messages")

	if err != nil {
		return "", fmt.Errorf("anthropic api call: %w", err)
	}
	if resp.IsError() {
		return "", fmt.Errorf("anthropic api error: status %d: %s", resp.StatusCode(), resp.String())
	}

	var sb strings.Builder
	for _, block := range respBody.Content {
		if block.Type != "" && block.Type != "text" {
			continue
		}
		sb.WriteString(block.Text)
	}
	return strings.TrimSpace(sb.String()), nil
}
