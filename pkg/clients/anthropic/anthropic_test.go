package anthropic

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompleteSendsMessage(t *testing.T) {
	var got messageRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/messages", r.URL.Path)
		assert.Equal(t, "key-123", r.Header.Get("x-api-key"))
		assert.Equal(t, apiVersion, r.Header.Get("anthropic-version"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"content":[{"type":"text","text":"Your **BMI** "},{"type":"text","text":"is normal."}]}`))
	}))
	defer srv.Close()

	client := NewClient("key-123", Options{BaseURL: srv.URL, Model: "claude-test"})
	text, err := client.Complete(context.Background(), "system line", "user prompt")

	require.NoError(t, err)
	assert.Equal(t, "Your **BMI** is normal.", text)
	assert.Equal(t, "claude-test", got.Model)
	assert.Equal(t, 400, got.MaxTokens)
	assert.Equal(t, "system line", got.System)
	assert.Equal(t, []Message{{Role: "user", Content: "user prompt"}}, got.Messages)
}

func TestCompleteEmptyContent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"content":[]}`))
	}))
	defer srv.Close()

	text, err := NewClient("key", Options{BaseURL: srv.URL}).Complete(context.Background(), "s", "p")
	require.NoError(t, err)
	assert.Empty(t, text)
}

func TestCompleteUpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"type":"error","error":{"type":"api_error","message":"overloaded"}}`))
	}))
	defer srv.Close()

	_, err := NewClient("key", Options{BaseURL: srv.URL}).Complete(context.Background(), "s", "p")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "500")
	assert.Contains(t, err.Error(), "overloaded")
}
