package cohere

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/ainotes/backend/internal/domain/ai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *httptest.Server) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client := NewClient(Config{
		APIKey:  "test-api-key",
		BaseURL: server.URL,
		Model:   "command",
		Timeout: 5 * time.Second,
	})
	return client, server
}

func TestClient_Generate(t *testing.T) {
	t.Run("sends prompt and parses first generation", func(t *testing.T) {
		var gotBody map[string]any
		var gotAuth string

		client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/v1/generate", r.URL.Path)
			gotAuth = r.Header.Get("Authorization")
			require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))

			w.Header().Set("Content-Type", "application/json")
			_ = json.NewEncoder(w).Encode(map[string]any{
				"id": "gen-1",
				"generations": []map[string]any{
					{"text": " Hello from the model. ", "finish_reason": "COMPLETE"},
					{"text": "ignored second generation", "finish_reason": "COMPLETE"},
				},
			})
		})

		completion, err := client.Generate(context.Background(), ai.Request{
			Prompt:      "User: Hi\nAI:",
			MaxTokens:   1000,
			Temperature: 0.7,
		})

		require.NoError(t, err)
		assert.Equal(t, "Bearer test-api-key", gotAuth)
		assert.Equal(t, "User: Hi\nAI:", gotBody["prompt"])
		assert.Equal(t, float64(1000), gotBody["max_tokens"])
		assert.InDelta(t, 0.7, gotBody["temperature"], 0.0001)
		assert.Equal(t, "command", gotBody["model"])
		assert.Equal(t, " Hello from the model. ", completion.Text)
		assert.Equal(t, "COMPLETE", completion.FinishReason)
	})

	t.Run("surfaces upstream error message", func(t *testing.T) {
		client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnauthorized)
			_ = json.NewEncoder(w).Encode(map[string]any{"message": "invalid api token"})
		})

		completion, err := client.Generate(context.Background(), ai.Request{Prompt: "x"})

		assert.Nil(t, completion)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid api token")
	})

	t.Run("fails on empty generations", func(t *testing.T) {
		client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_ = json.NewEncoder(w).Encode(map[string]any{"id": "gen-2", "generations": []any{}})
		})

		completion, err := client.Generate(context.Background(), ai.Request{Prompt: "x"})

		assert.Nil(t, completion)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "no generations")
	})

	t.Run("respects context cancellation", func(t *testing.T) {
		client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			time.Sleep(200 * time.Millisecond)
		})

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
		defer cancel()

		_, err := client.Generate(ctx, ai.Request{Prompt: "x"})

		assert.Error(t, err)
	})
}
