// Package cohere implements the ai.Generator port against the Cohere
// generate API.
package cohere

import (
	"context"
	"fmt"
	"time"

	"github.com/ainotes/backend/internal/domain/ai"
	"github.com/go-resty/resty/v2"
)

const generatePath = "/v1/generate"

// Config holds settings for the Cohere client
type Config struct {
	APIKey  string
	BaseURL string
	Model   string
	Timeout time.Duration
}

// Client calls the Cohere generate endpoint
type Client struct {
	http  *resty.Client
	model string
}

// NewClient creates a new Cohere client
func NewClient(cfg Config) *Client {
	httpClient := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetTimeout(cfg.Timeout).
		SetAuthToken(cfg.APIKey).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")

	return &Client{
		http:  httpClient,
		model: cfg.Model,
	}
}

type generateRequest struct {
	Model       string  `json:"model,omitempty"`
	Prompt      string  `json:"prompt"`
	MaxTokens   int     `json:"max_tokens"`
	Temperature float64 `json:"temperature"`
}

type generation struct {
	Text         string `json:"text"`
	FinishReason string `json:"finish_reason"`
}

type generateResponse struct {
	ID          string       `json:"id"`
	Generations []generation `json:"generations"`
	Message     string       `json:"message"`
}

// Generate performs a single text-generation call. No retries; the
// caller decides how to surface upstream failures.
func (c *Client) Generate(ctx context.Context, req ai.Request) (*ai.Completion, error) {
	var out generateResponse

	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(generateRequest{
			Model:       c.model,
			Prompt:      req.Prompt,
			MaxTokens:   req.MaxTokens,
			Temperature: req.Temperature,
		}).
		SetResult(&out).
		SetError(&out).
		Post(generatePath)
	if err != nil {
		return nil, fmt.Errorf("cohere: request failed: %w", err)
	}

	if resp.IsError() {
		if out.Message != "" {
			return nil, fmt.Errorf("cohere: upstream returned %s: %s", resp.Status(), out.Message)
		}
		return nil, fmt.Errorf("cohere: upstream returned %s", resp.Status())
	}

	if len(out.Generations) == 0 {
		return nil, fmt.Errorf("cohere: response contained no generations")
	}

	return &ai.Completion{
		Text:         out.Generations[0].Text,
		FinishReason: out.Generations[0].FinishReason,
	}, nil
}

// Ensure Client implements the Generator port
var _ ai.Generator = (*Client)(nil)
