package ai

import "context"

// Generation defaults
const (
	DefaultMaxTokens   = 1000
	DefaultTemperature = 0.7
)

// Request describes a single text-generation call
type Request struct {
	Prompt      string
	MaxTokens   int
	Temperature float64
}

// Generator is the port to a hosted text-generation API
type Generator interface {
	Generate(ctx context.Context, req Request) (*Completion, error)
}
