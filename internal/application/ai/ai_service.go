package ai

import (
	"context"
	"strings"

	"github.com/ainotes/backend/internal/domain/ai"
	"github.com/ainotes/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// AIService proxies chat transcripts and generation tasks to the
// upstream text-generation API.
type AIService struct {
	generator   ai.Generator
	maxTokens   int
	temperature float64
	logger      *zap.Logger
}

// NewAIService creates a new AI service. maxTokens and temperature are
// the defaults applied when a request does not override them.
func NewAIService(generator ai.Generator, maxTokens int, temperature float64, logger *zap.Logger) *AIService {
	if maxTokens <= 0 {
		maxTokens = ai.DefaultMaxTokens
	}
	if temperature <= 0 {
		temperature = ai.DefaultTemperature
	}
	return &AIService{
		generator:   generator,
		maxTokens:   maxTokens,
		temperature: temperature,
		logger:      logger,
	}
}

// Chat continues a chat transcript and returns the assistant's reply
func (s *AIService) Chat(ctx context.Context, input ChatInput) (*ChatResult, error) {
	if len(input.Messages) == 0 {
		return nil, shared.NewDomainError("INVALID_INPUT", "Messages must be a non-empty array")
	}

	completion, err := s.generator.Generate(ctx, ai.Request{
		Prompt:      ai.FlattenTranscript(input.Messages),
		MaxTokens:   s.maxTokens,
		Temperature: s.temperature,
	})
	if err != nil {
		s.logger.Error("Chat generation failed", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to process chat request")
	}

	s.logger.Info("Chat completion returned",
		zap.Int("messages", len(input.Messages)),
		zap.Bool("truncated", completion.Truncated()))

	return &ChatResult{Result: completion.Result(ai.ChatTruncationNotice)}, nil
}

// Generate runs a generation task against a context blob
func (s *AIService) Generate(ctx context.Context, input GenerateInput) (*GenerateResult, error) {
	if strings.TrimSpace(input.Prompt) == "" || strings.TrimSpace(input.Context) == "" {
		return nil, shared.NewDomainError("INVALID_INPUT", "Prompt and context must be non-empty strings")
	}

	maxTokens := s.maxTokens
	if input.MaxTokens > 0 {
		maxTokens = input.MaxTokens
	}

	completion, err := s.generator.Generate(ctx, ai.Request{
		Prompt:      ai.BuildGeneratePrompt(input.Context, input.Prompt),
		MaxTokens:   maxTokens,
		Temperature: s.temperature,
	})
	if err != nil {
		s.logger.Error("Text generation failed", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to generate text")
	}

	s.logger.Info("Generation returned",
		zap.Int("max_tokens", maxTokens),
		zap.Bool("truncated", completion.Truncated()))

	return &GenerateResult{Result: completion.Result(ai.GenerateTruncationNotice)}, nil
}
