package ai

import "github.com/ainotes/backend/internal/domain/ai"

// ChatInput contains a chat transcript to continue
type ChatInput struct {
	Messages []ai.Message
}

// ChatResult contains the assistant's reply
type ChatResult struct {
	Result string
}

// GenerateInput contains a generation task over a context blob
type GenerateInput struct {
	Prompt  string
	Context string
	// MaxTokens overrides the configured token budget when positive
	MaxTokens int
}

// GenerateResult contains the generated text
type GenerateResult struct {
	Result string
}
