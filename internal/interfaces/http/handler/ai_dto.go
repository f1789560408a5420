package handler

// ChatMessage represents one message of a chat transcript
type ChatMessage struct {
	Role    string `json:"role" binding:"required,oneof=user ai"`
	Content string `json:"content" binding:"required"`
}

// ChatRequest represents the request body for the chat endpoint
type ChatRequest struct {
	Messages []ChatMessage `json:"messages" binding:"required,min=1,dive"`
}

// ChatResponse represents the response body for the chat endpoint
type ChatResponse struct {
	Result string `json:"result"`
}

// GenerateRequest represents the request body for the generate endpoint
type GenerateRequest struct {
	Prompt    string `json:"prompt" binding:"required"`
	Context   string `json:"context" binding:"required"`
	MaxTokens int    `json:"max_tokens" binding:"omitempty,gte=1,lte=4096"`
}

// GenerateResponse represents the response body for the generate endpoint
type GenerateResponse struct {
	Result string `json:"result"`
}
