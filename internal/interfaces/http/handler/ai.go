package handler

import (
	appai "github.com/ainotes/backend/internal/application/ai"
	domainai "github.com/ainotes/backend/internal/domain/ai"
	"github.com/ainotes/backend/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
)

// AIHandler handles AI proxy HTTP requests
type AIHandler struct {
	BaseHandler
	aiService *appai.AIService
}

// NewAIHandler creates a new AI handler
func NewAIHandler(aiService *appai.AIService) *AIHandler {
	return &AIHandler{
		aiService: aiService,
	}
}

// Chat godoc
// @Summary      Chat with the assistant
// @Description  Continue a chat transcript and return the assistant's reply
// @Tags         ai
// @Accept       json
// @Produce      json
// @Param        request body ChatRequest true "Chat transcript"
// @Success      200 {object} dto.Response{data=ChatResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      401 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      500 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /ai/chat [post]
func (h *AIHandler) Chat(c *gin.Context) {
	var req ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	messages := make([]domainai.Message, len(req.Messages))
	for i, m := range req.Messages {
		messages[i] = domainai.Message{
			Role:    m.Role,
			Content: m.Content,
		}
	}

	result, err := h.aiService.Chat(c.Request.Context(), appai.ChatInput{
		Messages: messages,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, ChatResponse{Result: result.Result})
}

// Generate godoc
// @Summary      Generate text
// @Description  Run a generation task against a context blob
// @Tags         ai
// @Accept       json
// @Produce      json
// @Param        request body GenerateRequest true "Generation task"
// @Success      200 {object} dto.Response{data=GenerateResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      401 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      500 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /ai/generate [post]
func (h *AIHandler) Generate(c *gin.Context) {
	var req GenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	result, err := h.aiService.Generate(c.Request.Context(), appai.GenerateInput{
		Prompt:    req.Prompt,
		Context:   req.Context,
		MaxTokens: req.MaxTokens,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, GenerateResponse{Result: result.Result})
}

// RegisterRoutes registers AI proxy routes on the given group
func (h *AIHandler) RegisterRoutes(rg *gin.RouterGroup) {
	ai := rg.Group("/ai")
	ai.POST("/chat", h.Chat)
	ai.POST("/generate", h.Generate)
}
