package api

import (
	"errors"
	"net/http"

	"github.com/content-studio-api/internal/service"
	"github.com/content-studio-api/internal/validation"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// GenerateHandler handles AI generation and news fetch endpoints
type GenerateHandler struct {
	services *service.Services
	log      zerolog.Logger
}

// NewGenerateHandler creates a new GenerateHandler
func NewGenerateHandler(services *service.Services, log zerolog.Logger) *GenerateHandler {
	return &GenerateHandler{
		services: services,
		log:      log.With().Str("handler", "generate").Logger(),
	}
}

// GenerateText handles POST /v1/generate/text
func (h *GenerateHandler) GenerateText(c *gin.Context) {
	var req struct {
		Prompt  string `json:"prompt"`
		Context string `json:"context"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if req.Prompt == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "prompt is required"})
		return
	}

	text, err := h.services.AI.GenerateText(c.Request.Context(), req.Prompt, req.Context)
	if err != nil {
		h.respondGenerationError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"text": text})
}

// GenerateImages handles POST /v1/generate/images
func (h *GenerateHandler) GenerateImages(c *gin.Context) {
	var req struct {
		Prompt string `json:"prompt"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if req.Prompt == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "prompt is required"})
		return
	}

	urls, err := h.services.AI.GenerateImages(c.Request.Context(), req.Prompt)
	if err != nil {
		h.respondGenerationError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"urls": urls})
}

// FetchNews handles GET /v1/news?q=
func (h *GenerateHandler) FetchNews(c *gin.Context) {
	articles, err := h.services.News.Fetch(c.Request.Context(), c.Query("q"))
	if err != nil {
		h.log.Error().Err(err).Msg("News fetch failed")
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"articles": articles})
}

// respondGenerationError maps the named profile error states to 422 so the
// UI can prompt the user to fix settings; provider failures become 502
func (h *GenerateHandler) respondGenerationError(c *gin.Context, err error) {
	if errors.Is(err, validation.ErrNoActiveAIConfig) || errors.Is(err, validation.ErrIncompleteAIConfig) {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}
	h.log.Error().Err(err).Msg("Generation failed")
	c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
}
