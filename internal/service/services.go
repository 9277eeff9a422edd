package service

import (
	"context"

	"github.com/content-studio-api/internal/config"
	"github.com/content-studio-api/internal/models"
	"github.com/content-studio-api/internal/state"
	"github.com/rs/zerolog"
)

// AIService defines the interface for AI generation calls. Implementations
// supply the active credential profile themselves and fail with a
// user-facing error when none is usable.
type AIService interface {
	GenerateText(ctx context.Context, prompt, contextText string) (string, error)
	GenerateImages(ctx context.Context, prompt string) ([]string, error)
}

// NewsService defines the interface for fetching news context
type NewsService interface {
	Fetch(ctx context.Context, query string) ([]models.NewsArticle, error)
}

// Services holds all service interfaces
type Services struct {
	AI   AIService
	News NewsService
}

// NewServices creates all services on top of the application state
func NewServices(app *state.App, cfg *config.Config, log zerolog.Logger) *Services {
	return &Services{
		AI:   newAIService(app.AIConfigs, cfg.AI, log),
		News: newNewsService(app.NewsConfig, cfg.News, log),
	}
}
