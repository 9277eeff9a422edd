package mocks

import (
	"context"

	"github.com/content-studio-api/internal/models"
	"github.com/content-studio-api/internal/service"
)

// MockAIService is a mock implementation of AIService
type MockAIService struct {
	GenerateTextFunc   func(ctx context.Context, prompt, contextText string) (string, error)
	GenerateImagesFunc func(ctx context.Context, prompt string) ([]string, error)
	TextCalls          int
	ImageCalls         int
}

// Verify interface compliance
var _ service.AIService = (*MockAIService)(nil)

func NewMockAIService() *MockAIService {
	return &MockAIService{}
}

func (m *MockAIService) GenerateText(ctx context.Context, prompt, contextText string) (string, error) {
	m.TextCalls++
	if m.GenerateTextFunc != nil {
		return m.GenerateTextFunc(ctx, prompt, contextText)
	}
	return "generated text for: " + prompt, nil
}

func (m *MockAIService) GenerateImages(ctx context.Context, prompt string) ([]string, error) {
	m.ImageCalls++
	if m.GenerateImagesFunc != nil {
		return m.GenerateImagesFunc(ctx, prompt)
	}
	return []string{"https://example.com/image-1.png", "https://example.com/image-2.png"}, nil
}

// MockNewsService is a mock implementation of NewsService
type MockNewsService struct {
	FetchFunc  func(ctx context.Context, query string) ([]models.NewsArticle, error)
	FetchCalls int
}

// Verify interface compliance
var _ service.NewsService = (*MockNewsService)(nil)

func NewMockNewsService() *MockNewsService {
	return &MockNewsService{}
}

func (m *MockNewsService) Fetch(ctx context.Context, query string) ([]models.NewsArticle, error) {
	m.FetchCalls++
	if m.FetchFunc != nil {
		return m.FetchFunc(ctx, query)
	}
	return models.MockNewsArticles(), nil
}
