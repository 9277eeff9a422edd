package service

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/content-studio-api/internal/config"
	"github.com/content-studio-api/internal/models"
	"github.com/content-studio-api/internal/state"
	"github.com/rs/zerolog"
)

// newsService fetches article summaries from a GNews-style API. When no
// usable API key is configured it serves the fixed mock article set without
// touching the network; that is the intended degraded mode, not an error.
type newsService struct {
	newsConfig *state.NewsConfigStore
	httpClient *http.Client
	baseURL    string
	maxItems   int
	log        zerolog.Logger
}

func newNewsService(newsConfig *state.NewsConfigStore, cfg config.NewsConfig, log zerolog.Logger) *newsService {
	return &newsService{
		newsConfig: newsConfig,
		httpClient: &http.Client{
			Timeout: cfg.RequestTimeout,
		},
		baseURL:  strings.TrimSuffix(cfg.BaseURL, "/"),
		maxItems: cfg.MaxArticles,
		log:      log.With().Str("service", "news").Logger(),
	}
}

// newsAPIResponse mirrors the provider's top-headlines payload
type newsAPIResponse struct {
	Articles []struct {
		Title       string `json:"title"`
		Description string `json:"description"`
		URL         string `json:"url"`
		Source      struct {
			Name string `json:"name"`
		} `json:"source"`
		PublishedAt string `json:"publishedAt"`
		Image       string `json:"image"`
		Content     string `json:"content"`
	} `json:"articles"`
	Message string `json:"message"`
}

// Fetch returns article summaries for the query
func (s *newsService) Fetch(ctx context.Context, query string) ([]models.NewsArticle, error) {
	if query == "" {
		query = "latest"
	}

	cfg := s.newsConfig.Get()
	if cfg == nil || !cfg.IsUsable() {
		s.log.Warn().Msg("News API key missing, empty or placeholder; serving mock articles")
		return models.MockNewsArticles(), nil
	}

	endpoint := fmt.Sprintf(
		"%s/top-headlines?category=general&lang=en&country=us&max=%d&apikey=%s&q=%s",
		s.baseURL, s.maxItems, url.QueryEscape(cfg.APIKey), url.QueryEscape(query),
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch news: %w", err)
	}
	defer resp.Body.Close()

	var parsed newsAPIResponse
	decodeErr := json.NewDecoder(resp.Body).Decode(&parsed)

	if resp.StatusCode != http.StatusOK {
		message := parsed.Message
		if message == "" {
			message = http.StatusText(resp.StatusCode)
		}
		return nil, fmt.Errorf("fetch news: status %d: %s", resp.StatusCode, message)
	}
	if decodeErr != nil {
		return nil, fmt.Errorf("parse news response: %w", decodeErr)
	}
	if parsed.Articles == nil {
		return nil, fmt.Errorf("parse news response: articles missing")
	}

	articles := make([]models.NewsArticle, 0, len(parsed.Articles))
	for _, a := range parsed.Articles {
		articles = append(articles, models.NewsArticle{
			Title:       a.Title,
			Description: a.Description,
			URL:         a.URL,
			Source:      models.NewsSource{Name: a.Source.Name},
			PublishedAt: a.PublishedAt,
			Image:       a.Image,
			Content:     a.Content,
		})
	}

	s.log.Info().Str("query", query).Int("count", len(articles)).Msg("Fetched news articles")
	return articles, nil
}
