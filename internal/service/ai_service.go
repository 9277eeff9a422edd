package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/content-studio-api/internal/config"
	"github.com/content-studio-api/internal/state"
	"github.com/content-studio-api/internal/validation"
	"github.com/rs/zerolog"
)

// maxErrorBodyBytes bounds the response excerpt included in provider errors
const maxErrorBodyBytes = 512

// aiService calls an OpenAI-compatible provider using the active credential
// profile. The profile's apiUrl is the provider base URL (e.g.
// https://api.openai.com/v1). No retry, no cache: failures go straight back
// to the caller for display.
type aiService struct {
	configs    *state.AIConfigStore
	httpClient *http.Client
	log        zerolog.Logger
}

func newAIService(configs *state.AIConfigStore, cfg config.AIConfig, log zerolog.Logger) *aiService {
	return &aiService{
		configs: configs,
		httpClient: &http.Client{
			Timeout: cfg.RequestTimeout,
		},
		log: log.With().Str("service", "ai").Logger(),
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

type imageRequest struct {
	Model  string `json:"model"`
	Prompt string `json:"prompt"`
	N      int    `json:"n"`
}

type imageResponse struct {
	Data []struct {
		URL string `json:"url"`
	} `json:"data"`
}

// GenerateText asks the provider to draft text for the given prompt, with
// the current document body passed along as context
func (s *aiService) GenerateText(ctx context.Context, prompt, contextText string) (string, error) {
	profile := s.configs.LoadActive()
	if err := validation.ActiveAIConfig(profile); err != nil {
		return "", err
	}

	messages := []chatMessage{
		{Role: "system", Content: "You are a writing assistant for a long-form content editor. Produce markdown."},
	}
	if contextText != "" {
		messages = append(messages, chatMessage{Role: "system", Content: "Current document:\n\n" + contextText})
	}
	messages = append(messages, chatMessage{Role: "user", Content: prompt})

	body := chatRequest{Model: profile.Model, Messages: messages}

	var parsed chatResponse
	if err := s.post(ctx, profile.APIURL, "/chat/completions", profile.APIKey, body, &parsed); err != nil {
		return "", err
	}
	if len(parsed.Choices) == 0 {
		return "", fmt.Errorf("AI provider returned no choices")
	}

	s.log.Info().Str("model", profile.Model).Int("prompt_len", len(prompt)).Msg("Generated text")
	return parsed.Choices[0].Message.Content, nil
}

// GenerateImages asks the provider for images matching the prompt and
// returns their URLs
func (s *aiService) GenerateImages(ctx context.Context, prompt string) ([]string, error) {
	profile := s.configs.LoadActive()
	if err := validation.ActiveAIConfig(profile); err != nil {
		return nil, err
	}

	body := imageRequest{Model: profile.Model, Prompt: prompt, N: 2}

	var parsed imageResponse
	if err := s.post(ctx, profile.APIURL, "/images/generations", profile.APIKey, body, &parsed); err != nil {
		return nil, err
	}
	if len(parsed.Data) == 0 {
		return nil, fmt.Errorf("AI provider returned no images")
	}

	urls := make([]string, 0, len(parsed.Data))
	for _, d := range parsed.Data {
		urls = append(urls, d.URL)
	}

	s.log.Info().Str("model", profile.Model).Int("count", len(urls)).Msg("Generated images")
	return urls, nil
}

// post sends an authenticated JSON request and decodes the response into out
func (s *aiService) post(ctx context.Context, baseURL, path, apiKey string, payload, out any) error {
	if baseURL == "" {
		return fmt.Errorf("AI provider URL is not set")
	}
	url := strings.TrimSuffix(baseURL, "/") + path

	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+apiKey)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		excerpt, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyBytes))
		return fmt.Errorf("AI provider returned status %d: %s", resp.StatusCode, strings.TrimSpace(string(excerpt)))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("parse AI provider response: %w", err)
	}
	return nil
}
