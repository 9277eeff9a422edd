package service

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/content-studio-api/internal/config"
	"github.com/content-studio-api/internal/kvstore"
	"github.com/content-studio-api/internal/state"
	"github.com/content-studio-api/internal/validation"
	"github.com/rs/zerolog"
)

func aiStore(t *testing.T) *state.AIConfigStore {
	t.Helper()
	store := state.NewAIConfigStore(kvstore.NewMemory(), zerolog.Nop())
	store.Load(context.Background())
	return store
}

func activeAIStore(t *testing.T, apiURL string) *state.AIConfigStore {
	t.Helper()
	store := aiStore(t)
	profile := store.Add(context.Background(), "Test Profile", "test-key", apiURL, "gpt-4o-mini")
	store.SetActive(context.Background(), profile.ID)
	return store
}

func aiCfg() config.AIConfig {
	return config.AIConfig{RequestTimeout: 5 * time.Second}
}

func TestAIService_RequiresActiveProfile(t *testing.T) {
	svc := newAIService(aiStore(t), aiCfg(), zerolog.Nop())

	if _, err := svc.GenerateText(context.Background(), "write an intro", ""); !errors.Is(err, validation.ErrNoActiveAIConfig) {
		t.Errorf("GenerateText without a profile: err = %v, want ErrNoActiveAIConfig", err)
	}
	if _, err := svc.GenerateImages(context.Background(), "a lighthouse"); !errors.Is(err, validation.ErrNoActiveAIConfig) {
		t.Errorf("GenerateImages without a profile: err = %v, want ErrNoActiveAIConfig", err)
	}
}

func TestAIService_RejectsIncompleteProfile(t *testing.T) {
	store := aiStore(t)
	profile := store.Add(context.Background(), "Missing Model", "key", "https://api.example.com/v1", "")
	store.SetActive(context.Background(), profile.ID)

	svc := newAIService(store, aiCfg(), zerolog.Nop())

	if _, err := svc.GenerateText(context.Background(), "prompt", ""); !errors.Is(err, validation.ErrIncompleteAIConfig) {
		t.Errorf("GenerateText with incomplete profile: err = %v, want ErrIncompleteAIConfig", err)
	}
}

func TestAIService_GenerateText(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/chat/completions" {
			t.Errorf("Path = %q, want /chat/completions", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer test-key" {
			t.Errorf("Authorization = %q", got)
		}

		var req chatRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("Decode request: %v", err)
		}
		if req.Model != "gpt-4o-mini" {
			t.Errorf("Model = %q", req.Model)
		}
		last := req.Messages[len(req.Messages)-1]
		if last.Role != "user" || last.Content != "write an intro" {
			t.Errorf("Last message = %+v", last)
		}

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"# Intro\n\nHello."}}]}`))
	}))
	defer server.Close()

	svc := newAIService(activeAIStore(t, server.URL), aiCfg(), zerolog.Nop())

	text, err := svc.GenerateText(context.Background(), "write an intro", "")
	if err != nil {
		t.Fatalf("GenerateText failed: %v", err)
	}
	if text != "# Intro\n\nHello." {
		t.Errorf("Generated text = %q", text)
	}
}

func TestAIService_GenerateTextIncludesDocumentContext(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req chatRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("Decode request: %v", err)
		}
		found := false
		for _, m := range req.Messages {
			if m.Role == "system" && strings.Contains(m.Content, "existing draft body") {
				found = true
			}
		}
		if !found {
			t.Error("Document context was not forwarded to the provider")
		}
		w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"ok"}}]}`))
	}))
	defer server.Close()

	svc := newAIService(activeAIStore(t, server.URL), aiCfg(), zerolog.Nop())

	if _, err := svc.GenerateText(context.Background(), "continue", "existing draft body"); err != nil {
		t.Fatalf("GenerateText failed: %v", err)
	}
}

func TestAIService_GenerateImages(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/images/generations" {
			t.Errorf("Path = %q, want /images/generations", r.URL.Path)
		}
		w.Write([]byte(`{"data":[{"url":"https://img.example.com/a.png"},{"url":"https://img.example.com/b.png"}]}`))
	}))
	defer server.Close()

	svc := newAIService(activeAIStore(t, server.URL), aiCfg(), zerolog.Nop())

	urls, err := svc.GenerateImages(context.Background(), "a lighthouse")
	if err != nil {
		t.Fatalf("GenerateImages failed: %v", err)
	}
	if len(urls) != 2 || urls[0] != "https://img.example.com/a.png" {
		t.Errorf("URLs = %v", urls)
	}
}

func TestAIService_ProviderErrorIncludesBodyExcerpt(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error":{"message":"invalid api key"}}`))
	}))
	defer server.Close()

	svc := newAIService(activeAIStore(t, server.URL), aiCfg(), zerolog.Nop())

	_, err := svc.GenerateText(context.Background(), "prompt", "")
	if err == nil {
		t.Fatal("Expected an error for a 401 response")
	}
	if !strings.Contains(err.Error(), "401") || !strings.Contains(err.Error(), "invalid api key") {
		t.Errorf("Error should carry status and excerpt, got %q", err.Error())
	}
}

func TestAIService_EmptyChoicesIsAnError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"choices":[]}`))
	}))
	defer server.Close()

	svc := newAIService(activeAIStore(t, server.URL), aiCfg(), zerolog.Nop())

	if _, err := svc.GenerateText(context.Background(), "prompt", ""); err == nil {
		t.Fatal("Expected an error when the provider returns no choices")
	}
}
