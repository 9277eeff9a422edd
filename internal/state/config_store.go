package state

import (
	"context"
	"encoding/json"

	"github.com/content-studio-api/internal/kvstore"
	"github.com/content-studio-api/internal/models"
	"github.com/rs/zerolog"
)

// Durable-store keys for the remaining configuration slots
const (
	KeyNewsConfig      = "appSettings.newsConfig"
	KeyUserAppSettings = "userAppSettings"
)

// NewsConfigStore is the single-slot holder for the news provider credential.
// Last write wins; there is nothing to reconcile.
type NewsConfigStore struct {
	base
	config *models.NewsConfig
}

// NewNewsConfigStore creates an unhydrated news configuration store
func NewNewsConfigStore(kv kvstore.Store, log zerolog.Logger) *NewsConfigStore {
	return &NewsConfigStore{base: newBase(kv, log, "news_config")}
}

// Load hydrates the slot; corrupt or absent data degrades to "no config"
func (s *NewsConfigStore) Load(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.config = nil

	raw, ok := s.get(ctx, KeyNewsConfig)
	if !ok {
		return
	}
	var config models.NewsConfig
	if err := json.Unmarshal([]byte(raw), &config); err != nil {
		s.log.Error().Err(err).Str("key", KeyNewsConfig).Msg("Corrupt stored news config, ignoring")
		return
	}
	s.config = &config
}

// Save overwrites the slot and persists it
func (s *NewsConfigStore) Save(ctx context.Context, config models.NewsConfig) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.config = &config
	s.setJSON(ctx, KeyNewsConfig, config)
}

// Get returns the stored config, nil when none is set
func (s *NewsConfigStore) Get() *models.NewsConfig {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.config == nil {
		return nil
	}
	config := *s.config
	return &config
}

// SettingsStore passes the free-form UI preference bag through verbatim. The
// payload is opaque to the core; it is stored and returned as raw JSON.
type SettingsStore struct {
	base
}

// NewSettingsStore creates a settings passthrough store
func NewSettingsStore(kv kvstore.Store, log zerolog.Logger) *SettingsStore {
	return &SettingsStore{base: newBase(kv, log, "user_settings")}
}

// Save stores the raw settings document
func (s *SettingsStore) Save(ctx context.Context, settings json.RawMessage) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.set(ctx, KeyUserAppSettings, string(settings))
}

// Get returns the raw settings document, or ok=false when none is stored
func (s *SettingsStore) Get(ctx context.Context) (json.RawMessage, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	raw, ok := s.get(ctx, KeyUserAppSettings)
	if !ok {
		return nil, false
	}
	return json.RawMessage(raw), true
}
