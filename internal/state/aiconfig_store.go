package state

import (
	"context"
	"encoding/json"

	"github.com/content-studio-api/internal/kvstore"
	"github.com/content-studio-api/internal/models"
	"github.com/rs/zerolog"
)

// Durable-store keys for the AI configuration profiles. The active id is
// stored as a bare string, not JSON-wrapped.
const (
	KeyAIConfigs        = "appSettings.aiConfigs"
	KeyActiveAIConfigID = "appSettings.activeAiConfigId"
)

// AIConfigStore owns the named AI credential profiles and the single active
// profile pointer. Field completeness is deliberately not enforced here;
// consumers re-validate the active profile at the point of use.
type AIConfigStore struct {
	base
	configs  []models.AIConfig
	activeID string // empty means no active profile
}

// NewAIConfigStore creates an unhydrated AI configuration store
func NewAIConfigStore(kv kvstore.Store, log zerolog.Logger) *AIConfigStore {
	return &AIConfigStore{base: newBase(kv, log, "ai_configs")}
}

// Load hydrates the profile list and the active pointer. Corrupt or absent
// data degrades to an empty list / no active profile.
func (s *AIConfigStore) Load(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.configs = nil
	s.activeID = ""

	if raw, ok := s.get(ctx, KeyAIConfigs); ok {
		var configs []models.AIConfig
		if err := json.Unmarshal([]byte(raw), &configs); err != nil {
			s.log.Error().Err(err).Str("key", KeyAIConfigs).Msg("Corrupt stored AI configs, starting empty")
		} else {
			s.configs = configs
		}
	}

	if raw, ok := s.get(ctx, KeyActiveAIConfigID); ok {
		s.activeID = raw
	}
}

// All returns every stored profile
func (s *AIConfigStore) All() []models.AIConfig {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.AIConfig(nil), s.configs...)
}

// Add stamps a fresh id onto the profile, appends it and persists the list
func (s *AIConfigStore) Add(ctx context.Context, name, apiKey, apiURL, model string) models.AIConfig {
	s.mu.Lock()
	defer s.mu.Unlock()

	config := models.NewAIConfig(name, apiKey, apiURL, model)
	s.configs = append(s.configs, config)
	s.persistConfigsLocked(ctx)
	return config
}

// Update replaces the profile with the matching id. Unknown ids are a silent
// no-op.
func (s *AIConfigStore) Update(ctx context.Context, config models.AIConfig) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, c := range s.configs {
		if c.ID != config.ID {
			continue
		}
		s.configs[i] = config
		s.persistConfigsLocked(ctx)
		return
	}
}

// Delete removes the profile and persists the list, then clears the active
// pointer if it referenced the deleted profile. The list is persisted before
// the pointer so an interruption can not leave a dangling reference behind.
func (s *AIConfigStore) Delete(ctx context.Context, id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	filtered := s.configs[:0]
	for _, c := range s.configs {
		if c.ID != id {
			filtered = append(filtered, c)
		}
	}
	s.configs = filtered
	s.persistConfigsLocked(ctx)

	if s.activeID == id {
		s.activeID = ""
		s.persistActiveLocked(ctx)
	}
}

// SetActive sets the active pointer unconditionally; no existence check is
// made at write time. Pass an empty id to clear the selection.
func (s *AIConfigStore) SetActive(ctx context.Context, id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.activeID = id
	s.persistActiveLocked(ctx)
}

// ActiveID returns the active pointer, empty when no profile is selected
func (s *AIConfigStore) ActiveID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.activeID
}

// LoadActive resolves the active pointer against the current list. A nil
// result means no profile is selected or the pointer dangles; callers must
// treat both the same.
func (s *AIConfigStore) LoadActive() *models.AIConfig {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.activeID == "" {
		return nil
	}
	for _, c := range s.configs {
		if c.ID == s.activeID {
			config := c
			return &config
		}
	}
	return nil
}

// Count returns the number of stored profiles
func (s *AIConfigStore) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.configs)
}

func (s *AIConfigStore) persistConfigsLocked(ctx context.Context) {
	s.setJSON(ctx, KeyAIConfigs, s.configs)
}

func (s *AIConfigStore) persistActiveLocked(ctx context.Context) {
	s.set(ctx, KeyActiveAIConfigID, s.activeID)
}
