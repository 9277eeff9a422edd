package models

import "github.com/google/uuid"

// AIConfig is a named AI-provider credential profile. At most one profile is
// active at a time; the active selection is tracked by the configuration
// store, not by a field here.
type AIConfig struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	APIKey string `json:"apiKey"`
	APIURL string `json:"apiUrl"`
	Model  string `json:"model"`
}

// NewAIConfig stamps a fresh id onto a profile
func NewAIConfig(name, apiKey, apiURL, model string) AIConfig {
	return AIConfig{
		ID:     uuid.NewString(),
		Name:   name,
		APIKey: apiKey,
		APIURL: apiURL,
		Model:  model,
	}
}

// IsComplete reports whether every field required for a generation call is
// present. Completeness is checked at the point of use, not on write.
func (c AIConfig) IsComplete() bool {
	return c.APIKey != "" && c.APIURL != "" && c.Model != ""
}
