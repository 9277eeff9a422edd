package api

import (
	"encoding/json"
	"net/http"

	"github.com/content-studio-api/internal/models"
	"github.com/content-studio-api/internal/state"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// SettingsHandler handles AI profile, news credential, user preference and
// UI state endpoints
type SettingsHandler struct {
	app *state.App
	log zerolog.Logger
}

// NewSettingsHandler creates a new SettingsHandler
func NewSettingsHandler(app *state.App, log zerolog.Logger) *SettingsHandler {
	return &SettingsHandler{
		app: app,
		log: log.With().Str("handler", "settings").Logger(),
	}
}

// aiConfigRequest carries the non-id fields of a profile
type aiConfigRequest struct {
	Name   string `json:"name"`
	APIKey string `json:"apiKey"`
	APIURL string `json:"apiUrl"`
	Model  string `json:"model"`
}

// ListAIConfigs handles GET /v1/ai-configs
func (h *SettingsHandler) ListAIConfigs(c *gin.Context) {
	c.JSON(http.StatusOK, h.app.AIConfigs.All())
}

// AddAIConfig handles POST /v1/ai-configs
func (h *SettingsHandler) AddAIConfig(c *gin.Context) {
	var req aiConfigRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	config := h.app.AIConfigs.Add(c.Request.Context(), req.Name, req.APIKey, req.APIURL, req.Model)
	c.JSON(http.StatusCreated, config)
}

// UpdateAIConfig handles PUT /v1/ai-configs/:id — an id-preserving full
// replace; unknown ids are a no-op
func (h *SettingsHandler) UpdateAIConfig(c *gin.Context) {
	var req aiConfigRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	h.app.AIConfigs.Update(c.Request.Context(), models.AIConfig{
		ID:     c.Param("id"),
		Name:   req.Name,
		APIKey: req.APIKey,
		APIURL: req.APIURL,
		Model:  req.Model,
	})
	c.Status(http.StatusNoContent)
}

// DeleteAIConfig handles DELETE /v1/ai-configs/:id
func (h *SettingsHandler) DeleteAIConfig(c *gin.Context) {
	h.app.AIConfigs.Delete(c.Request.Context(), c.Param("id"))
	c.Status(http.StatusNoContent)
}

// GetActiveAIConfig handles GET /v1/ai-configs/active
func (h *SettingsHandler) GetActiveAIConfig(c *gin.Context) {
	activeID := h.app.AIConfigs.ActiveID()
	response := gin.H{"activeId": nil, "config": nil}
	if activeID != "" {
		response["activeId"] = activeID
	}
	if config := h.app.AIConfigs.LoadActive(); config != nil {
		response["config"] = config
	}
	c.JSON(http.StatusOK, response)
}

// SetActiveAIConfig handles PUT /v1/ai-configs/active — an empty or null id
// clears the selection. Existence is not checked at write time.
func (h *SettingsHandler) SetActiveAIConfig(c *gin.Context) {
	var req struct {
		ID string `json:"id"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	h.app.AIConfigs.SetActive(c.Request.Context(), req.ID)
	c.Status(http.StatusNoContent)
}

// GetNewsConfig handles GET /v1/news-config
func (h *SettingsHandler) GetNewsConfig(c *gin.Context) {
	config := h.app.NewsConfig.Get()
	if config == nil {
		c.JSON(http.StatusOK, gin.H{"config": nil})
		return
	}
	c.JSON(http.StatusOK, gin.H{"config": config})
}

// SaveNewsConfig handles PUT /v1/news-config
func (h *SettingsHandler) SaveNewsConfig(c *gin.Context) {
	var config models.NewsConfig
	if err := c.ShouldBindJSON(&config); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	h.app.NewsConfig.Save(c.Request.Context(), config)
	c.Status(http.StatusNoContent)
}

// GetUserSettings handles GET /v1/settings — the preference bag is opaque to
// the core and returned verbatim
func (h *SettingsHandler) GetUserSettings(c *gin.Context) {
	raw, ok := h.app.Settings.Get(c.Request.Context())
	if !ok {
		c.JSON(http.StatusOK, gin.H{})
		return
	}
	c.Data(http.StatusOK, "application/json", raw)
}

// SaveUserSettings handles PUT /v1/settings
func (h *SettingsHandler) SaveUserSettings(c *gin.Context) {
	var raw json.RawMessage
	if err := c.ShouldBindJSON(&raw); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	h.app.Settings.Save(c.Request.Context(), raw)
	c.Status(http.StatusNoContent)
}

// GetSidebar handles GET /v1/ui/sidebar
func (h *SettingsHandler) GetSidebar(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"open": h.app.SidebarOpen()})
}

// ToggleSidebar handles POST /v1/ui/sidebar/toggle
func (h *SettingsHandler) ToggleSidebar(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"open": h.app.ToggleSidebar()})
}
