package api

import (
	"net/http"
	"time"

	"github.com/content-studio-api/internal/models"
	"github.com/content-studio-api/internal/state"
	"github.com/content-studio-api/internal/validation"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// ContentHandler handles content endpoints
type ContentHandler struct {
	app *state.App
	log zerolog.Logger
}

// NewContentHandler creates a new ContentHandler
func NewContentHandler(app *state.App, log zerolog.Logger) *ContentHandler {
	return &ContentHandler{
		app: app,
		log: log.With().Str("handler", "content").Logger(),
	}
}

// List handles GET /v1/contents
func (h *ContentHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, h.app.Contents.All())
}

// Drafts handles GET /v1/contents/drafts
// ?recent=true returns the bounded recent-drafts view
func (h *ContentHandler) Drafts(c *gin.Context) {
	if c.Query("recent") == "true" {
		c.JSON(http.StatusOK, h.app.RecentDrafts())
		return
	}
	c.JSON(http.StatusOK, h.app.Contents.Drafts())
}

// Published handles GET /v1/contents/published
func (h *ContentHandler) Published(c *gin.Context) {
	c.JSON(http.StatusOK, h.app.PublishedContents())
}

// Save handles POST /v1/contents — upserts a document by id; a request
// without an id creates a fresh draft
func (h *ContentHandler) Save(c *gin.Context) {
	var content models.Content
	if err := c.ShouldBindJSON(&content); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if content.ID == "" {
		draft := models.NewContent()
		content.ID = draft.ID
		content.CreatedAt = draft.CreatedAt
		if content.Title == "" {
			content.Title = draft.Title
		}
		if content.Status == "" {
			content.Status = draft.Status
		}
	}
	if content.Status == "" {
		content.Status = models.ContentStatusDraft
	}
	if content.CreatedAt.IsZero() {
		content.CreatedAt = time.Now().UTC()
	}

	if errs := validation.Content(&content); len(errs) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"errors": errs})
		return
	}

	saved := h.app.Contents.Save(c.Request.Context(), content)
	c.JSON(http.StatusOK, saved)
}

// Delete handles DELETE /v1/contents/:id
func (h *ContentHandler) Delete(c *gin.Context) {
	h.app.Contents.Delete(c.Request.Context(), c.Param("id"))
	c.Status(http.StatusNoContent)
}

// Publish handles POST /v1/contents/:id/publish
func (h *ContentHandler) Publish(c *gin.Context) {
	var req struct {
		Platforms []string `json:"platforms"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if len(req.Platforms) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "at least one platform is required"})
		return
	}

	id := c.Param("id")
	if _, ok := h.app.Contents.Get(id); !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "content not found"})
		return
	}

	h.app.Contents.Publish(c.Request.Context(), id, req.Platforms)

	published, _ := h.app.Contents.Get(id)
	c.JSON(http.StatusOK, published)
}

// Current handles GET /v1/contents/current
func (h *ContentHandler) Current(c *gin.Context) {
	current := h.app.Contents.Current()
	if current == nil {
		c.JSON(http.StatusOK, gin.H{"current": nil})
		return
	}
	c.JSON(http.StatusOK, gin.H{"current": current})
}

// SetCurrent handles PUT /v1/contents/current — an empty id clears the
// selection
func (h *ContentHandler) SetCurrent(c *gin.Context) {
	var req struct {
		ID string `json:"id"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if req.ID == "" {
		h.app.Contents.SetCurrent(nil)
		c.Status(http.StatusNoContent)
		return
	}

	content, ok := h.app.Contents.Get(req.ID)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "content not found"})
		return
	}
	h.app.Contents.SetCurrent(&content)
	c.Status(http.StatusNoContent)
}
