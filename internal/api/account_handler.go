package api

import (
	"net/http"

	"github.com/content-studio-api/internal/models"
	"github.com/content-studio-api/internal/state"
	"github.com/content-studio-api/internal/validation"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// AccountHandler handles platform account endpoints
type AccountHandler struct {
	app *state.App
	log zerolog.Logger
}

// NewAccountHandler creates a new AccountHandler
func NewAccountHandler(app *state.App, log zerolog.Logger) *AccountHandler {
	return &AccountHandler{
		app: app,
		log: log.With().Str("handler", "account").Logger(),
	}
}

// List handles GET /v1/accounts
func (h *AccountHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, h.app.Accounts.All())
}

// Add handles POST /v1/accounts
func (h *AccountHandler) Add(c *gin.Context) {
	var params models.PlatformAccountParams
	if err := c.ShouldBindJSON(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if errs := validation.PlatformAccountParams(&params); len(errs) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"errors": errs})
		return
	}

	account := h.app.Accounts.Add(c.Request.Context(), params)
	c.JSON(http.StatusCreated, account)
}

// Connect handles POST /v1/accounts/:id/connect. Unknown ids are a no-op,
// matching the store contract.
func (h *AccountHandler) Connect(c *gin.Context) {
	h.app.Accounts.Connect(c.Request.Context(), c.Param("id"))
	c.Status(http.StatusNoContent)
}

// Disconnect handles POST /v1/accounts/:id/disconnect
func (h *AccountHandler) Disconnect(c *gin.Context) {
	h.app.Accounts.Disconnect(c.Request.Context(), c.Param("id"))
	c.Status(http.StatusNoContent)
}
