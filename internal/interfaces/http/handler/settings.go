package handler

import (
	"sync"

	"github.com/gin-gonic/gin"
	settingsapp "github.com/medigas/backend/internal/application/settings"
	"github.com/medigas/backend/internal/domain/page"
	"github.com/medigas/backend/internal/domain/settings"
)

// SettingsHandler handles preferences and settings panel endpoints
type SettingsHandler struct {
	BaseHandler
	prefs *settingsapp.Service

	mu    sync.Mutex
	panel *page.PanelToggle
}

// NewSettingsHandler creates a new SettingsHandler
func NewSettingsHandler(prefs *settingsapp.Service) *SettingsHandler {
	return &SettingsHandler{prefs: prefs, panel: &page.PanelToggle{}}
}

// UpdateSettingsRequest carries a partial preferences update. Absent
// fields leave the stored values untouched.
type UpdateSettingsRequest struct {
	DarkMode          *bool   `json:"darkMode"`
	FontSize          *string `json:"fontSize" binding:"omitempty,fontsize"`
	AnimationsEnabled *bool   `json:"animationsEnabled"`
}

// SettingsResponse pairs the stored preferences with the visual state
// the page derives from them
type SettingsResponse struct {
	Preferences settings.Preferences `json:"preferences"`
	Visual      settings.VisualState `json:"visual"`
}

// Get returns the effective preferences and their visual state
func (h *SettingsHandler) Get(c *gin.Context) {
	prefs, err := h.prefs.Load(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, SettingsResponse{Preferences: prefs, Visual: prefs.Visual()})
}

// Update applies a partial preferences update and returns the merged result
func (h *SettingsHandler) Update(c *gin.Context) {
	var req UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body")
		return
	}

	partial := settings.Partial{
		DarkMode:          req.DarkMode,
		AnimationsEnabled: req.AnimationsEnabled,
	}
	if req.FontSize != nil {
		size := settings.FontSize(*req.FontSize)
		partial.FontSize = &size
	}

	prefs, err := h.prefs.Update(c.Request.Context(), partial)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, SettingsResponse{Preferences: prefs, Visual: prefs.Visual()})
}

// TogglePanel flips the settings panel open or closed
func (h *SettingsHandler) TogglePanel(c *gin.Context) {
	h.mu.Lock()
	open := h.panel.Toggle()
	h.mu.Unlock()
	h.Success(c, gin.H{"open": open})
}

// RegisterRoutes registers settings routes
func (h *SettingsHandler) RegisterRoutes(rg *gin.RouterGroup) {
	group := rg.Group("/settings")
	{
		group.GET("", h.Get)
		group.PATCH("", h.Update)
		group.POST("/panel/toggle", h.TogglePanel)
	}
}
