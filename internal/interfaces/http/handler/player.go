package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/medigas/backend/internal/domain/player"
)

// PlayerHandler handles the promo video player endpoints
type PlayerHandler struct {
	BaseHandler
	controller *player.Controller
}

// NewPlayerHandler creates a new PlayerHandler
func NewPlayerHandler(controller *player.Controller) *PlayerHandler {
	return &PlayerHandler{controller: controller}
}

// SeekRequest positions playback by timeline percentage
type SeekRequest struct {
	Percent *float64 `json:"percent" binding:"required"`
}

// ChapterRequest jumps playback to a chapter start
type ChapterRequest struct {
	Seconds *float64 `json:"seconds" binding:"required"`
}

// KeyRequest replays a keyboard shortcut against the player
type KeyRequest struct {
	Key          string `json:"key" binding:"required"`
	InputFocused bool   `json:"input_focused"`
}

// State returns the current playback state
func (h *PlayerHandler) State(c *gin.Context) {
	h.Success(c, h.controller.State())
}

// TogglePlayback flips between play and pause
func (h *PlayerHandler) TogglePlayback(c *gin.Context) {
	h.controller.TogglePlayback()
	h.Success(c, h.controller.State())
}

// ToggleMute flips the audio mute flag
func (h *PlayerHandler) ToggleMute(c *gin.Context) {
	h.controller.ToggleMute()
	h.Success(c, h.controller.State())
}

// ToggleFullscreen enters or leaves fullscreen. A refusal from the
// surface is logged and absorbed, matching the page behavior.
func (h *PlayerHandler) ToggleFullscreen(c *gin.Context) {
	h.controller.ToggleFullscreen()
	h.Success(c, h.controller.State())
}

// Seek positions playback at a percentage of the timeline
func (h *PlayerHandler) Seek(c *gin.Context) {
	var req SeekRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body")
		return
	}
	h.controller.SeekPercent(*req.Percent)
	h.Success(c, h.controller.State())
}

// JumpToChapter seeks to a chapter start and resumes playback
func (h *PlayerHandler) JumpToChapter(c *gin.Context) {
	var req ChapterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body")
		return
	}
	h.controller.JumpToChapter(*req.Seconds)
	h.Success(c, h.controller.State())
}

// HandleKey applies a keyboard shortcut unless an input is focused
func (h *PlayerHandler) HandleKey(c *gin.Context) {
	var req KeyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body")
		return
	}
	handled := h.controller.HandleKey(req.Key, req.InputFocused)
	h.Success(c, gin.H{"handled": handled, "state": h.controller.State()})
}

// RegisterRoutes registers player routes
func (h *PlayerHandler) RegisterRoutes(rg *gin.RouterGroup) {
	group := rg.Group("/player")
	{
		group.GET("/state", h.State)
		group.POST("/toggle", h.TogglePlayback)
		group.POST("/mute", h.ToggleMute)
		group.POST("/fullscreen", h.ToggleFullscreen)
		group.POST("/seek", h.Seek)
		group.POST("/chapter", h.JumpToChapter)
		group.POST("/keys", h.HandleKey)
	}
}
