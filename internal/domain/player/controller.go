package player

import (
	"go.uber.org/zap"
)

// Transport control glyphs mirrored from the surface's playback state
const (
	GlyphPlay    = "▶️"
	GlyphPause   = "⏸"
	GlyphSound   = "🔊"
	GlyphMuted   = "🔇"
	SeekStepSecs = 5
)

// Keyboard shortcut keys
const (
	KeySpace      = " "
	KeyMute       = "m"
	KeyFullscreen = "f"
	KeyArrowLeft  = "ArrowLeft"
	KeyArrowRight = "ArrowRight"
)

// Controller drives the custom transport controls over one media
// surface. It holds no playback state; every read goes to the surface
// and every label is derived from it.
type Controller struct {
	surface Surface
	log     *zap.Logger
}

// NewController creates a player controller over the given surface
func NewController(surface Surface, log *zap.Logger) *Controller {
	return &Controller{
		surface: surface,
		log:     log.Named("player"),
	}
}

// TogglePlayback flips between playing and paused and returns the
// resulting play/pause glyph
func (c *Controller) TogglePlayback() string {
	if c.surface.Paused() {
		c.surface.Play()
	} else {
		c.surface.Pause()
	}
	return c.PlayLabel()
}

// PlayLabel returns the glyph for the play/pause control, reflecting
// the surface's current state
func (c *Controller) PlayLabel() string {
	if c.surface.Paused() {
		return GlyphPlay
	}
	return GlyphPause
}

// ProgressPercent maps the playback position onto the progress bar
func (c *Controller) ProgressPercent() float64 {
	duration := c.surface.Duration()
	if duration <= 0 {
		return 0
	}
	return c.surface.CurrentTime() / duration * 100
}

// SeekPercent maps a progress-bar position back onto media time
func (c *Controller) SeekPercent(percent float64) {
	percent = clamp(percent, 0, 100)
	c.surface.SetCurrentTime(percent / 100 * c.surface.Duration())
}

// ToggleMute flips the mute state and returns the resulting glyph
func (c *Controller) ToggleMute() string {
	c.surface.SetMuted(!c.surface.Muted())
	return c.MuteLabel()
}

// MuteLabel returns the glyph for the mute control
func (c *Controller) MuteLabel() string {
	if c.surface.Muted() {
		return GlyphMuted
	}
	return GlyphSound
}

// ToggleFullscreen enters fullscreen, or exits if already active.
// A rejected request is logged and swallowed; the other controls keep
// working.
func (c *Controller) ToggleFullscreen() {
	if c.surface.FullscreenActive() {
		c.surface.ExitFullscreen()
		return
	}
	if err := c.surface.RequestFullscreen(); err != nil {
		c.log.Error("Error attempting to enable fullscreen", zap.Error(err))
	}
}

// JumpToChapter seeks to the chapter's fixed timestamp and resumes
// playback if the surface was paused
func (c *Controller) JumpToChapter(seconds float64) {
	c.surface.SetCurrentTime(seconds)
	if c.surface.Paused() {
		c.surface.Play()
	}
}

// HandleKey dispatches a keyboard shortcut. Shortcuts are suppressed
// while a text input holds focus so ordinary typing is not intercepted.
// Returns true when the key was handled.
func (c *Controller) HandleKey(key string, inputFocused bool) bool {
	if inputFocused {
		return false
	}

	switch key {
	case KeySpace:
		c.TogglePlayback()
	case KeyMute:
		c.ToggleMute()
	case KeyFullscreen:
		c.ToggleFullscreen()
	case KeyArrowLeft:
		c.surface.SetCurrentTime(clamp(c.surface.CurrentTime()-SeekStepSecs, 0, c.surface.Duration()))
	case KeyArrowRight:
		c.surface.SetCurrentTime(clamp(c.surface.CurrentTime()+SeekStepSecs, 0, c.surface.Duration()))
	default:
		return false
	}
	return true
}

// State is a snapshot of the mirrored playback state
type State struct {
	Playing         bool    `json:"playing"`
	CurrentTime     float64 `json:"current_time"`
	Duration        float64 `json:"duration"`
	ProgressPercent float64 `json:"progress_percent"`
	Muted           bool    `json:"muted"`
	Fullscreen      bool    `json:"fullscreen"`
	PlayLabel       string  `json:"play_label"`
	MuteLabel       string  `json:"mute_label"`
}

// State captures the surface's current playback state
func (c *Controller) State() State {
	return State{
		Playing:         !c.surface.Paused(),
		CurrentTime:     c.surface.CurrentTime(),
		Duration:        c.surface.Duration(),
		ProgressPercent: c.ProgressPercent(),
		Muted:           c.surface.Muted(),
		Fullscreen:      c.surface.FullscreenActive(),
		PlayLabel:       c.PlayLabel(),
		MuteLabel:       c.MuteLabel(),
	}
}
