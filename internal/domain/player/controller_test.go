package player

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

// fakeClock drives the simulated surface deterministically
type fakeClock struct {
	t time.Time
}

func (c *fakeClock) now() time.Time { return c.t }

func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func newTestPlayer(duration float64) (*Controller, *SimulatedSurface, *fakeClock) {
	clock := &fakeClock{t: time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)}
	surface := NewSimulatedSurface(duration)
	surface.now = clock.now
	return NewController(surface, zap.NewNop()), surface, clock
}

func TestTogglePlayback(t *testing.T) {
	ctrl, surface, _ := newTestPlayer(180)

	assert.Equal(t, GlyphPlay, ctrl.PlayLabel(), "starts paused")

	label := ctrl.TogglePlayback()
	assert.Equal(t, GlyphPause, label)
	assert.False(t, surface.Paused())

	label = ctrl.TogglePlayback()
	assert.Equal(t, GlyphPlay, label)
	assert.True(t, surface.Paused())
}

func TestPlaybackAdvancesWithClock(t *testing.T) {
	ctrl, _, clock := newTestPlayer(180)

	ctrl.TogglePlayback()
	clock.advance(30 * time.Second)

	state := ctrl.State()
	assert.InDelta(t, 30, state.CurrentTime, 0.001)
	assert.InDelta(t, 100.0/6, state.ProgressPercent, 0.001)
}

func TestPlaybackStopsAtDuration(t *testing.T) {
	ctrl, surface, clock := newTestPlayer(60)

	ctrl.TogglePlayback()
	clock.advance(2 * time.Minute)

	assert.InDelta(t, 60, surface.CurrentTime(), 0.001)
	assert.True(t, surface.Paused())
}

func TestSeekPercent(t *testing.T) {
	ctrl, surface, _ := newTestPlayer(200)

	ctrl.SeekPercent(25)
	assert.InDelta(t, 50, surface.CurrentTime(), 0.001)

	ctrl.SeekPercent(150)
	assert.InDelta(t, 200, surface.CurrentTime(), 0.001, "over-range scrub clamps to the end")

	ctrl.SeekPercent(-10)
	assert.InDelta(t, 0, surface.CurrentTime(), 0.001)
}

func TestToggleMute(t *testing.T) {
	ctrl, surface, _ := newTestPlayer(180)

	assert.Equal(t, GlyphSound, ctrl.MuteLabel())
	assert.Equal(t, GlyphMuted, ctrl.ToggleMute())
	assert.True(t, surface.Muted())
	assert.Equal(t, GlyphSound, ctrl.ToggleMute())
}

func TestToggleFullscreen(t *testing.T) {
	ctrl, surface, _ := newTestPlayer(180)

	ctrl.ToggleFullscreen()
	assert.True(t, surface.FullscreenActive())

	ctrl.ToggleFullscreen()
	assert.False(t, surface.FullscreenActive())
}

func TestFullscreenRejectionDoesNotDisturbOtherControls(t *testing.T) {
	ctrl, surface, _ := newTestPlayer(180)
	surface.DenyFullscreen(true)

	ctrl.ToggleFullscreen()
	assert.False(t, surface.FullscreenActive())

	// Rejection is logged and swallowed; playback still works
	assert.Equal(t, GlyphPause, ctrl.TogglePlayback())
}

func TestJumpToChapter(t *testing.T) {
	ctrl, surface, _ := newTestPlayer(180)

	t.Run("resumes when paused", func(t *testing.T) {
		ctrl.JumpToChapter(90)
		assert.InDelta(t, 90, surface.CurrentTime(), 0.001)
		assert.False(t, surface.Paused())
	})

	t.Run("keeps playing when already playing", func(t *testing.T) {
		ctrl.JumpToChapter(120)
		assert.InDelta(t, 120, surface.CurrentTime(), 0.001)
		assert.False(t, surface.Paused())
	})
}

func TestHandleKey(t *testing.T) {
	t.Run("space toggles playback", func(t *testing.T) {
		ctrl, surface, _ := newTestPlayer(180)
		assert.True(t, ctrl.HandleKey(KeySpace, false))
		assert.False(t, surface.Paused())
	})

	t.Run("m toggles mute", func(t *testing.T) {
		ctrl, surface, _ := newTestPlayer(180)
		assert.True(t, ctrl.HandleKey(KeyMute, false))
		assert.True(t, surface.Muted())
	})

	t.Run("f toggles fullscreen", func(t *testing.T) {
		ctrl, surface, _ := newTestPlayer(180)
		assert.True(t, ctrl.HandleKey(KeyFullscreen, false))
		assert.True(t, surface.FullscreenActive())
	})

	t.Run("arrows seek five seconds with clamping", func(t *testing.T) {
		ctrl, surface, _ := newTestPlayer(180)

		assert.True(t, ctrl.HandleKey(KeyArrowLeft, false))
		assert.InDelta(t, 0, surface.CurrentTime(), 0.001, "left at start clamps to zero")

		assert.True(t, ctrl.HandleKey(KeyArrowRight, false))
		assert.InDelta(t, 5, surface.CurrentTime(), 0.001)

		surface.SetCurrentTime(178)
		assert.True(t, ctrl.HandleKey(KeyArrowRight, false))
		assert.InDelta(t, 180, surface.CurrentTime(), 0.001, "right near end clamps to duration")
	})

	t.Run("suppressed while text input focused", func(t *testing.T) {
		ctrl, surface, _ := newTestPlayer(180)
		assert.False(t, ctrl.HandleKey(KeySpace, true))
		assert.True(t, surface.Paused())
	})

	t.Run("unknown key ignored", func(t *testing.T) {
		ctrl, _, _ := newTestPlayer(180)
		assert.False(t, ctrl.HandleKey("x", false))
	})
}
