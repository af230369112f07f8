package player

import (
	"sync"
	"time"

	"github.com/medigas/backend/internal/domain/shared"
)

// Surface is the media element the player controller wraps. The
// controller keeps no playback state of its own; the surface's native
// state is the only source of truth.
type Surface interface {
	Play()
	Pause()
	Paused() bool
	CurrentTime() float64
	SetCurrentTime(seconds float64)
	Duration() float64
	Muted() bool
	SetMuted(muted bool)
	RequestFullscreen() error
	ExitFullscreen()
	FullscreenActive() bool
}

// SimulatedSurface is a clock-driven Surface standing in for the page's
// video element. While playing, the current time advances with the
// wall clock and clamps at the duration.
type SimulatedSurface struct {
	mu             sync.Mutex
	duration       float64
	position       float64
	playing        bool
	playStart      time.Time
	muted          bool
	fullscreen     bool
	denyFullscreen bool
	now            func() time.Time
}

// NewSimulatedSurface creates a surface with the given media duration
// in seconds
func NewSimulatedSurface(duration float64) *SimulatedSurface {
	return &SimulatedSurface{
		duration: duration,
		now:      time.Now,
	}
}

// DenyFullscreen makes subsequent fullscreen requests fail, standing in
// for a browser rejecting the request
func (s *SimulatedSurface) DenyFullscreen(deny bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.denyFullscreen = deny
}

// Play implements Surface
func (s *SimulatedSurface) Play() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.playing {
		return
	}
	s.playing = true
	s.playStart = s.now()
}

// Pause implements Surface
func (s *SimulatedSurface) Pause() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.capturePosition()
	s.playing = false
}

// Paused implements Surface
func (s *SimulatedSurface) Paused() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.capturePosition()
	return !s.playing
}

// CurrentTime implements Surface
func (s *SimulatedSurface) CurrentTime() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.capturePosition()
	return s.position
}

// SetCurrentTime implements Surface, clamping to [0, duration]
func (s *SimulatedSurface) SetCurrentTime(seconds float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.position = clamp(seconds, 0, s.duration)
	if s.playing {
		s.playStart = s.now()
	}
}

// Duration implements Surface
func (s *SimulatedSurface) Duration() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.duration
}

// Muted implements Surface
func (s *SimulatedSurface) Muted() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.muted
}

// SetMuted implements Surface
func (s *SimulatedSurface) SetMuted(muted bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.muted = muted
}

// RequestFullscreen implements Surface
func (s *SimulatedSurface) RequestFullscreen() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.denyFullscreen {
		return shared.NewDomainError("FULLSCREEN_DENIED", "Fullscreen request was rejected")
	}
	s.fullscreen = true
	return nil
}

// ExitFullscreen implements Surface
func (s *SimulatedSurface) ExitFullscreen() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.fullscreen = false
}

// FullscreenActive implements Surface
func (s *SimulatedSurface) FullscreenActive() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.fullscreen
}

// capturePosition folds elapsed play time into the stored position.
// Playback stops once the clamp at the duration is reached.
// Callers must hold the mutex.
func (s *SimulatedSurface) capturePosition() {
	if !s.playing {
		return
	}
	now := s.now()
	s.position += now.Sub(s.playStart).Seconds()
	s.playStart = now
	if s.position >= s.duration {
		s.position = s.duration
		s.playing = false
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
