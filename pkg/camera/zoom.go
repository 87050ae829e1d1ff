package camera

import (
	"time"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"github.com/leterax/go-orbitcam/pkg/orbit"
)

// SmoothZoom eases a lens toward the size it was last asked for.
// OrthoSize reports the requested size, so a controller that only writes on change
// does not restart the ease every tick.
type SmoothZoom struct {
	lens     orbit.Lens
	duration float32 // seconds
	target   float32
	tween    *gween.Tween
}

// NewSmoothZoom wraps lens. A zero duration applies sizes immediately.
func NewSmoothZoom(lens orbit.Lens, duration time.Duration) *SmoothZoom {
	return &SmoothZoom{
		lens:     lens,
		duration: float32(duration.Seconds()),
		target:   lens.OrthoSize(),
	}
}

// OrthoSize returns the requested size
func (s *SmoothZoom) OrthoSize() float32 {
	return s.target
}

// SetOrthoSize starts easing the wrapped lens from its current size to size
func (s *SmoothZoom) SetOrthoSize(size float32) {
	if size == s.target {
		return
	}
	s.target = size

	if s.duration <= 0 {
		s.tween = nil
		s.lens.SetOrthoSize(size)
		return
	}
	s.tween = gween.New(s.lens.OrthoSize(), size, s.duration, ease.OutQuad)
}

// Update advances the ease by dt seconds
func (s *SmoothZoom) Update(dt float32) {
	if s.tween == nil {
		return
	}

	current, finished := s.tween.Update(dt)
	if finished {
		current = s.target
		s.tween = nil
	}
	s.lens.SetOrthoSize(current)
}

// Current returns the size the wrapped lens has right now
func (s *SmoothZoom) Current() float32 {
	return s.lens.OrthoSize()
}

// Settled reports whether the lens has reached the requested size
func (s *SmoothZoom) Settled() bool {
	return s.tween == nil
}
