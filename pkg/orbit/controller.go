package orbit

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// Controller turns pointer drags and scrolling into pivot rotation and lens zoom.
// It is driven by calling FixedUpdate once per fixed update tick.
type Controller struct {
	pivot Pivot
	lens  Lens
	cfg   Config

	distance float32

	// Drag state
	orbit dragTracker
	pitch dragTracker
}

// Step reports what a single FixedUpdate did
type Step struct {
	Orbit    mgl32.Vec2 // Degrees around the pivot's right (X) and up (Y) axes
	Pitch    float32    // Degrees around the pivot's forward axis
	Distance float32    // Distance after the tick
	Zoomed   bool       // Whether the lens size was written
}

// NewController creates a controller that rotates pivot and zooms lens
func NewController(pivot Pivot, lens Lens, cfg Config) (*Controller, error) {
	if pivot == nil {
		return nil, ErrNilPivot
	}
	if lens == nil {
		return nil, ErrNilLens
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("failed to create orbit controller: %w", err)
	}

	return &Controller{
		pivot:    pivot,
		lens:     lens,
		cfg:      cfg,
		distance: mgl32.Clamp(cfg.Distance, cfg.MinDistance, cfg.MaxDistance),
	}, nil
}

// FixedUpdate runs one tick: zoom from scroll, orbit from the primary button, pitch from the secondary button.
// A nil input behaves like a tick with no buttons held and no scroll.
func (c *Controller) FixedUpdate(in Input) Step {
	if in == nil {
		in = noInput{}
	}

	var step Step

	// Zoom, then push the distance to the lens whenever the two disagree
	c.distance = Zoom(c.distance, in.ScrollDelta(), c.cfg.ZoomSpeed, c.cfg.MinDistance, c.cfg.MaxDistance)
	if c.lens.OrthoSize() != c.distance {
		c.lens.SetOrthoSize(c.distance)
		step.Zoomed = true
	}
	step.Distance = c.distance

	pos := in.CursorPosition()

	// Orbit
	if in.IsButtonHeld(MouseButtonPrimary) {
		if last, ok := c.orbit.advance(pos); ok {
			step.Orbit = OrbitDelta(last, pos, c.cfg.MouseSpeed)
			c.pivot.RotateLocal(step.Orbit.X(), step.Orbit.Y(), 0)
		}
	} else {
		c.orbit.reset()
	}

	// Pitch
	if in.IsButtonHeld(MouseButtonSecondary) {
		if last, ok := c.pitch.advance(pos); ok {
			step.Pitch = PitchDelta(last, pos, c.cfg.PitchSpeed)
			c.pivot.RotateLocal(0, 0, step.Pitch)
		}
	} else {
		c.pitch.reset()
	}

	return step
}

// Distance returns the current zoom distance
func (c *Controller) Distance() float32 {
	return c.distance
}

// SetDistance sets the zoom distance, clamped to the configured range.
// The lens picks it up on the next tick.
func (c *Controller) SetDistance(distance float32) {
	c.distance = mgl32.Clamp(distance, c.cfg.MinDistance, c.cfg.MaxDistance)
}

// Config returns the controller's configuration
func (c *Controller) Config() Config {
	return c.cfg
}

// Dragging reports whether each button currently has a drag in progress
func (c *Controller) Dragging() (orbit, pitch bool) {
	return c.orbit.hasLast, c.pitch.hasLast
}

// noInput is an Input with nothing pressed
type noInput struct{}

func (noInput) CursorPosition() mgl32.Vec2      { return mgl32.Vec2{} }
func (noInput) IsButtonHeld(_ MouseButton) bool { return false }
func (noInput) ScrollDelta() mgl32.Vec2         { return mgl32.Vec2{} }
