// Package input holds per-tick input snapshots for the orbit controller.
// Host-specific sources live in the glfwinput and ebiteninput subpackages.
package input

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/leterax/go-orbitcam/pkg/orbit"
)

// State is one tick's worth of pointer input
type State struct {
	Cursor    mgl32.Vec2 // Pixels, origin at the bottom-left
	Primary   bool
	Secondary bool
	Scroll    mgl32.Vec2
}

var _ orbit.Input = State{}

// CursorPosition returns the pointer position
func (s State) CursorPosition() mgl32.Vec2 {
	return s.Cursor
}

// IsButtonHeld reports whether button is down
func (s State) IsButtonHeld(button orbit.MouseButton) bool {
	switch button {
	case orbit.MouseButtonPrimary:
		return s.Primary
	case orbit.MouseButtonSecondary:
		return s.Secondary
	default:
		return false
	}
}

// ScrollDelta returns the wheel movement for the tick
func (s State) ScrollDelta() mgl32.Vec2 {
	return s.Scroll
}

// FlipY converts a top-left origin y coordinate to a bottom-left one
func FlipY(y float64, height int) float32 {
	return float32(float64(height) - y)
}

// ScrollAccumulator sums wheel events that arrive between ticks
type ScrollAccumulator struct {
	pending mgl32.Vec2
}

// Add records a wheel event
func (a *ScrollAccumulator) Add(x, y float64) {
	a.pending = a.pending.Add(mgl32.Vec2{float32(x), float32(y)})
}

// Take returns the summed scroll and clears it
func (a *ScrollAccumulator) Take() mgl32.Vec2 {
	s := a.pending
	a.pending = mgl32.Vec2{}
	return s
}
