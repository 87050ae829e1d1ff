package orbit

import "github.com/go-gl/mathgl/mgl32"

// MouseButton identifies one of the two buttons the controller listens to
type MouseButton int

const (
	MouseButtonPrimary   MouseButton = iota // Orbit
	MouseButtonSecondary                    // Pitch
)

// String returns a readable button name
func (b MouseButton) String() string {
	switch b {
	case MouseButtonPrimary:
		return "primary"
	case MouseButtonSecondary:
		return "secondary"
	default:
		return "unknown"
	}
}

// Input is the per-tick input the controller polls.
// CursorPosition is in window pixels with the origin at the bottom-left corner.
// ScrollDelta is the wheel movement since the previous tick.
type Input interface {
	CursorPosition() mgl32.Vec2
	IsButtonHeld(button MouseButton) bool
	ScrollDelta() mgl32.Vec2
}

// Pivot is the object the camera orbits around.
// RotateLocal rotates by Euler angles in degrees, in the pivot's own space.
type Pivot interface {
	RotateLocal(x, y, z float32)
}

// Lens is anything with an orthographic size the controller can drive
type Lens interface {
	OrthoSize() float32
	SetOrthoSize(size float32)
}
