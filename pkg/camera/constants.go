package camera

import "github.com/go-gl/mathgl/mgl32"

// Camera constants
const (
	// Default orthographic half-height, matches the controller's default distance
	DefaultOrthoSize = 2.0

	// Clipping planes
	DefaultNear = 0.1
	DefaultFar  = 100.0

	// Default viewport
	DefaultWidth  = 800
	DefaultHeight = 600
)

// DefaultOffset places the camera behind the pivot, looking along the pivot's +Z
var DefaultOffset = mgl32.Vec3{0, 0, -10}
