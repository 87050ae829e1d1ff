package render

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Window defaults
const (
	DefaultWidth  = 800
	DefaultHeight = 600
	DefaultTitle  = "Go-Orbitcam"
)

// Scene constants
const (
	// Half the number of grid cells along each axis
	GridHalfExtent = 10
	GridSpacing    = 1.0

	AxesLength = 1.5
	CubeSize   = 1.0
)

var (
	// ClearColor is the dark blue background
	ClearColor = mgl32.Vec4{0.05, 0.05, 0.1, 1.0}

	GridColor  = mgl32.Vec3{0.3, 0.3, 0.35}
	ModelColor = mgl32.Vec3{0.8, 0.8, 0.8}

	// Directional light, pointing from the light toward the scene
	LightDir   = mgl32.Vec3{-0.4, -1.0, -0.6}
	LightColor = mgl32.Vec3{1.0, 1.0, 1.0}
)
