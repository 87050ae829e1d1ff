package orbit

// Controller defaults
const (
	// Zoom
	DefaultDistance  = 2.0
	MinDistance      = 1.0
	MaxDistance      = 10.0
	DefaultZoomSpeed = 0.5

	// Drag speeds, in degrees per tick of pointer movement
	DefaultMouseSpeed = 5.0
	DefaultPitchSpeed = 5.0
)

// normalizeEpsilon is the length below which a drag delta counts as no movement
const normalizeEpsilon = 1e-5
