package orbit

import (
	"errors"
	"fmt"
	"math"
)

var (
	ErrNilPivot      = errors.New("orbit: pivot is nil")
	ErrNilLens       = errors.New("orbit: lens is nil")
	ErrInvalidConfig = errors.New("orbit: invalid config")
)

// Config holds the tunable values of a Controller
type Config struct {
	Distance    float32 // Initial zoom distance
	MinDistance float32
	MaxDistance float32

	MouseSpeed float32 // Orbit degrees per tick while dragging
	PitchSpeed float32 // Pitch degrees per tick while dragging
	ZoomSpeed  float32 // Distance change per scroll unit
}

// DefaultConfig returns the stock controller settings
func DefaultConfig() Config {
	return Config{
		Distance:    DefaultDistance,
		MinDistance: MinDistance,
		MaxDistance: MaxDistance,
		MouseSpeed:  DefaultMouseSpeed,
		PitchSpeed:  DefaultPitchSpeed,
		ZoomSpeed:   DefaultZoomSpeed,
	}
}

// Validate reports the first problem with the config, wrapping ErrInvalidConfig
func (c Config) Validate() error {
	fields := []struct {
		name  string
		value float32
	}{
		{"distance", c.Distance},
		{"min distance", c.MinDistance},
		{"max distance", c.MaxDistance},
		{"mouse speed", c.MouseSpeed},
		{"pitch speed", c.PitchSpeed},
		{"zoom speed", c.ZoomSpeed},
	}
	for _, f := range fields {
		if !finite(f.value) {
			return fmt.Errorf("%w: %s %v is not a finite number", ErrInvalidConfig, f.name, f.value)
		}
	}

	if c.MinDistance <= 0 {
		return fmt.Errorf("%w: min distance %v must be positive", ErrInvalidConfig, c.MinDistance)
	}
	if c.MaxDistance < c.MinDistance {
		return fmt.Errorf("%w: max distance %v is below min distance %v", ErrInvalidConfig, c.MaxDistance, c.MinDistance)
	}
	if c.ZoomSpeed < 0 {
		return fmt.Errorf("%w: zoom speed %v is negative", ErrInvalidConfig, c.ZoomSpeed)
	}
	return nil
}

func finite(v float32) bool {
	f := float64(v)
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
