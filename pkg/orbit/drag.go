package orbit

import "github.com/go-gl/mathgl/mgl32"

// dragTracker remembers the previous pointer sample of one button drag
type dragTracker struct {
	last    mgl32.Vec2
	hasLast bool
}

// advance stores pos as the latest sample and returns the one before it.
// ok is false on the first sample after a reset.
func (d *dragTracker) advance(pos mgl32.Vec2) (prev mgl32.Vec2, ok bool) {
	prev, ok = d.last, d.hasLast
	d.last = pos
	d.hasLast = true
	return prev, ok
}

// reset forgets the previous sample so the next press starts fresh
func (d *dragTracker) reset() {
	d.last = mgl32.Vec2{}
	d.hasLast = false
}

// normalize returns v scaled to unit length, or zero if v is too short to have a direction
func normalize(v mgl32.Vec2) mgl32.Vec2 {
	length := v.Len()
	if length <= normalizeEpsilon {
		return mgl32.Vec2{}
	}
	return v.Mul(1 / length)
}

// OrbitDelta converts two consecutive pointer samples into an orbit rotation in degrees.
// X of the result turns the pivot around its right axis, Y around its up axis.
// Only the direction of the movement matters, so every moving tick turns by speed degrees.
func OrbitDelta(last, current mgl32.Vec2, speed float32) mgl32.Vec2 {
	n := normalize(last.Sub(current))
	return mgl32.Vec2{-n.Y() * speed, -n.X() * speed}
}

// PitchDelta converts two consecutive pointer samples into a roll around the pivot's forward axis, in degrees
func PitchDelta(last, current mgl32.Vec2, speed float32) float32 {
	n := normalize(last.Sub(current))
	return -n.X() * speed
}

// Zoom applies a scroll delta to distance and clamps the result to [min, max].
// A zero scroll leaves distance untouched.
func Zoom(distance float32, scroll mgl32.Vec2, speed, min, max float32) float32 {
	if scroll.X() == 0 && scroll.Y() == 0 {
		return distance
	}
	distance += -(scroll.X() + scroll.Y()) * speed
	return mgl32.Clamp(distance, min, max)
}
