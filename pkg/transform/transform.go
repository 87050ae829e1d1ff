// Package transform provides the position and orientation of a scene object,
// with local-space Euler rotation in degrees.
package transform

import "github.com/go-gl/mathgl/mgl32"

// Local axes
var (
	axisRight   = mgl32.Vec3{1, 0, 0}
	axisUp      = mgl32.Vec3{0, 1, 0}
	axisForward = mgl32.Vec3{0, 0, 1}
)

// Transform is a position plus a rotation
type Transform struct {
	position mgl32.Vec3
	rotation mgl32.Quat
}

// New creates a transform at position with no rotation
func New(position mgl32.Vec3) *Transform {
	return &Transform{
		position: position,
		rotation: mgl32.QuatIdent(),
	}
}

// Position returns the world position
func (t *Transform) Position() mgl32.Vec3 {
	return t.position
}

// SetPosition sets the world position
func (t *Transform) SetPosition(pos mgl32.Vec3) {
	t.position = pos
}

// Rotation returns the world rotation
func (t *Transform) Rotation() mgl32.Quat {
	return t.rotation
}

// SetRotation sets the world rotation
func (t *Transform) SetRotation(rot mgl32.Quat) {
	t.rotation = rot.Normalize()
}

// Reset clears the rotation, keeping the position
func (t *Transform) Reset() {
	t.rotation = mgl32.QuatIdent()
}

// EulerQuat builds the rotation for Euler angles in degrees.
// Z is applied first, then X, then Y.
func EulerQuat(x, y, z float32) mgl32.Quat {
	qx := mgl32.QuatRotate(mgl32.DegToRad(x), axisRight)
	qy := mgl32.QuatRotate(mgl32.DegToRad(y), axisUp)
	qz := mgl32.QuatRotate(mgl32.DegToRad(z), axisForward)
	return qy.Mul(qx).Mul(qz)
}

// RotateLocal rotates around the transform's own axes by Euler angles in degrees
func (t *Transform) RotateLocal(x, y, z float32) {
	t.rotation = t.rotation.Mul(EulerQuat(x, y, z)).Normalize()
}

// RotateWorld rotates around the world axes by Euler angles in degrees
func (t *Transform) RotateWorld(x, y, z float32) {
	t.rotation = EulerQuat(x, y, z).Mul(t.rotation).Normalize()
}

// Right returns the local +X axis in world space
func (t *Transform) Right() mgl32.Vec3 {
	return t.rotation.Rotate(axisRight)
}

// Up returns the local +Y axis in world space
func (t *Transform) Up() mgl32.Vec3 {
	return t.rotation.Rotate(axisUp)
}

// Forward returns the local +Z axis in world space
func (t *Transform) Forward() mgl32.Vec3 {
	return t.rotation.Rotate(axisForward)
}

// Matrix returns the local-to-world matrix
func (t *Transform) Matrix() mgl32.Mat4 {
	return mgl32.Translate3D(t.position.X(), t.position.Y(), t.position.Z()).Mul4(t.rotation.Mat4())
}

// TransformPoint maps a point from local to world space
func (t *Transform) TransformPoint(local mgl32.Vec3) mgl32.Vec3 {
	return t.position.Add(t.rotation.Rotate(local))
}
