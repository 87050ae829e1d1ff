// Package camera implements an orthographic camera that rides on a pivot transform.
package camera

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/leterax/go-orbitcam/pkg/transform"
)

// Camera implements an orthographic camera fixed at a local offset from a pivot.
// Rotating the pivot orbits the camera around it.
type Camera struct {
	pivot  *transform.Transform
	offset mgl32.Vec3

	// Projection
	orthoSize  float32
	near       float32
	far        float32
	projection mgl32.Mat4
	width      int
	height     int
}

// NewCamera creates a camera attached to pivot with sensible defaults
func NewCamera(pivot *transform.Transform) *Camera {
	camera := &Camera{
		pivot:     pivot,
		offset:    DefaultOffset,
		orthoSize: DefaultOrthoSize,
		near:      DefaultNear,
		far:       DefaultFar,
		width:     DefaultWidth,
		height:    DefaultHeight,
	}

	camera.updateProjectionMatrix()

	return camera
}

// updateProjectionMatrix recalculates the projection matrix
func (c *Camera) updateProjectionMatrix() {
	aspect := float32(c.width) / float32(c.height)
	halfWidth := c.orthoSize * aspect
	c.projection = mgl32.Ortho(-halfWidth, halfWidth, -c.orthoSize, c.orthoSize, c.near, c.far)
}

// UpdateProjectionMatrix updates the projection matrix with new dimensions
func (c *Camera) UpdateProjectionMatrix(width, height int) {
	if width <= 0 || height <= 0 {
		// Minimized window
		return
	}
	c.width = width
	c.height = height
	c.updateProjectionMatrix()
}

// OrthoSize returns the half-height of the view volume
func (c *Camera) OrthoSize() float32 {
	return c.orthoSize
}

// SetOrthoSize sets the half-height of the view volume
func (c *Camera) SetOrthoSize(size float32) {
	c.orthoSize = size
	c.updateProjectionMatrix()
}

// SetClipPlanes sets the near and far clipping distances
func (c *Camera) SetClipPlanes(near, far float32) {
	c.near = near
	c.far = far
	c.updateProjectionMatrix()
}

// Pivot returns the transform the camera is attached to
func (c *Camera) Pivot() *transform.Transform {
	return c.pivot
}

// Offset returns the camera's position in pivot space
func (c *Camera) Offset() mgl32.Vec3 {
	return c.offset
}

// SetOffset sets the camera's position in pivot space
func (c *Camera) SetOffset(offset mgl32.Vec3) {
	c.offset = offset
}

// Position returns the current camera position
func (c *Camera) Position() mgl32.Vec3 {
	return c.pivot.TransformPoint(c.offset)
}

// ViewMatrix returns the current view matrix
func (c *Camera) ViewMatrix() mgl32.Mat4 {
	return mgl32.LookAtV(c.Position(), c.pivot.Position(), c.lookUp())
}

// lookUp picks the pivot's up axis, or its forward axis when the offset runs along up
func (c *Camera) lookUp() mgl32.Vec3 {
	up := c.pivot.Up()
	dir := c.pivot.Rotation().Rotate(c.offset)
	if dir.Len() > 0 && float32(math.Abs(float64(dir.Normalize().Dot(up)))) > 0.999 {
		return c.pivot.Forward()
	}
	return up
}

// ProjectionMatrix returns the current projection matrix
func (c *Camera) ProjectionMatrix() mgl32.Mat4 {
	return c.projection
}

// ViewProjection returns projection * view
func (c *Camera) ViewProjection() mgl32.Mat4 {
	return c.projection.Mul4(c.ViewMatrix())
}

// Size returns the viewport dimensions
func (c *Camera) Size() (width, height int) {
	return c.width, c.height
}

// FrontVector returns the camera's front direction vector
func (c *Camera) FrontVector() mgl32.Vec3 {
	return c.pivot.Position().Sub(c.Position()).Normalize()
}

// RightVector returns the camera's right direction vector
func (c *Camera) RightVector() mgl32.Vec3 {
	return c.FrontVector().Cross(c.lookUp()).Normalize()
}

// UpVector returns the camera's up direction vector
func (c *Camera) UpVector() mgl32.Vec3 {
	return c.RightVector().Cross(c.FrontVector()).Normalize()
}

// Project maps a world point to viewport pixels with the origin at the top-left.
// visible is false when the point falls outside the near/far range.
func (c *Camera) Project(world mgl32.Vec3) (screen mgl32.Vec2, visible bool) {
	win := mgl32.Project(world, c.ViewMatrix(), c.projection, 0, 0, c.width, c.height)
	screen = mgl32.Vec2{win.X(), float32(c.height) - win.Y()}
	return screen, win.Z() >= 0 && win.Z() <= 1
}
