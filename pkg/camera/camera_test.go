package camera

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/leterax/go-orbitcam/pkg/transform"
)

func near3(a, b mgl32.Vec3) bool {
	return a.ApproxEqualThreshold(b, 1e-4)
}

func TestCameraSitsAtOffset(t *testing.T) {
	pivot := transform.New(mgl32.Vec3{1, 2, 3})
	cam := NewCamera(pivot)

	if want := (mgl32.Vec3{1, 2, -7}); !near3(cam.Position(), want) {
		t.Fatalf("position = %v, want %v", cam.Position(), want)
	}
	if !near3(cam.FrontVector(), mgl32.Vec3{0, 0, 1}) {
		t.Fatalf("front = %v, want +Z", cam.FrontVector())
	}
}

func TestCameraOrbitsWithPivot(t *testing.T) {
	pivot := transform.New(mgl32.Vec3{})
	cam := NewCamera(pivot)

	pivot.RotateLocal(0, 90, 0)
	if want := (mgl32.Vec3{-10, 0, 0}); !near3(cam.Position(), want) {
		t.Fatalf("position after yaw = %v, want %v", cam.Position(), want)
	}

	// Distance to the pivot never changes
	pivot.RotateLocal(33, -12, 70)
	if d := cam.Position().Sub(pivot.Position()).Len(); !mgl32.FloatEqualThreshold(d, 10, 1e-4) {
		t.Fatalf("distance to pivot = %v, want 10", d)
	}
}

func TestViewMatrixPutsPivotInFront(t *testing.T) {
	pivot := transform.New(mgl32.Vec3{5, 0, 0})
	pivot.RotateLocal(20, 40, 0)
	cam := NewCamera(pivot)

	inView := cam.ViewMatrix().Mul4x1(pivot.Position().Vec4(1)).Vec3()
	if !near3(inView, mgl32.Vec3{0, 0, -10}) {
		t.Fatalf("pivot in view space = %v, want (0, 0, -10)", inView)
	}
}

func TestOrthoProjection(t *testing.T) {
	cam := NewCamera(transform.New(mgl32.Vec3{}))
	cam.UpdateProjectionMatrix(800, 600)
	cam.SetOrthoSize(2)

	proj := cam.ProjectionMatrix()
	// 2 / (right - left) with half-width = size * aspect
	if !mgl32.FloatEqualThreshold(proj[0], 0.375, 1e-6) {
		t.Errorf("proj[0] = %v, want 0.375", proj[0])
	}
	if !mgl32.FloatEqualThreshold(proj[5], 0.5, 1e-6) {
		t.Errorf("proj[5] = %v, want 0.5", proj[5])
	}

	cam.SetOrthoSize(4)
	if !mgl32.FloatEqualThreshold(cam.ProjectionMatrix()[5], 0.25, 1e-6) {
		t.Errorf("proj[5] after zoom = %v, want 0.25", cam.ProjectionMatrix()[5])
	}
}

func TestUpdateProjectionIgnoresEmptyViewport(t *testing.T) {
	cam := NewCamera(transform.New(mgl32.Vec3{}))
	before := cam.ProjectionMatrix()

	cam.UpdateProjectionMatrix(0, 0)
	if cam.ProjectionMatrix() != before {
		t.Fatal("projection changed for a zero-sized viewport")
	}
	if w, h := cam.Size(); w != DefaultWidth || h != DefaultHeight {
		t.Fatalf("size = %dx%d, want defaults", w, h)
	}
}

func TestProjectCentersPivot(t *testing.T) {
	pivot := transform.New(mgl32.Vec3{})
	pivot.RotateLocal(10, 70, 5)
	cam := NewCamera(pivot)
	cam.UpdateProjectionMatrix(800, 600)

	screen, visible := cam.Project(pivot.Position())
	if !visible {
		t.Fatal("pivot is not visible")
	}
	if !screen.ApproxEqualThreshold(mgl32.Vec2{400, 300}, 1e-2) {
		t.Fatalf("pivot projects to %v, want center", screen)
	}

	// Up in camera space is up on screen (smaller y)
	above, _ := cam.Project(pivot.Position().Add(cam.UpVector()))
	if above.Y() >= screen.Y() {
		t.Fatalf("point above pivot projects to %v, below center %v", above, screen)
	}
}

func TestOffsetAlongUpStillLooksAtPivot(t *testing.T) {
	pivot := transform.New(mgl32.Vec3{})
	cam := NewCamera(pivot)
	cam.SetOffset(mgl32.Vec3{0, 10, 0})

	inView := cam.ViewMatrix().Mul4x1(mgl32.Vec4{0, 0, 0, 1}).Vec3()
	if !near3(inView, mgl32.Vec3{0, 0, -10}) {
		t.Fatalf("pivot in view space = %v, want (0, 0, -10)", inView)
	}
}
