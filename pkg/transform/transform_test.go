package transform

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func near(a, b mgl32.Vec3) bool {
	return a.ApproxEqualThreshold(b, 1e-5)
}

func TestNewIsIdentity(t *testing.T) {
	tr := New(mgl32.Vec3{1, 2, 3})

	if !near(tr.Right(), mgl32.Vec3{1, 0, 0}) || !near(tr.Up(), mgl32.Vec3{0, 1, 0}) || !near(tr.Forward(), mgl32.Vec3{0, 0, 1}) {
		t.Fatalf("axes = %v %v %v, want identity", tr.Right(), tr.Up(), tr.Forward())
	}
	if !near(tr.TransformPoint(mgl32.Vec3{}), mgl32.Vec3{1, 2, 3}) {
		t.Fatalf("origin maps to %v", tr.TransformPoint(mgl32.Vec3{}))
	}
}

func TestRotateLocalSingleAxis(t *testing.T) {
	tests := []struct {
		name    string
		x, y, z float32
		axis    func(*Transform) mgl32.Vec3
		want    mgl32.Vec3
	}{
		{"yaw turns forward to right", 0, 90, 0, (*Transform).Forward, mgl32.Vec3{1, 0, 0}},
		{"pitch turns forward down", 90, 0, 0, (*Transform).Forward, mgl32.Vec3{0, -1, 0}},
		{"roll turns up to left", 0, 0, 90, (*Transform).Up, mgl32.Vec3{-1, 0, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := New(mgl32.Vec3{})
			tr.RotateLocal(tt.x, tt.y, tt.z)
			if got := tt.axis(tr); !near(got, tt.want) {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRotateLocalUsesOwnAxes(t *testing.T) {
	tr := New(mgl32.Vec3{})
	tr.RotateLocal(0, 90, 0)

	// Local right is now world -Z; pitching must turn around it
	if !near(tr.Right(), mgl32.Vec3{0, 0, -1}) {
		t.Fatalf("right after yaw = %v", tr.Right())
	}
	tr.RotateLocal(90, 0, 0)
	if !near(tr.Right(), mgl32.Vec3{0, 0, -1}) {
		t.Fatalf("pitch moved the right axis to %v", tr.Right())
	}
	if !near(tr.Forward(), mgl32.Vec3{0, -1, 0}) {
		t.Fatalf("forward after yaw+pitch = %v, want down", tr.Forward())
	}
}

func TestRotateWorldDiffersFromLocal(t *testing.T) {
	local := New(mgl32.Vec3{})
	world := New(mgl32.Vec3{})

	local.RotateLocal(0, 90, 0)
	world.RotateWorld(0, 90, 0)
	local.RotateLocal(90, 0, 0)
	world.RotateWorld(90, 0, 0)

	if near(local.Forward(), world.Forward()) {
		t.Fatalf("local and world rotation agree: %v", local.Forward())
	}
}

func TestEulerOrderZXY(t *testing.T) {
	q := EulerQuat(30, 45, 60)
	manual := mgl32.QuatRotate(mgl32.DegToRad(45), mgl32.Vec3{0, 1, 0}).
		Mul(mgl32.QuatRotate(mgl32.DegToRad(30), mgl32.Vec3{1, 0, 0})).
		Mul(mgl32.QuatRotate(mgl32.DegToRad(60), mgl32.Vec3{0, 0, 1}))

	if !q.ApproxEqualThreshold(manual, 1e-5) {
		t.Fatalf("EulerQuat = %v, want %v", q, manual)
	}
}

func TestMatrixMatchesTransformPoint(t *testing.T) {
	tr := New(mgl32.Vec3{4, -2, 1})
	tr.RotateLocal(20, 35, -10)

	p := mgl32.Vec3{0, 0, -10}
	viaMatrix := tr.Matrix().Mul4x1(p.Vec4(1)).Vec3()
	if !near(viaMatrix, tr.TransformPoint(p)) {
		t.Fatalf("matrix gives %v, TransformPoint gives %v", viaMatrix, tr.TransformPoint(p))
	}
}

func TestReset(t *testing.T) {
	tr := New(mgl32.Vec3{1, 1, 1})
	tr.RotateLocal(10, 20, 30)
	tr.Reset()

	if !tr.Rotation().ApproxEqualThreshold(mgl32.QuatIdent(), 1e-6) {
		t.Fatalf("rotation after reset = %v", tr.Rotation())
	}
	if tr.Position() != (mgl32.Vec3{1, 1, 1}) {
		t.Fatalf("reset moved the position to %v", tr.Position())
	}
}
