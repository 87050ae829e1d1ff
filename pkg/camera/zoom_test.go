package camera

import (
	"testing"
	"time"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/leterax/go-orbitcam/pkg/orbit"
	"github.com/leterax/go-orbitcam/pkg/transform"
)

func TestSmoothZoomEases(t *testing.T) {
	cam := NewCamera(transform.New(mgl32.Vec3{}))
	zoom := NewSmoothZoom(cam, 200*time.Millisecond)

	zoom.SetOrthoSize(6)
	if zoom.OrthoSize() != 6 {
		t.Fatalf("OrthoSize = %v, want the requested 6", zoom.OrthoSize())
	}
	if cam.OrthoSize() != DefaultOrthoSize {
		t.Fatalf("camera moved before Update: %v", cam.OrthoSize())
	}

	zoom.Update(0.05)
	if mid := cam.OrthoSize(); mid <= DefaultOrthoSize || mid >= 6 {
		t.Fatalf("size mid-ease = %v, want between %v and 6", mid, DefaultOrthoSize)
	}
	if zoom.Settled() {
		t.Fatal("settled mid-ease")
	}

	zoom.Update(1)
	if cam.OrthoSize() != 6 || !zoom.Settled() {
		t.Fatalf("size after ease = %v settled=%v, want 6 true", cam.OrthoSize(), zoom.Settled())
	}
}

func TestSmoothZoomZeroDurationIsImmediate(t *testing.T) {
	cam := NewCamera(transform.New(mgl32.Vec3{}))
	zoom := NewSmoothZoom(cam, 0)

	zoom.SetOrthoSize(3)
	if cam.OrthoSize() != 3 || !zoom.Settled() {
		t.Fatalf("size = %v settled=%v, want 3 true", cam.OrthoSize(), zoom.Settled())
	}
}

func TestSmoothZoomWithController(t *testing.T) {
	pivot := transform.New(mgl32.Vec3{})
	cam := NewCamera(pivot)
	zoom := NewSmoothZoom(cam, 100*time.Millisecond)

	cfg := orbit.DefaultConfig()
	cfg.Distance = 5
	ctrl, err := orbit.NewController(pivot, zoom, cfg)
	if err != nil {
		t.Fatal(err)
	}

	if step := ctrl.FixedUpdate(nil); !step.Zoomed {
		t.Fatal("first tick did not push the distance")
	}
	// The requested size already matches, so the ease is not restarted
	for i := 0; i < 10; i++ {
		if step := ctrl.FixedUpdate(nil); step.Zoomed {
			t.Fatalf("tick %d rewrote the lens", i)
		}
		zoom.Update(0.02)
	}
	if cam.OrthoSize() != 5 {
		t.Fatalf("camera size = %v, want 5", cam.OrthoSize())
	}
}
