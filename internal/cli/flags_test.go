package cli

import (
	"errors"
	"flag"
	"io"
	"testing"
	"time"

	"github.com/leterax/go-orbitcam/pkg/orbit"
)

func newFlagSet(o *Options) *flag.FlagSet {
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	o.Register(fs)
	return fs
}

func TestDefaultsSurviveEmptyArgs(t *testing.T) {
	o := Options{Width: 800, Height: 600, TickRate: 50, Orbit: orbit.DefaultConfig()}
	if err := newFlagSet(&o).Parse(nil); err != nil {
		t.Fatal(err)
	}
	if o.Orbit != orbit.DefaultConfig() {
		t.Fatalf("orbit config changed: %+v", o.Orbit)
	}
	if o.Width != 800 || o.Height != 600 || o.TickRate != 50 {
		t.Fatalf("window settings changed: %+v", o)
	}
}

func TestParseOverrides(t *testing.T) {
	o := Options{Orbit: orbit.DefaultConfig()}
	args := []string{
		"-width", "1024",
		"-tps", "60",
		"-smooth-zoom", "150ms",
		"-model", "suzanne.glb",
		"-distance", "4.5",
		"-mouse-speed", "2",
		"-pitch-speed", "0.25",
		"-zoom-speed", "1",
	}
	if err := newFlagSet(&o).Parse(args); err != nil {
		t.Fatal(err)
	}

	if o.Width != 1024 || o.TickRate != 60 || o.Model != "suzanne.glb" {
		t.Errorf("unexpected options: %+v", o)
	}
	if o.SmoothZoom != 150*time.Millisecond {
		t.Errorf("smooth zoom = %v", o.SmoothZoom)
	}
	if o.Orbit.Distance != 4.5 || o.Orbit.MouseSpeed != 2 || o.Orbit.PitchSpeed != 0.25 || o.Orbit.ZoomSpeed != 1 {
		t.Errorf("unexpected orbit config: %+v", o.Orbit)
	}
	// Untouched values keep their defaults
	if o.Orbit.MinDistance != orbit.MinDistance || o.Orbit.MaxDistance != orbit.MaxDistance {
		t.Errorf("distance range changed: %+v", o.Orbit)
	}
}

func TestParseRejectsBadFloat(t *testing.T) {
	o := Options{Orbit: orbit.DefaultConfig()}
	if err := newFlagSet(&o).Parse([]string{"-distance", "far"}); err == nil {
		t.Fatal("expected an error for a non-numeric distance")
	}
}

func TestFloat32ValueString(t *testing.T) {
	v := float32Value(0.5)
	if v.String() != "0.5" {
		t.Fatalf("String() = %q", v.String())
	}
}

func TestNonFiniteOrbitFlagsFailValidation(t *testing.T) {
	for _, args := range [][]string{
		{"-distance", "NaN"},
		{"-zoom-speed", "NaN"},
		{"-mouse-speed", "+Inf"},
	} {
		o := Options{Orbit: orbit.DefaultConfig()}
		if err := newFlagSet(&o).Parse(args); err != nil {
			t.Fatalf("%v: %v", args, err)
		}
		if err := o.Orbit.Validate(); !errors.Is(err, orbit.ErrInvalidConfig) {
			t.Errorf("%v: got %v, want %v", args, err, orbit.ErrInvalidConfig)
		}
	}
}
