// Package cli holds the command line flags shared by the viewer commands.
package cli

import (
	"flag"
	"strconv"
	"time"

	"github.com/leterax/go-orbitcam/pkg/orbit"
)

// float32Value is a flag.Value writing into a float32
type float32Value float32

func (f *float32Value) Set(s string) error {
	v, err := strconv.ParseFloat(s, 32)
	if err != nil {
		return err
	}
	*f = float32Value(v)
	return nil
}

func (f *float32Value) String() string {
	return strconv.FormatFloat(float64(*f), 'g', -1, 32)
}

// Float32Var defines a float32 flag with the current value of p as its default
func Float32Var(fs *flag.FlagSet, p *float32, name, usage string) {
	fs.Var((*float32Value)(p), name, usage)
}

// Options are the settings both viewers accept
type Options struct {
	Width      int
	Height     int
	TickRate   int
	SmoothZoom time.Duration
	Model      string
	Orbit      orbit.Config
}

// Register defines the shared flags on fs, using the values already in o as defaults
func (o *Options) Register(fs *flag.FlagSet) {
	fs.IntVar(&o.Width, "width", o.Width, "Window width")
	fs.IntVar(&o.Height, "height", o.Height, "Window height")
	fs.IntVar(&o.TickRate, "tps", o.TickRate, "Fixed update ticks per second")
	fs.DurationVar(&o.SmoothZoom, "smooth-zoom", o.SmoothZoom, "Zoom easing time, 0 snaps immediately")
	fs.StringVar(&o.Model, "model", o.Model, "glTF or GLB model to orbit, a cube when empty")

	Float32Var(fs, &o.Orbit.Distance, "distance", "Starting zoom distance")
	Float32Var(fs, &o.Orbit.MouseSpeed, "mouse-speed", "Orbit degrees per tick while dragging")
	Float32Var(fs, &o.Orbit.PitchSpeed, "pitch-speed", "Pitch degrees per tick while dragging")
	Float32Var(fs, &o.Orbit.ZoomSpeed, "zoom-speed", "Distance change per scroll step")
}
