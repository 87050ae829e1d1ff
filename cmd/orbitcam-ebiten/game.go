package main

import (
	"fmt"
	"image/color"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/leterax/go-orbitcam/internal/cli"
	"github.com/leterax/go-orbitcam/pkg/camera"
	"github.com/leterax/go-orbitcam/pkg/input/ebiteninput"
	"github.com/leterax/go-orbitcam/pkg/orbit"
	"github.com/leterax/go-orbitcam/pkg/scene"
	"github.com/leterax/go-orbitcam/pkg/tick"
	"github.com/leterax/go-orbitcam/pkg/transform"
)

var (
	backgroundColor = color.RGBA{13, 13, 26, 255}
	textColor       = color.RGBA{200, 200, 200, 255}

	gridColor  = mgl32.Vec3{0.3, 0.3, 0.35}
	modelColor = mgl32.Vec3{0.8, 0.8, 0.8}
)

// wireframe is a mesh with its edges resolved once
type wireframe struct {
	mesh  scene.MeshData
	edges []scene.Edge
}

func newWireframe(mesh scene.MeshData) wireframe {
	return wireframe{mesh: mesh, edges: mesh.Edges()}
}

// Game draws a wireframe scene around the orbiting pivot
type Game struct {
	Width, Height int
	DrawDebugText bool

	input      *ebiteninput.Source
	pivot      *transform.Transform
	camera     *camera.Camera
	zoom       *camera.SmoothZoom
	controller *orbit.Controller
	tickStep   float32

	model wireframe
	grid  wireframe
	axes  wireframe

	lastStep orbit.Step
}

// NewGame builds the scene. model may be nil, in which case a cube is shown.
func NewGame(opts cli.Options, model *scene.MeshData) (*Game, error) {
	if err := tick.ValidateRate(opts.TickRate); err != nil {
		return nil, err
	}

	pivot := transform.New(mgl32.Vec3{})
	cam := camera.NewCamera(pivot)
	cam.UpdateProjectionMatrix(opts.Width, opts.Height)

	zoom := camera.NewSmoothZoom(cam, opts.SmoothZoom)
	controller, err := orbit.NewController(pivot, zoom, opts.Orbit)
	if err != nil {
		return nil, err
	}

	if model == nil {
		cube := scene.Cube(1, modelColor)
		model = &cube
	}

	return &Game{
		Width:         opts.Width,
		Height:        opts.Height,
		DrawDebugText: true,
		input:         ebiteninput.NewSource(opts.Height),
		pivot:         pivot,
		camera:        cam,
		zoom:          zoom,
		controller:    controller,
		tickStep:      1 / float32(opts.TickRate),
		model:         newWireframe(*model),
		grid:          newWireframe(scene.Grid(10, 1, gridColor)),
		axes:          newWireframe(scene.Axes(1.5)),
	}, nil
}

// Update runs one fixed controller tick
func (g *Game) Update() error {
	// Quit if we press Escape
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.pivot.Reset()
		g.controller.SetDistance(g.controller.Config().Distance)
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		g.DrawDebugText = !g.DrawDebugText
	}

	g.lastStep = g.controller.FixedUpdate(g.input.Poll())
	g.zoom.Update(g.tickStep)

	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)

	g.drawWireframe(screen, g.grid, nil)
	g.drawWireframe(screen, g.model, nil)
	// The axes follow the pivot so its orientation is visible
	g.drawWireframe(screen, g.axes, g.pivot)

	if g.DrawDebugText {
		orbiting, pitching := g.controller.Dragging()
		txt := fmt.Sprintf(
			"TPS: %0.1f\nDistance: %.2f (lens %.2f)\nOrbiting: %v  Pitching: %v\n"+
				"LMB drag: orbit  RMB drag: pitch  Wheel: zoom\nR: reset  F1: toggle text  ESC: quit",
			ebiten.ActualTPS(), g.controller.Distance(), g.zoom.Current(), orbiting, pitching,
		)
		text.Draw(screen, txt, basicfont.Face7x13, 8, 16, textColor)
	}
}

// drawWireframe projects each edge and strokes it. When parent is set the mesh is in its local space.
func (g *Game) drawWireframe(screen *ebiten.Image, w wireframe, parent *transform.Transform) {
	for _, e := range w.edges {
		a, b := w.mesh.Position(e.A), w.mesh.Position(e.B)
		if parent != nil {
			a, b = parent.TransformPoint(a), parent.TransformPoint(b)
		}

		pa, okA := g.camera.Project(a)
		pb, okB := g.camera.Project(b)
		if !okA || !okB {
			continue
		}

		vector.StrokeLine(screen, pa.X(), pa.Y(), pb.X(), pb.Y(), 1, toRGBA(w.mesh.Color(e.A)), true)
	}
}

func (g *Game) Layout(_, _ int) (int, int) {
	return g.Width, g.Height
}

func toRGBA(c mgl32.Vec3) color.RGBA {
	clamp := func(v float32) uint8 {
		return uint8(mgl32.Clamp(v, 0, 1) * 255)
	}
	return color.RGBA{clamp(c.X()), clamp(c.Y()), clamp(c.Z()), 255}
}
