// Package render draws a scene around an orbiting pivot with OpenGL and drives the orbit controller
// at a fixed tick rate.
package render

import (
	"embed"
	"fmt"
	"log"
	"time"

	"github.com/go-gl/gl/v4.6-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/leterax/go-orbitcam/internal/openglhelper"
	"github.com/leterax/go-orbitcam/pkg/camera"
	"github.com/leterax/go-orbitcam/pkg/input/glfwinput"
	"github.com/leterax/go-orbitcam/pkg/orbit"
	"github.com/leterax/go-orbitcam/pkg/scene"
	"github.com/leterax/go-orbitcam/pkg/tick"
	"github.com/leterax/go-orbitcam/pkg/transform"
)

//go:embed shaders
var shaderFS embed.FS

// Config holds everything needed to open the viewer
type Config struct {
	Width  int
	Height int
	Title  string
	VSync  bool

	// Fixed update ticks per second
	TickRate int
	// Time taken to ease between zoom levels, zero snaps immediately
	SmoothZoom time.Duration

	Orbit orbit.Config

	// Model drawn at the world origin, a cube when nil
	Model *scene.MeshData
}

// DefaultConfig returns a viewer config with default controller settings
func DefaultConfig() Config {
	return Config{
		Width:    DefaultWidth,
		Height:   DefaultHeight,
		Title:    DefaultTitle,
		VSync:    true,
		TickRate: tick.DefaultRate,
		Orbit:    orbit.DefaultConfig(),
	}
}

// Renderer handles rendering logic and the update loop
type Renderer struct {
	window *openglhelper.Window
	input  *glfwinput.Source

	pivot      *transform.Transform
	camera     *camera.Camera
	zoom       *camera.SmoothZoom
	controller *orbit.Controller

	shader *openglhelper.Shader
	model  *openglhelper.Mesh
	grid   *openglhelper.Mesh
	axes   *openglhelper.Mesh

	// Timing
	clock         *tick.Clock
	lastFrameTime float64

	title         string
	shownDistance float32
	closed        bool
}

// NewRenderer opens a window and builds the scene described by cfg
func NewRenderer(cfg Config) (*Renderer, error) {
	if err := cfg.Orbit.Validate(); err != nil {
		return nil, err
	}
	if err := tick.ValidateRate(cfg.TickRate); err != nil {
		return nil, err
	}

	// Create window
	window, err := openglhelper.NewWindow(cfg.Width, cfg.Height, cfg.Title, cfg.VSync)
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	// Create pivot and camera
	pivot := transform.New(mgl32.Vec3{})
	cam := camera.NewCamera(pivot)
	cam.UpdateProjectionMatrix(window.Size())

	zoom := camera.NewSmoothZoom(cam, cfg.SmoothZoom)
	controller, err := orbit.NewController(pivot, zoom, cfg.Orbit)
	if err != nil {
		window.Close()
		return nil, err
	}

	renderer := &Renderer{
		window:     window,
		input:      glfwinput.NewSource(window),
		pivot:      pivot,
		camera:     cam,
		zoom:       zoom,
		controller: controller,
		clock:      tick.NewClock(cfg.TickRate),
		title:      cfg.Title,
	}

	// Set up callbacks, scrolling is handled by the input source
	window.GLFWWindow().SetKeyCallback(renderer.keyCallback)
	window.GLFWWindow().SetFramebufferSizeCallback(renderer.framebufferSizeCallback)

	// Load shader
	shader, err := openglhelper.LoadShaderFromFS(shaderFS, "shaders/mesh.vert", "shaders/mesh.frag")
	if err != nil {
		window.Close()
		return nil, fmt.Errorf("failed to load shader: %w", err)
	}
	renderer.shader = shader

	renderer.initScene(cfg.Model)

	return renderer, nil
}

// initScene uploads the model, grid and pivot axes
func (r *Renderer) initScene(model *scene.MeshData) {
	if model == nil {
		cube := scene.Cube(CubeSize, ModelColor)
		model = &cube
	}
	r.model = upload(model)

	grid := scene.Grid(GridHalfExtent, GridSpacing, GridColor)
	r.grid = upload(&grid)

	axes := scene.Axes(AxesLength)
	r.axes = upload(&axes)
}

// upload creates a GL mesh matching the primitive kind of md
func upload(md *scene.MeshData) *openglhelper.Mesh {
	mode := uint32(gl.TRIANGLES)
	if md.Primitive == scene.Lines {
		mode = gl.LINES
	}
	return openglhelper.NewMesh(md.Vertices, md.Indices, mode)
}

// fixedUpdate runs one controller tick
func (r *Renderer) fixedUpdate() {
	step := r.controller.FixedUpdate(r.input.Poll())
	if step.Zoomed {
		log.Printf("Zoom distance: %.2f", step.Distance)
	}
}

// update advances the fixed-step clock by the frame time
func (r *Renderer) update(deltaTime float64) {
	for n := r.clock.Advance(deltaTime); n > 0; n-- {
		r.fixedUpdate()
	}
	r.zoom.Update(float32(deltaTime))

	if d := r.controller.Distance(); d != r.shownDistance {
		r.shownDistance = d
		r.window.SetTitle(fmt.Sprintf("%s - distance %.2f", r.title, d))
	}
}

// render draws the scene
func (r *Renderer) render() {
	r.window.Clear(ClearColor)

	r.shader.Use()
	r.shader.SetMat4("view", r.camera.ViewMatrix())
	r.shader.SetMat4("projection", r.camera.ProjectionMatrix())
	r.shader.SetVec3("lightDir", LightDir.Normalize())
	r.shader.SetVec3("lightColor", LightColor)

	// Lit model at the world origin
	r.shader.SetFloat("unlit", 0)
	r.shader.SetMat4("model", mgl32.Ident4())
	r.model.Draw()

	// Unlit helpers
	r.shader.SetFloat("unlit", 1)
	r.grid.Draw()

	// The axes follow the pivot so its orientation is visible
	r.shader.SetMat4("model", r.pivot.Matrix())
	r.axes.Draw()
}

// Run starts the main loop and cleans up once the window closes
func (r *Renderer) Run() {
	r.lastFrameTime = r.window.Time()

	for !r.window.ShouldClose() {
		r.window.PollEvents()

		// Calculate delta time
		currentTime := r.window.Time()
		deltaTime := currentTime - r.lastFrameTime
		r.lastFrameTime = currentTime

		r.update(deltaTime)
		r.render()

		r.window.SwapBuffers()
	}

	r.Cleanup()
}

// Reset puts the pivot back to identity and restores the starting distance
func (r *Renderer) Reset() {
	r.pivot.Reset()
	r.controller.SetDistance(r.controller.Config().Distance)
}

// Cleanup frees all resources
func (r *Renderer) Cleanup() {
	if r.closed {
		return
	}
	r.closed = true

	r.model.Delete()
	r.grid.Delete()
	r.axes.Delete()
	r.shader.Delete()

	// Close window
	r.window.Close()
}

// Callback functions
func (r *Renderer) keyCallback(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
	if action != glfw.Press {
		return
	}

	switch key {
	case glfw.KeyEscape:
		r.window.SetShouldClose(true)
	case glfw.KeyR:
		r.Reset()
	}
}

func (r *Renderer) framebufferSizeCallback(_ *glfw.Window, width, height int) {
	r.window.OnResize(width, height)
	r.camera.UpdateProjectionMatrix(width, height)
}
