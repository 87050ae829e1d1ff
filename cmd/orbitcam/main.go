package main

import (
	"flag"
	"log"
	"runtime"

	"github.com/leterax/go-orbitcam/internal/cli"
	"github.com/leterax/go-orbitcam/pkg/render"
	"github.com/leterax/go-orbitcam/pkg/scene"
)

func init() {
	// This is needed to ensure that OpenGL functions are called from the same thread
	runtime.LockOSThread()
}

func main() {
	cfg := render.DefaultConfig()

	// Parse command line flags
	opts := cli.Options{
		Width:      cfg.Width,
		Height:     cfg.Height,
		TickRate:   cfg.TickRate,
		SmoothZoom: cfg.SmoothZoom,
		Orbit:      cfg.Orbit,
	}
	opts.Register(flag.CommandLine)
	flag.BoolVar(&cfg.VSync, "vsync", cfg.VSync, "Wait for vertical sync")
	flag.Parse()

	cfg.Width = opts.Width
	cfg.Height = opts.Height
	cfg.TickRate = opts.TickRate
	cfg.SmoothZoom = opts.SmoothZoom
	cfg.Orbit = opts.Orbit

	if opts.Model != "" {
		model, err := scene.LoadGLTF(opts.Model, render.ModelColor)
		if err != nil {
			log.Fatalf("Failed to load model: %v", err)
		}
		log.Printf("Loaded %s: %d vertices", opts.Model, model.VertexCount())
		cfg.Model = &model
	}

	// Initialize the renderer
	renderer, err := render.NewRenderer(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize renderer: %v", err)
	}

	renderer.Run()
}
