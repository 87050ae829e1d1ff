package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/leterax/go-orbitcam/internal/cli"
	"github.com/leterax/go-orbitcam/pkg/orbit"
	"github.com/leterax/go-orbitcam/pkg/scene"
	"github.com/leterax/go-orbitcam/pkg/tick"
)

func main() {
	opts := cli.Options{
		Width:    800,
		Height:   600,
		TickRate: tick.DefaultRate,
		Orbit:    orbit.DefaultConfig(),
	}
	opts.Register(flag.CommandLine)
	flag.Parse()

	var model *scene.MeshData
	if opts.Model != "" {
		m, err := scene.LoadGLTF(opts.Model, modelColor)
		if err != nil {
			log.Fatalf("Failed to load model: %v", err)
		}
		log.Printf("Loaded %s: %d vertices", opts.Model, m.VertexCount())
		model = &m
	}

	game, err := NewGame(opts, model)
	if err != nil {
		log.Fatalf("Failed to initialize game: %v", err)
	}

	ebiten.SetWindowTitle("Go-Orbitcam (wireframe)")
	ebiten.SetWindowSize(opts.Width, opts.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(opts.TickRate)

	if err := ebiten.RunGame(game); err != nil {
		log.Fatalf("Game exited: %v", err)
	}
}
