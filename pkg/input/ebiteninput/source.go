// Package ebiteninput reads orbit controller input from Ebitengine.
package ebiteninput

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/leterax/go-orbitcam/pkg/input"
)

// Source polls Ebitengine's input state. Call Poll from Game.Update.
type Source struct {
	// Height of the layout the cursor is reported in, used to move the origin to the bottom-left
	Height int

	Primary   ebiten.MouseButton
	Secondary ebiten.MouseButton
}

// NewSource creates a source for a layout of the given height
func NewSource(height int) *Source {
	return &Source{
		Height:    height,
		Primary:   ebiten.MouseButtonLeft,
		Secondary: ebiten.MouseButtonRight,
	}
}

// Poll snapshots the current input. ebiten.Wheel already reports per-tick movement.
func (s *Source) Poll() input.State {
	x, y := ebiten.CursorPosition()
	wx, wy := ebiten.Wheel()

	return input.State{
		Cursor:    mgl32.Vec2{float32(x), input.FlipY(float64(y), s.Height)},
		Primary:   ebiten.IsMouseButtonPressed(s.Primary),
		Secondary: ebiten.IsMouseButtonPressed(s.Secondary),
		Scroll:    mgl32.Vec2{float32(wx), float32(wy)},
	}
}
