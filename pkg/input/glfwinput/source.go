// Package glfwinput reads orbit controller input from a GLFW window.
package glfwinput

import (
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/leterax/go-orbitcam/internal/openglhelper"
	"github.com/leterax/go-orbitcam/pkg/input"
)

// Source polls a GLFW window once per fixed tick.
// GLFW only reports scrolling through a callback, so wheel events are summed until the next Poll.
type Source struct {
	window *openglhelper.Window
	scroll input.ScrollAccumulator

	Primary   glfw.MouseButton
	Secondary glfw.MouseButton
}

// NewSource installs the scroll callback on window and returns a source reading from it
func NewSource(window *openglhelper.Window) *Source {
	s := &Source{
		window:    window,
		Primary:   glfw.MouseButtonLeft,
		Secondary: glfw.MouseButtonRight,
	}
	window.GLFWWindow().SetScrollCallback(s.scrollCallback)
	return s
}

func (s *Source) scrollCallback(_ *glfw.Window, xoff, yoff float64) {
	s.scroll.Add(xoff, yoff)
}

// Poll snapshots the current input and clears the accumulated scroll
func (s *Source) Poll() input.State {
	x, y, height := s.window.CursorPos()

	return input.State{
		Cursor:    mgl32.Vec2{float32(x), input.FlipY(y, height)},
		Primary:   s.window.MouseButtonState(s.Primary) == glfw.Press,
		Secondary: s.window.MouseButtonState(s.Secondary) == glfw.Press,
		Scroll:    s.scroll.Take(),
	}
}
