package input

import (
	"math"

	"github.com/gdamore/tcell"
)

// Bounds is the bounding box of an element in client coordinates.
type Bounds struct {
	Left, Top     float64
	Width, Height float64
}

// Pointer is the absolute position of a pointer event in client coordinates.
type Pointer struct {
	ClientX, ClientY float64
}

// PointerFromMouse returns the cell position of a terminal mouse event.
func PointerFromMouse(ev *tcell.EventMouse) Pointer {
	x, y := ev.Position()
	return Pointer{float64(x), float64(y)}
}

// Canvas is a bounding box that carries its own pixel (or cell) resolution,
// which need not match the client space it is laid out in.
type Canvas struct {
	Bounds
	Width, Height int
}

// RelativeMousePosition maps a pointer into the unit square of el: (0, 0) is
// el's top left corner, (1, 1) its bottom right. Points outside el map
// outside the unit square. A zero-size el yields Inf or NaN.
func RelativeMousePosition(ev Pointer, el Bounds) (u, v float64) {
	return (ev.ClientX - el.Left) / el.Width,
		(ev.ClientY - el.Top) / el.Height
}

// CanvasMousePosition maps a pointer into the canvas' own pixel grid, floored
// to integers.
func CanvasMousePosition(ev Pointer, canvas Canvas) (x, y float64) {
	u, v := RelativeMousePosition(ev, canvas.Bounds)
	return math.Floor(float64(canvas.Width) * u),
		math.Floor(float64(canvas.Height) * v)
}
