package point

import (
	"image"

	"github.com/borkshop/gridbox/internal/input"
)

// FromImage converts an image.Point.
func FromImage(pt image.Point) Point2D {
	return Pt(float64(pt.X), float64(pt.Y))
}

// Image converts the point to an image.Point, flooring it first.
func (pt Point2D) Image() image.Point {
	pt = pt.Floor()
	return image.Pt(int(pt.X), int(pt.Y))
}

// FromImageRect converts an image.Rectangle; its exclusive Max becomes the
// inclusive B corner. Empty rectangles produce inverted rects.
func FromImageRect(r image.Rectangle) Rect {
	return NewRect(FromImage(r.Min), FromImage(r.Max.Sub(image.Pt(1, 1))))
}

// Image converts the normalized rect to the image.Rectangle covering the same
// cells.
func (r Rect) Image() image.Rectangle {
	r = r.Floor()
	return image.Rectangle{r.a.Image(), r.b.Image().Add(image.Pt(1, 1))}
}

// FromRelativeMousePosition returns the pointer's position relative to el,
// scaled so that el spans the unit square.
func FromRelativeMousePosition(ev input.Pointer, el input.Bounds) Point2D {
	return Pt(input.RelativeMousePosition(ev, el))
}

// FromCanvasMousePosition returns the pointer's position in the canvas' own
// grid.
func FromCanvasMousePosition(ev input.Pointer, canvas input.Canvas) Point2D {
	return Pt(input.CanvasMousePosition(ev, canvas))
}
