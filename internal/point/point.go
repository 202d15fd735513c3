package point

import (
	"fmt"
	"math"
)

// Pt is a convenience constructor for Point2D.
func Pt(x, y float64) Point2D { return Point2D{x, y} }

// Point2D represents a point in <X,Y> 2-space.
type Point2D struct{ X, Y float64 }

// Zero is the origin, the zero value of Point2D.
var Zero = Point2D{}

// PointLike is anything that can report X/Y coordinates.
type PointLike interface {
	XY() (x, y float64)
}

// XY returns the point's components.
func (pt Point2D) XY() (x, y float64) { return pt.X, pt.Y }

// From copies a point-like value into a Point2D.
func From(pl PointLike) Point2D {
	return Pt(pl.XY())
}

// Delta returns the vector from base to this point.
func (pt Point2D) Delta(base Point2D) Point2D {
	pt.X -= base.X
	pt.Y -= base.Y
	return pt
}

// Move adds a delta to a copy of this point, returning the copy.
func (pt Point2D) Move(delta Point2D) Point2D {
	pt.X += delta.X
	pt.Y += delta.Y
	return pt
}

// Neg negates a copy of this point, returning the copy.
func (pt Point2D) Neg() Point2D {
	pt.X = -pt.X
	pt.Y = -pt.Y
	return pt
}

// Floor returns a copy of this point with each component floored.
func (pt Point2D) Floor() Point2D {
	pt.X = math.Floor(pt.X)
	pt.Y = math.Floor(pt.Y)
	return pt
}

// Snap is an alias for Floor.
func (pt Point2D) Snap() Point2D { return pt.Floor() }

// Clone returns a copy of the point.
func (pt Point2D) Clone() Point2D { return pt }

// Equal returns true if both components equal another's exactly.
func (pt Point2D) Equal(other Point2D) bool {
	return pt.X == other.X && pt.Y == other.Y
}

// Midpoint returns the arithmetic mean of the given points. Called with no
// points it returns (NaN, NaN).
func Midpoint(points ...Point2D) Point2D {
	var sum Point2D
	for _, p := range points {
		sum = sum.Move(p)
	}
	n := float64(len(points))
	return Pt(sum.X/n, sum.Y/n)
}

func (pt Point2D) String() string {
	return fmt.Sprintf("(%v,%v)", pt.X, pt.Y)
}
