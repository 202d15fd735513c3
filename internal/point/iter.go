package point

import (
	"iter"
	"math"
)

// Points returns a sequence of every lattice point in the rect, row by row:
// ascending Y, then ascending X within each row.
//
// The sequence always has floor(width) * floor(height) points, each offset
// from A by whole steps. Beyond 2^53 those steps are no longer exact and
// neighbouring points may coincide. Rects with a NaN or infinite size have
// no points.
func (r Rect) Points() iter.Seq[Point2D] {
	r = r.Normalize()
	w, h := steps(r.Size().X), steps(r.Size().Y)
	return func(yield func(Point2D) bool) {
		for j := 0; j < h; j++ {
			for i := 0; i < w; i++ {
				if !yield(Pt(r.a.X+float64(i), r.a.Y+float64(j))) {
					return
				}
			}
		}
	}
}

func steps(n float64) int {
	if math.IsNaN(n) || math.IsInf(n, 0) || n < 1 {
		return 0
	}
	return int(n)
}

// HollowPoints returns the subsequence of Points that lie on the rect's edges.
func (r Rect) HollowPoints() iter.Seq[Point2D] {
	r = r.Normalize()
	return func(yield func(Point2D) bool) {
		for p := range r.Points() {
			if r.IsBorderline(p) && !yield(p) {
				return
			}
		}
	}
}

// ForEachPoint calls fn with every point of Points and the normalized rect.
func (r Rect) ForEachPoint(fn func(Point2D, Rect)) {
	r = r.Normalize()
	for p := range r.Points() {
		fn(p, r)
	}
}

// ForEachPointInHollowRect calls fn with every point of HollowPoints and the
// normalized rect.
func (r Rect) ForEachPointInHollowRect(fn func(Point2D, Rect)) {
	r = r.Normalize()
	for p := range r.HollowPoints() {
		fn(p, r)
	}
}
