package point

import (
	"fmt"

	"github.com/borkshop/gridbox/internal/moremath"
)

// Rt is a convenience constructor for Rect.
func Rt(ax, ay, bx, by float64) Rect {
	return NewRect(Pt(ax, ay), Pt(bx, by))
}

// Rect is an axis-aligned box spanning two inclusive corners.
//
// The corners are kept as given; a rect is normalized when A is the
// componentwise minimum and B the maximum.
type Rect struct {
	a, b       Point2D
	normalized bool
}

// RectLike is anything that can report two corner points.
type RectLike interface {
	Corners() (a, b PointLike)
}

// NewRect returns a rect with the given corners, in whatever order they come.
func NewRect(a, b Point2D) Rect {
	return Rect{a, b, a.X <= b.X && a.Y <= b.Y}
}

// RectFrom copies a rect-like value into a Rect.
func RectFrom(rl RectLike) Rect {
	a, b := rl.Corners()
	return NewRect(From(a), From(b))
}

// FromPosAndSize returns the normalized rect of size cells starting at pos.
// Negative sizes extend from pos towards negative infinity.
func FromPosAndSize(pos, size Point2D) Rect {
	far := Pt(
		pos.X+size.X-moremath.Sign(size.X),
		pos.Y+size.Y-moremath.Sign(size.Y),
	)
	return NewRect(pos, far).Normalize()
}

// A returns the first corner, top-left once normalized.
func (r Rect) A() Point2D { return r.a }

// B returns the second corner, bottom-right once normalized.
func (r Rect) B() Point2D { return r.b }

// Corners returns both corners.
func (r Rect) Corners() (a, b PointLike) { return r.a, r.b }

// IsNormalized reports whether the rect was built or normalized in canonical
// order. The zero Rect reports false.
func (r Rect) IsNormalized() bool { return r.normalized }

// Normalize returns a copy of the rect with A the componentwise minimum and B
// the componentwise maximum of its corners. A NaN coordinate leaves that
// axis as given, yet the result is still flagged normalized.
func (r Rect) Normalize() Rect {
	if r.normalized {
		return r
	}
	ax, bx := moremath.MinMax(r.a.X, r.b.X)
	ay, by := moremath.MinMax(r.a.Y, r.b.Y)
	return Rect{Pt(ax, ay), Pt(bx, by), true}
}

// Size returns the width and height of the rect as a point; both corners
// count, so a rect whose corners coincide has size (1, 1).
func (r Rect) Size() Point2D {
	r = r.Normalize()
	return r.b.Delta(r.a).Move(Pt(1, 1))
}

// Center returns the midpoint of the rect, floored.
func (r Rect) Center() Point2D {
	r = r.Normalize()
	return Midpoint(r.a, r.b).Floor()
}

// Contains returns true if the point lies inside the rect, edges included.
func (r Rect) Contains(p Point2D) bool {
	r = r.Normalize()
	return p.X >= r.a.X && p.X <= r.b.X &&
		p.Y >= r.a.Y && p.Y <= r.b.Y
}

// IsBorderline returns true if the point is contained in the rect and lies on
// one of its edges.
func (r Rect) IsBorderline(p Point2D) bool {
	r = r.Normalize()
	return r.Contains(p) &&
		(p.X == r.a.X || p.X == r.b.X || p.Y == r.a.Y || p.Y == r.b.Y)
}

// Move returns a copy of the rect translated by delta.
func (r Rect) Move(delta Point2D) Rect {
	r.a = r.a.Move(delta)
	r.b = r.b.Move(delta)
	return r
}

// Floor snaps the rect onto the integer grid while keeping its size: the
// position is floored, and the far corner re-derived from the size.
// Flooring both corners independently could gain or lose a cell when the
// corners are fractional.
func (r Rect) Floor() Rect {
	r = r.Normalize()
	size := r.Size()
	pos := r.a.Floor()
	far := pos.Move(size).Floor()
	return FromPosAndSize(pos, far.Delta(pos))
}

// Snap is an alias for Floor.
func (r Rect) Snap() Rect { return r.Floor() }

// Clamp returns the intersection of the rect with outer. Rects that do not
// overlap produce an inverted, non-normalized result; see Overlaps.
func (r Rect) Clamp(outer Rect) Rect {
	r, outer = r.Normalize(), outer.Normalize()
	return NewRect(
		Pt(moremath.Max(r.a.X, outer.a.X), moremath.Max(r.a.Y, outer.a.Y)),
		Pt(moremath.Min(r.b.X, outer.b.X), moremath.Min(r.b.Y, outer.b.Y)),
	)
}

// Overlaps returns true if the rects share at least one cell.
func (r Rect) Overlaps(other Rect) bool {
	c := r.Clamp(other)
	return c.a.X <= c.b.X && c.a.Y <= c.b.Y
}

// Fits returns true if the rect is no larger than outer on either axis.
func (r Rect) Fits(outer Rect) bool {
	in, out := r.Size(), outer.Size()
	return in.X <= out.X && in.Y <= out.Y
}

// MoveGuarded translates the rect by delta, then pulls it back inside outer
// along any axis where it crossed outer's edge, by no more than needed.
//
// Returns ErrInvalidSize if the rect cannot fit inside outer at all.
func (r Rect) MoveGuarded(delta Point2D, outer Rect) (Rect, error) {
	r, outer = r.Normalize(), outer.Normalize()
	if !r.Fits(outer) {
		return Rect{}, sizeError(r, outer)
	}
	moved := r.Move(delta)
	if moved.Clamp(outer).Equal(moved) {
		return moved, nil
	}
	var fix Point2D
	switch {
	case moved.a.X < outer.a.X:
		fix.X = outer.a.X - moved.a.X
	case moved.b.X > outer.b.X:
		fix.X = outer.b.X - moved.b.X
	}
	switch {
	case moved.a.Y < outer.a.Y:
		fix.Y = outer.a.Y - moved.a.Y
	case moved.b.Y > outer.b.Y:
		fix.Y = outer.b.Y - moved.b.Y
	}
	return moved.Move(fix), nil
}

// MaximalPosition returns the largest top-left corner at which the rect still
// fits inside outer.
//
// Returns ErrInvalidSize if the rect cannot fit inside outer at all.
func (r Rect) MaximalPosition(outer Rect) (Point2D, error) {
	r, outer = r.Normalize(), outer.Normalize()
	if !r.Fits(outer) {
		return Point2D{}, sizeError(r, outer)
	}
	return outer.a.Move(outer.Size()).Delta(r.Size()), nil
}

// MaximalSize returns the largest size the rect may grow to, keeping its
// top-left corner fixed, while staying inside outer.
//
// Returns ErrOutOfBounds if outer does not contain the top-left corner.
func (r Rect) MaximalSize(outer Rect) (Point2D, error) {
	r, outer = r.Normalize(), outer.Normalize()
	if !outer.Contains(r.a) {
		return Point2D{}, fmt.Errorf("%w: %v does not contain %v", ErrOutOfBounds, outer, r.a)
	}
	return outer.b.Delta(r.a).Move(Pt(1, 1)), nil
}

// Equal returns true if both corners equal another rect's exactly; corner
// order matters, the normalized flag does not.
func (r Rect) Equal(other Rect) bool {
	return r.a.Equal(other.a) && r.b.Equal(other.b)
}

// Clone returns a copy of the rect.
func (r Rect) Clone() Rect { return r }

func (r Rect) String() string {
	return fmt.Sprintf("[%v-%v]", r.a, r.b)
}

func sizeError(inner, outer Rect) error {
	return fmt.Errorf("%w: %v (size %v) inside %v (size %v)",
		ErrInvalidSize, inner, inner.Size(), outer, outer.Size())
}
