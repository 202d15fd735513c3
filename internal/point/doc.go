/*
Package point provides immutable points and axis-aligned rectangles on an
inclusive integer grid.

A Rect is two corner points. Unlike image.Rectangle, both corners are part of
the rectangle: Rt(0, 0, 9, 7) covers 10x8 cells. Corners may be given in any
order, e.g. a drag box anchored where the mouse went down; such a rect is not
normalized, and every sizing, containment, iteration or clamping method
reasons about its normalized form without altering the receiver.

Coordinates are float64 so that fractional mouse positions can be carried
around and snapped to the grid later (see Rect.Floor). NaN and infinities
are never rejected; they propagate.
*/
package point
