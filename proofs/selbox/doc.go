package main

/*

# Abstract

The selbox proof drives the point package from a terminal: a selection box
lives on a logical canvas that is stretched over the whole screen.

- drag with the left mouse button to draw a new box from any corner; while
  dragging the box is kept exactly as drawn (anchor first), and only
  normalized, and clamped onto the canvas, on release
- vi-style keys move the box one cell; capitals move it a whole box width or
  height; moves are guarded so the box stops flush against the canvas edge
- 'm' jumps the box to its maximal position, 'M' grows it to its maximal size

Mouse cells are mapped onto the canvas through the relative/canvas mouse
position adapter, so a canvas smaller than the terminal is drawn scaled up.

*/
