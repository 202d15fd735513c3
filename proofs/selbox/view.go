package main

import (
	"fmt"
	"image"
	"log"

	"github.com/gdamore/tcell"
	"github.com/gdamore/tcell/views"
	opensimplex "github.com/ojrac/opensimplex-go"

	"github.com/borkshop/gridbox/internal/input"
	"github.com/borkshop/gridbox/internal/moremath"
	"github.com/borkshop/gridbox/internal/point"
)

const (
	glyphCanvas = '.'
	glyphBorder = '#'
	glyphCenter = '+'
	glyphInside = ' '

	noiseScale = 0.25
)

type boxView struct {
	views.WidgetWatchers
	view   views.View
	status func(string)

	canvas   point.Rect
	box      point.Rect
	anchor   point.Point2D
	dragging bool

	noise opensimplex.Noise
}

func newView(canvas, box point.Rect) *boxView {
	v := &boxView{}
	v.noise = opensimplex.New(0)
	v.canvas = canvas.Normalize()
	v.box = box
	return v
}

func (v *boxView) setStatus(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	log.Print(msg)
	if v.status != nil {
		v.status(msg)
	}
}

// screenCanvas describes how the logical canvas is laid over the view.
func (v *boxView) screenCanvas() input.Canvas {
	vw, vh := v.view.Size()
	size := v.canvas.Size()
	return input.Canvas{
		Bounds: input.Bounds{Width: float64(vw), Height: float64(vh)},
		Width:  int(size.X),
		Height: int(size.Y),
	}
}

func (v *boxView) canvasPoint(ev input.Pointer) point.Point2D {
	return point.FromCanvasMousePosition(ev, v.screenCanvas()).Move(v.canvas.A())
}

// canvasStyle shades an empty canvas cell grey, by the noise field at p.
func (v *boxView) canvasStyle(p point.Point2D) tcell.Style {
	n := v.noise.Eval2(p.X*noiseScale, p.Y*noiseScale)
	g := int32(200 + 40*n)
	return tcell.StyleDefault.Foreground(tcell.NewRGBColor(g, g, g))
}

func (v *boxView) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyRune {
			return v.handleRune(ev.Rune())
		}
	case *tcell.EventMouse:
		if v.view == nil {
			return false
		}
		return v.handleMouse(ev)
	}
	return false
}

func (v *boxView) handleRune(r rune) bool {
	switch r {
	case 'm':
		pos, err := v.box.MaximalPosition(v.canvas)
		if err != nil {
			v.setStatus("cannot place: %v", err)
			return true
		}
		v.box = point.FromPosAndSize(pos, v.box.Size())
	case 'M':
		size, err := v.box.MaximalSize(v.canvas)
		if err != nil {
			v.setStatus("cannot grow: %v", err)
			return true
		}
		v.box = point.FromPosAndSize(v.box.Normalize().A(), size)
	default:
		move, ok := input.ParseMove(r, v.box.Size().Image())
		if !ok {
			return false
		}
		moved, err := v.box.MoveGuarded(point.FromImage(move), v.canvas)
		if err != nil {
			v.setStatus("cannot move: %v", err)
			return true
		}
		v.box = moved
	}
	v.setStatus("box %v size %v", v.box, v.box.Size())
	v.PostEventWidgetContent(v)
	return true
}

func (v *boxView) handleMouse(ev *tcell.EventMouse) bool {
	p := v.canvasPoint(input.PointerFromMouse(ev))
	if ev.Buttons()&tcell.Button1 == 0 {
		if !v.dragging {
			return false
		}
		v.dragging = false
		if !v.box.Overlaps(v.canvas) {
			v.setStatus("drag %v missed the canvas", v.box)
			return true
		}
		v.box = v.box.Clamp(v.canvas)
		v.setStatus("box %v size %v", v.box, v.box.Size())
		v.PostEventWidgetContent(v)
		return true
	}
	if !v.dragging {
		if !v.canvas.Contains(p) {
			return false
		}
		v.anchor, v.dragging = p, true
	}
	v.box = point.NewRect(v.anchor, p)
	v.setStatus("drag %v", v.box)
	v.PostEventWidgetContent(v)
	return true
}

func (v *boxView) Size() (int, int) {
	size := v.canvas.Size().Image()
	return size.X, size.Y
}

func (v *boxView) SetView(view views.View) {
	v.view = view
	if v.view == nil {
		return
	}
	v.PostEventWidgetContent(v)
}

func (v *boxView) Resize() {}

func (v *boxView) Draw() {
	if v.view == nil {
		return
	}
	vw, vh := v.view.Size()
	if moremath.Min(vw, vh) <= 0 {
		return
	}
	center := v.box.Center()
	screen := point.FromPosAndSize(point.Zero, point.Pt(float64(vw), float64(vh)))
	for s := range screen.Points() {
		p := v.canvasPoint(input.Pointer{ClientX: s.X, ClientY: s.Y})
		ch, style := glyphCanvas, tcell.StyleDefault
		switch {
		case v.box.IsBorderline(p):
			ch = glyphBorder
		case p.Equal(center):
			ch = glyphCenter
		case v.box.Contains(p):
			ch = glyphInside
		default:
			style = v.canvasStyle(p)
		}
		at := s.Image()
		v.view.SetContent(at.X, at.Y, ch, nil, style)
	}
}

var _ views.Widget = (*boxView)(nil)

func parseSize(s string) (image.Point, error) {
	var size image.Point
	if _, err := fmt.Sscanf(s, "%dx%d", &size.X, &size.Y); err != nil {
		return image.Point{}, fmt.Errorf("invalid size %q: %w", s, err)
	}
	if size.X <= 0 || size.Y <= 0 {
		return image.Point{}, fmt.Errorf("invalid size %q: must be positive", s)
	}
	return size, nil
}
