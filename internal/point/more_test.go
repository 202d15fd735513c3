package point_test

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/borkshop/gridbox/internal/input"
	. "github.com/borkshop/gridbox/internal/point"
)

func TestPoint_compat(t *testing.T) {
	pt := Pt(2, 5)
	ipt := image.Pt(2, 5)
	assert.Equal(t, ipt, pt.Image())
	assert.Equal(t, pt, FromImage(ipt))
	assert.Equal(t, image.Pt(-3, 1), Pt(-2.5, 1.9).Image())
}

func TestRect_compat(t *testing.T) {
	rect := image.Rect(3, 5, 8, 13)
	box := FromImageRect(rect)
	assert.Equal(t, Pt(3, 5), box.A())
	assert.Equal(t, Pt(7, 12), box.B())
	assert.Equal(t, Pt(5, 8), box.Size())
	assert.Equal(t, rect, box.Image())

	assert.Equal(t, image.Rect(0, 0, 3, 2), Rt(2, 1, 0, 0).Image())
}

func TestFromMousePosition(t *testing.T) {
	el := input.Bounds{Left: 4, Top: 2, Width: 8, Height: 4}
	ev := input.Pointer{ClientX: 6, ClientY: 5}

	assert.Equal(t, Pt(0.25, 0.75), FromRelativeMousePosition(ev, el))
	assert.Equal(t, Pt(25, 30), FromCanvasMousePosition(ev, input.Canvas{
		Bounds: el,
		Width:  100,
		Height: 40,
	}))
}
