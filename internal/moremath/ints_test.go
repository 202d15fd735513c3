package moremath_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	. "github.com/borkshop/gridbox/internal/moremath"
)

func TestMinMax(t *testing.T) {
	assert.Equal(t, 2, Min(5, 2, 9))
	assert.Equal(t, 9, Max(5, 2, 9))
	assert.Equal(t, -1.5, Min(0.5, -1.5))

	lo, hi := MinMax(10.0, 0.0)
	assert.Equal(t, 0.0, lo)
	assert.Equal(t, 10.0, hi)

	ilo, ihi := MinMax(3, 7)
	assert.Equal(t, 3, ilo)
	assert.Equal(t, 7, ihi)

	assert.Panics(t, func() { Min[int]() })
}

func TestSign(t *testing.T) {
	for _, tc := range []struct {
		name string
		in   float64
		out  float64
	}{
		{"negative", -3.5, -1},
		{"positive", 0.25, 1},
		{"zero", 0, 0},
		{"nan", math.NaN(), 0},
		{"-inf", math.Inf(-1), -1},
	} {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.out, Sign(tc.in))
		})
	}
	assert.Equal(t, -1, Sign(-7))
	assert.Equal(t, int8(1), Sign(int8(4)))
}
