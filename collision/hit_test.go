package collision

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHitSwapped(t *testing.T) {
	h := Hit{Left: true, Bottom: true, SlopeNormal: Vector{X: 1, Y: -1}}
	s := h.Swapped()
	assert.True(t, s.Right)
	assert.True(t, s.Top)
	assert.False(t, s.Left)
	assert.False(t, s.Bottom)
	assert.Equal(t, Vector{X: -1, Y: 1}, s.SlopeNormal)
	assert.Equal(t, h, s.Swapped())
}

func TestHitMerge(t *testing.T) {
	a := Hit{Left: true}
	b := Hit{Bottom: true, Crush: true, SlopeNormal: Vector{Y: -1}}
	m := a.Merge(b)
	assert.True(t, m.Left)
	assert.True(t, m.Bottom)
	assert.True(t, m.Crush)
	assert.Equal(t, Vector{Y: -1}, m.SlopeNormal)
	assert.Equal(t, "left|bottom|crush", m.String())
	assert.Equal(t, "none", Hit{}.String())
}

func TestHitRotation(t *testing.T) {
	tests := []struct {
		angle Angle
		world Hit
		local Hit
	}{
		{Angle0, Hit{Bottom: true}, Hit{Bottom: true}},
		{Angle180, Hit{Bottom: true, Left: true}, Hit{Top: true, Right: true}},
		{Angle90, Hit{Bottom: true}, Hit{Right: true}},
		{Angle270, Hit{Bottom: true}, Hit{Left: true}},
		{Angle90, Hit{Left: true, Crush: true}, Hit{Bottom: true, Crush: true}},
	}
	for _, tt := range tests {
		got := tt.world.ToLocal(tt.angle)
		assert.Equal(t, tt.local.sides(), got.sides(), "angle %d", tt.angle)
		assert.Equal(t, tt.local.Crush, got.Crush)
		assert.Equal(t, tt.world.sides(), got.FromLocal(tt.angle).sides(), "round trip at %d", tt.angle)
	}
}

func TestAngleVectors(t *testing.T) {
	v := Vector{X: 3, Y: -5}
	for _, a := range []Angle{Angle0, Angle90, Angle180, Angle270} {
		assert.Equal(t, v, a.FromLocal(a.ToLocal(v)), "angle %d", a)
	}
	// Gravity in world space always points to local +Y.
	assert.Equal(t, Vector{X: 0, Y: 1}, Angle90.ToLocal(Vector{X: -1}))
	assert.Equal(t, Vector{X: 0, Y: 1}, Angle270.ToLocal(Vector{X: 1}))
}

func TestRectRotation(t *testing.T) {
	r := Rect{X: 2, Y: 4, W: 16, H: 8}
	for _, a := range []Angle{Angle0, Angle90, Angle180, Angle270} {
		back := a.RectFromLocal(a.RectToLocal(r))
		assert.InDelta(t, r.X, back.X, 1e-12)
		assert.InDelta(t, r.Y, back.Y, 1e-12)
		assert.InDelta(t, r.W, back.W, 1e-12)
		assert.InDelta(t, r.H, back.H, 1e-12)
	}
	assert.Equal(t, Rect{X: 4, Y: -18, W: 8, H: 16}, Angle90.RectToLocal(r))
}

func TestParseAngle(t *testing.T) {
	a, err := ParseAngle(-90)
	require.NoError(t, err)
	assert.Equal(t, Angle270, a)

	a, err = ParseAngle(540)
	require.NoError(t, err)
	assert.Equal(t, Angle180, a)

	_, err = ParseAngle(45)
	assert.Error(t, err)

	assert.Panics(t, func() { Angle(45).ToLocal(Vector{}) })
}
