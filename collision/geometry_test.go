package collision

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIntersects(t *testing.T) {
	base := Rect{X: 0, Y: 0, W: 16, H: 16}
	tests := []struct {
		name      string
		other     Rect
		inclusive bool
		simple    bool
	}{
		{"overlapping", Rect{X: 8, Y: 8, W: 16, H: 16}, true, true},
		{"touching right edge", Rect{X: 16, Y: 0, W: 16, H: 16}, true, false},
		{"touching bottom edge", Rect{X: 0, Y: 16, W: 16, H: 16}, true, false},
		{"disjoint", Rect{X: 20, Y: 0, W: 4, H: 4}, false, false},
		{"contained", Rect{X: 4, Y: 4, W: 2, H: 2}, true, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.inclusive, Intersects(base, tt.other))
			assert.Equal(t, tt.inclusive, Intersects(tt.other, base))
			assert.Equal(t, tt.simple, IntersectsSimple(base, tt.other))
		})
	}
}

func TestConstraintsMostRestrictiveWins(t *testing.T) {
	c := NewConstraints()
	assert.False(t, c.HasConstraints())
	assert.True(t, math.IsInf(c.Width(), 1))

	c.ConstrainBottom(10, 1)
	c.ConstrainBottom(20, 2)
	c.ConstrainTop(-5, 0)
	c.ConstrainTop(-8, 0)
	c.ConstrainLeft(3, 0)
	c.ConstrainRight(30, 0)

	assert.True(t, c.HasConstraints())
	assert.Equal(t, 10.0, c.Bottom())
	assert.Equal(t, 1.0, c.BottomVelocity())
	assert.Equal(t, -5.0, c.Top())
	assert.Equal(t, 15.0, c.Height())
	assert.Equal(t, 27.0, c.Width())
	assert.Equal(t, 16.5, c.XMidpoint())
}

func TestConstraintsMerge(t *testing.T) {
	a := NewConstraints()
	a.ConstrainRight(40, 0)
	a.Hit.Right = true
	a.GroundMovement = Vector{X: 1}

	b := NewConstraints()
	b.ConstrainRight(32, 3)
	b.ConstrainBottom(0, 0)
	b.Hit.Bottom = true
	b.GroundMovement = Vector{X: 2}

	a.Merge(b)
	assert.Equal(t, 32.0, a.Right())
	assert.Equal(t, 3.0, a.RightVelocity())
	assert.Equal(t, 0.0, a.Bottom())
	assert.True(t, a.Hit.Right)
	assert.True(t, a.Hit.Bottom)
	assert.Equal(t, Vector{X: 3}, a.GroundMovement)
}

func TestRectangleAATrianglePlane(t *testing.T) {
	tri := NewAATriangle(Rect{X: 0, Y: 0, W: 16, H: 16}, SouthWest)
	c := NewConstraints()

	rect := Rect{X: 2, Y: 2, W: 8, H: 8}
	require.True(t, RectangleAATriangle(&c, rect, tri, Vector{X: 1}))

	// Corner (2, 10) sits 4*sqrt(2) below the diagonal. On a 45 degree
	// slope both push components are equal and the tie goes vertical.
	push := (math.Sqrt2*4 + slopeOutset) / math.Sqrt2
	assert.True(t, c.Hit.Bottom)
	assert.False(t, c.Hit.Left)
	assert.InDelta(t, rect.Bottom()-push, c.Bottom(), 1e-9)
	assert.True(t, math.IsInf(c.Left(), -1))
	assert.Equal(t, Vector{X: 1}, c.GroundMovement)
	assert.InDelta(t, math.Sqrt2/2, c.Hit.SlopeNormal.X, 1e-9)
	assert.InDelta(t, -math.Sqrt2/2, c.Hit.SlopeNormal.Y, 1e-9)
}

func TestRectangleAATrianglePushesAlongOneAxis(t *testing.T) {
	t.Run("gentle slope pushes up only", func(t *testing.T) {
		tri := NewAATriangle(Rect{X: 0, Y: 0, W: 16, H: 16}, SouthWest|DeformBottom)
		c := NewConstraints()

		require.True(t, RectangleAATriangle(&c, Rect{X: 4, Y: 4, W: 8, H: 8}, tri, Vector{X: 2}))
		assert.True(t, c.Hit.Bottom)
		assert.False(t, c.Hit.Left)
		assert.False(t, c.Hit.Right)
		assert.True(t, math.IsInf(c.Left(), -1))
		assert.Equal(t, Vector{X: 2}, c.GroundMovement)
	})

	t.Run("steep slope pushes sideways only", func(t *testing.T) {
		tri := NewAATriangle(Rect{X: 0, Y: 0, W: 16, H: 16}, SouthWest|DeformLeft)
		c := NewConstraints()

		require.True(t, RectangleAATriangle(&c, Rect{X: 1, Y: 6, W: 4, H: 4}, tri, Vector{X: 2}))
		assert.True(t, c.Hit.Left)
		assert.False(t, c.Hit.Bottom)
		assert.False(t, c.Hit.Top)
		assert.True(t, math.IsInf(c.Bottom(), 1))
		assert.True(t, c.GroundMovement.IsZero())
	})
}

func TestRectangleAATriangleMisses(t *testing.T) {
	tri := NewAATriangle(Rect{X: 0, Y: 0, W: 16, H: 16}, SouthWest)

	t.Run("outside bounding box", func(t *testing.T) {
		c := NewConstraints()
		assert.False(t, RectangleAATriangle(&c, Rect{X: 20, Y: 0, W: 4, H: 4}, tri, Vector{}))
		assert.False(t, c.HasConstraints())
	})

	t.Run("above the diagonal", func(t *testing.T) {
		c := NewConstraints()
		assert.False(t, RectangleAATriangle(&c, Rect{X: 10, Y: 0, W: 4, H: 4}, tri, Vector{}))
		assert.False(t, c.HasConstraints())
	})
}

func TestRectangleAATriangleFallsBackToBox(t *testing.T) {
	tri := NewAATriangle(Rect{X: 0, Y: 0, W: 16, H: 16}, SouthWest)
	c := NewConstraints()

	// Walking into the vertical side: the reference corner is far left of the slope.
	rect := Rect{X: -10, Y: 4, W: 12, H: 8}
	require.True(t, RectangleAATriangle(&c, rect, tri, Vector{}))

	assert.True(t, c.Hit.Right)
	assert.False(t, c.Hit.Bottom)
	assert.Equal(t, 0.0, c.Right())
	assert.True(t, c.Hit.SlopeNormal.IsZero())
}

func TestRectangleAATriangleFlatTopCarriesGroundMovement(t *testing.T) {
	tri := NewAATriangle(Rect{X: 0, Y: 0, W: 16, H: 16}, NorthEast)
	c := NewConstraints()

	// Landing on the flat top edge resolves like a box, and the slope's
	// own velocity is still handed on.
	rect := Rect{X: 4, Y: -6, W: 8, H: 7}
	require.True(t, RectangleAATriangle(&c, rect, tri, Vector{X: 2}))

	assert.True(t, c.Hit.Bottom)
	assert.Equal(t, 0.0, c.Bottom())
	assert.Equal(t, Vector{X: 2}, c.GroundMovement)
	assert.True(t, c.Hit.SlopeNormal.IsZero())
}

func TestRectangleAATriangleDeformed(t *testing.T) {
	tri := NewAATriangle(Rect{X: 0, Y: 0, W: 16, H: 16}, SouthWest|DeformBottom)
	c := NewConstraints()

	// The upper half of a half-height slope is empty.
	assert.False(t, RectangleAATriangle(&c, Rect{X: 0, Y: 0, W: 4, H: 4}, tri, Vector{}))

	require.True(t, RectangleAATriangle(&c, Rect{X: 2, Y: 8, W: 4, H: 6}, tri, Vector{}))
	assert.True(t, c.Hit.Bottom)
	assert.False(t, c.Hit.Left)
	assert.False(t, c.Hit.SlopeNormal.IsZero())
}

func TestSetRectangleRectangleConstraints(t *testing.T) {
	obstacle := Rect{X: 0, Y: 0, W: 32, H: 32}
	tests := []struct {
		name  string
		rect  Rect
		check func(t *testing.T, c Constraints)
	}{
		{"from above", Rect{X: 8, Y: -12, W: 16, H: 16}, func(t *testing.T, c Constraints) {
			assert.True(t, c.Hit.Bottom)
			assert.Equal(t, 0.0, c.Bottom())
		}},
		{"from below", Rect{X: 8, Y: 28, W: 16, H: 16}, func(t *testing.T, c Constraints) {
			assert.True(t, c.Hit.Top)
			assert.Equal(t, 32.0, c.Top())
		}},
		{"from the left", Rect{X: -12, Y: 8, W: 16, H: 16}, func(t *testing.T, c Constraints) {
			assert.True(t, c.Hit.Right)
			assert.Equal(t, 0.0, c.Right())
		}},
		{"from the right", Rect{X: 28, Y: 8, W: 16, H: 16}, func(t *testing.T, c Constraints) {
			assert.True(t, c.Hit.Left)
			assert.Equal(t, 32.0, c.Left())
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewConstraints()
			SetRectangleRectangleConstraints(&c, tt.rect, obstacle, Vector{})
			tt.check(t, c)
		})
	}
}

func TestHitNormalIsSymmetric(t *testing.T) {
	a := Rect{X: 0, Y: 0, W: 16, H: 16}
	offsets := []Vector{
		{X: 12, Y: 0},
		{X: -12, Y: 2},
		{X: 3, Y: 10},
		{X: -1, Y: -13},
	}
	for _, off := range offsets {
		b := a.Moved(off)
		h1, n1 := hitNormal(a, b)
		h2, n2 := hitNormal(b, a)
		assert.Equal(t, h1, h2.Swapped(), "offset %v", off)
		assert.Equal(t, n1, n2.Neg(), "offset %v", off)
	}
}

func TestParseSlope(t *testing.T) {
	dir, err := ParseSlope("southwest, deform_bottom")
	require.NoError(t, err)
	assert.Equal(t, SouthWest|DeformBottom, dir)

	dir, err = ParseSlope("NorthEast")
	require.NoError(t, err)
	assert.Equal(t, NorthEast, dir)

	_, err = ParseSlope("uphill")
	assert.Error(t, err)
	_, err = ParseSlope("deform_top")
	assert.Error(t, err)
}

func TestVerticalFlip(t *testing.T) {
	assert.Equal(t, NorthWest, VerticalFlip(SouthWest))
	assert.Equal(t, SouthEast|DeformTop, VerticalFlip(NorthEast|DeformBottom))
	assert.Equal(t, SouthWest|DeformLeft, VerticalFlip(NorthWest|DeformLeft))
}

func TestTriangleToLocal(t *testing.T) {
	tri := NewAATriangle(Rect{X: 0, Y: 0, W: 16, H: 16}, SouthWest|DeformBottom)

	flipped := tri.ToLocal(Angle180)
	assert.Equal(t, NorthEast|DeformTop, flipped.Dir)
	assert.Equal(t, Rect{X: -16, Y: -16, W: 16, H: 16}, flipped.BBox)

	quarter := tri.ToLocal(Angle90)
	assert.Equal(t, SouthEast|DeformRight, quarter.Dir)
}
