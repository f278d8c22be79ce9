package collision

import "math"

// Vector represents a 2D displacement or position.
type Vector struct {
	X, Y float64
}

func (v Vector) Add(o Vector) Vector {
	return Vector{X: v.X + o.X, Y: v.Y + o.Y}
}

func (v Vector) Sub(o Vector) Vector {
	return Vector{X: v.X - o.X, Y: v.Y - o.Y}
}

func (v Vector) Scale(f float64) Vector {
	return Vector{X: v.X * f, Y: v.Y * f}
}

func (v Vector) Neg() Vector {
	return Vector{X: -v.X, Y: -v.Y}
}

func (v Vector) Dot(o Vector) float64 {
	return v.X*o.X + v.Y*o.Y
}

func (v Vector) Length() float64 {
	return math.Hypot(v.X, v.Y)
}

// IsZero reports whether both components are exactly zero.
func (v Vector) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

// Rect is an axis-aligned box in map-local coordinates. Y grows downward.
type Rect struct {
	X, Y, W, H float64
}

// NewRectFromPoints builds a rect from two opposite corners in any order.
func NewRectFromPoints(a, b Vector) Rect {
	x0, x1 := math.Min(a.X, b.X), math.Max(a.X, b.X)
	y0, y1 := math.Min(a.Y, b.Y), math.Max(a.Y, b.Y)
	return Rect{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}
}

func (r Rect) Left() float64   { return r.X }
func (r Rect) Right() float64  { return r.X + r.W }
func (r Rect) Top() float64    { return r.Y }
func (r Rect) Bottom() float64 { return r.Y + r.H }

func (r Rect) TopLeft() Vector     { return Vector{X: r.X, Y: r.Y} }
func (r Rect) BottomRight() Vector { return Vector{X: r.Right(), Y: r.Bottom()} }

func (r Rect) Center() Vector {
	return Vector{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

// Moved returns r translated by v.
func (r Rect) Moved(v Vector) Rect {
	r.X += v.X
	r.Y += v.Y
	return r
}

// Grown returns r expanded by d on every side.
func (r Rect) Grown(d float64) Rect {
	return Rect{X: r.X - d, Y: r.Y - d, W: r.W + 2*d, H: r.H + 2*d}
}

// Union returns the smallest rect containing both r and o.
func (r Rect) Union(o Rect) Rect {
	return NewRectFromPoints(
		Vector{X: math.Min(r.X, o.X), Y: math.Min(r.Y, o.Y)},
		Vector{X: math.Max(r.Right(), o.Right()), Y: math.Max(r.Bottom(), o.Bottom())},
	)
}

// Empty reports whether the rect has no area.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Contains reports whether o lies entirely within r.
func (r Rect) Contains(o Rect) bool {
	return o.X >= r.X && o.Y >= r.Y && o.Right() <= r.Right() && o.Bottom() <= r.Bottom()
}

// Overlaps is the inclusive overlap test; touching edges count.
func (r Rect) Overlaps(o Rect) bool {
	return Intersects(r, o)
}

// withBottom keeps height h and places the bottom edge at y.
func (r Rect) withBottom(y, h float64) Rect {
	r.H = h
	r.Y = y - h
	return r
}

func (r Rect) withTop(y, h float64) Rect {
	r.H = h
	r.Y = y
	return r
}

func (r Rect) withRight(x, w float64) Rect {
	r.W = w
	r.X = x - w
	return r
}

func (r Rect) withLeft(x, w float64) Rect {
	r.W = w
	r.X = x
	return r
}
