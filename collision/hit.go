package collision

import (
	"fmt"
	"strings"
)

// Hit describes which sides of an object's box were blocked.
type Hit struct {
	Left, Right, Top, Bottom bool
	// Crush is set when the object has less room than its own size.
	Crush bool
	// SlopeNormal is the surface normal of the last slope touched, or zero.
	SlopeNormal Vector
}

// Any reports whether any side or the crush flag is set.
func (h Hit) Any() bool {
	return h.Left || h.Right || h.Top || h.Bottom || h.Crush
}

// Swapped returns the hit as seen from the other participant.
func (h Hit) Swapped() Hit {
	h.Left, h.Right = h.Right, h.Left
	h.Top, h.Bottom = h.Bottom, h.Top
	h.SlopeNormal = h.SlopeNormal.Neg()
	return h
}

// Merge ORs the flags of o into h. A non-zero slope normal in o wins.
func (h Hit) Merge(o Hit) Hit {
	h.Left = h.Left || o.Left
	h.Right = h.Right || o.Right
	h.Top = h.Top || o.Top
	h.Bottom = h.Bottom || o.Bottom
	h.Crush = h.Crush || o.Crush
	if !o.SlopeNormal.IsZero() {
		h.SlopeNormal = o.SlopeNormal
	}
	return h
}

var sideDirs = [4]Vector{
	{X: -1}, // left
	{X: 1},  // right
	{Y: -1}, // top
	{Y: 1},  // bottom
}

func (h Hit) sides() [4]bool {
	return [4]bool{h.Left, h.Right, h.Top, h.Bottom}
}

func (h *Hit) setSide(dir Vector) {
	switch {
	case dir.X < 0:
		h.Left = true
	case dir.X > 0:
		h.Right = true
	case dir.Y < 0:
		h.Top = true
	case dir.Y > 0:
		h.Bottom = true
	}
}

// ToLocal re-expresses a world-space hit in the gravity frame of angle a.
func (h Hit) ToLocal(a Angle) Hit {
	return h.remap(a.ToLocal)
}

// FromLocal is the inverse of ToLocal.
func (h Hit) FromLocal(a Angle) Hit {
	return h.remap(a.FromLocal)
}

func (h Hit) remap(f func(Vector) Vector) Hit {
	out := Hit{Crush: h.Crush, SlopeNormal: f(h.SlopeNormal)}
	for i, set := range h.sides() {
		if set {
			out.setSide(f(sideDirs[i]))
		}
	}
	return out
}

func (h Hit) String() string {
	var parts []string
	for i, name := range []string{"left", "right", "top", "bottom"} {
		if h.sides()[i] {
			parts = append(parts, name)
		}
	}
	if h.Crush {
		parts = append(parts, "crush")
	}
	if len(parts) == 0 {
		return "none"
	}
	return strings.Join(parts, "|")
}

// Angle is the world rotation used to flip gravity. Only the four
// cardinal orientations exist.
type Angle int

const (
	Angle0   Angle = 0
	Angle90  Angle = 90
	Angle180 Angle = 180
	Angle270 Angle = 270
)

// Valid reports whether a is one of the four supported orientations.
func (a Angle) Valid() bool {
	switch a {
	case Angle0, Angle90, Angle180, Angle270:
		return true
	}
	return false
}

func (a Angle) mustValid() {
	if !a.Valid() {
		panic(fmt.Sprintf("collision: unsupported world angle %d", int(a)))
	}
}

// ToLocal maps a world vector into the frame where gravity points to +Y.
func (a Angle) ToLocal(v Vector) Vector {
	switch a {
	case Angle0:
		return v
	case Angle90:
		return Vector{X: v.Y, Y: -v.X}
	case Angle180:
		return Vector{X: -v.X, Y: -v.Y}
	case Angle270:
		return Vector{X: -v.Y, Y: v.X}
	}
	a.mustValid()
	return v
}

// FromLocal maps a local vector back to world space.
func (a Angle) FromLocal(v Vector) Vector {
	switch a {
	case Angle0:
		return v
	case Angle90:
		return Vector{X: -v.Y, Y: v.X}
	case Angle180:
		return Vector{X: -v.X, Y: -v.Y}
	case Angle270:
		return Vector{X: v.Y, Y: -v.X}
	}
	a.mustValid()
	return v
}

func (a Angle) RectToLocal(r Rect) Rect {
	if a == Angle0 {
		return r
	}
	return NewRectFromPoints(a.ToLocal(r.TopLeft()), a.ToLocal(r.BottomRight()))
}

func (a Angle) RectFromLocal(r Rect) Rect {
	if a == Angle0 {
		return r
	}
	return NewRectFromPoints(a.FromLocal(r.TopLeft()), a.FromLocal(r.BottomRight()))
}

// ParseAngle accepts any multiple of 90 degrees, negative values included.
func ParseAngle(deg int) (Angle, error) {
	a := Angle(((deg % 360) + 360) % 360)
	if !a.Valid() {
		return Angle0, fmt.Errorf("unsupported world angle %d", deg)
	}
	return a, nil
}
