package collision

import (
	"fmt"
	"strings"
)

// Slope direction names the corner of the bounding box the solid part fills.
const (
	SouthWest = 0
	NorthEast = 1
	SouthEast = 2
	NorthWest = 3

	DirectionMask = 0x0003
)

// Deform flags shrink the triangle to one half of its box.
const (
	DeformBottom = 0x0010
	DeformTop    = 0x0020
	DeformLeft   = 0x0030
	DeformRight  = 0x0040

	DeformMask = 0x0070
)

// AATriangle is a right triangle filling one corner of an axis-aligned box.
type AATriangle struct {
	BBox Rect
	Dir  int
}

func NewAATriangle(bbox Rect, dir int) AATriangle {
	return AATriangle{BBox: bbox, Dir: dir}
}

// VerticalFlip mirrors a slope direction for upside-down tile layers.
func VerticalFlip(dir int) int {
	direction := dir & DirectionMask
	deform := dir & DeformMask
	switch direction {
	case NorthWest:
		direction = SouthWest
	case NorthEast:
		direction = SouthEast
	case SouthWest:
		direction = NorthWest
	case SouthEast:
		direction = NorthEast
	}
	switch deform {
	case DeformBottom:
		deform = DeformTop
	case DeformTop:
		deform = DeformBottom
	}
	return direction | deform
}

var cornerDirs = map[int]Vector{
	SouthWest: {X: -1, Y: 1},
	NorthEast: {X: 1, Y: -1},
	SouthEast: {X: 1, Y: 1},
	NorthWest: {X: -1, Y: -1},
}

var deformDirs = map[int]Vector{
	DeformBottom: {Y: 1},
	DeformTop:    {Y: -1},
	DeformLeft:   {X: -1},
	DeformRight:  {X: 1},
}

func cornerFor(v Vector) int {
	for dir, c := range cornerDirs {
		if c == v {
			return dir
		}
	}
	panic(fmt.Sprintf("collision: no slope corner for %v", v))
}

func deformFor(v Vector) int {
	for flag, d := range deformDirs {
		if d == v {
			return flag
		}
	}
	panic(fmt.Sprintf("collision: no slope deform for %v", v))
}

// ToLocal rotates the triangle into the gravity frame of angle a.
func (t AATriangle) ToLocal(a Angle) AATriangle {
	if a == Angle0 {
		return t
	}
	dir := cornerFor(a.ToLocal(cornerDirs[t.Dir&DirectionMask]))
	if deform := t.Dir & DeformMask; deform != 0 {
		d, ok := deformDirs[deform]
		if !ok {
			panic(fmt.Sprintf("collision: invalid slope deform 0x%x", deform))
		}
		dir |= deformFor(a.ToLocal(d))
	}
	return AATriangle{BBox: a.RectToLocal(t.BBox), Dir: dir}
}

// area is the part of the box the slope actually spans.
func (t AATriangle) area() Rect {
	b := t.BBox
	switch t.Dir & DeformMask {
	case 0:
		return b
	case DeformBottom:
		return Rect{X: b.X, Y: b.Y + b.H/2, W: b.W, H: b.H / 2}
	case DeformTop:
		return Rect{X: b.X, Y: b.Y, W: b.W, H: b.H / 2}
	case DeformLeft:
		return Rect{X: b.X, Y: b.Y, W: b.W / 2, H: b.H}
	case DeformRight:
		return Rect{X: b.X + b.W/2, Y: b.Y, W: b.W / 2, H: b.H}
	}
	panic(fmt.Sprintf("collision: invalid slope deform 0x%x", t.Dir&DeformMask))
}

var slopeNames = map[string]int{
	"southwest":     SouthWest,
	"northeast":     NorthEast,
	"southeast":     SouthEast,
	"northwest":     NorthWest,
	"deform_bottom": DeformBottom,
	"deform_top":    DeformTop,
	"deform_left":   DeformLeft,
	"deform_right":  DeformRight,
}

// ParseSlope reads a slope description such as "southwest,deform_bottom".
func ParseSlope(s string) (int, error) {
	dir := 0
	seenCorner := false
	for _, field := range strings.Split(s, ",") {
		field = strings.ToLower(strings.TrimSpace(field))
		if field == "" {
			continue
		}
		v, ok := slopeNames[field]
		if !ok {
			return 0, fmt.Errorf("unknown slope %q", field)
		}
		if v&DeformMask == 0 {
			seenCorner = true
		}
		dir |= v
	}
	if !seenCorner {
		return 0, fmt.Errorf("slope %q has no corner", s)
	}
	return dir, nil
}
