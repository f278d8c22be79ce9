package collision

import "math"

// Intersects is the inclusive overlap test: boxes that share an edge intersect.
func Intersects(r1, r2 Rect) bool {
	if r1.Right() < r2.Left() || r1.Left() > r2.Right() {
		return false
	}
	if r1.Bottom() < r2.Top() || r1.Top() > r2.Bottom() {
		return false
	}
	return true
}

// IntersectsSimple uses exclusive bounds so that boxes lying flush against
// a tile on the grid do not collide with it.
func IntersectsSimple(r1, r2 Rect) bool {
	if r1.Right() <= r2.Left() || r1.Left() >= r2.Right() {
		return false
	}
	if r1.Bottom() <= r2.Top() || r1.Top() >= r2.Bottom() {
		return false
	}
	return true
}

// plane is the line n·p + c = 0 with n pointing out of the solid side.
type plane struct {
	n Vector
	c float64
}

func makePlane(p1, p2 Vector) plane {
	n := Vector{X: p2.Y - p1.Y, Y: p1.X - p2.X}
	n = n.Scale(1 / n.Length())
	return plane{n: n, c: -p2.Dot(n)}
}

// RectangleAATriangle adds the constraints needed to push rect out of the
// slope tri. extra is the velocity of the slope, handed on as ground
// movement when rect ends up standing on it. It reports whether the two
// shapes touched at all.
func RectangleAATriangle(c *Constraints, rect Rect, tri AATriangle, extra Vector) bool {
	if !Intersects(rect, tri.BBox) {
		return false
	}

	area := tri.area()
	var p1 Vector
	var pl plane
	switch tri.Dir & DirectionMask {
	case SouthWest:
		p1 = Vector{X: rect.Left(), Y: rect.Bottom()}
		pl = makePlane(area.TopLeft(), area.BottomRight())
	case NorthEast:
		p1 = Vector{X: rect.Right(), Y: rect.Top()}
		pl = makePlane(area.BottomRight(), area.TopLeft())
	case SouthEast:
		p1 = rect.BottomRight()
		pl = makePlane(Vector{X: area.Left(), Y: area.Bottom()}, Vector{X: area.Right(), Y: area.Top()})
	case NorthWest:
		p1 = rect.TopLeft()
		pl = makePlane(Vector{X: area.Right(), Y: area.Top()}, Vector{X: area.Left(), Y: area.Bottom()})
	}

	depth := -pl.n.Dot(p1) - pl.c
	if depth < 0 {
		return false
	}

	// The reference corner is nowhere near the slope surface, so the
	// rect hit the triangle's flat sides: resolve it like a box.
	if p1.X < area.Left()-RDelta || p1.X > area.Right()+RDelta ||
		p1.Y < area.Top()-RDelta || p1.Y > area.Bottom()+RDelta {
		box := NewConstraints()
		SetRectangleRectangleConstraints(&box, rect, area, extra)
		if box.Hit.Bottom {
			box.GroundMovement = extra
		}
		c.Merge(box)
		return true
	}

	// The push is applied along one axis only; a tie resolves vertically so
	// a rect resting on a 45 degree slope keeps its horizontal speed.
	out := pl.n.Scale(depth + slopeOutset)
	if math.Abs(out.Y) >= math.Abs(out.X) {
		if out.Y < 0 {
			c.ConstrainBottom(rect.Bottom()+out.Y, extra.Y)
			c.Hit.Bottom = true
			c.GroundMovement = c.GroundMovement.Add(extra)
		} else {
			c.ConstrainTop(rect.Top()+out.Y, extra.Y)
			c.Hit.Top = true
		}
	} else if out.X < 0 {
		c.ConstrainRight(rect.Right()+out.X, extra.X)
		c.Hit.Right = true
	} else {
		c.ConstrainLeft(rect.Left()+out.X, extra.X)
		c.Hit.Left = true
	}
	c.Hit.SlopeNormal = pl.n
	return true
}

// SetRectangleRectangleConstraints resolves r1 out of r2 along the axis
// with the smaller penetration, toward the nearer side.
func SetRectangleRectangleConstraints(c *Constraints, r1, r2 Rect, velocity Vector) {
	itop := r1.Bottom() - r2.Top()
	ibottom := r2.Bottom() - r1.Top()
	ileft := r1.Right() - r2.Left()
	iright := r2.Right() - r1.Left()

	vert := min(itop, ibottom)
	horiz := min(ileft, iright)
	if vert < horiz {
		if itop < ibottom {
			c.ConstrainBottom(r2.Top(), velocity.Y)
			c.Hit.Bottom = true
		} else {
			c.ConstrainTop(r2.Bottom(), velocity.Y)
			c.Hit.Top = true
		}
		return
	}
	if ileft < iright {
		c.ConstrainRight(r2.Left(), velocity.X)
		c.Hit.Right = true
	} else {
		c.ConstrainLeft(r2.Right(), velocity.X)
		c.Hit.Left = true
	}
}

// hitNormal returns the sides of r1 blocked by r2 and the penetration
// vector pointing from r1 into r2.
func hitNormal(r1, r2 Rect) (Hit, Vector) {
	itop := r1.Bottom() - r2.Top()
	ibottom := r2.Bottom() - r1.Top()
	ileft := r1.Right() - r2.Left()
	iright := r2.Right() - r1.Left()

	vert := min(itop, ibottom)
	horiz := min(ileft, iright)

	var hit Hit
	var normal Vector
	if vert < horiz {
		if itop < ibottom {
			hit.Bottom = true
			normal.Y = vert
		} else {
			hit.Top = true
			normal.Y = -vert
		}
		return hit, normal
	}
	if ileft < iright {
		hit.Right = true
		normal.X = horiz
	} else {
		hit.Left = true
		normal.X = -horiz
	}
	return hit, normal
}
