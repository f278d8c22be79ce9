package collision

import (
	"math"
)

// obstacle is one solid thing in the mover's local frame.
type obstacle struct {
	box      Rect
	velocity Vector
	slope    bool
	tri      AATriangle
	// other is nil for tiles.
	other *Object
}

// resolveStatic clamps o.dest against tiles and solid objects. The work
// happens in the local gravity frame so a single procedure covers every
// world angle.
func (s *System) resolveStatic(o *Object) {
	a := s.angle
	dest := a.RectToLocal(o.dest)
	movement := a.ToLocal(o.movement)

	var hit Hit
	if s.simple {
		dest, hit = s.staticSimple(o, dest, movement)
	} else {
		dest, hit = s.staticFull(o, dest, movement)
	}

	o.dest = a.RectFromLocal(dest)
	o.Report(hit)
}

// obstacles collects the solids near area, in a stable order: tile layers
// first, row by row, then objects by id. dest and movement decide whether
// jump-through tiles block.
func (s *System) obstacles(o *Object, area, dest Rect, movement Vector) []obstacle {
	a := s.angle
	world := a.RectFromLocal(area)

	var out []obstacle
	for _, layer := range s.tiles.SolidLayers() {
		lm := a.ToLocal(layer.Movement())
		tr := layer.TilesOverlapping(world)
		for y := tr.Top; y < tr.Bottom; y++ {
			for x := tr.Left; x < tr.Right; x++ {
				tile, ok := layer.TileAt(x, y)
				if !ok || !tile.IsSolid() {
					continue
				}
				tb := layer.TileBBox(x, y)
				box := a.RectToLocal(tb)
				if tile.IsUnisolid() && !tile.collisionful(box, dest, movement.Sub(lm)) {
					continue
				}
				ob := obstacle{box: box, velocity: lm}
				if tile.IsSlope() {
					ob.slope = true
					ob.tri = tile.Triangle(tb, layer.VerticalFlip()).ToLocal(a)
				}
				out = append(out, ob)
			}
		}
	}

	for _, other := range s.broad.query(world) {
		if other == o || !other.IsValid() || !other.Group().solid() {
			continue
		}
		out = append(out, obstacle{
			box:      a.RectToLocal(other.dest),
			velocity: a.ToLocal(other.movement),
			other:    other,
		})
	}
	return out
}

// collisionStatic adds the constraints every obstacle touching dest puts on
// an object moving by movement.
func (s *System) collisionStatic(c *Constraints, movement Vector, dest Rect, o *Object) {
	for _, ob := range s.obstacles(o, dest.Grown(1), dest, movement) {
		if ob.slope {
			RectangleAATriangle(c, dest, ob.tri, ob.velocity)
			continue
		}
		checkCollisions(c, movement, dest, ob, o)
	}
}

// checkCollisions constrains dest against one box obstacle. Boxes that only
// graze dest by less than ShiftDelta on the cross axis shift the object
// out without counting as a hit.
func checkCollisions(c *Constraints, movement Vector, dest Rect, ob obstacle, o *Object) {
	r := ob.box
	if !Intersects(dest, r) {
		return
	}
	if ob.other != nil {
		if !ob.other.Collides(o, Hit{}) || !o.Collides(ob.other, Hit{}) {
			return
		}
	}

	itop := dest.Bottom() - r.Top()
	ibottom := r.Bottom() - dest.Top()
	ileft := dest.Right() - r.Left()
	iright := r.Right() - dest.Left()

	if math.Abs(movement.Y) > math.Abs(movement.X) {
		if ileft < ShiftDelta {
			c.ConstrainRight(r.Left(), ob.velocity.X)
			return
		}
		if iright < ShiftDelta {
			c.ConstrainLeft(r.Right(), ob.velocity.X)
			return
		}
	} else {
		if itop < ShiftDelta {
			c.ConstrainBottom(r.Top(), ob.velocity.Y)
			return
		}
		if ibottom < ShiftDelta {
			c.ConstrainTop(r.Bottom(), ob.velocity.Y)
			return
		}
	}

	c.GroundMovement = c.GroundMovement.Add(ob.velocity)
	if ob.other != nil && ob.other.Collision(o, Hit{}) == AbortMove {
		return
	}
	// A box swallowed dead centre gives equal top and bottom penetration;
	// the direction of travel decides which side it was entered from.
	if itop == ibottom && movement.Y != 0 && itop < min(ileft, iright) {
		if movement.Y > 0 {
			c.ConstrainBottom(r.Top(), ob.velocity.Y)
			c.Hit.Bottom = true
		} else {
			c.ConstrainTop(r.Bottom(), ob.velocity.Y)
			c.Hit.Top = true
		}
		return
	}
	SetRectangleRectangleConstraints(c, dest, r, ob.velocity)
}

// staticFull is the iterative resolution: two vertical-only passes, then
// two passes with the full movement, then crush confirmation.
func (s *System) staticFull(o *Object, dest Rect, movement Vector) (Rect, Hit) {
	w, h := dest.W, dest.H
	var pressure Vector
	var hit Hit

	c := NewConstraints()
	for i := 0; i < 2; i++ {
		s.collisionStatic(&c, Vector{Y: movement.Y}, dest, o)
		if !c.HasConstraints() {
			break
		}
		if !math.IsInf(c.Bottom(), 1) {
			if height := c.Height(); height < h {
				pressure.Y += h - height
			} else {
				dest = dest.withBottom(c.Bottom()-Delta, h)
			}
		} else if !math.IsInf(c.Top(), -1) {
			dest = dest.withTop(c.Top()+Delta, h)
		}
	}
	if c.HasConstraints() {
		if c.Hit.Bottom {
			dest = dest.Moved(c.GroundMovement)
		}
		if c.Hit.Top || c.Hit.Bottom {
			vertical := c.Hit
			vertical.Left, vertical.Right = false, false
			hit = hit.Merge(vertical)
		}
	}

	c = NewConstraints()
	for i := 0; i < 2; i++ {
		s.collisionStatic(&c, movement, dest, o)
		if !c.HasConstraints() {
			break
		}
		if width := c.Width(); !math.IsInf(width, 1) {
			if width+ShiftDelta < w {
				pressure.X += w - width
			} else {
				dest = dest.withLeft(c.XMidpoint()-w/2, w)
			}
		} else if !math.IsInf(c.Right(), 1) {
			dest = dest.withRight(c.Right()-Delta, w)
		} else if !math.IsInf(c.Left(), -1) {
			dest = dest.withLeft(c.Left()+Delta, w)
		}
	}
	if c.Hit.Any() {
		hit = hit.Merge(c.Hit)
	}

	if pressure.Y > 0 {
		c = NewConstraints()
		s.collisionStatic(&c, movement, dest, o)
		if !math.IsInf(c.Bottom(), 1) && c.Height()+ShiftDelta < h {
			hit = hit.Merge(Hit{Top: true, Bottom: true, Crush: true})
		}
	}
	if pressure.X > 0 {
		c = NewConstraints()
		s.collisionStatic(&c, movement, dest, o)
		if !math.IsInf(c.Right(), 1) && c.Width()+ShiftDelta < w {
			hit = hit.Merge(Hit{Left: true, Right: true, Top: true, Bottom: true, Crush: true})
		}
	}
	return dest, hit
}

// tileAttributes ORs the attributes of every tile the resolved dest
// touches. Ice also counts when it is just below the object's feet.
func (s *System) tileAttributes(o *Object) TileAttribute {
	a := s.angle
	dest := a.RectToLocal(o.dest)
	movement := a.ToLocal(o.movement)
	probe := dest
	probe.H += ShiftDelta

	var attrs TileAttribute
	for _, layer := range s.tiles.SolidLayers() {
		main := layer.TilesOverlapping(a.RectFromLocal(dest))
		ice := layer.TilesOverlapping(a.RectFromLocal(probe))
		for y := ice.Top; y < ice.Bottom; y++ {
			for x := ice.Left; x < ice.Right; x++ {
				tile, ok := layer.TileAt(x, y)
				if !ok || tile.Attributes == 0 {
					continue
				}
				if !tile.collisionful(a.RectToLocal(layer.TileBBox(x, y)), dest, movement) {
					continue
				}
				if inRange(main, x, y) {
					attrs |= tile.Attributes
				} else {
					attrs |= tile.Attributes & TileIce
				}
			}
		}
	}
	return attrs
}

func inRange(r TileRange, x, y int) bool {
	return x >= r.Left && x < r.Right && y >= r.Top && y < r.Bottom
}
