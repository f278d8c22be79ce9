// Package nativephys runs collision objects through the chipmunk rigid-body
// solver instead of the custom constraint engine. It honours the same
// Object lifecycle and callbacks, with a coarser result: no crush
// detection, no world rotation, and tile layers are treated as fixed.
package nativephys

import (
	"log"
	"sort"

	"github.com/automoto/doomerang-physics/collision"
	"github.com/automoto/doomerang-physics/tilemap"
	"github.com/jakecoffman/cp"
)

const (
	collisionTypeBody cp.CollisionType = iota + 1
	collisionTypeSolid
	collisionTypeOneWay
	collisionTypeSensor
	collisionTypeTile
)

// normalThreshold is how far a contact normal must lean towards an axis to
// count as a hit on that side.
const normalThreshold = 0.5

type bodyInfo struct {
	object *collision.Object
	body   *cp.Body
	shape  *cp.Shape
	static bool
}

// World is a collision.Stepper backed by a chipmunk space.
type World struct {
	space *cp.Space

	bodies   map[*collision.Object]*bodyInfo
	order    []*collision.Object
	shapes   map[*cp.Shape]*collision.Object
	updating bool
	adding   []*collision.Object
	removing []*collision.Object

	hits map[*collision.Object]collision.Hit
	// overlaps counts the sensor shapes each mover is inside.
	overlaps map[*collision.Object]map[*cp.Shape]int
}

var _ collision.Stepper = (*World)(nil)

// NewWorld builds a space holding the solid tiles of m, which may be nil.
func NewWorld(m *tilemap.Map) *World {
	space := cp.NewSpace()
	space.Iterations = 20
	w := &World{
		space:  space,
		bodies: make(map[*collision.Object]*bodyInfo),
		shapes: make(map[*cp.Shape]*collision.Object),
		hits:   make(map[*collision.Object]collision.Hit),

		overlaps: make(map[*collision.Object]map[*cp.Shape]int),
	}
	w.setupHandlers()
	if m != nil {
		for _, layer := range m.Layers() {
			w.buildTiles(layer)
		}
	}
	return w
}

func (w *World) Len() int { return len(w.order) }

func (w *World) Add(o *collision.Object) {
	if w.updating {
		w.adding = append(w.adding, o)
		return
	}
	w.insert(o)
}

func (w *World) Remove(o *collision.Object) {
	if _, ok := w.bodies[o]; !ok {
		log.Printf("[native] remove of unregistered %s object ignored", o.Kind())
		return
	}
	if w.updating {
		w.removing = append(w.removing, o)
		return
	}
	w.erase(o)
}

func (w *World) insert(o *collision.Object) {
	if _, ok := w.bodies[o]; ok {
		return
	}
	o.LoadBBox()
	box := o.BBox()
	centre := cp.Vector{X: box.Center().X, Y: box.Center().Y}

	info := &bodyInfo{object: o}
	switch o.Group() {
	case collision.GroupStatic:
		info.static = true
		info.body = w.space.StaticBody
		info.shape = cp.NewBox2(w.space.StaticBody, bb(box), 0)
		info.shape.SetCollisionType(collisionTypeSolid)
	case collision.GroupTouchable:
		info.static = true
		info.body = w.space.StaticBody
		info.shape = cp.NewBox2(w.space.StaticBody, bb(box), 0)
		info.shape.SetSensor(true)
		info.shape.SetCollisionType(collisionTypeSensor)
	case collision.GroupMovingStatic:
		// Platforms push bodies around but are never pushed back.
		info.body = w.space.AddBody(cp.NewKinematicBody())
		info.body.SetPosition(centre)
		info.shape = cp.NewBox(info.body, box.W, box.H, 0)
		info.shape.SetCollisionType(collisionTypeSolid)
	default:
		info.body = w.space.AddBody(cp.NewBody(1, cp.INFINITY))
		info.body.SetPosition(centre)
		info.shape = cp.NewBox(info.body, box.W, box.H, 0)
		info.shape.SetCollisionType(collisionTypeBody)
	}
	info.shape.SetFriction(0)
	info.shape.SetElasticity(0)
	w.space.AddShape(info.shape)

	w.bodies[o] = info
	w.shapes[info.shape] = o
	w.order = append(w.order, o)
}

func (w *World) erase(o *collision.Object) {
	info, ok := w.bodies[o]
	if !ok {
		return
	}
	w.space.RemoveShape(info.shape)
	if !info.static {
		w.space.RemoveBody(info.body)
	}
	delete(w.shapes, info.shape)
	delete(w.bodies, o)
	delete(w.hits, o)
	delete(w.overlaps, o)
	for _, shapes := range w.overlaps {
		delete(shapes, info.shape)
	}
	for i, cur := range w.order {
		if cur == o {
			w.order = append(w.order[:i], w.order[i+1:]...)
			break
		}
	}
}

func (w *World) merge() {
	for _, o := range w.removing {
		w.erase(o)
	}
	w.removing = w.removing[:0]
	for _, o := range w.adding {
		w.insert(o)
	}
	w.adding = w.adding[:0]
}

// Update moves every body by its object's movement over dt seconds and
// commits the solved positions. A zero dt only refreshes the boxes.
func (w *World) Update(dt float64) {
	w.updating = true
	defer func() {
		w.updating = false
		w.merge()
	}()

	clear(w.hits)

	for _, o := range w.order {
		info := w.bodies[o]
		o.LoadBBox()
		if info.static {
			continue
		}
		box := o.BBox()
		info.body.SetPosition(cp.Vector{X: box.Center().X, Y: box.Center().Y})
		if dt <= 0 || !o.IsValid() || o.Group() == collision.GroupDisabled {
			info.body.SetVelocityVector(cp.Vector{})
			continue
		}
		m := o.Movement()
		if l := m.Length(); l > collision.MaxSpeed {
			m = m.Scale(collision.MaxSpeed / l)
		}
		info.body.SetVelocityVector(cp.Vector{X: m.X / dt, Y: m.Y / dt})
	}

	if dt > 0 {
		w.space.Step(dt)
	}

	for _, o := range w.order {
		info := w.bodies[o]
		if !info.static {
			info.body.SetVelocityVector(cp.Vector{})
		}
		if !o.IsValid() {
			continue
		}
		box := o.BBox()
		if !info.static {
			p := info.body.Position()
			box.X = p.X - box.W/2
			box.Y = p.Y - box.H/2
		}
		o.Commit(box)
		o.SaveBBox()

		o.Report(w.hits[o])
	}

	for _, o := range w.order {
		if !o.IsValid() || o.Group() == collision.GroupDisabled {
			continue
		}
		w.dispatchOverlaps(o)
	}
}

// dispatchOverlaps reports the sensors and attribute tiles o is inside,
// sensors in registration order.
func (w *World) dispatchOverlaps(o *collision.Object) {
	var attrs collision.TileAttribute
	var sensors []*collision.Object
	for shape := range w.overlaps[o] {
		if a, ok := shape.UserData.(collision.TileAttribute); ok {
			attrs |= a
			continue
		}
		if other, ok := w.shapes[shape]; ok && other.IsValid() {
			sensors = append(sensors, other)
		}
	}
	if attrs >= collision.FirstInterestingFlag {
		o.CollisionTile(attrs)
	}
	if g := o.Group(); g != collision.GroupMoving && g != collision.GroupMovingStatic {
		return
	}
	sort.Slice(sensors, func(i, j int) bool { return w.rank(sensors[i]) < w.rank(sensors[j]) })
	for _, sensor := range sensors {
		hit := touchHit(sensor.BBox(), o.BBox())
		if !o.Collides(sensor, hit.Swapped()) || !sensor.Collides(o, hit) {
			continue
		}
		sensor.Collision(o, hit)
		o.Collision(sensor, hit.Swapped())
	}
}

func (w *World) rank(o *collision.Object) int {
	for i, cur := range w.order {
		if cur == o {
			return i
		}
	}
	return len(w.order)
}

// touchHit is the side of sensor that mover entered through: the axis of
// least overlap decides.
func touchHit(sensor, mover collision.Rect) collision.Hit {
	dx := min(sensor.Right(), mover.Right()) - max(sensor.Left(), mover.Left())
	dy := min(sensor.Bottom(), mover.Bottom()) - max(sensor.Top(), mover.Top())
	d := mover.Center().Sub(sensor.Center())
	var h collision.Hit
	if dy < dx {
		h.Top = d.Y < 0
		h.Bottom = !h.Top
	} else {
		h.Left = d.X < 0
		h.Right = !h.Left
	}
	return h
}

func bb(r collision.Rect) cp.BB {
	return cp.BB{L: r.Left(), B: r.Top(), R: r.Right(), T: r.Bottom()}
}

// sideHit converts a contact normal pointing from an object towards its
// obstacle into the side of the object that was hit.
func sideHit(n cp.Vector) collision.Hit {
	var h collision.Hit
	switch {
	case n.Y > normalThreshold:
		h.Bottom = true
	case n.Y < -normalThreshold:
		h.Top = true
	}
	switch {
	case n.X > normalThreshold:
		h.Right = true
	case n.X < -normalThreshold:
		h.Left = true
	}
	return h
}

// contact orders the arbiter's shapes so that the first one is mover and
// returns the normal pointing from mover to the other shape.
func contact(arb *cp.Arbiter, mover *cp.Shape) (*cp.Shape, cp.Vector) {
	a, b := arb.Shapes()
	n := arb.Normal()
	if a == mover {
		return b, n
	}
	return a, n.Neg()
}

func (w *World) setupHandlers() {
	solid := w.space.NewCollisionHandler(collisionTypeBody, collisionTypeSolid)
	solid.PreSolveFunc = func(arb *cp.Arbiter, _ *cp.Space, _ interface{}) bool {
		a, b := arb.Shapes()
		mover, okA := w.shapes[a]
		moverShape := a
		if !okA || mover.Group() == collision.GroupStatic || mover.Group() == collision.GroupMovingStatic {
			mover, moverShape = w.shapes[b], b
		}
		if !collision.Valid(mover) || mover.Group() == collision.GroupDisabled {
			return false
		}
		other, n := contact(arb, moverShape)
		hit := sideHit(n)
		if obstacle, ok := w.shapes[other]; ok {
			if !obstacle.IsValid() || !obstacle.Collides(mover, hit.Swapped()) || !mover.Collides(obstacle, hit) {
				return false
			}
			if obstacle.Collision(mover, hit.Swapped()) == collision.AbortMove {
				return false
			}
		}
		w.hits[mover] = w.hits[mover].Merge(hit)
		return true
	}

	oneWay := w.space.NewCollisionHandler(collisionTypeBody, collisionTypeOneWay)
	oneWay.PreSolveFunc = func(arb *cp.Arbiter, _ *cp.Space, _ interface{}) bool {
		moverShape, _ := arb.Shapes()
		if _, ok := w.shapes[moverShape]; !ok {
			_, moverShape = arb.Shapes()
		}
		mover := w.shapes[moverShape]
		_, n := contact(arb, moverShape)
		// Only landing on top of the surface counts.
		if !collision.Valid(mover) || n.Y <= normalThreshold {
			return false
		}
		w.hits[mover] = w.hits[mover].Merge(sideHit(n))
		return true
	}

	pair := w.space.NewCollisionHandler(collisionTypeBody, collisionTypeBody)
	pair.PreSolveFunc = func(arb *cp.Arbiter, _ *cp.Space, _ interface{}) bool {
		a, b := arb.Shapes()
		o1, o2 := w.shapes[a], w.shapes[b]
		if !collision.Valid(o1) || !collision.Valid(o2) {
			return false
		}
		if o1.Group() != collision.GroupMoving && o1.Group() != collision.GroupMovingStatic ||
			o2.Group() != collision.GroupMoving && o2.Group() != collision.GroupMovingStatic {
			return false
		}
		hit := sideHit(arb.Normal())
		if !o1.Collides(o2, hit) || !o2.Collides(o1, hit.Swapped()) {
			return false
		}
		r1 := o1.Collision(o2, hit)
		r2 := o2.Collision(o1, hit.Swapped())
		return r1 != collision.AbortMove && r2 != collision.AbortMove
	}

	for _, kind := range []cp.CollisionType{collisionTypeSensor, collisionTypeTile} {
		h := w.space.NewCollisionHandler(collisionTypeBody, kind)
		h.BeginFunc = func(arb *cp.Arbiter, _ *cp.Space, _ interface{}) bool {
			w.overlap(arb, 1)
			return true
		}
		h.SeparateFunc = func(arb *cp.Arbiter, _ *cp.Space, _ interface{}) {
			w.overlap(arb, -1)
		}
	}
}

// overlap tracks a mover entering or leaving a sensor shape.
func (w *World) overlap(arb *cp.Arbiter, d int) {
	a, b := arb.Shapes()
	mover, sensor := w.shapes[a], b
	if mover == nil || mover.Group() == collision.GroupTouchable {
		mover, sensor = w.shapes[b], a
	}
	if mover == nil {
		return
	}
	shapes := w.overlaps[mover]
	if shapes == nil {
		shapes = make(map[*cp.Shape]int)
		w.overlaps[mover] = shapes
	}
	shapes[sensor] += d
	if shapes[sensor] <= 0 {
		delete(shapes, sensor)
	}
}

// buildTiles adds the static shapes of one tile layer. Runs of plain solid
// tiles are merged into larger boxes; everything else gets its own shape.
func (w *World) buildTiles(layer *tilemap.Layer) {
	cols, rows := layer.Size()
	processed := make([]bool, cols*rows)
	plain := func(x, y int) bool {
		t, ok := layer.TileAt(x, y)
		return ok && !processed[y*cols+x] && t.Attributes == collision.TileSolid
	}

	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			if processed[y*cols+x] {
				continue
			}
			t, ok := layer.TileAt(x, y)
			if !ok {
				continue
			}
			box := layer.TileBBox(x, y)
			if !plain(x, y) {
				processed[y*cols+x] = true
				w.addTile(t, box, layer.VerticalFlip())
				continue
			}

			wd := 1
			for x+wd < cols && plain(x+wd, y) {
				wd++
			}
			h := 1
		heightLoop:
			for y+h < rows {
				for xi := x; xi < x+wd; xi++ {
					if !plain(xi, y+h) {
						break heightLoop
					}
				}
				h++
			}
			for yy := y; yy < y+h; yy++ {
				for xx := x; xx < x+wd; xx++ {
					processed[yy*cols+xx] = true
				}
			}
			merged := collision.Rect{X: box.X, Y: box.Y, W: box.W * float64(wd), H: box.H * float64(h)}
			w.addShape(cp.NewBox2(w.space.StaticBody, bb(merged), 0), collisionTypeSolid)
		}
	}
}

func (w *World) addTile(t collision.Tile, box collision.Rect, flipped bool) {
	switch {
	case t.IsSlope():
		verts := triangleVerts(t.Triangle(box, flipped))
		w.addShape(cp.NewPolyShapeRaw(w.space.StaticBody, len(verts), verts, 0), collisionTypeSolid)
	case t.IsUnisolid():
		w.addShape(cp.NewBox2(w.space.StaticBody, bb(box), 0), collisionTypeOneWay)
	case t.IsSolid():
		w.addShape(cp.NewBox2(w.space.StaticBody, bb(box), 0), collisionTypeSolid)
	}
	if extra := t.Attributes &^ (collision.TileSolid | collision.TileUnisolid | collision.TileSlope); extra != 0 {
		// Attribute sensors reach a little above the tile so that standing
		// on ice registers.
		probe := box
		probe.Y -= 1
		probe.H += 1
		s := cp.NewBox2(w.space.StaticBody, bb(probe), 0)
		s.SetSensor(true)
		s.UserData = extra
		w.addShape(s, collisionTypeTile)
	}
}

func (w *World) addShape(s *cp.Shape, kind cp.CollisionType) {
	s.SetCollisionType(kind)
	s.SetFriction(0)
	w.space.AddShape(s)
}

// triangleVerts lists the corners of a slope's solid half in
// counter-clockwise order for chipmunk's y-up convention, which is
// clockwise on screen.
func triangleVerts(t collision.AATriangle) []cp.Vector {
	b := t.BBox
	switch t.Dir & collision.DeformMask {
	case collision.DeformBottom:
		b = collision.Rect{X: b.X, Y: b.Y + b.H/2, W: b.W, H: b.H / 2}
	case collision.DeformTop:
		b = collision.Rect{X: b.X, Y: b.Y, W: b.W, H: b.H / 2}
	case collision.DeformLeft:
		b = collision.Rect{X: b.X, Y: b.Y, W: b.W / 2, H: b.H}
	case collision.DeformRight:
		b = collision.Rect{X: b.X + b.W/2, Y: b.Y, W: b.W / 2, H: b.H}
	}
	tl := cp.Vector{X: b.Left(), Y: b.Top()}
	tr := cp.Vector{X: b.Right(), Y: b.Top()}
	bl := cp.Vector{X: b.Left(), Y: b.Bottom()}
	br := cp.Vector{X: b.Right(), Y: b.Bottom()}
	switch t.Dir & collision.DirectionMask {
	case collision.SouthWest:
		return []cp.Vector{tl, br, bl}
	case collision.NorthEast:
		return []cp.Vector{tl, tr, br}
	case collision.SouthEast:
		return []cp.Vector{tr, br, bl}
	case collision.NorthWest:
		return []cp.Vector{tl, tr, bl}
	}
	panic("nativephys: invalid slope direction")
}
