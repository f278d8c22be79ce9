package collision

import (
	"log"
)

// Stepper is the contract shared by the collision backends.
type Stepper interface {
	Add(o *Object)
	Remove(o *Object)
	Update(dt float64)
}

// Options configures a System at construction.
type Options struct {
	// Simple selects the axis-separated static resolution.
	Simple bool
	// Bounds is the world area indexed for static lookups. Leave it zero
	// to scan every static object linearly.
	Bounds   Rect
	CellSize int
	Angle    Angle
}

// System resolves the movement of every registered Object once per Update.
type System struct {
	tiles  Tilemap
	simple bool
	angle  Angle

	objects  []*Object
	adding   []*Object
	removing []*Object
	updating bool
	paused   int
	nextID   uint64

	broad *broadphase
}

var _ Stepper = (*System)(nil)

// NewSystem builds a system over tiles, which may be nil for a level
// without tile geometry. It panics on an unsupported angle.
func NewSystem(tiles Tilemap, opts Options) *System {
	opts.Angle.mustValid()
	if tiles == nil {
		tiles = noTiles{}
	}
	return &System{
		tiles:  tiles,
		simple: opts.Simple,
		angle:  opts.Angle,
		broad:  newBroadphase(opts.Bounds, opts.CellSize),
	}
}

// Add registers o. During Update the object is staged and joins the
// system once the current pass has finished. Adding an object that is
// already registered is a no-op; adding one that was removed earlier in
// the same pass cancels the removal.
func (s *System) Add(o *Object) {
	if o.system == s {
		if o.removing {
			s.unstageRemoval(o)
		}
		return
	}
	o.system = s
	o.removing = false
	if s.updating {
		s.adding = append(s.adding, o)
		return
	}
	s.insert(o)
}

// Remove unregisters o. During Update the object is invalidated at once
// and dropped from the list after the pass.
func (s *System) Remove(o *Object) {
	if o.system != s {
		log.Printf("[collision] remove of unregistered %s object ignored", o.Kind())
		return
	}
	if s.updating {
		if o.removing {
			return
		}
		o.removing = true
		s.removing = append(s.removing, o)
		return
	}
	s.erase(o)
}

func (s *System) unstageRemoval(o *Object) {
	for i, cur := range s.removing {
		if cur == o {
			s.removing = append(s.removing[:i], s.removing[i+1:]...)
			break
		}
	}
	o.removing = false
}

func (s *System) insert(o *Object) {
	s.nextID++
	o.id = s.nextID
	s.objects = append(s.objects, o)
}

func (s *System) erase(o *Object) {
	for i, cur := range s.adding {
		if cur == o {
			s.adding = append(s.adding[:i], s.adding[i+1:]...)
			break
		}
	}
	for i, cur := range s.objects {
		if cur == o {
			s.objects = append(s.objects[:i], s.objects[i+1:]...)
			break
		}
	}
	s.broad.drop(o)
	o.system = nil
	o.removing = false
}

// merge applies membership changes staged during the last pass.
func (s *System) merge() {
	for _, o := range s.removing {
		s.erase(o)
	}
	s.removing = s.removing[:0]
	for _, o := range s.adding {
		s.insert(o)
	}
	s.adding = s.adding[:0]
}

// Objects returns the live object list. Callers must not modify it.
func (s *System) Objects() []*Object { return s.objects }
func (s *System) Len() int           { return len(s.objects) }

func (s *System) Simple() bool { return s.simple }

// Pause stops resolution until a matching Resume. Calls nest.
func (s *System) Pause() { s.paused++ }

func (s *System) Resume() {
	if s.paused > 0 {
		s.paused--
	}
}

func (s *System) Paused() bool { return s.paused > 0 }

func (s *System) Angle() Angle { return s.angle }

// SetAngle rotates gravity. Anything but a cardinal angle panics.
func (s *System) SetAngle(a Angle) {
	a.mustValid()
	s.angle = a
}

// Update runs one resolution pass. Movement is already a per-frame
// displacement, so dt only satisfies Stepper.
func (s *System) Update(float64) {
	if s.paused > 0 {
		s.merge()
		return
	}
	s.updating = true
	defer func() {
		s.updating = false
		s.merge()
	}()

	objects := s.objects

	for _, o := range objects {
		if o.IsValid() {
			o.LoadBBox()
		}
	}

	for _, o := range objects {
		if !o.IsValid() {
			continue
		}
		if l := o.movement.Length(); l > MaxSpeed {
			o.movement = o.movement.Scale(MaxSpeed / l)
		}
		o.dest = o.bbox.Moved(o.movement)
	}
	s.broad.sync(objects)

	for _, o := range objects {
		if !o.IsValid() || !o.Group().moving() {
			continue
		}
		s.resolveStatic(o)
		if o.Group().solid() {
			s.broad.track(o)
		}
	}

	for _, o := range objects {
		if !o.IsValid() || !o.Group().moving() {
			continue
		}
		if attrs := s.tileAttributes(o); attrs >= FirstInterestingFlag {
			o.CollisionTile(attrs)
		}
	}

	for _, o := range objects {
		if !o.IsValid() || !o.Group().dynamic() {
			continue
		}
		for _, t := range objects {
			if !o.IsValid() {
				break
			}
			if !t.IsValid() || t.Group() != GroupTouchable {
				continue
			}
			s.touch(o, t)
		}
	}

	for i, o := range objects {
		if !o.IsValid() || !o.Group().dynamic() {
			continue
		}
		for _, p := range objects[i+1:] {
			if !o.IsValid() {
				break
			}
			if !p.IsValid() || !p.Group().dynamic() {
				continue
			}
			s.collideObjects(o, p)
		}
	}

	for _, o := range objects {
		if o.IsValid() {
			o.Commit(o.dest)
			o.SaveBBox()
		}
	}
}

// touch reports an overlap between mover and sensor. Neither is moved.
func (s *System) touch(mover, sensor *Object) {
	if !IntersectsSimple(mover.dest, sensor.dest) {
		return
	}
	hit, _ := hitNormal(sensor.dest, mover.dest)
	hit = hit.ToLocal(s.angle)
	if !mover.Collides(sensor, hit.Swapped()) || !sensor.Collides(mover, hit) {
		return
	}
	sensor.Collision(mover, hit)
	mover.Collision(sensor, hit.Swapped())
}

// collideObjects separates two dynamic objects according to both responses.
func (s *System) collideObjects(o1, o2 *Object) {
	if !Intersects(o1.dest, o2.dest) {
		return
	}
	hit, normal := hitNormal(o1.dest, o2.dest)
	hit = hit.ToLocal(s.angle)

	if !o1.Collides(o2, hit) || !o2.Collides(o1, hit.Swapped()) {
		return
	}
	r1 := o1.Collision(o2, hit)
	r2 := o2.Collision(o1, hit.Swapped())

	switch {
	case r1 == Continue && r2 == Continue:
		push := separation(normal, 0.5)
		o1.dest = o1.dest.Moved(push.Neg())
		o2.dest = o2.dest.Moved(push)
	case r1 == Continue && r2 == ForceMove:
		o1.dest = o1.dest.Moved(separation(normal, 1).Neg())
	case r1 == ForceMove && r2 == Continue:
		o2.dest = o2.dest.Moved(separation(normal, 1))
	}
}

// separation scales the penetration normal by share and adds Delta along
// its direction so the pair ends up apart.
func separation(normal Vector, share float64) Vector {
	v := normal.Scale(share)
	switch {
	case normal.X > 0:
		v.X += Delta
	case normal.X < 0:
		v.X -= Delta
	}
	switch {
	case normal.Y > 0:
		v.Y += Delta
	case normal.Y < 0:
		v.Y -= Delta
	}
	return v
}
