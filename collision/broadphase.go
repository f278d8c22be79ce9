package collision

import (
	"math"
	"sort"

	"github.com/solarlune/resolv"
)

const (
	tagSolid = "solid"
	tagProbe = "probe"

	defaultCellSize = 16
)

// broadphase indexes static and moving-static objects in a resolv space so
// Phase A only looks at solids near the mover. Objects that stick out of
// the indexed area are kept on an overflow list and always returned.
type broadphase struct {
	space    *resolv.Space
	origin   Vector
	bounds   Rect
	probe    *resolv.Object
	overflow []*Object
}

func newBroadphase(bounds Rect, cell int) *broadphase {
	if bounds.Empty() {
		return &broadphase{}
	}
	if cell <= 0 {
		cell = defaultCellSize
	}
	space := resolv.NewSpace(int(math.Ceil(bounds.W)), int(math.Ceil(bounds.H)), cell, cell)
	probe := resolv.NewObject(0, 0, 1, 1, tagProbe)
	space.Add(probe)
	return &broadphase{
		space:  space,
		origin: bounds.TopLeft(),
		bounds: bounds,
		probe:  probe,
	}
}

func (b *broadphase) place(p *resolv.Object, r Rect) {
	p.X = r.X - b.origin.X
	p.Y = r.Y - b.origin.Y
	p.W = r.W
	p.H = r.H
	p.Update()
}

// sync puts every solid object's proxy at its current dest and drops
// proxies of objects that stopped being solid.
func (b *broadphase) sync(objects []*Object) {
	b.overflow = b.overflow[:0]
	for _, o := range objects {
		if !o.IsValid() || !o.Group().solid() {
			b.drop(o)
			continue
		}
		if b.space == nil || !b.bounds.Contains(o.dest) {
			b.drop(o)
			b.overflow = append(b.overflow, o)
			continue
		}
		b.track(o)
	}
}

// track re-indexes a single solid object after its dest changed.
func (b *broadphase) track(o *Object) {
	if b.space == nil || !b.bounds.Contains(o.dest) {
		return
	}
	if o.proxy == nil {
		o.proxy = resolv.NewObject(0, 0, 1, 1, tagSolid)
		o.proxy.Data = o
		b.space.Add(o.proxy)
	}
	b.place(o.proxy, o.dest)
}

func (b *broadphase) drop(o *Object) {
	if o.proxy == nil {
		return
	}
	if b.space != nil {
		b.space.Remove(o.proxy)
	}
	o.proxy = nil
}

// query returns the solid objects that may overlap r, ordered by id.
func (b *broadphase) query(r Rect) []*Object {
	out := append([]*Object(nil), b.overflow...)
	if b.space != nil {
		b.place(b.probe, r.Grown(1))
		if check := b.probe.Check(0, 0, tagSolid); check != nil {
			for _, p := range check.Objects {
				if o, ok := p.Data.(*Object); ok {
					out = append(out, o)
				}
			}
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].id < out[j].id })
	uniq := out[:0]
	for _, o := range out {
		if n := len(uniq); n > 0 && uniq[n-1] == o {
			continue
		}
		uniq = append(uniq, o)
	}
	return uniq
}
