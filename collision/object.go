package collision

import (
	"github.com/solarlune/resolv"
)

// Body is the live collider an Object mirrors. The engine reads it once per
// frame and writes back only relative moves.
type Body interface {
	Bounds() Rect
	// Refresh recomputes Bounds from the owner's transform.
	Refresh()
	Translate(dx, dy float64)
	Kind() ColliderKind
	Exists() bool
}

// Handler receives collision callbacks. Hits are in the local gravity frame.
type Handler interface {
	// Collides filters a pair before any resolution; both sides must agree.
	Collides(other *Object, hit Hit) bool
	Collision(other *Object, hit Hit) HitResponse
	// CollisionSolid is called once per frame with the aggregated static hit.
	CollisionSolid(hit Hit)
	CollisionTile(attrs TileAttribute)
}

// NopHandler collides with everything and ignores every callback. Embed it
// to override only the hooks you need.
type NopHandler struct{}

func (NopHandler) Collides(*Object, Hit) bool         { return true }
func (NopHandler) Collision(*Object, Hit) HitResponse { return Continue }
func (NopHandler) CollisionSolid(Hit)                 {}
func (NopHandler) CollisionTile(TileAttribute)        {}

// RectBody is a plain box Body, enough for static geometry and tests.
type RectBody struct {
	Box   Rect
	Class ColliderKind
	Gone  bool
}

func NewRectBody(r Rect, kind ColliderKind) *RectBody {
	return &RectBody{Box: r, Class: kind}
}

func (b *RectBody) Bounds() Rect       { return b.Box }
func (b *RectBody) Refresh()           {}
func (b *RectBody) Kind() ColliderKind { return b.Class }
func (b *RectBody) Exists() bool       { return !b.Gone }

func (b *RectBody) Translate(dx, dy float64) {
	b.Box.X += dx
	b.Box.Y += dy
}

// Object is the per-entity collision state.
type Object struct {
	id      uint64
	body    Body
	handler Handler

	bbox     Rect
	loaded   Rect
	dest     Rect
	movement Vector

	enabled  bool
	removing bool
	lastHit  Hit

	system *System
	proxy  *resolv.Object
}

// NewObject wraps body. handler may be nil, in which case the default
// compatibility table decides what collides and callbacks are dropped.
func NewObject(body Body, handler Handler) *Object {
	o := &Object{body: body, handler: handler, enabled: true}
	o.bbox = body.Bounds()
	o.loaded = o.bbox
	o.dest = o.bbox
	return o
}

func (o *Object) Body() Body         { return o.body }
func (o *Object) Handler() Handler   { return o.handler }
func (o *Object) BBox() Rect         { return o.bbox }
func (o *Object) Dest() Rect         { return o.dest }
func (o *Object) Movement() Vector   { return o.movement }
func (o *Object) Kind() ColliderKind { return o.body.Kind() }

// LastHit is the aggregated static hit of the previous frame.
func (o *Object) LastHit() Hit { return o.lastHit }

// SetMovement sets the world-space displacement wanted this frame.
func (o *Object) SetMovement(v Vector) {
	o.movement = v
}

func (o *Object) Group() Group {
	return GroupFor(o.body.Kind())
}

func (o *Object) Enable()       { o.enabled = true }
func (o *Object) Disable()      { o.enabled = false }
func (o *Object) Enabled() bool { return o.enabled }

// IsValid reports whether o is eligible for resolution: enabled, with a
// live body and no pending removal. It does not track membership; an
// object that has left its System is eligible again once re-added.
func (o *Object) IsValid() bool {
	return o.enabled && !o.removing && o.body.Exists()
}

func (o *Object) Collides(other *Object, hit Hit) bool {
	if o.handler != nil {
		return o.handler.Collides(other, hit)
	}
	return Compatible(o.Kind(), other.Kind())
}

func (o *Object) Collision(other *Object, hit Hit) HitResponse {
	if o.handler != nil {
		return o.handler.Collision(other, hit)
	}
	return Continue
}

func (o *Object) CollisionSolid(hit Hit) {
	o.lastHit = hit
	if o.handler != nil {
		o.handler.CollisionSolid(hit)
	}
}

// Report records hit as the frame's static result and passes it to
// CollisionSolid when anything was hit.
func (o *Object) Report(hit Hit) {
	o.lastHit = hit
	if hit.Any() {
		o.CollisionSolid(hit)
	}
}

func (o *Object) CollisionTile(attrs TileAttribute) {
	if o.handler != nil {
		o.handler.CollisionTile(attrs)
	}
}

// LoadBBox pulls the box from the body. A degenerate box gets one refresh;
// if it is still empty the stored box is kept.
func (o *Object) LoadBBox() {
	b := o.body.Bounds()
	if b.Empty() {
		o.body.Refresh()
		b = o.body.Bounds()
	}
	if !b.Empty() {
		o.bbox = b
	}
	o.loaded = o.bbox
}

// Commit makes dest the authoritative box and clears the movement.
func (o *Object) Commit(dest Rect) {
	o.bbox = dest
	o.dest = dest
	o.movement = Vector{}
}

// SaveBBox moves the body by however far the box moved since LoadBBox.
func (o *Object) SaveBBox() {
	d := o.bbox.TopLeft().Sub(o.loaded.TopLeft())
	if !d.IsZero() {
		o.body.Translate(d.X, d.Y)
	}
	o.loaded = o.bbox
}

// Valid is the nil-safe form of IsValid for use in callbacks.
func Valid(o *Object) bool {
	return o != nil && o.IsValid()
}
