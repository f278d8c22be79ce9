package collision

import (
	"fmt"
	"math"
)

// staticSimple resolves the two axes independently against one snapshot
// of the solids around the swept box. Grid-flush contact does not count.
// The horizontal pass only moves the box sideways; any top or bottom
// contact it sees is replaced by what the vertical pass reported.
func (s *System) staticSimple(o *Object, dest Rect, movement Vector) (Rect, Hit) {
	start := dest.Moved(movement.Neg())
	swept := start.Union(dest)
	solids := s.obstacles(o, swept.Grown(1), dest, movement)
	for _, ob := range solids {
		if ob.slope {
			panic(fmt.Sprintf("collision: slope tile at %v in simple resolution", ob.box))
		}
	}
	touched := make(map[*Object]HitResponse)
	admit := func(ob obstacle) bool {
		if ob.other == nil {
			return true
		}
		resp, seen := touched[ob.other]
		if !seen {
			if !ob.other.Collides(o, Hit{}) || !o.Collides(ob.other, Hit{}) {
				resp = AbortMove
			} else {
				resp = ob.other.Collision(o, Hit{})
			}
			touched[ob.other] = resp
		}
		return resp != AbortMove
	}

	w, h := dest.W, dest.H
	box := start.Moved(Vector{Y: movement.Y})

	vc := NewConstraints()
	for _, ob := range solids {
		if !IntersectsSimple(box, ob.box) || !admit(ob) {
			continue
		}
		if below(box, ob.box, movement.Y) {
			vc.ConstrainBottom(ob.box.Top(), ob.velocity.Y)
			vc.Hit.Bottom = true
			vc.GroundMovement = vc.GroundMovement.Add(ob.velocity)
		} else {
			vc.ConstrainTop(ob.box.Bottom(), ob.velocity.Y)
			vc.Hit.Top = true
		}
	}
	bottom, top := !math.IsInf(vc.Bottom(), 1), !math.IsInf(vc.Top(), -1)
	switch {
	case bottom && top && vc.Height()+ShiftDelta < h:
		vc.Hit.Crush = true
	case bottom:
		box = box.withBottom(vc.Bottom()-Delta, h)
	case top:
		box = box.withTop(vc.Top()+Delta, h)
	}
	if vc.Hit.Bottom {
		box = box.Moved(vc.GroundMovement)
	}
	savedTop, savedBottom := vc.Hit.Top, vc.Hit.Bottom

	box = box.Moved(Vector{X: movement.X})
	hc := NewConstraints()
	for _, ob := range solids {
		if !IntersectsSimple(box, ob.box) || !admit(ob) {
			continue
		}
		SetRectangleRectangleConstraints(&hc, box, ob.box, ob.velocity)
	}
	right, left := !math.IsInf(hc.Right(), 1), !math.IsInf(hc.Left(), -1)
	switch {
	case right && left && hc.Width()+ShiftDelta < w:
		hc.Hit.Crush = true
	case right && left:
		box = box.withLeft(hc.XMidpoint()-w/2, w)
	case right:
		box = box.withRight(hc.Right()-Delta, w)
	case left:
		box = box.withLeft(hc.Left()+Delta, w)
	}

	hit := hc.Hit
	hit.Top, hit.Bottom = savedTop, savedBottom
	hit.Crush = hit.Crush || vc.Hit.Crush
	return box, hit
}

// below reports whether obstacle lies under box. Centres decide; on a tie
// the direction of travel does.
func below(box, obstacle Rect, dy float64) bool {
	bc, oc := box.Center().Y, obstacle.Center().Y
	if bc != oc {
		return oc > bc
	}
	return dy >= 0
}
