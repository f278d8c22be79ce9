package collision

import (
	"fmt"
	"strings"
)

// Tuned resolution constants. Changing any of them changes how levels feel.
const (
	// ShiftDelta is the overlap below which an object is shifted out of a
	// near-miss instead of being stopped.
	ShiftDelta = 7.0
	// Delta is the gap left between a resolved object and its obstacle.
	Delta = 0.002
	// MaxSpeed caps the per-tick displacement of any object.
	MaxSpeed = 16.0
	// RDelta is how far a slope reference corner may sit outside the
	// triangle's half before plain box resolution takes over.
	RDelta = 3.0
)

// slopeOutset is added to the plane penetration depth when pushing out of a slope.
const slopeOutset = 0.2

// Group classifies how an object takes part in resolution.
type Group int

const (
	GroupDisabled Group = iota
	// GroupMoving objects collide with statics, tiles, touchables and each other.
	GroupMoving
	// GroupMovingStatic objects move and also act as statics for others.
	GroupMovingStatic
	// GroupMovingOnlyStatic objects only collide with statics and tiles.
	GroupMovingOnlyStatic
	GroupStatic
	// GroupTouchable objects are sensors: reported, never pushed.
	GroupTouchable
)

func (g Group) String() string {
	switch g {
	case GroupDisabled:
		return "disabled"
	case GroupMoving:
		return "moving"
	case GroupMovingStatic:
		return "moving-static"
	case GroupMovingOnlyStatic:
		return "moving-only-static"
	case GroupStatic:
		return "static"
	case GroupTouchable:
		return "touchable"
	}
	return fmt.Sprintf("Group(%d)", int(g))
}

func (g Group) moving() bool {
	return g == GroupMoving || g == GroupMovingStatic || g == GroupMovingOnlyStatic
}

// dynamic groups take part in the touchable and object-object phases.
func (g Group) dynamic() bool {
	return g == GroupMoving || g == GroupMovingStatic
}

func (g Group) solid() bool {
	return g == GroupStatic || g == GroupMovingStatic
}

// ColliderKind is the classification an entity gives its collider.
type ColliderKind int

const (
	KindNone ColliderKind = iota
	KindPlayer
	KindEnemy
	KindPushable
	KindProjectile
	KindBlock
	KindPlatform
	KindSensor
)

func (k ColliderKind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindPlayer:
		return "player"
	case KindEnemy:
		return "enemy"
	case KindPushable:
		return "pushable"
	case KindProjectile:
		return "projectile"
	case KindBlock:
		return "block"
	case KindPlatform:
		return "platform"
	case KindSensor:
		return "sensor"
	}
	return fmt.Sprintf("ColliderKind(%d)", int(k))
}

// GroupFor maps a collider classification to its group. The mapping is
// closed: an unknown kind is an integration bug and panics.
func GroupFor(k ColliderKind) Group {
	switch k {
	case KindNone:
		return GroupDisabled
	case KindPlayer, KindEnemy:
		return GroupMoving
	case KindPushable, KindPlatform:
		return GroupMovingStatic
	case KindProjectile:
		return GroupMovingOnlyStatic
	case KindBlock:
		return GroupStatic
	case KindSensor:
		return GroupTouchable
	}
	panic(fmt.Sprintf("collision: unmapped collider kind %d", int(k)))
}

// ParseKind converts a level-data class name to a ColliderKind.
func ParseKind(name string) (ColliderKind, error) {
	for k := KindNone; k <= KindSensor; k++ {
		if k.String() == strings.ToLower(strings.TrimSpace(name)) {
			return k, nil
		}
	}
	return KindNone, fmt.Errorf("unknown collider kind %q", name)
}

type kindPair struct{ a, b ColliderKind }

// compatible lists the pairs that collide when neither side installs a Handler.
var compatible = map[kindPair]bool{
	{KindPlayer, KindBlock}:        true,
	{KindPlayer, KindPlatform}:     true,
	{KindPlayer, KindPushable}:     true,
	{KindPlayer, KindEnemy}:        true,
	{KindPlayer, KindPlayer}:       true,
	{KindPlayer, KindSensor}:       true,
	{KindEnemy, KindBlock}:         true,
	{KindEnemy, KindPlatform}:      true,
	{KindEnemy, KindPushable}:      true,
	{KindEnemy, KindEnemy}:         true,
	{KindEnemy, KindSensor}:        true,
	{KindPushable, KindBlock}:      true,
	{KindPushable, KindPlatform}:   true,
	{KindPushable, KindPushable}:   true,
	{KindPushable, KindSensor}:     true,
	{KindProjectile, KindBlock}:    true,
	{KindProjectile, KindPlatform}: true,
	{KindProjectile, KindPushable}: true,
	{KindPlatform, KindBlock}:      true,
	{KindPlatform, KindPlatform}:   true,
}

// Compatible reports whether two kinds collide by default. The table is symmetric.
func Compatible(a, b ColliderKind) bool {
	if v, ok := compatible[kindPair{a, b}]; ok {
		return v
	}
	return compatible[kindPair{b, a}]
}

// HitResponse is an object's reaction to a confirmed dynamic collision.
type HitResponse int

const (
	// AbortMove leaves both objects where they are for this pair.
	AbortMove HitResponse = iota
	// Continue separates the pair.
	Continue
	// ForceMove makes this side kinematic: only the other side is pushed.
	ForceMove
)

func (r HitResponse) String() string {
	switch r {
	case AbortMove:
		return "abort"
	case Continue:
		return "continue"
	case ForceMove:
		return "force"
	}
	return fmt.Sprintf("HitResponse(%d)", int(r))
}

// TileAttribute is a bitmask describing a tile.
type TileAttribute uint32

const (
	TileSolid TileAttribute = 1 << iota
	TileUnisolid
	_
	_
	TileSlope
	_
	_
	_
	TileIce
	TileWater
	TileHurts
)

// FirstInterestingFlag is the lowest attribute reported through CollisionTile.
const FirstInterestingFlag = TileIce

func (a TileAttribute) Has(f TileAttribute) bool {
	return a&f != 0
}

var attributeNames = []struct {
	name string
	attr TileAttribute
}{
	{"solid", TileSolid},
	{"unisolid", TileUnisolid},
	{"slope", TileSlope},
	{"ice", TileIce},
	{"water", TileWater},
	{"hurts", TileHurts},
}

func (a TileAttribute) String() string {
	var parts []string
	for _, n := range attributeNames {
		if a.Has(n.attr) {
			parts = append(parts, n.name)
		}
	}
	return strings.Join(parts, ",")
}

// ParseAttributes reads a comma separated attribute list such as "solid,ice".
func ParseAttributes(s string) (TileAttribute, error) {
	var out TileAttribute
	for _, field := range strings.Split(s, ",") {
		field = strings.ToLower(strings.TrimSpace(field))
		if field == "" {
			continue
		}
		found := false
		for _, n := range attributeNames {
			if n.name == field {
				out |= n.attr
				found = true
				break
			}
		}
		if !found {
			return 0, fmt.Errorf("unknown tile attribute %q", field)
		}
	}
	return out, nil
}

// Tile is what a tile layer reports for one cell.
type Tile struct {
	Attributes TileAttribute
	// Data holds the slope direction for slope tiles.
	Data int
}

// IsSolid reports whether the tile blocks movement at all; jump-through
// and slope tiles count as solid.
func (t Tile) IsSolid() bool {
	return t.Attributes.Has(TileSolid | TileUnisolid | TileSlope)
}

func (t Tile) IsUnisolid() bool {
	return t.Attributes.Has(TileUnisolid)
}

func (t Tile) IsSlope() bool {
	return t.Attributes.Has(TileSlope)
}

// unisolidBlocks reports whether a jump-through surface stops an object
// whose box before moving was prev. Only a descent from above is blocked.
func unisolidBlocks(tile, prev Rect, movement Vector) bool {
	return movement.Y >= 0 && prev.Bottom()-ShiftDelta <= tile.Top()
}

// collisionful is the attribute-phase variant of a solidity test.
func (t Tile) collisionful(tile, dest Rect, movement Vector) bool {
	if !t.IsUnisolid() {
		return true
	}
	return unisolidBlocks(tile, dest.Moved(movement.Neg()), movement)
}
