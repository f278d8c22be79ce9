package collision

import "math"

// Constraints accumulates one-sided bounds from every obstacle found in a
// resolution pass. The most restrictive bound on each side wins.
type Constraints struct {
	// GroundMovement is carried onto the object when it lands, e.g. a platform ride.
	GroundMovement Vector
	Hit            Hit

	left, right, top, bottom         float64
	leftVel, rightVel, topVel, botVel float64
}

func NewConstraints() Constraints {
	return Constraints{
		left:   math.Inf(-1),
		right:  math.Inf(1),
		top:    math.Inf(-1),
		bottom: math.Inf(1),
	}
}

// HasConstraints reports whether any bound is finite.
func (c *Constraints) HasConstraints() bool {
	return c.left > math.Inf(-1) ||
		c.right < math.Inf(1) ||
		c.top > math.Inf(-1) ||
		c.bottom < math.Inf(1)
}

// ConstrainLeft raises the left bound to position. velocity is the speed
// of the obstacle that set it.
func (c *Constraints) ConstrainLeft(position, velocity float64) {
	if position > c.left {
		c.left = position
		c.leftVel = velocity
	}
}

func (c *Constraints) ConstrainRight(position, velocity float64) {
	if position < c.right {
		c.right = position
		c.rightVel = velocity
	}
}

func (c *Constraints) ConstrainTop(position, velocity float64) {
	if position > c.top {
		c.top = position
		c.topVel = velocity
	}
}

func (c *Constraints) ConstrainBottom(position, velocity float64) {
	if position < c.bottom {
		c.bottom = position
		c.botVel = velocity
	}
}

// Merge folds other into c.
func (c *Constraints) Merge(other Constraints) {
	c.ConstrainLeft(other.left, other.leftVel)
	c.ConstrainRight(other.right, other.rightVel)
	c.ConstrainTop(other.top, other.topVel)
	c.ConstrainBottom(other.bottom, other.botVel)
	c.Hit = c.Hit.Merge(other.Hit)
	c.GroundMovement = c.GroundMovement.Add(other.GroundMovement)
}

func (c *Constraints) Left() float64   { return c.left }
func (c *Constraints) Right() float64  { return c.right }
func (c *Constraints) Top() float64    { return c.top }
func (c *Constraints) Bottom() float64 { return c.bottom }

func (c *Constraints) LeftVelocity() float64   { return c.leftVel }
func (c *Constraints) RightVelocity() float64  { return c.rightVel }
func (c *Constraints) TopVelocity() float64    { return c.topVel }
func (c *Constraints) BottomVelocity() float64 { return c.botVel }

// Width is the room between the horizontal bounds; +Inf when either is open.
func (c *Constraints) Width() float64 {
	return c.right - c.left
}

func (c *Constraints) Height() float64 {
	return c.bottom - c.top
}

func (c *Constraints) XMidpoint() float64 {
	return 0.5 * (c.left + c.right)
}
