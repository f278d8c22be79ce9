// Package gamemath holds the per-tick speed rules shared by every moving
// entity.
package gamemath

// ApplyFriction reduces speed toward zero by friction amount.
func ApplyFriction(speed, friction float64) float64 {
	if speed > friction {
		return speed - friction
	}
	if speed < -friction {
		return speed + friction
	}
	return 0
}

// ClampSpeed clamps a value to [-max, max].
func ClampSpeed(speed, max float64) float64 {
	if speed > max {
		return max
	}
	if speed < -max {
		return -max
	}
	return speed
}

// Accelerate adds accel in direction dir (-1, 0 or 1). Friction only
// applies when there is no input, so that a held direction reaches full
// speed even on slow ground.
func Accelerate(speed, accel, friction, max, dir float64) float64 {
	if dir == 0 {
		return ApplyFriction(speed, friction)
	}
	return ClampSpeed(speed+accel*dir, max)
}

// Fall applies one tick of gravity, never exceeding maxFall.
func Fall(speedY, gravity, maxFall float64) float64 {
	speedY += gravity
	if speedY > maxFall {
		return maxFall
	}
	return speedY
}
