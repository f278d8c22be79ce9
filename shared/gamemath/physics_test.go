package gamemath

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestApplyFriction(t *testing.T) {
	tests := []struct {
		name     string
		speed    float64
		friction float64
		want     float64
	}{
		{"slows positive", 3, 0.5, 2.5},
		{"slows negative", -3, 0.5, -2.5},
		{"stops inside friction", 0.3, 0.5, 0},
		{"stops negative inside friction", -0.5, 0.5, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ApplyFriction(tt.speed, tt.friction))
		})
	}
}

func TestClampSpeed(t *testing.T) {
	assert.Equal(t, 5.0, ClampSpeed(9, 5))
	assert.Equal(t, -5.0, ClampSpeed(-9, 5))
	assert.Equal(t, 2.0, ClampSpeed(2, 5))
}

func TestAccelerate(t *testing.T) {
	assert.Equal(t, 1.0, Accelerate(0.25, 0.75, 0.5, 5, 1))
	assert.Equal(t, 5.0, Accelerate(4.5, 0.75, 0.5, 5, 1))
	assert.Equal(t, -0.75, Accelerate(0, 0.75, 0.5, 5, -1))
	assert.Equal(t, 1.5, Accelerate(2, 0.75, 0.5, 5, 0), "no input means friction")
}

func TestFall(t *testing.T) {
	assert.Equal(t, 1.75, Fall(1, 0.75, 10))
	assert.Equal(t, 10.0, Fall(9.5, 0.75, 10))
	assert.Equal(t, -2.25, Fall(-3, 0.75, 10))
}
