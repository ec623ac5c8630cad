package components

import (
	"diorama/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Spinner adds a fixed rotation to its node every tick. Rates are radians per
// tick, not per second, so the spin speed follows the frame rate.
type Spinner struct {
	engine.BaseComponent
	Rate rl.Vector3
}

func NewSpinner(rate rl.Vector3) *Spinner {
	return &Spinner{Rate: rate}
}

func (s *Spinner) Update(deltaTime float32) {
	n := s.GetNode()
	if n == nil {
		return
	}
	r := &n.Transform.Rotation
	r.X = spin(r.X, s.Rate.X)
	r.Y = spin(r.Y, s.Rate.Y)
	r.Z = spin(r.Z, s.Rate.Z)
}

func spin(angle, rate float32) float32 {
	if rate == 0 {
		return angle
	}
	return float32(engine.WrapAngle(float64(angle) + float64(rate)))
}
