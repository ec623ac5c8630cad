package panel

import "diorama/internal/engine"

// Animator accumulates the UFO orbit and spin angles in radians. The
// accumulators decrease without bound; they are only reduced to [0, 2π) when
// read as node rotations.
type Animator struct {
	Orbit float64
	Spin  float64
}

// Advance moves both accumulators one tick backwards by the bag speeds.
func (a *Animator) Advance(p AnimationParams) {
	a.Orbit -= float64(p.OrbitSpeed)
	a.Spin -= float64(p.RotationalSpeed)
}

func (a *Animator) OrbitAngle() float32 {
	return float32(engine.WrapAngle(a.Orbit))
}

func (a *Animator) SpinAngle() float32 {
	return float32(engine.WrapAngle(a.Spin))
}
