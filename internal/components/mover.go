package components

import (
	"diorama/internal/engine"
	"diorama/internal/input"
)

// DefaultStep is the distance the helicopter moves per tick per held key.
const DefaultStep = 0.1

// Mover translates its node along the world axes while movement flags are
// held: forward is +Z, left is +X, up is +Y.
type Mover struct {
	engine.BaseComponent
	Flags *input.Flags
	Step  float32
}

func NewMover(flags *input.Flags) *Mover {
	return &Mover{Flags: flags, Step: DefaultStep}
}

func (m *Mover) Update(deltaTime float32) {
	n := m.GetNode()
	if n == nil || m.Flags == nil || !m.Flags.Any() {
		return
	}
	f := m.Flags
	p := &n.Transform.Position
	if f.Forward {
		p.Z += m.Step
	}
	if f.Backward {
		p.Z -= m.Step
	}
	if f.Left {
		p.X += m.Step
	}
	if f.Right {
		p.X -= m.Step
	}
	if f.Up {
		p.Y += m.Step
	}
	if f.Down {
		p.Y -= m.Step
	}
}
