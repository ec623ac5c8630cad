package panel

import rl "github.com/gen2brain/raylib-go/raylib"

// ObjectParams mirrors the selected node's transform and material.
// Rotation is in degrees.
type ObjectParams struct {
	SelectedName string

	PositionX float32
	PositionY float32
	PositionZ float32

	RotationX float32
	RotationY float32
	RotationZ float32

	ScaleX float32
	ScaleY float32
	ScaleZ float32

	// Color is packed as 0xRRGGBB.
	Color         uint32
	WallsDisabled bool
}

func DefaultObjectParams() ObjectParams {
	p := ObjectParams{Color: 0xffffff}
	p.resetTransform()
	return p
}

func (p *ObjectParams) resetTransform() {
	p.PositionX, p.PositionY, p.PositionZ = 0, 0, 0
	p.RotationX, p.RotationY, p.RotationZ = 0, 0, 0
	p.ScaleX, p.ScaleY, p.ScaleZ = 1, 1, 1
	p.WallsDisabled = false
}

type AnimationParams struct {
	OrbitSpeed      float32
	RotationalSpeed float32
}

const DefaultSpeed = 0.01

func DefaultAnimationParams() AnimationParams {
	return AnimationParams{OrbitSpeed: DefaultSpeed, RotationalSpeed: DefaultSpeed}
}

type Illumination string

const (
	Day   Illumination = "day"
	Night Illumination = "night"
)

// Illuminations lists the selectable modes in display order.
var Illuminations = []Illumination{Day, Night}

type ToggleParams struct {
	// WallsDisabled forces wireframe on every selectable mesh.
	WallsDisabled bool
	Illumination  Illumination
	SpotLight     bool
	PointLight    bool
}

func DefaultToggleParams() ToggleParams {
	return ToggleParams{
		Illumination: Day,
		SpotLight:    true,
		PointLight:   true,
	}
}

// Range is the editable span of a numeric field.
type Range struct {
	Min, Max, Step float32
}

// Field ranges used by the panel widgets. Values outside are not rejected.
var (
	PositionRange = Range{Min: -100, Max: 100, Step: 0.1}
	RotationRange = Range{Min: -180, Max: 180, Step: 0.1}
	ScaleRange    = Range{Min: 0, Max: 3, Step: 0.01}
	SpeedRange    = Range{Min: 0, Max: 0.1, Step: 0.001}
)

// Snap rounds v to the range step.
func (r Range) Snap(v float32) float32 {
	if r.Step <= 0 {
		return v
	}
	steps := float64(v-r.Min) / float64(r.Step)
	if steps < 0 {
		steps -= 0.5
	} else {
		steps += 0.5
	}
	return r.Min + float32(int64(steps))*r.Step
}

// PackColor packs c as 0xRRGGBB, dropping alpha.
func PackColor(c rl.Color) uint32 {
	return uint32(c.R)<<16 | uint32(c.G)<<8 | uint32(c.B)
}

// UnpackColor expands 0xRRGGBB into an opaque color.
func UnpackColor(hex uint32) rl.Color {
	return rl.NewColor(uint8(hex>>16), uint8(hex>>8), uint8(hex), 255)
}
