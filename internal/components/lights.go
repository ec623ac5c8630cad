package components

import (
	"math"

	"diorama/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Light is a component that lights a point in world space. Irradiance returns
// linear RGB, zero when the light's node is hidden.
type Light interface {
	engine.Component
	Irradiance(pos rl.Vector3) rl.Vector3
}

func colorVector(c rl.Color, intensity float32) rl.Vector3 {
	return rl.Vector3{
		X: float32(c.R) / 255.0 * intensity,
		Y: float32(c.G) / 255.0 * intensity,
		Z: float32(c.B) / 255.0 * intensity,
	}
}

func lit(n *engine.Node) bool {
	return n != nil && n.WorldVisible()
}

type AmbientLight struct {
	engine.BaseComponent
	Color     rl.Color
	Intensity float32
}

func NewAmbientLight(color rl.Color, intensity float32) *AmbientLight {
	return &AmbientLight{Color: color, Intensity: intensity}
}

func (a *AmbientLight) Irradiance(rl.Vector3) rl.Vector3 {
	if !lit(a.GetNode()) {
		return rl.Vector3{}
	}
	return colorVector(a.Color, a.Intensity)
}

type PointLight struct {
	engine.BaseComponent
	Color     rl.Color
	Intensity float32
	// Distance is the range cutoff; zero means unlimited.
	Distance float32
	Decay    float32
}

func NewPointLight(color rl.Color, intensity, distance, decay float32) *PointLight {
	return &PointLight{
		Color:     color,
		Intensity: intensity,
		Distance:  distance,
		Decay:     decay,
	}
}

func (p *PointLight) Position() rl.Vector3 {
	if n := p.GetNode(); n != nil {
		return n.WorldPosition()
	}
	return rl.Vector3Zero()
}

func (p *PointLight) Irradiance(pos rl.Vector3) rl.Vector3 {
	if !lit(p.GetNode()) {
		return rl.Vector3{}
	}
	a := attenuation(rl.Vector3Distance(p.Position(), pos), p.Distance, p.Decay)
	return colorVector(p.Color, p.Intensity*a)
}

// attenuation fades from 1 at the light to 0 at cutoff.
func attenuation(d, cutoff, decay float32) float32 {
	if cutoff <= 0 || decay <= 0 {
		return 1
	}
	f := 1 - d/cutoff
	if f <= 0 {
		return 0
	}
	return float32(math.Pow(float64(f), float64(decay)))
}

type SpotLight struct {
	engine.BaseComponent
	Color     rl.Color
	Intensity float32
	Distance  float32
	Decay     float32
	// Angle is the cone half-angle in radians.
	Angle float32
	// Penumbra is the fraction of the cone that fades out, 0..1.
	Penumbra float32
	Target   *engine.Node
}

func NewSpotLight(color rl.Color, intensity, distance, angle, penumbra float32, target *engine.Node) *SpotLight {
	return &SpotLight{
		Color:     color,
		Intensity: intensity,
		Distance:  distance,
		Decay:     2,
		Angle:     angle,
		Penumbra:  penumbra,
		Target:    target,
	}
}

func (s *SpotLight) Position() rl.Vector3 {
	if n := s.GetNode(); n != nil {
		return n.WorldPosition()
	}
	return rl.Vector3Zero()
}

// Direction points from the light to its target, or straight down without one.
func (s *SpotLight) Direction() rl.Vector3 {
	if s.Target == nil {
		return rl.Vector3{Y: -1}
	}
	d := rl.Vector3Subtract(s.Target.WorldPosition(), s.Position())
	if rl.Vector3Length(d) == 0 {
		return rl.Vector3{Y: -1}
	}
	return rl.Vector3Normalize(d)
}

func (s *SpotLight) Irradiance(pos rl.Vector3) rl.Vector3 {
	if !lit(s.GetNode()) {
		return rl.Vector3{}
	}
	toPos := rl.Vector3Subtract(pos, s.Position())
	d := rl.Vector3Length(toPos)
	if d == 0 {
		return colorVector(s.Color, s.Intensity)
	}
	cosTheta := rl.Vector3DotProduct(rl.Vector3Scale(toPos, 1/d), s.Direction())
	outer := float32(math.Cos(float64(s.Angle)))
	inner := float32(math.Cos(float64(s.Angle * (1 - s.Penumbra))))
	cone := smoothstep(outer, inner, cosTheta)
	if cone == 0 {
		return rl.Vector3{}
	}
	return colorVector(s.Color, s.Intensity*cone*attenuation(d, s.Distance, s.Decay))
}

func smoothstep(edge0, edge1, x float32) float32 {
	if edge1 == edge0 {
		if x >= edge1 {
			return 1
		}
		return 0
	}
	t := (x - edge0) / (edge1 - edge0)
	t = max(0, min(1, t))
	return t * t * (3 - 2*t)
}
