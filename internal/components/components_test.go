package components

import (
	"math"
	"testing"

	"diorama/internal/engine"
	"diorama/internal/input"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSpinnerPerTick(t *testing.T) {
	n := engine.NewNode("Helicopter-Propeller", engine.KindMesh)
	n.Transform.Rotation.Y = float32(30 * math.Pi / 180)
	s := NewSpinner(rl.Vector3{Y: 0.05})
	n.AddComponent(s)

	for range 10 {
		n.Update(1.0 / 60)
	}
	assert.InDelta(t, 30*math.Pi/180+0.5, n.Transform.Rotation.Y, 1e-5)
	assert.Zero(t, n.Transform.Rotation.X)

	// deltaTime is ignored
	n.Update(10)
	assert.InDelta(t, 30*math.Pi/180+0.55, n.Transform.Rotation.Y, 1e-5)
}

func TestSpinnerWraps(t *testing.T) {
	n := engine.NewNode("Helicopter-LittlePropeller", engine.KindMesh)
	n.AddComponent(NewSpinner(rl.Vector3{X: 0.2}))
	for range 10000 {
		n.Update(0)
	}
	x := n.Transform.Rotation.X
	assert.GreaterOrEqual(t, x, float32(0))
	assert.Less(t, x, float32(2*math.Pi))
	assert.InDelta(t, math.Mod(2000, 2*math.Pi), x, 1e-2)
}

func TestSpinnerWithoutNode(t *testing.T) {
	s := NewSpinner(rl.Vector3{Y: 1})
	assert.NotPanics(t, func() { s.Update(0) })
}

func TestMoverDirections(t *testing.T) {
	flags := &input.Flags{}
	heli := engine.NewNode("Helicopter", engine.KindGroup)
	heli.Transform.Position = rl.Vector3{X: 6, Y: 42, Z: 0}
	heli.AddComponent(NewMover(flags))

	heli.Update(0)
	assert.Equal(t, rl.Vector3{X: 6, Y: 42, Z: 0}, heli.Transform.Position)

	flags.Forward = true
	flags.Left = true
	flags.Up = true
	for range 10 {
		heli.Update(0)
	}
	p := heli.Transform.Position
	assert.InDelta(t, 7, p.X, 1e-4)
	assert.InDelta(t, 43, p.Y, 1e-4)
	assert.InDelta(t, 1, p.Z, 1e-4)

	*flags = input.Flags{Backward: true, Right: true, Down: true}
	for range 10 {
		heli.Update(0)
	}
	p = heli.Transform.Position
	assert.InDelta(t, 6, p.X, 1e-4)
	assert.InDelta(t, 42, p.Y, 1e-4)
	assert.InDelta(t, 0, p.Z, 1e-4)
}

func TestMoverOpposingKeysCancel(t *testing.T) {
	flags := &input.Flags{Forward: true, Backward: true}
	n := engine.NewNode("Helicopter", engine.KindGroup)
	n.AddComponent(NewMover(flags))
	n.Update(0)
	assert.InDelta(t, 0, n.Transform.Position.Z, 1e-6)
}

func TestAmbientLight(t *testing.T) {
	n := engine.NewNode("Ambiens fény", engine.KindOther)
	a := NewAmbientLight(rl.NewColor(255, 0, 0, 255), 0.5)
	n.AddComponent(a)

	got := a.Irradiance(rl.Vector3{})
	assert.InDelta(t, 0.5, got.X, 1e-6)
	assert.Zero(t, got.Y)

	n.Visible = false
	assert.Equal(t, rl.Vector3{}, a.Irradiance(rl.Vector3{}))
}

func TestPointLightFalloff(t *testing.T) {
	n := engine.NewNode("PointLight", engine.KindOther)
	p := NewPointLight(rl.White, 2, 70, 2)
	n.AddComponent(p)

	near := p.Irradiance(rl.Vector3{})
	assert.InDelta(t, 2, near.X, 1e-5)

	half := p.Irradiance(rl.Vector3{X: 35})
	assert.InDelta(t, 0.5, half.X, 1e-5)

	assert.Equal(t, rl.Vector3{}, p.Irradiance(rl.Vector3{X: 80}))
}

func TestPointLightHiddenByParent(t *testing.T) {
	root := engine.NewNode("root", engine.KindOther)
	n := engine.NewNode("PointLight", engine.KindOther)
	root.AddChild(n)
	p := NewPointLight(rl.White, 1, 0, 0)
	n.AddComponent(p)

	assert.InDelta(t, 1, p.Irradiance(rl.Vector3{X: 1000}).X, 1e-6)
	root.Visible = false
	assert.Equal(t, rl.Vector3{}, p.Irradiance(rl.Vector3{}))
}

func TestSpotLightCone(t *testing.T) {
	target := engine.NewNode("Station base", engine.KindMesh)
	n := engine.NewNode("SpotLight", engine.KindOther)
	n.Transform.Position = rl.Vector3{Y: 10}
	s := NewSpotLight(rl.White, 1, 0, math.Pi/6, 0, target)
	s.Decay = 0
	n.AddComponent(s)

	dir := s.Direction()
	assert.InDelta(t, -1, dir.Y, 1e-6)

	assert.InDelta(t, 1, s.Irradiance(rl.Vector3{}).X, 1e-5)
	// 45 degrees off axis is outside a 30 degree cone.
	assert.Equal(t, rl.Vector3{}, s.Irradiance(rl.Vector3{X: 10}))
}

func TestSpotLightPenumbraFades(t *testing.T) {
	n := engine.NewNode("SpotLight", engine.KindOther)
	n.Transform.Position = rl.Vector3{Y: 10}
	s := NewSpotLight(rl.White, 1, 0, math.Pi/6, 0.8, nil)
	s.Decay = 0
	n.AddComponent(s)

	center := s.Irradiance(rl.Vector3{}).X
	// 20 degrees off axis sits in the penumbra.
	edge := s.Irradiance(rl.Vector3{X: float32(10 * math.Tan(20*math.Pi/180))}).X
	require.InDelta(t, 1, center, 1e-5)
	assert.Greater(t, edge, float32(0))
	assert.Less(t, edge, center)
}

func TestLightsImplementLight(t *testing.T) {
	lights := []Light{
		NewAmbientLight(rl.White, 1),
		NewPointLight(rl.White, 1, 0, 0),
		NewSpotLight(rl.White, 1, 0, 1, 0, nil),
	}
	for _, l := range lights {
		assert.Equal(t, rl.Vector3{}, l.Irradiance(rl.Vector3{}), "detached lights are dark")
	}
}
