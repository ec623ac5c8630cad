package diorama

import (
	"errors"
	"fmt"
	"io/fs"
	"math"
	"testing"

	"diorama/internal/assets"
	"diorama/internal/catalog"
	"diorama/internal/components"
	"diorama/internal/config"
	"diorama/internal/engine"
	"diorama/internal/input"
	"diorama/internal/panel"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func expectedCatalog() []string {
	names := []string{
		"UFO-Orbit animation", "UFO-Rotation animation", "UFO", "UFO-Roof", "UFO-Bottom",
		"Station", "Station base", "Station roof",
		"Rail", "TrainRails-Rail-1", "TrainRails-Rail-2",
	}
	for i := 1; i <= 30; i++ {
		names = append(names, fmt.Sprintf("TrainRails-Beam-%d", i))
	}
	names = append(names, "Desk", "Desk-Desktop", "Desk-Leg-1", "Desk-Leg-2", "Desk-Leg-3", "Desk-Leg-4")
	names = append(names,
		"Helicopter", "Helicopter-Body", "Helicopter-Tails", "Helicopter-Propeller",
		"Helicopter-LittlePropeller", "Helicopter-Leg-1", "Helicopter-Leg-1",
		"Helicopter-LegConnector-1", "Helicopter-LegConnector-2",
		"Helicopter-LegConnector-3", "Helicopter-LegConnector-4",
	)
	return append(names, "Ground", "Mountain", "Sun", "Moon")
}

func TestCatalogOrder(t *testing.T) {
	d := Build(nil)

	got := catalog.Names(catalog.Selectable(d.Root, true))
	assert.Equal(t, expectedCatalog(), got)
	assert.Len(t, got, 62)

	meshes := catalog.Selectable(d.Root, false)
	assert.Len(t, meshes, 55)
	for _, n := range meshes {
		assert.Equal(t, engine.KindMesh, n.Kind, n.Name)
	}
}

func TestLightsAndHelpersNotSelectable(t *testing.T) {
	d := Build(nil)
	names := catalog.Names(catalog.Selectable(d.Root, true))
	for _, hidden := range []string{"AxesHelper", "Ambiens fény", "PointLight", "PointLight-Helper", "SpotLight", "SpotLight-Helper", "UFO-Orbit axes"} {
		assert.NotContains(t, names, hidden)
	}
	_, err := catalog.Find(d.Root, "SpotLight")
	assert.ErrorIs(t, err, catalog.ErrNotFound)
}

func TestBuildLiterals(t *testing.T) {
	d := Build(nil)

	ground := d.Root.FindByName("Ground")
	require.NotNil(t, ground)
	assert.InDelta(t, -math.Pi/2, ground.Transform.Rotation.X, 1e-6)
	assert.Equal(t, uint32(0x008000), panel.PackColor(ground.Mesh.Material.Color))

	target := d.CameraTarget()
	assert.InDelta(t, 6, target.X, 1e-5)
	assert.InDelta(t, 42, target.Y, 1e-5)
	assert.InDelta(t, 0, target.Z, 1e-5)
	assert.InDelta(t, 30*math.Pi/180, d.Propeller.Transform.Rotation.Y, 1e-6)
	assert.InDelta(t, -30*math.Pi/180, d.LittlePropeller.Transform.Rotation.X, 1e-6)

	leg := d.Root.FindByName("Desk-Leg-4")
	require.NotNil(t, leg)
	assert.Equal(t, rl.Vector3{X: 1.25, Y: -0.85, Z: 1}, leg.Transform.Position)

	conn := d.Root.FindByName("Helicopter-LegConnector-2")
	require.NotNil(t, conn)
	assert.Equal(t, rl.Vector3{X: 0.5, Y: -0.64375, Z: -0.7}, conn.Transform.Position)

	beam := d.Root.FindByName("TrainRails-Beam-30")
	require.NotNil(t, beam)
	assert.Equal(t, rl.Vector3{X: 1.75, Y: 0.4, Z: 58}, beam.Transform.Position)

	assert.True(t, d.Sun.Visible)
	assert.False(t, d.Moon.Visible)
	assert.True(t, d.Sun.Mesh.Material.Unlit)
	assert.Equal(t, config.Default().Assets.MoonTexture, d.Moon.Mesh.Material.Texture)

	base := d.StationBase.WorldPosition()
	assert.InDelta(t, -15, base.X, 1e-4)
	assert.InDelta(t, 2.5, base.Y, 1e-4)
	assert.InDelta(t, -5, base.Z, 1e-4)
	assert.Same(t, d.StationBase, d.Spot.Target)
}

func TestWithAssets(t *testing.T) {
	a := config.Assets{Chair: "c.obj", Storage: "s.obj", MoonTexture: "m.png"}
	d := Build(nil, WithAssets(a))
	assert.Equal(t, "m.png", d.Moon.Mesh.Material.Texture)
	assert.Equal(t, map[string]string{NameChair: "c.obj", NameStorage: "s.obj", NameMoon: "m.png"}, d.Assets())
}

func TestApplyTogglesDayNight(t *testing.T) {
	d := Build(nil)

	night := panel.DefaultToggleParams()
	night.Illumination = panel.Night
	d.ApplyToggles(night)
	assert.InDelta(t, 0.05, d.Ambient.Intensity, 1e-6)
	assert.Equal(t, uint32(0x6bffff), panel.PackColor(d.Spot.Color))
	assert.InDelta(t, 0.5, d.Spot.Intensity, 1e-6)
	assert.Equal(t, float32(-100), d.SpotNode.Transform.Position.X)
	assert.False(t, d.Sun.Visible)
	assert.True(t, d.Moon.Visible)

	d.ApplyToggles(panel.DefaultToggleParams())
	assert.InDelta(t, 0.5, d.Ambient.Intensity, 1e-6)
	assert.Equal(t, uint32(0xffffff), panel.PackColor(d.Spot.Color))
	assert.InDelta(t, 15, d.Spot.Intensity, 1e-6)
	assert.Equal(t, float32(100), d.SpotNode.Transform.Position.X)
	assert.True(t, d.Sun.Visible)
	assert.False(t, d.Moon.Visible)
}

func TestApplyTogglesLightSwitches(t *testing.T) {
	d := Build(nil)
	tp := panel.DefaultToggleParams()
	tp.SpotLight = false
	d.ApplyToggles(tp)
	assert.False(t, d.SpotNode.Visible)
	assert.True(t, d.PointNode.Visible)
	assert.Equal(t, rl.Vector3{}, d.Spot.Irradiance(d.StationBase.WorldPosition()))

	tp.SpotLight, tp.PointLight = true, false
	d.ApplyToggles(tp)
	assert.True(t, d.SpotNode.Visible)
	assert.False(t, d.PointNode.Visible)
}

func TestApplyAnimation(t *testing.T) {
	d := Build(nil)
	var a panel.Animator
	p := panel.AnimationParams{OrbitSpeed: 0.01, RotationalSpeed: 0.02}
	for range 10 {
		a.Advance(p)
	}
	d.ApplyAnimation(&a)
	assert.InDelta(t, 2*math.Pi-0.1, d.OrbitHolder.Transform.Rotation.Y, 1e-5)
	assert.InDelta(t, 2*math.Pi-0.2, d.RotationHolder.Transform.Rotation.Y, 1e-5)
}

func TestComponentsDriveHelicopter(t *testing.T) {
	flags := &input.Flags{}
	d := Build(flags)
	d.Scene.Start()

	flags.Up = true
	flags.Right = true
	for range 5 {
		d.Scene.Update(1.0 / 60)
	}
	pos := d.CameraTarget()
	assert.InDelta(t, 5.5, pos.X, 1e-4)
	assert.InDelta(t, 42.5, pos.Y, 1e-4)
	assert.InDelta(t, 30*math.Pi/180+0.25, d.Propeller.Transform.Rotation.Y, 1e-5)
	// -30° plus five 0.2 steps, wrapped once through zero.
	assert.InDelta(t, -30*math.Pi/180+1.0, d.LittlePropeller.Transform.Rotation.X, 1e-4)

	helper := d.Root.FindByName("PointLight-Helper")
	require.NotNil(t, helper)
	assert.Equal(t, d.PointNode.WorldPosition(), helper.Transform.Position)
	assert.Equal(t, rl.White, engine.GetComponent[*components.LightHelper](helper).Color())
}

func TestAttachModels(t *testing.T) {
	d := Build(nil)

	chair, err := d.Attach(assets.Result{Name: NameChair, Path: "assets/models/chair.obj", Kind: assets.KindModel})
	require.NoError(t, err)
	assert.Equal(t, rl.Vector3{X: -18, Y: 0.697, Z: 8}, chair.Transform.Position)
	assert.InDelta(t, math.Pi/2, chair.Transform.Rotation.Y, 1e-6)
	assert.Equal(t, uint32(0x200d06), panel.PackColor(chair.Mesh.Material.Color))
	assert.Equal(t, engine.GeometryModel, chair.Mesh.Geometry.Type)

	storage, err := d.Attach(assets.Result{Name: NameStorage, Path: "assets/models/storage.obj", Kind: assets.KindModel})
	require.NoError(t, err)
	assert.Equal(t, uint32(0xa09600), panel.PackColor(storage.Mesh.Material.Color))

	names := catalog.Names(catalog.Selectable(d.Root, true))
	assert.Equal(t, []string{"Moon", "Chair", "Storage"}, names[len(names)-3:])

	again, err := d.Attach(assets.Result{Name: NameChair, Path: "assets/models/chair.obj", Kind: assets.KindModel})
	require.NoError(t, err)
	assert.Same(t, chair, again)
	assert.Len(t, catalog.Selectable(d.Root, true), 64)

	p := panel.New(d.Root)
	require.NoError(t, p.Select(NameChair))
	assert.InDelta(t, 0.697, p.ObjectParams().PositionY, 1e-6)
	assert.InDelta(t, 90, p.ObjectParams().RotationY, 1e-4)
}

func TestAttachFailures(t *testing.T) {
	d := Build(nil)
	before := len(catalog.Selectable(d.Root, true))

	loadErr := &assets.LoadError{Name: NameChair, Path: "chair.obj", Err: fs.ErrNotExist}
	n, err := d.Attach(assets.Result{Name: NameChair, Err: loadErr})
	assert.Nil(t, n)
	assert.True(t, errors.Is(err, fs.ErrNotExist))

	n, err = d.Attach(assets.Result{Name: "Teapot", Path: "teapot.obj"})
	assert.Nil(t, n)
	assert.ErrorIs(t, err, ErrUnknownAsset)

	n, err = d.Attach(assets.Result{Name: NameMoon, Path: "moon.jpg", Kind: assets.KindTexture})
	assert.Nil(t, n)
	assert.NoError(t, err)

	assert.Len(t, catalog.Selectable(d.Root, true), before)
	_, err = catalog.Find(d.Root, NameChair)
	assert.ErrorIs(t, err, catalog.ErrNotFound)
}
