// Package diorama assembles the railway diorama scene and maps the toggle and
// animation bags onto it.
package diorama

import (
	"errors"
	"fmt"
	"math"

	"diorama/internal/assets"
	"diorama/internal/components"
	"diorama/internal/config"
	"diorama/internal/engine"
	"diorama/internal/input"
	"diorama/internal/panel"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Names of nodes the session and the tests look up.
const (
	NameChair      = "Chair"
	NameStorage    = "Storage"
	NameMoon       = "Moon"
	NameSun        = "Sun"
	NameHelicopter = "Helicopter"
)

// ErrUnknownAsset is returned by Attach for a result it has no slot for.
var ErrUnknownAsset = errors.New("unknown asset")

// Camera start pose.
var (
	CameraPosition = rl.Vector3{X: 0, Y: 45, Z: 5}
	CameraFovy     = float32(75)
)

const (
	dayAmbient     = 0.5
	nightAmbient   = 0.05
	daySpot        = 15
	nightSpot      = 0.5
	spotDayX       = 100
	spotNightX     = -100
	nightSpotColor = 0x6bffff
)

type Diorama struct {
	Scene *engine.Scene
	Root  *engine.Node

	StationBase     *engine.Node
	Helicopter      *engine.Node
	Propeller       *engine.Node
	LittlePropeller *engine.Node
	OrbitHolder     *engine.Node
	RotationHolder  *engine.Node
	UFO             *engine.Node
	Sun             *engine.Node
	Moon            *engine.Node

	AmbientNode *engine.Node
	Ambient     *components.AmbientLight
	PointNode   *engine.Node
	Point       *components.PointLight
	SpotNode    *engine.Node
	Spot        *components.SpotLight

	assets config.Assets
}

type Option func(*Diorama)

// WithAssets sets the files loaded for the chair, the storage box and the moon.
func WithAssets(a config.Assets) Option {
	return func(d *Diorama) {
		d.assets = a
	}
}

func hex(c uint32) rl.Color {
	return panel.UnpackColor(c)
}

func deg(d float64) float32 {
	return float32(d * math.Pi / 180)
}

func mesh(name string, g engine.Geometry, color uint32) *engine.Node {
	return engine.NewMesh(name, g, engine.Material{Color: hex(color)})
}

func at(n *engine.Node, x, y, z float32) *engine.Node {
	n.Transform.Position = rl.Vector3{X: x, Y: y, Z: z}
	return n
}

// Build assembles the full scene. flags drives the helicopter; it may be nil.
// The chair and storage models are not part of the tree until Attach.
func Build(flags *input.Flags, opts ...Option) *Diorama {
	d := &Diorama{
		Scene:  engine.NewScene("Diorama"),
		assets: config.Default().Assets,
	}
	for _, opt := range opts {
		opt(d)
	}
	d.Root = d.Scene.Root

	axes := engine.NewNode("AxesHelper", engine.KindHelper)
	axes.AddComponent(components.NewAxesHelper(20))
	d.Scene.Add(axes)

	ground := mesh("Ground", engine.Plane(120, 120), 0x008000)
	ground.Transform.Rotation.X = -math.Pi / 2
	d.Scene.Add(ground)

	d.buildStation()
	d.buildRails()

	d.Scene.Add(at(mesh("Mountain", engine.Cone(24, 64, 32), 0x8effff), 27, 32, 12))

	d.buildDesk()
	d.buildHelicopter(flags)
	d.buildUFO()
	d.buildLights()

	d.Sun = at(mesh(NameSun, engine.Sphere(10, 20), 0xfffe0f), 100, 58, 0)
	d.Sun.Mesh.Material.Unlit = true
	d.Scene.Add(d.Sun)

	d.Moon = at(mesh(NameMoon, engine.Sphere(5, 15), 0xffffff), -100, 58, 0)
	d.Moon.Mesh.Material.Unlit = true
	d.Moon.Mesh.Material.Texture = d.assets.MoonTexture
	d.Moon.Visible = false
	d.Scene.Add(d.Moon)

	return d
}

func (d *Diorama) buildStation() {
	station := at(engine.NewNode("Station", engine.KindGroup), -15, 2.5, -5)
	d.Scene.Add(station)

	d.StationBase = mesh("Station base", engine.Box(2, 5, 20), 0xffffff)
	station.AddChild(d.StationBase)

	roof := at(mesh("Station roof", engine.Cone(1.42, 6, 4), 0xffffff), 0, 5.5, 0)
	roof.Transform.Rotation.Y = deg(45)
	station.AddChild(roof)
}

func (d *Diorama) buildRails() {
	rails := at(engine.NewNode("Rail", engine.KindGroup), -8, 0, 0)
	d.Scene.Add(rails)

	for i, x := range []float32{0, 3.5} {
		rail := at(mesh(fmt.Sprintf("TrainRails-Rail-%d", i+1), engine.Box(120, 0.8, 0.8), 0xa2a2a2), x, 0.4, 0)
		rail.Transform.Rotation.Y = math.Pi / 2
		rails.AddChild(rail)
	}
	for i := range 30 {
		beam := mesh(fmt.Sprintf("TrainRails-Beam-%d", i+1), engine.Box(2.7, 0.6, 0.6), 0x200d06)
		rails.AddChild(at(beam, 1.75, 0.4, float32(-58+i*4)))
	}
}

// corner returns the x and z signs of the i-th leg: back-left, back-right,
// front-left, front-right.
func corner(i int) (x, z float32) {
	x, z = -1, -1
	if i == 1 || i == 3 {
		x = 1
	}
	if i == 2 || i == 3 {
		z = 1
	}
	return x, z
}

func (d *Diorama) buildDesk() {
	desk := at(engine.NewNode("Desk", engine.KindGroup), -15, 1.6, 8)
	d.Scene.Add(desk)

	desk.AddChild(mesh("Desk-Desktop", engine.Box(3, 0.2, 2.5), 0x5f3810))
	for i := range 4 {
		sx, sz := corner(i)
		leg := mesh(fmt.Sprintf("Desk-Leg-%d", i+1), engine.Box(0.3, 1.5, 0.3), 0x5f3810)
		desk.AddChild(at(leg, sx*1.25, -0.85, sz*1))
	}
}

func (d *Diorama) buildHelicopter(flags *input.Flags) {
	const body, white = 0x8e0000, 0xffffff

	heli := at(engine.NewNode(NameHelicopter, engine.KindGroup), 6, 42, 0)
	heli.AddComponent(components.NewMover(flags))
	d.Helicopter = heli
	d.Scene.Add(heli)

	heli.AddChild(mesh("Helicopter-Body", engine.Box(1.5, 1, 3), body))
	heli.AddChild(at(mesh("Helicopter-Tails", engine.Box(0.6, 0.63, 3.6), body), 0, 0.2, -3.3))

	d.Propeller = at(mesh("Helicopter-Propeller", engine.Box(6.75, 0.1, 0.3), white), 0, 0.55, 0)
	d.Propeller.Transform.Rotation.Y = deg(30)
	d.Propeller.AddComponent(components.NewSpinner(rl.Vector3{Y: 0.05}))
	heli.AddChild(d.Propeller)

	d.LittlePropeller = at(mesh("Helicopter-LittlePropeller", engine.Box(0.1, 1.5, 0.1), white), 0.35, 0.2, -4.5)
	d.LittlePropeller.Transform.Rotation.X = deg(-30)
	d.LittlePropeller.AddComponent(components.NewSpinner(rl.Vector3{X: 0.2}))
	heli.AddChild(d.LittlePropeller)

	// Both skids carry the same name; lookups by name find the left one.
	for _, x := range []float32{-0.5, 0.5} {
		heli.AddChild(at(mesh("Helicopter-Leg-1", engine.Box(0.25, 0.225, 2.25), body), x, -0.9, 0))
	}
	for i := range 4 {
		sx, sz := corner(i)
		c := mesh(fmt.Sprintf("Helicopter-LegConnector-%d", i+1), engine.Box(0.25, 0.2875, 0.225), body)
		heli.AddChild(at(c, sx*0.5, -0.64375, sz*0.7))
	}
}

func (d *Diorama) buildUFO() {
	d.OrbitHolder = at(engine.NewNode("UFO-Orbit animation", engine.KindObjectGroup), 0, 38, 0)
	orbitAxes := engine.NewNode("UFO-Orbit axes", engine.KindHelper)
	orbitAxes.AddComponent(components.NewAxesHelper(20))
	d.OrbitHolder.AddChild(orbitAxes)
	d.Scene.Add(d.OrbitHolder)

	d.RotationHolder = at(engine.NewNode("UFO-Rotation animation", engine.KindObjectGroup), 73, 0, -22)
	spinAxes := engine.NewNode("UFO-Rotation axes", engine.KindHelper)
	spinAxes.AddComponent(components.NewAxesHelper(30))
	d.RotationHolder.AddChild(spinAxes)
	d.OrbitHolder.AddChild(d.RotationHolder)

	d.UFO = engine.NewNode("UFO", engine.KindGroup)
	d.RotationHolder.AddChild(d.UFO)

	d.UFO.AddChild(at(mesh("UFO-Roof", engine.Cone(5, 2, 32), 0x45d8fa), 0, 1, 0))
	bottom := at(mesh("UFO-Bottom", engine.Cone(5, 2, 32), 0x45d8fa), 0, -1, 0)
	bottom.Transform.Rotation.Z = math.Pi
	d.UFO.AddChild(bottom)
}

func (d *Diorama) buildLights() {
	d.AmbientNode = engine.NewNode("Ambiens fény", engine.KindOther)
	d.Ambient = components.NewAmbientLight(hex(0xff0000), dayAmbient)
	d.AmbientNode.AddComponent(d.Ambient)
	d.Scene.Add(d.AmbientNode)

	d.PointNode = at(engine.NewNode("PointLight", engine.KindOther), 3.6, 21, 23.1)
	d.Point = components.NewPointLight(rl.White, 2, 70, 2)
	d.PointNode.AddComponent(d.Point)
	d.Scene.Add(d.PointNode)

	pointHelper := engine.NewNode("PointLight-Helper", engine.KindHelper)
	pointHelper.AddComponent(components.NewLightHelper(d.PointNode, 2.5))
	pointHelper.Transform.Position = d.PointNode.Transform.Position
	d.Scene.Add(pointHelper)

	d.SpotNode = at(engine.NewNode("SpotLight", engine.KindOther), spotDayX, 58, 0)
	d.Spot = components.NewSpotLight(rl.White, 35, 134, math.Pi/6, 0.8, d.StationBase)
	d.SpotNode.AddComponent(d.Spot)
	d.Scene.Add(d.SpotNode)

	spotHelper := engine.NewNode("SpotLight-Helper", engine.KindHelper)
	spotHelper.AddComponent(components.NewLightHelper(d.SpotNode, 0))
	spotHelper.Transform.Position = d.SpotNode.Transform.Position
	d.Scene.Add(spotHelper)
}

// CameraTarget returns the helicopter's live world position.
func (d *Diorama) CameraTarget() rl.Vector3 {
	return d.Helicopter.WorldPosition()
}

// ApplyToggles maps the illumination mode and the light switches onto the
// scene. The wireframe toggle is handled by the panel.
func (d *Diorama) ApplyToggles(t panel.ToggleParams) {
	switch t.Illumination {
	case panel.Day:
		d.Ambient.Intensity = dayAmbient
		d.Spot.Color = rl.White
		d.Spot.Intensity = daySpot
		d.SpotNode.Transform.Position.X = spotDayX
		d.Sun.Visible = true
		d.Moon.Visible = false
	case panel.Night:
		d.Ambient.Intensity = nightAmbient
		d.Spot.Color = hex(nightSpotColor)
		d.Spot.Intensity = nightSpot
		d.SpotNode.Transform.Position.X = spotNightX
		d.Sun.Visible = false
		d.Moon.Visible = true
	}
	d.SpotNode.Visible = t.SpotLight
	d.PointNode.Visible = t.PointLight
}

// ApplyAnimation writes the animator angles onto the UFO holders.
func (d *Diorama) ApplyAnimation(a *panel.Animator) {
	d.OrbitHolder.Transform.Rotation.Y = a.OrbitAngle()
	d.RotationHolder.Transform.Rotation.Y = a.SpinAngle()
}

// Assets lists the files the scene needs, keyed by the name passed to Attach.
func (d *Diorama) Assets() map[string]string {
	return map[string]string{
		NameChair:   d.assets.Chair,
		NameStorage: d.assets.Storage,
		NameMoon:    d.assets.MoonTexture,
	}
}

// Attach adds a loaded model to the scene and returns its node. Texture
// results need no node and return nil. A failed result is returned as is and
// nothing is added.
func (d *Diorama) Attach(r assets.Result) (*engine.Node, error) {
	if r.Err != nil {
		return nil, r.Err
	}
	var n *engine.Node
	switch r.Name {
	case NameChair:
		n = at(mesh(NameChair, engine.ModelFile(r.Path), 0x200d06), -18, 0.697, 8)
		n.Transform.Rotation.Y = math.Pi / 2
	case NameStorage:
		n = at(mesh(NameStorage, engine.ModelFile(r.Path), 0xa09600), -16, 0.1, 11)
	case NameMoon:
		return nil, nil
	default:
		return nil, fmt.Errorf("attach %q: %w", r.Name, ErrUnknownAsset)
	}
	if existing := d.Root.FindByName(n.Name); existing != nil && existing.Parent == d.Root {
		return existing, nil
	}
	d.Scene.Add(n)
	return n, nil
}
