// Package render draws the scene tree with raylib.
package render

import (
	"math"

	"diorama/internal/assets"
	"diorama/internal/components"
	"diorama/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Background is the clear color.
var Background = rl.Black

const sphereRings = 16

type Renderer struct {
	assets *assets.Manager
	// models holds the generated mesh of each primitive node.
	models map[*engine.Node]rl.Model

	// Culled counts the meshes skipped by the last Draw.
	Culled int
}

func NewRenderer(m *assets.Manager) *Renderer {
	return &Renderer{
		assets: m,
		models: make(map[*engine.Node]rl.Model),
	}
}

// Draw renders the scene from cam. It must run between BeginDrawing and
// EndDrawing on the window thread.
func (r *Renderer) Draw(cam rl.Camera3D, scene *engine.Scene) {
	lights := CollectLights(scene.Root)
	aspect := float32(rl.GetScreenWidth()) / float32(max(rl.GetScreenHeight(), 1))
	frustum := ExtractFrustum(cam, aspect)
	r.Culled = 0

	rl.ClearBackground(Background)
	rl.BeginMode3D(cam)
	scene.Root.Walk(func(n *engine.Node) bool {
		if !n.Visible {
			return false
		}
		switch n.Kind {
		case engine.KindMesh:
			r.drawMesh(n, &frustum, lights)
		case engine.KindHelper:
			drawHelper(n)
		}
		return true
	})
	rl.EndMode3D()
}

func (r *Renderer) drawMesh(n *engine.Node, frustum *Frustum, lights []components.Light) {
	world := n.WorldMatrix()
	if !frustum.visible(n, world) {
		r.Culled++
		return
	}
	model, ok := r.model(n)
	if !ok {
		return
	}
	mat := n.Mesh.Material
	if mat.Texture != "" {
		if tex, ok := r.assets.Texture(mat.Texture); ok {
			model.Materials.Maps.Texture = tex
		}
	}
	model.Transform = rl.MatrixMultiply(BaseTransform(n.Mesh.Geometry), world)

	tint := mat.Color
	if !mat.Unlit {
		tint = Shade(mat.Color, rl.Vector3Transform(rl.Vector3Zero(), world), lights)
	}
	if mat.Wireframe {
		rl.DrawModelWires(model, rl.Vector3Zero(), 1.0, tint)
		return
	}
	rl.DrawModel(model, rl.Vector3Zero(), 1.0, tint)
}

// model returns the mesh for n, generating primitives on first use. Model
// files come from the asset cache and are skipped until uploaded.
func (r *Renderer) model(n *engine.Node) (rl.Model, bool) {
	g := n.Mesh.Geometry
	if g.Type == engine.GeometryModel {
		return r.assets.Model(g.Path)
	}
	if m, ok := r.models[n]; ok {
		return m, true
	}
	var mesh rl.Mesh
	switch g.Type {
	case engine.GeometryBox:
		mesh = rl.GenMeshCube(g.Size.X, g.Size.Y, g.Size.Z)
	case engine.GeometryPlane:
		mesh = rl.GenMeshPlane(g.Size.X, g.Size.Y, 1, 1)
	case engine.GeometryCone:
		mesh = rl.GenMeshCone(g.Radius, g.Height, max(g.Segments, 3))
	case engine.GeometrySphere:
		mesh = rl.GenMeshSphere(g.Radius, sphereRings, max(g.Segments, 3))
	default:
		return rl.Model{}, false
	}
	m := rl.LoadModelFromMesh(mesh)
	r.models[n] = m
	return m, true
}

// BaseTransform maps raylib's generated primitive onto the node's geometry
// frame: planes are turned from XZ into XY and cones are centered on their
// height.
func BaseTransform(g engine.Geometry) rl.Matrix {
	switch g.Type {
	case engine.GeometryPlane:
		return engine.RotationX(math.Pi / 2)
	case engine.GeometryCone:
		return rl.MatrixTranslate(0, -g.Height/2, 0)
	}
	return rl.MatrixIdentity()
}

// CollectLights returns every light component under root.
func CollectLights(root *engine.Node) []components.Light {
	var out []components.Light
	root.Walk(func(n *engine.Node) bool {
		for _, c := range n.Components() {
			if l, ok := c.(components.Light); ok {
				out = append(out, l)
			}
		}
		return true
	})
	return out
}

// Shade scales base by the summed irradiance at pos, clamped per channel.
func Shade(base rl.Color, pos rl.Vector3, lights []components.Light) rl.Color {
	var sum rl.Vector3
	for _, l := range lights {
		sum = rl.Vector3Add(sum, l.Irradiance(pos))
	}
	ch := func(c uint8, f float32) uint8 {
		return uint8(float32(c) * min(f, 1))
	}
	return rl.NewColor(ch(base.R, sum.X), ch(base.G, sum.Y), ch(base.B, sum.Z), base.A)
}

var (
	axisX = rl.NewColor(255, 0, 0, 255)
	axisY = rl.NewColor(0, 255, 0, 255)
	axisZ = rl.NewColor(0, 0, 255, 255)
)

func drawHelper(n *engine.Node) {
	if a := engine.GetComponent[*components.AxesHelper](n); a != nil {
		world := n.WorldMatrix()
		origin := rl.Vector3Transform(rl.Vector3Zero(), world)
		rl.DrawLine3D(origin, rl.Vector3Transform(rl.Vector3{X: a.Size}, world), axisX)
		rl.DrawLine3D(origin, rl.Vector3Transform(rl.Vector3{Y: a.Size}, world), axisY)
		rl.DrawLine3D(origin, rl.Vector3Transform(rl.Vector3{Z: a.Size}, world), axisZ)
		return
	}
	h := engine.GetComponent[*components.LightHelper](n)
	if h == nil || h.Light == nil {
		return
	}
	pos := h.Light.WorldPosition()
	color := h.Color()
	if s := engine.GetComponent[*components.SpotLight](h.Light); s != nil {
		reach := max(s.Distance, 1)
		tip := rl.Vector3Add(pos, rl.Vector3Scale(s.Direction(), reach))
		rl.DrawLine3D(pos, tip, color)
		radius := reach * float32(math.Tan(float64(s.Angle)))
		rl.DrawCylinderWiresEx(pos, tip, 0, radius, 8, color)
		return
	}
	rl.DrawSphereWires(pos, h.Size, 4, 4, color)
}

// Unload frees the generated primitives. Cached assets belong to the manager.
func (r *Renderer) Unload() {
	for n, m := range r.models {
		rl.UnloadModel(m)
		delete(r.models, n)
	}
}
