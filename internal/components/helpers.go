package components

import (
	"diorama/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// AxesHelper marks a KindHelper node that draws its local X/Y/Z axes.
type AxesHelper struct {
	engine.BaseComponent
	Size float32
}

func NewAxesHelper(size float32) *AxesHelper {
	return &AxesHelper{Size: size}
}

// LightHelper marks a KindHelper node that draws a gizmo for a light node.
// Size is the marker radius for point lights; spot lights draw their cone.
type LightHelper struct {
	engine.BaseComponent
	Light *engine.Node
	Size  float32
}

func NewLightHelper(light *engine.Node, size float32) *LightHelper {
	return &LightHelper{Light: light, Size: size}
}

// Update keeps the helper node at the light's world position.
func (h *LightHelper) Update(deltaTime float32) {
	n := h.GetNode()
	if n == nil || h.Light == nil {
		return
	}
	n.Transform.Position = h.Light.WorldPosition()
}

// Color returns the light's color, white when the light has no light component.
func (h *LightHelper) Color() rl.Color {
	if h.Light == nil {
		return rl.White
	}
	if p := engine.GetComponent[*PointLight](h.Light); p != nil {
		return p.Color
	}
	if s := engine.GetComponent[*SpotLight](h.Light); s != nil {
		return s.Color
	}
	return rl.White
}
