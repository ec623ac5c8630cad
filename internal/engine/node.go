package engine

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Kind classifies a Node. It is fixed at construction.
type Kind int

const (
	KindOther Kind = iota
	KindMesh
	KindGroup
	// KindObjectGroup is a bare transform holder, used to pivot its children.
	KindObjectGroup
	// KindHelper marks debug geometry (axes, light gizmos). Never selectable.
	KindHelper
)

func (k Kind) String() string {
	switch k {
	case KindMesh:
		return "Mesh"
	case KindGroup:
		return "Group"
	case KindObjectGroup:
		return "ObjectGroup"
	case KindHelper:
		return "Helper"
	default:
		return "Other"
	}
}

// IsContainer reports whether nodes of this kind group other nodes.
func (k Kind) IsContainer() bool {
	return k == KindGroup || k == KindObjectGroup
}

type Transform struct {
	Position rl.Vector3
	Rotation rl.Vector3 // XYZ Euler angles in radians
	Scale    rl.Vector3
}

type Node struct {
	Name      string
	Kind      Kind
	Transform Transform
	Visible   bool
	// Mesh is set only for KindMesh nodes.
	Mesh       *Mesh
	Parent     *Node
	Children   []*Node
	components []Component
	started    bool
}

func NewNode(name string, kind Kind) *Node {
	return &Node{
		Name:    name,
		Kind:    kind,
		Visible: true,
		Transform: Transform{
			Position: rl.Vector3{},
			Rotation: rl.Vector3{},
			Scale:    rl.Vector3{X: 1, Y: 1, Z: 1},
		},
		components: make([]Component, 0),
		Children:   make([]*Node, 0),
	}
}

// NewMesh creates a KindMesh node with the given geometry and material.
func NewMesh(name string, geometry Geometry, material Material) *Node {
	n := NewNode(name, KindMesh)
	n.Mesh = &Mesh{Geometry: geometry, Material: material}
	return n
}

func (n *Node) AddComponent(c Component) {
	c.SetNode(n)
	n.components = append(n.components, c)
}

// GetComponent returns the first component of type T, or the zero value.
func GetComponent[T Component](n *Node) T {
	var zero T
	for _, c := range n.components {
		if typed, ok := c.(T); ok {
			return typed
		}
	}
	return zero
}

func (n *Node) Components() []Component {
	return n.components
}

func (n *Node) Start() {
	if n.started {
		return
	}
	for _, c := range n.components {
		c.Start()
	}
	n.started = true
}

func (n *Node) Update(deltaTime float32) {
	for _, c := range n.components {
		c.Update(deltaTime)
	}
}

func (n *Node) AddChild(child *Node) {
	if child.Parent != nil {
		child.Parent.RemoveChild(child)
	}
	child.Parent = n
	n.Children = append(n.Children, child)
}

func (n *Node) RemoveChild(child *Node) {
	for i, c := range n.Children {
		if c == child {
			n.Children = append(n.Children[:i], n.Children[i+1:]...)
			child.Parent = nil
			return
		}
	}
}

// Walk visits n and its descendants depth-first, parents before children.
// Returning false from fn skips the node's subtree.
func (n *Node) Walk(fn func(*Node) bool) {
	if !fn(n) {
		return
	}
	for _, c := range n.Children {
		c.Walk(fn)
	}
}

// FindByName returns the first node named name in depth-first order, n included.
func (n *Node) FindByName(name string) *Node {
	var found *Node
	n.Walk(func(c *Node) bool {
		if found != nil {
			return false
		}
		if c.Name == name {
			found = c
			return false
		}
		return true
	})
	return found
}

// LocalMatrix composes scale, then the XYZ Euler rotation (Z applied first,
// X last), then translation.
func (n *Node) LocalMatrix() rl.Matrix {
	t := n.Transform
	scale := rl.MatrixScale(t.Scale.X, t.Scale.Y, t.Scale.Z)
	trans := rl.MatrixTranslate(t.Position.X, t.Position.Y, t.Position.Z)
	return rl.MatrixMultiply(rl.MatrixMultiply(scale, EulerXYZ(t.Rotation)), trans)
}

// EulerXYZ is the right-handed rotation Rx·Ry·Rz for angles in radians.
func EulerXYZ(r rl.Vector3) rl.Matrix {
	// MatrixMultiply(a, b) applies a before b.
	return rl.MatrixMultiply(rl.MatrixMultiply(RotationZ(r.Z), RotationY(r.Y)), RotationX(r.X))
}

// raylib-go's MatrixRotateX/Y/Z are transposed with respect to
// Vector3Transform and the C library, so the rotations are built here.

// RotationX rotates counter-clockwise about +X, looking down the axis.
func RotationX(a float32) rl.Matrix {
	c, s := sincos(a)
	m := rl.MatrixIdentity()
	m.M5, m.M9 = c, -s
	m.M6, m.M10 = s, c
	return m
}

func RotationY(a float32) rl.Matrix {
	c, s := sincos(a)
	m := rl.MatrixIdentity()
	m.M0, m.M8 = c, s
	m.M2, m.M10 = -s, c
	return m
}

func RotationZ(a float32) rl.Matrix {
	c, s := sincos(a)
	m := rl.MatrixIdentity()
	m.M0, m.M4 = c, -s
	m.M1, m.M5 = s, c
	return m
}

func sincos(a float32) (c, s float32) {
	sin, cos := math.Sincos(float64(a))
	return float32(cos), float32(sin)
}

// WorldMatrix is the node's local matrix followed by every ancestor's.
func (n *Node) WorldMatrix() rl.Matrix {
	m := n.LocalMatrix()
	for p := n.Parent; p != nil; p = p.Parent {
		m = rl.MatrixMultiply(m, p.LocalMatrix())
	}
	return m
}

func (n *Node) WorldPosition() rl.Vector3 {
	return rl.Vector3Transform(rl.Vector3Zero(), n.WorldMatrix())
}

// WorldVisible reports whether n and all its ancestors are visible.
func (n *Node) WorldVisible() bool {
	for c := n; c != nil; c = c.Parent {
		if !c.Visible {
			return false
		}
	}
	return true
}

// WrapAngle reduces a radian angle to [0, 2π).
func WrapAngle(a float64) float64 {
	a = math.Mod(a, 2*math.Pi)
	if a < 0 {
		a += 2 * math.Pi
	}
	return a
}
