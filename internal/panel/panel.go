// Package panel binds three parameter bags to a live scene graph: one for the
// selected object, one for animation speeds and one for scene-wide toggles.
//
// Selecting a node copies its live state into the object bag. Every tick,
// Apply copies the bags back onto the scene. Readers get snapshot copies;
// the only write paths are Select, the Edit methods and the Reset methods.
package panel

import (
	"fmt"
	"log/slog"

	"diorama/internal/catalog"
	"diorama/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// ErrNotFound is returned when a selection does not resolve to a node.
var ErrNotFound = catalog.ErrNotFound

type Panel struct {
	root     *engine.Node
	logger   *slog.Logger
	selected *engine.Node

	object            ObjectParams
	animation         AnimationParams
	animationDefaults AnimationParams
	toggles           ToggleParams

	// forced holds each mesh's own wireframe flag while the scene-wide
	// wireframe toggle overrides it.
	forced map[*engine.Node]bool

	// OnSelect fires after a node has been bound to the object bag.
	OnSelect engine.EventWithArg[*engine.Node]
}

type Option func(*Panel)

func WithLogger(l *slog.Logger) Option {
	return func(p *Panel) {
		p.logger = l
	}
}

// WithAnimationDefaults sets the initial animation speeds and the values
// ResetAnimation restores.
func WithAnimationDefaults(a AnimationParams) Option {
	return func(p *Panel) {
		p.animationDefaults = a
		p.animation = a
	}
}

func New(root *engine.Node, opts ...Option) *Panel {
	p := &Panel{
		root:              root,
		logger:            slog.Default(),
		object:            DefaultObjectParams(),
		animation:         DefaultAnimationParams(),
		animationDefaults: DefaultAnimationParams(),
		toggles:           DefaultToggleParams(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Selectable lists the nodes that can be selected, groups included.
func (p *Panel) Selectable() []*engine.Node {
	return catalog.Selectable(p.root, true)
}

// Selected returns the bound node, or nil while unbound.
func (p *Panel) Selected() *engine.Node {
	return p.selected
}

// Select binds the selectable node named name and loads its live state into
// the object bag, discarding unflushed edits.
func (p *Panel) Select(name string) error {
	n, err := catalog.Find(p.root, name)
	if err != nil {
		return fmt.Errorf("select: %w", err)
	}
	p.bind(n)
	return nil
}

// SelectIndex binds the i-th selectable node.
func (p *Panel) SelectIndex(i int) error {
	nodes := p.Selectable()
	if i < 0 || i >= len(nodes) {
		return fmt.Errorf("select index %d of %d: %w", i, len(nodes), ErrNotFound)
	}
	p.bind(nodes[i])
	return nil
}

// SelectFirst binds the first selectable node.
func (p *Panel) SelectFirst() error {
	return p.SelectIndex(0)
}

func (p *Panel) bind(n *engine.Node) {
	p.selected = n

	o := &p.object
	o.SelectedName = n.Name
	t := n.Transform
	o.PositionX, o.PositionY, o.PositionZ = t.Position.X, t.Position.Y, t.Position.Z
	o.RotationX = t.Rotation.X * rl.Rad2deg
	o.RotationY = t.Rotation.Y * rl.Rad2deg
	o.RotationZ = t.Rotation.Z * rl.Rad2deg
	o.ScaleX, o.ScaleY, o.ScaleZ = t.Scale.X, t.Scale.Y, t.Scale.Z

	if n.Kind == engine.KindMesh && n.Mesh != nil {
		o.Color = PackColor(n.Mesh.Material.Color)
		o.WallsDisabled = p.ownWireframe(n)
	}

	p.logger.Debug("object selected", "name", n.Name, "kind", n.Kind.String())
	p.OnSelect.Invoke(n)
}

func (p *Panel) ownWireframe(n *engine.Node) bool {
	if own, ok := p.forced[n]; ok {
		return own
	}
	return n.Mesh.Material.Wireframe
}

// EditObject applies an edit to the object bag. The selection cannot be
// changed this way.
func (p *Panel) EditObject(fn func(*ObjectParams)) {
	name := p.object.SelectedName
	fn(&p.object)
	p.object.SelectedName = name
}

func (p *Panel) EditAnimation(fn func(*AnimationParams)) {
	fn(&p.animation)
}

func (p *Panel) EditToggles(fn func(*ToggleParams)) {
	fn(&p.toggles)
}

// Reset restores the object transform and walls flag to their defaults. The
// selection and color are kept.
func (p *Panel) Reset() {
	p.object.resetTransform()
}

func (p *Panel) ResetAnimation() {
	p.animation = p.animationDefaults
}

func (p *Panel) ResetToggles() {
	p.toggles = DefaultToggleParams()
}

// The bags hold only scalars, so the accessors hand out value copies.

func (p *Panel) ObjectParams() ObjectParams {
	return p.object
}

func (p *Panel) AnimationParams() AnimationParams {
	return p.animation
}

func (p *Panel) ToggleParams() ToggleParams {
	return p.toggles
}

// Apply flushes the object bag onto the selected node, then enforces the
// scene-wide wireframe toggle, which therefore wins over the object's own
// walls flag.
func (p *Panel) Apply() {
	if p.selected != nil {
		p.applyObject(p.selected)
	}
	p.applyWalls()
}

func (p *Panel) applyObject(n *engine.Node) {
	o := p.object
	n.Transform.Position = rl.Vector3{X: o.PositionX, Y: o.PositionY, Z: o.PositionZ}
	n.Transform.Rotation = rl.Vector3{
		X: o.RotationX * rl.Deg2rad,
		Y: o.RotationY * rl.Deg2rad,
		Z: o.RotationZ * rl.Deg2rad,
	}
	n.Transform.Scale = rl.Vector3{X: o.ScaleX, Y: o.ScaleY, Z: o.ScaleZ}

	if n.Kind == engine.KindMesh && n.Mesh != nil {
		n.Mesh.Material.Color = UnpackColor(o.Color)
		n.Mesh.Material.Wireframe = o.WallsDisabled
	}
}

func (p *Panel) applyWalls() {
	if p.toggles.WallsDisabled {
		if p.forced == nil {
			p.forced = make(map[*engine.Node]bool)
		}
		for _, m := range catalog.Selectable(p.root, false) {
			if m.Mesh == nil {
				continue
			}
			if _, ok := p.forced[m]; !ok {
				p.forced[m] = m.Mesh.Material.Wireframe
			}
			m.Mesh.Material.Wireframe = true
		}
		return
	}

	// Falling edge: hand every mesh its own flag back. The selected node
	// already got its flag from the object bag this tick.
	for m, own := range p.forced {
		if m == p.selected {
			continue
		}
		m.Mesh.Material.Wireframe = own
	}
	p.forced = nil
}
