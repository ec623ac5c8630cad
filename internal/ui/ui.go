// Package ui draws the three parameter panels and the info overlays with
// raygui. Widgets write back only through the panel's edit methods.
package ui

import (
	"fmt"
	"log/slog"
	"strings"

	"diorama/internal/engine"
	"diorama/internal/panel"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	labelWidth = 55
	valueWidth = 45

	// listItemHeight is raygui's default LISTVIEW item height plus spacing.
	listItemHeight = 28 + 2
	listRows       = ListHeight / listItemHeight
)

type UI struct {
	panel  *panel.Panel
	logger *slog.Logger

	scroll int32
	// ShowOverlays shows the app info, hotkeys and stats boxes.
	ShowOverlays bool
}

func New(p *panel.Panel, logger *slog.Logger) *UI {
	if logger == nil {
		logger = slog.Default()
	}
	u := &UI{panel: p, logger: logger, ShowOverlays: true}
	p.OnSelect.AddListener(u.follow)
	return u
}

// follow scrolls the object list so the newly selected node is shown.
func (u *UI) follow(n *engine.Node) {
	i := SelectedIndex(u.panel.Selectable(), n)
	if i < 0 {
		return
	}
	u.scroll = ScrollTo(u.scroll, i, listRows)
}

// ScrollTo returns the first visible row of a list showing rows items at a
// time, moved as little as possible so that row i is visible.
func ScrollTo(first, i, rows int32) int32 {
	switch {
	case rows <= 0:
		return i
	case i < first:
		return i
	case i >= first+rows:
		return i - rows + 1
	}
	return first
}

// ToggleOverlays flips overlay visibility.
func (u *UI) ToggleOverlays() {
	u.ShowOverlays = !u.ShowOverlays
}

// InitStyle applies the dark panel theme.
func InitStyle() {
	gui.SetStyle(gui.DEFAULT, gui.BACKGROUND_COLOR, gui.NewColorPropertyValue(colorBgPanel))
	gui.SetStyle(gui.DEFAULT, gui.BASE_COLOR_NORMAL, gui.NewColorPropertyValue(colorBgElement))
	gui.SetStyle(gui.DEFAULT, gui.BASE_COLOR_FOCUSED, gui.NewColorPropertyValue(colorBgHover))
	gui.SetStyle(gui.DEFAULT, gui.BASE_COLOR_PRESSED, gui.NewColorPropertyValue(colorAccent))
	gui.SetStyle(gui.DEFAULT, gui.TEXT_COLOR_NORMAL, gui.NewColorPropertyValue(colorText))
	gui.SetStyle(gui.DEFAULT, gui.TEXT_COLOR_FOCUSED, gui.NewColorPropertyValue(rl.White))
	gui.SetStyle(gui.DEFAULT, gui.TEXT_COLOR_PRESSED, gui.NewColorPropertyValue(rl.White))
	gui.SetStyle(gui.DEFAULT, gui.BORDER_COLOR_NORMAL, gui.NewColorPropertyValue(colorBorder))
	gui.SetStyle(gui.DEFAULT, gui.BORDER_COLOR_FOCUSED, gui.NewColorPropertyValue(colorAccent))
	gui.SetStyle(gui.DEFAULT, gui.TEXT_SIZE, 12)
}

var (
	colorBgPanel   = rl.NewColor(18, 18, 24, 235)
	colorBgElement = rl.NewColor(28, 28, 38, 255)
	colorBgHover   = rl.NewColor(38, 38, 52, 255)
	colorAccent    = rl.NewColor(108, 99, 255, 255)
	colorText      = rl.NewColor(200, 200, 208, 255)
	colorBorder    = rl.NewColor(50, 50, 65, 255)
)

// Draw draws the panels for the current screen size and writes widget changes
// into the panel bags.
func (u *UI) Draw(screenWidth, screenHeight int32) {
	l := ComputeLayout(screenWidth, screenHeight)
	u.drawObject(l.Object)
	u.drawToggles(l.Toggles)
	u.drawAnimation(l.Animation)
}

// slider draws a labelled slider snapped to rng.
func slider(bounds rl.Rectangle, label string, value float32, rng panel.Range) float32 {
	inner := rl.Rectangle{
		X:      bounds.X + labelWidth,
		Y:      bounds.Y,
		Width:  bounds.Width - labelWidth - valueWidth,
		Height: bounds.Height,
	}
	v := gui.Slider(inner, label, FormatValue(value, rng), value, rng.Min, rng.Max)
	if v == value {
		return value
	}
	return rng.Snap(v)
}

func (u *UI) drawObject(bounds rl.Rectangle) {
	gui.Panel(bounds, "Object")
	r := newRows(bounds)

	nodes := u.panel.Selectable()
	active := SelectedIndex(nodes, u.panel.Selected())
	picked := gui.ListView(r.next(ListHeight), ListText(nodes), &u.scroll, active)
	if picked != active && picked >= 0 {
		if err := u.panel.SelectIndex(int(picked)); err != nil {
			u.logger.Warn("select from list failed", "index", picked, "error", err)
		}
	}

	before := u.panel.ObjectParams()
	p := before
	p.PositionX = slider(r.row(), "Pos X", p.PositionX, panel.PositionRange)
	p.PositionY = slider(r.row(), "Pos Y", p.PositionY, panel.PositionRange)
	p.PositionZ = slider(r.row(), "Pos Z", p.PositionZ, panel.PositionRange)
	p.RotationX = slider(r.row(), "Rot X", p.RotationX, panel.RotationRange)
	p.RotationY = slider(r.row(), "Rot Y", p.RotationY, panel.RotationRange)
	p.RotationZ = slider(r.row(), "Rot Z", p.RotationZ, panel.RotationRange)
	p.ScaleX = slider(r.row(), "Scale X", p.ScaleX, panel.ScaleRange)
	p.ScaleY = slider(r.row(), "Scale Y", p.ScaleY, panel.ScaleRange)
	p.ScaleZ = slider(r.row(), "Scale Z", p.ScaleZ, panel.ScaleRange)

	picker := r.next(PickerSize)
	// leave room for the hue bar raygui draws to the right
	picker.Width -= 30
	p.Color = panel.PackColor(gui.ColorPicker(picker, "", panel.UnpackColor(p.Color)))

	p.WallsDisabled = gui.CheckBox(checkBounds(r.row()), "Disable Walls", p.WallsDisabled)

	if p != before {
		u.panel.EditObject(func(o *panel.ObjectParams) { *o = p })
	}
	if gui.Button(r.row(), "Reset") {
		u.panel.Reset()
	}
}

func (u *UI) drawToggles(bounds rl.Rectangle) {
	gui.Panel(bounds, "Scene")
	r := newRows(bounds)

	before := u.panel.ToggleParams()
	t := before
	t.WallsDisabled = gui.CheckBox(checkBounds(r.row()), "Disable Walls", t.WallsDisabled)

	combo := r.row()
	combo.X += labelWidth
	combo.Width -= labelWidth
	rl.DrawText("Illumination", int32(bounds.X+Margin), int32(combo.Y+4), 10, colorText)
	idx := gui.ComboBox(combo, IlluminationText(), IlluminationIndex(t.Illumination))
	t.Illumination = IlluminationAt(idx)

	t.SpotLight = gui.CheckBox(checkBounds(r.row()), "Spot light", t.SpotLight)
	t.PointLight = gui.CheckBox(checkBounds(r.row()), "PointLight", t.PointLight)

	if t != before {
		u.panel.EditToggles(func(p *panel.ToggleParams) { *p = t })
	}
	if gui.Button(r.row(), "Reset") {
		u.panel.ResetToggles()
	}
}

func (u *UI) drawAnimation(bounds rl.Rectangle) {
	gui.Panel(bounds, "Animation")
	r := newRows(bounds)

	before := u.panel.AnimationParams()
	a := before
	a.OrbitSpeed = slider(r.row(), "Orbit", a.OrbitSpeed, panel.SpeedRange)
	a.RotationalSpeed = slider(r.row(), "Spin", a.RotationalSpeed, panel.SpeedRange)
	if a != before {
		u.panel.EditAnimation(func(p *panel.AnimationParams) { *p = a })
	}
	if gui.Button(r.row(), "Reset") {
		u.panel.ResetAnimation()
	}
}

func checkBounds(row rl.Rectangle) rl.Rectangle {
	return rl.Rectangle{X: row.X, Y: row.Y + 2, Width: RowHeight - 4, Height: RowHeight - 4}
}

// ListText joins node names for a raygui list. Groups are marked with a
// trailing slash and indented by depth.
func ListText(nodes []*engine.Node) string {
	items := make([]string, len(nodes))
	for i, n := range nodes {
		name := n.Name
		if n.Kind.IsContainer() {
			name += "/"
		}
		items[i] = strings.Repeat("  ", depth(n)) + strings.ReplaceAll(name, ";", ",")
	}
	return strings.Join(items, ";")
}

func depth(n *engine.Node) int {
	d := 0
	for p := n.Parent; p != nil && p.Parent != nil; p = p.Parent {
		d++
	}
	return d
}

// SelectedIndex returns the list position of sel, or -1.
func SelectedIndex(nodes []*engine.Node, sel *engine.Node) int32 {
	if sel == nil {
		return -1
	}
	for i, n := range nodes {
		if n == sel {
			return int32(i)
		}
	}
	return -1
}

// IlluminationText is the combo box item list.
func IlluminationText() string {
	names := make([]string, len(panel.Illuminations))
	for i, m := range panel.Illuminations {
		names[i] = string(m)
	}
	return strings.Join(names, ";")
}

func IlluminationIndex(m panel.Illumination) int32 {
	for i, v := range panel.Illuminations {
		if v == m {
			return int32(i)
		}
	}
	return 0
}

func IlluminationAt(i int32) panel.Illumination {
	if i < 0 || int(i) >= len(panel.Illuminations) {
		return panel.Illuminations[0]
	}
	return panel.Illuminations[i]
}

// FormatValue prints v with as many decimals as the range step needs.
func FormatValue(v float32, rng panel.Range) string {
	switch {
	case rng.Step >= 1:
		return fmt.Sprintf("%.0f", v)
	case rng.Step >= 0.1:
		return fmt.Sprintf("%.1f", v)
	case rng.Step >= 0.01:
		return fmt.Sprintf("%.2f", v)
	}
	return fmt.Sprintf("%.3f", v)
}
