package ui

import rl "github.com/gen2brain/raylib-go/raylib"

const (
	PanelWidth = 250
	Margin     = 10
	RowHeight  = 20
	RowGap     = 4
	HeaderSize = 24
	ListHeight = 110
	PickerSize = 90
)

// Object panel rows: nine sliders, the walls checkbox and the reset button.
const objectRows = 11

// Layout holds the screen rectangles of the three parameter panels. The object
// panel sits against the right edge; toggles and animation stack to its left.
type Layout struct {
	Object    rl.Rectangle
	Toggles   rl.Rectangle
	Animation rl.Rectangle
}

func rowsHeight(n int) float32 {
	return float32(n * (RowHeight + RowGap))
}

// ComputeLayout places the panels for a screen of the given size.
func ComputeLayout(screenWidth, screenHeight int32) Layout {
	w := float32(PanelWidth)
	right := float32(screenWidth) - Margin

	objectH := HeaderSize + ListHeight + RowGap + rowsHeight(objectRows) + PickerSize + RowGap + Margin
	object := rl.Rectangle{X: right - w, Y: Margin, Width: w, Height: objectH}

	togglesH := HeaderSize + rowsHeight(5) + Margin
	toggles := rl.Rectangle{X: object.X - Margin - w, Y: Margin, Width: w, Height: togglesH}

	animH := HeaderSize + rowsHeight(3) + Margin
	anim := rl.Rectangle{X: toggles.X, Y: toggles.Y + togglesH + Margin, Width: w, Height: animH}

	return Layout{Object: object, Toggles: toggles, Animation: anim}
}

// Contains reports whether p falls inside any panel.
func (l Layout) Contains(p rl.Vector2) bool {
	for _, r := range []rl.Rectangle{l.Object, l.Toggles, l.Animation} {
		if p.X >= r.X && p.X < r.X+r.Width && p.Y >= r.Y && p.Y < r.Y+r.Height {
			return true
		}
	}
	return false
}

// rows hands out consecutive row rectangles inside a panel.
type rows struct {
	x, y, w float32
}

func newRows(panel rl.Rectangle) *rows {
	return &rows{x: panel.X + Margin, y: panel.Y + HeaderSize + RowGap, w: panel.Width - 2*Margin}
}

func (r *rows) next(h float32) rl.Rectangle {
	rect := rl.Rectangle{X: r.x, Y: r.y, Width: r.w, Height: h}
	r.y += h + RowGap
	return rect
}

func (r *rows) row() rl.Rectangle {
	return r.next(RowHeight)
}
