package ui

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Stats is the per-frame data shown in the stats overlay.
type Stats struct {
	FPS       int32
	FrameTime float32 // seconds
	TickMs    float64
	DrawMs    float64
	Culled    int
	Selected  string
}

var AppInfo = []string{
	"Railway diorama",
	"Pick an object on the right to edit it.",
}

var Hotkeys = []string{
	"Arrows  move the helicopter",
	"W / S   climb / descend",
	"I       toggle these boxes",
	"Mouse   left rotate, right pan, wheel zoom",
}

const overlayFont = 10

func (s Stats) Lines() []string {
	sel := s.Selected
	if sel == "" {
		sel = "-"
	}
	return []string{
		fmt.Sprintf("%d FPS", s.FPS),
		fmt.Sprintf("%.2f ms", s.FrameTime*1000),
		fmt.Sprintf("tick %.2f ms, draw %.2f ms", s.TickMs, s.DrawMs),
		fmt.Sprintf("%d meshes culled", s.Culled),
		"Selected: " + sel,
	}
}

// DrawOverlays draws the info boxes in the left corners when enabled.
func (u *UI) DrawOverlays(screenHeight int32, stats Stats) {
	if !u.ShowOverlays {
		return
	}
	drawBox(Margin, Margin, AppInfo)
	hotkeysY := int32(Margin) + boxHeight(len(AppInfo)) + Margin
	drawBox(Margin, hotkeysY, Hotkeys)

	lines := stats.Lines()
	drawBox(Margin, screenHeight-Margin-boxHeight(len(lines)), lines)
}

func boxHeight(lines int) int32 {
	return int32(lines*(overlayFont+4) + 8)
}

func drawBox(x, y int32, lines []string) {
	w := int32(0)
	for _, l := range lines {
		w = max(w, rl.MeasureText(l, overlayFont))
	}
	rl.DrawRectangle(x, y, w+12, boxHeight(len(lines)), colorBgPanel)
	for i, l := range lines {
		rl.DrawText(l, x+6, y+4+int32(i*(overlayFont+4)), overlayFont, colorText)
	}
}
