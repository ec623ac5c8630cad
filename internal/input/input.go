// Package input turns key-down/key-up pairs into movement flags.
package input

import (
	"diorama/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Flags are the six movement flags, each held while its key is down.
type Flags struct {
	Forward  bool
	Backward bool
	Left     bool
	Right    bool
	Up       bool
	Down     bool
}

// Any reports whether at least one flag is set.
func (f Flags) Any() bool {
	return f.Forward || f.Backward || f.Left || f.Right || f.Up || f.Down
}

// Key bindings.
const (
	ForwardKey  = rl.KeyUp
	BackwardKey = rl.KeyDown
	LeftKey     = rl.KeyLeft
	RightKey    = rl.KeyRight
	UpKey       = rl.KeyW
	DownKey     = rl.KeyS
	// OverlaysKey toggles the info overlays on release.
	OverlaysKey = rl.KeyI
)

var watchedKeys = []int32{ForwardKey, BackwardKey, LeftKey, RightKey, UpKey, DownKey, OverlaysKey}

type Keyboard struct {
	Flags Flags
	// OverlaysToggled fires when the overlay key is released.
	OverlaysToggled engine.Event
}

func NewKeyboard() *Keyboard {
	return &Keyboard{}
}

func (k *Keyboard) flag(key int32) *bool {
	switch key {
	case ForwardKey:
		return &k.Flags.Forward
	case BackwardKey:
		return &k.Flags.Backward
	case LeftKey:
		return &k.Flags.Left
	case RightKey:
		return &k.Flags.Right
	case UpKey:
		return &k.Flags.Up
	case DownKey:
		return &k.Flags.Down
	}
	return nil
}

func (k *Keyboard) KeyDown(key int32) {
	if f := k.flag(key); f != nil {
		*f = true
	}
}

func (k *Keyboard) KeyUp(key int32) {
	if f := k.flag(key); f != nil {
		*f = false
		return
	}
	if key == OverlaysKey {
		k.OverlaysToggled.Invoke()
	}
}

// Poll feeds this frame's raylib key transitions into the keyboard. It must
// run on the window thread.
func (k *Keyboard) Poll() {
	for _, key := range watchedKeys {
		if rl.IsKeyPressed(key) {
			k.KeyDown(key)
		}
		if rl.IsKeyReleased(key) {
			k.KeyUp(key)
		}
	}
}
