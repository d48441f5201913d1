package components

import (
	cfg "github.com/automoto/jeepdrive/config"
	"github.com/yohamta/donburi"
)

// InputData stores the current and previous frame's pressed state for all
// actions, plus the pointer motion that drives the manual orbit camera.
// JustPressed is computed on demand by comparing frames.
type InputData struct {
	Current  [cfg.ActionCount]bool // Current frame's Pressed state
	Previous [cfg.ActionCount]bool // Previous frame's Pressed state

	Dragging       bool    // orbit button held
	DragDX, DragDY float64 // pointer motion while dragging, this frame
	Wheel          float64 // wheel notches this frame, positive away from the user

	Gamepad bool // last actions came from a gamepad rather than the keyboard

	lastX, lastY int
	tracking     bool
}

// Pressed reports whether the action is held this frame.
func (d *InputData) Pressed(action cfg.ActionID) bool {
	return d.Current[action]
}

// JustPressed reports whether the action went down this frame.
func (d *InputData) JustPressed(action cfg.ActionID) bool {
	return d.Current[action] && !d.Previous[action]
}

// TrackPointer records the pointer position and returns its motion since the
// previous tracked frame. The first call after StopPointer reports no motion.
func (d *InputData) TrackPointer(x, y int) (dx, dy float64) {
	if d.tracking {
		dx, dy = float64(x-d.lastX), float64(y-d.lastY)
	}
	d.lastX, d.lastY = x, y
	d.tracking = true
	return dx, dy
}

// StopPointer forgets the last tracked pointer position.
func (d *InputData) StopPointer() {
	d.tracking = false
}

var Input = donburi.NewComponentType[InputData]()
