package config

import "github.com/hajimehoshi/ebiten/v2"

// ActionID represents a logical game action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionAccelerate
	ActionBrake
	ActionTurnLeft
	ActionTurnRight
	ActionToggleCamera
	ActionToggleDebug
	ActionResetVehicle
	ActionCount // Must be last - used for array sizing
)

// InputBinding lists the key names and gamepad buttons bound to an action.
// Key names follow ebiten.Key's text form ("W", "ArrowUp", "F1").
type InputBinding struct {
	Keys                   []string
	StandardGamepadButtons []ebiten.StandardGamepadButton
}

// InputConfig holds all input mappings
type InputConfig struct {
	Bindings map[ActionID]InputBinding
	// Mouse button that drags the manual orbit camera ("left", "right", "middle")
	OrbitButton string
	// Deadzone for analog stick input (0.0 to 1.0)
	AnalogDeadzone float64
}

// Input is the global input configuration
var Input InputConfig

func init() {
	// Both QWERTY and AZERTY layouts drive the same actions.
	Input = InputConfig{
		OrbitButton:    "left",
		AnalogDeadzone: 0.25,
		Bindings: map[ActionID]InputBinding{
			ActionAccelerate: {
				Keys: []string{"W", "Z", "ArrowUp"},
				// Right trigger / A
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonFrontBottomRight,
					ebiten.StandardGamepadButtonRightBottom,
				},
			},
			ActionBrake: {
				Keys: []string{"S", "ArrowDown"},
				// Left trigger / B
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonFrontBottomLeft,
					ebiten.StandardGamepadButtonRightRight,
				},
			},
			ActionTurnLeft: {
				Keys: []string{"A", "Q", "ArrowLeft"},
				// D-pad Left (analog stick handled separately)
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonLeftLeft,
				},
			},
			ActionTurnRight: {
				Keys: []string{"D", "ArrowRight"},
				// D-pad Right (analog stick handled separately)
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonLeftRight,
				},
			},
			ActionToggleCamera: {
				Keys:                   []string{"C"},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonRightTop},
			},
			ActionToggleDebug: {
				Keys:                   []string{"F1"},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonCenterLeft},
			},
			ActionResetVehicle: {
				Keys:                   []string{"R"},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonCenterRight},
			},
		},
	}
}
