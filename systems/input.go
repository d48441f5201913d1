package systems

import (
	"sync"

	"github.com/automoto/jeepdrive/components"
	cfg "github.com/automoto/jeepdrive/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog/log"
	"github.com/yohamta/donburi/ecs"
)

var (
	keyBindings     map[cfg.ActionID][]ebiten.Key
	keyBindingsOnce sync.Once

	gamepads = &ebitenGamepads{}
)

// gamepadReader is the part of ebiten's gamepad API that input polling reads.
type gamepadReader interface {
	Gamepads() []ebiten.GamepadID
	ButtonPressed(id ebiten.GamepadID, button ebiten.StandardGamepadButton) bool
	Axis(id ebiten.GamepadID, axis ebiten.StandardGamepadAxis) float64
}

// ebitenGamepads reads the connected gamepads that have a standard layout.
// The ID slice is reused across frames.
type ebitenGamepads struct {
	ids []ebiten.GamepadID
}

func (g *ebitenGamepads) Gamepads() []ebiten.GamepadID {
	all := ebiten.AppendGamepadIDs(g.ids[:0])
	g.ids = all[:0]
	for _, id := range all {
		if ebiten.IsStandardGamepadLayoutAvailable(id) {
			g.ids = append(g.ids, id)
		}
	}
	return g.ids
}

func (g *ebitenGamepads) ButtonPressed(id ebiten.GamepadID, button ebiten.StandardGamepadButton) bool {
	return ebiten.IsStandardGamepadButtonPressed(id, button)
}

func (g *ebitenGamepads) Axis(id ebiten.GamepadID, axis ebiten.StandardGamepadAxis) float64 {
	return ebiten.StandardGamepadAxisValue(id, axis)
}

// resolveBindings turns configured key names into ebiten keys. Unknown names
// are logged and skipped.
func resolveBindings(bindings map[cfg.ActionID]cfg.InputBinding) map[cfg.ActionID][]ebiten.Key {
	resolved := make(map[cfg.ActionID][]ebiten.Key, len(bindings))
	for action, binding := range bindings {
		for _, name := range binding.Keys {
			var key ebiten.Key
			if err := key.UnmarshalText([]byte(name)); err != nil {
				log.Warn().Str("key", name).Int("action", int(action)).Msg("unknown key binding")
				continue
			}
			resolved[action] = append(resolved[action], key)
		}
	}
	return resolved
}

func orbitButton() ebiten.MouseButton {
	switch cfg.Input.OrbitButton {
	case "right":
		return ebiten.MouseButtonRight
	case "middle":
		return ebiten.MouseButtonMiddle
	default:
		return ebiten.MouseButtonLeft
	}
}

// UpdateInput polls raw input and updates the InputComponent.
// Must run BEFORE UpdateVehicle in the system order.
func UpdateInput(ecs *ecs.ECS) {
	keyBindingsOnce.Do(func() {
		keyBindings = resolveBindings(cfg.Input.Bindings)
	})

	input := GetOrCreateInput(ecs)
	pollActions(input, keyBindings, ebiten.IsKeyPressed, gamepads)

	x, y := ebiten.CursorPosition()
	_, wheelY := ebiten.Wheel()
	pollPointer(input, ebiten.IsMouseButtonPressed(orbitButton()), x, y, wheelY)
}

// pollActions swaps buffers and records which actions are held by keys or
// gamepads. pads may be nil.
func pollActions(input *components.InputData, bindings map[cfg.ActionID][]ebiten.Key, pressed func(ebiten.Key) bool, pads gamepadReader) {
	input.Previous = input.Current
	input.Current = [cfg.ActionCount]bool{}

	var keyboardUsed bool
	for action, keys := range bindings {
		for _, key := range keys {
			if pressed(key) {
				input.Current[action] = true
				keyboardUsed = true
				break
			}
		}
	}

	gamepadUsed := pads != nil && pollGamepads(input, pads)

	// Gamepad takes priority if both were used
	if gamepadUsed {
		input.Gamepad = true
	} else if keyboardUsed {
		input.Gamepad = false
	}
}

// pollGamepads merges bound buttons and the left stick's horizontal axis into
// the held actions. It reports whether any gamepad contributed.
func pollGamepads(input *components.InputData, pads gamepadReader) bool {
	deadzone := cfg.Input.AnalogDeadzone
	var used bool

	for _, id := range pads.Gamepads() {
		for action, binding := range cfg.Input.Bindings {
			for _, btn := range binding.StandardGamepadButtons {
				if pads.ButtonPressed(id, btn) {
					input.Current[action] = true
					used = true
					break
				}
			}
		}

		horizontal := pads.Axis(id, ebiten.StandardGamepadAxisLeftStickHorizontal)
		if horizontal < -deadzone {
			input.Current[cfg.ActionTurnLeft] = true
			used = true
		}
		if horizontal > deadzone {
			input.Current[cfg.ActionTurnRight] = true
			used = true
		}
	}

	return used
}

// pollPointer records the orbit drag and wheel for this frame.
func pollPointer(input *components.InputData, held bool, x, y int, wheel float64) {
	input.Wheel = wheel
	input.Dragging = held
	input.DragDX, input.DragDY = 0, 0

	if !held {
		input.StopPointer()
		return
	}
	input.DragDX, input.DragDY = input.TrackPointer(x, y)
}

// UpdateToggles handles the one-shot actions: camera mode, debug overlay and
// vehicle reset.
func UpdateToggles(e *ecs.ECS) {
	input := getInput(e.World)
	if input == nil {
		return
	}

	if input.JustPressed(cfg.ActionToggleCamera) {
		SetFollowEnabled(e, !FollowEnabled(e))
	}
	if input.JustPressed(cfg.ActionToggleDebug) {
		if debug := getDebug(e.World); debug != nil {
			debug.Enabled = !debug.Enabled
		}
	}
	if input.JustPressed(cfg.ActionResetVehicle) {
		ResetVehicle(e)
	}
}
