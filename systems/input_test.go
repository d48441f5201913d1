package systems

import (
	"testing"

	"github.com/automoto/jeepdrive/components"
	cfg "github.com/automoto/jeepdrive/config"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveBindings_SkipsUnknownNames(t *testing.T) {
	resolved := resolveBindings(map[cfg.ActionID]cfg.InputBinding{
		cfg.ActionAccelerate: {Keys: []string{"W", "NotAKey", "ArrowUp"}},
		cfg.ActionBrake:      {Keys: []string{"bogus"}},
	})

	assert.Equal(t, []ebiten.Key{ebiten.KeyW, ebiten.KeyArrowUp}, resolved[cfg.ActionAccelerate])
	assert.Empty(t, resolved[cfg.ActionBrake])
}

func TestResolveBindings_DefaultsAllResolve(t *testing.T) {
	resolved := resolveBindings(cfg.Input.Bindings)
	for action, binding := range cfg.Input.Bindings {
		assert.Len(t, resolved[action], len(binding.Keys), "action %d", action)
	}
}

func TestPollActions(t *testing.T) {
	input := &components.InputData{}
	bindings := map[cfg.ActionID][]ebiten.Key{
		cfg.ActionAccelerate: {ebiten.KeyW, ebiten.KeyZ},
		cfg.ActionBrake:      {ebiten.KeyS},
	}
	held := map[ebiten.Key]bool{ebiten.KeyZ: true}
	pressed := func(k ebiten.Key) bool { return held[k] }

	pollActions(input, bindings, pressed, nil)
	assert.True(t, input.Pressed(cfg.ActionAccelerate), "any bound key counts")
	assert.True(t, input.JustPressed(cfg.ActionAccelerate))
	assert.False(t, input.Pressed(cfg.ActionBrake))

	pollActions(input, bindings, pressed, nil)
	assert.True(t, input.Pressed(cfg.ActionAccelerate))
	assert.False(t, input.JustPressed(cfg.ActionAccelerate))

	held = map[ebiten.Key]bool{}
	pollActions(input, bindings, pressed, nil)
	assert.False(t, input.Pressed(cfg.ActionAccelerate))
}

type stubGamepad struct {
	buttons map[ebiten.StandardGamepadButton]bool
	stickX  float64
}

func (g *stubGamepad) Gamepads() []ebiten.GamepadID { return []ebiten.GamepadID{0} }

func (g *stubGamepad) ButtonPressed(_ ebiten.GamepadID, b ebiten.StandardGamepadButton) bool {
	return g.buttons[b]
}

func (g *stubGamepad) Axis(_ ebiten.GamepadID, a ebiten.StandardGamepadAxis) float64 {
	if a == ebiten.StandardGamepadAxisLeftStickHorizontal {
		return g.stickX
	}
	return 0
}

func TestPollActions_Gamepad(t *testing.T) {
	input := &components.InputData{}
	bindings := resolveBindings(cfg.Input.Bindings)
	noKeys := func(ebiten.Key) bool { return false }
	pad := &stubGamepad{buttons: map[ebiten.StandardGamepadButton]bool{
		ebiten.StandardGamepadButtonFrontBottomRight: true,
	}}

	pollActions(input, bindings, noKeys, pad)
	assert.True(t, input.Pressed(cfg.ActionAccelerate), "right trigger accelerates")
	assert.False(t, input.Pressed(cfg.ActionBrake))
	assert.True(t, input.Gamepad)

	pad.buttons = map[ebiten.StandardGamepadButton]bool{ebiten.StandardGamepadButtonFrontBottomLeft: true}
	pad.stickX = -0.2
	pollActions(input, bindings, noKeys, pad)
	assert.True(t, input.Pressed(cfg.ActionBrake), "left trigger brakes")
	assert.False(t, input.Pressed(cfg.ActionAccelerate))
	assert.False(t, input.Pressed(cfg.ActionTurnLeft), "stick inside the deadzone")

	pad.buttons = nil
	pad.stickX = -0.6
	pollActions(input, bindings, noKeys, pad)
	assert.True(t, input.Pressed(cfg.ActionTurnLeft))
	assert.False(t, input.Pressed(cfg.ActionTurnRight))

	pad.stickX = 0.6
	pollActions(input, bindings, noKeys, pad)
	assert.True(t, input.Pressed(cfg.ActionTurnRight))
	assert.False(t, input.Pressed(cfg.ActionTurnLeft))
}

func TestPollActions_LastDevice(t *testing.T) {
	input := &components.InputData{}
	bindings := map[cfg.ActionID][]ebiten.Key{cfg.ActionAccelerate: {ebiten.KeyW}}
	pad := &stubGamepad{}
	held := false
	pressed := func(k ebiten.Key) bool { return held && k == ebiten.KeyW }

	pad.buttons = map[ebiten.StandardGamepadButton]bool{ebiten.StandardGamepadButtonRightTop: true}
	pollActions(input, bindings, pressed, pad)
	require.True(t, input.Gamepad)
	assert.Equal(t, gamepadHint, hintFor(input))

	pad.buttons = nil
	pollActions(input, bindings, pressed, pad)
	assert.True(t, input.Gamepad, "idle frames keep the last device")

	held = true
	pollActions(input, bindings, pressed, pad)
	assert.False(t, input.Gamepad)
	assert.Equal(t, controlsHint, hintFor(input))
	assert.Equal(t, controlsHint, hintFor(nil))
}

func TestPollPointer_DragDeltas(t *testing.T) {
	input := &components.InputData{}

	pollPointer(input, true, 100, 50, 0)
	require.True(t, input.Dragging)
	assert.Zero(t, input.DragDX, "first held frame has no motion")

	pollPointer(input, true, 110, 45, 1)
	assert.Equal(t, 10.0, input.DragDX)
	assert.Equal(t, -5.0, input.DragDY)
	assert.Equal(t, 1.0, input.Wheel)

	pollPointer(input, false, 300, 300, 0)
	assert.False(t, input.Dragging)
	assert.Zero(t, input.DragDX)

	pollPointer(input, true, 310, 300, 0)
	assert.Zero(t, input.DragDX, "release forgets the last position")
}

func TestUpdateCamera_ManualOrbitFromDrag(t *testing.T) {
	e := newTestECS(t)
	SetFollowEnabled(e, false)
	SetManualLookAt(e, mgl64.Vec3{})
	SetManualEye(e, mgl64.Vec3{0, 0, 5})

	input := getInput(e.World)
	input.Dragging = true
	input.DragDX = -100
	input.Wheel = 0

	UpdateCamera(e)

	camera := getCamera(e.World)
	assert.Greater(t, camera.Position.X(), 0.0, "dragging left orbits toward +X")
	assert.InDelta(t, 5.0, camera.Position.Len(), 1e-9)
}
