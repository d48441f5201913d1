package systems

import (
	"fmt"

	"github.com/automoto/jeepdrive/components"
	cfg "github.com/automoto/jeepdrive/config"
	"github.com/automoto/jeepdrive/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/yohamta/donburi/ecs"
)

var hudFace, hintFace *text.GoXFace

const (
	controlsHint = "W/S drive  A/D steer  C camera  F1 debug  R reset"
	gamepadHint  = "RT/LT drive  stick steer  Y camera  Back debug  Start reset"
)

// hintFor picks the controls hint matching the last input device.
func hintFor(input *components.InputData) string {
	if input != nil && input.Gamepad {
		return gamepadHint
	}
	return controlsHint
}

// hudLines returns the speedometer and camera readout.
func hudLines(e *ecs.ECS) []string {
	var lines []string
	if speed, ok := VehicleSpeed(e.World); ok {
		lines = append(lines, fmt.Sprintf("speed %5.1f", speed))
	} else {
		lines = append(lines, "no vehicle")
	}
	if camera := getCamera(e.World); camera != nil {
		lines = append(lines,
			fmt.Sprintf("camera %s", camera.Mode),
			fmt.Sprintf("fov %4.1f", camera.FOV))
	}
	if level := getLevel(e.World); level != nil && level.LoadErr != nil {
		lines = append(lines, "level failed to load")
	}
	return lines
}

// DrawHUD renders the readout in the top-left corner.
func DrawHUD(e *ecs.ECS, screen *ebiten.Image) {
	lines := hudLines(e)
	margin := cfg.UI.HUDMargin

	if !fonts.Loaded(fonts.HUD) {
		for i, line := range lines {
			ebitenutil.DebugPrintAt(screen, line, int(margin), int(margin)+i*16)
		}
		return
	}

	// Lazy load the faces
	if hudFace == nil {
		hudFace = text.NewGoXFace(fonts.HUD.Get())
	}
	if hintFace == nil && fonts.Loaded(fonts.Small) {
		hintFace = text.NewGoXFace(fonts.Small.Get())
	}
	lineHeight := cfg.UI.HUDFontSize * 1.4
	for i, line := range lines {
		op := &text.DrawOptions{}
		op.GeoM.Translate(margin, margin+float64(i)*lineHeight)
		op.ColorScale.ScaleWithColor(cfg.UI.HUDColor)
		text.Draw(screen, line, hudFace, op)
	}

	if hintFace != nil {
		op := &text.DrawOptions{}
		op.GeoM.Translate(margin, float64(screen.Bounds().Dy())-margin-hintFace.Metrics().HAscent)
		op.ColorScale.ScaleWithColor(cfg.UI.GridColor)
		text.Draw(screen, hintFor(getInput(e.World)), hintFace, op)
	}
}
