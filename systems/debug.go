package systems

import (
	"fmt"

	"github.com/automoto/jeepdrive/components"
	cfg "github.com/automoto/jeepdrive/config"
	"github.com/automoto/jeepdrive/shared/gamemath"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/yohamta/donburi/ecs"
)

// DrawDebugOverlay draws every physics body's collision bounds and the contact
// counter. It does nothing while the overlay is disabled.
func DrawDebugOverlay(e *ecs.ECS, screen *ebiten.Image) {
	debug := getDebug(e.World)
	if debug == nil || !debug.Enabled {
		return
	}

	camera := getCamera(e.World)
	entry, ok := components.PhysicsWorld.First(e.World)
	if camera != nil && ok {
		vp := newViewport(camera, screen.Bounds().Dx(), screen.Bounds().Dy())
		for _, body := range components.PhysicsWorld.Get(entry).Bodies() {
			// The world collides axis-aligned bounds, so that is what gets drawn.
			corners := gamemath.BoxCorners(body.Bounds())
			model := mgl64.Translate3D(body.Position.X(), body.Position.Y(), body.Position.Z())
			for _, edge := range gamemath.BoxEdges {
				vp.line(screen, model, corners[edge[0]], corners[edge[1]], cfg.Debug.BodyColor)
			}
		}
	}

	msg := fmt.Sprintf("TPS %0.1f  FPS %0.1f\ncontacts %d  last %s",
		ebiten.ActualTPS(), ebiten.ActualFPS(), debug.ContactCount, debug.LastContact)
	ebitenutil.DebugPrintAt(screen, msg, 10, screen.Bounds().Dy()-40)
}
