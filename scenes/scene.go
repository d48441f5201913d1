package scenes

import "github.com/hajimehoshi/ebiten/v2"

// Scene is driven by the game loop once per tick.
type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}
