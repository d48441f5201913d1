package systems

import (
	"github.com/automoto/jeepdrive/components"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

const defaultTPS = 60

// UpdateClock sets this frame's delta time from the tick rate. Must run
// first so every later system sees the same dt.
func UpdateClock(e *ecs.ECS) {
	clock := getClock(e.World)
	if clock == nil {
		return
	}

	tps := ebiten.TPS()
	if tps <= 0 {
		tps = defaultTPS
	}

	maxDt := 0.0
	if entry, ok := components.PhysicsWorld.First(e.World); ok {
		maxDt = components.PhysicsWorld.Get(entry).MaxDeltaTime
	}
	AdvanceClock(clock, 1/float64(tps), maxDt)
}

// AdvanceClock records a frame of dt seconds, clamped to maxDt when maxDt > 0.
func AdvanceClock(clock *components.ClockData, dt, maxDt float64) {
	if dt < 0 {
		dt = 0
	}
	if maxDt > 0 && dt > maxDt {
		dt = maxDt
	}
	clock.DeltaTime = dt
	clock.Elapsed += dt
	clock.Frame++
}
