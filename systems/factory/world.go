package factory

import (
	"github.com/automoto/jeepdrive/archetypes"
	"github.com/automoto/jeepdrive/components"
	cfg "github.com/automoto/jeepdrive/config"
	"github.com/automoto/jeepdrive/physics"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateSettings spawns the scene singletons: input, clock, physics world,
// obstacle index and debug state.
func CreateSettings(ecs *ecs.ECS) *donburi.Entry {
	settings := archetypes.Settings.Spawn(ecs)

	world := physics.NewWorld(physics.WorldConfig{
		Gravity:  cfg.Physics.Gravity,
		FloorY:   cfg.Physics.FloorY,
		HasFloor: cfg.Physics.HasFloor,
		Size:     cfg.Physics.WorldSize,
		CellSize: cfg.Physics.CellSize,
	})
	components.PhysicsWorld.SetValue(settings, components.PhysicsWorldData{
		World:        world,
		MaxDeltaTime: cfg.Physics.MaxDeltaTime,
	})
	components.Level.SetValue(settings, components.LevelData{
		Path:      cfg.Level.Path,
		Obstacles: make(map[string]donburi.Entity),
	})
	components.Debug.SetValue(settings, components.DebugData{
		Enabled: cfg.Debug.Enabled,
	})

	return settings
}

// physicsWorld returns the scene's physics world.
func physicsWorld(ecs *ecs.ECS) (*physics.World, bool) {
	entry, ok := components.PhysicsWorld.First(ecs.World)
	if !ok {
		return nil, false
	}
	return components.PhysicsWorld.Get(entry).World, true
}
