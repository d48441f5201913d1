package archetypes

import (
	"github.com/automoto/jeepdrive/components"
	"github.com/automoto/jeepdrive/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// LayerDefault is the only render layer.
const LayerDefault ecs.LayerID = 0

var (
	Vehicle = newArchetype(
		tags.Vehicle,
		components.Vehicle,
		components.RigidBody,
		components.Transform,
		components.Mesh,
		components.Clip,
	)
	Wall = newArchetype(
		tags.Wall,
		components.Obstacle,
		components.RigidBody,
	)
	Floor = newArchetype(
		tags.Floor,
		components.RigidBody,
	)
	Camera = newArchetype(
		tags.Camera,
		components.Camera,
	)
	// Settings carries the scene-wide singletons.
	Settings = newArchetype(
		tags.Settings,
		components.Input,
		components.Clock,
		components.PhysicsWorld,
		components.Level,
		components.Debug,
	)
	Audio = newArchetype(
		components.Audio,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		LayerDefault,
		append(a.components, cs...)...,
	))
	return e
}
