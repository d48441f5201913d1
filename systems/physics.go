package systems

import (
	"github.com/automoto/jeepdrive/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePhysics steps the physics world by this frame's dt. Runs after the
// motion model so both advance in lockstep.
func UpdatePhysics(e *ecs.ECS) {
	clock := getClock(e.World)
	entry, ok := components.PhysicsWorld.First(e.World)
	if !ok || clock == nil {
		return
	}
	components.PhysicsWorld.Get(entry).Step(clock.DeltaTime)
}

// UpdateBodySync copies each rigid body's transform into the presentation
// transform, adding the fixed visual offset.
func UpdateBodySync(e *ecs.ECS) {
	components.Transform.Each(e.World, func(entry *donburi.Entry) {
		if !entry.HasComponent(components.RigidBody) {
			return
		}
		SyncTransform(components.Transform.Get(entry), components.RigidBody.Get(entry))
	})
}

// SyncTransform derives t from the body.
func SyncTransform(t *components.TransformData, body *components.RigidBodyData) {
	t.Position = body.Position.Add(t.VisualOffset)
	t.Rotation = body.Orientation
}
