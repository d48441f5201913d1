package components

import (
	"github.com/automoto/jeepdrive/physics"
	"github.com/yohamta/donburi"
)

// RigidBodyData links an entity to its physics body.
type RigidBodyData struct {
	*physics.Body
}

var RigidBody = donburi.NewComponentType[RigidBodyData]()

// PhysicsWorldData holds the scene's physics world (singleton component).
type PhysicsWorldData struct {
	*physics.World
	MaxDeltaTime float64
}

var PhysicsWorld = donburi.NewComponentType[PhysicsWorldData]()

// ClockData tracks frame timing (singleton component).
type ClockData struct {
	DeltaTime float64 // seconds, this frame
	Elapsed   float64
	Frame     int
}

var Clock = donburi.NewComponentType[ClockData]()
