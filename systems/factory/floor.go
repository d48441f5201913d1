package factory

import (
	"fmt"

	"github.com/automoto/jeepdrive/archetypes"
	"github.com/automoto/jeepdrive/components"
	cfg "github.com/automoto/jeepdrive/config"
	"github.com/automoto/jeepdrive/physics"
	"github.com/automoto/jeepdrive/tags"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// floorThickness is the depth of the floor slab below FloorY.
const floorThickness = 1.0

// CreateFloor adds a static slab whose top face is the floor plane.
func CreateFloor(ecs *ecs.ECS) (*donburi.Entry, error) {
	world, ok := physicsWorld(ecs)
	if !ok {
		return nil, ErrNoPhysicsWorld
	}

	half := float64(cfg.Physics.WorldSize) / 2
	body, err := physics.NewBody(physics.BodyOptions{
		Name:        "floor",
		HalfExtents: mgl64.Vec3{half, floorThickness / 2, half},
		Position:    mgl64.Vec3{0, cfg.Physics.FloorY - floorThickness/2, 0},
		Tag:         tags.BodyFloor,
	})
	if err != nil {
		return nil, fmt.Errorf("create floor: %w", err)
	}

	floor := archetypes.Floor.Spawn(ecs)
	components.RigidBody.SetValue(floor, components.RigidBodyData{Body: body})
	world.AddBody(body)

	return floor, nil
}
