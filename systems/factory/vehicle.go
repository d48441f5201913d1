package factory

import (
	"fmt"
	"math"

	"github.com/automoto/jeepdrive/archetypes"
	"github.com/automoto/jeepdrive/components"
	cfg "github.com/automoto/jeepdrive/config"
	"github.com/automoto/jeepdrive/physics"
	"github.com/automoto/jeepdrive/shared/gamemath"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateVehicle spawns the jeep at its spawn point: a dynamic box body, the
// motion model state, a presentation transform, its wireframe and the wheel
// clip.
func CreateVehicle(ecs *ecs.ECS) (*donburi.Entry, error) {
	world, ok := physicsWorld(ecs)
	if !ok {
		return nil, ErrNoPhysicsWorld
	}

	body, err := physics.NewBody(physics.BodyOptions{
		Name:           "jeep",
		Mass:           cfg.Vehicle.Mass,
		HalfExtents:    cfg.Vehicle.HalfExtents,
		Position:       cfg.Vehicle.Spawn,
		Orientation:    mgl64.QuatRotate(cfg.Vehicle.SpawnYaw, gamemath.Up),
		LinearDamping:  cfg.Vehicle.LinearDamping,
		AngularDamping: cfg.Vehicle.AngularDamping,
		FixedRotation:  cfg.Vehicle.FixedRotation,
		Tag:            cfg.Vehicle.Tag,
	})
	if err != nil {
		return nil, fmt.Errorf("create vehicle: %w", err)
	}

	vehicle := archetypes.Vehicle.Spawn(ecs)

	components.Vehicle.SetValue(vehicle, components.VehicleData{
		Params: gamemath.DriveParams{
			Acceleration:       cfg.Vehicle.Acceleration,
			MaxSpeed:           cfg.Vehicle.MaxSpeed,
			Friction:           cfg.Vehicle.Friction,
			TurnSpeed:          cfg.Vehicle.TurnSpeed,
			MinSpeedForTurning: cfg.Vehicle.MinSpeedForTurning,
		},
	})
	components.RigidBody.SetValue(vehicle, components.RigidBodyData{Body: body})
	components.Transform.SetValue(vehicle, components.TransformData{
		Position:     body.Position.Add(cfg.Vehicle.VisualOffset),
		Rotation:     body.Orientation,
		VisualOffset: cfg.Vehicle.VisualOffset,
	})

	// The mesh is modelled around the pivot, so shift the box back onto the body.
	mesh := components.NewBoxMesh(cfg.Vehicle.HalfExtents.Mul(2))
	for i, v := range mesh.Vertices {
		mesh.Vertices[i] = v.Sub(cfg.Vehicle.VisualOffset)
	}
	components.Mesh.SetValue(vehicle, components.MeshData{
		Mesh:  mesh,
		Color: cfg.UI.JeepColor,
	})

	components.Clip.SetValue(vehicle, components.ClipData{
		Tween: gween.New(0, 2*math.Pi, float32(cfg.Vehicle.ClipDuration), ease.Linear),
	})

	world.AddBody(body)
	return vehicle, nil
}
