package systems

import (
	"github.com/automoto/jeepdrive/components"
	cfg "github.com/automoto/jeepdrive/config"
	"github.com/automoto/jeepdrive/shared/gamemath"
	"github.com/automoto/jeepdrive/tags"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/events"
)

// SpeedChange carries the vehicle's signed velocity after a motion update.
type SpeedChange struct {
	Speed     float64
	MaxSpeed  float64
	DeltaTime float64
}

// SpeedChanged is published once per frame per vehicle. Observers run when
// UpdateSpeedObservers processes the queue.
var SpeedChanged = events.NewEventType[SpeedChange]()

// UpdateVehicle runs the motion model: velocity from the held pedals, yaw
// above the turning deadzone, then displacement along the local forward axis.
// It is the only writer of the vehicle body's position and orientation.
func UpdateVehicle(e *ecs.ECS) {
	input := getInput(e.World)
	clock := getClock(e.World)
	if input == nil || clock == nil {
		return
	}
	in := driveInput(input)

	tags.Vehicle.Each(e.World, func(entry *donburi.Entry) {
		vehicle := components.Vehicle.Get(entry)
		body := components.RigidBody.Get(entry)

		pose, v := gamemath.Drive(
			gamemath.Pose{Position: body.Position, Orientation: body.Orientation},
			vehicle.Velocity, in, vehicle.Params, clock.DeltaTime,
		)
		body.Position = pose.Position
		body.Orientation = pose.Orientation
		vehicle.Velocity = v

		SpeedChanged.Publish(e.World, SpeedChange{
			Speed:     v,
			MaxSpeed:  vehicle.Params.MaxSpeed,
			DeltaTime: clock.DeltaTime,
		})
	})
}

func driveInput(input *components.InputData) gamemath.DriveInput {
	return gamemath.DriveInput{
		Accelerate: input.Pressed(cfg.ActionAccelerate),
		Brake:      input.Pressed(cfg.ActionBrake),
		TurnLeft:   input.Pressed(cfg.ActionTurnLeft),
		TurnRight:  input.Pressed(cfg.ActionTurnRight),
	}
}

// VehicleSpeed returns the signed velocity of the first vehicle. ok is false
// when no vehicle exists.
func VehicleSpeed(w donburi.World) (speed float64, ok bool) {
	entry, ok := tags.Vehicle.First(w)
	if !ok {
		return 0, false
	}
	return components.Vehicle.Get(entry).Velocity, true
}

// ResetVehicle puts every vehicle back on its spawn point at rest.
func ResetVehicle(e *ecs.ECS) {
	tags.Vehicle.Each(e.World, func(entry *donburi.Entry) {
		body := components.RigidBody.Get(entry)
		body.Velocity = mgl64.Vec3{}
		body.AngularVelocity = mgl64.Vec3{}
		body.Orientation = mgl64.QuatRotate(cfg.Vehicle.SpawnYaw, gamemath.Up)
		body.SetPosition(cfg.Vehicle.Spawn)
		components.Vehicle.Get(entry).Velocity = 0
	})
}

// UpdateSpeedObservers delivers this frame's speed events.
func UpdateSpeedObservers(e *ecs.ECS) {
	SpeedChanged.ProcessEvents(e.World)
}
