package systems

import (
	"testing"

	"github.com/automoto/jeepdrive/components"
	cfg "github.com/automoto/jeepdrive/config"
	"github.com/automoto/jeepdrive/systems/factory"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const frame = 1.0 / 60

// newTestECS builds a world with the scene singletons and a camera, the way
// the drive scene does before populating it.
func newTestECS(t *testing.T) *ecs.ECS {
	t.Helper()
	t.Cleanup(func() {
		cfg.Reset()
		PendingEdits.Drain()
	})

	e := ecs.NewECS(donburi.NewWorld())
	factory.CreateSettings(e)
	factory.CreateCamera(e)
	getClock(e.World).DeltaTime = frame
	return e
}

func mustVehicle(t *testing.T, e *ecs.ECS) *donburi.Entry {
	t.Helper()
	vehicle, err := factory.CreateVehicle(e)
	require.NoError(t, err)
	return vehicle
}

func mustWall(t *testing.T, e *ecs.ECS, spec factory.ObstacleSpec) *donburi.Entry {
	t.Helper()
	wall, err := factory.CreateWall(e, spec)
	require.NoError(t, err)
	return wall
}

func press(e *ecs.ECS, actions ...cfg.ActionID) {
	input := getInput(e.World)
	input.Previous = input.Current
	input.Current = [cfg.ActionCount]bool{}
	for _, a := range actions {
		input.Current[a] = true
	}
}

func bodyOf(entry *donburi.Entry) *components.RigidBodyData {
	return components.RigidBody.Get(entry)
}
