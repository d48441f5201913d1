package systems

import (
	"github.com/automoto/jeepdrive/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// GetOrCreateInput returns the singleton Input component, creating if needed
func GetOrCreateInput(ecs *ecs.ECS) *components.InputData {
	entry, ok := components.Input.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Input))
	}
	return components.Input.Get(entry)
}

func getInput(w donburi.World) *components.InputData {
	entry, ok := components.Input.First(w)
	if !ok {
		return nil
	}
	return components.Input.Get(entry)
}

func getClock(w donburi.World) *components.ClockData {
	entry, ok := components.Clock.First(w)
	if !ok {
		return nil
	}
	return components.Clock.Get(entry)
}

func getDebug(w donburi.World) *components.DebugData {
	entry, ok := components.Debug.First(w)
	if !ok {
		return nil
	}
	return components.Debug.Get(entry)
}

func getLevel(w donburi.World) *components.LevelData {
	entry, ok := components.Level.First(w)
	if !ok {
		return nil
	}
	return components.Level.Get(entry)
}

func getCamera(w donburi.World) *components.CameraData {
	entry, ok := components.Camera.First(w)
	if !ok {
		return nil
	}
	return components.Camera.Get(entry)
}
