package factory

import (
	"github.com/automoto/jeepdrive/archetypes"
	"github.com/automoto/jeepdrive/components"
	cfg "github.com/automoto/jeepdrive/config"
	"github.com/automoto/jeepdrive/shared/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateCamera spawns the camera at its initial framing, in follow mode with
// no target.
func CreateCamera(ecs *ecs.ECS) *donburi.Entry {
	camera := archetypes.Camera.Spawn(ecs)

	aspect := 1.0
	if cfg.C.Height > 0 {
		aspect = float64(cfg.C.Width) / float64(cfg.C.Height)
	}

	data := &components.CameraData{
		Mode:           components.CameraFollow,
		Position:       cfg.Camera.InitialPosition,
		LookAt:         cfg.Camera.InitialLookAt,
		Up:             gamemath.Up,
		Offset:         cfg.Camera.Offset,
		ManualEye:      cfg.Camera.InitialPosition,
		ManualLookAt:   cfg.Camera.InitialLookAt,
		BaseFOV:        cfg.Camera.BaseFOV,
		FOV:            cfg.Camera.BaseFOV,
		FOVVariation:   cfg.Camera.FOVVariation,
		MaxSpeedForFOV: cfg.Camera.MaxSpeedForFOV,
		FollowBlend:    cfg.Camera.FollowBlend,
		FOVBlend:       cfg.Camera.FOVBlend,
		Aspect:         aspect,
		Near:           cfg.Camera.Near,
		Far:            cfg.Camera.Far,
	}
	data.Orbit = gamemath.OrbitFromEye(data.ManualEye, data.ManualLookAt,
		cfg.Camera.OrbitMinDistance, cfg.Camera.OrbitMaxDistance, cfg.Camera.OrbitDamping)
	data.UpdateMatrices()

	components.Camera.Set(camera, data)
	return camera
}
