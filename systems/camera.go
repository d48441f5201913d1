package systems

import (
	"math"

	"github.com/automoto/jeepdrive/components"
	cfg "github.com/automoto/jeepdrive/config"
	"github.com/automoto/jeepdrive/shared/gamemath"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCamera advances the camera one frame. In follow mode with no target
// it does nothing.
func UpdateCamera(e *ecs.ECS) {
	camera := getCamera(e.World)
	if camera == nil {
		return
	}

	switch camera.Mode {
	case components.CameraManual:
		updateManualCamera(camera, getInput(e.World))
	default:
		target, ok := cameraTarget(e.World, camera)
		if !ok {
			return // no target yet (or it was removed), leave the camera where it is
		}
		updateFollowCamera(camera, target)
	}
}

// followTarget is what the chase camera reads from its target each frame.
type followTarget struct {
	Position mgl64.Vec3
	Rotation mgl64.Quat
	Speed    float64
}

func cameraTarget(w donburi.World, camera *components.CameraData) (followTarget, bool) {
	if !camera.HasTarget || !w.Valid(camera.Target) {
		return followTarget{}, false
	}
	entry := w.Entry(camera.Target)

	var t followTarget
	switch {
	case entry.HasComponent(components.Transform):
		tr := components.Transform.Get(entry)
		t.Position, t.Rotation = tr.Position, tr.Rotation
	case entry.HasComponent(components.RigidBody):
		body := components.RigidBody.Get(entry)
		t.Position, t.Rotation = body.Position, body.Orientation
	default:
		return followTarget{}, false
	}
	if entry.HasComponent(components.Vehicle) {
		t.Speed = components.Vehicle.Get(entry).Velocity
	}
	return t, true
}

// updateFollowCamera lerps toward the rotated offset by a fixed per-frame
// factor, looks at the target and widens the FOV with speed.
func updateFollowCamera(camera *components.CameraData, t followTarget) {
	desired := gamemath.FollowPosition(t.Position, t.Rotation, camera.Offset)
	camera.Position = gamemath.LerpVec3(camera.Position, desired, camera.FollowBlend)
	camera.LookAt = t.Position

	targetFOV := gamemath.TargetFOV(t.Speed, camera.BaseFOV, camera.FOVVariation, camera.MaxSpeedForFOV)
	camera.FOV = gamemath.Lerp(camera.FOV, targetFOV, camera.FOVBlend)

	camera.UpdateMatrices()
}

// updateManualCamera applies orbit input around the manual look-at point.
func updateManualCamera(camera *components.CameraData, input *components.InputData) {
	if input != nil {
		if input.Dragging {
			speed := cfg.Camera.OrbitRotateSpeed
			camera.Orbit.Rotate(-input.DragDX*speed, input.DragDY*speed)
		}
		if input.Wheel != 0 {
			camera.Orbit.Zoom(math.Pow(cfg.Camera.OrbitZoomSpeed, input.Wheel))
		}
	}
	camera.Orbit.Update()

	camera.ManualEye = camera.Orbit.Eye(camera.ManualLookAt)
	camera.Position = camera.ManualEye
	camera.LookAt = camera.ManualLookAt
	camera.UpdateMatrices()
}

// SetTarget makes the camera chase target. With snap the camera jumps to the
// follow position and base FOV at once instead of easing in.
func SetTarget(e *ecs.ECS, target *donburi.Entry, snap bool) {
	camera := getCamera(e.World)
	if camera == nil || target == nil {
		return
	}
	camera.Target = target.Entity()
	camera.HasTarget = true

	if !snap {
		return
	}
	t, ok := cameraTarget(e.World, camera)
	if !ok {
		return
	}
	camera.Position = gamemath.FollowPosition(t.Position, t.Rotation, camera.Offset)
	camera.LookAt = t.Position
	camera.FOV = camera.BaseFOV
	camera.UpdateMatrices()
}

// FollowEnabled reports whether the camera is in follow mode.
func FollowEnabled(e *ecs.ECS) bool {
	camera := getCamera(e.World)
	return camera != nil && camera.Mode == components.CameraFollow
}

// SetFollowEnabled switches between follow and manual mode. Entering manual
// mode keeps the current view as the orbit's starting point.
func SetFollowEnabled(e *ecs.ECS, enabled bool) {
	camera := getCamera(e.World)
	if camera == nil {
		return
	}

	if enabled {
		camera.Mode = components.CameraFollow
		return
	}
	if camera.Mode == components.CameraManual {
		return
	}
	camera.Mode = components.CameraManual
	camera.ManualEye = camera.Position
	camera.ManualLookAt = camera.LookAt
	resetOrbit(camera)
}

// SetManualEye moves the manual camera's eye. The look-at point is kept.
func SetManualEye(e *ecs.ECS, eye mgl64.Vec3) {
	camera := getCamera(e.World)
	if camera == nil {
		return
	}
	camera.ManualEye = eye
	resetOrbit(camera)
	if camera.Mode == components.CameraManual {
		camera.Position = eye
		camera.UpdateMatrices()
	}
}

// SetManualLookAt moves the manual camera's pivot. The eye is kept.
func SetManualLookAt(e *ecs.ECS, lookAt mgl64.Vec3) {
	camera := getCamera(e.World)
	if camera == nil {
		return
	}
	camera.ManualLookAt = lookAt
	resetOrbit(camera)
	if camera.Mode == components.CameraManual {
		camera.LookAt = lookAt
		camera.UpdateMatrices()
	}
}

func resetOrbit(camera *components.CameraData) {
	camera.Orbit = gamemath.OrbitFromEye(
		camera.ManualEye, camera.ManualLookAt,
		cfg.Camera.OrbitMinDistance, cfg.Camera.OrbitMaxDistance, cfg.Camera.OrbitDamping,
	)
}
