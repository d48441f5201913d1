package components

import (
	"github.com/automoto/jeepdrive/shared/gamemath"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
)

// CameraMode selects what drives the camera.
type CameraMode int

const (
	CameraFollow CameraMode = iota // chase the target
	CameraManual                   // externally supplied eye and look-at, orbit controls
)

func (m CameraMode) String() string {
	if m == CameraManual {
		return "manual"
	}
	return "follow"
}

type CameraData struct {
	Mode CameraMode

	Position mgl64.Vec3
	LookAt   mgl64.Vec3
	Up       mgl64.Vec3
	Offset   mgl64.Vec3 // local-space follow offset

	Target    donburi.Entity
	HasTarget bool

	// Manual mode
	ManualEye    mgl64.Vec3
	ManualLookAt mgl64.Vec3
	Orbit        gamemath.Orbit

	BaseFOV        float64 // degrees
	FOV            float64
	FOVVariation   float64
	MaxSpeedForFOV float64
	FollowBlend    float64
	FOVBlend       float64

	Aspect     float64
	Near, Far  float64
	Projection mgl64.Mat4
	View       mgl64.Mat4
}

// UpdateMatrices recomputes the view and projection from the current state.
func (c *CameraData) UpdateMatrices() {
	up := c.Up
	if up.Len() == 0 {
		up = gamemath.Up
	}
	c.View = mgl64.LookAtV(c.Position, c.LookAt, up)
	c.Projection = mgl64.Perspective(mgl64.DegToRad(c.FOV), c.Aspect, c.Near, c.Far)
}

var Camera = donburi.NewComponentType[CameraData]()
