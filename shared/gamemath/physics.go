package gamemath

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// FrictionReferenceRate is the frame rate the friction factor is expressed at.
// A friction of 0.95 removes 5% of the speed per 1/60 s regardless of tick rate.
const FrictionReferenceRate = 60.0

var (
	// Up is the world vertical axis; yaw rotates about it.
	Up = mgl64.Vec3{0, 1, 0}
	// Forward is the body's local "ahead" axis before orientation is applied.
	Forward = mgl64.Vec3{0, 0, -1}
)

// DriveParams holds the motion model tunables.
type DriveParams struct {
	Acceleration       float64 // units/s²
	MaxSpeed           float64 // units/s
	Friction           float64 // decay factor per 1/60 s, in (0, 1]
	TurnSpeed          float64 // rad/s
	MinSpeedForTurning float64 // turning deadzone
}

// DriveInput is the subset of held actions the motion model reacts to.
type DriveInput struct {
	Accelerate bool
	Brake      bool
	TurnLeft   bool
	TurnRight  bool
}

// Pose is a rigid body's position and orientation.
type Pose struct {
	Position    mgl64.Vec3
	Orientation mgl64.Quat
}

// ClampSpeed clamps a value to [-max, max].
func ClampSpeed(speed, max float64) float64 {
	if speed > max {
		return max
	}
	if speed < -max {
		return -max
	}
	return speed
}

// StepVelocity advances the scalar forward velocity by dt seconds.
// Accelerate is checked first, so it wins when both pedals are held.
func StepVelocity(v float64, in DriveInput, p DriveParams, dt float64) float64 {
	if dt <= 0 {
		return v
	}

	switch {
	case in.Accelerate:
		v -= p.Acceleration * dt
	case in.Brake:
		v += p.Acceleration * dt
	default:
		v *= math.Pow(p.Friction, dt*FrictionReferenceRate)
	}

	return ClampSpeed(v, p.MaxSpeed)
}

// YawDelta returns the yaw to apply this step. Below the turning deadzone,
// or when both turn keys cancel out, it is zero.
func YawDelta(v float64, in DriveInput, p DriveParams, dt float64) float64 {
	if dt <= 0 || math.Abs(v) <= p.MinSpeedForTurning {
		return 0
	}

	yaw := 0.0
	if in.TurnLeft {
		yaw += p.TurnSpeed * dt
	}
	if in.TurnRight {
		yaw -= p.TurnSpeed * dt
	}
	return yaw
}

// ForwardVector returns the body's forward direction in world space.
func ForwardVector(orientation mgl64.Quat) mgl64.Vec3 {
	return orientation.Rotate(Forward)
}

// Yaw rotates orientation about the world vertical axis.
func Yaw(orientation mgl64.Quat, angle float64) mgl64.Quat {
	if angle == 0 {
		return orientation
	}
	return mgl64.QuatRotate(angle, Up).Mul(orientation).Normalize()
}

// Drive runs one motion model step: velocity, then turning, then displacement
// along the post-turn forward vector.
func Drive(pose Pose, v float64, in DriveInput, p DriveParams, dt float64) (Pose, float64) {
	if dt <= 0 {
		return pose, v
	}

	v = StepVelocity(v, in, p, dt)
	pose.Orientation = Yaw(pose.Orientation, YawDelta(v, in, p, dt))
	pose.Position = pose.Position.Add(ForwardVector(pose.Orientation).Mul(v * dt))

	return pose, v
}
