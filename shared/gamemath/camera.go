package gamemath

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Lerp moves a toward b by factor t.
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// LerpVec3 moves a toward b by factor t.
func LerpVec3(a, b mgl64.Vec3, t float64) mgl64.Vec3 {
	return a.Add(b.Sub(a).Mul(t))
}

// FollowPosition returns where a chase camera wants to be: the local offset
// rotated into the target's frame, added to the target position.
func FollowPosition(targetPos mgl64.Vec3, targetRot mgl64.Quat, offset mgl64.Vec3) mgl64.Vec3 {
	return targetPos.Add(targetRot.Rotate(offset))
}

// SpeedFactor maps |speed| onto [0, 1] relative to maxSpeed.
func SpeedFactor(speed, maxSpeed float64) float64 {
	if maxSpeed <= 0 {
		return 0
	}
	return mgl64.Clamp(math.Abs(speed)/maxSpeed, 0, 1)
}

// TargetFOV widens the base field of view with speed.
func TargetFOV(speed, baseFOV, variation, maxSpeed float64) float64 {
	return baseFOV + variation*SpeedFactor(speed, maxSpeed)
}

// Orbit is a damped spherical orbit around a pivot, used by the manual camera.
// Azimuth is measured around +Y from +Z, elevation from the horizontal plane.
type Orbit struct {
	Azimuth   float64
	Elevation float64
	Radius    float64

	MinRadius    float64
	MaxRadius    float64
	MinElevation float64
	MaxElevation float64
	Damping      float64

	deltaAzimuth   float64
	deltaElevation float64
	zoomScale      float64
}

// OrbitFromEye builds an orbit whose current eye sits at eye around center.
func OrbitFromEye(eye, center mgl64.Vec3, minRadius, maxRadius, damping float64) Orbit {
	o := Orbit{
		MinRadius:    minRadius,
		MaxRadius:    maxRadius,
		MinElevation: -math.Pi/2 + 0.01,
		MaxElevation: math.Pi/2 - 0.01,
		Damping:      damping,
		zoomScale:    1,
	}
	o.SetEye(eye, center)
	return o
}

// SetEye resets the spherical coordinates from an eye position.
func (o *Orbit) SetEye(eye, center mgl64.Vec3) {
	d := eye.Sub(center)
	r := d.Len()
	o.Radius = r
	if r > 0 {
		o.Azimuth = math.Atan2(d.X(), d.Z())
		o.Elevation = math.Asin(mgl64.Clamp(d.Y()/r, -1, 1))
	}
	o.deltaAzimuth, o.deltaElevation = 0, 0
	o.zoomScale = 1
	o.clamp()
}

// Rotate queues an azimuth/elevation change, consumed over the next updates.
func (o *Orbit) Rotate(dAzimuth, dElevation float64) {
	o.deltaAzimuth += dAzimuth
	o.deltaElevation += dElevation
}

// Zoom queues a multiplicative radius change; scale < 1 moves closer.
func (o *Orbit) Zoom(scale float64) {
	if scale <= 0 {
		return
	}
	if o.zoomScale == 0 {
		o.zoomScale = 1
	}
	o.zoomScale *= scale
}

// Update applies a damped share of the queued motion and decays the rest.
func (o *Orbit) Update() {
	d := o.Damping
	if d <= 0 || d > 1 {
		d = 1
	}

	o.Azimuth += o.deltaAzimuth * d
	o.Elevation += o.deltaElevation * d
	o.deltaAzimuth *= 1 - d
	o.deltaElevation *= 1 - d

	if o.zoomScale != 0 {
		o.Radius *= o.zoomScale
		o.zoomScale = 1
	}
	o.clamp()
}

// Eye returns the orbit's world position around center.
func (o *Orbit) Eye(center mgl64.Vec3) mgl64.Vec3 {
	cosEl := math.Cos(o.Elevation)
	return center.Add(mgl64.Vec3{
		o.Radius * cosEl * math.Sin(o.Azimuth),
		o.Radius * math.Sin(o.Elevation),
		o.Radius * cosEl * math.Cos(o.Azimuth),
	})
}

func (o *Orbit) clamp() {
	if o.MaxElevation > o.MinElevation {
		o.Elevation = mgl64.Clamp(o.Elevation, o.MinElevation, o.MaxElevation)
	}
	if o.MaxRadius > 0 && o.MaxRadius >= o.MinRadius {
		o.Radius = mgl64.Clamp(o.Radius, o.MinRadius, o.MaxRadius)
	}
}
