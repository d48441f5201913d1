package gamemath

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
)

func TestLerpVec3_OneFrameAtBlend(t *testing.T) {
	cam := mgl64.Vec3{10, 0, 0}
	desired := mgl64.Vec3{0, 0, 0}

	next := LerpVec3(cam, desired, 0.2)

	assert.InDelta(t, 8, next.Sub(desired).Len(), 1e-12)
}

func TestLerpVec3_GeometricConvergence(t *testing.T) {
	const r = 0.2
	cam := mgl64.Vec3{3, 4, 12}
	desired := mgl64.Vec3{1, 1, 1}
	d0 := cam.Sub(desired).Len()

	for n := 1; n <= 30; n++ {
		cam = LerpVec3(cam, desired, r)
		want := d0 * math.Pow(1-r, float64(n))
		assert.InDelta(t, want, cam.Sub(desired).Len(), 1e-9, "frame %d", n)
	}
}

func TestFollowPosition_RotatesOffset(t *testing.T) {
	offset := mgl64.Vec3{0, 2, -5}
	target := mgl64.Vec3{1, 0, 1}

	got := FollowPosition(target, mgl64.QuatIdent(), offset)
	assert.True(t, got.ApproxEqualThreshold(mgl64.Vec3{1, 2, -4}, 1e-12))

	got = FollowPosition(target, mgl64.QuatRotate(math.Pi, Up), offset)
	assert.True(t, got.ApproxEqualThreshold(mgl64.Vec3{1, 2, 6}, 1e-12), "got %v", got)
}

func TestTargetFOV_Bounds(t *testing.T) {
	const base, variation, maxSpeed = 45.0, 15.0, 15.0

	for _, speed := range []float64{0, 0.5, 7.5, 15, 40, -15, -100} {
		fov := TargetFOV(speed, base, variation, maxSpeed)
		assert.GreaterOrEqual(t, fov, base, "speed %v", speed)
		assert.LessOrEqual(t, fov, base+variation, "speed %v", speed)
	}
	assert.InDelta(t, 52.5, TargetFOV(7.5, base, variation, maxSpeed), 1e-12)
	assert.Equal(t, base, TargetFOV(10, base, variation, 0))
}

func TestTargetFOV_SmoothedValueStaysInBounds(t *testing.T) {
	const base, variation = 45.0, 15.0
	fov := base
	speeds := []float64{0, 3, 15, 15, 20, 8, 0, 0, 12}

	for i := 0; i < 400; i++ {
		speed := speeds[i%len(speeds)]
		fov = Lerp(fov, TargetFOV(speed, base, variation, 15), 0.05)
		assert.GreaterOrEqual(t, fov, base)
		assert.LessOrEqual(t, fov, base+variation)
	}
}

func TestOrbit_EyeRoundTrip(t *testing.T) {
	center := mgl64.Vec3{2, 0, 8}
	eye := mgl64.Vec3{5, 3, 4}

	o := OrbitFromEye(eye, center, 2, 10, 0.1)

	assert.True(t, o.Eye(center).ApproxEqualThreshold(eye, 1e-9), "got %v", o.Eye(center))
}

func TestOrbit_ClampsRadius(t *testing.T) {
	center := mgl64.Vec3{}
	o := OrbitFromEye(mgl64.Vec3{0, 0, 20}, center, 2, 10, 0.1)
	assert.InDelta(t, 10, o.Radius, 1e-12)

	o.Zoom(0.01)
	o.Update()
	assert.InDelta(t, 2, o.Radius, 1e-12)
}

func TestOrbit_DampedRotationConverges(t *testing.T) {
	o := OrbitFromEye(mgl64.Vec3{0, 0, 5}, mgl64.Vec3{}, 2, 10, 0.1)
	o.Rotate(1, 0)

	o.Update()
	assert.InDelta(t, 0.1, o.Azimuth, 1e-12)

	for i := 0; i < 300; i++ {
		o.Update()
	}
	assert.InDelta(t, 1, o.Azimuth, 1e-6)
}

func TestFootprintXZ(t *testing.T) {
	half := mgl64.Vec3{0.42, 0.4, 0.8}

	hx, hz := FootprintXZ(half, mgl64.QuatIdent())
	assert.InDelta(t, 0.42, hx, 1e-12)
	assert.InDelta(t, 0.8, hz, 1e-12)

	hx, hz = FootprintXZ(half, mgl64.QuatRotate(math.Pi/2, Up))
	assert.InDelta(t, 0.8, hx, 1e-12)
	assert.InDelta(t, 0.42, hz, 1e-12)
}

func TestBoxCorners(t *testing.T) {
	c := BoxCorners(mgl64.Vec3{1.75, 0.5, 7.55})
	assert.Equal(t, mgl64.Vec3{-1.75, -0.5, -7.55}, c[0])
	assert.Equal(t, mgl64.Vec3{1.75, 0.5, 7.55}, c[7])
	for _, e := range BoxEdges {
		a, b := c[e[0]], c[e[1]]
		diff := 0
		for i := 0; i < 3; i++ {
			if a[i] != b[i] {
				diff++
			}
		}
		assert.Equal(t, 1, diff, "edge %v must differ on one axis", e)
	}
}
