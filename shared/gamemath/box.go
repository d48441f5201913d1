package gamemath

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// BoxEdges indexes the 12 edges of the corners returned by BoxCorners.
var BoxEdges = [12][2]int{
	{0, 1}, {1, 3}, {3, 2}, {2, 0}, // bottom
	{4, 5}, {5, 7}, {7, 6}, {6, 4}, // top
	{0, 4}, {1, 5}, {2, 6}, {3, 7}, // verticals
}

// HalfExtents returns half of a box's width/height/depth.
func HalfExtents(size mgl64.Vec3) mgl64.Vec3 {
	return size.Mul(0.5)
}

// BoxCorners returns the 8 local-space corners of a box with the given half-extents.
// Bit 0 of the index selects +X, bit 1 +Z, bit 2 +Y.
func BoxCorners(half mgl64.Vec3) [8]mgl64.Vec3 {
	var c [8]mgl64.Vec3
	for i := range c {
		x, y, z := -half.X(), -half.Y(), -half.Z()
		if i&1 != 0 {
			x = half.X()
		}
		if i&2 != 0 {
			z = half.Z()
		}
		if i&4 != 0 {
			y = half.Y()
		}
		c[i] = mgl64.Vec3{x, y, z}
	}
	return c
}

// FootprintXZ returns the half-size on X and Z of the axis-aligned rectangle
// enclosing a rotated box seen from above.
func FootprintXZ(half mgl64.Vec3, orientation mgl64.Quat) (hx, hz float64) {
	m := orientation.Mat4()
	for col := 0; col < 3; col++ {
		hx += math.Abs(m.At(0, col)) * half[col]
		hz += math.Abs(m.At(2, col)) * half[col]
	}
	return hx, hz
}
