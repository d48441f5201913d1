package components

import (
	"image/color"

	"github.com/automoto/jeepdrive/shared/gamemath"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
)

// ObstacleData describes a static obstacle. Position is the box centre; the
// body and mesh are updated together by the obstacle edit step.
type ObstacleData struct {
	Name     string
	Position mgl64.Vec3
	Size     mgl64.Vec3 // full extents
	Visual   bool
}

var Obstacle = donburi.NewComponentType[ObstacleData]()

// WireMesh is a line mesh in model space.
type WireMesh struct {
	Vertices []mgl64.Vec3
	Edges    [][2]int
	disposed bool
}

// NewBoxMesh builds a wireframe box of the given full size centred on the origin.
func NewBoxMesh(size mgl64.Vec3) *WireMesh {
	corners := gamemath.BoxCorners(gamemath.HalfExtents(size))
	m := &WireMesh{
		Vertices: corners[:],
		Edges:    make([][2]int, len(gamemath.BoxEdges)),
	}
	for i, e := range gamemath.BoxEdges {
		m.Edges[i] = e
	}
	return m
}

// Dispose releases the mesh. A disposed mesh is never drawn.
func (m *WireMesh) Dispose() {
	m.disposed = true
	m.Vertices = nil
	m.Edges = nil
}

// Disposed reports whether Dispose was called.
func (m *WireMesh) Disposed() bool {
	return m.disposed
}

type MeshData struct {
	Mesh  *WireMesh
	Color color.RGBA
}

var Mesh = donburi.NewComponentType[MeshData]()
