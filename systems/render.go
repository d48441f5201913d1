package systems

import (
	"image/color"

	"github.com/automoto/jeepdrive/components"
	cfg "github.com/automoto/jeepdrive/config"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// minClipW rejects points at or behind the camera plane.
const minClipW = 1e-6

// viewport projects world points to screen pixels through a camera.
type viewport struct {
	viewProj      mgl64.Mat4
	width, height float64
}

func newViewport(camera *components.CameraData, width, height int) viewport {
	return viewport{
		viewProj: camera.Projection.Mul4(camera.View),
		width:    float64(width),
		height:   float64(height),
	}
}

// project maps p through model then the camera. ok is false for points
// behind the camera.
func (v viewport) project(model mgl64.Mat4, p mgl64.Vec3) (x, y float64, ok bool) {
	clip := v.viewProj.Mul4(model).Mul4x1(p.Vec4(1))
	if clip.W() <= minClipW {
		return 0, 0, false
	}
	ndc := clip.Vec3().Mul(1 / clip.W())
	return (ndc.X() + 1) / 2 * v.width, (1 - ndc.Y()) / 2 * v.height, true
}

func (v viewport) line(screen *ebiten.Image, model mgl64.Mat4, a, b mgl64.Vec3, clr color.Color) {
	x0, y0, ok0 := v.project(model, a)
	x1, y1, ok1 := v.project(model, b)
	if !ok0 || !ok1 {
		return
	}
	vector.StrokeLine(screen, float32(x0), float32(y0), float32(x1), float32(y1), 1, clr, true)
}

func (v viewport) mesh(screen *ebiten.Image, model mgl64.Mat4, m *components.WireMesh, clr color.Color) {
	if m == nil || m.Disposed() {
		return
	}
	for _, edge := range m.Edges {
		v.line(screen, model, m.Vertices[edge[0]], m.Vertices[edge[1]], clr)
	}
}

// DrawWorld renders the floor grid, obstacle wireframes and the vehicle.
func DrawWorld(e *ecs.ECS, screen *ebiten.Image) {
	screen.Fill(cfg.Background)

	camera := getCamera(e.World)
	if camera == nil {
		return // No camera yet
	}
	vp := newViewport(camera, screen.Bounds().Dx(), screen.Bounds().Dy())

	drawGrid(screen, vp)

	components.Obstacle.Each(e.World, func(entry *donburi.Entry) {
		if !entry.HasComponent(components.Mesh) {
			return
		}
		o := components.Obstacle.Get(entry)
		mesh := components.Mesh.Get(entry)
		model := mgl64.Translate3D(o.Position.X(), o.Position.Y(), o.Position.Z())
		vp.mesh(screen, model, mesh.Mesh, mesh.Color)
	})

	components.Transform.Each(e.World, func(entry *donburi.Entry) {
		if !entry.HasComponent(components.Mesh) {
			return
		}
		t := components.Transform.Get(entry)
		mesh := components.Mesh.Get(entry)
		vp.mesh(screen, t.Matrix(), mesh.Mesh, mesh.Color)

		if entry.HasComponent(components.Clip) {
			drawWheelSpokes(screen, vp, t, components.Clip.Get(entry).Angle)
		}
	})
}

func drawGrid(screen *ebiten.Image, vp viewport) {
	extent := float64(cfg.UI.GridExtent)
	step := cfg.UI.GridStep
	if step <= 0 {
		step = 1
	}
	y := cfg.Physics.FloorY
	identity := mgl64.Ident4()
	for i := -cfg.UI.GridExtent; i <= cfg.UI.GridExtent; i += step {
		f := float64(i)
		vp.line(screen, identity, mgl64.Vec3{f, y, -extent}, mgl64.Vec3{f, y, extent}, cfg.UI.GridColor)
		vp.line(screen, identity, mgl64.Vec3{-extent, y, f}, mgl64.Vec3{extent, y, f}, cfg.UI.GridColor)
	}
}

// drawWheelSpokes draws one spinning spoke per side so the wheel clip is
// visible.
func drawWheelSpokes(screen *ebiten.Image, vp viewport, t *components.TransformData, angle float64) {
	half := cfg.Vehicle.HalfExtents
	radius := half.Y() * 0.5
	spin := mgl64.QuatRotate(angle, mgl64.Vec3{1, 0, 0})
	spoke := spin.Rotate(mgl64.Vec3{0, radius, 0})

	for _, side := range []float64{-1, 1} {
		hub := mgl64.Vec3{side * half.X(), radius, 0}
		vp.line(screen, t.Matrix(), hub.Sub(spoke), hub.Add(spoke), cfg.UI.JeepColor)
	}
}
