package physics

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestWorld() *World {
	return NewWorld(WorldConfig{
		Gravity:  mgl64.Vec3{0, -9.82, 0},
		HasFloor: true,
		Size:     128,
		CellSize: 4,
	})
}

func mustBody(t *testing.T, opts BodyOptions) *Body {
	t.Helper()
	b, err := NewBody(opts)
	require.NoError(t, err)
	return b
}

func TestNewBody_RejectsDegenerateBox(t *testing.T) {
	_, err := NewBody(BodyOptions{HalfExtents: mgl64.Vec3{1, 0, 1}})
	require.ErrorIs(t, err, ErrInvalidShape)
}

func TestNewBody_DefaultsOrientation(t *testing.T) {
	b := mustBody(t, BodyOptions{HalfExtents: mgl64.Vec3{1, 1, 1}})
	assert.Equal(t, mgl64.QuatIdent(), b.Orientation)
	assert.True(t, b.IsStatic())
}

func TestTagOf(t *testing.T) {
	tagged := mustBody(t, BodyOptions{HalfExtents: mgl64.Vec3{1, 1, 1}, Tag: "wall"})
	untagged := mustBody(t, BodyOptions{HalfExtents: mgl64.Vec3{1, 1, 1}})

	tag, ok := TagOf(tagged)
	assert.True(t, ok)
	assert.Equal(t, "wall", tag)

	_, ok = TagOf(untagged)
	assert.False(t, ok)
	_, ok = TagOf(nil)
	assert.False(t, ok)

	untagged.SetTag("jeep")
	tag, ok = TagOf(untagged)
	assert.True(t, ok)
	assert.Equal(t, "jeep", tag)
}

func TestStep_GravitySettlesOnFloor(t *testing.T) {
	w := newTestWorld()
	b := mustBody(t, BodyOptions{
		Mass:          1,
		HalfExtents:   mgl64.Vec3{0.42, 0.4, 0.8},
		Position:      mgl64.Vec3{8.8, 5, 2.5},
		LinearDamping: 0.3,
	})
	w.AddBody(b)

	for i := 0; i < 300; i++ {
		w.Step(1.0 / 60)
	}

	assert.InDelta(t, 0.4, b.Position.Y(), 1e-9)
	assert.InDelta(t, 8.8, b.Position.X(), 1e-9)
	assert.Zero(t, b.Velocity.Y())
}

func TestStep_ZeroDeltaIsNoop(t *testing.T) {
	w := newTestWorld()
	b := mustBody(t, BodyOptions{Mass: 1, HalfExtents: mgl64.Vec3{1, 1, 1}, Position: mgl64.Vec3{0, 5, 0}})
	w.AddBody(b)

	w.Step(0)

	assert.Equal(t, mgl64.Vec3{0, 5, 0}, b.Position)
}

func TestStep_WallCollisionTagsAndEvents(t *testing.T) {
	w := newTestWorld()
	wall := mustBody(t, BodyOptions{
		HalfExtents: mgl64.Vec3{1.75, 0.5, 7.55},
		Position:    mgl64.Vec3{2, 0.5, 8.2},
		Tag:         "wall",
	})
	jeep := mustBody(t, BodyOptions{
		Mass:        1,
		HalfExtents: mgl64.Vec3{0.42, 0.4, 0.8},
		Position:    mgl64.Vec3{-0.5, 0.4, 8},
		Tag:         "jeep",
	})
	w.AddBody(wall)
	w.AddBody(jeep)

	var jeepSaw, wallSaw []string
	jeep.OnCollide(func(self, other *Body, c Contact) {
		tag, _ := TagOf(other)
		jeepSaw = append(jeepSaw, tag)
		assert.Equal(t, mgl64.Vec3{1, 0, 0}, c.Normal)
	})
	wall.OnCollide(func(self, other *Body, c Contact) {
		tag, _ := TagOf(other)
		wallSaw = append(wallSaw, tag)
		assert.Equal(t, mgl64.Vec3{-1, 0, 0}, c.Normal)
	})

	w.Step(1.0 / 60)
	assert.Empty(t, jeepSaw)

	jeep.SetPosition(mgl64.Vec3{0, 0.4, 8})
	w.Step(1.0 / 60)

	assert.Equal(t, []string{"wall"}, jeepSaw)
	assert.Equal(t, []string{"jeep"}, wallSaw)
	assert.InDelta(t, 0.25-0.42, jeep.Position.X(), 1e-9, "jeep is pushed out of the wall")

	// Resting against the wall keeps the contact without re-firing.
	for i := 0; i < 10; i++ {
		w.Step(1.0 / 60)
	}
	assert.Len(t, jeepSaw, 1)

	// Leaving and re-entering fires again.
	jeep.SetPosition(mgl64.Vec3{-3, 0.4, 8})
	w.Step(1.0 / 60)
	jeep.SetPosition(mgl64.Vec3{0, 0.4, 8})
	w.Step(1.0 / 60)
	assert.Len(t, jeepSaw, 2)
}

func TestStep_ContinuousContactFiresOnce(t *testing.T) {
	for _, tc := range []struct {
		name  string
		start float64
		dir   float64
	}{
		{name: "low x face", start: -1, dir: 1},
		{name: "high x face", start: 5, dir: -1},
	} {
		t.Run(tc.name, func(t *testing.T) {
			w := newTestWorld()
			wall := mustBody(t, BodyOptions{
				HalfExtents: mgl64.Vec3{2, 2, 8},
				Position:    mgl64.Vec3{2, 0, 8},
				Tag:         "wall",
			})
			jeep := mustBody(t, BodyOptions{
				Mass:        1,
				HalfExtents: mgl64.Vec3{0.42, 0.4, 0.8},
				Position:    mgl64.Vec3{tc.start, 0.4, 8},
				Tag:         "jeep",
			})
			w.AddBody(wall)
			w.AddBody(jeep)

			begins := 0
			jeep.OnCollide(func(self, other *Body, c Contact) { begins++ })

			const dt = 1.0 / 60
			for i := 0; i < 180; i++ {
				jeep.SetPosition(jeep.Position.Add(mgl64.Vec3{tc.dir * 5 * dt, 0, 0}))
				w.Step(dt)
			}

			assert.Equal(t, 1, begins)
			if tc.dir > 0 {
				assert.InDelta(t, -0.42, jeep.Position.X(), 1e-9)
			} else {
				assert.InDelta(t, 4.42, jeep.Position.X(), 1e-9)
			}
		})
	}
}

func TestBounds_YawWidensFootprint(t *testing.T) {
	b := mustBody(t, BodyOptions{Mass: 1, HalfExtents: mgl64.Vec3{0.42, 0.4, 0.8}})
	assert.Equal(t, mgl64.Vec3{0.42, 0.4, 0.8}, b.Bounds())

	b.Orientation = mgl64.QuatRotate(math.Pi/4, mgl64.Vec3{0, 1, 0})
	bounds := b.Bounds()
	want := (0.42 + 0.8) * math.Sqrt2 / 2
	assert.InDelta(t, want, bounds.X(), 1e-9)
	assert.InDelta(t, want, bounds.Z(), 1e-9)
	assert.InDelta(t, 0.4, bounds.Y(), 1e-9)
}

func TestSetHalfExtents(t *testing.T) {
	w := newTestWorld()
	wall := mustBody(t, BodyOptions{HalfExtents: mgl64.Vec3{1, 1, 1}, Tag: "wall"})
	w.AddBody(wall)

	require.NoError(t, wall.SetHalfExtents(mgl64.Vec3{1.75, 0.5, 7.55}))
	assert.Equal(t, mgl64.Vec3{1.75, 0.5, 7.55}, wall.HalfExtents())

	err := wall.SetHalfExtents(mgl64.Vec3{-1, 1, 1})
	require.ErrorIs(t, err, ErrInvalidShape)
	assert.Equal(t, mgl64.Vec3{1.75, 0.5, 7.55}, wall.HalfExtents())
}

func TestRemoveBody(t *testing.T) {
	w := newTestWorld()
	a := mustBody(t, BodyOptions{HalfExtents: mgl64.Vec3{1, 1, 1}})
	b := mustBody(t, BodyOptions{HalfExtents: mgl64.Vec3{1, 1, 1}})
	w.AddBody(a)
	w.AddBody(b)
	w.AddBody(a)
	require.Len(t, w.Bodies(), 2)

	w.RemoveBody(a)

	assert.Equal(t, []*Body{b}, w.Bodies())
	assert.Nil(t, a.World())
}

func TestStep_FixedRotationDropsSpin(t *testing.T) {
	w := newTestWorld()
	b := mustBody(t, BodyOptions{Mass: 1, HalfExtents: mgl64.Vec3{1, 1, 1}, Position: mgl64.Vec3{0, 1, 0}, FixedRotation: true})
	b.AngularVelocity = mgl64.Vec3{0, 3, 0}
	w.AddBody(b)

	w.Step(0.1)

	assert.Equal(t, mgl64.Vec3{}, b.AngularVelocity)
	assert.Equal(t, mgl64.QuatIdent(), b.Orientation)
}
