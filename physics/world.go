package physics

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/solarlune/resolv"
)

// contactSlop keeps a resting contact alive after push-out so touching a
// wall does not re-fire collision-begin every step.
const contactSlop = 1e-3

// spaceScale maps world units to resolv space units. resolv trims one space
// unit off an object's far edge when bucketing it into cells, so bodies need
// to span several space units.
const spaceScale = 8

// broadphasePad grows every object's space rectangle so exactly touching
// boxes still share a cell.
const broadphasePad = 1 + contactSlop*spaceScale

// WorldConfig sizes the world's broadphase and sets its global forces.
type WorldConfig struct {
	Gravity  mgl64.Vec3
	FloorY   float64
	HasFloor bool
	Size     int // extent of the square XZ area centred on the origin
	CellSize int
}

// World owns bodies and advances them.
type World struct {
	Gravity  mgl64.Vec3
	FloorY   float64
	HasFloor bool

	space    *resolv.Space
	origin   float64
	bodies   []*Body
	nextID   int
	contacts map[pairKey]bool
}

type pairKey struct{ a, b int }

func keyFor(a, b *Body) pairKey {
	if a.id > b.id {
		a, b = b, a
	}
	return pairKey{a.id, b.id}
}

// NewWorld creates an empty world.
func NewWorld(cfg WorldConfig) *World {
	size := cfg.Size
	if size <= 0 {
		size = 256
	}
	cell := cfg.CellSize
	if cell <= 0 {
		cell = 4
	}

	return &World{
		Gravity:  cfg.Gravity,
		FloorY:   cfg.FloorY,
		HasFloor: cfg.HasFloor,
		space:    resolv.NewSpace(size*spaceScale, size*spaceScale, cell*spaceScale, cell*spaceScale),
		origin:   float64(size) / 2,
		contacts: make(map[pairKey]bool),
	}
}

// AddBody registers b. Adding a body twice is a no-op.
func (w *World) AddBody(b *Body) {
	if b.world == w {
		return
	}
	w.nextID++
	b.id = w.nextID
	b.world = w
	w.bodies = append(w.bodies, b)
	w.space.Add(b.object)
	w.placeObject(b)
}

// RemoveBody unregisters b and forgets its contacts.
func (w *World) RemoveBody(b *Body) {
	if b.world != w {
		return
	}
	for i, other := range w.bodies {
		if other == b {
			w.bodies = append(w.bodies[:i], w.bodies[i+1:]...)
			break
		}
	}
	for k := range w.contacts {
		if k.a == b.id || k.b == b.id {
			delete(w.contacts, k)
		}
	}
	w.space.Remove(b.object)
	b.world = nil
}

// Bodies returns the registered bodies in insertion order.
func (w *World) Bodies() []*Body {
	return w.bodies
}

// Step integrates dynamic bodies by dt, resolves overlaps and emits
// collision-begin events for pairs that were not touching last step.
func (w *World) Step(dt float64) {
	if dt <= 0 {
		return
	}

	for _, b := range w.bodies {
		if b.IsStatic() {
			continue
		}
		w.integrate(b, dt)
		w.placeObject(b)
	}

	w.detectContacts()
}

func (w *World) integrate(b *Body, dt float64) {
	b.Velocity = b.Velocity.Add(w.Gravity.Mul(dt))
	b.Velocity = b.Velocity.Mul(math.Pow(1-b.LinearDamping, dt))
	b.Position = b.Position.Add(b.Velocity.Mul(dt))

	if b.FixedRotation {
		b.AngularVelocity = mgl64.Vec3{}
	} else if b.AngularVelocity.Len() > 0 {
		b.AngularVelocity = b.AngularVelocity.Mul(math.Pow(1-b.AngularDamping, dt))
		spin := mgl64.Quat{W: 0, V: b.AngularVelocity}
		dq := spin.Mul(b.Orientation).Scale(0.5 * dt)
		b.Orientation = b.Orientation.Add(dq).Normalize()
	}

	if w.HasFloor {
		bottom := b.Position.Y() - b.halfExtents.Y()
		if bottom < w.FloorY {
			b.Position[1] = w.FloorY + b.halfExtents.Y()
			if b.Velocity.Y() < 0 {
				b.Velocity[1] = 0
			}
		}
	}
}

func (w *World) detectContacts() {
	current := make(map[pairKey]bool, len(w.contacts))

	for _, a := range w.bodies {
		if a.IsStatic() {
			continue
		}
		check := a.object.Check(0, 0)
		if check == nil {
			continue
		}
		for _, obj := range check.Objects {
			if other, ok := obj.Data.(*Body); ok && other != a {
				w.touch(a, other, current)
			}
		}
	}

	// Pairs touching last step are re-tested directly: a body pushed out to
	// rest on a cell boundary can fall out of the broadphase.
	var byID map[int]*Body
	for key := range w.contacts {
		if current[key] {
			continue
		}
		if byID == nil {
			byID = make(map[int]*Body, len(w.bodies))
			for _, b := range w.bodies {
				byID[b.id] = b
			}
		}
		a, b := byID[key.a], byID[key.b]
		if a == nil || b == nil {
			continue
		}
		if a.IsStatic() {
			a, b = b, a
		}
		w.touch(a, b, current)
	}

	w.contacts = current
}

// touch resolves one candidate pair. a is dynamic. A pair that was not in
// contact last step emits collision-begin on both bodies.
func (w *World) touch(a, other *Body, current map[pairKey]bool) {
	key := keyFor(a, other)
	if current[key] {
		return
	}

	c, ok := overlap(a, other)
	if !ok {
		return
	}
	if c.Depth > 0 && other.IsStatic() {
		w.pushOut(a, c)
	}

	current[key] = true
	if !w.contacts[key] {
		a.emit(other, c)
		other.emit(a, Contact{Normal: c.Normal.Mul(-1), Depth: c.Depth, Point: c.Point})
	}
}

// pushOut moves a dynamic body out of a static one and cancels the velocity
// component driving it further in.
func (w *World) pushOut(b *Body, c Contact) {
	b.Position = b.Position.Sub(c.Normal.Mul(c.Depth))
	if into := b.Velocity.Dot(c.Normal); into > 0 {
		b.Velocity = b.Velocity.Sub(c.Normal.Mul(into))
	}
	w.placeObject(b)
}

// overlap tests the axis-aligned bounds of two (possibly yawed) boxes, so a
// yawed box collides wider than it is. A pair
// within contactSlop of touching counts as a contact with zero depth.
func overlap(a, b *Body) (Contact, bool) {
	aHalf, bHalf := a.Bounds(), b.Bounds()

	d := b.Position.Sub(a.Position)
	axis, depth := -1, math.MaxFloat64
	for i := 0; i < 3; i++ {
		o := aHalf[i] + bHalf[i] - math.Abs(d[i])
		if o < -contactSlop {
			return Contact{}, false
		}
		if o < depth {
			axis, depth = i, o
		}
	}

	var normal mgl64.Vec3
	normal[axis] = 1
	if d[axis] < 0 {
		normal[axis] = -1
	}

	point := a.Position.Add(b.Position).Mul(0.5)
	point[axis] = a.Position[axis] + normal[axis]*(aHalf[axis]-math.Max(depth, 0)/2)

	return Contact{Normal: normal, Depth: math.Max(depth, 0), Point: point}, true
}

// placeObject maps the body's ground footprint into space coordinates.
func (w *World) placeObject(b *Body) {
	bounds := b.Bounds()
	hx, hz := bounds.X(), bounds.Z()
	obj := b.object
	obj.X = (b.Position.X()-hx+w.origin)*spaceScale - broadphasePad
	obj.Y = (b.Position.Z()-hz+w.origin)*spaceScale - broadphasePad
	obj.W = 2*hx*spaceScale + 2*broadphasePad
	obj.H = 2*hz*spaceScale + 2*broadphasePad
	obj.Update()
}
