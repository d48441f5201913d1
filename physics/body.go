// Package physics is a small rigid-body world for box-shaped bodies. It uses a
// resolv space as broadphase on the ground (XZ) plane and resolves overlaps
// against static bodies by pushing dynamic ones out along the shallowest axis.
package physics

import (
	"errors"
	"fmt"

	"github.com/automoto/jeepdrive/shared/gamemath"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/solarlune/resolv"
)

// ErrInvalidShape is returned when a box has a non-positive half-extent.
var ErrInvalidShape = errors.New("physics: box half-extents must be positive")

// Contact describes an overlap as seen from the body receiving the event.
type Contact struct {
	Normal mgl64.Vec3 // unit axis pointing from self toward other
	Depth  float64
	Point  mgl64.Vec3
}

// CollideFunc is called once per body when a new contact begins.
type CollideFunc func(self, other *Body, contact Contact)

// BodyOptions configures NewBody. A zero Mass makes the body static.
type BodyOptions struct {
	Name           string
	Mass           float64
	HalfExtents    mgl64.Vec3
	Position       mgl64.Vec3
	Orientation    mgl64.Quat
	LinearDamping  float64
	AngularDamping float64
	FixedRotation  bool
	Tag            string
}

// Body is a box rigid body. Position and Orientation are authoritative; the
// motion model writes them directly and the world step integrates velocity.
type Body struct {
	Name            string
	Mass            float64
	Position        mgl64.Vec3
	Orientation     mgl64.Quat
	Velocity        mgl64.Vec3
	AngularVelocity mgl64.Vec3
	LinearDamping   float64
	AngularDamping  float64
	FixedRotation   bool

	id          int
	halfExtents mgl64.Vec3
	tag         string
	object      *resolv.Object
	world       *World
	listeners   []CollideFunc
}

// NewBody validates options and builds a body not yet added to any world.
func NewBody(opts BodyOptions) (*Body, error) {
	if err := validateHalfExtents(opts.HalfExtents); err != nil {
		return nil, err
	}

	orientation := opts.Orientation
	if orientation.Len() == 0 {
		orientation = mgl64.QuatIdent()
	}

	b := &Body{
		Name:           opts.Name,
		Mass:           opts.Mass,
		Position:       opts.Position,
		Orientation:    orientation.Normalize(),
		LinearDamping:  opts.LinearDamping,
		AngularDamping: opts.AngularDamping,
		FixedRotation:  opts.FixedRotation,
		halfExtents:    opts.HalfExtents,
	}

	var tags []string
	if opts.Tag != "" {
		b.tag = opts.Tag
		tags = append(tags, opts.Tag)
	}
	b.object = resolv.NewObject(0, 0, 1, 1, tags...)
	b.object.Data = b

	return b, nil
}

func validateHalfExtents(h mgl64.Vec3) error {
	if h.X() <= 0 || h.Y() <= 0 || h.Z() <= 0 {
		return fmt.Errorf("%w: got %v", ErrInvalidShape, h)
	}
	return nil
}

// IsStatic reports whether the body is immovable.
func (b *Body) IsStatic() bool {
	return b.Mass <= 0
}

// HalfExtents returns the box half-extents.
func (b *Body) HalfExtents() mgl64.Vec3 {
	return b.halfExtents
}

// Bounds returns the half-extents of the axis-aligned box the world collides
// against: the rotated box's ground footprint at its full height.
func (b *Body) Bounds() mgl64.Vec3 {
	hx, hz := gamemath.FootprintXZ(b.halfExtents, b.Orientation)
	return mgl64.Vec3{hx, b.halfExtents.Y(), hz}
}

// SetHalfExtents resizes the box shape and refreshes its broadphase bounds.
func (b *Body) SetHalfExtents(h mgl64.Vec3) error {
	if err := validateHalfExtents(h); err != nil {
		return err
	}
	b.halfExtents = h
	b.refresh()
	return nil
}

// SetPosition moves the body and refreshes its broadphase bounds.
func (b *Body) SetPosition(p mgl64.Vec3) {
	b.Position = p
	b.refresh()
}

// Tag returns the body's semantic tag, or "" when untagged.
func (b *Body) Tag() string {
	return b.tag
}

// SetTag replaces the body's semantic tag.
func (b *Body) SetTag(tag string) {
	if b.tag != "" {
		b.object.RemoveTags(b.tag)
	}
	b.tag = tag
	if tag != "" {
		b.object.AddTags(tag)
	}
}

// OnCollide subscribes fn to collision-begin events of this body.
func (b *Body) OnCollide(fn CollideFunc) {
	b.listeners = append(b.listeners, fn)
}

// World returns the world the body belongs to, or nil.
func (b *Body) World() *World {
	return b.world
}

// TagOf returns the tag of b. ok is false for nil or untagged bodies.
func TagOf(b *Body) (tag string, ok bool) {
	if b == nil || b.tag == "" {
		return "", false
	}
	return b.tag, true
}

func (b *Body) emit(other *Body, c Contact) {
	for _, fn := range b.listeners {
		fn(b, other, c)
	}
}

// refresh writes the body's rotated footprint into its resolv object.
func (b *Body) refresh() {
	if b.world == nil {
		return
	}
	b.world.placeObject(b)
}
