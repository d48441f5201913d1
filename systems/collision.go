package systems

import (
	"fmt"

	cfg "github.com/automoto/jeepdrive/config"
	"github.com/automoto/jeepdrive/physics"
	"github.com/automoto/jeepdrive/tags"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/events"
)

// CollisionEvent is a collision-begin as seen by one body.
type CollisionEvent struct {
	Self, Other *physics.Body
	Contact     physics.Contact
}

// CollisionBegan queues collision-begin events raised during the physics step.
var CollisionBegan = events.NewEventType[CollisionEvent]()

// CollisionHandler reacts to a collision with a body carrying a given tag.
type CollisionHandler func(w donburi.World, selfTag, otherTag string, contact physics.Contact)

// CollisionRouter dispatches collision-begin events by the other body's tag.
// Events whose other body is untagged or has no handler are dropped.
type CollisionRouter struct {
	handlers map[string][]CollisionHandler
}

func NewCollisionRouter() *CollisionRouter {
	return &CollisionRouter{handlers: make(map[string][]CollisionHandler)}
}

// Handle registers h for collisions with bodies tagged otherTag.
func (r *CollisionRouter) Handle(otherTag string, h CollisionHandler) {
	r.handlers[otherTag] = append(r.handlers[otherTag], h)
}

// Subscribe makes the router receive w's collision events.
func (r *CollisionRouter) Subscribe(w donburi.World) {
	CollisionBegan.Subscribe(w, r.Route)
}

// Watch forwards body's collision-begin callbacks into w's event queue.
func (r *CollisionRouter) Watch(w donburi.World, body *physics.Body) {
	body.OnCollide(func(self, other *physics.Body, c physics.Contact) {
		CollisionBegan.Publish(w, CollisionEvent{Self: self, Other: other, Contact: c})
	})
}

// Route invokes the handlers registered for the other body's tag.
func (r *CollisionRouter) Route(w donburi.World, ev CollisionEvent) {
	otherTag, ok := physics.TagOf(ev.Other)
	if !ok {
		return
	}
	handlers := r.handlers[otherTag]
	if len(handlers) == 0 {
		return
	}
	selfTag, _ := physics.TagOf(ev.Self)
	for _, h := range handlers {
		h(w, selfTag, otherTag, ev.Contact)
	}
}

// DefaultCollisionPolicy counts and logs wall and vehicle contacts.
func DefaultCollisionPolicy(r *CollisionRouter) {
	r.Handle(tags.BodyWall, recordContact)
	r.Handle(tags.BodyJeep, recordContact)
}

func recordContact(w donburi.World, selfTag, otherTag string, contact physics.Contact) {
	if debug := getDebug(w); debug != nil {
		debug.ContactCount++
		debug.LastContact = fmt.Sprintf("%s/%s", selfTag, otherTag)
	}

	level := zerolog.DebugLevel
	if cfg.Debug.LogCollisions {
		level = zerolog.InfoLevel
	}
	log.WithLevel(level).
		Str("self", selfTag).
		Str("other", otherTag).
		Float64("depth", contact.Depth).
		Msg("collision")
}

// UpdateCollisionEvents delivers the collision events raised by this frame's
// physics step.
func UpdateCollisionEvents(e *ecs.ECS) {
	CollisionBegan.ProcessEvents(e.World)
}
