package systems

import (
	"errors"
	"fmt"
	"sync"

	"github.com/automoto/jeepdrive/components"
	cfg "github.com/automoto/jeepdrive/config"
	"github.com/automoto/jeepdrive/physics"
	"github.com/automoto/jeepdrive/shared/gamemath"
	"github.com/rs/zerolog/log"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// ErrUnknownObstacle is returned when an edit names no registered obstacle.
var ErrUnknownObstacle = errors.New("unknown obstacle")

// ObstacleEdit changes some of an obstacle's position and size fields.
type ObstacleEdit = cfg.ObstacleEdit

// EditQueue hands obstacle edits from the config watcher goroutine to the
// game loop.
type EditQueue struct {
	mu      sync.Mutex
	pending []ObstacleEdit
}

// Push appends edits.
func (q *EditQueue) Push(edits ...ObstacleEdit) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.pending = append(q.pending, edits...)
}

// Drain removes and returns every queued edit.
func (q *EditQueue) Drain() []ObstacleEdit {
	q.mu.Lock()
	defer q.mu.Unlock()
	edits := q.pending
	q.pending = nil
	return edits
}

// PendingEdits is drained by UpdateObstacleEdits at the start of each frame.
var PendingEdits = &EditQueue{}

// UpdateObstacleEdits applies queued edits. Edits for unknown obstacles are
// logged and skipped.
func UpdateObstacleEdits(e *ecs.ECS) {
	edits := PendingEdits.Drain()
	if len(edits) == 0 {
		return
	}
	if err := ApplyObstacleEdits(e.World, edits); err != nil {
		log.Warn().Err(err).Msg("obstacle edits partially applied")
	}
}

// FindObstacle looks an obstacle up by name.
func FindObstacle(w donburi.World, name string) (*donburi.Entry, bool) {
	level := getLevel(w)
	if level == nil {
		return nil, false
	}
	entity, ok := level.Obstacles[name]
	if !ok || !w.Valid(entity) {
		return nil, false
	}
	return w.Entry(entity), true
}

// ApplyObstacleEdits applies each edit to the obstacle it names and returns
// the joined errors of the ones that failed.
func ApplyObstacleEdits(w donburi.World, edits []ObstacleEdit) error {
	var errs []error
	for _, edit := range edits {
		entry, ok := FindObstacle(w, edit.Name)
		if !ok {
			errs = append(errs, fmt.Errorf("%w: %q", ErrUnknownObstacle, edit.Name))
			continue
		}
		if edit.Remove {
			RemoveObstacle(w, entry)
			log.Debug().Str("obstacle", edit.Name).Msg("obstacle removed")
			continue
		}
		if err := ApplyObstacleEdit(entry, edit); err != nil {
			errs = append(errs, fmt.Errorf("obstacle %q: %w", edit.Name, err))
			continue
		}
		log.Debug().Str("obstacle", edit.Name).Msg("obstacle edited")
	}
	return errors.Join(errs...)
}

// ApplyObstacleEdit updates the named fields of an obstacle and pushes the
// result to its collision body and wireframe together. The previous mesh is
// disposed. A non-positive size rejects the whole edit.
func ApplyObstacleEdit(entry *donburi.Entry, edit ObstacleEdit) error {
	obstacle := components.Obstacle.Get(entry)

	pos, size := obstacle.Position, obstacle.Size
	setIf(&pos[0], edit.X)
	setIf(&pos[1], edit.Y)
	setIf(&pos[2], edit.Z)
	setIf(&size[0], edit.Width)
	setIf(&size[1], edit.Height)
	setIf(&size[2], edit.Depth)

	if size.X() <= 0 || size.Y() <= 0 || size.Z() <= 0 {
		return fmt.Errorf("%w: size %v", physics.ErrInvalidShape, size)
	}

	if entry.HasComponent(components.RigidBody) {
		body := components.RigidBody.Get(entry)
		if err := body.SetHalfExtents(gamemath.HalfExtents(size)); err != nil {
			return err
		}
		body.SetPosition(pos)
	}

	if entry.HasComponent(components.Mesh) {
		mesh := components.Mesh.Get(entry)
		old := mesh.Mesh
		mesh.Mesh = components.NewBoxMesh(size)
		if old != nil {
			old.Dispose()
		}
	}

	obstacle.Position, obstacle.Size = pos, size
	return nil
}

// RemoveObstacle takes the obstacle out of the physics world and the level
// registry, disposes its mesh and removes the entity.
func RemoveObstacle(w donburi.World, entry *donburi.Entry) {
	if entry.HasComponent(components.RigidBody) {
		body := components.RigidBody.Get(entry)
		if world := body.World(); world != nil {
			world.RemoveBody(body.Body)
		}
	}
	if entry.HasComponent(components.Mesh) {
		if mesh := components.Mesh.Get(entry); mesh.Mesh != nil {
			mesh.Mesh.Dispose()
			mesh.Mesh = nil
		}
	}
	if level := getLevel(w); level != nil {
		delete(level.Obstacles, components.Obstacle.Get(entry).Name)
	}
	w.Remove(entry.Entity())
}

func setIf(dst *float64, v *float64) {
	if v != nil {
		*dst = *v
	}
}
