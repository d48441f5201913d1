package factory

import (
	"errors"
	"fmt"

	"github.com/automoto/jeepdrive/archetypes"
	"github.com/automoto/jeepdrive/components"
	cfg "github.com/automoto/jeepdrive/config"
	"github.com/automoto/jeepdrive/physics"
	"github.com/automoto/jeepdrive/shared/gamemath"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	// ErrNoPhysicsWorld is returned when a body is created before CreateSettings.
	ErrNoPhysicsWorld = errors.New("no physics world")
	// ErrDuplicateObstacle is returned when an obstacle name is already taken.
	ErrDuplicateObstacle = errors.New("duplicate obstacle name")
)

// ObstacleSpec describes a static box obstacle. Position is the box centre
// and Size its full extents.
type ObstacleSpec struct {
	Name     string
	Position mgl64.Vec3
	Size     mgl64.Vec3
	Visual   bool
}

// CreateWall creates a static, "wall"-tagged collision box and, when Visual
// is set, a matching wireframe. The obstacle is registered under its name so
// edits can find it.
func CreateWall(ecs *ecs.ECS, spec ObstacleSpec) (*donburi.Entry, error) {
	world, ok := physicsWorld(ecs)
	if !ok {
		return nil, ErrNoPhysicsWorld
	}

	var index map[string]donburi.Entity
	if entry, ok := components.Level.First(ecs.World); ok {
		index = components.Level.Get(entry).Obstacles
		if _, taken := index[spec.Name]; taken && spec.Name != "" {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateObstacle, spec.Name)
		}
	}

	body, err := physics.NewBody(physics.BodyOptions{
		Name:        spec.Name,
		HalfExtents: gamemath.HalfExtents(spec.Size),
		Position:    spec.Position,
		Tag:         cfg.Obstacle.Tag,
	})
	if err != nil {
		return nil, fmt.Errorf("create wall %q: %w", spec.Name, err)
	}

	var wall *donburi.Entry
	if spec.Visual {
		wall = archetypes.Wall.Spawn(ecs, components.Mesh)
		components.Mesh.SetValue(wall, components.MeshData{
			Mesh:  components.NewBoxMesh(spec.Size),
			Color: cfg.UI.WallColor,
		})
	} else {
		wall = archetypes.Wall.Spawn(ecs)
	}

	components.Obstacle.SetValue(wall, components.ObstacleData{
		Name:     spec.Name,
		Position: spec.Position,
		Size:     spec.Size,
		Visual:   spec.Visual,
	})
	components.RigidBody.SetValue(wall, components.RigidBodyData{Body: body})
	world.AddBody(body)

	if index != nil && spec.Name != "" {
		index[spec.Name] = wall.Entity()
	}

	return wall, nil
}

// DefaultWall is the obstacle used when no level layout is configured.
func DefaultWall() ObstacleSpec {
	return ObstacleSpec{
		Name:     "wall",
		Position: cfg.Obstacle.DefaultPosition,
		Size:     cfg.Obstacle.DefaultSize,
		Visual:   cfg.Obstacle.Visual,
	}
}
