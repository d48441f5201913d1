package factory

import (
	"fmt"
	"io/fs"

	"github.com/automoto/jeepdrive/components"
	cfg "github.com/automoto/jeepdrive/config"
	"github.com/automoto/jeepdrive/shared/leveldata"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/rs/zerolog/log"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateLevel creates the obstacles of the TMX layout at path, or the default
// wall when path is empty.
func CreateLevel(ecs *ecs.ECS, fsys fs.FS, path string) ([]*donburi.Entry, error) {
	if path == "" {
		wall, err := CreateWall(ecs, DefaultWall())
		if err != nil {
			return nil, err
		}
		return []*donburi.Entry{wall}, nil
	}

	layout, err := leveldata.LoadObstacles(fsys, path, cfg.Level.ObstacleLayer)
	if err != nil {
		return nil, err
	}

	walls := make([]*donburi.Entry, 0, len(layout.Obstacles))
	for _, o := range layout.Obstacles {
		wall, err := CreateWall(ecs, ObstacleSpec{
			Name:     o.Name,
			Position: mgl64.Vec3{o.X, o.Y, o.Z},
			Size:     mgl64.Vec3{o.Width, o.Height, o.Depth},
			Visual:   o.Visual,
		})
		if err != nil {
			return nil, fmt.Errorf("level %s: %w", path, err)
		}
		walls = append(walls, wall)
	}

	if entry, ok := components.Level.First(ecs.World); ok {
		components.Level.Get(entry).Path = path
	}
	log.Info().Str("level", path).Int("obstacles", len(walls)).Msg("level loaded")
	return walls, nil
}
