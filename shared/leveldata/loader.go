package leveldata

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/lafriks/go-tiled"
)

var (
	// ErrNoObstacleLayer is returned when the map has no object group with
	// the requested name.
	ErrNoObstacleLayer = errors.New("obstacle layer not found")
	// ErrInvalidObstacle is returned for an object with a non-positive size.
	ErrInvalidObstacle = errors.New("invalid obstacle")
)

// LoadObstacles parses a TMX file and returns the obstacles of the named
// object group. It takes an fs.FS so callers can pass embed.FS or os.DirFS.
//
// One map tile is one world unit. An object's rectangle gives the obstacle's
// X/Z footprint; its "elevation" property is the centre height and its
// "height" property the vertical size. "visual" (default true) controls
// whether a wireframe is drawn.
func LoadObstacles(fsys fs.FS, tmxPath, layer string) (*Layout, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	scale := 1.0
	if levelMap.TileWidth > 0 {
		scale = 1 / float64(levelMap.TileWidth)
	}
	layout := &Layout{Scale: scale}

	var group *tiled.ObjectGroup
	for _, og := range levelMap.ObjectGroups {
		if og.Name == layer {
			group = og
			break
		}
	}
	if group == nil {
		return nil, fmt.Errorf("%s: %w: %q", tmxPath, ErrNoObstacleLayer, layer)
	}

	for _, o := range group.Objects {
		name := o.Name
		if name == "" {
			name = fmt.Sprintf("obstacle-%d", o.ID)
		}

		ob := Obstacle{
			Name:   name,
			X:      (o.X + o.Width/2) * scale,
			Y:      o.Properties.GetFloat("elevation"),
			Z:      (o.Y + o.Height/2) * scale,
			Width:  o.Width * scale,
			Height: o.Properties.GetFloat("height"),
			Depth:  o.Height * scale,
			Visual: true,
		}
		if hasProperty(o.Properties, "visual") {
			ob.Visual = o.Properties.GetBool("visual")
		}

		if ob.Width <= 0 || ob.Height <= 0 || ob.Depth <= 0 {
			return nil, fmt.Errorf("%s: %w: %s has size %vx%vx%v",
				tmxPath, ErrInvalidObstacle, name, ob.Width, ob.Height, ob.Depth)
		}
		layout.Obstacles = append(layout.Obstacles, ob)
	}

	return layout, nil
}

func hasProperty(props tiled.Properties, name string) bool {
	for _, p := range props {
		if p.Name == name {
			return true
		}
	}
	return false
}
