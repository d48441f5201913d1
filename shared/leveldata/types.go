// Package leveldata parses obstacle layouts from TMX maps. It has no
// dependencies on ebitengine, donburi, or the physics world.
package leveldata

// Obstacle is a static box read from a map. Coordinates are world units;
// X/Y/Z is the box centre.
type Obstacle struct {
	Name                 string
	X, Y, Z              float64
	Width, Height, Depth float64
	Visual               bool
}

// Layout is the obstacle set of one map.
type Layout struct {
	Obstacles []Obstacle
	Scale     float64 // world units per map pixel
}
