package tags

import "github.com/yohamta/donburi"

var (
	Vehicle  = donburi.NewTag().SetName("Vehicle")
	Wall     = donburi.NewTag().SetName("Wall")
	Floor    = donburi.NewTag().SetName("Floor")
	Camera   = donburi.NewTag().SetName("Camera")
	Settings = donburi.NewTag().SetName("Settings")
)

// Body tags for collision routing
const (
	BodyWall  = "wall"
	BodyJeep  = "jeep"
	BodyFloor = "floor"
)
