package components

import (
	"github.com/automoto/jeepdrive/shared/gamemath"
	"github.com/yohamta/donburi"
)

// VehicleData is the motion model state. Position and orientation live on the
// entity's rigid body.
type VehicleData struct {
	Velocity float64 // signed, along the local forward axis
	Params   gamemath.DriveParams
}

var Vehicle = donburi.NewComponentType[VehicleData]()
