package components

import (
	"github.com/yohamta/donburi"
)

// LevelData indexes the scene's obstacles by name (singleton component).
type LevelData struct {
	Path      string
	Obstacles map[string]donburi.Entity
	LoadErr   error // non-nil leaves the scene without a vehicle
}

var Level = donburi.NewComponentType[LevelData]()

// DebugData stores debug overlay state and collision counters (singleton component).
type DebugData struct {
	Enabled      bool
	ContactCount int
	LastContact  string // "self/other" tags of the most recent contact
}

var Debug = donburi.NewComponentType[DebugData]()
