package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// ClipData is a looping wheel-spin clip whose playback rate follows the
// vehicle speed.
type ClipData struct {
	Tween     *gween.Tween
	Angle     float64 // current wheel angle in radians
	TimeScale float64
	Playing   bool
}

// Rewind stops the clip and returns it to its first frame.
func (c *ClipData) Rewind() {
	c.Playing = false
	c.TimeScale = 0
	c.Tween.Reset()
	c.Angle = 0
}

var Clip = donburi.NewComponentType[ClipData]()
