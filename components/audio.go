package components

import (
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/yohamta/donburi"
)

// ToneSource is a generator whose pitch and loudness follow a 0..1 level.
type ToneSource interface {
	SetLevel(level float64)
}

// AudioData stores global audio state (singleton component)
type AudioData struct {
	Context *audio.Context
	Player  *audio.Player
	Tone    ToneSource
	Level   float64 // last level pushed to Tone
}

var Audio = donburi.NewComponentType[AudioData]()
