package systems

import (
	"math"

	"github.com/automoto/jeepdrive/components"
	cfg "github.com/automoto/jeepdrive/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// ClipSpeedObserver starts or stops the wheel clip of every vehicle from a
// speed event. Subscribe it to SpeedChanged.
func ClipSpeedObserver(w donburi.World, ev SpeedChange) {
	components.Clip.Each(w, func(entry *donburi.Entry) {
		ApplySpeedToClip(components.Clip.Get(entry), ev.Speed)
	})
}

// ApplySpeedToClip plays the clip at a rate proportional to |speed|, or
// pauses and rewinds it when the vehicle is nearly stopped.
func ApplySpeedToClip(clip *components.ClipData, speed float64) {
	abs := math.Abs(speed)
	if abs <= cfg.Vehicle.ClipSpeedThreshold {
		clip.Rewind()
		return
	}
	clip.Playing = true
	clip.TimeScale = abs * cfg.Vehicle.ClipTimeScale
}

// UpdateClips advances playing clips by dt scaled by their timescale. Clips
// loop.
func UpdateClips(e *ecs.ECS) {
	clock := getClock(e.World)
	if clock == nil {
		return
	}
	components.Clip.Each(e.World, func(entry *donburi.Entry) {
		AdvanceClip(components.Clip.Get(entry), clock.DeltaTime)
	})
}

// AdvanceClip steps one clip.
func AdvanceClip(clip *components.ClipData, dt float64) {
	if !clip.Playing || clip.Tween == nil {
		return
	}
	angle, finished := clip.Tween.Update(float32(dt * clip.TimeScale))
	clip.Angle = float64(angle)
	if finished {
		clip.Tween.Reset()
	}
}
