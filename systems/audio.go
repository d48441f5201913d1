package systems

import (
	"encoding/binary"
	"fmt"
	"math"
	"sync"
	"sync/atomic"

	"github.com/automoto/jeepdrive/archetypes"
	"github.com/automoto/jeepdrive/components"
	cfg "github.com/automoto/jeepdrive/config"
	"github.com/automoto/jeepdrive/shared/gamemath"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/rs/zerolog/log"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const bytesPerFrame = 4 // 16-bit stereo

// EngineTone is an endless sawtooth whose pitch and loudness follow a level
// in [0, 1]. Read runs on the audio goroutine; SetLevel on the game loop.
type EngineTone struct {
	sampleRate float64
	cfg        cfg.AudioConfig

	freq atomic.Uint64 // math.Float64bits
	amp  atomic.Uint64

	phase float64
}

// NewEngineTone creates a tone at idle level.
func NewEngineTone(c cfg.AudioConfig) *EngineTone {
	t := &EngineTone{sampleRate: float64(c.SampleRate), cfg: c}
	t.SetLevel(0)
	return t
}

// SetLevel maps level onto pitch and amplitude between the idle and full
// speed settings.
func (t *EngineTone) SetLevel(level float64) {
	level = math.Max(0, math.Min(1, level))
	t.freq.Store(math.Float64bits(gamemath.Lerp(t.cfg.IdlePitch, t.cfg.MaxPitch, level)))
	t.amp.Store(math.Float64bits(gamemath.Lerp(t.cfg.IdleVolume, t.cfg.Volume, level)))
}

// Frequency returns the current pitch in Hz.
func (t *EngineTone) Frequency() float64 {
	return math.Float64frombits(t.freq.Load())
}

// Amplitude returns the current peak amplitude in [0, 1].
func (t *EngineTone) Amplitude() float64 {
	return math.Float64frombits(t.amp.Load())
}

// Read fills p with whole 16-bit little-endian stereo frames.
func (t *EngineTone) Read(p []byte) (int, error) {
	freq, amp := t.Frequency(), t.Amplitude()
	step := 0.0
	if t.sampleRate > 0 {
		step = freq / t.sampleRate
	}

	n := len(p) / bytesPerFrame * bytesPerFrame
	for i := 0; i < n; i += bytesPerFrame {
		sample := int16((2*t.phase - 1) * amp * math.MaxInt16)
		binary.LittleEndian.PutUint16(p[i:], uint16(sample))
		binary.LittleEndian.PutUint16(p[i+2:], uint16(sample))

		t.phase += step
		if t.phase >= 1 {
			t.phase -= math.Floor(t.phase)
		}
	}
	return n, nil
}

var (
	audioContext     *audio.Context
	audioContextOnce sync.Once
)

// sharedAudioContext returns the process-wide audio context. ebiten allows
// only one.
func sharedAudioContext(sampleRate int) *audio.Context {
	audioContextOnce.Do(func() {
		audioContext = audio.CurrentContext()
		if audioContext == nil {
			audioContext = audio.NewContext(sampleRate)
		}
	})
	return audioContext
}

// CreateEngineAudio starts the engine tone and spawns the audio singleton.
// Disabled audio is not an error.
func CreateEngineAudio(e *ecs.ECS) error {
	if !cfg.Audio.Enabled {
		return nil
	}

	tone := NewEngineTone(cfg.Audio)
	ctx := sharedAudioContext(cfg.Audio.SampleRate)
	player, err := ctx.NewPlayer(tone)
	if err != nil {
		return fmt.Errorf("create engine player: %w", err)
	}
	player.Play()

	entry := archetypes.Audio.Spawn(e)
	components.Audio.SetValue(entry, components.AudioData{
		Context: ctx,
		Player:  player,
		Tone:    tone,
	})
	log.Debug().Int("sampleRate", cfg.Audio.SampleRate).Msg("engine audio started")
	return nil
}

// EngineAudioObserver pushes the speed level to the engine tone. Subscribe it
// to SpeedChanged.
func EngineAudioObserver(w donburi.World, ev SpeedChange) {
	entry, ok := components.Audio.First(w)
	if !ok {
		return
	}
	data := components.Audio.Get(entry)
	if data.Tone == nil {
		return
	}
	data.Level = gamemath.SpeedFactor(ev.Speed, ev.MaxSpeed)
	data.Tone.SetLevel(data.Level)
}
