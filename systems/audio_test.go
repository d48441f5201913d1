package systems

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/automoto/jeepdrive/archetypes"
	"github.com/automoto/jeepdrive/components"
	cfg "github.com/automoto/jeepdrive/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEngineTone_SetLevel(t *testing.T) {
	tone := NewEngineTone(cfg.Audio)
	assert.Equal(t, cfg.Audio.IdlePitch, tone.Frequency())
	assert.Equal(t, cfg.Audio.IdleVolume, tone.Amplitude())

	tone.SetLevel(1)
	assert.Equal(t, cfg.Audio.MaxPitch, tone.Frequency())
	assert.InDelta(t, cfg.Audio.Volume, tone.Amplitude(), 1e-12)

	tone.SetLevel(5)
	assert.Equal(t, cfg.Audio.MaxPitch, tone.Frequency(), "level is clamped")
}

func TestEngineTone_ReadWholeFrames(t *testing.T) {
	tone := NewEngineTone(cfg.Audio)
	tone.SetLevel(1)

	buf := make([]byte, 4*100+3)
	n, err := tone.Read(buf)
	require.NoError(t, err)
	assert.Equal(t, 400, n)

	peak := int16(math.Ceil(cfg.Audio.Volume * math.MaxInt16))
	for i := 0; i < n; i += 4 {
		left := int16(binary.LittleEndian.Uint16(buf[i:]))
		right := int16(binary.LittleEndian.Uint16(buf[i+2:]))
		require.Equal(t, left, right, "frame %d", i/4)
		require.LessOrEqual(t, left, peak)
		require.GreaterOrEqual(t, left, -peak)
	}
}

type recordingTone struct{ levels []float64 }

func (r *recordingTone) SetLevel(level float64) { r.levels = append(r.levels, level) }

func TestEngineAudioObserver(t *testing.T) {
	e := newTestECS(t)

	// No audio entity: nothing to do.
	EngineAudioObserver(e.World, SpeedChange{Speed: -5, MaxSpeed: 15})

	tone := &recordingTone{}
	entry := archetypes.Audio.Spawn(e)
	components.Audio.SetValue(entry, components.AudioData{Tone: tone})

	EngineAudioObserver(e.World, SpeedChange{Speed: -7.5, MaxSpeed: 15})
	EngineAudioObserver(e.World, SpeedChange{Speed: 30, MaxSpeed: 15})

	assert.Equal(t, []float64{0.5, 1}, tone.levels)
	assert.Equal(t, 1.0, components.Audio.Get(entry).Level)
}

func TestCreateEngineAudio_Disabled(t *testing.T) {
	e := newTestECS(t)
	cfg.Audio.Enabled = false

	require.NoError(t, CreateEngineAudio(e))

	_, ok := components.Audio.First(e.World)
	assert.False(t, ok)
}
