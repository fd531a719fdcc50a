package audio

import (
	"testing"
	"time"

	"github.com/gopxl/beep"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/blockfall/constants"
	"github.com/lixenwraith/blockfall/engine"
)

// drain streams s to completion and returns the sample count
func drain(t *testing.T, s beep.Streamer) int {
	t.Helper()
	require.NotNil(t, s)

	buf := make([][2]float64, 512)
	total := 0
	for i := 0; i < 1_000_000; i++ {
		n, ok := s.Stream(buf)
		total += n
		for _, smp := range buf[:n] {
			require.LessOrEqual(t, smp[0], 1.0)
			require.GreaterOrEqual(t, smp[0], -1.0)
		}
		if !ok {
			return total
		}
	}
	t.Fatal("streamer never drained")
	return total
}

func TestOscillatorWaves(t *testing.T) {
	rate := beep.SampleRate(44100)
	for _, wave := range []WaveType{WaveSine, WaveSquare, WaveSaw, WaveNoise} {
		osc := NewOscillator(440, 100*time.Millisecond, wave, rate)
		assert.Equal(t, rate.N(100*time.Millisecond), drain(t, osc))
		assert.NoError(t, osc.Err())
	}
}

func TestOscillatorSquareLevels(t *testing.T) {
	rate := beep.SampleRate(44100)
	osc := NewOscillator(220, 50*time.Millisecond, WaveSquare, rate)

	samples := make([][2]float64, 50)
	n, ok := osc.Stream(samples)
	require.True(t, ok)
	for _, s := range samples[:n] {
		assert.Contains(t, []float64{1.0, -1.0}, s[0])
		assert.Equal(t, s[0], s[1])
	}
}

func TestEnvelopeShape(t *testing.T) {
	rate := beep.SampleRate(1000)
	osc := NewOscillator(0, 100*time.Millisecond, WaveSquare, rate)
	env := NewEnvelope(osc, 100*time.Millisecond, 10*time.Millisecond, 20*time.Millisecond, rate)

	samples := make([][2]float64, 100)
	n, _ := env.Stream(samples)
	require.Equal(t, 100, n)

	assert.Equal(t, 0.0, samples[0][0], "attack starts silent")
	assert.InDelta(t, 0.5, samples[5][0], 1e-9)
	assert.Equal(t, 1.0, samples[50][0], "sustain at full level")
	assert.InDelta(t, 0.5, samples[90][0], 1e-9)
}

func TestEffectLengths(t *testing.T) {
	cfg := DefaultAudioConfig()
	rate := beep.SampleRate(cfg.SampleRate)

	tests := []struct {
		name   string
		stream beep.Streamer
		want   int
	}{
		{"lock", CreateLockSound(cfg), rate.N(constants.LockSoundDuration)},
		{"rotate", CreateRotateSound(cfg), rate.N(constants.RotateSoundDuration)},
		{"clear", CreateClearSound(cfg, 2), rate.N(constants.ClearSoundDuration)},
		{"tetra", CreateTetraSound(cfg), rate.N(constants.TetraSoundNote1Duration) + rate.N(constants.TetraSoundNote2Duration)},
		{"level-up", CreateLevelUpSound(cfg), 4 * rate.N(constants.LevelUpNoteDuration)},
		{"game-over", CreateGameOverSound(cfg), 3 * rate.N(constants.GameOverNoteDuration)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, drain(t, tt.stream))
		})
	}
}

func TestGetSoundEffect(t *testing.T) {
	cfg := DefaultAudioConfig()
	for st := SoundType(0); st < soundTypeCount; st++ {
		assert.NotNil(t, GetSoundEffect(st, 1, cfg), st.String())
	}
	assert.Nil(t, GetSoundEffect(soundTypeCount, 1, cfg))
}

func TestZeroVolumeIsSilent(t *testing.T) {
	cfg := DefaultAudioConfig()
	cfg.MasterVolume = 0

	s := CreateLockSound(cfg)
	buf := make([][2]float64, 256)
	n, _ := s.Stream(buf)
	for _, smp := range buf[:n] {
		assert.Zero(t, smp[0])
	}
}

func TestSoundFor(t *testing.T) {
	tests := []struct {
		ev    engine.Event
		sound SoundType
		ok    bool
	}{
		{engine.Event{Type: engine.EventLock}, SoundLock, true},
		{engine.Event{Type: engine.EventRotate}, SoundRotate, true},
		{engine.Event{Type: engine.EventLinesCleared, Lines: 1}, SoundClear, true},
		{engine.Event{Type: engine.EventLinesCleared, Lines: 3}, SoundClear, true},
		{engine.Event{Type: engine.EventLinesCleared, Lines: 4}, SoundTetra, true},
		{engine.Event{Type: engine.EventLevelUp}, SoundLevelUp, true},
		{engine.Event{Type: engine.EventGameOver}, SoundGameOver, true},
		{engine.Event{Type: engine.EventPause}, 0, false},
		{engine.Event{Type: engine.EventResume}, 0, false},
	}

	for _, tt := range tests {
		sound, ok := SoundFor(tt.ev)
		assert.Equal(t, tt.ok, ok, tt.ev.Type.String())
		if tt.ok {
			assert.Equal(t, tt.sound, sound, tt.ev.Type.String())
		}
	}
}
