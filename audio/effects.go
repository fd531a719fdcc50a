package audio

import (
	"math"
	"math/rand/v2"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/lixenwraith/blockfall/constants"
	"github.com/lixenwraith/blockfall/engine"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator generates a fixed-length raw wave
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates a wave streamer that drains after duration
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveNoise:
			val = rand.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase) // Keep in [0, 1)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies attack/release shaping to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	sustainSamples int
	totalSamples   int
}

// NewEnvelope wraps s with a linear attack and release
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)

	return &envelope{
		streamer:       s,
		attackSamples:  att,
		releaseSamples: rel,
		sustainSamples: max(total-att-rel, 0),
		totalSamples:   total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}

		vol := 1.0
		if e.position < e.attackSamples && e.attackSamples > 0 {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		releaseStart := e.attackSamples + e.sustainSamples
		if e.position >= releaseStart && e.releaseSamples > 0 {
			vol = max(float64(e.totalSamples-e.position)/float64(e.releaseSamples), 0)
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}

	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume scales linearly; zero is silent since log2(0) is -Inf
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

func (cfg *AudioConfig) rate() beep.SampleRate {
	return beep.SampleRate(cfg.SampleRate)
}

func (cfg *AudioConfig) level(t SoundType) float64 {
	return cfg.EffectVolumes[t] * cfg.MasterVolume
}

// note is a single shaped tone
func note(freq float64, wave WaveType, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return NewEnvelope(NewOscillator(freq, duration, wave, rate), duration, attack, release, rate)
}

// CreateLockSound generates a low thud for a settled piece
func CreateLockSound(cfg *AudioConfig) beep.Streamer {
	s := note(110, WaveSine, constants.LockSoundDuration, constants.LockSoundAttack, constants.LockSoundRelease, cfg.rate())
	return newVolume(s, cfg.level(SoundLock))
}

// CreateRotateSound generates a short square blip
func CreateRotateSound(cfg *AudioConfig) beep.Streamer {
	s := note(1320, WaveSquare, constants.RotateSoundDuration, constants.RotateSoundAttack, constants.RotateSoundRelease, cfg.rate())
	return newVolume(s, cfg.level(SoundRotate))
}

// CreateClearSound generates a bell whose pitch rises with the number of lines
func CreateClearSound(cfg *AudioConfig, lines int) beep.Streamer {
	rate := cfg.rate()
	// Fundamental steps up a major third per extra line from A5
	freq := 880.0 * math.Pow(2, float64(max(lines-1, 0))*4/12)

	fund := note(freq, WaveSine, constants.ClearSoundDuration, constants.ClearSoundAttack, constants.ClearSoundFundamentalRelease, rate)
	over := note(freq*2, WaveSine, constants.ClearSoundDuration, constants.ClearSoundAttack, constants.ClearSoundOvertoneRelease, rate)

	mixed := beep.Mix(
		newVolume(fund, 0.7),
		newVolume(over, 0.3),
	)
	return newVolume(mixed, cfg.level(SoundClear))
}

// CreateTetraSound generates the two-note chime for a four-line clear
func CreateTetraSound(cfg *AudioConfig) beep.Streamer {
	rate := cfg.rate()

	// B5 then E6
	n1 := note(987.77, WaveSquare, constants.TetraSoundNote1Duration, constants.TetraSoundAttack, constants.TetraSoundNote1Release, rate)
	n2 := note(1318.51, WaveSquare, constants.TetraSoundNote2Duration, constants.TetraSoundAttack, constants.TetraSoundNote2Release, rate)

	return newVolume(beep.Seq(n1, n2), cfg.level(SoundTetra))
}

// CreateLevelUpSound generates a rising C major arpeggio
func CreateLevelUpSound(cfg *AudioConfig) beep.Streamer {
	rate := cfg.rate()
	freqs := []float64{523.25, 659.25, 783.99, 1046.5}

	notes := make([]beep.Streamer, len(freqs))
	for i, f := range freqs {
		notes[i] = note(f, WaveSine, constants.LevelUpNoteDuration, constants.LevelUpNoteAttack, constants.LevelUpNoteRelease, rate)
	}
	return newVolume(beep.Seq(notes...), cfg.level(SoundLevelUp))
}

// CreateGameOverSound generates a falling saw line
func CreateGameOverSound(cfg *AudioConfig) beep.Streamer {
	rate := cfg.rate()
	freqs := []float64{392.0, 311.13, 261.63}

	notes := make([]beep.Streamer, len(freqs))
	for i, f := range freqs {
		notes[i] = note(f, WaveSaw, constants.GameOverNoteDuration, constants.GameOverNoteAttack, constants.GameOverNoteRelease, rate)
	}
	return newVolume(beep.Seq(notes...), cfg.level(SoundGameOver))
}

// GetSoundEffect returns the streamer for a sound type; lines only affects SoundClear
func GetSoundEffect(soundType SoundType, lines int, cfg *AudioConfig) beep.Streamer {
	switch soundType {
	case SoundLock:
		return CreateLockSound(cfg)
	case SoundRotate:
		return CreateRotateSound(cfg)
	case SoundClear:
		return CreateClearSound(cfg, lines)
	case SoundTetra:
		return CreateTetraSound(cfg)
	case SoundLevelUp:
		return CreateLevelUpSound(cfg)
	case SoundGameOver:
		return CreateGameOverSound(cfg)
	default:
		return nil
	}
}

// SoundFor maps an engine event to its sound; false for silent events
func SoundFor(ev engine.Event) (SoundType, bool) {
	switch ev.Type {
	case engine.EventLock:
		return SoundLock, true
	case engine.EventRotate:
		return SoundRotate, true
	case engine.EventLinesCleared:
		if ev.Lines >= 4 {
			return SoundTetra, true
		}
		return SoundClear, true
	case engine.EventLevelUp:
		return SoundLevelUp, true
	case engine.EventGameOver:
		return SoundGameOver, true
	}
	return 0, false
}
