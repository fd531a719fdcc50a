package audio

import "github.com/lixenwraith/blockfall/constants"

// SoundType represents different sound effects
type SoundType int

const (
	SoundLock     SoundType = iota // Piece settles
	SoundRotate                    // Successful rotation
	SoundClear                     // One to three lines cleared
	SoundTetra                     // Four or more lines cleared at once
	SoundLevelUp                   // Level threshold crossed
	SoundGameOver                  // Lock-out
	soundTypeCount
)

var soundNames = [...]string{
	SoundLock:     "lock",
	SoundRotate:   "rotate",
	SoundClear:    "clear",
	SoundTetra:    "tetra",
	SoundLevelUp:  "level-up",
	SoundGameOver: "game-over",
}

func (s SoundType) String() string {
	if s < 0 || s >= soundTypeCount {
		return "unknown"
	}
	return soundNames[s]
}

// AudioConfig holds mixer levels and the output rate
type AudioConfig struct {
	Enabled       bool
	MasterVolume  float64 // 0.0 to 1.0
	SampleRate    int
	EffectVolumes [soundTypeCount]float64
}

// DefaultAudioConfig returns the built-in levels
func DefaultAudioConfig() *AudioConfig {
	return &AudioConfig{
		Enabled:      true,
		MasterVolume: 0.5,
		SampleRate:   constants.AudioSampleRate,
		EffectVolumes: [soundTypeCount]float64{
			SoundLock:     0.6,
			SoundRotate:   0.3,
			SoundClear:    0.8,
			SoundTetra:    0.8,
			SoundLevelUp:  0.7,
			SoundGameOver: 0.9,
		},
	}
}
