package constants

import "time"

// Audio engine
const (
	// AudioSampleRate is the speaker and generator sample rate
	AudioSampleRate = 44100

	// AudioBufferDuration is the speaker buffer length
	AudioBufferDuration = 100 * time.Millisecond
)

// Lock Sound Timing
const (
	LockSoundDuration = 60 * time.Millisecond
	LockSoundAttack   = 2 * time.Millisecond
	LockSoundRelease  = 45 * time.Millisecond
)

// Rotate Sound Timing
const (
	RotateSoundDuration = 30 * time.Millisecond
	RotateSoundAttack   = 2 * time.Millisecond
	RotateSoundRelease  = 15 * time.Millisecond
)

// Line Clear Sound Timing
const (
	ClearSoundDuration           = 400 * time.Millisecond
	ClearSoundAttack             = 5 * time.Millisecond
	ClearSoundFundamentalRelease = 350 * time.Millisecond
	ClearSoundOvertoneRelease    = 150 * time.Millisecond
)

// Four-line Clear Sound Timing
const (
	TetraSoundNote1Duration = 80 * time.Millisecond
	TetraSoundNote2Duration = 280 * time.Millisecond
	TetraSoundAttack        = 5 * time.Millisecond
	TetraSoundNote1Release  = 40 * time.Millisecond
	TetraSoundNote2Release  = 200 * time.Millisecond
)

// Level Up Sound Timing
const (
	LevelUpNoteDuration = 90 * time.Millisecond
	LevelUpNoteAttack   = 5 * time.Millisecond
	LevelUpNoteRelease  = 50 * time.Millisecond
)

// Game Over Sound Timing
const (
	GameOverNoteDuration = 220 * time.Millisecond
	GameOverNoteAttack   = 10 * time.Millisecond
	GameOverNoteRelease  = 150 * time.Millisecond
)
