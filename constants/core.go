package constants

import "time"

// Game Loop & Engine Timing
const (
	// FrameUpdateInterval is the per-iteration time budget of the game loop (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond

	// BaseFallInterval is the gravity interval at level 1
	BaseFallInterval = 800 * time.Millisecond

	// FallIntervalDecay is subtracted from the gravity interval for every level above 1
	FallIntervalDecay = 50 * time.Millisecond

	// MinFallInterval is the gravity interval floor
	MinFallInterval = 50 * time.Millisecond
)

// Input Pump
const (
	// CommandQueueSize is the buffered capacity between the input pump and the game loop
	CommandQueueSize = 64

	// DefaultInputRate is the sustained commands/second accepted from the terminal
	DefaultInputRate = 30.0

	// DefaultInputBurst is the burst size of the input flood guard
	DefaultInputBurst = 8
)

// Session End
const (
	// GameOverHold is the longest the final board stays up waiting for a key
	GameOverHold = 15 * time.Second

	// GameOverKeyGrace ignores keys pressed right as the game ended
	GameOverKeyGrace = 300 * time.Millisecond

	// AudioDrainTimeout bounds the wait for queued effects before the speaker closes
	AudioDrainTimeout = 2 * time.Second
)
