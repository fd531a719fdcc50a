package engine

import (
	"time"

	"github.com/lixenwraith/blockfall/constants"
)

// ScoreFor returns the points of one clear event: lines² × multiplier
func ScoreFor(lines int) int {
	if lines <= 0 {
		return 0
	}
	return lines * lines * constants.ScoreMultiplier
}

// LevelFor derives the level from the accumulated score
func LevelFor(score int) int {
	if score < 0 {
		score = 0
	}
	return score/constants.PointsPerLevel + 1
}

// FallInterval returns the gravity interval at level, floored at MinFallInterval
func FallInterval(level int) time.Duration {
	if level < 1 {
		level = 1
	}
	interval := constants.BaseFallInterval - time.Duration(level-1)*constants.FallIntervalDecay
	if interval < constants.MinFallInterval {
		return constants.MinFallInterval
	}
	return interval
}
