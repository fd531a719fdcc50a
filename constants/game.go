package constants

// Board Dimensions
const (
	// DefaultBoardCols is the default board width in cells
	DefaultBoardCols = 10

	// DefaultBoardRows is the default board height in cells
	DefaultBoardRows = 15

	// MinBoardCols is the narrowest board accepted at startup
	MinBoardCols = 5

	// MinBoardRows is the shortest board accepted at startup
	MinBoardRows = 3
)

// Scoring Policy
const (
	// ScoreMultiplier scales the squared line count of a single clear
	ScoreMultiplier = 100

	// PointsPerLevel is the score span of one level
	PointsPerLevel = 250
)
