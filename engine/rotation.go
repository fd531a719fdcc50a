package engine

import "github.com/lixenwraith/blockfall/board"

// kickOffsets is the fallback search order when a rotation is blocked:
// column offset -1..1 outer, row offset -1..1 inner, (0,0) skipped
var kickOffsets = [8][2]int{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// Rotate proposes a quarter turn (+1 clockwise, -1 counter-clockwise)
// The in-place turn is tried first, then each kick offset in order
// Returns the original piece and false when every candidate is blocked
func Rotate(p Piece, b *board.Board, turns int) (Piece, bool) {
	rotated := p.Rotated(turns)
	if CanPlace(rotated, b) {
		return rotated, true
	}

	for _, k := range kickOffsets {
		kicked := rotated.Translated(k[0], k[1])
		if CanPlace(kicked, b) {
			return kicked, true
		}
	}

	return p, false
}
