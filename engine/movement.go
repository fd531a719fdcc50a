package engine

import (
	"github.com/lixenwraith/blockfall/board"
	"github.com/lixenwraith/blockfall/geometry"
)

// CanPlace reports whether p fits on b
// Cells left/right of the grid or below row 0 are rejected; cells above the top
// row are accepted and never tested against the board
func CanPlace(p Piece, b *board.Board) bool {
	for _, c := range p.Cells() {
		if c.Col < 0 || c.Col >= b.Cols() || c.Row < 0 {
			return false
		}
		if c.Row < b.Rows() && b.Occupied(c.Col, c.Row) {
			return false
		}
	}
	return true
}

// Move proposes a horizontal shift by direction (-1 left, +1 right)
// Returns the original piece and false when the shift is blocked
func Move(p Piece, b *board.Board, direction int) (Piece, bool) {
	candidate := p.Translated(direction, 0)
	if !CanPlace(candidate, b) {
		return p, false
	}
	return candidate, true
}

// Fall proposes a one-row descent without locking
// Returns the original piece and false when the piece has landed
func Fall(p Piece, b *board.Board) (Piece, bool) {
	candidate := p.Translated(0, -1)
	if !CanPlace(candidate, b) {
		return p, false
	}
	return candidate, true
}

// DropTarget returns the lowest valid placement reachable by repeated Fall
func DropTarget(p Piece, b *board.Board) Piece {
	for {
		next, ok := Fall(p, b)
		if !ok {
			return p
		}
		p = next
	}
}

// ShadowCells returns the cells p would occupy if dropped; state is untouched
func ShadowCells(p Piece, b *board.Board) []geometry.Point {
	return DropTarget(p, b).Cells()
}

// Lock overlays p onto b and returns the number of cells written
// Cells above the visible grid cannot be represented and are dropped
func Lock(p Piece, b *board.Board) int {
	written := 0
	for _, c := range p.Cells() {
		if b.InBounds(c.Col, c.Row) {
			b.Set(c.Col, c.Row)
			written++
		}
	}
	return written
}
