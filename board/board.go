// Package board holds the settled-cell grid and its row operations
// Row 0 is the bottom row; rows grow upward
package board

import (
	"errors"
	"fmt"

	"github.com/lixenwraith/blockfall/constants"
)

// Sentinel errors
var (
	ErrBoardTooNarrow = errors.New("board too narrow")
	ErrBoardTooShort  = errors.New("board too short")
)

// Board is a fixed-size occupancy grid stored flat, indexed row*cols+col
type Board struct {
	cols  int
	rows  int
	cells []bool
}

// ValidateDimensions reports whether cols x rows is an acceptable board size
func ValidateDimensions(cols, rows int) error {
	if cols < constants.MinBoardCols {
		return fmt.Errorf("%w: width %d, minimum %d", ErrBoardTooNarrow, cols, constants.MinBoardCols)
	}
	if rows < constants.MinBoardRows {
		return fmt.Errorf("%w: height %d, minimum %d", ErrBoardTooShort, rows, constants.MinBoardRows)
	}
	return nil
}

// New creates an empty board after validating its dimensions
func New(cols, rows int) (*Board, error) {
	if err := ValidateDimensions(cols, rows); err != nil {
		return nil, err
	}
	return &Board{
		cols:  cols,
		rows:  rows,
		cells: make([]bool, cols*rows),
	}, nil
}

// Cols returns the board width
func (b *Board) Cols() int { return b.cols }

// Rows returns the board height
func (b *Board) Rows() int { return b.rows }

// InBounds reports 0 <= col < cols and 0 <= row < rows
func (b *Board) InBounds(col, row int) bool {
	return col >= 0 && col < b.cols && row >= 0 && row < b.rows
}

// Occupied reports whether a cell is set; any out-of-range cell is empty
func (b *Board) Occupied(col, row int) bool {
	if !b.InBounds(col, row) {
		return false
	}
	return b.cells[row*b.cols+col]
}

// Set marks a cell occupied; out-of-range coordinates are ignored
func (b *Board) Set(col, row int) {
	if b.InBounds(col, row) {
		b.cells[row*b.cols+col] = true
	}
}

// Clear marks a cell empty; out-of-range coordinates are ignored
func (b *Board) Clear(col, row int) {
	if b.InBounds(col, row) {
		b.cells[row*b.cols+col] = false
	}
}

// FullRow reports whether every column of row is occupied
func (b *Board) FullRow(row int) bool {
	if row < 0 || row >= b.rows {
		return false
	}
	base := row * b.cols
	for col := 0; col < b.cols; col++ {
		if !b.cells[base+col] {
			return false
		}
	}
	return true
}

// Count returns the number of occupied cells
func (b *Board) Count() int {
	n := 0
	for _, c := range b.cells {
		if c {
			n++
		}
	}
	return n
}

// Cells returns a copy of the flat occupancy grid
func (b *Board) Cells() []bool {
	out := make([]bool, len(b.cells))
	copy(out, b.cells)
	return out
}

// Clone returns an independent copy of the board
func (b *Board) Clone() *Board {
	return &Board{cols: b.cols, rows: b.rows, cells: b.Cells()}
}
