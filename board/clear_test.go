package board

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fillRow(b *Board, row int) {
	for col := 0; col < b.Cols(); col++ {
		b.Set(col, row)
	}
}

func TestClearLinesNone(t *testing.T) {
	b, err := New(10, 15)
	require.NoError(t, err)
	b.Set(0, 0)
	b.Set(5, 7)

	assert.Zero(t, b.ClearLines())
	assert.Equal(t, 2, b.Count())
}

// Rows 2 and 4 full on a 10x15 board
func TestClearLinesTwoSeparatedRows(t *testing.T) {
	b, err := New(10, 15)
	require.NoError(t, err)

	fillRow(b, 2)
	fillRow(b, 4)
	b.Set(0, 0)  // below both, stays
	b.Set(1, 3)  // between, drops by one
	b.Set(2, 5)  // above both, drops by two
	b.Set(9, 14) // top row, drops by two

	require.Equal(t, 2, b.ClearLines())

	assert.True(t, b.Occupied(0, 0))
	assert.True(t, b.Occupied(1, 2))
	assert.True(t, b.Occupied(2, 3))
	assert.True(t, b.Occupied(9, 12))
	assert.Equal(t, 4, b.Count())

	for _, row := range []int{13, 14} {
		for col := 0; col < 10; col++ {
			assert.False(t, b.Occupied(col, row), "row %d col %d", row, col)
		}
	}
}

func TestClearLinesAdjacentRows(t *testing.T) {
	b, err := New(5, 6)
	require.NoError(t, err)

	for row := 0; row < 4; row++ {
		fillRow(b, row)
	}
	b.Set(2, 4)

	assert.Equal(t, 4, b.ClearLines())
	assert.True(t, b.Occupied(2, 0))
	assert.Equal(t, 1, b.Count())
}

func TestClearLinesTopRow(t *testing.T) {
	b, err := New(5, 3)
	require.NoError(t, err)
	fillRow(b, 2)

	assert.Equal(t, 1, b.ClearLines())
	assert.Zero(t, b.Count())
}
