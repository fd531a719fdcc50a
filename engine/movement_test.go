package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/blockfall/board"
	"github.com/lixenwraith/blockfall/geometry"
)

func newBoard(t *testing.T, cols, rows int) *board.Board {
	t.Helper()
	b, err := board.New(cols, rows)
	require.NoError(t, err)
	return b
}

// CanPlace agrees with a direct reading of the placement rules for every
// archetype, rotation and position around a partially filled board
func TestCanPlaceBoundsSafety(t *testing.T) {
	b := newBoard(t, 6, 5)
	b.Set(0, 0)
	b.Set(3, 2)
	b.Set(5, 4)

	for kind := 0; kind < geometry.CatalogSize(); kind++ {
		for rot := 0; rot < 4; rot++ {
			for col := -3; col < b.Cols()+3; col++ {
				for row := -3; row < b.Rows()+3; row++ {
					p := Piece{Kind: kind, Position: geometry.Point{Col: col, Row: row}, Rotation: rot}

					want := true
					for _, c := range p.Cells() {
						if c.Col < 0 || c.Col >= b.Cols() || c.Row < 0 {
							want = false
							break
						}
						if c.Row < b.Rows() && b.Occupied(c.Col, c.Row) {
							want = false
							break
						}
					}
					assert.Equal(t, want, CanPlace(p, b), "kind %d rot %d at (%d,%d)", kind, rot, col, row)
				}
			}
		}
	}
}

func TestCanPlaceAboveTop(t *testing.T) {
	b := newBoard(t, 10, 15)
	p := NewPiece(geometry.KindI, geometry.Point{Col: 5, Row: 20})
	assert.True(t, CanPlace(p, b))

	p = NewPiece(geometry.KindI, geometry.Point{Col: 9, Row: 20})
	assert.False(t, CanPlace(p, b), "side bounds still apply above the grid")
}

func TestMove(t *testing.T) {
	b := newBoard(t, 10, 15)
	p := NewPiece(geometry.KindO, geometry.Point{Col: 0, Row: 5})

	moved, ok := Move(p, b, -1)
	assert.False(t, ok)
	assert.Equal(t, p, moved)

	moved, ok = Move(p, b, 1)
	assert.True(t, ok)
	assert.Equal(t, 1, moved.Position.Col)

	b.Set(3, 5)
	blocked, ok := Move(moved, b, 1)
	assert.False(t, ok)
	assert.Equal(t, moved, blocked)
}

func TestFallAndDropTarget(t *testing.T) {
	b := newBoard(t, 10, 15)
	p := NewPiece(geometry.KindI, geometry.Point{Col: 5, Row: 13})

	fallen, ok := Fall(p, b)
	assert.True(t, ok)
	assert.Equal(t, 12, fallen.Position.Row)

	target := DropTarget(p, b)
	assert.Equal(t, 0, target.Position.Row)

	_, ok = Fall(target, b)
	assert.False(t, ok)

	b.Set(6, 4)
	assert.Equal(t, 5, DropTarget(p, b).Position.Row)
}

func TestShadowCellsDoesNotMutate(t *testing.T) {
	b := newBoard(t, 10, 15)
	p := NewPiece(geometry.KindT, geometry.Point{Col: 5, Row: 13})
	before := b.Count()

	shadow := ShadowCells(p, b)
	assert.ElementsMatch(t, []geometry.Point{{4, 0}, {5, 0}, {6, 0}, {5, 1}}, shadow)
	assert.Equal(t, before, b.Count())
	assert.Equal(t, 13, p.Position.Row)
}

func TestLockConservation(t *testing.T) {
	b := newBoard(t, 10, 15)
	b.Set(0, 0)
	b.Set(9, 3)

	for kind := 0; kind < geometry.CatalogSize(); kind++ {
		bb := b.Clone()
		p := DropTarget(NewPiece(kind, geometry.Point{Col: 5, Row: 10}), bb)
		require.True(t, CanPlace(p, bb))

		before := bb.Count()
		written := Lock(p, bb)
		assert.Equal(t, len(p.Cells()), written)
		assert.Equal(t, before+len(p.Cells()), bb.Count())
	}
}

func TestLockDropsCellsAboveGrid(t *testing.T) {
	b := newBoard(t, 5, 3)
	p := NewPiece(geometry.KindMiniI, geometry.Point{Col: 2, Row: 2})
	assert.Equal(t, 1, Lock(p, b))
	assert.Equal(t, 1, b.Count())
}
