package geometry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogContents(t *testing.T) {
	require.Equal(t, 10, CatalogSize())

	want := []struct {
		name string
		size int
	}{
		{"mini-I", 2}, {"dot", 1}, {"O", 4}, {"I", 4}, {"L", 4},
		{"J", 4}, {"S", 4}, {"Z", 4}, {"T", 4}, {"slash", 2},
	}
	for kind, w := range want {
		a, ok := Lookup(kind)
		require.True(t, ok)
		assert.Equal(t, w.name, a.Name)
		assert.Equal(t, w.size, a.Size())
		assert.Equal(t, w.name, Name(kind))
	}
}

func TestLookupUnknown(t *testing.T) {
	_, ok := Lookup(-1)
	assert.False(t, ok)
	_, ok = Lookup(CatalogSize())
	assert.False(t, ok)
	assert.Empty(t, Name(99))
}

func TestLookupReturnsCopy(t *testing.T) {
	a, _ := Lookup(KindI)
	a.Points[0] = Point{40, 40}

	b, _ := Lookup(KindI)
	assert.Equal(t, Point{-1, 0}, b.Points[0])
}

func TestOffsets(t *testing.T) {
	assert.Equal(t, []Point{{-1, 0}, {0, 0}, {1, 0}, {2, 0}}, Offsets(KindI, 0))
	assert.Equal(t, []Point{{0, -1}, {0, 0}, {0, 1}, {0, 2}}, Offsets(KindI, 1))
	assert.Equal(t, Offsets(KindT, 0), Offsets(KindT, 4))
}

func TestBounds(t *testing.T) {
	a, _ := Lookup(KindL)
	lo, hi := a.Bounds()
	assert.Equal(t, Point{-1, 0}, lo)
	assert.Equal(t, Point{1, 1}, hi)
}
