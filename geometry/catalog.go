package geometry

// Archetype is one named shape of the piece catalog, as offsets from a pivot at (0,0)
type Archetype struct {
	Name   string
	Points []Point
}

// Size returns the archetype's cell count
func (a Archetype) Size() int {
	return len(a.Points)
}

// Bounds returns the inclusive bounding box of the unrotated offsets
func (a Archetype) Bounds() (lo, hi Point) {
	for i, p := range a.Points {
		if i == 0 {
			lo, hi = p, p
			continue
		}
		lo.Col = min(lo.Col, p.Col)
		lo.Row = min(lo.Row, p.Row)
		hi.Col = max(hi.Col, p.Col)
		hi.Row = max(hi.Row, p.Row)
	}
	return lo, hi
}

// Archetype indices in catalog order
const (
	KindMiniI = iota
	KindDot
	KindO
	KindI
	KindL
	KindJ
	KindS
	KindZ
	KindT
	KindSlash
	kindCount
)

// catalog is never mutated; accessors hand out copies of the point slices
var catalog = [kindCount]Archetype{
	KindMiniI: {Name: "mini-I", Points: []Point{{0, 0}, {0, 1}}},
	KindDot:   {Name: "dot", Points: []Point{{0, 0}}},
	KindO:     {Name: "O", Points: []Point{{0, 0}, {0, 1}, {1, 0}, {1, 1}}},
	KindI:     {Name: "I", Points: []Point{{-1, 0}, {0, 0}, {1, 0}, {2, 0}}},
	KindL:     {Name: "L", Points: []Point{{-1, 0}, {-1, 1}, {0, 0}, {1, 0}}},
	KindJ:     {Name: "J", Points: []Point{{-1, 0}, {0, 0}, {1, 0}, {1, 1}}},
	KindS:     {Name: "S", Points: []Point{{-1, 1}, {0, 1}, {0, 0}, {1, 0}}},
	KindZ:     {Name: "Z", Points: []Point{{-1, 0}, {0, 0}, {0, 1}, {1, 1}}},
	KindT:     {Name: "T", Points: []Point{{-1, 0}, {0, 0}, {1, 0}, {0, 1}}},
	KindSlash: {Name: "slash", Points: []Point{{0, 0}, {1, 1}}},
}

// CatalogSize returns the number of archetypes
func CatalogSize() int {
	return kindCount
}

// Lookup returns a copy of the archetype at kind; ok is false for an unknown index
func Lookup(kind int) (Archetype, bool) {
	if kind < 0 || kind >= kindCount {
		return Archetype{}, false
	}
	a := catalog[kind]
	pts := make([]Point, len(a.Points))
	copy(pts, a.Points)
	return Archetype{Name: a.Name, Points: pts}, true
}

// Offsets returns the archetype's offsets rotated `rotation` times clockwise
// The returned slice is freshly allocated
func Offsets(kind, rotation int) []Point {
	a := catalog[kind]
	out := make([]Point, len(a.Points))
	for i, p := range a.Points {
		out[i] = p.Rotate(rotation)
	}
	return out
}

// Name returns the archetype name, "" for an unknown index
func Name(kind int) string {
	if kind < 0 || kind >= kindCount {
		return ""
	}
	return catalog[kind].Name
}
