package engine

import "github.com/lixenwraith/blockfall/geometry"

// Piece is an immutable placement of one catalog archetype
// Every transform returns a new value; callers validate before committing
type Piece struct {
	Kind     int
	Position geometry.Point
	Rotation int // 0..3, clockwise quarter turns
}

// NewPiece creates an unrotated piece of kind at pos
func NewPiece(kind int, pos geometry.Point) Piece {
	return Piece{Kind: kind, Position: pos}
}

// Cells returns the absolute occupied cells: offsets rotated then translated
func (p Piece) Cells() []geometry.Point {
	cells := geometry.Offsets(p.Kind, p.Rotation)
	for i := range cells {
		cells[i] = cells[i].Add(p.Position)
	}
	return cells
}

// Translated returns the piece shifted by (dc, dr)
func (p Piece) Translated(dc, dr int) Piece {
	p.Position = p.Position.Add(geometry.Point{Col: dc, Row: dr})
	return p
}

// Rotated returns the piece turned by quarter turns (negative for counter-clockwise)
func (p Piece) Rotated(turns int) Piece {
	p.Rotation = ((p.Rotation+turns)%4 + 4) % 4
	return p
}

// Name returns the archetype name
func (p Piece) Name() string {
	return geometry.Name(p.Kind)
}
