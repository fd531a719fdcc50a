package geometry

// Point is an integer cell coordinate; Col grows rightward, Row grows upward
type Point struct {
	Col int
	Row int
}

// Add returns the component-wise sum
func (p Point) Add(o Point) Point {
	return Point{Col: p.Col + o.Col, Row: p.Row + o.Row}
}

// RotateCW returns the 90° clockwise image about the origin: (dx,dy) -> (-dy,dx)
func (p Point) RotateCW() Point {
	return Point{Col: -p.Row, Row: p.Col}
}

// RotateCCW returns the 90° counter-clockwise image about the origin: (dx,dy) -> (dy,-dx)
func (p Point) RotateCCW() Point {
	return Point{Col: p.Row, Row: -p.Col}
}

// Rotate applies RotateCW n times, n taken mod 4 (negative n rotates counter-clockwise)
func (p Point) Rotate(n int) Point {
	n %= 4
	if n < 0 {
		n += 4
	}
	for range n {
		p = p.RotateCW()
	}
	return p
}
