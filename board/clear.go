package board

// ClearLines removes every full row, compacting the rows above it downward,
// and returns the number of rows removed
// Rows are scanned bottom-up; after a removal the same index is examined again
// since the row above has shifted into it
func (b *Board) ClearLines() int {
	cleared := 0
	for row := 0; row < b.rows; {
		if !b.FullRow(row) {
			row++
			continue
		}
		cleared++

		for col := 0; col < b.cols; col++ {
			b.cells[row*b.cols+col] = false
		}

		for from := row + 1; from < b.rows; from++ {
			to := from - 1
			for col := 0; col < b.cols; col++ {
				b.cells[to*b.cols+col] = b.cells[from*b.cols+col]
				b.cells[from*b.cols+col] = false
			}
		}
	}
	return cleared
}
