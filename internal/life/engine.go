package life

// Rule returns the next state of a cell with n living neighbors.
func Rule(c Cell, n int) Cell {
	switch {
	case c == Alive && (n == 2 || n == 3):
		return Alive
	case c == Dead && n == 3:
		return Alive
	default:
		return Dead
	}
}

// Advance moves the grid forward one generation. Every next state is
// computed from the untouched current buffer before the buffers are swapped.
func Advance(g *Grid) {
	for row := 0; row < g.height; row++ {
		for col := 0; col < g.width; col++ {
			idx := g.Index(row, col)
			g.next[idx] = Rule(g.cells[idx], g.CountLivingNeighbors(row, col))
		}
	}
	g.cells, g.next = g.next, g.cells
}
