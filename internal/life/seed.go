package life

// Source yields independent boolean draws, each true with the source's
// configured probability.
type Source interface {
	Bool() bool
}

// CreateGrid builds a height x width grid where each cell is Alive when its
// draw from src is true.
func CreateGrid(height, width int, src Source) (*Grid, error) {
	if err := checkDimensions(height, width); err != nil {
		return nil, err
	}
	g := newGrid(height, width)
	for i := range g.cells {
		if src.Bool() {
			g.cells[i] = Alive
		}
	}
	return g, nil
}
