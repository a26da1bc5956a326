package life

import (
	"fmt"
	"hash/fnv"
)

// MinDimension is the smallest height or width a Grid accepts. Below it the
// wrapped delta set {n-1, 0, 1} repeats an offset and double-counts a neighbor.
const MinDimension = 2

// Grid is a toroidal board of cells stored in row-major order.
type Grid struct {
	height, width int
	cells         []Cell
	next          []Cell
}

func newGrid(height, width int) *Grid {
	return &Grid{
		height: height,
		width:  width,
		cells:  make([]Cell, height*width),
		next:   make([]Cell, height*width),
	}
}

// FromCells builds a grid from an explicit row-major cell buffer. The buffer
// is copied.
func FromCells(height, width int, cells []Cell) (*Grid, error) {
	if err := checkDimensions(height, width); err != nil {
		return nil, err
	}
	if len(cells) != height*width {
		return nil, fmt.Errorf("%w: want %d, got %d", ErrCellCount, height*width, len(cells))
	}
	g := newGrid(height, width)
	copy(g.cells, cells)
	return g, nil
}

func (g *Grid) Height() int { return g.height }
func (g *Grid) Width() int  { return g.width }

// Index maps (row, col) to a position in the cell buffer.
func (g *Grid) Index(row, col int) int {
	return row*g.width + col
}

func (g *Grid) At(row, col int) Cell {
	return g.cells[g.Index(row, col)]
}

func (g *Grid) Set(row, col int, c Cell) {
	g.cells[g.Index(row, col)] = c
}

// Cells returns a copy of the current generation.
func (g *Grid) Cells() []Cell {
	out := make([]Cell, len(g.cells))
	copy(out, g.cells)
	return out
}

// Population returns the number of living cells.
func (g *Grid) Population() int {
	n := 0
	for _, c := range g.cells {
		n += int(c)
	}
	return n
}

// CountLivingNeighbors counts living cells in the Moore neighborhood of
// (row, col), wrapping across the edges. Adding height-1 (width-1) is the
// same as subtracting one modulo height (width).
func (g *Grid) CountLivingNeighbors(row, col int) int {
	count := 0
	for _, dr := range [3]int{g.height - 1, 0, 1} {
		for _, dc := range [3]int{g.width - 1, 0, 1} {
			if dr == 0 && dc == 0 {
				continue
			}
			r := (row + dr) % g.height
			c := (col + dc) % g.width
			count += int(g.cells[g.Index(r, c)])
		}
	}
	return count
}

// Fingerprint hashes the current generation. Equal generations on grids of
// the same size always share a fingerprint.
func (g *Grid) Fingerprint() uint64 {
	h := fnv.New64a()
	buf := make([]byte, len(g.cells))
	for i, c := range g.cells {
		buf[i] = byte(c)
	}
	h.Write(buf)
	return h.Sum64()
}

func (g *Grid) String() string {
	return Render(g)
}
