package runner

import (
	"slices"

	"github.com/san-kum/torus/internal/life"
)

// maxTrackedCells bounds the cells kept for cycle detection on long runs.
const maxTrackedCells = 1 << 24

type trackedState struct {
	gen   int
	cells []life.Cell
}

// history remembers past generations by fingerprint. A fingerprint hit only
// counts when the stored cells are equal, so hash collisions never report a
// cycle.
type history struct {
	fingerprint func(*life.Grid) uint64
	seen        map[uint64][]trackedState
	size, limit int
}

func newHistory(g *life.Grid, fingerprint func(*life.Grid) uint64) *history {
	limit := maxTrackedCells / (g.Height() * g.Width())
	if limit < 1 {
		limit = 1
	}
	return &history{
		fingerprint: fingerprint,
		seen:        make(map[uint64][]trackedState),
		limit:       limit,
	}
}

// visit returns the earlier generation equal to g, or records g as gen.
func (h *history) visit(gen int, g *life.Grid) (int, bool) {
	fp := h.fingerprint(g)
	cells := g.Cells()
	for _, s := range h.seen[fp] {
		if slices.Equal(s.cells, cells) {
			return s.gen, true
		}
	}
	if h.size < h.limit {
		h.seen[fp] = append(h.seen[fp], trackedState{gen: gen, cells: cells})
		h.size++
	}
	return 0, false
}
