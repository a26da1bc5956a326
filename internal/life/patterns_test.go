package life_test

import (
	"strings"

	"github.com/san-kum/torus/internal/life"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func gridFrom(rows ...string) *life.Grid {
	height, width := len(rows), len(rows[0])
	cells := make([]life.Cell, 0, height*width)
	for _, row := range rows {
		for _, ch := range row {
			if ch == '#' {
				cells = append(cells, life.Alive)
			} else {
				cells = append(cells, life.Dead)
			}
		}
	}
	g, err := life.FromCells(height, width, cells)
	Expect(err).NotTo(HaveOccurred())
	return g
}

func ascii(g *life.Grid) []string {
	out := life.RenderWith(g, life.Glyphs{Alive: '#', Dead: '.'})
	return strings.Split(strings.TrimSuffix(out, "\n"), "\n")
}

var _ = Describe("Advance", func() {
	It("keeps the cell count invariant", func() {
		g := gridFrom(
			"#..#..",
			".##...",
			"...#.#",
			"#....#",
		)
		for i := 0; i < 20; i++ {
			life.Advance(g)
			Expect(g.Cells()).To(HaveLen(24))
		}
	})

	It("moves a glider one cell diagonally every four generations", func() {
		g := gridFrom(
			".#......",
			"..#.....",
			"###.....",
			"........",
			"........",
			"........",
			"........",
			"........",
		)
		for i := 0; i < 4; i++ {
			life.Advance(g)
		}
		Expect(ascii(g)).To(Equal([]string{
			"........",
			"..#.....",
			"...#....",
			".###....",
			"........",
			"........",
			"........",
			"........",
		}))
	})

	It("carries a glider across the seam back to where it started", func() {
		start := []string{
			".#......",
			"..#.....",
			"###.....",
			"........",
			"........",
			"........",
			"........",
			"........",
		}
		g := gridFrom(start...)
		for i := 0; i < 32; i++ {
			life.Advance(g)
			Expect(g.Population()).To(Equal(5))
		}
		Expect(ascii(g)).To(Equal(start))
	})

	It("kills a fully populated board", func() {
		g := gridFrom("####", "####", "####", "####")
		life.Advance(g)
		Expect(g.Population()).To(BeZero())
	})
})

var _ = Describe("Render", func() {
	It("matches the grid's Stringer", func() {
		g := gridFrom("#.", ".#")
		Expect(g.String()).To(Equal(life.Render(g)))
		Expect(life.Render(g)).To(Equal("◼◻\n◻◼\n"))
	})
})
