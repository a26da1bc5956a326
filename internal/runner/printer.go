package runner

import (
	"fmt"
	"io"

	"github.com/san-kum/torus/internal/life"
)

// Printer writes a "Generation N" header followed by the rendered grid and
// a blank line.
type Printer struct {
	w      io.Writer
	glyphs life.Glyphs
}

func NewPrinter(w io.Writer, glyphs life.Glyphs) *Printer {
	return &Printer{w: w, glyphs: glyphs}
}

func (p *Printer) OnGeneration(gen int, g *life.Grid) error {
	_, err := fmt.Fprintf(p.w, "Generation %d\n%s\n", gen, life.RenderWith(g, p.glyphs))
	return err
}
