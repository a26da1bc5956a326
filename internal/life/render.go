package life

import "strings"

// Glyphs holds the characters used for each cell state.
type Glyphs struct {
	Alive rune
	Dead  rune
}

var DefaultGlyphs = Glyphs{Alive: '◼', Dead: '◻'}

// Render draws the grid with DefaultGlyphs, one newline-terminated line per row.
func Render(g *Grid) string {
	return RenderWith(g, DefaultGlyphs)
}

func RenderWith(g *Grid, glyphs Glyphs) string {
	var sb strings.Builder
	sb.Grow(g.height * (g.width*4 + 1))
	for row := 0; row < g.height; row++ {
		for col := 0; col < g.width; col++ {
			if g.At(row, col) == Alive {
				sb.WriteRune(glyphs.Alive)
			} else {
				sb.WriteRune(glyphs.Dead)
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
