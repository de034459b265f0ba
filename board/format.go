package board

import (
	"fmt"
	"strings"
)

// String renders the grid for debugging: one line per board row, a
// blank for Clear(0), the digit for other counts, '*' for mines. The
// output is one-way and not meant to be parsed back.
func (m *TileMap) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "TileMap %dx%d, %d mines\n", m.dim.X, m.dim.Y, m.nMines)
	for y := 0; y < m.dim.Y; y++ {
		b.WriteByte('|')
		for _, tile := range m.tiles[y*m.dim.X : (y+1)*m.dim.X] {
			b.WriteByte(' ')
			b.WriteByte(tileGlyph(tile))
		}
		b.WriteString(" |\n")
	}
	return b.String()
}

func tileGlyph(tile int8) byte {
	switch {
	case tile < 0:
		return '*'
	case tile == 0:
		return ' '
	default:
		return '0' + byte(tile)
	}
}
