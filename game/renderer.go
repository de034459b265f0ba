package game

import (
	"strconv"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/dkovalev/minesweeper/board"
)

// Renderer draws a board into a tview table, one cell per tile.
type Renderer struct {
	boardTable *tview.Table
}

func NewRenderer() *Renderer {
	return &Renderer{
		boardTable: tview.NewTable(),
	}
}

// DrawBoard renders every tile of the map.
func (r *Renderer) DrawBoard(m *board.TileMap) {
	for tile := range m.AllTiles() {
		r.RenderTile(tile)
	}

	r.boardTable.SetFixed(m.Height(), m.Width())
}

// RenderTile renders one tile at its board coordinate.
func (r *Renderer) RenderTile(tile board.TileView) {
	text, color := tileAppearance(tile.State())
	coord := tile.Coord()
	r.boardTable.SetCell(coord.Y, coord.X, tview.NewTableCell(text).
		SetTextColor(color).
		SetAlign(tview.AlignCenter))
}

// tileAppearance maps a tile state to display text and color: blank
// for Clear(0), low counts in cool colors, dangerous counts and mines
// in red.
func tileAppearance(s board.TileState) (string, tcell.Color) {
	if s.IsMine() {
		return "*", tcell.ColorRed
	}

	switch n := s.AdjacentMines(); n {
	case 0:
		return " ", tcell.ColorDefault
	case 1:
		return "1", tcell.ColorAqua
	case 2:
		return "2", tcell.ColorGreen
	case 3:
		return "3", tcell.ColorYellow
	default:
		return strconv.Itoa(n), tcell.ColorRed
	}
}
