package board

import "iter"

// neighborDeltas lists the 8 square neighbor offsets. The order is
// fixed and part of the Neighbors contract.
var neighborDeltas = [8]Coord{
	{-1, -1}, {0, -1}, {1, -1},
	{-1, 0}, {1, 0},
	{-1, 1}, {0, 1}, {1, 1},
}

// TileView is a cheap cursor over one tile of a TileMap. Views are
// plain values whose slice header aliases the map's backing buffer, so
// any number of them may coexist, each reading any tile and writing
// its own. A view must not outlive the map it came from.
type TileView struct {
	coord  Coord
	dim    Coord
	nMines int
	tiles  []int8
}

func (v TileView) index() int { return v.coord.Y*v.dim.X + v.coord.X }

// State reads the tile under the cursor.
func (v TileView) State() TileState { return TileState(v.tiles[v.index()]) }

// SetState writes the tile under the cursor. Mines are stored as the
// sentinel whatever the concrete negative value; clear counts must
// come from Clear, which bounds them.
func (v TileView) SetState(s TileState) {
	if s.IsMine() {
		s = Mine
	}
	v.tiles[v.index()] = int8(s)
}

// IsMine reports whether the tile under the cursor holds a mine.
func (v TileView) IsMine() bool { return v.State().IsMine() }

// Coord returns the cursor position.
func (v TileView) Coord() Coord { return v.coord }

// Dim returns the dimensions of the underlying board.
func (v TileView) Dim() Coord { return v.dim }

// NumMines returns the mine count of the underlying board, copied at
// view creation so the view answers on its own.
func (v TileView) NumMines() int { return v.nMines }

// WithCoord returns a cursor over the same buffer at c. It panics when
// c is out of bounds.
func (v TileView) WithCoord(c Coord) TileView {
	assertInBounds(c, v.dim)
	v.coord = c
	return v
}

// TryWithCoord returns a cursor over the same buffer at c, or ok=false
// when c is out of bounds.
func (v TileView) TryWithCoord(c Coord) (TileView, bool) {
	if !inBounds(c, v.dim) {
		return TileView{}, false
	}
	v.coord = c
	return v, true
}

// Step returns a cursor moved by delta, or ok=false when the move
// leaves the board.
func (v TileView) Step(delta Coord) (TileView, bool) {
	return v.TryWithCoord(v.coord.Add(delta))
}

// Neighbors enumerates views over the up-to-8 adjacent tiles in a
// fixed order, skipping offsets that fall outside the board. There is
// no wraparound: non-corner edge tiles yield 5 neighbors, corners 3.
func (v TileView) Neighbors() iter.Seq[TileView] {
	return func(yield func(TileView) bool) {
		for _, delta := range neighborDeltas {
			neighbor, ok := v.Step(delta)
			if !ok {
				continue
			}
			if !yield(neighbor) {
				return
			}
		}
	}
}
