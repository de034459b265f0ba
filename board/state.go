package board

import "fmt"

// TileState is the logical state of a single tile. Negative values are
// mines, non-negative values are clear tiles carrying the number of
// adjacent mines.
type TileState int8

// Mine marks a tile containing a mine.
const Mine TileState = -1

// maxAdjacent is the largest possible neighbor mine count.
const maxAdjacent = 8

// Clear returns the state of a clear tile with n adjacent mines.
// n must be in [0, 8]; anything else is a logic error and panics.
func Clear(n int) TileState {
	if n < 0 || n > maxAdjacent {
		panic(fmt.Sprintf("board: adjacent mine count %d out of range [0, %d]", n, maxAdjacent))
	}
	return TileState(n)
}

// IsMine reports whether the tile holds a mine.
func (s TileState) IsMine() bool { return s < 0 }

// AdjacentMines returns the number of neighboring mines for a clear
// tile. The result is meaningless for mines.
func (s TileState) AdjacentMines() int { return int(s) }

func (s TileState) String() string {
	if s.IsMine() {
		return "Mine"
	}
	return fmt.Sprintf("Clear(%d)", int(s))
}
