package board

import (
	"errors"
	"fmt"
	"iter"
	"math"
	"math/rand/v2"
)

var (
	// ErrInvalidDimensions reports a board whose size is negative or
	// does not fit the platform's index type.
	ErrInvalidDimensions = errors.New("invalid board dimensions")

	// ErrTooManyMines reports a mine count outside [0, width*height].
	ErrTooManyMines = errors.New("mine count exceeds board area")
)

// TileMap is the single source of truth for a minesweeper grid. Tiles
// are stored row-major in one flat buffer: each value is either the
// mine sentinel or the number of adjacent mines.
type TileMap struct {
	nMines int
	dim    Coord
	tiles  []int8
}

// Empty returns a width x height board with every tile Clear(0).
// Degenerate zero-sized boards are legal and contain no tiles.
func Empty(width, height int) (*TileMap, error) {
	if width < 0 || height < 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}
	if height > 0 && width > math.MaxInt/height {
		return nil, fmt.Errorf("%w: %dx%d overflows", ErrInvalidDimensions, width, height)
	}
	return &TileMap{
		dim:   Coord{width, height},
		tiles: make([]int8, width*height),
	}, nil
}

// Random returns a board with exactly nMines mines placed uniformly at
// random, every clear tile holding its adjacent mine count.
//
// Placement marks the first nMines slots and shuffles the whole
// buffer, which guarantees the exact requested count at any mine
// density. The derivation pass then writes only clear values, so it
// never perturbs the mine reads it depends on, whatever the visit
// order.
func Random(width, height, nMines int) (*TileMap, error) {
	m, err := Empty(width, height)
	if err != nil {
		return nil, err
	}
	if nMines < 0 || nMines > len(m.tiles) {
		return nil, fmt.Errorf("%w: %d mines on a %dx%d board", ErrTooManyMines, nMines, width, height)
	}

	for i := 0; i < nMines; i++ {
		m.tiles[i] = int8(Mine)
	}
	rand.Shuffle(len(m.tiles), func(i, j int) {
		m.tiles[i], m.tiles[j] = m.tiles[j], m.tiles[i]
	})
	m.nMines = nMines

	for tile := range m.AllTiles() {
		if tile.IsMine() {
			continue
		}
		adjacent := 0
		for neighbor := range tile.Neighbors() {
			if neighbor.IsMine() {
				adjacent++
			}
		}
		tile.SetState(Clear(adjacent))
	}

	return m, nil
}

// FromOptions builds a random board from a difficulty configuration.
func FromOptions(options BoardOptions) (*TileMap, error) {
	d := options.Difficulty
	if err := d.Validate(); err != nil {
		return nil, err
	}
	return Random(d.Width, d.Height, d.NumMines)
}

// Width returns the number of columns.
func (m *TileMap) Width() int { return m.dim.X }

// Height returns the number of rows.
func (m *TileMap) Height() int { return m.dim.Y }

// Dim returns the board dimensions as (width, height).
func (m *TileMap) Dim() Coord { return m.dim }

// NumMines returns the mine count the board was generated with. It is
// not re-derived from storage and may drift if callers rewrite tiles
// through views.
func (m *TileMap) NumMines() int { return m.nMines }

// GetTile returns a view over the tile at c, or ok=false when c is
// out of bounds.
func (m *TileMap) GetTile(c Coord) (TileView, bool) {
	if !inBounds(c, m.dim) {
		return TileView{}, false
	}
	return TileView{coord: c, dim: m.dim, nMines: m.nMines, tiles: m.tiles}, true
}

// Tile returns a view over the tile at c. It panics when c is out of
// bounds; call sites must have validated the coordinate already.
func (m *TileMap) Tile(c Coord) TileView {
	assertInBounds(c, m.dim)
	v, _ := m.GetTile(c)
	return v
}

// GetTiles maps an arbitrary coordinate sequence to per-coordinate
// views, each independently bounds-checked. The input may be
// out-of-order or infinite; nothing is materialized.
func (m *TileMap) GetTiles(coords iter.Seq[Coord]) iter.Seq2[TileView, bool] {
	return func(yield func(TileView, bool) bool) {
		for c := range coords {
			v, ok := m.GetTile(c)
			if !yield(v, ok) {
				return
			}
		}
	}
}

// Coords enumerates every board coordinate in row-major order. The
// sequence is finite and can be ranged over any number of times.
func (m *TileMap) Coords() iter.Seq[Coord] {
	return func(yield func(Coord) bool) {
		for y := 0; y < m.dim.Y; y++ {
			for x := 0; x < m.dim.X; x++ {
				if !yield(Coord{x, y}) {
					return
				}
			}
		}
	}
}

// AllTiles enumerates a view over every tile in row-major order.
func (m *TileMap) AllTiles() iter.Seq[TileView] {
	return func(yield func(TileView) bool) {
		for v := range m.GetTiles(m.Coords()) {
			if !yield(v) {
				return
			}
		}
	}
}
