package board

import (
	"fmt"
	"math"
)

// Difficulty sets the board size and mine count.
type Difficulty struct {
	Width    int `json:"width"`
	Height   int `json:"height"`
	NumMines int `json:"mines"`
}

// Standard minesweeper difficulty presets.
var (
	Easy   = Difficulty{Width: 9, Height: 9, NumMines: 10}
	Medium = Difficulty{Width: 16, Height: 16, NumMines: 40}
	Expert = Difficulty{Width: 30, Height: 16, NumMines: 99}
)

// Validate checks that the grid is non-empty, fits the index type and
// can hold the mine count.
func (d Difficulty) Validate() error {
	if d.Width <= 0 || d.Height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, d.Width, d.Height)
	}
	if d.Width > math.MaxInt/d.Height {
		return fmt.Errorf("%w: %dx%d overflows", ErrInvalidDimensions, d.Width, d.Height)
	}
	if d.NumMines < 0 || d.NumMines > d.Width*d.Height {
		return fmt.Errorf("%w: %d mines on a %dx%d board", ErrTooManyMines, d.NumMines, d.Width, d.Height)
	}
	return nil
}

// TileSize determines how large each tile is drawn.
type TileSize interface {
	resolve(d Difficulty, windowW, windowH float64) float64
}

// FixedTileSize draws every tile at a constant size.
type FixedTileSize float64

func (s FixedTileSize) resolve(Difficulty, float64, float64) float64 {
	return float64(s)
}

// AdaptiveTileSize fits tiles to the window, clamped to [Min, Max].
type AdaptiveTileSize struct {
	Min, Max float64
}

func (s AdaptiveTileSize) resolve(d Difficulty, windowW, windowH float64) float64 {
	maxWidth := windowW / float64(d.Width)
	maxHeight := windowH / float64(d.Height)
	return min(max(min(maxWidth, maxHeight), s.Min), s.Max)
}

// BoardPosition determines where the board origin sits in the window.
type BoardPosition interface {
	origin(boardW, boardH float64) (x, y float64)
}

// CenteredPosition centers the board, shifted by an offset.
type CenteredPosition struct {
	OffsetX, OffsetY float64
}

func (p CenteredPosition) origin(boardW, boardH float64) (float64, float64) {
	return -boardW/2 + p.OffsetX, -boardH/2 + p.OffsetY
}

// CustomPosition pins the board origin to an absolute point.
type CustomPosition struct {
	X, Y float64
}

func (p CustomPosition) origin(float64, float64) (float64, float64) {
	return p.X, p.Y
}

// BoardOptions configures board generation and display.
type BoardOptions struct {
	Difficulty  Difficulty
	Position    BoardPosition
	TileSize    TileSize
	TilePadding float64

	// SafeStart asks generation to keep the first revealed tile clear.
	// The generator does not consult it yet; the field is carried so
	// presets round-trip.
	SafeStart bool
}

// DefaultOptions returns a medium, centered, window-adaptive setup.
func DefaultOptions() BoardOptions {
	return BoardOptions{
		Difficulty: Medium,
		Position:   CenteredPosition{},
		TileSize:   AdaptiveTileSize{Min: 10, Max: 50},
		SafeStart:  true,
	}
}

// DisplayParams is the resolved geometry for drawing a board.
type DisplayParams struct {
	BoardWidth  float64
	BoardHeight float64
	TileSize    float64
	OriginX     float64
	OriginY     float64
}

// DisplayParams resolves the tile size and board origin for a window
// of the given dimensions.
func (o BoardOptions) DisplayParams(windowW, windowH float64) DisplayParams {
	tileSize := o.TileSize.resolve(o.Difficulty, windowW, windowH)
	boardW := float64(o.Difficulty.Width) * tileSize
	boardH := float64(o.Difficulty.Height) * tileSize
	x, y := o.Position.origin(boardW, boardH)

	return DisplayParams{
		BoardWidth:  boardW,
		BoardHeight: boardH,
		TileSize:    tileSize,
		OriginX:     x,
		OriginY:     y,
	}
}
