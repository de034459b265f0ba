package board

import "fmt"

// Coord addresses one tile on the board: X is the column, Y is the row.
type Coord struct {
	X, Y int
}

// Add returns the coordinate offset by d.
func (c Coord) Add(d Coord) Coord {
	return Coord{c.X + d.X, c.Y + d.Y}
}

func (c Coord) String() string {
	return fmt.Sprintf("[%d, %d]", c.X, c.Y)
}

// inBounds reports whether c lies in [0, dim.X) x [0, dim.Y).
func inBounds(c, dim Coord) bool {
	return c.X >= 0 && c.X < dim.X && c.Y >= 0 && c.Y < dim.Y
}

func assertInBounds(c, dim Coord) {
	if !inBounds(c, dim) {
		panic(fmt.Sprintf("board: coordinate %v must be bound between [0, 0] and %v", c, dim))
	}
}
