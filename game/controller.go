package game

import "github.com/dkovalev/minesweeper/board"

// GameController ties board setup and the display loop together.
type GameController struct {
	service *BoardService
}

func NewGameController(service *BoardService) *GameController {
	return &GameController{service: service}
}

// StartGame generates a board from options and blocks until the
// viewer exits.
func (c *GameController) StartGame(options board.BoardOptions) error {
	if err := c.service.Init(options); err != nil {
		return err
	}
	return c.service.Run()
}

// TerminateGame stops a running viewer.
func (c *GameController) TerminateGame() {
	c.service.app.Stop()
}
