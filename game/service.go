package game

import (
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
	"github.com/sirupsen/logrus"

	"github.com/dkovalev/minesweeper/board"
)

// BoardService generates a board from options and presents it in a
// terminal UI. It owns no game rules: revealing, flagging and win
// detection belong to a future event layer.
type BoardService struct {
	board    *board.TileMap
	renderer *Renderer
	app      *tview.Application
	log      *logrus.Logger
}

func NewBoardService(log *logrus.Logger) *BoardService {
	return &BoardService{
		renderer: NewRenderer(),
		app:      tview.NewApplication(),
		log:      log,
	}
}

// Init generates the board and prepares the view.
func (s *BoardService) Init(options board.BoardOptions) error {
	if options.SafeStart {
		s.log.Warn("safe start requested but not supported by board generation")
	}

	m, err := board.FromOptions(options)
	if err != nil {
		return err
	}
	s.board = m

	s.log.WithFields(logrus.Fields{
		"width":  m.Width(),
		"height": m.Height(),
		"mines":  m.NumMines(),
	}).Info("board generated")
	s.log.Debug("\n" + m.String())

	s.renderer.DrawBoard(m)
	return nil
}

// Board returns the generated map, nil before Init.
func (s *BoardService) Board() *board.TileMap {
	return s.board
}

// Run displays the board until the user quits with 'q' or Escape.
func (s *BoardService) Run() error {
	s.app.SetRoot(s.renderer.boardTable, true)
	s.app.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		if event.Key() == tcell.KeyEscape || event.Rune() == 'q' {
			s.app.Stop()
			return nil
		}
		return event
	})

	return s.app.Run()
}
