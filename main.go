package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/dkovalev/minesweeper/board"
	"github.com/dkovalev/minesweeper/game"
)

func difficultyFor(name string) (board.Difficulty, bool) {
	switch name {
	case "easy", "1":
		return board.Easy, true
	case "medium", "2":
		return board.Medium, true
	case "expert", "3":
		return board.Expert, true
	default:
		return board.Difficulty{}, false
	}
}

func main() {
	log := logrus.New()
	if len(os.Args) > 1 && os.Args[1] == "-v" {
		log.SetLevel(logrus.DebugLevel)
	}

	var difficulty board.Difficulty
	for {
		fmt.Print("Choose difficulty (easy/medium/expert) or 'q' to quit: ")

		var input string
		if _, err := fmt.Scan(&input); err != nil {
			fmt.Println("Error reading input:", err)
			continue
		}

		input = strings.ToLower(input)
		if input == "q" {
			fmt.Println("Quitting...")
			return
		}

		if d, ok := difficultyFor(input); ok {
			difficulty = d
			break
		}

		fmt.Println("Invalid input. Please enter easy, medium, expert or 'q' to quit.")
	}

	options := board.DefaultOptions()
	options.Difficulty = difficulty

	service := game.NewBoardService(log)
	controller := game.NewGameController(service)
	if err := controller.StartGame(options); err != nil {
		log.WithError(err).Fatal("failed to start the game")
	}
}
