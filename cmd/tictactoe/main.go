package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/kiryu-dev/chess/internal/usecase/tictactoe"
	"go.uber.org/zap"
)

func main() {
	debug := flag.Bool("debug", false, "log engine decisions")
	flag.Parse()
	logger := zap.NewNop()
	if *debug {
		var err error
		logger, err = zap.NewDevelopment()
		if err != nil {
			log.Fatal(err)
		}
	}
	defer func() {
		_ = logger.Sync()
	}()
	c := &cli{
		game:    tictactoe.NewGame(logger),
		scanner: bufio.NewScanner(os.Stdin),
	}
	if err := c.handleActions(); err != nil {
		log.Fatal(err)
	}
}

type cli struct {
	game    *tictactoe.Game
	scanner *bufio.Scanner
}

func (c *cli) handleActions() error {
	c.printBoard()
	for {
		fmt.Printf("Ход %c: ", c.game.Turn())
		if !c.scanner.Scan() {
			return c.scanner.Err()
		}
		input := strings.TrimSpace(c.scanner.Text())
		switch input {
		case "":
			continue
		case "quit", "exit":
			return nil
		case "undo":
			if !c.game.Undo() {
				fmt.Println("Нечего отменять")
				continue
			}
			c.printBoard()
			continue
		}
		pos, err := strconv.ParseUint(input, 10, 8)
		if err != nil || pos < 1 || pos > 9 {
			fmt.Print("\033[F\033[K")
			continue
		}
		outcome, err := c.game.Play(int(pos) - 1)
		if err != nil {
			fmt.Println("Недопустимый ход: " + err.Error())
			continue
		}
		c.printBoard()
		switch outcome {
		case tictactoe.Won:
			if winner, ok := c.game.Winner(); ok {
				fmt.Printf("Победа %c!\n", winner)
			}
			return nil
		case tictactoe.Stuck:
			fmt.Println("Ничья")
			return nil
		}
	}
}

func (c *cli) printBoard() {
	fmt.Printf("\033[H\033[J")
	for i, cell := range c.game.Board() {
		if (i+1)%3 == 0 {
			fmt.Printf("%c ", cell)
			if i < 6 {
				fmt.Printf("\n——|———|——\n")
			}
		} else {
			fmt.Printf("%c | ", cell)
		}
	}
	fmt.Println()
}
