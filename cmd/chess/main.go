package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/kiryu-dev/chess/internal/adapters/script"
	"github.com/kiryu-dev/chess/internal/domain"
	"github.com/kiryu-dev/chess/internal/usecase/chess"
	"github.com/kiryu-dev/chess/pkg/utils"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

func main() {
	scriptPath := flag.String("script", "", "path to a move script to replay before the prompt")
	jsonLog := flag.Bool("json", false, "emit a json record per accepted move instead of the board")
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
	c := newCli(chess.NewGame(logger), *jsonLog)
	if *scriptPath != "" {
		if err := c.replay(*scriptPath); err != nil {
			log.Fatal(err)
		}
	}
	if err := c.handleActions(); err != nil {
		log.Fatal(err)
	}
}

type cli struct {
	game    *chess.Game
	scanner *bufio.Scanner
	jsonLog bool
}

func newCli(game *chess.Game, jsonLog bool) *cli {
	return &cli{
		game:    game,
		scanner: bufio.NewScanner(os.Stdin),
		jsonLog: jsonLog,
	}
}

func (c *cli) replay(path string) error {
	moves, err := script.Load(path)
	if err != nil {
		return errors.WithMessage(err, "load script")
	}
	for _, move := range moves {
		outcome, err := c.game.Play(move.From, move.To)
		if err != nil {
			return errors.WithMessagef(err, "scripted move %s%s", move.From, move.To)
		}
		c.emit(move, outcome)
	}
	return nil
}

func (c *cli) handleActions() error {
	c.printBoard()
	c.printStatus()
	if c.game.LastOutcome() == domain.CheckMate {
		return nil
	}
	for {
		c.printPrompt()
		if !c.scanner.Scan() {
			return c.scanner.Err()
		}
		input := strings.TrimSpace(c.scanner.Text())
		switch {
		case input == "":
			continue
		case input == "quit" || input == "exit":
			return nil
		case input == "undo":
			if !c.game.Undo() {
				fmt.Println("Нечего отменять")
				continue
			}
			c.printBoard()
		case strings.HasPrefix(input, "moves"):
			c.printMoves(strings.TrimSpace(strings.TrimPrefix(input, "moves")))
		default:
			done, err := c.playMove(input)
			if err != nil {
				fmt.Println("Недопустимый ход: " + err.Error())
				continue
			}
			if done {
				return nil
			}
		}
	}
}

func (c *cli) playMove(input string) (bool, error) {
	move, err := script.ParseMove(input)
	if err != nil {
		return false, err
	}
	outcome, err := c.game.Play(move.From, move.To)
	if err != nil {
		return false, err
	}
	c.emit(move, outcome)
	c.printBoard()
	switch outcome {
	case domain.Check:
		fmt.Println("Шах!")
	case domain.CheckMate:
		if by, ok := c.game.PreviousTurn(); ok {
			fmt.Printf("Мат! Победа %s.\n", colorName(by))
		}
		return true, nil
	}
	return false, nil
}

func (c *cli) printMoves(raw string) {
	from, ok := domain.ParseSquare(raw)
	if !ok {
		fmt.Println("Не понял клетку: " + raw)
		return
	}
	targets := chess.LegalTargets(c.game.Board(), from, c.game.Turn())
	if len(targets) == 0 {
		fmt.Println("Ходов нет")
		return
	}
	parts := make([]string, 0, len(targets))
	for _, target := range targets {
		parts = append(parts, target.String())
	}
	fmt.Println(strings.Join(parts, " "))
}

func (c *cli) printPrompt() {
	if c.jsonLog {
		return
	}
	fmt.Printf("Ход %s: ", colorName(c.game.Turn()))
}

func (c *cli) printStatus() {
	if c.jsonLog {
		return
	}
	switch c.game.LastOutcome() {
	case domain.Check:
		fmt.Println("Шах!")
	case domain.CheckMate:
		if by, ok := c.game.PreviousTurn(); ok {
			fmt.Printf("Мат! Победа %s.\n", colorName(by))
		}
	}
}

func (c *cli) printBoard() {
	if c.jsonLog {
		return
	}
	fmt.Printf("\033[H\033[J")
	board := c.game.Board()
	fmt.Println("  a b c d e f g h")
	for rank := 0; rank < 8; rank++ {
		fmt.Printf("%d ", 8-rank)
		for file := 0; file < 8; file++ {
			fmt.Printf("%c ", glyph(board[rank][file]))
		}
		fmt.Printf("%d\n", 8-rank)
	}
	fmt.Println("  a b c d e f g h")
}

type moveRecord struct {
	Ply     int    `json:"ply"`
	By      string `json:"by"`
	From    string `json:"from"`
	To      string `json:"to"`
	Outcome string `json:"outcome"`
}

func (c *cli) emit(move domain.Move, outcome domain.Outcome) {
	if !c.jsonLog {
		return
	}
	by, _ := c.game.PreviousTurn()
	record := moveRecord{
		Ply:     c.game.Plies(),
		By:      by.String(),
		From:    move.From.String(),
		To:      move.To.String(),
		Outcome: outcome.String(),
	}
	if err := utils.EncodeJson(os.Stdout, record); err != nil {
		log.Println(err)
	}
}

func colorName(c domain.Color) string {
	if c == domain.White {
		return "белых"
	}
	return "чёрных"
}

var glyphs = map[domain.Cell]rune{
	{Color: domain.White, Piece: domain.King}:   '♔',
	{Color: domain.White, Piece: domain.Queen}:  '♕',
	{Color: domain.White, Piece: domain.Rook}:   '♖',
	{Color: domain.White, Piece: domain.Bishop}: '♗',
	{Color: domain.White, Piece: domain.Knight}: '♘',
	{Color: domain.White, Piece: domain.Pawn}:   '♙',
	{Color: domain.Black, Piece: domain.King}:   '♚',
	{Color: domain.Black, Piece: domain.Queen}:  '♛',
	{Color: domain.Black, Piece: domain.Rook}:   '♜',
	{Color: domain.Black, Piece: domain.Bishop}: '♝',
	{Color: domain.Black, Piece: domain.Knight}: '♞',
	{Color: domain.Black, Piece: domain.Pawn}:   '♟',
}

func glyph(cell domain.Cell) rune {
	if cell.Empty() {
		return '·'
	}
	return glyphs[cell]
}
