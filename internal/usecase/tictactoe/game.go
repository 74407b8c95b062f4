package tictactoe

import (
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

type Cell byte

const (
	None = Cell(' ')
	X    = Cell('X')
	O    = Cell('O')
)

type Board [9]Cell

func EmptyBoard() Board {
	var board Board
	for i := range board {
		board[i] = None
	}
	return board
}

type Outcome uint8

const (
	NextPlayer = Outcome(iota)
	Won
	Stuck
)

func (o Outcome) String() string {
	switch o {
	case Won:
		return "won"
	case Stuck:
		return "draw"
	default:
		return "ongoing"
	}
}

const maxRounds = 9

var winConditions = [8][3]uint8{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

func isWinnable(board Board, cellType Cell) bool {
	for _, condition := range winConditions {
		isWinnable := true
		for _, v := range condition {
			if board[v] != cellType {
				isWinnable = false
				break
			}
		}
		if isWinnable {
			return true
		}
	}
	return false
}

/* Game mirrors the chess history: one grid per accepted move, undo pops.
Unlike chess a decided grid is final and rejects further play */

type Game struct {
	uuid     string
	boards   []Board
	movers   []Cell
	outcomes []Outcome
	logger   *zap.Logger
}

func NewGame(logger *zap.Logger) *Game {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Game{
		uuid:   uuid.NewString(),
		logger: logger,
	}
}

func (g *Game) Play(pos int) (Outcome, error) {
	if g.LastOutcome() != NextPlayer {
		return g.LastOutcome(), ErrGameOver
	}
	if pos < 0 || pos > 8 {
		return g.LastOutcome(), errors.WithMessagef(ErrInvalidLocation, "position '%d'", pos)
	}
	board := g.Board()
	if board[pos] != None {
		return g.LastOutcome(), errors.WithMessagef(ErrAlreadyOccupied, "cell in position '%d'", pos)
	}
	by := g.Turn()
	board[pos] = by
	outcome := NextPlayer
	switch {
	case isWinnable(board, by):
		outcome = Won
	case len(g.boards)+1 == maxRounds:
		outcome = Stuck
	}
	g.boards = append(g.boards, board)
	g.movers = append(g.movers, by)
	g.outcomes = append(g.outcomes, outcome)
	g.logger.Debug("move accepted",
		zap.String("game uuid", g.uuid),
		zap.String("by", string(by)),
		zap.Int("position", pos),
		zap.Stringer("outcome", outcome))
	return outcome, nil
}

func (g *Game) Undo() bool {
	if len(g.boards) == 0 {
		return false
	}
	n := len(g.boards) - 1
	g.boards = g.boards[:n]
	g.movers = g.movers[:n]
	g.outcomes = g.outcomes[:n]
	return true
}

func (g *Game) Turn() Cell {
	if len(g.movers) == 0 {
		return X
	}
	if g.movers[len(g.movers)-1] == X {
		return O
	}
	return X
}

func (g *Game) PreviousTurn() (Cell, bool) {
	if len(g.movers) == 0 {
		return None, false
	}
	return g.movers[len(g.movers)-1], true
}

func (g *Game) LastOutcome() Outcome {
	if len(g.outcomes) == 0 {
		return NextPlayer
	}
	return g.outcomes[len(g.outcomes)-1]
}

func (g *Game) Winner() (Cell, bool) {
	if g.LastOutcome() != Won {
		return None, false
	}
	return g.movers[len(g.movers)-1], true
}

func (g *Game) Board() Board {
	if len(g.boards) == 0 {
		return EmptyBoard()
	}
	return g.boards[len(g.boards)-1]
}

func (g *Game) Plies() int {
	return len(g.boards)
}

func (g *Game) Uuid() string {
	return g.uuid
}
