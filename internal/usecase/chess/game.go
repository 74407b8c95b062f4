package chess

import (
	"github.com/google/uuid"
	"github.com/kiryu-dev/chess/internal/domain"
	"go.uber.org/zap"
)

/* Game keeps the full move history, one board per accepted move, so undo is
a pop and the current position is the last entry */

type Game struct {
	uuid     string
	boards   []domain.Board
	movers   []domain.Color
	outcomes []domain.Outcome
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

func (g *Game) Play(from domain.Square, to domain.Square) (domain.Outcome, error) {
	by := g.Turn()
	board, err := Move(g.Board(), from, to, by)
	if err != nil {
		g.logger.Debug("move rejected",
			zap.String("game uuid", g.uuid),
			zap.Stringer("by", by),
			zap.Stringer("from", from),
			zap.Stringer("to", to),
			zap.Error(err))
		return g.LastOutcome(), err
	}
	outcome := Classify(by.Opposite(), board)
	g.boards = append(g.boards, board)
	g.movers = append(g.movers, by)
	g.outcomes = append(g.outcomes, outcome)
	g.logger.Debug("move accepted",
		zap.String("game uuid", g.uuid),
		zap.Stringer("by", by),
		zap.Stringer("from", from),
		zap.Stringer("to", to),
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
	g.logger.Debug("move undone", zap.String("game uuid", g.uuid), zap.Int("plies", n))
	return true
}

func (g *Game) Turn() domain.Color {
	if len(g.movers) == 0 {
		return domain.White
	}
	return g.movers[len(g.movers)-1].Opposite()
}

func (g *Game) PreviousTurn() (domain.Color, bool) {
	if len(g.movers) == 0 {
		return domain.White, false
	}
	return g.movers[len(g.movers)-1], true
}

func (g *Game) LastOutcome() domain.Outcome {
	if len(g.outcomes) == 0 {
		return domain.NextPlayer
	}
	return g.outcomes[len(g.outcomes)-1]
}

func (g *Game) Board() domain.Board {
	if len(g.boards) == 0 {
		return domain.StartingBoard()
	}
	return g.boards[len(g.boards)-1]
}

func (g *Game) Plies() int {
	return len(g.boards)
}

func (g *Game) Uuid() string {
	return g.uuid
}
