package chess

import (
	"github.com/kiryu-dev/chess/internal/domain"
)

func LegalMoves(b domain.Board, by domain.Color) []domain.Move {
	var moves []domain.Move
	for rank := 0; rank < 8; rank++ {
		for file := 0; file < 8; file++ {
			from := domain.Square{Rank: rank, File: file}
			if cell := b.At(from); cell.Empty() || cell.Color != by {
				continue
			}
			for _, to := range LegalTargets(b, from, by) {
				moves = append(moves, domain.Move{From: from, To: to})
			}
		}
	}
	return moves
}

func LegalTargets(b domain.Board, from domain.Square, by domain.Color) []domain.Square {
	var targets []domain.Square
	for rank := 0; rank < 8; rank++ {
		for file := 0; file < 8; file++ {
			to := domain.Square{Rank: rank, File: file}
			if _, err := Move(b, from, to, by); err == nil {
				targets = append(targets, to)
			}
		}
	}
	return targets
}
