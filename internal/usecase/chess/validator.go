package chess

import (
	"github.com/kiryu-dev/chess/internal/domain"
)

/* Move validates a single move for the given color and returns the board it
leads to; a rejected move returns the input board untouched */

func Move(b domain.Board, from domain.Square, to domain.Square, by domain.Color) (domain.Board, error) {
	if !from.Valid() || !to.Valid() {
		return b, ErrInvalidLocation
	}
	mover := b.At(from)
	if mover.Empty() {
		return b, ErrNoPiece
	}
	if mover.Color != by {
		return b, ErrNoPlayerTurn
	}
	if target := b.At(to); !target.Empty() && target.Color == by {
		return b, ErrAlreadyOccupied
	}
	v := moveVector(from, to, by)
	if mover.Piece == domain.Pawn {
		return movePawn(b, from, to, by, v)
	}
	t, ok := catalog[mover.Piece]
	if !ok {
		return b, ErrNotImplemented
	}
	if t.rng == fixedRange {
		if !t.contains(v) {
			return b, ErrNoMove
		}
		return b.MovePiece(from, to, by, mover.Piece), nil
	}
	if !v.Aligned() || !t.contains(v.Unit()) {
		return b, ErrNoMove
	}
	if pathBlocked(b, from, to) {
		return b, ErrMoveBlocked
	}
	return b.MovePiece(from, to, by, mover.Piece), nil
}

func movePawn(b domain.Board, from domain.Square, to domain.Square, by domain.Color, v domain.Vector) (domain.Board, error) {
	switch v {
	case domain.Vector{Rank: 1, File: 0}:
		if !b.At(to).Empty() {
			return b, ErrMoveBlocked
		}
		piece := domain.Pawn
		if to.Rank == 0 || to.Rank == 7 {
			piece = domain.Queen
		}
		return b.MovePiece(from, to, by, piece), nil
	case domain.Vector{Rank: 2, File: 0}:
		if from.Rank != by.PawnRank() {
			return b, ErrNoPawnMove
		}
		if pathBlocked(b, from, to) {
			return b, ErrMoveBlocked
		}
		return b.MovePiece(from, to, by, domain.Pawn), nil
	case domain.Vector{Rank: 1, File: -1}, domain.Vector{Rank: 1, File: 1}:
		if b.At(to).Empty() {
			return b, ErrNoPawnMove
		}
		return b.MovePiece(from, to, by, domain.Pawn), nil
	default:
		return b, ErrNoMove
	}
}
