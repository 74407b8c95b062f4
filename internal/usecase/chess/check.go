package chess

import (
	"github.com/kiryu-dev/chess/internal/domain"
)

/* Threatened reports whether an enemy piece attacks the square: a knight
jump away, a pawn capture away, or first on a sliding line */

func Threatened(sq domain.Square, c domain.Color, b domain.Board) bool {
	enemy := c.Opposite()
	for _, v := range knightJumps {
		from := step(sq, c, v)
		if !from.Valid() {
			continue
		}
		if cell := b.At(from); cell.Color == enemy && cell.Piece == domain.Knight {
			return true
		}
	}
	for _, v := range pawnCaptures {
		from := step(sq, c, v)
		if !from.Valid() {
			continue
		}
		if cell := b.At(from); cell.Color == enemy && cell.Piece == domain.Pawn {
			return true
		}
	}
	for _, v := range allDirs {
		_, cell, ok := rayBlocker(b, sq, c, v)
		if !ok || cell.Color != enemy {
			continue
		}
		if t := catalog[cell.Piece]; t.rng == variableRange && t.contains(v) {
			return true
		}
	}
	return false
}

func Classify(c domain.Color, b domain.Board) domain.Outcome {
	king, ok := kingSquare(b, c)
	if !ok {
		/* the king has been captured, nothing left to defend */
		return domain.CheckMate
	}
	if !Threatened(king, c, b) {
		return domain.NextPlayer
	}
	for _, v := range allDirs {
		escape := step(king, c, v)
		if escape.Valid() && b.At(escape).Empty() && !Threatened(escape, c, b) {
			return domain.Check
		}
	}
	return domain.CheckMate
}

func kingSquare(b domain.Board, c domain.Color) (domain.Square, bool) {
	for rank := 0; rank < 8; rank++ {
		for file := 0; file < 8; file++ {
			cell := b[rank][file]
			if cell.Piece == domain.King && cell.Color == c {
				return domain.Square{Rank: rank, File: file}, true
			}
		}
	}
	return domain.Square{}, false
}
