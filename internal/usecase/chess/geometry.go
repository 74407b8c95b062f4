package chess

import (
	"github.com/kiryu-dev/chess/internal/domain"
)

/* one vector table serves both colors: displacements are written in the
mover's orientation, so white's coordinates are negated */

func moveVector(from domain.Square, to domain.Square, by domain.Color) domain.Vector {
	if by == domain.Black {
		return domain.Vector{Rank: to.Rank - from.Rank, File: to.File - from.File}
	}
	return domain.Vector{Rank: from.Rank - to.Rank, File: from.File - to.File}
}

func step(from domain.Square, by domain.Color, v domain.Vector) domain.Square {
	if by == domain.Black {
		return domain.Square{Rank: from.Rank + v.Rank, File: from.File + v.File}
	}
	return domain.Square{Rank: from.Rank - v.Rank, File: from.File - v.File}
}

/* callers align from and to first */

func pathBlocked(b domain.Board, from domain.Square, to domain.Square) bool {
	u := domain.Vector{Rank: to.Rank - from.Rank, File: to.File - from.File}.Unit()
	sq := domain.Square{Rank: from.Rank + u.Rank, File: from.File + u.File}
	for sq != to {
		if !b.At(sq).Empty() {
			return true
		}
		sq = domain.Square{Rank: sq.Rank + u.Rank, File: sq.File + u.File}
	}
	return false
}

func rayBlocker(b domain.Board, from domain.Square, by domain.Color, v domain.Vector) (domain.Square, domain.Cell, bool) {
	sq := from
	for i := 0; i < 7; i++ {
		sq = step(sq, by, v)
		if !sq.Valid() {
			break
		}
		if cell := b.At(sq); !cell.Empty() {
			return sq, cell, true
		}
	}
	return domain.Square{}, domain.Cell{}, false
}
