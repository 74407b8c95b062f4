package chess

import (
	"github.com/kiryu-dev/chess/internal/domain"
)

type moveRange uint8

const (
	fixedRange = moveRange(iota)
	variableRange
)

var (
	straightDirs = []domain.Vector{
		{Rank: 1, File: 0}, {Rank: -1, File: 0}, {Rank: 0, File: 1}, {Rank: 0, File: -1},
	}
	diagonalDirs = []domain.Vector{
		{Rank: 1, File: 1}, {Rank: 1, File: -1}, {Rank: -1, File: 1}, {Rank: -1, File: -1},
	}
	allDirs = []domain.Vector{
		{Rank: 1, File: 0}, {Rank: -1, File: 0}, {Rank: 0, File: 1}, {Rank: 0, File: -1},
		{Rank: 1, File: 1}, {Rank: 1, File: -1}, {Rank: -1, File: 1}, {Rank: -1, File: -1},
	}
	knightJumps = []domain.Vector{
		{Rank: 2, File: 1}, {Rank: 2, File: -1}, {Rank: -2, File: 1}, {Rank: -2, File: -1},
		{Rank: 1, File: 2}, {Rank: 1, File: -2}, {Rank: -1, File: 2}, {Rank: -1, File: -2},
	}
	pawnAdvances = []domain.Vector{
		{Rank: 1, File: 0}, {Rank: 2, File: 0},
	}
	pawnCaptures = []domain.Vector{
		{Rank: 1, File: -1}, {Rank: 1, File: 1},
	}
)

type traits struct {
	rng     moveRange
	vectors []domain.Vector
}

/* pawns are classed as fixed so the sliding threat scan never matches them;
their moves are validated separately anyway */

var catalog = map[domain.Piece]traits{
	domain.King:   {rng: fixedRange, vectors: allDirs},
	domain.Queen:  {rng: variableRange, vectors: allDirs},
	domain.Rook:   {rng: variableRange, vectors: straightDirs},
	domain.Bishop: {rng: variableRange, vectors: diagonalDirs},
	domain.Knight: {rng: fixedRange, vectors: knightJumps},
	domain.Pawn:   {rng: fixedRange, vectors: pawnAdvances},
}

func (t traits) contains(v domain.Vector) bool {
	for _, w := range t.vectors {
		if w == v {
			return true
		}
	}
	return false
}
