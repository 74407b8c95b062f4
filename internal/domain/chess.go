package domain

type Color uint8

const (
	White = Color(iota)
	Black
)

func (c Color) Opposite() Color {
	if c == White {
		return Black
	}
	return White
}

func (c Color) String() string {
	if c == White {
		return "white"
	}
	return "black"
}

/* rank 0 is black's back rank, rank 7 is white's */

func (c Color) HomeRank() int {
	if c == White {
		return 7
	}
	return 0
}

func (c Color) PawnRank() int {
	if c == White {
		return 6
	}
	return 1
}

type Piece uint8

const (
	NoPiece = Piece(iota)
	King
	Queen
	Rook
	Bishop
	Knight
	Pawn
)

func (p Piece) String() string {
	switch p {
	case King:
		return "king"
	case Queen:
		return "queen"
	case Rook:
		return "rook"
	case Bishop:
		return "bishop"
	case Knight:
		return "knight"
	case Pawn:
		return "pawn"
	default:
		return "none"
	}
}

func (p Piece) Code() string {
	switch p {
	case King:
		return "K"
	case Queen:
		return "Q"
	case Rook:
		return "R"
	case Bishop:
		return "B"
	case Knight:
		return "N"
	case Pawn:
		return "P"
	default:
		return ""
	}
}

type Square struct {
	Rank int
	File int
}

func (s Square) Valid() bool {
	return s.Rank >= 0 && s.Rank <= 7 && s.File >= 0 && s.File <= 7
}

func (s Square) String() string {
	if !s.Valid() {
		return "-"
	}
	return string([]byte{byte('a' + s.File), byte('8' - s.Rank)})
}

func ParseSquare(s string) (Square, bool) {
	if len(s) != 2 {
		return Square{}, false
	}
	sq := Square{
		Rank: int('8' - s[1]),
		File: int(s[0] - 'a'),
	}
	return sq, sq.Valid()
}

/* displacements are relative to the moving color: positive rank is forward */

type Vector struct {
	Rank int
	File int
}

func (v Vector) Unit() Vector {
	return Vector{Rank: sign(v.Rank), File: sign(v.File)}
}

func (v Vector) Aligned() bool {
	return v.Rank == 0 || v.File == 0 || abs(v.Rank) == abs(v.File)
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

type Cell struct {
	Color Color
	Piece Piece
}

func (c Cell) Empty() bool {
	return c.Piece == NoPiece
}

type Move struct {
	From Square
	To   Square
}

type Outcome uint8

const (
	NextPlayer = Outcome(iota)
	Check
	CheckMate
)

func (o Outcome) String() string {
	switch o {
	case Check:
		return "check"
	case CheckMate:
		return "checkmate"
	default:
		return "ongoing"
	}
}

/* Board is a value: assigning it copies the whole grid, so every transition
below yields an independent position */

type Board [8][8]Cell

func (b Board) At(s Square) Cell {
	return b[s.Rank][s.File]
}

func (b Board) Place(s Square, c Cell) Board {
	b[s.Rank][s.File] = c
	return b
}

func (b Board) Clear(s Square) Board {
	b[s.Rank][s.File] = Cell{}
	return b
}

func (b Board) MovePiece(from Square, to Square, by Color, piece Piece) Board {
	b[from.Rank][from.File] = Cell{}
	b[to.Rank][to.File] = Cell{Color: by, Piece: piece}
	return b
}

var backRank = [8]Piece{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}

func StartingBoard() Board {
	var b Board
	for _, color := range []Color{White, Black} {
		for file, piece := range backRank {
			b[color.HomeRank()][file] = Cell{Color: color, Piece: piece}
		}
		for file := 0; file < 8; file++ {
			b[color.PawnRank()][file] = Cell{Color: color, Piece: Pawn}
		}
	}
	return b
}
