package domain

import (
	"testing"
)

func TestParseSquare(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Square
		ok    bool
	}{
		{name: "a8 is the origin", input: "a8", want: Square{Rank: 0, File: 0}, ok: true},
		{name: "h1 is the far corner", input: "h1", want: Square{Rank: 7, File: 7}, ok: true},
		{name: "e2", input: "e2", want: Square{Rank: 6, File: 4}, ok: true},
		{name: "file out of range", input: "i5", ok: false},
		{name: "rank out of range", input: "a9", ok: false},
		{name: "rank zero", input: "a0", ok: false},
		{name: "too short", input: "e", ok: false},
		{name: "too long", input: "e2e4", ok: false},
		{name: "empty", input: "", ok: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseSquare(tt.input)
			if ok != tt.ok {
				t.Fatalf("ParseSquare(%q) ok = %v, want %v", tt.input, ok, tt.ok)
			}
			if ok && got != tt.want {
				t.Fatalf("ParseSquare(%q) = %+v, want %+v", tt.input, got, tt.want)
			}
		})
	}
}

func TestSquareString(t *testing.T) {
	for rank := 0; rank < 8; rank++ {
		for file := 0; file < 8; file++ {
			sq := Square{Rank: rank, File: file}
			parsed, ok := ParseSquare(sq.String())
			if !ok || parsed != sq {
				t.Fatalf("square %+v does not round-trip through %q", sq, sq.String())
			}
		}
	}
	if s := (Square{Rank: -1, File: 3}).String(); s != "-" {
		t.Fatalf("invalid square rendered as %q", s)
	}
}

func TestColor(t *testing.T) {
	if White.Opposite() != Black || Black.Opposite() != White {
		t.Fatal("colors must alternate")
	}
	if White.HomeRank() != 7 || White.PawnRank() != 6 {
		t.Fatalf("white ranks = %d/%d", White.HomeRank(), White.PawnRank())
	}
	if Black.HomeRank() != 0 || Black.PawnRank() != 1 {
		t.Fatalf("black ranks = %d/%d", Black.HomeRank(), Black.PawnRank())
	}
}

func TestVectorUnit(t *testing.T) {
	tests := []struct {
		name string
		v    Vector
		want Vector
	}{
		{name: "diagonal", v: Vector{Rank: 3, File: -3}, want: Vector{Rank: 1, File: -1}},
		{name: "straight", v: Vector{Rank: 0, File: 5}, want: Vector{Rank: 0, File: 1}},
		{name: "zero", v: Vector{}, want: Vector{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.v.Unit(); got != tt.want {
				t.Fatalf("unit of %+v = %+v, want %+v", tt.v, got, tt.want)
			}
		})
	}
}

func TestVectorAligned(t *testing.T) {
	aligned := []Vector{{Rank: 4, File: 0}, {Rank: 0, File: 2}, {Rank: 3, File: 3}, {Rank: -2, File: 2}}
	for _, v := range aligned {
		if !v.Aligned() {
			t.Fatalf("%+v must be aligned", v)
		}
	}
	skewed := []Vector{{Rank: 2, File: 1}, {Rank: 1, File: -2}, {Rank: 3, File: 2}}
	for _, v := range skewed {
		if v.Aligned() {
			t.Fatalf("%+v must not be aligned", v)
		}
	}
}

func TestStartingBoard(t *testing.T) {
	b := StartingBoard()
	wantBackRank := [8]Piece{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	for file := 0; file < 8; file++ {
		if got := b[0][file]; got.Color != Black || got.Piece != wantBackRank[file] {
			t.Fatalf("rank 0 file %d = %+v", file, got)
		}
		if got := b[7][file]; got.Color != White || got.Piece != wantBackRank[file] {
			t.Fatalf("rank 7 file %d = %+v", file, got)
		}
		if got := b[1][file]; got.Color != Black || got.Piece != Pawn {
			t.Fatalf("rank 1 file %d = %+v", file, got)
		}
		if got := b[6][file]; got.Color != White || got.Piece != Pawn {
			t.Fatalf("rank 6 file %d = %+v", file, got)
		}
	}
	for rank := 2; rank <= 5; rank++ {
		for file := 0; file < 8; file++ {
			if !b[rank][file].Empty() {
				t.Fatalf("rank %d file %d must be empty", rank, file)
			}
		}
	}
}

func TestBoardValueSemantics(t *testing.T) {
	original := StartingBoard()
	moved := original.MovePiece(Square{Rank: 6, File: 4}, Square{Rank: 4, File: 4}, White, Pawn)
	if original.At(Square{Rank: 6, File: 4}).Empty() {
		t.Fatal("transition must not mutate the source board")
	}
	if !moved.At(Square{Rank: 6, File: 4}).Empty() {
		t.Fatal("origin square must be vacated")
	}
	if got := moved.At(Square{Rank: 4, File: 4}); got.Color != White || got.Piece != Pawn {
		t.Fatalf("destination = %+v", got)
	}
}

func TestBoardPlaceClear(t *testing.T) {
	var b Board
	sq := Square{Rank: 3, File: 3}
	b = b.Place(sq, Cell{Color: Black, Piece: Queen})
	if got := b.At(sq); got.Piece != Queen || got.Color != Black {
		t.Fatalf("placed cell = %+v", got)
	}
	b = b.Clear(sq)
	if !b.At(sq).Empty() {
		t.Fatal("cleared cell must be empty")
	}
}
