package chess

import (
	"testing"

	"github.com/kiryu-dev/chess/internal/domain"
)

func TestLegalMovesOpening(t *testing.T) {
	board := domain.StartingBoard()
	if got := len(LegalMoves(board, domain.White)); got != 20 {
		t.Fatalf("white has %d opening moves, want 20", got)
	}
	if got := len(LegalMoves(board, domain.Black)); got != 20 {
		t.Fatalf("black has %d opening moves, want 20", got)
	}
}

func TestLegalTargets(t *testing.T) {
	board := domain.StartingBoard()
	tests := []struct {
		name string
		from string
		want []string
	}{
		{name: "pawn on its rank", from: "e2", want: []string{"e3", "e4"}},
		{name: "knight in the corner row", from: "b1", want: []string{"a3", "c3"}},
		{name: "walled in rook", from: "a1", want: nil},
		{name: "walled in king", from: "e1", want: nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := LegalTargets(board, sq(t, tt.from), domain.White)
			if len(got) != len(tt.want) {
				t.Fatalf("targets = %v, want %v", got, tt.want)
			}
			seen := make(map[string]bool, len(got))
			for _, target := range got {
				seen[target.String()] = true
			}
			for _, want := range tt.want {
				if !seen[want] {
					t.Fatalf("targets = %v, missing %s", got, want)
				}
			}
		})
	}
}

func TestLegalMovesMatchValidator(t *testing.T) {
	board := domain.StartingBoard().
		MovePiece(sq(t, "e2"), sq(t, "e4"), domain.White, domain.Pawn)
	for _, move := range LegalMoves(board, domain.Black) {
		if _, err := Move(board, move.From, move.To, domain.Black); err != nil {
			t.Fatalf("enumerated move %s%s rejected: %v", move.From, move.To, err)
		}
	}
}
