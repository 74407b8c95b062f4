package chess

import (
	"github.com/pkg/errors"
)

var (
	ErrInvalidLocation = errors.New("location is off the board")
	ErrNoPiece         = errors.New("no piece on the source square")
	ErrNoPlayerTurn    = errors.New("piece belongs to the other player")
	ErrAlreadyOccupied = errors.New("destination is occupied by own piece")
	ErrNoMove          = errors.New("piece cannot move this way")
	ErrNoPawnMove      = errors.New("pawn cannot move this way")
	ErrMoveBlocked     = errors.New("move is blocked by another piece")
	ErrNotImplemented  = errors.New("piece movement is not implemented")
)
