package tictactoe

import (
	"github.com/pkg/errors"
)

var (
	ErrInvalidLocation = errors.New("cell position is off the grid")
	ErrAlreadyOccupied = errors.New("cell is already selected")
	ErrGameOver        = errors.New("game is already over")
)
