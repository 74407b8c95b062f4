package script

import (
	"bufio"
	"os"
	"strings"

	"github.com/kiryu-dev/chess/internal/domain"
	"github.com/pkg/errors"
)

var ErrBadMove = errors.New("malformed move")

/* Load reads a move script: one move per line, either 'e2e4' or 'e2 e4',
with '#' starting a comment */

func Load(path string) ([]domain.Move, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.WithMessage(err, "open script")
	}
	defer func() {
		_ = file.Close()
	}()
	var moves []domain.Move
	scanner := bufio.NewScanner(file)
	for line := 1; scanner.Scan(); line++ {
		text := scanner.Text()
		if i := strings.IndexByte(text, '#'); i >= 0 {
			text = text[:i]
		}
		text = strings.TrimSpace(text)
		if text == "" {
			continue
		}
		move, err := ParseMove(text)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", line)
		}
		moves = append(moves, move)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.WithMessage(err, "read script")
	}
	return moves, nil
}

func ParseMove(s string) (domain.Move, error) {
	fields := strings.Fields(s)
	var from, to string
	switch {
	case len(fields) == 2:
		from, to = fields[0], fields[1]
	case len(fields) == 1 && len(fields[0]) == 4:
		from, to = fields[0][:2], fields[0][2:]
	default:
		return domain.Move{}, errors.WithMessagef(ErrBadMove, "'%s'", s)
	}
	fromSq, ok := domain.ParseSquare(from)
	if !ok {
		return domain.Move{}, errors.WithMessagef(ErrBadMove, "bad square '%s'", from)
	}
	toSq, ok := domain.ParseSquare(to)
	if !ok {
		return domain.Move{}, errors.WithMessagef(ErrBadMove, "bad square '%s'", to)
	}
	return domain.Move{From: fromSq, To: toSq}, nil
}
