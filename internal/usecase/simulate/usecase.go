package simulate

import (
	"context"
	"math/rand"
	"time"

	"github.com/kiryu-dev/chess/internal/config"
	"github.com/kiryu-dev/chess/internal/domain"
	"github.com/kiryu-dev/chess/internal/usecase/chess"
	"github.com/pkg/errors"
	"go.uber.org/atomic"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const progressPeriod = 5 * time.Second

type GameRecord struct {
	Uuid    string `json:"uuid"`
	Plies   int    `json:"plies"`
	Outcome string `json:"outcome"`
	Winner  string `json:"winner,omitempty"`
}

type Report struct {
	Games      int          `json:"games"`
	WhiteWins  int          `json:"white_wins"`
	BlackWins  int          `json:"black_wins"`
	Unfinished int          `json:"unfinished"`
	Records    []GameRecord `json:"records"`
}

type useCase struct {
	cfg    config.SimulateConfig
	played *atomic.Int64
	logger *zap.Logger
}

func New(cfg config.SimulateConfig, logger *zap.Logger) *useCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &useCase{
		cfg:    cfg,
		played: atomic.NewInt64(0),
		logger: logger,
	}
}

/* Run plays the configured number of games on a bounded worker pool; each
game is confined to a single goroutine and seeded from its index, so a run
is reproducible for a fixed seed whatever the worker count */

func (u *useCase) Run(ctx context.Context) (Report, error) {
	records := make([]GameRecord, u.cfg.Games)
	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(u.cfg.Workers)
	go u.reportProgress(groupCtx)
	for i := 0; i < u.cfg.Games; i++ {
		i := i
		group.Go(func() error {
			select {
			case <-groupCtx.Done():
				return groupCtx.Err()
			default:
			}
			records[i] = u.playGame(groupCtx, u.cfg.Seed+int64(i))
			u.played.Inc()
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return Report{}, errors.WithMessage(err, "simulate games")
	}
	report := Report{Games: len(records), Records: records}
	for _, rec := range records {
		switch rec.Winner {
		case domain.White.String():
			report.WhiteWins++
		case domain.Black.String():
			report.BlackWins++
		default:
			report.Unfinished++
		}
	}
	return report, nil
}

func (u *useCase) playGame(ctx context.Context, seed int64) GameRecord {
	rng := rand.New(rand.NewSource(seed))
	game := chess.NewGame(u.logger)
	for ctx.Err() == nil && game.Plies() < u.cfg.MaxPlies && game.LastOutcome() != domain.CheckMate {
		moves := chess.LegalMoves(game.Board(), game.Turn())
		if len(moves) == 0 {
			break
		}
		move := moves[rng.Intn(len(moves))]
		if _, err := game.Play(move.From, move.To); err != nil {
			u.logger.Warn("enumerated move rejected",
				zap.String("game uuid", game.Uuid()),
				zap.Stringer("from", move.From),
				zap.Stringer("to", move.To),
				zap.Error(err))
			break
		}
	}
	record := GameRecord{
		Uuid:    game.Uuid(),
		Plies:   game.Plies(),
		Outcome: game.LastOutcome().String(),
	}
	if game.LastOutcome() == domain.CheckMate {
		if by, ok := game.PreviousTurn(); ok {
			record.Winner = by.String()
		}
	}
	return record
}

func (u *useCase) reportProgress(ctx context.Context) {
	ticker := time.NewTicker(progressPeriod)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			u.logger.Info("simulation progress",
				zap.Int64("played", u.played.Load()),
				zap.Int("total", u.cfg.Games))
		}
	}
}
