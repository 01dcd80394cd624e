package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/boardgame-engine/internal/engine"
	"github.com/rocketscienceinc/boardgame-engine/internal/entity"
	"github.com/rocketscienceinc/boardgame-engine/internal/variant"
)

type gameReader interface {
	GetByID(ctx context.Context, id string) (*entity.GameRecord, error)
}

// Replayer loads archived games and checks that their recorded actions
// reproduce every recorded board.
type Replayer struct {
	logger *slog.Logger
	games  gameReader
}

func NewReplayer(logger *slog.Logger, games gameReader) *Replayer {
	return &Replayer{
		logger: logger.With("component", "replayer"),
		games:  games,
	}
}

func (that *Replayer) Replay(ctx context.Context, id string) (*entity.GameRecord, error) {
	record, err := that.games.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get game: %w", err)
	}

	// permissive placement reproduces both strict and permissive games
	actions, err := variant.Actions(record.Variant, false)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve variant: %w", err)
	}

	if err = engine.Verify(record.History, actions); err != nil {
		return nil, fmt.Errorf("failed to replay game %s: %w", id, err)
	}

	that.logger.Info("game replayed", "game_id", id, "entries", len(record.History))

	return record, nil
}
