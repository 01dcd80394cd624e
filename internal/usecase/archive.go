package usecase

import (
	"context"
	"fmt"
	"log/slog"
)

type gameIndex interface {
	List(ctx context.Context, limit int64) ([]string, error)
	DeleteByID(ctx context.Context, id string) error
}

// Archive browses and prunes the finished games kept in storage.
type Archive struct {
	logger *slog.Logger
	games  gameIndex
}

func NewArchive(logger *slog.Logger, games gameIndex) *Archive {
	return &Archive{
		logger: logger.With("component", "archive"),
		games:  games,
	}
}

// Recent returns up to limit game ids, newest first.
func (that *Archive) Recent(ctx context.Context, limit int64) ([]string, error) {
	ids, err := that.games.List(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list games: %w", err)
	}

	return ids, nil
}

func (that *Archive) Delete(ctx context.Context, id string) error {
	if err := that.games.DeleteByID(ctx, id); err != nil {
		return fmt.Errorf("failed to delete game %s: %w", id, err)
	}

	that.logger.Info("game deleted", "game_id", id)

	return nil
}
