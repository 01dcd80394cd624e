package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/rocketscienceinc/boardgame-engine/internal/apperror"
	"github.com/rocketscienceinc/boardgame-engine/internal/entity"
)

const (
	gameKeyPrefix = "game:"
	gameIndexKey  = "games"
)

// GameRepository archives finished games.
type GameRepository interface {
	Create(ctx context.Context, record *entity.GameRecord) error
	GetByID(ctx context.Context, id string) (*entity.GameRecord, error)
	List(ctx context.Context, limit int64) ([]string, error)
	DeleteByID(ctx context.Context, id string) error
}

type dbGame struct {
	client *redis.Client
}

func NewGameRepository(client *redis.Client) GameRepository {
	return &dbGame{
		client: client,
	}
}

// Create stores a record once; an existing id is never overwritten.
func (that *dbGame) Create(ctx context.Context, record *entity.GameRecord) error {
	gameJSON, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("could not marshal game: %w", err)
	}

	created, err := that.client.SetNX(ctx, gameKeyPrefix+record.ID, gameJSON, 0).Result()
	if err != nil {
		return fmt.Errorf("failed to set game: %w", err)
	}

	if !created {
		return fmt.Errorf("%w: id %s", apperror.ErrGameAlreadyExists, record.ID)
	}

	err = that.client.ZAdd(ctx, gameIndexKey, redis.Z{
		Score:  float64(record.FinishedAt.UnixMilli()),
		Member: record.ID,
	}).Err()
	if err != nil {
		return fmt.Errorf("failed to index game: %w", err)
	}

	return nil
}

func (that *dbGame) GetByID(ctx context.Context, id string) (*entity.GameRecord, error) {
	response, err := that.client.Get(ctx, gameKeyPrefix+id).Result()
	if errors.Is(err, redis.Nil) {
		return nil, apperror.ErrGameNotFound
	}

	if err != nil {
		return nil, fmt.Errorf("failed to get game by id: %w", err)
	}

	var record entity.GameRecord
	if err = json.Unmarshal([]byte(response), &record); err != nil {
		return nil, fmt.Errorf("failed to unmarshal game: %w", err)
	}

	return &record, nil
}

// List returns the ids of the most recently finished games, newest first.
func (that *dbGame) List(ctx context.Context, limit int64) ([]string, error) {
	if limit <= 0 {
		return nil, nil
	}

	ids, err := that.client.ZRevRange(ctx, gameIndexKey, 0, limit-1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list games: %w", err)
	}

	return ids, nil
}

func (that *dbGame) DeleteByID(ctx context.Context, id string) error {
	deleted, err := that.client.Del(ctx, gameKeyPrefix+id).Result()
	if err != nil {
		return fmt.Errorf("failed to delete game by id: %w", err)
	}

	if deleted == 0 {
		return apperror.ErrGameNotFound
	}

	if err = that.client.ZRem(ctx, gameIndexKey, id).Err(); err != nil {
		return fmt.Errorf("failed to unindex game: %w", err)
	}

	return nil
}
