package application

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/redis/go-redis/v9"

	"github.com/rocketscienceinc/boardgame-engine/internal/config"
	"github.com/rocketscienceinc/boardgame-engine/internal/entity"
	"github.com/rocketscienceinc/boardgame-engine/internal/repository"
	"github.com/rocketscienceinc/boardgame-engine/internal/repository/storage"
	"github.com/rocketscienceinc/boardgame-engine/internal/usecase"
	"github.com/rocketscienceinc/boardgame-engine/internal/variant"
	"github.com/rocketscienceinc/boardgame-engine/transport/console"
)

var (
	ErrAddrNotFound    = errors.New("redis address string is empty")
	ErrArchiveDisabled = errors.New("game archive is disabled in config")
)

// RunGame - plays one game on in/out and returns how it ended.
func RunGame(ctx context.Context, logger *slog.Logger, conf *config.Config, in io.Reader, out io.Writer) (entity.Outcome, error) {
	log := logger.With("component", "app")

	game, err := variant.New(conf.Game.Variant, conf.Game.StrictPlacement)
	if err != nil {
		return entity.Outcome{}, fmt.Errorf("could not create game: %w", err)
	}

	var archive repository.GameRepository
	if conf.Redis.Archive {
		client, err := connectRedis(ctx, conf)
		if err != nil {
			return entity.Outcome{}, err
		}
		defer closeRedis(log, client)

		archive = repository.NewGameRepository(client)
	}

	session, err := usecase.NewSession(logger, game, archive)
	if err != nil {
		return entity.Outcome{}, fmt.Errorf("could not start session: %w", err)
	}

	log.Info("Starting game", "variant", conf.Game.Variant, "game_id", session.ID(), "archive", conf.Redis.Archive)

	outcome, err := console.New(logger, session, in, out).Run(ctx)
	if err != nil {
		return outcome, fmt.Errorf("console error: %w", err)
	}

	return outcome, nil
}

// RunReplay - loads an archived game, verifies it and writes every board to out.
func RunReplay(ctx context.Context, logger *slog.Logger, conf *config.Config, id string, out io.Writer) error {
	log := logger.With("component", "app")

	client, err := openArchive(ctx, conf)
	if err != nil {
		return err
	}
	defer closeRedis(log, client)

	record, err := usecase.NewReplayer(logger, repository.NewGameRepository(client)).Replay(ctx, id)
	if err != nil {
		return fmt.Errorf("could not replay game: %w", err)
	}

	return writeRecord(out, record)
}

// RunList - writes the ids of the newest archived games to out, one per line.
func RunList(ctx context.Context, logger *slog.Logger, conf *config.Config, limit int64, out io.Writer) error {
	log := logger.With("component", "app")

	client, err := openArchive(ctx, conf)
	if err != nil {
		return err
	}
	defer closeRedis(log, client)

	ids, err := usecase.NewArchive(logger, repository.NewGameRepository(client)).Recent(ctx, limit)
	if err != nil {
		return fmt.Errorf("could not list games: %w", err)
	}

	for _, id := range ids {
		if _, err = fmt.Fprintln(out, id); err != nil {
			return fmt.Errorf("failed to write game id: %w", err)
		}
	}

	return nil
}

// RunDelete - removes an archived game.
func RunDelete(ctx context.Context, logger *slog.Logger, conf *config.Config, id string) error {
	log := logger.With("component", "app")

	client, err := openArchive(ctx, conf)
	if err != nil {
		return err
	}
	defer closeRedis(log, client)

	if err = usecase.NewArchive(logger, repository.NewGameRepository(client)).Delete(ctx, id); err != nil {
		return fmt.Errorf("could not delete game: %w", err)
	}

	return nil
}

func writeRecord(out io.Writer, record *entity.GameRecord) error {
	if _, err := fmt.Fprintf(out, "game %s (%s) finished %s: %s\n",
		record.ID, record.Variant, record.FinishedAt.Format("2006-01-02 15:04:05"), record.Outcome.Status); err != nil {
		return fmt.Errorf("failed to write record: %w", err)
	}

	for i, entry := range record.History {
		header := "initial"
		if !entry.IsInitial() {
			player, _ := entry.Meta.Player(entity.MetaPlayer)
			header = fmt.Sprintf("%d. %s %s(%d, %d)", i, player.Symbol, entry.Action, entry.Position.Row, entry.Position.Col)
		}

		if _, err := fmt.Fprintf(out, "\n%s\n%s\n", header, entry.Board); err != nil {
			return fmt.Errorf("failed to write record: %w", err)
		}
	}

	result := "Tie"
	if record.Outcome.IsWon() {
		result = record.Outcome.Winner.Symbol.String() + " won"
	}

	if _, err := fmt.Fprintf(out, "\n%s\n", result); err != nil {
		return fmt.Errorf("failed to write record: %w", err)
	}

	return nil
}

func openArchive(ctx context.Context, conf *config.Config) (*redis.Client, error) {
	if !conf.Redis.Archive {
		return nil, ErrArchiveDisabled
	}

	return connectRedis(ctx, conf)
}

func connectRedis(ctx context.Context, conf *config.Config) (*redis.Client, error) {
	if conf.Redis.Host == "" {
		return nil, ErrAddrNotFound
	}

	client, err := storage.NewRedis(ctx, conf.Redis.GetRedisAddr())
	if err != nil {
		return nil, fmt.Errorf("could not connect to redis storage: %w", err)
	}

	return client, nil
}

func closeRedis(log *slog.Logger, client *redis.Client) {
	if err := client.Close(); err != nil {
		log.Error("could not close redis storage", "error", err)
	}
}
