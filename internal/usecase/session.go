package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/rocketscienceinc/boardgame-engine/internal/engine"
	"github.com/rocketscienceinc/boardgame-engine/internal/entity"
	"github.com/rocketscienceinc/boardgame-engine/internal/pkg"
)

type gameArchive interface {
	Create(ctx context.Context, record *entity.GameRecord) error
}

// Session drives a single game for one caller and archives it when it ends.
type Session struct {
	logger  *slog.Logger
	archive gameArchive

	id   string
	game *engine.Game
	now  func() time.Time
}

// NewSession wraps game. archive may be nil, in which case finished games
// are only kept in memory.
func NewSession(logger *slog.Logger, game *engine.Game, archive gameArchive) (*Session, error) {
	id, err := pkg.GenerateGameID()
	if err != nil {
		return nil, fmt.Errorf("error generating game ID: %w", err)
	}

	return &Session{
		logger:  logger.With("component", "session", "game_id", id),
		archive: archive,
		id:      id,
		game:    game,
		now:     time.Now,
	}, nil
}

func (that *Session) ID() string {
	return that.id
}

func (that *Session) Game() *engine.Game {
	return that.game
}

func (that *Session) ActionNames() []string {
	actions := that.game.Actions()

	names := make([]string, 0, len(actions))
	for _, action := range actions {
		names = append(names, action.Name())
	}

	return names
}

// Play applies the named action for the current player.
func (that *Session) Play(ctx context.Context, name string, pos entity.Position) (entity.Outcome, error) {
	log := that.logger.With("method", "Play")

	player := that.game.Player()

	outcome, err := that.game.Act(name, pos)
	if err != nil {
		log.Debug("turn rejected", "action", name, "row", pos.Row, "col", pos.Col, "error", err)
		return outcome, fmt.Errorf("failed to make turn: %w", err)
	}

	log.Info("turn committed",
		"action", name,
		"player", player.ID,
		"symbol", player.Symbol.String(),
		"row", pos.Row,
		"col", pos.Col,
		"status", outcome.Status,
	)

	if outcome.IsFinished() {
		that.archiveGame(ctx, outcome)
	}

	return outcome, nil
}

// Record snapshots the game as an archive record.
func (that *Session) Record() *entity.GameRecord {
	return &entity.GameRecord{
		ID:         that.id,
		Variant:    that.game.Rules().Name,
		Outcome:    that.game.Outcome(),
		Players:    that.game.Players(),
		History:    that.game.History(),
		FinishedAt: that.now().UTC(),
	}
}

func (that *Session) archiveGame(ctx context.Context, outcome entity.Outcome) {
	log := that.logger.With("method", "archiveGame")

	if that.archive == nil {
		log.Debug("archive disabled", "status", outcome.Status)
		return
	}

	if err := that.archive.Create(ctx, that.Record()); err != nil {
		log.Error("failed to archive game", "error", err)
		return
	}

	log.Info("game archived", "status", outcome.Status, "turns", that.game.Turns())
}
