package engine

import (
	"fmt"
	"sort"
	"strings"

	"github.com/rocketscienceinc/boardgame-engine/internal/apperror"
	"github.com/rocketscienceinc/boardgame-engine/internal/entity"
)

// Replay re-applies history[1..k] to history[0].Board using the recorded
// action names, players and positions, and returns the resulting board.
func Replay(history []entity.HistoryEntry, actions []Action, k int) (entity.Board, error) {
	if k < 0 || k >= len(history) {
		return entity.Board{}, fmt.Errorf("%w: %d of %d", apperror.ErrHistoryIndex, k, len(history))
	}

	board := history[0].Board
	for i := 1; i <= k; i++ {
		entry := history[i]

		action, err := findAction(actions, entry.Action)
		if err != nil {
			return entity.Board{}, fmt.Errorf("entry %d: %w", i, err)
		}

		player, ok := entry.Meta.Player(entity.MetaPlayer)
		if !ok {
			return entity.Board{}, fmt.Errorf("entry %d: %w", i, apperror.ErrNoPlayers)
		}

		if entry.Position == nil {
			return entity.Board{}, fmt.Errorf("entry %d: %w: missing position", i, apperror.ErrOutOfBounds)
		}

		board, _, err = action.Apply(board, player, *entry.Position)
		if err != nil {
			return entity.Board{}, fmt.Errorf("entry %d: %w", i, err)
		}
	}

	return board, nil
}

// Verify replays every entry and checks it against the recorded snapshot.
func Verify(history []entity.HistoryEntry, actions []Action) error {
	for k := range history {
		board, err := Replay(history, actions, k)
		if err != nil {
			return err
		}

		if !board.Equal(history[k].Board) {
			return fmt.Errorf("%w: entry %d", apperror.ErrReplayDiverged, k)
		}
	}

	return nil
}

func findAction(actions []Action, name string) (Action, error) {
	for _, action := range actions {
		if action.Name() == name {
			return action, nil
		}
	}

	return nil, fmt.Errorf("%w: %q", apperror.ErrUnknownAction, name)
}

func describeAction(entry entity.HistoryEntry) string {
	if entry.IsInitial() {
		return "-"
	}

	if entry.Position == nil {
		return entry.Action
	}

	return fmt.Sprintf("%s(%d, %d)", entry.Action, entry.Position.Row, entry.Position.Col)
}

func describeMeta(meta entity.Meta) string {
	keys := make([]string, 0, len(meta))
	for key := range meta {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, key := range keys {
		value := meta[key]
		if player, ok := value.(entity.Player); ok {
			value = player.Symbol
		}
		parts = append(parts, fmt.Sprintf("%s:%v", key, value))
	}

	return "{" + strings.Join(parts, " ") + "}"
}
