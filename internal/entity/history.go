package entity

import (
	"encoding/json"
	"fmt"
	"time"
)

const (
	MetaPlayer = "player"
	MetaWin    = "win"
)

// Meta is free-form data attached to a history entry.
type Meta map[string]any

// Player returns the player stored under key, if any.
func (that Meta) Player(key string) (Player, bool) {
	player, ok := that[key].(Player)
	return player, ok
}

// UnmarshalJSON restores the well-known player keys as Player values.
func (that *Meta) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("failed to unmarshal meta: %w", err)
	}

	meta := make(Meta, len(raw))
	for key, value := range raw {
		switch key {
		case MetaPlayer, MetaWin:
			var player Player
			if err := json.Unmarshal(value, &player); err != nil {
				return fmt.Errorf("failed to unmarshal meta %q: %w", key, err)
			}
			meta[key] = player
		default:
			var v any
			if err := json.Unmarshal(value, &v); err != nil {
				return fmt.Errorf("failed to unmarshal meta %q: %w", key, err)
			}
			meta[key] = v
		}
	}

	*that = meta

	return nil
}

// HistoryEntry records the board after a turn, the action that produced it
// and where it was applied. The first entry of a game has no action.
type HistoryEntry struct {
	Board    Board     `json:"board"`
	Action   string    `json:"action,omitempty"`
	Position *Position `json:"position,omitempty"`
	Meta     Meta      `json:"meta"`
}

func (that HistoryEntry) IsInitial() bool {
	return that.Action == ""
}

const (
	StatusSetup   = "setup"
	StatusOngoing = "ongoing"
	StatusWon     = "won"
	StatusTied    = "tied"
)

// Outcome is the result of a committed turn.
type Outcome struct {
	Status string `json:"status"`
	Winner Player `json:"winner"`
}

func Continue() Outcome {
	return Outcome{Status: StatusOngoing, Winner: NoPlayer}
}

func Won(winner Player) Outcome {
	return Outcome{Status: StatusWon, Winner: winner}
}

func Tied() Outcome {
	return Outcome{Status: StatusTied, Winner: NoPlayer}
}

func (that Outcome) IsFinished() bool {
	return that.Status == StatusWon || that.Status == StatusTied
}

func (that Outcome) IsWon() bool {
	return that.Status == StatusWon
}

func (that Outcome) IsTied() bool {
	return that.Status == StatusTied
}

// GameRecord is a finished game as kept in the archive.
type GameRecord struct {
	ID         string         `json:"id"`
	Variant    string         `json:"variant"`
	Outcome    Outcome        `json:"outcome"`
	Players    []Player       `json:"players"`
	History    []HistoryEntry `json:"history"`
	FinishedAt time.Time      `json:"finished_at"`
}
