// Package variant selects a concrete game by name.
package variant

import (
	"fmt"

	"github.com/rocketscienceinc/boardgame-engine/internal/apperror"
	"github.com/rocketscienceinc/boardgame-engine/internal/engine"
	"github.com/rocketscienceinc/boardgame-engine/internal/tictactoe"
)

// New returns a fresh game of the named variant.
func New(name string, strict bool) (*engine.Game, error) {
	switch name {
	case tictactoe.Name:
		return tictactoe.New(tictactoe.WithStrictPlacement(strict))
	default:
		return nil, fmt.Errorf("%w: %q", apperror.ErrUnknownVariant, name)
	}
}

// Actions returns the legal actions of the named variant, used to replay
// archived games.
func Actions(name string, strict bool) ([]engine.Action, error) {
	switch name {
	case tictactoe.Name:
		return tictactoe.Actions(tictactoe.WithStrictPlacement(strict)), nil
	default:
		return nil, fmt.Errorf("%w: %q", apperror.ErrUnknownVariant, name)
	}
}

func Names() []string {
	return []string{tictactoe.Name}
}
