package engine

import (
	"fmt"

	"github.com/rocketscienceinc/boardgame-engine/internal/apperror"
	"github.com/rocketscienceinc/boardgame-engine/internal/entity"
)

// Action turns a board into the next board on behalf of a player.
// Implementations must not modify the board they are given.
type Action interface {
	Name() string
	Apply(board entity.Board, player entity.Player, pos entity.Position) (entity.Board, entity.Meta, error)
}

const PlaceName = "Place"

// Place puts the acting player's symbol into one cell. Occupied cells are
// overwritten unless Strict is set.
type Place struct {
	Strict bool
}

func (that Place) Name() string {
	return PlaceName
}

func (that Place) Apply(board entity.Board, player entity.Player, pos entity.Position) (entity.Board, entity.Meta, error) {
	if player.IsNone() {
		return entity.Board{}, nil, apperror.ErrNoPlayers
	}

	if that.Strict {
		current, err := board.Get(pos.Row, pos.Col)
		if err != nil {
			return entity.Board{}, nil, err
		}

		if current != entity.EmptySymbol {
			return entity.Board{}, nil, fmt.Errorf("%w: (%d, %d) holds %s", apperror.ErrCellOccupied, pos.Row, pos.Col, current)
		}
	}

	next, err := board.WithCellSet(pos.Row, pos.Col, player.Symbol)
	if err != nil {
		return entity.Board{}, nil, err
	}

	return next, entity.Meta{}, nil
}

func (that Place) String() string {
	return that.Name()
}
