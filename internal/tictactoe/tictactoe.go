package tictactoe

import (
	"fmt"

	"github.com/rocketscienceinc/boardgame-engine/internal/engine"
	"github.com/rocketscienceinc/boardgame-engine/internal/entity"
)

const (
	Name = "tictactoe"
	Size = 3

	PlayerX entity.Symbol = "X"
	PlayerO entity.Symbol = "O"
)

type options struct {
	strict bool
}

type Option func(*options)

// WithStrictPlacement rejects placements on occupied cells.
func WithStrictPlacement(strict bool) Option {
	return func(o *options) {
		o.strict = strict
	}
}

// Rules returns the tic-tac-toe rule set: 3x3 board, win on a full line,
// tie after nine turns without a winner.
func Rules() engine.Rules {
	return engine.Rules{
		Name:      Name,
		Rows:      Size,
		Columns:   Size,
		MoveLimit: Size * Size,
		Win:       Win,
	}
}

// Players returns X and O in turn order.
func Players() []entity.Player {
	return []entity.Player{
		entity.NewPlayer(1, PlayerX),
		entity.NewPlayer(2, PlayerO),
	}
}

func Actions(opts ...Option) []engine.Action {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}

	return []engine.Action{engine.Place{Strict: o.strict}}
}

// New returns a tic-tac-toe game with X to move.
func New(opts ...Option) (*engine.Game, error) {
	game, err := engine.New(Rules())
	if err != nil {
		return nil, fmt.Errorf("failed to create tictactoe game: %w", err)
	}

	if err = game.SetPlayers(Players()); err != nil {
		return nil, fmt.Errorf("failed to seat players: %w", err)
	}

	game.SetActions(Actions(opts...)...)

	return game, nil
}

// Win reports whether any line on a square board is filled with one symbol.
func Win(board entity.Board) bool {
	_, ok := Winner(board)
	return ok
}

// Winner returns the symbol completing a line, if any.
func Winner(board entity.Board) (entity.Symbol, bool) {
	if board.Rows() != board.Columns() {
		return "", false
	}

	for _, line := range Lines(board.Rows()) {
		if symbol, ok := lineOwner(board, line); ok {
			return symbol, true
		}
	}

	return "", false
}

// Lines enumerates the n rows, n columns and two diagonals of an n x n board.
func Lines(n int) [][]entity.Position {
	if n <= 0 {
		return nil
	}

	lines := make([][]entity.Position, 0, 2*n+2)

	for r := 0; r < n; r++ {
		line := make([]entity.Position, 0, n)
		for c := 0; c < n; c++ {
			line = append(line, entity.Position{Row: r, Col: c})
		}
		lines = append(lines, line)
	}

	for c := 0; c < n; c++ {
		line := make([]entity.Position, 0, n)
		for r := 0; r < n; r++ {
			line = append(line, entity.Position{Row: r, Col: c})
		}
		lines = append(lines, line)
	}

	diagonal := make([]entity.Position, 0, n)
	anti := make([]entity.Position, 0, n)
	for i := 0; i < n; i++ {
		diagonal = append(diagonal, entity.Position{Row: i, Col: i})
		anti = append(anti, entity.Position{Row: i, Col: n - 1 - i})
	}

	return append(lines, diagonal, anti)
}

func lineOwner(board entity.Board, line []entity.Position) (entity.Symbol, bool) {
	first, err := board.Get(line[0].Row, line[0].Col)
	if err != nil || first == entity.EmptySymbol {
		return "", false
	}

	for _, pos := range line[1:] {
		symbol, err := board.Get(pos.Row, pos.Col)
		if err != nil || symbol != first {
			return "", false
		}
	}

	return first, true
}
