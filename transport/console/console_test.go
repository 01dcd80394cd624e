package console

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/boardgame-engine/internal/apperror"
	"github.com/rocketscienceinc/boardgame-engine/internal/entity"
	"github.com/rocketscienceinc/boardgame-engine/internal/tictactoe"
	"github.com/rocketscienceinc/boardgame-engine/internal/usecase"
	"github.com/rocketscienceinc/boardgame-engine/testing/suite"
)

func newConsole(t *testing.T, input string, opts ...tictactoe.Option) (*Console, *bytes.Buffer) {
	t.Helper()

	game, err := tictactoe.New(opts...)
	require.NoError(t, err)

	session, err := usecase.NewSession(suite.NewLogger(), game, nil)
	require.NoError(t, err)

	out := &bytes.Buffer{}

	return New(suite.NewLogger(), session, strings.NewReader(input), out), out
}

func script(lines ...string) string {
	return strings.Join(lines, "\n") + "\n"
}

func TestConsole_Run(t *testing.T) {
	ctx := context.Background()

	t.Run("Plays until X wins", func(t *testing.T) {
		// Given: input for a game X wins on the top row
		console, out := newConsole(t, script(
			"Place", "0 0",
			"Place", "1 0",
			"Place", "0 1",
			"Place", "1 1",
			"Place", "0 2",
		))

		// When: the console runs
		outcome, err := console.Run(ctx)

		// Then: X won and the result was printed
		require.NoError(t, err)
		assert.True(t, outcome.IsWon())
		assert.Equal(t, tictactoe.PlayerX, outcome.Winner.Symbol)

		text := out.String()
		assert.Contains(t, text, "Possible actions: [ Place ]")
		assert.Contains(t, text, "enter x and y coordinates: ")
		assert.Contains(t, text, "X|X|X\nO|O|_\n_|_|_")
		assert.Contains(t, text, "X won")
		assert.Contains(t, text, "Game Over")
	})

	t.Run("Reports a tie", func(t *testing.T) {
		console, out := newConsole(t, script(
			"Place", "0 0",
			"Place", "1 1",
			"Place", "0 2",
			"Place", "0 1",
			"Place", "2 1",
			"Place", "2 0",
			"Place", "1 0",
			"Place", "1 2",
			"Place", "2 2",
		))

		outcome, err := console.Run(ctx)

		require.NoError(t, err)
		assert.True(t, outcome.IsTied())
		assert.Contains(t, out.String(), "Tie\nGame Over")
	})

	t.Run("Reports a move limit tie on a board that is not full", func(t *testing.T) {
		// Given: nine placements that all overwrite the same cell
		lines := make([]string, 0, 18)
		for range 9 {
			lines = append(lines, "Place", "0 0")
		}
		console, out := newConsole(t, script(lines...))

		// When: the console runs
		outcome, err := console.Run(ctx)

		// Then: the game is tied by the move limit
		require.NoError(t, err)
		assert.True(t, outcome.IsTied())
		assert.Contains(t, out.String(), "Tie (move limit reached)\nGame Over")
	})

	t.Run("Re-prompts on bad input", func(t *testing.T) {
		// Given: input with an unknown action, garbage coordinates and an
		// out of bounds move before a winning game
		console, out := newConsole(t, script(
			"Jump",
			"Place", "a b",
			"Place", "1",
			"Place", "5 5",
			"Place", "0 0",
			"Place", "1 0",
			"Place", "0 1",
			"Place", "1 1",
			"Place", "0 2",
		))

		// When: the console runs
		outcome, err := console.Run(ctx)

		// Then: every bad line was reported and the game still finished
		require.NoError(t, err)
		assert.True(t, outcome.IsWon())

		text := out.String()
		assert.Contains(t, text, `unknown action "Jump"`)
		assert.Contains(t, text, errInvalidPositions.Error())
		assert.Contains(t, text, "invalid move:")
	})

	t.Run("Re-prompts on occupied cells in strict mode", func(t *testing.T) {
		console, out := newConsole(t, script("Place", "1 1", "Place", "1 1"), tictactoe.WithStrictPlacement(true))

		_, err := console.Run(ctx)

		require.ErrorIs(t, err, ErrInputClosed)
		assert.Contains(t, out.String(), apperror.ErrCellOccupied.Error())
	})

	t.Run("Stops when input ends", func(t *testing.T) {
		console, _ := newConsole(t, script("Place", "0 0"))

		outcome, err := console.Run(ctx)

		require.ErrorIs(t, err, ErrInputClosed)
		assert.Equal(t, entity.StatusOngoing, outcome.Status)
	})

	t.Run("Stops when the context is cancelled", func(t *testing.T) {
		console, _ := newConsole(t, script("Place", "0 0"))

		cancelled, cancel := context.WithCancel(ctx)
		cancel()

		_, err := console.Run(cancelled)

		require.ErrorIs(t, err, context.Canceled)
	})
}

func TestParsePosition(t *testing.T) {
	pos, err := parsePosition(" 2   1 ")
	require.NoError(t, err)
	assert.Equal(t, entity.Position{Row: 2, Col: 1}, pos)

	for _, line := range []string{"", "1", "1 2 3", "x 1", "1 y"} {
		_, err := parsePosition(line)
		assert.ErrorIs(t, err, errInvalidPositions, "line %q", line)
	}
}
