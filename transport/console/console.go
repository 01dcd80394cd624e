package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"slices"
	"strconv"
	"strings"

	"github.com/muesli/termenv"

	"github.com/rocketscienceinc/boardgame-engine/internal/apperror"
	"github.com/rocketscienceinc/boardgame-engine/internal/engine"
	"github.com/rocketscienceinc/boardgame-engine/internal/entity"
)

var (
	ErrInputClosed      = errors.New("input closed before the game ended")
	errInvalidPositions = errors.New("expected two integers separated by a space")
)

var separator = strings.Repeat("-", 80)

type session interface {
	Game() *engine.Game
	ActionNames() []string
	Play(ctx context.Context, name string, pos entity.Position) (entity.Outcome, error)
}

// Console plays one session over a line based reader and writer.
type Console struct {
	logger  *slog.Logger
	session session

	in  *bufio.Scanner
	out *termenv.Output
}

func New(logger *slog.Logger, session session, in io.Reader, out io.Writer) *Console {
	return &Console{
		logger:  logger.With("component", "console"),
		session: session,
		in:      bufio.NewScanner(in),
		out:     termenv.NewOutput(out),
	}
}

// Run prompts for moves until the game ends, the input is exhausted or ctx
// is cancelled.
func (that *Console) Run(ctx context.Context) (entity.Outcome, error) {
	log := that.logger.With("method", "Run")

	for {
		if err := ctx.Err(); err != nil {
			return that.session.Game().Outcome(), err
		}

		that.clearScreen()
		that.printf("%s", that.session.Game())

		names := that.session.ActionNames()
		that.printf("Possible actions: [ %s ]\n", strings.Join(names, " "))

		name, ok := that.readLine()
		if !ok {
			return that.session.Game().Outcome(), ErrInputClosed
		}

		if !slices.Contains(names, name) {
			that.printf("unknown action %q\n", name)
			continue
		}

		that.printf("enter x and y coordinates: ")

		line, ok := that.readLine()
		if !ok {
			return that.session.Game().Outcome(), ErrInputClosed
		}

		pos, err := parsePosition(line)
		if err != nil {
			that.printf("%v\n", err)
			continue
		}

		outcome, err := that.session.Play(ctx, name, pos)
		switch {
		case errors.Is(err, apperror.ErrOutOfBounds), errors.Is(err, apperror.ErrCellOccupied):
			log.Debug("move rejected", "error", err)
			that.printf("invalid move: %v\n", err)
			continue
		case err != nil:
			return outcome, fmt.Errorf("failed to play: %w", err)
		}

		that.printf("%s\n", separator)

		if outcome.IsFinished() {
			that.printResult(outcome)
			return outcome, nil
		}
	}
}

func (that *Console) printResult(outcome entity.Outcome) {
	history := that.session.Game().History()
	board := history[len(history)-1].Board

	that.printf("%s\n", separator)
	that.printf("%s\n", that.renderBoard(board))

	switch {
	case outcome.IsWon():
		that.printf("%s won\n", that.renderSymbol(outcome.Winner.Symbol))
	case board.IsFull():
		that.printf("Tie\n")
	default:
		// overwrites used up the moves before the board filled
		that.printf("Tie (move limit reached)\n")
	}

	that.printf("Game Over\n")
}

func (that *Console) renderBoard(board entity.Board) string {
	lines := make([]string, 0, board.Rows())
	for r := 0; r < board.Rows(); r++ {
		row := make([]string, 0, board.Columns())
		for c := 0; c < board.Columns(); c++ {
			symbol, _ := board.Get(r, c)
			row = append(row, that.renderSymbol(symbol))
		}
		lines = append(lines, strings.Join(row, "|"))
	}

	return strings.Join(lines, "\n")
}

func (that *Console) renderSymbol(symbol entity.Symbol) string {
	style := that.out.String(symbol.String())

	switch symbol {
	case entity.EmptySymbol:
		style = style.Faint()
	default:
		style = style.Bold().Foreground(that.out.Color(symbolColor(symbol)))
	}

	return style.String()
}

// symbolColor picks a stable ANSI colour per symbol.
func symbolColor(symbol entity.Symbol) string {
	palette := []string{"1", "4", "2", "5", "3", "6"}

	sum := 0
	for _, r := range symbol {
		sum += int(r)
	}

	return palette[sum%len(palette)]
}

func (that *Console) clearScreen() {
	if that.out.Profile == termenv.Ascii {
		return
	}

	that.out.ClearScreen()
}

func (that *Console) readLine() (string, bool) {
	if !that.in.Scan() {
		return "", false
	}

	return strings.TrimSpace(that.in.Text()), true
}

func (that *Console) printf(format string, args ...any) {
	if _, err := fmt.Fprintf(that.out, format, args...); err != nil {
		that.logger.Error("failed to write output", "error", err)
	}
}

func parsePosition(line string) (entity.Position, error) {
	fields := strings.Fields(line)
	if len(fields) != 2 {
		return entity.Position{}, errInvalidPositions
	}

	row, err := strconv.Atoi(fields[0])
	if err != nil {
		return entity.Position{}, fmt.Errorf("%w: %w", errInvalidPositions, err)
	}

	col, err := strconv.Atoi(fields[1])
	if err != nil {
		return entity.Position{}, fmt.Errorf("%w: %w", errInvalidPositions, err)
	}

	return entity.Position{Row: row, Col: col}, nil
}
