package engine

import (
	"fmt"
	"maps"
	"strings"

	"github.com/rocketscienceinc/boardgame-engine/internal/apperror"
	"github.com/rocketscienceinc/boardgame-engine/internal/entity"
)

// Game owns the board, the seated players, the legal actions and the
// history of one session. It is not safe for concurrent use.
type Game struct {
	rules Rules

	board   entity.Board
	players []entity.Player
	current int
	actions []Action
	history []entity.HistoryEntry

	moves   int
	status  string
	outcome entity.Outcome
}

func New(rules Rules) (*Game, error) {
	board, err := entity.NewBoard(rules.Rows, rules.Columns)
	if err != nil {
		return nil, fmt.Errorf("failed to create board for %q: %w", rules.Name, err)
	}

	return &Game{
		rules:   rules,
		board:   board,
		current: -1,
		history: []entity.HistoryEntry{{Board: board, Meta: entity.Meta{}}},
		status:  entity.StatusSetup,
		outcome: entity.Continue(),
	}, nil
}

func (that *Game) Rules() Rules {
	return that.rules
}

func (that *Game) Board() entity.Board {
	return that.board
}

func (that *Game) SetBoard(board entity.Board) {
	that.board = board
}

// Player returns the player whose turn it is, or entity.NoPlayer before
// players are seated.
func (that *Game) Player() entity.Player {
	if that.current < 0 || that.current >= len(that.players) {
		return entity.NoPlayer
	}

	return that.players[that.current]
}

// SetPlayer moves the rotation to the given seated player.
func (that *Game) SetPlayer(player entity.Player) error {
	for i, seated := range that.players {
		if seated.ID == player.ID {
			that.current = i
			return nil
		}
	}

	return fmt.Errorf("%w: id %d", apperror.ErrUnknownPlayer, player.ID)
}

func (that *Game) Players() []entity.Player {
	return append([]entity.Player(nil), that.players...)
}

// SetPlayers seats the players in turn order and gives the first one the move.
func (that *Game) SetPlayers(players []entity.Player) error {
	if len(players) == 0 {
		return apperror.ErrNoPlayers
	}

	that.players = append([]entity.Player(nil), players...)
	that.current = 0

	if that.status == entity.StatusSetup {
		that.status = entity.StatusOngoing
	}

	return nil
}

func (that *Game) NextPlayer() error {
	if len(that.players) == 0 {
		return apperror.ErrNoPlayers
	}

	that.current = (that.current + 1) % len(that.players)

	return nil
}

func (that *Game) Actions() []Action {
	return append([]Action(nil), that.actions...)
}

// SetActions replaces the legal actions. Later actions win on name clashes.
func (that *Game) SetActions(actions ...Action) {
	that.actions = make([]Action, 0, len(actions))
	for _, action := range actions {
		if i := that.actionIndex(action.Name()); i >= 0 {
			that.actions[i] = action
			continue
		}
		that.actions = append(that.actions, action)
	}
}

// Action looks up a legal action by name.
func (that *Game) Action(name string) (Action, error) {
	if i := that.actionIndex(name); i >= 0 {
		return that.actions[i], nil
	}

	return nil, fmt.Errorf("%w: %q", apperror.ErrUnknownAction, name)
}

// History returns a copy of the recorded entries. It is never empty.
func (that *Game) History() []entity.HistoryEntry {
	history := make([]entity.HistoryEntry, len(that.history))
	for i, entry := range that.history {
		entry.Meta = maps.Clone(entry.Meta)
		if entry.Position != nil {
			pos := *entry.Position
			entry.Position = &pos
		}
		history[i] = entry
	}

	return history
}

func (that *Game) Status() string {
	return that.status
}

func (that *Game) Outcome() entity.Outcome {
	return that.outcome
}

func (that *Game) IsFinished() bool {
	return that.outcome.IsFinished()
}

// Turns is the number of committed turns.
func (that *Game) Turns() int {
	return len(that.history) - 1
}

// Win evaluates the variant's win predicate on the current board.
func (that *Game) Win() bool {
	if that.rules.Win == nil {
		return true
	}

	return that.rules.Win(that.board)
}

// Act applies the named legal action at pos for the current player.
func (that *Game) Act(name string, pos entity.Position) (entity.Outcome, error) {
	action, err := that.Action(name)
	if err != nil {
		return that.outcome, err
	}

	return that.Apply(action, pos)
}

// Apply runs action for the current player and commits the turn. On error
// the game is left as it was.
func (that *Game) Apply(action Action, pos entity.Position) (entity.Outcome, error) {
	if that.IsFinished() {
		return that.outcome, apperror.ErrGameFinished
	}

	player := that.Player()
	if player.IsNone() {
		return that.outcome, apperror.ErrNoPlayers
	}

	next, meta, err := action.Apply(that.board, player, pos)
	if err != nil {
		return that.outcome, fmt.Errorf("failed to apply %s: %w", action.Name(), err)
	}

	that.board = next

	return that.Turn(action, pos, meta)
}

// Turn records the current board as produced by action, passes the move to
// the next player and then checks whether the game has ended. A terminal
// turn is recorded like any other; the outcome reports how the game ended.
func (that *Game) Turn(action Action, pos entity.Position, meta entity.Meta) (entity.Outcome, error) {
	if that.IsFinished() {
		return that.outcome, apperror.ErrGameFinished
	}

	actor := that.Player()
	if actor.IsNone() {
		return that.outcome, apperror.ErrNoPlayers
	}

	meta = maps.Clone(meta)
	if meta == nil {
		meta = entity.Meta{}
	}
	meta[entity.MetaPlayer] = actor

	won := that.Win()
	if won {
		meta[entity.MetaWin] = actor
	}

	that.history = append(that.history, entity.HistoryEntry{
		Board:    that.board,
		Action:   action.Name(),
		Position: &pos,
		Meta:     meta,
	})

	if err := that.NextPlayer(); err != nil {
		return that.outcome, err
	}

	if won {
		return that.finish(entity.Won(actor)), nil
	}

	that.moves++
	if that.rules.MoveLimit > 0 && that.moves >= that.rules.MoveLimit {
		return that.finish(entity.Tied()), nil
	}

	return that.outcome, nil
}

// Replay rebuilds the board recorded at history index k from the initial
// board and the recorded actions.
func (that *Game) Replay(k int) (entity.Board, error) {
	return Replay(that.history, that.actions, k)
}

func (that *Game) String() string {
	player := that.Player()

	logs := make([]string, 0, len(that.history))
	for _, entry := range that.history {
		logs = append(logs, fmt.Sprintf("%s %s %s", entry.Board, describeAction(entry), describeMeta(entry.Meta)))
	}

	return fmt.Sprintf("current player: %d, symbol: %s\n%s\n\nLogs:\n%s\n",
		player.ID, player.Symbol, that.board, strings.Join(logs, "\n\n"))
}

func (that *Game) finish(outcome entity.Outcome) entity.Outcome {
	that.outcome = outcome
	that.status = outcome.Status

	return outcome
}

func (that *Game) actionIndex(name string) int {
	for i, action := range that.actions {
		if action.Name() == name {
			return i
		}
	}

	return -1
}
