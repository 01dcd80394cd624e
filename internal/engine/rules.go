package engine

import "github.com/rocketscienceinc/boardgame-engine/internal/entity"

// Rules is what a concrete game supplies to the engine.
//
// Win must be provided by every variant. A nil Win is treated as "always
// won", so a variant that forgets it ends on its first turn.
type Rules struct {
	Name    string
	Rows    int
	Columns int
	// MoveLimit ends the game in a tie once that many turns were played
	// without a win. Zero means no limit.
	MoveLimit int
	Win       func(board entity.Board) bool
}
