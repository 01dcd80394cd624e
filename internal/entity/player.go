package entity

// Symbol is the mark a player leaves on a board cell.
type Symbol string

const (
	EmptySymbol Symbol = "_"
	noneSymbol  Symbol = " "
)

func (that Symbol) String() string {
	return string(that)
}

type Player struct {
	ID     int    `json:"id"`
	Symbol Symbol `json:"symbol"`
}

// NoPlayer stands in for the current player before any players are seated.
var NoPlayer = Player{ID: 0, Symbol: noneSymbol}

func NewPlayer(id int, symbol Symbol) Player {
	return Player{ID: id, Symbol: symbol}
}

func (that Player) IsNone() bool {
	return that.ID == NoPlayer.ID
}

type Position struct {
	Row int `json:"row"`
	Col int `json:"col"`
}
