package entity

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/rocketscienceinc/boardgame-engine/internal/apperror"
)

// Board is a fixed-size grid of symbols. A Board is never modified after
// construction: WithCellSet returns a copy.
type Board struct {
	rows    int
	columns int
	cells   []Symbol
}

func NewBoard(rows, columns int) (Board, error) {
	if rows <= 0 || columns <= 0 {
		return Board{}, fmt.Errorf("%w: %dx%d", apperror.ErrInvalidDimension, rows, columns)
	}

	cells := make([]Symbol, rows*columns)
	for i := range cells {
		cells[i] = EmptySymbol
	}

	return Board{rows: rows, columns: columns, cells: cells}, nil
}

func (that Board) Rows() int {
	return that.rows
}

func (that Board) Columns() int {
	return that.columns
}

func (that Board) Get(row, col int) (Symbol, error) {
	if err := that.checkBounds(row, col); err != nil {
		return "", err
	}

	return that.cells[row*that.columns+col], nil
}

// WithCellSet returns a new board equal to the receiver except for one cell.
func (that Board) WithCellSet(row, col int, symbol Symbol) (Board, error) {
	if err := that.checkBounds(row, col); err != nil {
		return Board{}, err
	}

	next := that.clone()
	next.cells[row*that.columns+col] = symbol

	return next, nil
}

func (that Board) Equal(other Board) bool {
	if that.rows != other.rows || that.columns != other.columns {
		return false
	}

	for i := range that.cells {
		if that.cells[i] != other.cells[i] {
			return false
		}
	}

	return true
}

// IsFull reports whether no cell holds the empty marker.
func (that Board) IsFull() bool {
	for _, cell := range that.cells {
		if cell == EmptySymbol {
			return false
		}
	}

	return true
}

// String renders the board as pipe separated rows, one per line.
func (that Board) String() string {
	lines := make([]string, 0, that.rows)
	for r := 0; r < that.rows; r++ {
		row := make([]string, 0, that.columns)
		for c := 0; c < that.columns; c++ {
			row = append(row, that.cells[r*that.columns+c].String())
		}
		lines = append(lines, strings.Join(row, "|"))
	}

	return strings.Join(lines, "\n")
}

func (that Board) checkBounds(row, col int) error {
	if row < 0 || row >= that.rows || col < 0 || col >= that.columns {
		return fmt.Errorf("%w: (%d, %d) on %dx%d board", apperror.ErrOutOfBounds, row, col, that.rows, that.columns)
	}

	return nil
}

func (that Board) clone() Board {
	cells := make([]Symbol, len(that.cells))
	copy(cells, that.cells)

	return Board{rows: that.rows, columns: that.columns, cells: cells}
}

type boardJSON struct {
	Rows    int        `json:"rows"`
	Columns int        `json:"columns"`
	Cells   [][]Symbol `json:"cells"`
}

func (that Board) MarshalJSON() ([]byte, error) {
	grid := make([][]Symbol, that.rows)
	for r := range grid {
		grid[r] = append([]Symbol(nil), that.cells[r*that.columns:(r+1)*that.columns]...)
	}

	return json.Marshal(boardJSON{Rows: that.rows, Columns: that.columns, Cells: grid})
}

func (that *Board) UnmarshalJSON(data []byte) error {
	var raw boardJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("failed to unmarshal board: %w", err)
	}

	board, err := NewBoard(raw.Rows, raw.Columns)
	if err != nil {
		return err
	}

	if len(raw.Cells) != raw.Rows {
		return fmt.Errorf("%w: got %d rows, want %d", apperror.ErrInvalidDimension, len(raw.Cells), raw.Rows)
	}

	for r, row := range raw.Cells {
		if len(row) != raw.Columns {
			return fmt.Errorf("%w: row %d has %d cells, want %d", apperror.ErrInvalidDimension, r, len(row), raw.Columns)
		}
		for c, cell := range row {
			if cell == "" {
				return fmt.Errorf("%w: (%d, %d)", apperror.ErrInvalidSymbol, r, c)
			}
		}
		copy(board.cells[r*raw.Columns:], row)
	}

	*that = board

	return nil
}
