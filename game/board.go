package game

import (
	"fmt"

	"connect4/meta"
)

// Position addresses a single cell. Row 0 is the top row.
type Position struct {
	Row int
	Col int
}

// Board is a fixed-size grid stored inline, so assigning a Board copies it.
type Board struct {
	cells   [meta.MAX_ROWS][meta.MAX_COLS]Cell
	rows    int
	cols    int
	connect int
}

// NewBoard returns an empty board for the given config.
func NewBoard(cfg Config) (Board, error) {
	if err := cfg.Validate(); err != nil {
		return Board{}, err
	}
	return Board{rows: cfg.Rows, cols: cfg.Cols, connect: cfg.ConnectN}, nil
}

func (b *Board) Rows() int     { return b.rows }
func (b *Board) Cols() int     { return b.cols }
func (b *Board) ConnectN() int { return b.connect }

func (b *Board) Config() Config {
	return Config{Rows: b.rows, Cols: b.cols, ConnectN: b.connect}
}

// CellAt returns the content of a cell, or Empty outside the board.
func (b *Board) CellAt(row, col int) Cell {
	if !b.inside(row, col) {
		return Empty
	}
	return b.cells[row][col]
}

func (b *Board) inside(row, col int) bool {
	return row >= 0 && row < b.rows && col >= 0 && col < b.cols
}

// LegalMoves lists the columns whose top cell is empty, in ascending order.
func (b *Board) LegalMoves() []int {
	moves := make([]int, 0, b.cols)
	for col := 0; col < b.cols; col++ {
		if b.cells[0][col] == Empty {
			moves = append(moves, col)
		}
	}
	return moves
}

func (b *Board) IsLegal(col int) bool {
	return col >= 0 && col < b.cols && b.cells[0][col] == Empty
}

// Drop places the player's piece in the lowest empty row of col and returns that row.
// The board is left untouched on error.
func (b *Board) Drop(col int, player Player) (int, error) {
	if col < 0 || col >= b.cols {
		return -1, fmt.Errorf("drop into column %d: %w", col, ErrColumnOutOfRange)
	}
	if player != PlayerA && player != PlayerB {
		return -1, fmt.Errorf("drop into column %d: %w: no player", col, ErrIllegalMove)
	}
	for row := b.rows - 1; row >= 0; row-- {
		if b.cells[row][col] == Empty {
			b.cells[row][col] = player
			return row, nil
		}
	}
	return -1, fmt.Errorf("drop into column %d: %w", col, ErrColumnFull)
}

// UndoLast clears the cell recorded by m. The cell must hold m.Player and be the
// top piece of its column.
func (b *Board) UndoLast(m Move) error {
	if !b.inside(m.Row, m.Col) {
		return fmt.Errorf("undo at (%d, %d): %w", m.Row, m.Col, ErrColumnOutOfRange)
	}
	if b.cells[m.Row][m.Col] != m.Player || m.Player == Empty {
		return fmt.Errorf("undo at (%d, %d): %w: cell does not hold %v", m.Row, m.Col, ErrIllegalMove, m.Player)
	}
	if m.Row > 0 && b.cells[m.Row-1][m.Col] != Empty {
		return fmt.Errorf("undo at (%d, %d): %w: cell is covered", m.Row, m.Col, ErrIllegalMove)
	}
	b.cells[m.Row][m.Col] = Empty
	return nil
}

func (b *Board) IsFull() bool {
	return len(b.LegalMoves()) == 0
}

// Count returns the number of occupied cells.
func (b *Board) Count() int {
	n := 0
	for row := 0; row < b.rows; row++ {
		for col := 0; col < b.cols; col++ {
			if b.cells[row][col] != Empty {
				n++
			}
		}
	}
	return n
}

// Winner reports the owner of the first complete line found.
func (b *Board) Winner() (Player, bool) {
	line := b.WinningLine()
	if line == nil {
		return NoPlayer, false
	}
	return b.cells[line[0].Row][line[0].Col], true
}

// scan directions in check order: horizontal, vertical, down-right, up-right
var directions = [4][2]int{{0, 1}, {1, 0}, {1, 1}, {-1, 1}}

// WinningLine returns the cells of the first complete line found, or nil.
func (b *Board) WinningLine() []Position {
	for _, d := range directions {
		for row := 0; row < b.rows; row++ {
			for col := 0; col < b.cols; col++ {
				if b.lineAt(row, col, d[0], d[1]) {
					line := make([]Position, b.connect)
					for i := range line {
						line[i] = Position{Row: row + i*d[0], Col: col + i*d[1]}
					}
					return line
				}
			}
		}
	}
	return nil
}

func (b *Board) lineAt(row, col, dr, dc int) bool {
	token := b.cells[row][col]
	if token == Empty {
		return false
	}
	endRow, endCol := row+(b.connect-1)*dr, col+(b.connect-1)*dc
	if !b.inside(endRow, endCol) {
		return false
	}
	for i := 1; i < b.connect; i++ {
		if b.cells[row+i*dr][col+i*dc] != token {
			return false
		}
	}
	return true
}
