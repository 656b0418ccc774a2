package game

import (
	"errors"
	"fmt"

	"connect4/meta"
)

var (
	ErrColumnOutOfRange = errors.New("column out of range")
	ErrColumnFull       = errors.New("column is full")
	ErrIllegalMove      = errors.New("illegal move")
	ErrEmptyHistory     = errors.New("no moves to undo")
	ErrInvalidConfig    = errors.New("invalid board config")
)

// Player identifies the owner of a piece. NoPlayer doubles as the empty cell.
type Player uint8

const (
	NoPlayer Player = iota
	PlayerA
	PlayerB
)

// Cell is the content of one board square.
type Cell = Player

const Empty Cell = NoPlayer

func (p Player) Opponent() Player {
	switch p {
	case PlayerA:
		return PlayerB
	case PlayerB:
		return PlayerA
	default:
		return NoPlayer
	}
}

func (p Player) String() string {
	switch p {
	case PlayerA:
		return "red"
	case PlayerB:
		return "yellow"
	default:
		return ""
	}
}

// Config holds the board dimensions and the line length needed to win.
type Config struct {
	Rows     int
	Cols     int
	ConnectN int
}

func DefaultConfig() Config {
	return Config{Rows: meta.ROWS, Cols: meta.COLS, ConnectN: meta.CONNECT}
}

func (c Config) Validate() error {
	if c.Rows < 1 || c.Rows > meta.MAX_ROWS {
		return fmt.Errorf("%w: rows %d not in [1, %d]", ErrInvalidConfig, c.Rows, meta.MAX_ROWS)
	}
	if c.Cols < 1 || c.Cols > meta.MAX_COLS {
		return fmt.Errorf("%w: cols %d not in [1, %d]", ErrInvalidConfig, c.Cols, meta.MAX_COLS)
	}
	if c.ConnectN < 2 || (c.ConnectN > c.Rows && c.ConnectN > c.Cols) {
		return fmt.Errorf("%w: connect length %d does not fit a %dx%d board", ErrInvalidConfig, c.ConnectN, c.Rows, c.Cols)
	}
	return nil
}
