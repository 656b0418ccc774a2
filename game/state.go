package game

import (
	"encoding/binary"
	"fmt"
	"hash/fnv"
)

// GameState wraps a Board with the player to move and the move history.
type GameState struct {
	board   Board
	current Player
	history []Move
}

// NewGameState returns an empty game with PlayerA to move.
func NewGameState(cfg Config) (*GameState, error) {
	board, err := NewBoard(cfg)
	if err != nil {
		return nil, err
	}
	return &GameState{board: board, current: PlayerA}, nil
}

// NewStandardGameState returns an empty 6x7 connect-four game.
func NewStandardGameState() *GameState {
	gs, err := NewGameState(DefaultConfig())
	if err != nil {
		panic(fmt.Sprintf("default config rejected: %v", err))
	}
	return gs
}

// Replay plays the given columns in order from an empty board.
func Replay(cfg Config, columns []int) (*GameState, error) {
	gs, err := NewGameState(cfg)
	if err != nil {
		return nil, err
	}
	for i, col := range columns {
		if err := gs.ApplyMove(col); err != nil {
			return nil, fmt.Errorf("replay move %d: %w", i+1, err)
		}
	}
	return gs, nil
}

// Copy returns a deep copy that shares nothing with gs.
func (gs *GameState) Copy() *GameState {
	historyCopy := make([]Move, len(gs.history), cap(gs.history))
	copy(historyCopy, gs.history)

	return &GameState{
		board:   gs.board, // Board is a value, assignment copies the cells
		current: gs.current,
		history: historyCopy,
	}
}

// Player returns the player to move.
func (gs *GameState) Player() Player {
	return gs.current
}

// Board returns a copy of the board.
func (gs *GameState) Board() Board {
	return gs.board
}

func (gs *GameState) Config() Config {
	return gs.board.Config()
}

func (gs *GameState) CellAt(row, col int) Cell {
	return gs.board.CellAt(row, col)
}

// History returns a copy of the moves played so far, most recent last.
func (gs *GameState) History() []Move {
	historyCopy := make([]Move, len(gs.history))
	copy(historyCopy, gs.history)
	return historyCopy
}

func (gs *GameState) LastMove() (Move, bool) {
	if len(gs.history) == 0 {
		return Move{}, false
	}
	return gs.history[len(gs.history)-1], true
}

func (gs *GameState) LegalMoves() []int {
	return gs.board.LegalMoves()
}

// ApplyMove drops the current player's piece into col, records it and passes the turn.
// On error nothing changes.
func (gs *GameState) ApplyMove(col int) error {
	if col < 0 || col >= gs.board.Cols() {
		return fmt.Errorf("%w: %w: column %d", ErrIllegalMove, ErrColumnOutOfRange, col)
	}
	if !gs.board.IsLegal(col) {
		return fmt.Errorf("%w: %w: column %d", ErrIllegalMove, ErrColumnFull, col)
	}

	row, err := gs.board.Drop(col, gs.current)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrIllegalMove, err)
	}
	gs.history = append(gs.history, Move{Row: row, Col: col, Player: gs.current})
	gs.current = gs.current.Opponent()
	return nil
}

// Undo takes back the last move. The turn goes to the player who made that move.
func (gs *GameState) Undo() error {
	last, ok := gs.LastMove()
	if !ok {
		return ErrEmptyHistory
	}
	if err := gs.board.UndoLast(last); err != nil {
		return fmt.Errorf("undo: %w", err)
	}
	gs.history = gs.history[:len(gs.history)-1]
	gs.current = last.Player
	return nil
}

func (gs *GameState) Winner() (Player, bool) {
	return gs.board.Winner()
}

// IsTerminal reports a completed line or a full board.
func (gs *GameState) IsTerminal() bool {
	if _, won := gs.board.Winner(); won {
		return true
	}
	return gs.board.IsFull()
}

func (gs *GameState) Hash() StateHash {
	hasher := fnv.New64a()

	// Hash dimensions and current player
	binary.Write(hasher, binary.LittleEndian, int64(gs.board.Rows()))
	binary.Write(hasher, binary.LittleEndian, int64(gs.board.Cols()))
	binary.Write(hasher, binary.LittleEndian, int64(gs.current))

	// Hash cells
	row := make([]byte, gs.board.Cols())
	for r := 0; r < gs.board.Rows(); r++ {
		for c := range row {
			row[c] = byte(gs.board.CellAt(r, c))
		}
		hasher.Write(row)
	}

	return StateHash(hasher.Sum64())
}
