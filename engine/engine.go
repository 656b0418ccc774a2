package engine

import "connect4/game"

// Update records one played move and the resulting position.
type Update struct {
	Step int
	Move game.Move
	Hash game.StateHash
}

// Result is the outcome of one finished game.
type Result struct {
	Winner game.Player // NoPlayer for a draw
	Line   []game.Position
	Moves  []Update
}
