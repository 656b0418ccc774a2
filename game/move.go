package game

// Move is one entry of the game history.
type Move struct {
	Row    int
	Col    int
	Player Player
}

type StateHash uint64
