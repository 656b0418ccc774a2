// meta/meta.go
package meta

import "time"

// ROWS is the default number of board rows.
const ROWS = 6

// COLS is the default number of board columns.
const COLS = 7

// CONNECT is the default line length needed to win.
const CONNECT = 4

// MAX_ROWS and MAX_COLS bound the board so snapshots stay fixed-size values.
const MAX_ROWS = 16
const MAX_COLS = 16

// EXPLORATION is the default UCT exploration constant (~sqrt(2)).
const EXPLORATION = 1.41

// ITERATIONS defines the default number of MCTS iterations per move.
const ITERATIONS = 1000

// INTERACTIVE_ITERATIONS is the budget used when a human is waiting on the computer.
const INTERACTIVE_ITERATIONS = 500

// MOVE_DELAY is the cosmetic pause before the computer plays in interactive modes.
const MOVE_DELAY = 500 * time.Millisecond
