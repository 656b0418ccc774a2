package ui

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"connect4/game"

	"github.com/muesli/termenv"
)

// Renderer draws boards as text, colored when the output supports it.
type Renderer struct {
	out *termenv.Output
}

func NewRenderer(w io.Writer, opts ...termenv.OutputOption) *Renderer {
	return &Renderer{out: termenv.NewOutput(w, opts...)}
}

var symbols = map[game.Cell]string{
	game.Empty:   ".",
	game.PlayerA: "X",
	game.PlayerB: "O",
}

func (r *Renderer) colorOf(c game.Cell) termenv.Color {
	switch c {
	case game.PlayerA:
		return r.out.Color("1") // red
	case game.PlayerB:
		return r.out.Color("3") // yellow
	default:
		return r.out.Color("4") // blue
	}
}

// Board renders rows top to bottom followed by the column numbers. Cells on the
// winning line are drawn reversed.
func (r *Renderer) Board(b game.Board) string {
	onLine := map[game.Position]bool{}
	for _, p := range b.WinningLine() {
		onLine[p] = true
	}

	var sb strings.Builder
	for row := 0; row < b.Rows(); row++ {
		for col := 0; col < b.Cols(); col++ {
			if col > 0 {
				sb.WriteByte(' ')
			}
			cell := b.CellAt(row, col)
			style := r.out.String(symbols[cell]).Foreground(r.colorOf(cell))
			if onLine[game.Position{Row: row, Col: col}] {
				style = style.Bold().Reverse()
			}
			sb.WriteString(style.String())
		}
		sb.WriteByte('\n')
	}
	for col := 0; col < b.Cols(); col++ {
		if col > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(strconv.Itoa(col % 10))
	}
	sb.WriteByte('\n')
	return sb.String()
}

// Outcome describes a finished game, or "" while it is still running.
func (r *Renderer) Outcome(state *game.GameState) string {
	if !state.IsTerminal() {
		return ""
	}
	if winner, ok := state.Winner(); ok {
		return r.out.String(fmt.Sprintf("Winner: %s", strings.ToUpper(winner.String()))).Bold().Foreground(r.colorOf(winner)).String()
	}
	return r.out.String("Draw!").Bold().String()
}

// Print writes the board and, when the game is over, its outcome.
func (r *Renderer) Print(state *game.GameState) error {
	text := r.Board(state.Board())
	if outcome := r.Outcome(state); outcome != "" {
		text += outcome + "\n"
	}
	_, err := io.WriteString(r.out, text)
	return err
}
