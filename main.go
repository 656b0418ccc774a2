package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"time"

	"connect4/experiments"
	"connect4/experiments/metrics"
	"connect4/game"
	"connect4/meta"
	"connect4/searcher"
	"connect4/searcher/agent"
	"connect4/ui"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type config struct {
	mode        string
	board       game.Config
	iterations  int
	exploration float64
	scoring     string
	seed        uint64
	games       int
	parallelism int
	out         string
	delay       time.Duration
	verbose     bool
}

func parseFlags(args []string) (config, error) {
	var c config
	fs := flag.NewFlagSet("connect4", flag.ContinueOnError)
	fs.StringVar(&c.mode, "mode", "pvc", "pvp, pvc, cvc, scoring, budget or throughput")
	fs.IntVar(&c.board.Rows, "rows", meta.ROWS, "board rows")
	fs.IntVar(&c.board.Cols, "cols", meta.COLS, "board columns")
	fs.IntVar(&c.board.ConnectN, "connect", meta.CONNECT, "pieces in a row needed to win")
	fs.IntVar(&c.iterations, "iterations", meta.INTERACTIVE_ITERATIONS, "MCTS iterations per move")
	fs.Float64Var(&c.exploration, "c", meta.EXPLORATION, "UCT exploration constant")
	fs.StringVar(&c.scoring, "scoring", searcher.RootPerspective.String(), "backpropagation scoring: root or mover")
	fs.Uint64Var(&c.seed, "seed", 0, "random seed (0 seeds from the clock)")
	fs.IntVar(&c.games, "games", 20, "games per match up in experiments")
	fs.IntVar(&c.parallelism, "parallel", 0, "concurrent games in experiments (0 = number of CPUs)")
	fs.StringVar(&c.out, "out", "experiments", "directory for experiment CSV files")
	fs.DurationVar(&c.delay, "delay", meta.MOVE_DELAY, "pause before the computer moves")
	fs.BoolVar(&c.verbose, "v", false, "debug logging")
	if err := fs.Parse(args); err != nil {
		return c, err
	}
	if err := c.board.Validate(); err != nil {
		return c, err
	}
	if _, ok := searcher.ParseScoring(c.scoring); !ok {
		return c, fmt.Errorf("unknown scoring %q", c.scoring)
	}
	return c, nil
}

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})

	c, err := parseFlags(os.Args[1:])
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		log.Fatal().Err(err).Msg("invalid arguments")
	}
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if c.verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, c, os.Stdin, os.Stdout); err != nil {
		log.Fatal().Err(err).Msgf("%s failed", c.mode)
	}
}

func run(ctx context.Context, c config, in io.Reader, out io.Writer) error {
	switch c.mode {
	case "pvp", "pvc", "cvc":
		return play(ctx, c, in, out)
	case "scoring", "budget":
		exp := experiments.ScoringExperiment(c.iterations, c.games)
		if c.mode == "budget" {
			exp = experiments.BudgetExperiment(c.iterations, c.games)
		}
		exp.Board = c.board
		exp.Parallelism = c.parallelism
		exp.Seed = c.seed
		w, err := metrics.NewWriter(c.out, exp.Name)
		if err != nil {
			return err
		}
		_, err = experiments.Run(ctx, exp, w)
		return err
	case "throughput":
		_, err := experiments.RunThroughputExperiment(ctx, []int{100, 500, 1000, 5000}, c.seed)
		return err
	default:
		return fmt.Errorf("unknown mode %q", c.mode)
	}
}

// play runs an interactive game. In pvc the human plays red.
func play(ctx context.Context, c config, in io.Reader, out io.Writer) error {
	state, err := game.NewGameState(c.board)
	if err != nil {
		return err
	}
	scoring, _ := searcher.ParseScoring(c.scoring)
	options := []searcher.Option{searcher.WithExplorationConstant(c.exploration), searcher.WithScoring(scoring)}

	renderer := ui.NewRenderer(out)
	input := bufio.NewScanner(in)
	for !state.IsTerminal() {
		if err := renderer.Print(state); err != nil {
			return err
		}

		human := c.mode == "pvp" || (c.mode == "pvc" && state.Player() == game.PlayerA)
		if !human {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(c.delay):
			}
			moveOptions := options
			if c.seed != 0 {
				moveOptions = append(moveOptions[:len(options):len(options)], searcher.WithSeed(c.seed+uint64(len(state.History()))))
			}
			move, err := agent.ChooseMove(state, c.iterations, moveOptions...)
			if err != nil {
				return err
			}
			log.Info().Msgf("computer (%v) plays column %d", state.Player(), move)
			if err := state.ApplyMove(move); err != nil {
				return err
			}
			continue
		}

		fmt.Fprintf(out, "%v to move (column, u to undo): ", state.Player())
		if !input.Scan() {
			if err := input.Err(); err != nil {
				return err
			}
			return io.EOF
		}
		if err := humanTurn(c, state, strings.TrimSpace(input.Text())); err != nil {
			fmt.Fprintln(out, err)
		}
	}
	return renderer.Print(state)
}

// humanTurn applies one line of input. Undo in pvc also takes back the computer's reply.
func humanTurn(c config, state *game.GameState, line string) error {
	if line == "u" {
		undos := 1
		if c.mode == "pvc" {
			undos = 2
		}
		for i := 0; i < undos; i++ {
			if err := state.Undo(); err != nil {
				return err
			}
		}
		return nil
	}
	col, err := strconv.Atoi(line)
	if err != nil {
		return fmt.Errorf("not a column: %q", line)
	}
	return state.ApplyMove(col)
}
