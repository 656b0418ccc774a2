package experiments

import (
	"context"
	"fmt"
	"runtime"

	"connect4/engine"
	"connect4/experiments/metrics"
	"connect4/game"
	"connect4/searcher"
	"connect4/searcher/agent"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

// Experiment plays Games games for every match up. Agents swap colors every
// other game so both get to start.
type Experiment struct {
	Name        string
	Board       game.Config
	Games       int // Per match up
	Parallelism int // Concurrent games; each search stays single-threaded
	Seed        uint64
	Configs     []metrics.AgentConfig
	MatchUps    [][2]metrics.AgentConfig
}

// Tally counts results of one match up from the first agent's point of view.
type Tally struct {
	Agent1 int
	Agent2 int
	Wins   int
	Losses int
	Draws  int
}

type gameOutcome struct {
	record metrics.GameRecord
	moves  []metrics.MoveRecord
	winner int // agent ID
	draw   bool
}

// ScoringExperiment pits root-perspective scoring against mover-perspective scoring.
func ScoringExperiment(iterations, games int) Experiment {
	root := metrics.AgentConfig{ID: 1, Kind: "mcts", Iterations: iterations, Scoring: searcher.RootPerspective.String()}
	mover := metrics.AgentConfig{ID: 2, Kind: "mcts", Iterations: iterations, Scoring: searcher.MoverPerspective.String()}
	return Experiment{
		Name:     "scoring",
		Board:    game.DefaultConfig(),
		Games:    games,
		Configs:  []metrics.AgentConfig{root, mover},
		MatchUps: [][2]metrics.AgentConfig{{root, mover}},
	}
}

// BudgetExperiment pairs a baseline budget against smaller and larger budgets, plus a random agent.
func BudgetExperiment(baseline, games int) Experiment {
	base := metrics.AgentConfig{ID: 0, Kind: "mcts", Iterations: baseline, Scoring: searcher.MoverPerspective.String()}
	configs := []metrics.AgentConfig{
		{ID: 1, Kind: "random"},
		{ID: 2, Kind: "mcts", Iterations: baseline / 4, Scoring: base.Scoring},
		{ID: 3, Kind: "mcts", Iterations: baseline / 2, Scoring: base.Scoring},
		{ID: 4, Kind: "mcts", Iterations: baseline * 2, Scoring: base.Scoring},
	}
	// Each matchup pairs the baseline agent against one other config
	matchUps := [][2]metrics.AgentConfig{}
	for _, config := range configs {
		matchUps = append(matchUps, [2]metrics.AgentConfig{base, config})
	}
	return Experiment{
		Name:     "budget",
		Board:    game.DefaultConfig(),
		Games:    games,
		Configs:  append(configs, base),
		MatchUps: matchUps,
	}
}

// Run plays every game of exp and, when w is not nil, stores configs and records as CSV.
func Run(ctx context.Context, exp Experiment, w *metrics.Writer) ([]Tally, error) {
	parallelism := exp.Parallelism
	if parallelism <= 0 {
		parallelism = runtime.NumCPU()
	}

	log.Info().Msgf("starting %s experiment...", exp.Name)

	total := len(exp.MatchUps) * exp.Games
	outcomes := make([]gameOutcome, total)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(parallelism)
	for mi, matchup := range exp.MatchUps {
		for i := 0; i < exp.Games; i++ {
			id := mi*exp.Games + i + 1
			first, second := matchup[0], matchup[1]
			if i%2 == 1 {
				first, second = second, first
			}
			mi, i := mi, i // per-iteration copies (pre-Go 1.22 loop semantics)
			g.Go(func() error {
				outcome, err := runGame(ctx, exp.Board, id, first, second, exp.Seed)
				if err != nil {
					return fmt.Errorf("game %d: %w", id, err)
				}
				outcomes[id-1] = outcome
				log.Info().Msgf("completed matchup %d of %d game %d of %d with winner: %q",
					mi+1, len(exp.MatchUps), i+1, exp.Games, outcome.record.Winner)
				return nil
			})
		}
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	log.Info().Msgf("completed %s experiment", exp.Name)

	tallies := make([]Tally, len(exp.MatchUps))
	gameRecords := make([]metrics.GameRecord, 0, total)
	moveRecords := []metrics.MoveRecord{}
	for mi, matchup := range exp.MatchUps {
		tally := Tally{Agent1: matchup[0].ID, Agent2: matchup[1].ID}
		for _, outcome := range outcomes[mi*exp.Games : (mi+1)*exp.Games] {
			switch {
			case outcome.draw:
				tally.Draws++
			case outcome.winner == matchup[0].ID:
				tally.Wins++
			default:
				tally.Losses++
			}
			gameRecords = append(gameRecords, outcome.record)
			moveRecords = append(moveRecords, outcome.moves...)
		}
		tallies[mi] = tally
		log.Info().Msgf("matchup %d: agent %d vs agent %d: %d-%d-%d",
			mi+1, tally.Agent1, tally.Agent2, tally.Wins, tally.Losses, tally.Draws)
	}

	if w == nil {
		return tallies, nil
	}
	// Store experiment metadata and results
	if err := w.WriteAgentConfigs(exp.Configs); err != nil {
		return tallies, err
	}
	if err := w.WriteGameRecords(gameRecords); err != nil {
		return tallies, err
	}
	if err := w.WriteMoveRecords(moveRecords); err != nil {
		return tallies, err
	}
	log.Info().Msgf("stored %s records in %s", exp.Name, w.Dir())
	return tallies, nil
}

// runGame executes a single game between two agents
func runGame(ctx context.Context, board game.Config, id int, config1, config2 metrics.AgentConfig, seed uint64) (gameOutcome, error) {
	agent1, err := CreateAgent(config1, seed+uint64(id)*2)
	if err != nil {
		return gameOutcome{}, err
	}
	agent2, err := CreateAgent(config2, seed+uint64(id)*2+1)
	if err != nil {
		return gameOutcome{}, err
	}
	e, err := engine.LocalEngine(board, []agent.Agent{agent1, agent2})
	if err != nil {
		return gameOutcome{}, err
	}

	result, gameMetric, moveMetrics, err := e.Run(ctx)
	if err != nil {
		return gameOutcome{}, err
	}

	outcome := gameOutcome{
		record: metrics.GameRecord{ID: id, Agent1: config1.ID, Agent2: config2.ID, GameMetric: gameMetric},
	}
	switch result.Winner {
	case game.PlayerA:
		outcome.winner = config1.ID
	case game.PlayerB:
		outcome.winner = config2.ID
	default:
		outcome.draw = true
	}
	for _, mm := range moveMetrics {
		outcome.moves = append(outcome.moves, metrics.MoveRecord{Game: id, MoveMetric: mm})
	}
	return outcome, nil
}

// CreateAgent builds the agent described by config. A zero seed means time-seeded.
func CreateAgent(config metrics.AgentConfig, seed uint64) (agent.Agent, error) {
	switch config.Kind {
	case "random":
		return agent.NewRandomAgent(seed), nil
	case "mcts", "":
		options := []searcher.Option{searcher.WithMetrics()}

		if config.Iterations > 0 {
			options = append(options, searcher.WithIterations(config.Iterations))
		}
		if config.Duration > 0 {
			options = append(options, searcher.WithDuration(config.Duration))
		}
		if config.Exploration > 0 {
			options = append(options, searcher.WithExplorationConstant(config.Exploration))
		}
		if config.Scoring != "" {
			scoring, ok := searcher.ParseScoring(config.Scoring)
			if !ok {
				return nil, fmt.Errorf("agent %d: unknown scoring %q", config.ID, config.Scoring)
			}
			options = append(options, searcher.WithScoring(scoring))
		}
		if seed != 0 {
			options = append(options, searcher.WithSeed(seed))
		}
		return agent.NewEvaluationAgent(searcher.NewMCTS(options...)), nil
	default:
		return nil, fmt.Errorf("agent %d: unknown kind %q", config.ID, config.Kind)
	}
}
