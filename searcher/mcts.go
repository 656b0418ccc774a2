package searcher

import (
	"context"
	"fmt"
	"time"

	"connect4/experiments/metrics"
	"connect4/game"
	"connect4/meta"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

type Option func(mcts *MCTS)

// MCTS runs single-threaded UCT searches. A fresh tree is built for every call
// and dropped when the call returns.
type MCTS struct {
	iterations  int
	duration    time.Duration
	exploration float64
	scoring     Scoring
	rng         *rand.Rand
	metrics     metrics.Collector
}

func WithIterations(iterations int) Option {
	return func(m *MCTS) {
		if iterations > 0 {
			m.iterations = iterations
		}
	}
}

// WithDuration adds a wall-clock limit checked between iterations.
func WithDuration(duration time.Duration) Option {
	return func(m *MCTS) {
		if duration > 0 {
			m.duration = duration
		}
	}
}

func WithExplorationConstant(c float64) Option {
	return func(m *MCTS) {
		if c >= 0 {
			m.exploration = c
		}
	}
}

func WithScoring(scoring Scoring) Option {
	return func(m *MCTS) {
		m.scoring = scoring
	}
}

// WithRand sets the random source used for expansion and rollouts.
func WithRand(rng *rand.Rand) Option {
	return func(m *MCTS) {
		if rng != nil {
			m.rng = rng
		}
	}
}

func WithSeed(seed uint64) Option {
	return func(m *MCTS) {
		m.rng = rand.New(rand.NewSource(seed))
	}
}

func WithMetrics() Option {
	return func(m *MCTS) {
		m.metrics = metrics.NewCollector()
	}
}

func NewMCTS(options ...Option) *MCTS {
	m := &MCTS{ // Default values
		iterations:  meta.ITERATIONS,
		exploration: meta.EXPLORATION,
		scoring:     RootPerspective,
		metrics:     metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(m)
	}
	if m.rng == nil {
		m.rng = rand.New(rand.NewSource(uint64(time.Now().UnixNano())))
	}
	return m
}

// Search returns the most visited root move.
func (m *MCTS) Search(ctx context.Context, state *game.GameState) (int, error) {
	result, _, err := m.Simulate(ctx, state)
	if err != nil {
		return noMove, err
	}
	return result.Move, nil
}

// Simulate runs up to the iteration budget from a copy of state and reports the
// root statistics. It stops early when ctx is done or the duration elapses.
func (m *MCTS) Simulate(ctx context.Context, state *game.GameState) (Result, metrics.SearchMetric, error) {
	if state.IsTerminal() {
		return Result{}, metrics.SearchMetric{}, ErrNoLegalMoves
	}

	start := time.Now()
	t := newTree(state.Copy())
	perspective := state.Player()

	m.metrics.Start(m.iterations, m.exploration, m.scoring.String())
	var deadline time.Time
	if m.duration > 0 {
		deadline = start.Add(m.duration)
	}

	iterations := 0
	for ; iterations < m.iterations; iterations++ {
		if ctx.Err() != nil {
			break
		}
		if !deadline.IsZero() && iterations > 0 && time.Now().After(deadline) {
			break
		}
		if err := m.iterate(t, perspective); err != nil {
			return Result{}, metrics.SearchMetric{}, err
		}
	}
	m.metrics.SetTreeSize(t.size())
	metric := m.metrics.Complete()

	best := t.mostVisitedChild(rootIndex)
	if best == noParent {
		if err := ctx.Err(); err != nil {
			return Result{}, metric, fmt.Errorf("search cancelled before first iteration: %w", err)
		}
		return Result{}, metric, ErrNoLegalMoves
	}

	result := Result{
		Move:       t.nodes[best].move,
		Player:     perspective,
		Iterations: iterations,
		Children:   make([]ChildStats, 0, len(t.root().children)),
	}
	for _, ci := range t.root().children {
		child := &t.nodes[ci]
		result.Children = append(result.Children, ChildStats{Move: child.move, Visits: child.visits, Wins: child.wins})
	}

	log.Debug().Msgf("search for %v chose column %d after %d iterations (%d nodes, %v)",
		perspective, result.Move, iterations, t.size(), time.Since(start))
	return result, metric, nil
}

// iterate runs one selection, expansion, rollout and backpropagation cycle.
func (m *MCTS) iterate(t *tree, perspective game.Player) error {
	working := t.root().state.Copy()

	leaf, err := m.selectThenExpand(t, working)
	if err != nil {
		return err
	}
	winner, moves, err := m.rollout(working)
	if err != nil {
		return err
	}
	m.backup(t, leaf, winner, perspective)

	m.metrics.AddRolloutMoves(moves)
	m.metrics.AddIteration(t.depth(leaf))
	return nil
}

// selectThenExpand descends by UCT while the node is fully expanded, then expands
// one random untried move if any remain. working tracks the position.
func (m *MCTS) selectThenExpand(t *tree, working *game.GameState) (int, error) {
	index := rootIndex
	for len(t.nodes[index].untried) == 0 && len(t.nodes[index].children) > 0 {
		index = t.bestUCTChild(index, m.exploration)
		if err := working.ApplyMove(t.nodes[index].move); err != nil {
			return index, fmt.Errorf("selection replay: %w", err)
		}
	}

	untried := t.nodes[index].untried
	if len(untried) == 0 { // Terminal node
		return index, nil
	}

	move := untried[m.rng.Intn(len(untried))]
	if err := working.ApplyMove(move); err != nil {
		return index, fmt.Errorf("expansion: %w", err)
	}
	return t.add(index, move, working.Copy()), nil
}

// rollout plays uniformly random moves until the game ends and returns the winner
// (NoPlayer for a draw) and the number of moves played.
func (m *MCTS) rollout(state *game.GameState) (game.Player, int, error) {
	moves := 0
	for !state.IsTerminal() {
		legal := state.LegalMoves()
		if len(legal) == 0 {
			break
		}
		if err := state.ApplyMove(legal[m.rng.Intn(len(legal))]); err != nil {
			return game.NoPlayer, moves, fmt.Errorf("rollout: %w", err)
		}
		moves++
	}
	winner, _ := state.Winner()
	return winner, moves, nil
}

// backup walks from leaf to the root, adding one visit and the node's reward.
func (m *MCTS) backup(t *tree, leaf int, winner, perspective game.Player) {
	for index := leaf; index != noParent; index = t.nodes[index].parent {
		n := &t.nodes[index]
		n.visits++
		n.wins += m.reward(n, winner, perspective)
	}
}

func (m *MCTS) reward(n *node, winner, perspective game.Player) float64 {
	switch m.scoring {
	case MoverPerspective:
		switch winner {
		case game.NoPlayer:
			return DRAW
		case n.mover:
			return WIN
		default:
			return LOSS
		}
	default:
		if winner == perspective {
			return WIN
		}
		return LOSS
	}
}
