package metrics

import (
	"sync/atomic"
	"time"
)

type SearchMetric struct {
	Budget       int // iteration budget
	Exploration  float64
	Scoring      string
	Duration     time.Duration
	Iterations   int // iterations actually run
	RolloutMoves int
	TreeSize     int
	MaxDepth     int
}

type MoveMetric struct {
	Step   int
	Player string
	Move   int
	SearchMetric
}

type GameMetric struct {
	StartingPlayer string
	Winner         string // "" for a draw
	StartTime      time.Time
	EndTime        time.Time
	Duration       time.Duration
	TotalMoves     int
}

type Collector interface {
	Start(budget int, exploration float64, scoring string)
	AddIteration(depth int)
	AddRolloutMoves(n int)
	SetTreeSize(n int)
	Complete() SearchMetric
}

type collector struct {
	budget       int
	exploration  float64
	scoring      string
	startTime    time.Time
	iterations   atomic.Int32
	rolloutMoves atomic.Int64
	treeSize     atomic.Int32
	maxDepth     atomic.Int32
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(budget int, exploration float64, scoring string) {
	m.startTime = time.Now()
	m.budget = budget
	m.exploration = exploration
	m.scoring = scoring
	m.iterations.Store(0)
	m.rolloutMoves.Store(0)
	m.treeSize.Store(0)
	m.maxDepth.Store(0)
}

func (m *collector) AddIteration(depth int) {
	m.iterations.Add(1)
	for {
		current := m.maxDepth.Load()
		if int32(depth) <= current || m.maxDepth.CompareAndSwap(current, int32(depth)) {
			return
		}
	}
}

func (m *collector) AddRolloutMoves(n int) {
	m.rolloutMoves.Add(int64(n))
}

func (m *collector) SetTreeSize(n int) {
	m.treeSize.Store(int32(n))
}

func (m *collector) Complete() SearchMetric {
	return SearchMetric{
		Budget:       m.budget,
		Exploration:  m.exploration,
		Scoring:      m.scoring,
		Duration:     time.Since(m.startTime),
		Iterations:   int(m.iterations.Load()),
		RolloutMoves: int(m.rolloutMoves.Load()),
		TreeSize:     int(m.treeSize.Load()),
		MaxDepth:     int(m.maxDepth.Load()),
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(budget int, exploration float64, scoring string) {}
func (m *dummyCollector) AddIteration(depth int)                              {}
func (m *dummyCollector) AddRolloutMoves(n int)                               {}
func (m *dummyCollector) SetTreeSize(n int)                                   {}
func (m *dummyCollector) Complete() SearchMetric                              { return SearchMetric{} }
