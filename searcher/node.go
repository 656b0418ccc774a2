package searcher

import (
	"connect4/game"
	"connect4/utils"
)

const (
	rootIndex = 0
	noParent  = -1
	noMove    = -1
)

// node is one vertex of the search tree. Links are indices into tree.nodes.
type node struct {
	state    *game.GameState // position after move
	parent   int
	move     int
	mover    game.Player // player who played move
	children []int
	untried  []int
	visits   int
	wins     float64
}

// tree owns every node of one search in a flat table.
type tree struct {
	nodes []node
}

func newTree(state *game.GameState) *tree {
	t := &tree{nodes: make([]node, 0, 256)}
	t.add(noParent, noMove, state)
	return t
}

// add appends a node for state and links it under parent. The node's untried
// moves are computed once here; a won position has none.
func (t *tree) add(parent, move int, state *game.GameState) int {
	index := len(t.nodes)
	t.nodes = append(t.nodes, node{
		state:   state,
		parent:  parent,
		move:    move,
		mover:   state.Player().Opponent(),
		untried: frontier(state),
	})
	if parent != noParent {
		p := &t.nodes[parent]
		p.children = append(p.children, index)
		p.untried = utils.Remove(p.untried, move)
	}
	return index
}

func frontier(state *game.GameState) []int {
	if state.IsTerminal() {
		return nil
	}
	return state.LegalMoves()
}

func (t *tree) size() int {
	return len(t.nodes)
}

func (t *tree) root() *node {
	return &t.nodes[rootIndex]
}

// uctValue scores n for selection under a parent with parentVisits visits.
func (n *node) uctValue(parentVisits int, c float64) float64 {
	return newUCT(c, parentVisits).evaluate(n.wins, n.visits)
}

// bestUCTChild returns the index of the child maximising UCT. Ties keep the earliest child.
func (t *tree) bestUCTChild(index int, c float64) int {
	parent := &t.nodes[index]
	policy := newUCT(c, parent.visits)

	best := noParent
	bestScore := 0.0
	for _, ci := range parent.children {
		child := &t.nodes[ci]
		score := policy.evaluate(child.wins, child.visits)
		if best == noParent || score > bestScore {
			best = ci
			bestScore = score
		}
	}
	return best
}

// mostVisitedChild returns the index of the root child with most visits, or noParent.
func (t *tree) mostVisitedChild(index int) int {
	best := noParent
	maxVisits := -1
	for _, ci := range t.nodes[index].children {
		if v := t.nodes[ci].visits; v > maxVisits {
			maxVisits = v
			best = ci
		}
	}
	return best
}

func (t *tree) depth(index int) int {
	d := 0
	for t.nodes[index].parent != noParent {
		index = t.nodes[index].parent
		d++
	}
	return d
}
