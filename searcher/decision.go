package searcher

import (
	"math"

	"othello/game"
)

// expand gives h its children and marks it internal so selection descends
// through it. Re-entering an expanded node only marks it internal. Terminal
// nodes never gain children.
func (t *tree) expand(h handle) {
	if t.materialize(h) {
		t.nodes[h].internal = true
	}
}

// materialize creates the children of h once: one per legal move, or a
// single pass child when the side to move is stuck. It reports whether h has
// children. Unlike expand it leaves the internal flag alone, so nodes
// populated during a rollout stay leaves for selection.
func (t *tree) materialize(h handle) bool {
	if t.nodes[h].expanded {
		return true
	}
	if t.isTerminal(h) {
		return false
	}

	n := &t.nodes[h]
	if n.moves == nil {
		n.moves = n.board.LegalMoves(n.player)
	}
	// moves is only needed until the children exist
	board, player, discs, moves := n.board, n.player, n.discs, n.moves
	opponent := player.Opponent()

	// n is invalid from here on: adding children may grow the arena
	children := make([]handle, 0, max(1, len(moves)))
	if len(moves) == 0 {
		children = append(children, t.addChild(h, board, opponent, discs, game.PassMove))
	}
	for _, p := range moves {
		next := board
		flipped := next.Apply(player, p)
		count := discs
		count[player] += flipped + 1
		count[opponent] -= flipped
		count[game.Empty]--
		children = append(children, t.addChild(h, next, opponent, count, game.Place(p)))
	}

	t.nodes[h].children = children
	t.nodes[h].moves = nil
	t.nodes[h].expanded = true
	t.metrics.AddNodes(len(children))
	return true
}

// selectLeaf walks down from the root through internal nodes, following the
// child with the best UCT score.
func (t *tree) selectLeaf() handle {
	h := rootNode
	for t.nodes[h].internal {
		h = t.pickChild(h)
	}
	return h
}

func (t *tree) pickChild(h handle) handle {
	children := t.nodes[h].children
	if len(children) == 0 {
		panic("internal node has no children")
	}

	best := nilNode
	maxScore := math.Inf(-1)
	for _, c := range children {
		child := &t.nodes[c]
		policy := newUCT(t.cSquared, float64(t.nodes[child.parentVisits].visits))
		score := policy.evaluate(float64(child.wins), float64(child.visits))
		if score == math.Inf(1) {
			return c
		}
		if score > maxScore {
			maxScore = score
			best = c
		}
	}

	if !best.isValid() {
		// Every child is visited and scored NaN: ln(N) of an unvisited parent
		panic("no admissible child to select")
	}
	return best
}

// rollout plays uniformly random moves from h until the game is over and
// scores the final position for player. It also returns the number of plies.
func (t *tree) rollout(h handle, player game.Cell) (int, int) {
	plies := 0
	for !t.isTerminal(h) {
		t.materialize(h)
		children := t.nodes[h].children
		h = children[t.rand.Intn(len(children))]
		plies++
	}

	discs := t.nodes[h].discs
	if discs[player] > discs[player.Opponent()] {
		return Win, plies
	}
	return Loss, plies
}

// backup records the outcome on every node from h up to the root.
func (t *tree) backup(h handle, win int) {
	for h.isValid() {
		n := &t.nodes[h]
		n.visits++
		n.wins += win
		h = n.parent
	}
}

// simulate runs one selection, expansion, rollout and backup episode.
func (t *tree) simulate() {
	h := t.selectLeaf()
	if !t.isTerminal(h) && t.nodes[h].visits != 0 {
		t.expand(h)
		h = t.nodes[h].children[0]
	}
	win, plies := t.rollout(h, t.root().player)
	t.backup(h, win)
	t.metrics.AddPlayout(plies)
}
