package searcher

import (
	"testing"

	"github.com/stretchr/testify/require"

	"othello/game"
	"othello/metrics"
)

/**
Tests the tree operations of a single search:
- expansion: one child per legal move, a pass child when stuck, no-op on
  terminal nodes, idempotent re-entry
- selection: unvisited children first, strict max with earlier ties winning,
  panic without admissible children
- rollout: random descent to a terminal node, scored for the root player
- backup: every node from the entry to the root counts the outcome
*/

// firstRand always picks the first child.
type firstRand struct{}

func (firstRand) Intn(int) int { return 0 }

func newTestTree(board game.Board, player game.Cell) *tree {
	return newTree(board, player, CSquared, firstRand{}, metrics.NewDummyCollector())
}

func fullBoard(black int) game.Board {
	var b game.Board
	for i := 0; i < game.Cells; i++ {
		c := game.White
		if i < black {
			c = game.Black
		}
		b[i/game.Size][i%game.Size] = c
	}
	return b
}

// passBoard is all black except an empty corner next to one white disc:
// black can take the corner, white has nowhere to go.
func passBoard() game.Board {
	b := fullBoard(game.Cells)
	b[0][0] = game.Empty
	b[0][1] = game.White
	return b
}

func TestTreeExpand(t *testing.T) {
	t.Run("expanding the opening", func(t *testing.T) {
		tr := newTestTree(game.NewBoard(), game.Black)

		tr.expand(rootNode)

		root := tr.root()
		require.True(t, root.expanded, "Root should be expanded")
		require.True(t, root.internal, "Root should be internal")
		require.Len(t, root.children, 4, "Root should have one child per legal move")
		wantMoves := []game.Point{{Row: 2, Col: 3}, {Row: 3, Col: 2}, {Row: 4, Col: 5}, {Row: 5, Col: 4}}
		for i, c := range root.children {
			child := tr.nodes[c]
			require.Equal(t, game.Place(wantMoves[i]), child.move, "Children should follow move order")
			require.Equal(t, game.White, child.player, "Opponent should move next")
			require.Equal(t, rootNode, child.parent, "Child should point to its parent")
			require.Equal(t, rootNode, child.parentVisits, "Child should read its parent's visits")
			require.Equal(t, child.board.Count(), child.discs, "Cached discs should match a recount")
			require.False(t, child.internal, "Child should start as a leaf")
		}
		require.Nil(t, root.moves, "Move list should be released once children exist")
		require.Equal(t, rootNode, root.parentVisits, "Root should read its own visits")
		require.Equal(t, nilNode, root.parent, "Root should have no parent")
	})

	t.Run("expanding a stuck player into a pass", func(t *testing.T) {
		board := passBoard()
		tr := newTestTree(board, game.White)

		tr.expand(rootNode)

		root := tr.root()
		require.Len(t, root.children, 1, "Stuck player should get exactly one child")
		child := tr.nodes[root.children[0]]
		require.True(t, child.move.Pass, "Child should be a pass")
		require.Equal(t, board, child.board, "Pass should not change the board")
		require.Equal(t, game.Black, child.player, "Pass should hand the move over")
		require.Equal(t, root.discs, child.discs, "Pass should keep the disc counts")
	})

	t.Run("skipping a terminal node", func(t *testing.T) {
		tr := newTestTree(fullBoard(40), game.Black)

		tr.expand(rootNode)

		root := tr.root()
		require.Empty(t, root.children, "Terminal node should not gain children")
		require.False(t, root.expanded, "Terminal node should not be expanded")
		require.False(t, root.internal, "Terminal node should stay a leaf")
	})

	t.Run("re-entering an expanded node", func(t *testing.T) {
		tr := newTestTree(game.NewBoard(), game.Black)

		require.True(t, tr.materialize(rootNode), "Root should get children")
		require.False(t, tr.root().internal, "Materializing should not mark internal")
		children := tr.root().children
		size := len(tr.nodes)

		tr.expand(rootNode)

		require.True(t, tr.root().internal, "Expansion should mark internal")
		require.Equal(t, children, tr.root().children, "Children should not be rebuilt")
		require.Len(t, tr.nodes, size, "No node should be added")
	})

	t.Run("keeping disc counts in sync", func(t *testing.T) {
		tr := newTestTree(game.NewBoard(), game.Black)
		tr.rand = rngFromSeed(5)

		for i := 0; i < 50; i++ {
			tr.simulate()
		}

		for i := range tr.nodes {
			n := &tr.nodes[i]
			require.Equal(t, n.board.Count(), n.discs, "Cached discs should match a recount of node %d", i)
			if n.expanded {
				require.Nil(t, n.moves, "Expanded node %d should not keep its move list", i)
			}
		}
	})
}

func TestTreePickChild(t *testing.T) {
	setup := func(stats ...[2]int) *tree {
		tr := newTestTree(game.NewBoard(), game.Black)
		tr.expand(rootNode)
		tr.root().visits = 10
		for i, s := range stats {
			child := &tr.nodes[tr.root().children[i]]
			child.wins, child.visits = s[0], s[1]
		}
		return tr
	}

	t.Run("selecting an unvisited child", func(t *testing.T) {
		tr := setup([2]int{3, 3}, [2]int{0, 0}, [2]int{1, 3}, [2]int{1, 4})

		got := tr.pickChild(rootNode)

		require.Equal(t, tr.root().children[1], got, "Unvisited child should be selected")
	})

	t.Run("visiting every unvisited sibling before repeating", func(t *testing.T) {
		tr := setup([2]int{4, 4})
		seen := map[handle]bool{}

		for i := 0; i < 3; i++ {
			got := tr.pickChild(rootNode)
			child := &tr.nodes[got]
			require.Zero(t, child.visits, "Should pick an unvisited child first")
			require.False(t, seen[got], "Should not pick the same child twice")
			seen[got] = true
			// Parent visits stay fixed
			child.wins, child.visits = 1, 1
		}
	})

	t.Run("selecting the max UCT child", func(t *testing.T) {
		tr := setup([2]int{1, 3}, [2]int{2, 3}, [2]int{0, 2}, [2]int{1, 2})

		got := tr.pickChild(rootNode)

		// 1/2 + sqrt(2 ln 10 / 2) beats the others
		require.Equal(t, tr.root().children[3], got, "Child with max UCT score should be selected")
	})

	t.Run("keeping the earlier child on ties", func(t *testing.T) {
		tr := setup([2]int{1, 2}, [2]int{1, 2}, [2]int{1, 2}, [2]int{1, 2})

		got := tr.pickChild(rootNode)

		require.Equal(t, tr.root().children[0], got, "Ties should favour the first child")
	})

	t.Run("panicking without admissible children", func(t *testing.T) {
		tr := setup([2]int{1, 1}, [2]int{1, 1}, [2]int{1, 1}, [2]int{1, 1})
		tr.root().visits = 0

		require.Panics(t, func() {
			tr.pickChild(rootNode)
		}, "Should panic when every score is undefined")
	})

	t.Run("panicking on an internal node without children", func(t *testing.T) {
		tr := newTestTree(game.NewBoard(), game.Black)
		tr.root().internal = true

		require.Panics(t, func() {
			tr.pickChild(rootNode)
		}, "Should panic when there is nothing to select")
	})

	t.Run("descending through internal nodes only", func(t *testing.T) {
		tr := setup([2]int{0, 1}, [2]int{0, 1}, [2]int{0, 1}, [2]int{1, 1})

		got := tr.selectLeaf()

		require.Equal(t, tr.root().children[3], got, "Should stop at the best leaf")
	})
}

func TestTreeRollout(t *testing.T) {
	t.Run("stopping immediately on a full board", func(t *testing.T) {
		tr := newTestTree(fullBoard(40), game.Black)

		win, plies := tr.rollout(rootNode, game.Black)

		require.Equal(t, Win, win, "Black owns 40 discs")
		require.Zero(t, plies, "No move should be played")

		win, _ = tr.rollout(rootNode, game.White)
		require.Equal(t, Loss, win, "White owns 24 discs")
	})

	t.Run("counting a tie as a loss", func(t *testing.T) {
		tr := newTestTree(fullBoard(32), game.Black)

		win, _ := tr.rollout(rootNode, game.Black)

		require.Equal(t, Loss, win, "Tie should be a loss")
	})

	t.Run("playing to the end without marking nodes internal", func(t *testing.T) {
		tr := newTestTree(game.NewBoard(), game.Black)
		tr.rand = rngFromSeed(1)

		_, plies := tr.rollout(rootNode, game.Black)

		require.Greater(t, plies, 0, "Rollout should play moves")
		require.True(t, tr.root().expanded, "Rollout should populate the entry node")
		for i := range tr.nodes {
			require.False(t, tr.nodes[i].internal, "Rollout should not mark node %d internal", i)
			require.Zero(t, tr.nodes[i].visits, "Rollout should not record visits")
		}
	})

	t.Run("passing inside a rollout", func(t *testing.T) {
		tr := newTestTree(passBoard(), game.White)

		win, plies := tr.rollout(rootNode, game.White)

		require.Equal(t, 2, plies, "White passes then black fills the corner")
		require.Equal(t, Loss, win, "White loses the full board")
	})
}

func TestTreeBackup(t *testing.T) {
	t.Run("recording a win up to the root", func(t *testing.T) {
		tr := newTestTree(game.NewBoard(), game.Black)
		tr.expand(rootNode)
		child := tr.root().children[2]
		tr.expand(child)
		grandChild := tr.nodes[child].children[0]

		tr.backup(grandChild, Win)

		for _, h := range []handle{grandChild, child, rootNode} {
			require.Equal(t, 1, tr.nodes[h].visits, "Should add a visit")
			require.Equal(t, 1, tr.nodes[h].wins, "Should add a win")
		}
		require.Zero(t, tr.nodes[tr.root().children[0]].visits, "Siblings should be untouched")
	})

	t.Run("recording a loss", func(t *testing.T) {
		tr := newTestTree(game.NewBoard(), game.Black)

		tr.backup(rootNode, Loss)

		require.Equal(t, 1, tr.root().visits, "Should add a visit")
		require.Zero(t, tr.root().wins, "Should not add a win")
	})
}

func TestTreeSimulate(t *testing.T) {
	t.Run("first episode rolls out from the root", func(t *testing.T) {
		tr := newTestTree(game.NewBoard(), game.Black)

		tr.simulate()

		require.Equal(t, 1, tr.root().visits, "Root should be visited")
		require.False(t, tr.root().internal, "Root should still be a leaf")
	})

	t.Run("second episode expands the root and descends to the first child", func(t *testing.T) {
		tr := newTestTree(game.NewBoard(), game.Black)

		tr.simulate()
		tr.simulate()

		root := tr.root()
		require.True(t, root.internal, "Root should be internal")
		require.Equal(t, 2, root.visits, "Root should count both episodes")
		require.Equal(t, 1, tr.nodes[root.children[0]].visits, "First child should be visited")
		for _, c := range root.children[1:] {
			require.Zero(t, tr.nodes[c].visits, "Other children should be unvisited")
		}
	})
}
