package searcher

import (
	"othello/game"
	"othello/metrics"
)

// handle is essentially *node: an index into the tree's arena
type handle int32

func (h handle) isValid() bool { return h >= 0 }

const (
	nilNode  handle = -1
	rootNode handle = 0
)

type terminality uint8

const (
	unknown terminality = iota
	open
	over
)

type node struct {
	board  game.Board
	player game.Cell
	discs  [3]int
	move   game.Move

	wins   int
	visits int
	// parentVisits names the node whose visit count is the UCT log term:
	// the root reads itself, every other node reads its parent.
	parentVisits handle
	parent       handle
	children     []handle
	moves        []game.Point

	expanded bool
	internal bool
	status   terminality
}

// tree owns every node of one search. It is built per decision and dropped
// as a whole once the decision is made.
type tree struct {
	nodes    []node
	cSquared float64
	rand     Rand
	metrics  metrics.Collector
}

func newTree(board game.Board, player game.Cell, cSquared float64, rand Rand, collector metrics.Collector) *tree {
	t := &tree{
		nodes:    make([]node, 0, 1024),
		cSquared: cSquared,
		rand:     rand,
		metrics:  collector,
	}
	t.nodes = append(t.nodes, node{
		board:        board,
		player:       player,
		discs:        board.Count(),
		parentVisits: rootNode,
		parent:       nilNode,
	})
	t.metrics.AddNodes(1)
	return t
}

func (t *tree) addChild(parent handle, board game.Board, player game.Cell, discs [3]int, move game.Move) handle {
	t.nodes = append(t.nodes, node{
		board:        board,
		player:       player,
		discs:        discs,
		move:         move,
		parentVisits: parent,
		parent:       parent,
	})
	return handle(len(t.nodes) - 1)
}

func (t *tree) isTerminal(h handle) bool {
	n := &t.nodes[h]
	if n.status == unknown {
		n.status = open
		if n.board.IsTerminal() {
			n.status = over
		}
	}
	return n.status == over
}

func (t *tree) root() *node {
	return &t.nodes[rootNode]
}
