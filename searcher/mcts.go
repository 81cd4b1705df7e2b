package searcher

import (
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"

	"othello/game"
	"othello/metrics"
)

// Rand is the source of rollout choices. *rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
}

type Option func(mcts *MCTS)

// MCTS chooses a move by Monte Carlo tree search within a time budget, or
// within a fixed number of episodes when one is set.
type MCTS struct {
	duration time.Duration
	episodes int
	cSquared float64
	rand     Rand
	metrics  metrics.Collector
}

func WithDuration(duration time.Duration) Option {
	return func(m *MCTS) {
		if duration > 0 {
			m.duration = duration
		}
	}
}

// WithEpisodes replaces the time budget with a fixed episode count.
func WithEpisodes(episodes int) Option {
	return func(m *MCTS) {
		if episodes > 0 {
			m.episodes = episodes
		}
	}
}

func WithExploration(cSquared float64) Option {
	return func(m *MCTS) {
		if cSquared >= 0 {
			m.cSquared = cSquared
		}
	}
}

func WithRand(r Rand) Option {
	return func(m *MCTS) {
		if r != nil {
			m.rand = r
		}
	}
}

func WithSeed(seed uint64) Option {
	return WithRand(rand.New(rand.NewSource(seed)))
}

func WithMetrics() Option {
	return func(m *MCTS) {
		m.metrics = metrics.NewCollector()
	}
}

func NewMCTS(options ...Option) *MCTS {
	m := &MCTS{ // Default values
		duration: DefaultDuration,
		cSquared: CSquared,
		metrics:  metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(m)
	}
	if m.rand == nil {
		m.rand = rand.New(rand.NewSource(uint64(time.Now().UnixNano())))
	}
	return m
}

// Simulate searches the position and returns the statistics of every root
// move together with the search metrics (zero unless WithMetrics is set).
func (m *MCTS) Simulate(board game.Board, player game.Cell) (Policy, metrics.SearchMetric, error) {
	if err := game.Validate(&board, player); err != nil {
		return nil, metrics.SearchMetric{}, err
	}
	if len(board.LegalMoves(player)) == 0 {
		return nil, metrics.SearchMetric{}, fmt.Errorf("%w: %v", game.ErrNoMoves, player)
	}

	t := m.search(board, player)

	root := t.root()
	policy := t.policy()
	metric := m.metrics.Complete(root.wins, root.visits)

	log.Debug().
		Int("episodes", root.visits).
		Int("nodes", len(t.nodes)).
		Msgf("root %d/%d = %.4f", root.wins, root.visits, float64(root.wins)/(float64(root.visits)+DivDelta))
	for i, c := range policy {
		log.Trace().Msgf("%d %v: %d/%d = %.4f", i, c.Move, c.Wins, c.Visits, c.Value())
	}

	return policy, metric, nil
}

func (m *MCTS) search(board game.Board, player game.Cell) *tree {
	m.metrics.Start()
	t := newTree(board, player, m.cSquared, m.rand, m.metrics)

	if m.episodes > 0 {
		m.iterate(t)
	} else {
		m.countdown(t)
	}
	return t
}

func (m *MCTS) iterate(t *tree) {
	for i := 0; i < m.episodes; i++ {
		t.simulate()
		m.metrics.AddEpisode()
	}
}

// countdown runs episodes until the budget is spent. The first episode always
// runs so the root has children to choose from.
func (m *MCTS) countdown(t *tree) {
	start := time.Now()
	for {
		t.simulate()
		m.metrics.AddEpisode()
		if time.Since(start) >= m.duration {
			return
		}
	}
}
