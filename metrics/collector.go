package metrics

import "time"

// SearchMetric summarizes one decision.
type SearchMetric struct {
	Duration     time.Duration
	Episodes     int
	Nodes        int
	PlayoutPlies int
	RootWins     int
	RootVisits   int
}

// WinRate is the root's empirical win rate for the player to move.
func (m SearchMetric) WinRate() float64 {
	if m.RootVisits == 0 {
		return 0
	}
	return float64(m.RootWins) / float64(m.RootVisits)
}

type Collector interface {
	Start()
	AddEpisode()
	AddPlayout(plies int)
	AddNodes(n int)
	Complete(rootWins, rootVisits int) SearchMetric
}

type collector struct {
	startTime    time.Time
	episodes     int
	nodes        int
	playoutPlies int
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start() {
	*m = collector{startTime: time.Now()}
}

func (m *collector) AddEpisode() {
	m.episodes++
}

func (m *collector) AddPlayout(plies int) {
	m.playoutPlies += plies
}

func (m *collector) AddNodes(n int) {
	m.nodes += n
}

func (m *collector) Complete(rootWins, rootVisits int) SearchMetric {
	return SearchMetric{
		Duration:     time.Since(m.startTime),
		Episodes:     m.episodes,
		Nodes:        m.nodes,
		PlayoutPlies: m.playoutPlies,
		RootWins:     rootWins,
		RootVisits:   rootVisits,
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start()                         {}
func (m *dummyCollector) AddEpisode()                    {}
func (m *dummyCollector) AddPlayout(plies int)           {}
func (m *dummyCollector) AddNodes(n int)                 {}
func (m *dummyCollector) Complete(int, int) SearchMetric { return SearchMetric{} }
