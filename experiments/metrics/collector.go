package metrics

import (
	"sync/atomic"
	"time"
)

type SearchMetric struct {
	Depth        int
	Goroutines   int
	Pruning      bool
	Duration     time.Duration
	NodesBuilt   int
	NodesVisited int
	LeafEvals    int
	Cutoffs      int
	Utility      float64
}

type MoveMetric struct {
	Step   int
	Player int // game.Color of the mover
	SearchMetric
}

type GameMetric struct {
	StartingPlayer int
	Winner         string
	StartTime      time.Time
	EndTime        time.Time
	Duration       time.Duration
	TotalMoves     int
	Passes         int
	BlackDiscs     int
	WhiteDiscs     int
	Margin         float64 // Black's disc differential, between -1 and 1
}

type Collector interface {
	Start(depth, goroutines int, pruning bool)
	AddNode()
	AddVisit()
	AddLeafEval()
	AddCutoff()
	Complete(utility float64) SearchMetric
}

type collector struct {
	depth        int
	goroutines   int
	pruning      bool
	startTime    time.Time
	nodesBuilt   atomic.Int64
	nodesVisited atomic.Int64
	leafEvals    atomic.Int64
	cutoffs      atomic.Int64
}

func NewCollector() Collector {
	return &collector{}
}

// Start resets the counters, so a collector can be reused across decisions
func (m *collector) Start(depth, goroutines int, pruning bool) {
	m.startTime = time.Now()
	m.depth = depth
	m.goroutines = goroutines
	m.pruning = pruning
	m.nodesBuilt.Store(0)
	m.nodesVisited.Store(0)
	m.leafEvals.Store(0)
	m.cutoffs.Store(0)
}

func (m *collector) AddNode() {
	m.nodesBuilt.Add(1)
}

func (m *collector) AddVisit() {
	m.nodesVisited.Add(1)
}

func (m *collector) AddLeafEval() {
	m.leafEvals.Add(1)
}

func (m *collector) AddCutoff() {
	m.cutoffs.Add(1)
}

func (m *collector) Complete(utility float64) SearchMetric {
	return SearchMetric{
		Depth:        m.depth,
		Goroutines:   m.goroutines,
		Pruning:      m.pruning,
		Duration:     time.Since(m.startTime),
		NodesBuilt:   int(m.nodesBuilt.Load()),
		NodesVisited: int(m.nodesVisited.Load()),
		LeafEvals:    int(m.leafEvals.Load()),
		Cutoffs:      int(m.cutoffs.Load()),
		Utility:      utility,
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(depth, goroutines int, pruning bool) {}
func (m *dummyCollector) AddNode()                                 {}
func (m *dummyCollector) AddVisit()                                {}
func (m *dummyCollector) AddLeafEval()                             {}
func (m *dummyCollector) AddCutoff()                               {}
func (m *dummyCollector) Complete(utility float64) SearchMetric    { return SearchMetric{} }
