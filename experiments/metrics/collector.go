package metrics

import (
	"sync/atomic"
	"time"
)

// SearchMetric summarizes one move decision.
type SearchMetric struct {
	Strategy     string
	Duration     time.Duration
	States       int // children considered, transposition hits included
	UniqueStates int // children actually searched
	TableSize    int // transposition keys after the decision
}

type MoveMetric struct {
	Step     int
	Side     string
	Position string
	SearchMetric
}

type GameMetric struct {
	StartingSide string
	Winner       string
	CellsX       int
	CellsO       int
	StartTime    time.Time
	EndTime      time.Time
	Duration     time.Duration
	TotalMoves   int
}

// Collector receives search statistics from a searcher. One collector belongs
// to one searcher; callers read the totals through Complete.
type Collector interface {
	Start(strategy string)
	AddState()
	AddUniqueState()
	SetTableSize(size int)
	Complete() SearchMetric
}

type collector struct {
	strategy     string
	startTime    time.Time
	states       atomic.Int64
	uniqueStates atomic.Int64
	tableSize    atomic.Int64
}

func NewCollector() Collector {
	return &collector{}
}

// Start resets the counters for a new decision.
func (m *collector) Start(strategy string) {
	m.strategy = strategy
	m.startTime = time.Now()
	m.states.Store(0)
	m.uniqueStates.Store(0)
	m.tableSize.Store(0)
}

func (m *collector) AddState() {
	m.states.Add(1)
}

func (m *collector) AddUniqueState() {
	m.uniqueStates.Add(1)
}

func (m *collector) SetTableSize(size int) {
	m.tableSize.Store(int64(size))
}

func (m *collector) Complete() SearchMetric {
	return SearchMetric{
		Strategy:     m.strategy,
		Duration:     time.Since(m.startTime),
		States:       int(m.states.Load()),
		UniqueStates: int(m.uniqueStates.Load()),
		TableSize:    int(m.tableSize.Load()),
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(strategy string)  {}
func (m *dummyCollector) AddState()              {}
func (m *dummyCollector) AddUniqueState()        {}
func (m *dummyCollector) SetTableSize(size int)  {}
func (m *dummyCollector) Complete() SearchMetric { return SearchMetric{} }
