package graphsearch

import (
	"log/slog"
	"time"

	"github.com/arveldin/wayfarer/navgraph"
)

// Search tunables.
const (
	defaultNearNodeThreshold  = 15
	defaultIsolationThreshold = 100
	defaultTimeout            = 10 * time.Second

	agilityRetryFactor = 3
	minAdjustedCost    = 1
)

// Status classifies the outcome of Analyze.
type Status int

const (
	FullPathAvailable Status = iota
	FirstMileManual
	LastMileManual
	BothEndsManual
	NoPathBetweenNodes
	PlayerIsolated
	DestinationIsolated
	CompletelyIsolated
	SystemUnavailable
)

// Result is the outcome of a successful FindPath: the ordered edges taken
// and the total adjusted cost in ticks.
type Result struct {
	Edges     []*navgraph.Edge
	TotalCost int64
}

// NavigationAnalysis describes why a route between a raw point and a
// destination does or does not exist, including first-mile/last-mile gaps.
// Analyze never fails; it always returns a populated analysis.
type NavigationAnalysis struct {
	Status            Status
	FirstMileDistance int32
	LastMileDistance  int32
	NearestStartNode  string
	NearestEndNode    string
	Result            *Result
}

// Option configures a Search or a single FindPath call.
type Option func(*options)

type options struct {
	log                *slog.Logger
	nearNodeThreshold  int32
	isolationThreshold int32
	timeout            time.Duration
}

func defaultOptions() options {
	return options{
		log:                slog.Default(),
		nearNodeThreshold:  defaultNearNodeThreshold,
		isolationThreshold: defaultIsolationThreshold,
		timeout:            defaultTimeout,
	}
}

// WithLogger attaches a structured logger for search diagnostics.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.log = l
		}
	}
}

// WithNearNodeThreshold overrides the "near a node" Chebyshev distance used
// by Analyze. Default 15 tiles.
func WithNearNodeThreshold(tiles int32) Option {
	return func(o *options) { o.nearNodeThreshold = tiles }
}

// WithIsolationThreshold overrides the "isolated" Chebyshev distance used
// by Analyze. Default 100 tiles.
func WithIsolationThreshold(tiles int32) Option {
	return func(o *options) { o.isolationThreshold = tiles }
}

// WithTimeout overrides the hard search time budget. Default 10s.
func WithTimeout(d time.Duration) Option {
	return func(o *options) { o.timeout = d }
}

// Search runs Dijkstra over an immutable navgraph.Graph snapshot.
type Search struct {
	graph *navgraph.Graph
	opts  options
}

// New constructs a Search over graph.
func New(graph *navgraph.Graph, opts ...Option) *Search {
	cfg := defaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Search{graph: graph, opts: cfg}
}
