package connectivity

import (
	"errors"

	"go.uber.org/zap"

	"github.com/katalvlaran/proxima/edgeindex"
	"github.com/katalvlaran/proxima/point"
)

// ErrEmptySet indicates that a spanning tree was requested for a set with no points.
var ErrEmptySet = errors.New("connectivity: point set is empty")

// DefaultTopK is the number of largest clusters multiplied by Budget.
const DefaultTopK = 3

// MethodKruskal builds spanning trees from the sorted edge index with union-find.
const MethodKruskal = "kruskal"

// MethodPrim builds spanning trees by dense O(n²) Prim from point 0, without
// materializing the edge index.
const MethodPrim = "prim"

// Projection maps the two endpoints of the completing edge to a value.
type Projection func(a, b point.Point) int64

// MergeHook observes every Union attempt.
//
//	step     – 0-based position of the edge in the ordered sequence.
//	e        – the edge whose endpoints were passed to Union.
//	merged   – whether Union merged two clusters.
//	clusters – the live cluster count after the attempt.
type MergeHook func(step int, e edgeindex.Edge, merged bool, clusters int)

// BudgetResult is the outcome of a bounded-budget run.
type BudgetResult struct {
	// Considered is the number of edges passed to Union: min(maxEdges, |edges|).
	Considered int
	// Merged counts the Union calls that actually merged.
	Merged int
	// Clusters is the cluster count after the run.
	Clusters int
	// Sizes holds every cluster size, largest first.
	Sizes []int
	// Product is the product of the TopK largest sizes.
	Product uint64
}

// CompletionResult is the outcome of a full-connectivity run.
type CompletionResult struct {
	// Found reports whether a completing edge exists (false for n < 2).
	Found bool
	// Edge is the completing edge; zero when !Found.
	Edge edgeindex.Edge
	// Steps is the number of edges consumed, the completing edge included.
	Steps int
	// Value is the projection of Edge's endpoints, or 0 when !Found.
	Value int64
}

// engineConfig holds Engine settings.
type engineConfig struct {
	logger     *zap.Logger
	workers    int
	topK       int
	projection Projection
	onMerge    MergeHook
	method     string
}

// Option customizes an Engine.
type Option func(*engineConfig)

// WithLogger sets the logger used for Debug traces. Panics on nil.
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic("connectivity: WithLogger(nil)")
	}
	return func(c *engineConfig) {
		c.logger = l
	}
}

// WithWorkers bounds the goroutines used for pairwise distances. Panics on k < 1.
func WithWorkers(k int) Option {
	if k < 1 {
		panic("connectivity: WithWorkers(k < 1)")
	}
	return func(c *engineConfig) {
		c.workers = k
	}
}

// WithTopK sets how many of the largest clusters Budget multiplies. Panics on k < 1.
func WithTopK(k int) Option {
	if k < 1 {
		panic("connectivity: WithTopK(k < 1)")
	}
	return func(c *engineConfig) {
		c.topK = k
	}
}

// WithProjection replaces ProductX as the completing-edge projection. Panics on nil.
func WithProjection(p Projection) Option {
	if p == nil {
		panic("connectivity: WithProjection(nil)")
	}
	return func(c *engineConfig) {
		c.projection = p
	}
}

// WithOnMerge installs a hook called after every Union attempt. Panics on nil.
func WithOnMerge(h MergeHook) Option {
	if h == nil {
		panic("connectivity: WithOnMerge(nil)")
	}
	return func(c *engineConfig) {
		c.onMerge = h
	}
}

// WithMethod selects the SpanningTree algorithm: MethodKruskal (default) or
// MethodPrim. Panics on any other value.
func WithMethod(m string) Option {
	if m != MethodKruskal && m != MethodPrim {
		panic("connectivity: WithMethod(" + m + "): unknown method")
	}
	return func(c *engineConfig) {
		c.method = m
	}
}

// Engine runs the clustering modes with a fixed configuration.
// An Engine holds no per-run state and may be reused and shared.
type Engine struct {
	cfg engineConfig
}

// New returns an Engine with defaults: no logging, sequential distances,
// TopK = 3, ProductX projection, no hook, Kruskal spanning trees.
func New(opts ...Option) *Engine {
	cfg := engineConfig{
		logger:     zap.NewNop(),
		workers:    1,
		topK:       DefaultTopK,
		projection: ProductX,
		method:     MethodKruskal,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Engine{cfg: cfg}
}
