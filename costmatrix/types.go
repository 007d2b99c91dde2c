package costmatrix

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"strings"

	"github.com/katalvlaran/roadcost/apsp"
	"github.com/katalvlaran/roadcost/ingest"
)

// Sentinel errors. Ingestion sentinels are re-exported so callers only need
// this package for errors.Is checks.
var (
	// ErrMalformedInput is wrapped by *ingest.MalformedInputError.
	ErrMalformedInput = ingest.ErrMalformedInput

	// ErrInvalidConfiguration indicates a non-positive node count.
	ErrInvalidConfiguration = ingest.ErrInvalidConfiguration

	// ErrOutOfRange indicates a node id outside [1, NodeCount()].
	ErrOutOfRange = errors.New("costmatrix: node out of range")

	// ErrUnreachable is returned by Lookup under UnreachableError for a pair
	// with no connecting path.
	ErrUnreachable = errors.New("costmatrix: nodes are not connected")

	// ErrUnknownPolicy indicates an unsupported unreachable-policy name.
	ErrUnknownPolicy = errors.New("costmatrix: unknown unreachable policy")
)

// Infinite is the cost reported for unreachable pairs under UnreachableInfinite.
const Infinite int64 = math.MaxInt64

// Cost is the completed shortest-path cost of one ordered node pair.
type Cost struct {
	Distance int64
	Fuel     int64
}

// IsInfinite reports whether either component is Infinite.
func (c Cost) IsInfinite() bool {
	return c.Distance == Infinite || c.Fuel == Infinite
}

// UnreachablePolicy decides what Lookup reports for pairs with no path.
type UnreachablePolicy int

const (
	// UnreachableZero reports (0, 0). This matches the historical behaviour of
	// the road-trip planner but under-penalizes disconnected topologies.
	UnreachableZero UnreachablePolicy = iota

	// UnreachableInfinite reports (Infinite, Infinite).
	UnreachableInfinite

	// UnreachableError makes Lookup return ErrUnreachable.
	UnreachableError
)

var policyNames = map[UnreachablePolicy]string{
	UnreachableZero:     "zero",
	UnreachableInfinite: "infinite",
	UnreachableError:    "error",
}

// String returns the configuration name of the policy.
func (p UnreachablePolicy) String() string {
	if s, ok := policyNames[p]; ok {
		return s
	}

	return fmt.Sprintf("UnreachablePolicy(%d)", int(p))
}

// ParsePolicy resolves "zero", "infinite" or "error" (case-insensitive).
func ParsePolicy(name string) (UnreachablePolicy, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	for p, s := range policyNames {
		if s == key {
			return p, nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownPolicy, name)
}

// Stats summarises a built matrix.
type Stats struct {
	NodeCount int
	// Edges is the number of distinct undirected node pairs with a direct edge
	// after last-write-wins merging of duplicate records.
	Edges int
	// Records is the number of raw edge records ingested.
	Records int
	// UnreachablePairs counts ordered pairs (i ≠ j) with no path. The
	// topology is shared, so the count is the same for both metrics.
	UnreachablePairs int
}

// Options configures Build.
type Options struct {
	Policy  UnreachablePolicy
	Engine  apsp.Engine
	Workers int // 0 keeps the apsp default
	Logger  *slog.Logger
	Metrics *Metrics
}

// Option represents a functional option for configuring Build.
type Option func(*Options)

// WithUnreachablePolicy selects how unreachable pairs are reported.
func WithUnreachablePolicy(p UnreachablePolicy) Option {
	return func(o *Options) { o.Policy = p }
}

// WithEngine selects the completion engine.
func WithEngine(e apsp.Engine) Option {
	return func(o *Options) { o.Engine = e }
}

// WithWorkers bounds concurrent per-source searches within one metric pass.
func WithWorkers(n int) Option {
	return func(o *Options) { o.Workers = n }
}

// WithLogger sets the structured logger for construction events.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) { o.Logger = l }
}

// WithMetrics records construction metrics into m (see NewMetrics).
func WithMetrics(m *Metrics) Option {
	return func(o *Options) { o.Metrics = m }
}

// DefaultOptions returns the zero policy, the Dijkstra engine and a
// discarding logger.
func DefaultOptions() Options {
	return Options{
		Policy: UnreachableZero,
		Engine: apsp.EngineDijkstra,
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}
