package apsp

import (
	"errors"
	"fmt"
	"runtime"
	"strings"
)

// Sentinel errors returned by Complete.
var (
	// ErrNilSeed indicates that a nil seed matrix was passed to Complete.
	ErrNilSeed = errors.New("apsp: seed matrix is nil")

	// ErrUnknownEngine indicates an Engine value or name that is not supported.
	ErrUnknownEngine = errors.New("apsp: unknown engine")

	// ErrBadWorkers indicates a non-positive worker count.
	ErrBadWorkers = errors.New("apsp: workers must be positive")
)

// Engine selects the algorithm that completes a seed matrix.
type Engine int

const (
	// EngineDijkstra runs one Dijkstra search per source node.
	// O(N·(N² + E log N)); the only engine that uses Workers.
	EngineDijkstra Engine = iota

	// EngineFloydWarshall runs the dense O(N³) closure on a copy of the seed.
	EngineFloydWarshall

	// EngineGonum delegates to gonum's graph/path.DijkstraAllPaths.
	// Costs travel through float64, exact up to 2^53.
	EngineGonum
)

// engineNames maps engines to their configuration names.
var engineNames = map[Engine]string{
	EngineDijkstra:      "dijkstra",
	EngineFloydWarshall: "floyd-warshall",
	EngineGonum:         "gonum",
}

// String returns the configuration name of the engine.
func (e Engine) String() string {
	if s, ok := engineNames[e]; ok {
		return s
	}

	return fmt.Sprintf("Engine(%d)", int(e))
}

// ParseEngine resolves a configuration name (case-insensitive) to an Engine.
func ParseEngine(name string) (Engine, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	for e, s := range engineNames {
		if s == key {
			return e, nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownEngine, name)
}

// Options configures Complete.
//
// Engine  – completion algorithm (default EngineDijkstra).
// Workers – number of concurrent per-source searches for EngineDijkstra.
//
//	Default runtime.GOMAXPROCS(0). 1 runs the searches one after another.
type Options struct {
	Engine  Engine
	Workers int
}

// Option represents a functional option for configuring Complete.
type Option func(*Options)

// WithEngine selects the completion engine.
func WithEngine(e Engine) Option {
	return func(o *Options) {
		o.Engine = e
	}
}

// WithWorkers bounds the number of concurrent per-source searches.
// Must pass a positive value; otherwise panics with ErrBadWorkers.
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			panic(ErrBadWorkers.Error())
		}
		o.Workers = n
	}
}

// DefaultOptions returns the Dijkstra engine with one worker per CPU.
func DefaultOptions() Options {
	return Options{
		Engine:  EngineDijkstra,
		Workers: runtime.GOMAXPROCS(0),
	}
}
