// Package config loads the road-trip planner's YAML configuration.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/roadcost/apsp"
	"github.com/katalvlaran/roadcost/costmatrix"
	"github.com/katalvlaran/roadcost/route"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("config: invalid configuration")

// Config aggregates the planner's configuration values.
type Config struct {
	Nodes      int              `yaml:"nodes"`
	Route      RouteConfig      `yaml:"route"`
	Completion CompletionConfig `yaml:"completion"`
	Logging    LoggingConfig    `yaml:"logging"`
}

// RouteConfig fixes the endpoints and fuel allowance of scored routes.
type RouteConfig struct {
	Start           int   `yaml:"start"`
	End             int   `yaml:"end"`
	FuelBudget      int64 `yaml:"fuel_budget"`
	DirectWhenEmpty bool  `yaml:"direct_when_empty"`
}

// CompletionConfig selects how the cost matrix is completed.
type CompletionConfig struct {
	Engine      string `yaml:"engine"`      // dijkstra|floyd-warshall|gonum
	Workers     int    `yaml:"workers"`     // 0 = GOMAXPROCS
	Unreachable string `yaml:"unreachable"` // zero|infinite|error
}

// LoggingConfig controls structured logging settings.
type LoggingConfig struct {
	Level         string `yaml:"level"`
	Format        string `yaml:"format"` // text|json
	IncludeCaller bool   `yaml:"include_caller"`
}

const (
	defaultNodes         = 100
	defaultEngine        = "dijkstra"
	defaultUnreachable   = "zero"
	defaultLoggingLevel  = "info"
	defaultLoggingFormat = "text"
)

// Default returns the configuration of the 100-node road trip.
func Default() Config {
	return Config{
		Nodes: defaultNodes,
		Route: RouteConfig{
			Start:      route.RoadTrip.Start,
			End:        route.RoadTrip.End,
			FuelBudget: route.DefaultFuelBudget,
		},
		Completion: CompletionConfig{
			Engine:      defaultEngine,
			Unreachable: defaultUnreachable,
		},
		Logging: LoggingConfig{
			Level:  defaultLoggingLevel,
			Format: defaultLoggingFormat,
		},
	}
}

// Load reads a YAML file over Default and validates the result.
// An empty path returns the validated defaults.
func Load(path string) (Config, error) {
	if path == "" {
		cfg := Default()

		return cfg, cfg.Validate()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	return Parse(data)
}

// Parse decodes YAML over Default and validates the result. Unknown keys
// are rejected so that typos do not silently fall back to defaults.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("config: decode: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate reports every problem at once, each wrapping ErrInvalid.
func (c Config) Validate() error {
	var errs []error
	bad := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalid}, args...)...))
	}

	if c.Nodes <= 0 {
		bad("nodes must be positive, got %d", c.Nodes)
	} else {
		if c.Route.Start < 1 || c.Route.Start > c.Nodes {
			bad("route.start %d outside [1, %d]", c.Route.Start, c.Nodes)
		}
		if c.Route.End < 1 || c.Route.End > c.Nodes {
			bad("route.end %d outside [1, %d]", c.Route.End, c.Nodes)
		}
	}
	if c.Route.FuelBudget < 0 {
		bad("route.fuel_budget must be non-negative, got %d", c.Route.FuelBudget)
	}
	if _, err := apsp.ParseEngine(c.Completion.Engine); err != nil {
		bad("completion.engine: %v", err)
	}
	if c.Completion.Workers < 0 {
		bad("completion.workers must be non-negative, got %d", c.Completion.Workers)
	}
	if _, err := costmatrix.ParsePolicy(c.Completion.Unreachable); err != nil {
		bad("completion.unreachable: %v", err)
	}
	switch strings.ToLower(strings.TrimSpace(c.Logging.Level)) {
	case "debug", "info", "warn", "warning", "error":
	default:
		bad("logging.level %q", c.Logging.Level)
	}
	switch strings.ToLower(strings.TrimSpace(c.Logging.Format)) {
	case "text", "json":
	default:
		bad("logging.format %q, want text or json", c.Logging.Format)
	}

	return errors.Join(errs...)
}

// MatrixOptions translates the completion section into costmatrix options.
// It assumes Validate has passed.
func (c Config) MatrixOptions() []costmatrix.Option {
	engine, _ := apsp.ParseEngine(c.Completion.Engine)
	policy, _ := costmatrix.ParsePolicy(c.Completion.Unreachable)
	opts := []costmatrix.Option{
		costmatrix.WithEngine(engine),
		costmatrix.WithUnreachablePolicy(policy),
	}
	if c.Completion.Workers > 0 {
		opts = append(opts, costmatrix.WithWorkers(c.Completion.Workers))
	}

	return opts
}

// ScoredRoute returns the configured route.
func (c Config) ScoredRoute() route.Route {
	return route.Route{
		Start:           c.Route.Start,
		End:             c.Route.End,
		DirectWhenEmpty: c.Route.DirectWhenEmpty,
	}
}
