package ingest

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by ingestion.
var (
	// ErrMalformedInput is wrapped by every *MalformedInputError.
	ErrMalformedInput = errors.New("ingest: malformed input")

	// ErrInvalidConfiguration indicates a non-positive node count.
	ErrInvalidConfiguration = errors.New("ingest: invalid configuration")
)

// Metric names one of the two independent weight functions carried by an edge.
type Metric int

const (
	// MetricDistance is the third field of a record.
	MetricDistance Metric = iota
	// MetricFuel is the fourth field of a record.
	MetricFuel
)

// Metrics lists every metric in record order.
var Metrics = []Metric{MetricDistance, MetricFuel}

// String returns the lowercase metric name.
func (m Metric) String() string {
	switch m {
	case MetricDistance:
		return "distance"
	case MetricFuel:
		return "fuel"
	default:
		return fmt.Sprintf("Metric(%d)", int(m))
	}
}

// RawEdge is one observed undirected measurement between two 1-based nodes.
// Line is the 1-based source line when the edge was parsed from text, 0 otherwise.
type RawEdge struct {
	A, B     int
	Distance int64
	Fuel     int64
	Line     int
}

// Weight returns the edge weight for metric m.
func (e RawEdge) Weight(m Metric) int64 {
	if m == MetricFuel {
		return e.Fuel
	}

	return e.Distance
}

// MalformedInputError identifies the record that made ingestion fail.
type MalformedInputError struct {
	Record int    // 1-based position in the edge sequence
	Line   int    // 1-based source line, 0 when not parsed from text
	Text   string // offending record as text
	Reason string
}

// Error implements error.
func (e *MalformedInputError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("ingest: malformed input at line %d (%q): %s", e.Line, e.Text, e.Reason)
	}

	return fmt.Sprintf("ingest: malformed input at record %d (%q): %s", e.Record, e.Text, e.Reason)
}

// Unwrap lets errors.Is(err, ErrMalformedInput) match.
func (e *MalformedInputError) Unwrap() error { return ErrMalformedInput }
