package ingest

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// fieldsPerRecord is the record shape: nodeA nodeB distance fuel.
const fieldsPerRecord = 4

// MaxLineBytes is the longest accepted input line.
const MaxLineBytes = 64 * 1024

// Parse reads newline-separated records of four whitespace-separated
// integers. Blank lines and lines starting with '#' are skipped. A line
// longer than MaxLineBytes is malformed.
// Node ranges and weight signs are checked later by BuildAdjacency, which
// knows the node count. Parsing is all-or-nothing.
func Parse(r io.Reader) ([]RawEdge, error) {
	var (
		edges  []RawEdge
		sc     = bufio.NewScanner(r)
		line   int
		record int
	)
	sc.Buffer(make([]byte, 0, 4096), MaxLineBytes)
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		record++
		e, err := parseRecord(text)
		if err != nil {
			return nil, &MalformedInputError{Record: record, Line: line, Text: text, Reason: err.Error()}
		}
		e.Line = line
		edges = append(edges, e)
	}
	if err := sc.Err(); err != nil {
		if errors.Is(err, bufio.ErrTooLong) {
			return nil, &MalformedInputError{
				Record: record + 1,
				Line:   line + 1,
				Reason: fmt.Sprintf("line longer than %d bytes", MaxLineBytes),
			}
		}
		return nil, fmt.Errorf("ingest: read records: %w", err)
	}

	return edges, nil
}

// ParseString is Parse over an in-memory string.
func ParseString(s string) ([]RawEdge, error) {
	return Parse(strings.NewReader(s))
}

// parseRecord splits one trimmed, non-empty line into a RawEdge.
func parseRecord(text string) (RawEdge, error) {
	f := strings.Fields(text)
	if len(f) != fieldsPerRecord {
		return RawEdge{}, fmt.Errorf("want %d fields, got %d", fieldsPerRecord, len(f))
	}

	a, err := strconv.Atoi(f[0])
	if err != nil {
		return RawEdge{}, fmt.Errorf("node A %q is not an integer", f[0])
	}
	b, err := strconv.Atoi(f[1])
	if err != nil {
		return RawEdge{}, fmt.Errorf("node B %q is not an integer", f[1])
	}
	dist, err := strconv.ParseInt(f[2], 10, 64)
	if err != nil {
		return RawEdge{}, fmt.Errorf("distance %q is not an integer", f[2])
	}
	fuel, err := strconv.ParseInt(f[3], 10, 64)
	if err != nil {
		return RawEdge{}, fmt.Errorf("fuel %q is not an integer", f[3])
	}

	return RawEdge{A: a, B: b, Distance: dist, Fuel: fuel}, nil
}
