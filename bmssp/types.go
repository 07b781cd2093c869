// Package bmssp defines configuration options and error sentinels for the
// Bounded Multi-Source Shortest Path algorithm. See doc.go for the
// algorithm overview and api semantics.
package bmssp

import (
	"errors"

	"github.com/katalvlaran/bmssp/core"
)

// Sentinel errors returned by the BMSSP entry points.
var (
	// ErrGraphNil indicates that a nil *core.Graph was passed.
	ErrGraphNil = errors.New("bmssp: graph is nil")

	// ErrUndirectedGraph indicates that the graph is not directed.
	// BMSSP requires directed semantics even when the caller's relation is
	// symmetric; convert to a directed graph first.
	ErrUndirectedGraph = errors.New("bmssp: graph must be directed")

	// ErrNoSources indicates that the caller supplied no source vertices.
	ErrNoSources = errors.New("bmssp: at least one source vertex is required")

	// ErrVertexNotFound indicates that a referenced source or target vertex
	// does not exist in the graph.
	ErrVertexNotFound = errors.New("bmssp: vertex not found in graph")

	// ErrNegativeWeight indicates that a resolved edge weight is negative.
	// BMSSP cannot bound correctness with negative weights.
	ErrNegativeWeight = errors.New("bmssp: negative edge weight encountered")

	// ErrNoPath indicates that the target is unreachable from the sources.
	ErrNoPath = errors.New("bmssp: no path between source and target")

	// ErrBadPrecision indicates that a negative precision was supplied.
	ErrBadPrecision = errors.New("bmssp: precision must be non-negative")
)

// DefaultWeightAttribute is the edge attribute consulted when no explicit
// weight specification is configured.
const DefaultWeightAttribute = "weight"

// DefaultEdgeWeight is the cost assumed for an edge whose weight attribute
// is absent (hop counting).
const DefaultEdgeWeight = 1.0

// WeightFunc resolves the cost of one edge. Returning ok=false hides the
// edge entirely: it is excluded from the search as if it did not exist,
// which enables edge-masking use cases. A returned weight must be
// non-negative; negative values surface as ErrNegativeWeight.
type WeightFunc func(from, to string, e *core.Edge) (weight float64, ok bool)

// Options configures a BMSSP run.
//
// WeightAttr - edge attribute name holding the cost (default "weight").
// Weight     - optional callback overriding attribute lookup entirely.
// Precision  - decimal places for reported distances (default 0). The
//              precision also scales the internal tie-break perturbations
//              so they can never change the rounded output.
// Target     - optional vertex ID; when it completes, the search stops
//              early instead of settling the whole reachable set.
type Options struct {
	WeightAttr string     // attribute name for weight resolution
	Weight     WeightFunc // callback weight specification; nil → attribute
	Precision  int        // decimal rounding of reported distances
	Target     string     // optional early-stop vertex
}

// Option represents a functional option for configuring BMSSP.
type Option func(*Options)

// DefaultOptions returns an Options struct initialized with defaults:
// attribute "weight", precision 0, no callback, no target.
func DefaultOptions() Options {
	return Options{
		WeightAttr: DefaultWeightAttribute,
		Weight:     nil,
		Precision:  0,
		Target:     "",
	}
}

// WithWeightAttribute selects the edge attribute consulted for edge costs.
// Edges lacking the attribute cost DefaultEdgeWeight. An empty name falls
// back to DefaultWeightAttribute.
func WithWeightAttribute(name string) Option {
	return func(o *Options) {
		if name != "" {
			o.WeightAttr = name
		}
	}
}

// WithWeightFunc installs a callback weight specification. The callback is
// evaluated once per edge while snapshotting the graph, never in the hot
// relaxation path. It takes precedence over WithWeightAttribute.
func WithWeightFunc(fn WeightFunc) Option {
	return func(o *Options) {
		if fn != nil {
			o.Weight = fn
		}
	}
}

// WithPrecision sets the number of decimal places for reported distances.
// Must be non-negative; negative values panic with ErrBadPrecision.
func WithPrecision(p int) Option {
	if p < 0 {
		// Panic to signal invalid configuration early, as option
		// constructors cannot return errors.
		panic(ErrBadPrecision.Error())
	}

	return func(o *Options) { o.Precision = p }
}

// WithTarget requests the search stop as soon as the given vertex is
// completed. The vertex must exist in the graph.
func WithTarget(id string) Option {
	return func(o *Options) {
		o.Target = id
	}
}
