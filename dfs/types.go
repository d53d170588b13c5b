// Package dfs defines types and options for depth-first lineage enumeration
// and ordering over a core.View.
package dfs

import (
	"errors"
	"fmt"
)

var (
	// ErrViewNil is returned when a nil core.View is passed to Enumerate or TopologicalSort.
	ErrViewNil = errors.New("dfs: view is nil")

	// ErrCycleDetected indicates that a View violated the DAG invariant.
	ErrCycleDetected = errors.New("dfs: cycle detected")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("dfs: invalid option supplied")
)

// Option configures optional behavior of path enumeration.
type Option func(*DFSOptions)

// DFSOptions holds configurable limits for Paths.
type DFSOptions struct {
	// MaxDepth, if > 0, discards paths longer than MaxDepth generations.
	// Default is 0 (no limit).
	MaxDepth int

	// MaxPaths, if > 0, stops enumeration after that many paths.
	// Default is 0 (enumerate all).
	MaxPaths int

	err error
}

// DefaultOptions returns DFSOptions with no depth and no path limit.
func DefaultOptions() DFSOptions {
	return DFSOptions{}
}

// WithMaxDepth limits enumerated paths to at most limit generations.
// A limit of 0 means no limit; negative limits are rejected.
func WithMaxDepth(limit int) Option {
	return func(o *DFSOptions) {
		if limit < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, limit)
			return
		}
		o.MaxDepth = limit
	}
}

// WithMaxPaths stops enumeration once limit paths have been collected.
// A limit of 0 means no limit; negative limits are rejected.
func WithMaxPaths(limit int) Option {
	return func(o *DFSOptions) {
		if limit < 0 {
			o.err = fmt.Errorf("%w: MaxPaths cannot be negative (%d)", ErrOptionViolation, limit)
			return
		}
		o.MaxPaths = limit
	}
}
