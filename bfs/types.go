// Package bfs provides tunable options and error definitions
// for breadth-first search over a core.View.
package bfs

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lineage/core"
)

// Sentinel errors for BFS execution.
var (
	// ErrViewNil is returned if a nil view is passed.
	ErrViewNil = errors.New("bfs: view is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")

	// ErrNoPath is returned when the target individual was not reached.
	ErrNoPath = errors.New("bfs: no path")
)

// Direction selects which edges the walker follows.
type Direction uint8

const (
	// Both follows parent and child edges (undirected view of the pedigree).
	Both Direction = iota
	// Up follows parent edges only (ancestor expansion).
	Up
	// Down follows child edges only (descendant expansion).
	Down
)

// Option configures BFS behavior via functional arguments.
// If an Option is invalid (e.g. negative depth), it will be recorded
// internally and surfaced as ErrOptionViolation when BFS is invoked.
type Option func(*BFSOptions)

// BFSOptions holds parameters and callbacks to customize BFS execution.
type BFSOptions struct {
	// Direction selects parent edges, child edges, or both.
	Direction Direction

	// MaxDepth, if > 0, stops exploring beyond this many rounds.
	// A value of 0 explicitly disables any depth limit.
	MaxDepth int

	// Target, if not core.None, stops the search as soon as it is discovered.
	Target core.ID

	// OnVisit is called once for every newly discovered individual,
	// including the start at depth 0.
	OnVisit func(id core.ID, depth int)

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns a BFSOptions with sane defaults:
//   - both directions
//   - no depth limit (MaxDepth == 0)
//   - no early-exit target
//   - no-op OnVisit hook
func DefaultOptions() BFSOptions {
	return BFSOptions{
		Direction: Both,
		MaxDepth:  0,
		Target:    core.None,
		OnVisit:   func(core.ID, int) {},
	}
}

// WithDirection chooses which edges to follow.
func WithDirection(d Direction) Option {
	return func(o *BFSOptions) {
		switch d {
		case Both, Up, Down:
			o.Direction = d
		default:
			o.err = fmt.Errorf("%w: unknown direction %d", ErrOptionViolation, d)
		}
	}
}

// WithMaxDepth bounds the search to d rounds of expansion.
//
//	d > 0: limit to depth d
//	d == 0: explicit no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *BFSOptions) {
		switch {
		case d < 0:
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
		default:
			o.MaxDepth = d
		}
	}
}

// WithTarget stops the search once id has been discovered.
func WithTarget(id core.ID) Option {
	return func(o *BFSOptions) {
		o.Target = id
	}
}

// WithOnVisit registers a callback run on discovery.
func WithOnVisit(fn func(id core.ID, depth int)) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// BFSResult holds the outcome of a BFS traversal:
//   - Order: individuals in discovery sequence.
//   - Depth: map from ID to its distance (in edges) from the start.
//   - Parent: map from ID to its predecessor in the BFS tree.
//
// Parent is the back-pointer of the search tree, not a pedigree parent.
type BFSResult struct {
	Order  []core.ID
	Depth  map[core.ID]int
	Parent map[core.ID]core.ID
}

// PathTo reconstructs the path from the start to dest.
// Returns ErrNoPath if dest was not reached.
func (r *BFSResult) PathTo(dest core.ID) ([]core.ID, error) {
	if _, ok := r.Depth[dest]; !ok {
		return nil, fmt.Errorf("%w: to %d", ErrNoPath, dest)
	}
	// build reversed path
	path := []core.ID{}
	for cur := dest; ; {
		path = append(path, cur)
		prev, ok := r.Parent[cur]
		if !ok {
			break
		}
		cur = prev
	}
	// reverse to get start → dest
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
