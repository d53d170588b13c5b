// Package bfs provides breadth-first search over a core.View,
// returning hop distances, back-pointers, and discovery order.
//
// Ancestors and ShortestPath are thin entry points over the same walker.
package bfs

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/lineage/core"
)

// walker encapsulates mutable BFS state.
type walker struct {
	view  core.View
	opts  BFSOptions
	queue []queueItem
	res   *BFSResult
	done  bool
}

// queueItem pairs an individual with its BFS depth.
type queueItem struct {
	id    core.ID
	depth int
}

// BFS runs breadth-first search on v starting from start,
// applying any number of functional Options.
// Returns ErrViewNil, ErrOptionViolation, or a wrapped
// core.ErrUnknownIndividual for invalid input.
func BFS(v core.View, start core.ID, opts ...Option) (*BFSResult, error) {
	if v == nil {
		return nil, ErrViewNil
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	n := v.Len()
	if start < 0 || int(start) >= n {
		return nil, fmt.Errorf("bfs: start %d: %w", start, core.ErrUnknownIndividual)
	}

	w := &walker{
		view:  v,
		opts:  o,
		queue: make([]queueItem, 0, n),
		res: &BFSResult{
			Order:  make([]core.ID, 0, n),
			Depth:  make(map[core.ID]int, n),
			Parent: make(map[core.ID]core.ID, n),
		},
	}

	w.discover(start, 0, core.None)
	w.loop()

	return w.res, nil
}

// discover records id at depth d with back-pointer from, fires OnVisit,
// and enqueues it. Reaching the target ends the search.
func (w *walker) discover(id core.ID, d int, from core.ID) {
	w.res.Depth[id] = d
	if from != core.None {
		w.res.Parent[id] = from
	}
	w.res.Order = append(w.res.Order, id)
	w.opts.OnVisit(id, d)
	if id == w.opts.Target {
		w.done = true
		return
	}
	w.queue = append(w.queue, queueItem{id: id, depth: d})
}

// loop processes the queue until empty or the target is found.
func (w *walker) loop() {
	for len(w.queue) > 0 && !w.done {
		item := w.queue[0]
		w.queue = w.queue[1:]

		next := item.depth + 1
		if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
			continue
		}
		for _, nbr := range w.neighbors(item.id) {
			if _, seen := w.res.Depth[nbr]; seen {
				continue
			}
			w.discover(nbr, next, item.id)
			if w.done {
				return
			}
		}
	}
}

// neighbors lists adjacent individuals in the configured direction:
// parents first, then children.
func (w *walker) neighbors(id core.ID) []core.ID {
	switch w.opts.Direction {
	case Up:
		return w.view.Parents(id)
	case Down:
		return w.view.Children(id)
	default:
		return slices.Concat(w.view.Parents(id), w.view.Children(id))
	}
}

// Ancestors returns the ancestors of id in ascending order, including id
// itself. WithMaxDepth(d) restricts the set to d generations; any
// Direction or Target option is overridden.
//
// Complexity: O(A log A) where A is the number of ancestors found.
func Ancestors(v core.View, id core.ID, opts ...Option) ([]core.ID, error) {
	res, err := BFS(v, id, slices.Concat(opts, []Option{WithDirection(Up), WithTarget(core.None)})...)
	if err != nil {
		return nil, err
	}
	out := slices.Clone(res.Order)
	slices.Sort(out)

	return out, nil
}

// ShortestPath returns a minimum-hop path from → to over the undirected
// view of the pedigree (each individual adjacent to parents and children).
// The path starts with from and ends with to; from == to yields [from].
//
// Errors:
//   - core.ErrUnknownIndividual (wrapped) if from or to is out of range.
//   - ErrNoPath if to is unreachable.
func ShortestPath(v core.View, from, to core.ID) ([]core.ID, error) {
	if v == nil {
		return nil, ErrViewNil
	}
	if to < 0 || int(to) >= v.Len() {
		return nil, fmt.Errorf("bfs: target %d: %w", to, core.ErrUnknownIndividual)
	}
	res, err := BFS(v, from, WithDirection(Both), WithTarget(to))
	if err != nil {
		return nil, err
	}

	return res.PathTo(to)
}

// Separation returns the degree of separation between a and b: the edge
// count of ShortestPath.
func Separation(v core.View, a, b core.ID) (int, error) {
	path, err := ShortestPath(v, a, b)
	if err != nil {
		return 0, err
	}

	return len(path) - 1, nil
}
