// File: dfs.go
// Role: Lineage path enumeration by depth-first search over child edges.
//
// Paths are read descendant-first, ancestor-last: [descendant, …, ancestor].
// The walk uses an explicit frame stack, so pedigree depth is bounded by
// memory rather than by goroutine stack size. Only children that are
// themselves ancestors of the descendant are entered.
package dfs

import (
	"slices"

	"github.com/katalvlaran/lineage/core"
)

// frame is one level of the explicit DFS stack.
type frame struct {
	id       core.ID
	children []core.ID
	next     int // index of the next child to explore
}

// pathWalker encapsulates state during path enumeration.
type pathWalker struct {
	view       core.View
	opts       DFSOptions
	descendant core.ID
	ancestry   []bool // ancestry[id]: descendant is reachable from id
	stack      []frame
	onPath     map[core.ID]bool
	out        [][]core.ID
}

// Paths returns every simple downward path from ancestor to descendant.
//
// Behavior:
//   - ancestor == descendant yields exactly [[ancestor]].
//   - An unreachable descendant, or an unknown ID on either side, yields an
//     empty (nil) result; Paths never fails on IDs.
//   - An invalid Option or nil view also yields nil; use Enumerate to see why.
//   - Paths appear in depth-first order, children visited in insertion order.
//
// Complexity: one upward sweep over the descendant's ancestry, then a walk
// confined to it; exponential in the number of reconverging lineages.
func Paths(v core.View, ancestor, descendant core.ID, opts ...Option) [][]core.ID {
	paths, _ := Enumerate(v, ancestor, descendant, opts...)

	return paths
}

// Enumerate is Paths with option and view validation surfaced as errors
// (ErrViewNil, ErrOptionViolation). Unknown IDs still yield nil, nil.
func Enumerate(v core.View, ancestor, descendant core.ID, opts ...Option) ([][]core.ID, error) {
	if v == nil {
		return nil, ErrViewNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	n := v.Len()
	if ancestor < 0 || int(ancestor) >= n || descendant < 0 || int(descendant) >= n {
		return nil, nil
	}
	// 1. Base case: an individual is its own zero-generation lineage.
	if ancestor == descendant {
		return [][]core.ID{{ancestor}}, nil
	}

	// 2. Restrict the walk to individuals the descendant descends from.
	ancestry := ancestryOf(v, descendant, n)
	if !ancestry[ancestor] {
		return nil, nil
	}

	w := &pathWalker{
		view:       v,
		opts:       o,
		descendant: descendant,
		ancestry:   ancestry,
		onPath:     map[core.ID]bool{ancestor: true},
	}
	w.push(ancestor)
	w.run()

	return w.out, nil
}

// ancestryOf marks id and everything reachable from it over parent edges.
func ancestryOf(v core.View, id core.ID, n int) []bool {
	seen := make([]bool, n)
	seen[id] = true
	stack := []core.ID{id}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, p := range v.Parents(cur) {
			if p < 0 || int(p) >= n || seen[p] {
				continue
			}
			seen[p] = true
			stack = append(stack, p)
		}
	}

	return seen
}

// push opens a frame for id.
func (w *pathWalker) push(id core.ID) {
	w.stack = append(w.stack, frame{id: id, children: w.view.Children(id)})
	w.onPath[id] = true
}

// pop closes the top frame.
func (w *pathWalker) pop() {
	top := w.stack[len(w.stack)-1]
	w.stack = w.stack[:len(w.stack)-1]
	delete(w.onPath, top.id)
}

// run drives the explicit stack until exhausted or MaxPaths is reached.
func (w *pathWalker) run() {
	for len(w.stack) > 0 {
		// 3. Stop early once enough paths are collected.
		if w.opts.MaxPaths > 0 && len(w.out) >= w.opts.MaxPaths {
			return
		}
		top := &w.stack[len(w.stack)-1]
		if top.next >= len(top.children) {
			w.pop()
			continue
		}
		child := top.children[top.next]
		top.next++

		// generations from the ancestor to child
		depth := len(w.stack)
		if w.opts.MaxDepth > 0 && depth > w.opts.MaxDepth {
			continue
		}
		// 4. Reached the descendant: emit descendant-first.
		if child == w.descendant {
			w.emit()
			continue
		}
		// 5. Otherwise descend into the descendant's ancestry only, never
		// revisiting a node on the current path.
		if child < 0 || int(child) >= len(w.ancestry) || !w.ancestry[child] {
			continue
		}
		if !w.onPath[child] {
			w.push(child)
		}
	}
}

// emit records [descendant, stack top, …, ancestor].
func (w *pathWalker) emit() {
	path := make([]core.ID, 0, len(w.stack)+1)
	path = append(path, w.descendant)
	for i := len(w.stack) - 1; i >= 0; i-- {
		path = append(path, w.stack[i].id)
	}
	w.out = append(w.out, path)
}

// IsDescendantOf reports whether at least one lineage path leads from
// ancestor down to descendant. An individual counts as its own descendant.
// An unrelated pair costs one upward sweep from descendant and no child walk.
func IsDescendantOf(v core.View, ancestor, descendant core.ID) bool {
	return len(Paths(v, ancestor, descendant, WithMaxPaths(1))) > 0
}

// Generations returns the length in generations of every path from
// ancestor to descendant, ascending.
func Generations(v core.View, ancestor, descendant core.ID) []int {
	paths := Paths(v, ancestor, descendant)
	out := make([]int, len(paths))
	for i, p := range paths {
		out[i] = len(p) - 1
	}
	slices.Sort(out)

	return out
}
