// File: topological.go
// Role: Generation ordering of a pedigree (Kahn's algorithm).
//
// Arena order already puts parents first when every edge is installed at
// creation time, but LinkParent can attach an older individual to a younger
// parent, so ID order alone is not enough.
//
// Complexity:
//   - Time:   O((V + E) log V), each individual pushed and popped once.
//   - Memory: O(V) for the in-degree slice and the ready heap.
package dfs

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/lineage/core"
)

// readyHeap is a min-heap of individuals whose parents are all placed.
type readyHeap []core.ID

func (h readyHeap) Len() int           { return len(h) }
func (h readyHeap) Less(i, j int) bool { return h[i] < h[j] }
func (h readyHeap) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }
func (h *readyHeap) Push(x any)        { *h = append(*h, x.(core.ID)) }
func (h *readyHeap) Pop() any {
	old := *h
	x := old[len(old)-1]
	*h = old[:len(old)-1]

	return x
}

// TopologicalSort returns all individuals of v, parents before children.
// Among individuals whose parents are all placed, the lowest ID comes first.
// If v is nil, returns ErrViewNil. If a cycle is found (impossible for a
// *core.Pedigree), returns ErrCycleDetected.
func TopologicalSort(v core.View) ([]core.ID, error) {
	// 1. Validate view
	if v == nil {
		return nil, ErrViewNil
	}
	n := v.Len()

	// 2. Count incoming child edges per individual
	indeg := make([]int, n)
	for id := core.ID(0); int(id) < n; id++ {
		for _, c := range v.Children(id) {
			if c >= 0 && int(c) < n {
				indeg[c]++
			}
		}
	}

	// 3. Seed the heap with every founder
	ready := &readyHeap{}
	for id := core.ID(0); int(id) < n; id++ {
		if indeg[id] == 0 {
			*ready = append(*ready, id)
		}
	}
	heap.Init(ready)

	// 4. Repeatedly place the lowest ready ID and release its children
	order := make([]core.ID, 0, n)
	for ready.Len() > 0 {
		id := heap.Pop(ready).(core.ID)
		order = append(order, id)
		for _, c := range v.Children(id) {
			if c < 0 || int(c) >= n {
				continue
			}
			indeg[c]--
			if indeg[c] == 0 {
				heap.Push(ready, c)
			}
		}
	}

	// 5. Anything left unplaced sits on a cycle
	if len(order) < n {
		return nil, fmt.Errorf("%w: %d of %d individuals unplaced", ErrCycleDetected, n-len(order), n)
	}

	return order, nil
}
