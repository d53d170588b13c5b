// Package bfs provides breadth-first search over a pedigree (core.View),
// returning hop distances, back-pointers, and discovery order.
//
// What
//
//   - BFS: generic layer-by-layer walker over parent edges (Up), child
//     edges (Down), or both (undirected view of the pedigree).
//   - Ancestors: the sorted set of ancestors of an individual, including
//     the individual itself, optionally bounded to MaxDepth generations.
//   - ShortestPath / Separation: minimum-hop route between two individuals
//     through any mix of parent and child edges ("degree of separation").
//
// Why
//
//   - The contribution of an ancestor g generations back to a coefficient of
//     relationship is bounded by 0.5^g, so capping ancestor expansion at a
//     modest depth keeps deep or wide pedigrees cheap without visible loss.
//   - Including the start in Ancestors lets relationship treat "an individual
//     related to its own ancestor" as the degenerate common-ancestor case.
//
// Determinism
//
//	Neighbors are visited parents first (insertion order), then children
//	(insertion order), so Order and the reconstructed paths are reproducible.
//
// Complexity (V = individuals, E = parent/child edges)
//
//   - Time:   O(V + E)
//   - Memory: O(V)     (queue, Depth map, Parent map)
//
// Usage
//
//	anc, err := bfs.Ancestors(p, id, bfs.WithMaxDepth(8))
//	path, err := bfs.ShortestPath(p, from, to)
//
// Options
//
//   - DefaultOptions(): both directions, no depth limit, no target, no-op hook.
//   - WithDirection(d):  Up, Down, or Both.
//   - WithMaxDepth(d):   stop exploring beyond depth d (>0); 0 = unbounded.
//   - WithTarget(id):    stop as soon as id is discovered.
//   - WithOnVisit(fn):   hook on discovery.
//
// Errors
//
//   - ErrViewNil             if the view is nil.
//   - core.ErrUnknownIndividual (wrapped) if the start or target is out of range.
//   - ErrOptionViolation     for a negative MaxDepth or unknown Direction.
//   - ErrNoPath              from PathTo/ShortestPath when the target was not reached.
package bfs
