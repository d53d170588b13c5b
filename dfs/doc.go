// Package dfs implements depth-first lineage enumeration and generation
// ordering on a pedigree (core.View).
//
// What:
//
//   - Paths: every simple downward path from an ancestor to a descendant,
//     each read descendant-first, ancestor-last. Supports:
//   - Depth limiting (MaxDepth generations)
//   - Early exit after MaxPaths paths
//   - IsDescendantOf: true iff Paths finds at least one path.
//   - Generations: the generation count of every lineage path.
//   - TopologicalSort: parents before children, ties by ascending ID.
//
// Why:
//   - The relationship package pairs lineage paths from a common ancestor
//     to two individuals; each independent pair is one gene-transmission route.
//   - Ordering by generation lets callers fill per-individual caches (for
//     example inbreeding) in a single pass.
//
// Key Types & Constants:
//
//   - Option / DFSOptions: MaxDepth, MaxPaths
//
// Complexity:
//
//   - Paths:           exponential in child fan-out (worst case), linear in depth;
//     memory O(depth) for the explicit stack plus the output.
//   - TopologicalSort: Time O((V+E) log V), Memory O(V)
//
// Errors:
//
//   - ErrViewNil          view is nil (Enumerate, TopologicalSort)
//   - ErrCycleDetected    a View that is not a DAG (TopologicalSort)
//   - ErrOptionViolation  negative limits (Enumerate; Paths returns nil instead)
//
// Paths never reports an error for IDs: an unknown ancestor simply has no
// children to explore, and an unknown or unreachable descendant is never met.
package dfs
