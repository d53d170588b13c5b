// Package core provides the pedigree arena: an append-only, index-addressed
// store of individuals linked by parent/child edges.
//
// The Pedigree P = (V,E) keeps these invariants at all times:
//
//   - IDs are assigned sequentially from 0 and never reused or reassigned.
//   - E is a DAG: no individual can become its own ancestor.
//   - At most two parent edges per individual (MaxParents).
//   - Linkage is bidirectional: p ∈ child.Parents ⇔ child ∈ p.Children.
//
// Why an arena?
//
//   - Edges are plain ID slices, so there are no reference cycles to manage
//     and the cycle gate is a reachability query instead of a lifetime problem.
//   - A stable integer ID is cheap to copy into result sets and paths.
//
// Construction:
//
//	p := core.New[string](core.WithLogger(logger))
//	a := p.Add("A", core.None, core.None)
//	b := p.Add("B", core.None, core.None)
//	c := p.AddIndividual("C", a, b, core.WithSex(core.Female))
//
// Add never fails. A parent edge that cannot be installed (unknown ID,
// duplicate, third parent, or cycle) is logged at warn level and left out.
// LinkParent exposes the same gate with a wrapped sentinel error, and
// AddParent reduces it to a bool.
//
// Errors:
//
//	ErrUnknownIndividual, ErrCycle, ErrTooManyParents, ErrDuplicateParent.
//
// Concurrency:
//
//	A single sync.RWMutex guards the arena. Appends are serialized; every
//	accessor takes the read lock and returns copies, so queries may run
//	alongside population. Nothing here blocks on I/O.
//
// Traversal algorithms live in sibling packages (bfs, dfs, relationship) and
// consume the read-only View interface implemented by *Pedigree.
package core
