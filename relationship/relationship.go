// Package relationship computes Wright's coefficient of relationship between
// two individuals of a pedigree by path counting through common ancestors.
package relationship

import (
	"fmt"
	"math"
	"slices"

	"github.com/katalvlaran/lineage/bfs"
	"github.com/katalvlaran/lineage/core"
	"github.com/katalvlaran/lineage/dfs"
)

// Coefficient returns the coefficient of relationship between id1 and id2,
// a value in [0, 1] for pedigrees without inbred common ancestors.
//
// Implementation:
//   - Stage 1: id1 == id2 is defined as 1.
//   - Stage 2: Sum every Contribution (see Contributions).
//
// Errors:
//   - ErrViewNil, ErrOptionViolation.
//   - core.ErrUnknownIndividual (wrapped) if either ID is out of range.
func Coefficient(v core.View, id1, id2 core.ID, opts ...Option) (float64, error) {
	o, err := prepare(v, opts, id1, id2)
	if err != nil {
		return 0, err
	}
	if id1 == id2 {
		return 1, nil
	}

	terms, err := contributions(v, id1, id2, o)
	if err != nil {
		return 0, err
	}
	var sum float64
	for _, t := range terms {
		sum += t.Value
	}

	return sum, nil
}

// Contributions lists every term of the coefficient of relationship between
// id1 and id2, grouped by common ancestor in ascending ID order.
//
// For each common ancestor A, every pair (p1, p2) of lineage paths from A to
// id1 and id2 qualifies iff p1 without its trailing A shares no individual
// with p2, i.e. the two lineages never reconverge below A. Dropping A from
// one side is enough: a simple path holds A only at its end.
//
// For id1 == id2 the coefficient is defined rather than computed, and
// Contributions returns nil.
func Contributions(v core.View, id1, id2 core.ID, opts ...Option) ([]Contribution, error) {
	o, err := prepare(v, opts, id1, id2)
	if err != nil {
		return nil, err
	}
	if id1 == id2 {
		return nil, nil
	}

	return contributions(v, id1, id2, o)
}

func contributions(v core.View, id1, id2 core.ID, o Options) ([]Contribution, error) {
	common, err := commonAncestors(v, id1, id2, o)
	if err != nil {
		return nil, err
	}

	var out []Contribution
	for _, a := range common {
		paths1 := dfs.Paths(v, a, id1)
		paths2 := dfs.Paths(v, a, id2)
		for _, p1 := range paths1 {
			trimmed := p1[:len(p1)-1]
			for _, p2 := range paths2 {
				if !disjoint(trimmed, p2) {
					continue
				}
				g1, g2 := len(p1)-1, len(p2)-1
				out = append(out, Contribution{
					Ancestor:     a,
					Path1:        p1,
					Path2:        p2,
					Generations1: g1,
					Generations2: g2,
					Value:        math.Ldexp(1, -(g1 + g2)),
				})
			}
		}
	}

	return out, nil
}

// CommonAncestors returns the ascending intersection of the ancestor sets of
// id1 and id2. Either ID is included when it is an ancestor of the other.
func CommonAncestors(v core.View, id1, id2 core.ID, opts ...Option) ([]core.ID, error) {
	o, err := prepare(v, opts, id1, id2)
	if err != nil {
		return nil, err
	}

	return commonAncestors(v, id1, id2, o)
}

func commonAncestors(v core.View, id1, id2 core.ID, o Options) ([]core.ID, error) {
	anc1, err := bfs.Ancestors(v, id1, bfs.WithMaxDepth(o.MaxDepth))
	if err != nil {
		return nil, err
	}
	anc2, err := bfs.Ancestors(v, id2, bfs.WithMaxDepth(o.MaxDepth))
	if err != nil {
		return nil, err
	}

	return intersectSorted(anc1, anc2), nil
}

// Inbreeding returns the coefficient of inbreeding of id: half the
// coefficient of relationship between its two parents, or 0 when fewer than
// two parents are recorded.
func Inbreeding(v core.View, id core.ID, opts ...Option) (float64, error) {
	if _, err := prepare(v, opts, id); err != nil {
		return 0, err
	}
	parents := v.Parents(id)
	if len(parents) < 2 {
		return 0, nil
	}
	r, err := Coefficient(v, parents[0], parents[1], opts...)
	if err != nil {
		return 0, err
	}

	return r / 2, nil
}

// prepare applies opts and validates the view and every ID.
func prepare(v core.View, opts []Option, ids ...core.ID) (Options, error) {
	o := DefaultOptions()
	if v == nil {
		return o, ErrViewNil
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return o, o.err
	}
	n := v.Len()
	for _, id := range ids {
		if id < 0 || int(id) >= n {
			return o, fmt.Errorf("relationship: %d: %w", id, core.ErrUnknownIndividual)
		}
	}

	return o, nil
}

// intersectSorted merges two ascending ID slices into their intersection.
func intersectSorted(a, b []core.ID) []core.ID {
	var out []core.ID
	for i, j := 0, 0; i < len(a) && j < len(b); {
		switch {
		case a[i] < b[j]:
			i++
		case a[i] > b[j]:
			j++
		default:
			out = append(out, a[i])
			i++
			j++
		}
	}

	return out
}

// disjoint reports whether a and b share no individual.
func disjoint(a, b []core.ID) bool {
	for _, x := range a {
		if slices.Contains(b, x) {
			return false
		}
	}

	return true
}
