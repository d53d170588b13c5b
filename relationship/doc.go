// Package relationship computes genetic relatedness on a pedigree.
//
// What:
//
//   - Coefficient(v, x, y): Wright's path-counting coefficient of
//     relationship, treating every common ancestor as non-inbred.
//   - Contributions(v, x, y): the individual terms behind Coefficient.
//   - CommonAncestors(v, x, y): sorted intersection of both ancestor sets.
//   - Inbreeding(v, x): half the coefficient between x's two parents.
//
// Algorithm:
//
//  1. x == y is defined as 1.
//  2. common = Ancestors(x) ∩ Ancestors(y) (each set includes its own start).
//  3. For every A in common, enumerate lineage paths A→x and A→y.
//  4. A pair (p1, p2) counts iff p1 minus its trailing A shares nothing with
//     p2; reconverging lineages describe one transmission event, not two.
//  5. Each counted pair adds 0.5^(g1+g2), g being generations along the path.
//
// Reference values:
//
//	full siblings 0.5, half siblings 0.25, parent/child 0.5,
//	first cousins 0.125, second cousins 0.03125.
//
// Complexity:
//
//	Dominated by path enumeration: for each common ancestor, the product of
//	path counts to x and y. WithMaxDepth caps the ancestor set and therefore
//	the number of enumerations.
//
// Errors:
//
//   - ErrViewNil, ErrOptionViolation
//   - core.ErrUnknownIndividual (wrapped) for out-of-range IDs
package relationship
