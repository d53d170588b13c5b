// Package lineage is an in-memory pedigree engine: individuals linked by
// parent/child edges (at most two parents each) in an append-only arena,
// with the genealogical queries built on top.
//
// What is in the box?
//
//   - core/          — Pedigree arena, Individual records, cycle-safe parent edges
//   - bfs/           — ancestor sets (optionally depth-bounded), shortest path,
//     degree of separation
//   - dfs/           — every lineage path between an ancestor and a descendant,
//     descendant test, generation ordering
//   - relationship/  — coefficient of relationship, its contributing terms,
//     common ancestors, coefficient of inbreeding
//   - cmd/pedigree   — CLI over built-in sample pedigrees
//
// Quick ASCII example:
//
//	A ───┬─── B
//	   ┌─┴─┐
//	   C   D
//
//	r(C, D) = 0.5: two common ancestors, each contributing 0.5².
//
// The payload type is generic and never inspected. Persistence, parsing, and
// presentation are left to the embedding application.
//
//	go get github.com/katalvlaran/lineage
package lineage
