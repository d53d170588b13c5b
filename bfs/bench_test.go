package bfs_test

import (
	"testing"

	"github.com/katalvlaran/lineage/bfs"
	"github.com/katalvlaran/lineage/core"
)

// chain builds a single-parent line of n+1 individuals.
func chain(n int) *core.Pedigree[int] {
	p := core.New[int](core.WithCapacity(n + 1))
	prev := p.Add(0, core.None, core.None)
	for i := 1; i <= n; i++ {
		prev = p.Add(i, prev, core.None)
	}

	return p
}

// BenchmarkAncestors_Chain measures unbounded ancestor expansion on a deep line.
func BenchmarkAncestors_Chain(b *testing.B) {
	const N = 10000
	p := chain(N)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = bfs.Ancestors(p, N)
	}
}

// BenchmarkAncestors_Bounded shows the saving of a depth cap on the same line.
func BenchmarkAncestors_Bounded(b *testing.B) {
	const N = 10000
	p := chain(N)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = bfs.Ancestors(p, N, bfs.WithMaxDepth(16))
	}
}

// BenchmarkShortestPath_Chain measures end-to-end search along the line.
func BenchmarkShortestPath_Chain(b *testing.B) {
	const N = 10000
	p := chain(N)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = bfs.ShortestPath(p, 0, N)
	}
}
