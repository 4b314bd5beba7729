package merkle

import (
	"fmt"
	"testing"
)

// BenchmarkInsert benchmarks sequential leaf insertion
func BenchmarkInsert(b *testing.B) {
	leaf := randomLeaf()
	tree := NewTree()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = tree.Insert(leaf)
	}
}

// BenchmarkRoot benchmarks root derivation at various fill levels
func BenchmarkRoot(b *testing.B) {
	sizes := []int{0, 100, 10000}

	for _, size := range sizes {
		tree := NewTree()
		for i := 0; i < size; i++ {
			_ = tree.Insert(randomLeaf())
		}

		b.Run(fmt.Sprintf("Leaves_%d", size), func(b *testing.B) {
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				_, _ = tree.Root()
			}
		})
	}
}

// BenchmarkBranchRoot benchmarks stateless proof recomputation
func BenchmarkBranchRoot(b *testing.B) {
	leaf := randomLeaf()
	path := make([][32]byte, TreeDepth)
	for i := range path {
		path[i] = randomLeaf()
	}
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = BranchRoot(leaf, path, 12345)
	}
}
