package merkle

import "fmt"

// BranchRoot recomputes a root from a leaf, its sibling path, and its index.
// Stateless: it references no tree and can be used on its own for
// third-party proof checking. The caller compares the result against a
// trusted root; this function never does that comparison itself.
//
// Bit i of index selects the direction at level i: set means the running
// hash is the right child, clear means it is the left child.
//
// A proof shorter than TreeDepth has its missing entries treated as 32 zero
// bytes. This is bit-exact with the legacy accumulator; zero bytes only
// equal the true empty-subtree hash at level 0, so callers wanting the
// padding rejected should go through Proof.Root instead.
func BranchRoot(leaf [32]byte, proof [][32]byte, index uint64) [32]byte {
	current := leaf
	for i := 0; i < TreeDepth; i++ {
		var sibling [32]byte
		if i < len(proof) {
			sibling = proof[i]
		}

		if (index>>uint(i))&1 == 1 {
			current = HashPair(sibling, current)
		} else {
			current = HashPair(current, sibling)
		}
	}
	return current
}

// Root recomputes the root this proof commits to. Unlike BranchRoot it is
// strict: a sibling path that is not exactly TreeDepth entries long is
// rejected with ErrInvalidState instead of being zero-padded.
func (p *Proof) Root() ([32]byte, error) {
	if len(p.Siblings) != TreeDepth {
		return [32]byte{}, fmt.Errorf("%w: proof has %d siblings, want %d", ErrInvalidState, len(p.Siblings), TreeDepth)
	}
	return BranchRoot(p.Leaf, p.Siblings, p.LeafIndex), nil
}

// Verify reports whether the proof resolves to root. A malformed proof
// verifies as false.
func (p *Proof) Verify(root [32]byte) bool {
	computed, err := p.Root()
	if err != nil {
		return false
	}
	return computed == root
}
