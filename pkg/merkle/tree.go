package merkle

import "fmt"

// Insert appends leaf as the next position in the tree, updating the cached
// branch hashes. It returns ErrTreeFull once MaxLeaves leaves have been
// inserted and ErrInvalidState if the branch has grown past TreeDepth.
// Both checks run before any mutation: a failed Insert leaves the tree
// exactly as it was.
func (t *Tree) Insert(leaf [32]byte) error {
	if uint64(t.Count) >= MaxLeaves {
		return fmt.Errorf("%w: %d leaves", ErrTreeFull, t.Count)
	}
	if len(t.Branch) > TreeDepth {
		return fmt.Errorf("%w: branch has %d entries, max %d", ErrInvalidState, len(t.Branch), TreeDepth)
	}

	t.Count++
	node := leaf
	size := t.Count
	for i := 0; i < TreeDepth; i++ {
		// The lowest set bit of the post-increment count marks the level
		// whose subtree this insertion completes. Levels below it already
		// hold completed subtrees that the new leaf merges into.
		if size&1 == 1 {
			if i < len(t.Branch) {
				t.Branch[i] = node
			} else {
				t.Branch = append(t.Branch, node)
			}
			return nil
		}

		node = HashPair(t.Branch[i], node)
		size >>= 1
	}

	// Count is nonzero and fits in TreeDepth bits, so some bit above is
	// always set and the loop returns from inside. Reaching here means the
	// capacity invariant itself is broken, which neither declared error
	// covers.
	panic("merkle: insert fell through the update loop; count invariant violated")
}

// Root returns the current root of the tree: the root of the full depth-32
// tree whose first Count leaves are the inserted values and whose remaining
// positions are empty subtrees. Pure read, no mutation.
func (t *Tree) Root() ([32]byte, error) {
	return t.RootWithZeroes(zeroHashes[:])
}

// RootWithZeroes is Root with a caller-supplied zero-hash table. The table
// must have exactly TreeDepth entries; it exists so a verifier carrying
// legacy compiled constants can feed them in place of the generated table.
func (t *Tree) RootWithZeroes(zeroes [][32]byte) ([32]byte, error) {
	if len(t.Branch) > TreeDepth {
		return [32]byte{}, fmt.Errorf("%w: branch has %d entries, max %d", ErrInvalidState, len(t.Branch), TreeDepth)
	}
	if len(zeroes) != TreeDepth {
		return [32]byte{}, fmt.Errorf("%w: zero-hash table has %d entries, want %d", ErrInvalidState, len(zeroes), TreeDepth)
	}

	var current [32]byte
	for i := 0; i < TreeDepth; i++ {
		if (t.Count>>uint(i))&1 == 1 {
			// A completed left subtree at this level combines with the
			// accumulated right-hand value.
			current = HashPair(t.branchAt(i), current)
		} else {
			// The right sibling at this level is provably empty.
			current = HashPair(current, zeroes[i])
		}
	}
	return current, nil
}

// branchAt reads a branch slot, treating missing slots as zero. Matches the
// accumulator's sparse-branch encoding where trailing slots are simply
// absent.
func (t *Tree) branchAt(i int) [32]byte {
	if i < len(t.Branch) {
		return t.Branch[i]
	}
	return [32]byte{}
}
