package merkle

import "errors"

const (
	// TreeDepth is the fixed depth of the accumulator. Every tree in this
	// package is conceptually a full binary tree of this depth whose unfilled
	// positions are empty subtrees.
	TreeDepth = 32

	// MaxLeaves is the number of leaves at which Insert starts rejecting with
	// ErrTreeFull. The on-chain counterpart uses the same bound, so trees on
	// both sides fill up at exactly the same count.
	MaxLeaves uint64 = 1<<TreeDepth - 1
)

var (
	// ErrTreeFull is returned by Insert once the tree has reached MaxLeaves.
	// The tree is left unchanged by the rejected call.
	ErrTreeFull = errors.New("merkle tree is full")

	// ErrInvalidState is returned when a structural invariant does not hold
	// (branch longer than the tree depth, malformed persisted record). It
	// signals corrupted state rather than a caller mistake and is not
	// retryable.
	ErrInvalidState = errors.New("merkle tree state is invalid")
)

// Tree is the incremental merkle tree frontier: the minimal state needed to
// extend the tree by one leaf and to recompute its root, without storing the
// leaves themselves.
//
// Branch[i] holds the root of the most recent fully-filled subtree of height
// i, for every bit i set in Count. Lower slots fill before higher ones, so
// len(Branch) never exceeds TreeDepth.
//
// Tree is not safe for concurrent use. Callers that share a tree across
// goroutines must serialize access themselves.
type Tree struct {
	// Branch contains the cached per-level hashes. Sparse: only slots whose
	// level has a completed subtree are meaningful.
	Branch [][32]byte

	// Count is the number of leaves inserted so far.
	Count uint32
}

// NewTree returns an empty frontier (no leaves, nil branch).
func NewTree() *Tree {
	return &Tree{}
}

// Clone returns a deep copy of the tree.
func (t *Tree) Clone() *Tree {
	c := &Tree{Count: t.Count}
	if t.Branch != nil {
		c.Branch = make([][32]byte, len(t.Branch))
		copy(c.Branch, t.Branch)
	}
	return c
}

// Proof is a sibling path proving that a leaf occupies a given index in a
// tree. Siblings[0] is the leaf's sibling, Siblings[TreeDepth-1] is adjacent
// to the root.
type Proof struct {
	// LeafIndex is the position of the leaf in the tree.
	LeafIndex uint64

	// Leaf is the 32-byte leaf value being proven.
	Leaf [32]byte

	// Siblings are the hashes along the path from leaf to root. A valid
	// proof has exactly TreeDepth entries.
	Siblings [][32]byte
}
