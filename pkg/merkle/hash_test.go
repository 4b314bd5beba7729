package merkle

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wealdtech/go-merkletree/v2/keccak256"
)

// TestHashPairMatchesKeccak256 cross-checks the commit function against an
// independent keccak256 implementation over the same 64-byte concatenation
func TestHashPairMatchesKeccak256(t *testing.T) {
	left := randomLeaf()
	right := randomLeaf()

	got := HashPair(left, right)

	want := keccak256.New().Hash(left[:], right[:])
	require.Len(t, want, 32)
	assert.Equal(t, want, got[:])
}

// TestHashPairOrderSensitive checks that concatenation order matters
func TestHashPairOrderSensitive(t *testing.T) {
	a := randomLeaf()
	b := randomLeaf()

	assert.NotEqual(t, HashPair(a, b), HashPair(b, a))
	assert.Equal(t, HashPair(a, b), HashPair(a, b))
}
