package merkle

// zeroHashes[i] is the root of an empty subtree of height i:
// zeroHashes[0] is 32 zero bytes, zeroHashes[i] = HashPair(Z[i-1], Z[i-1]).
// Generated from the commit function at init rather than transcribed, so the
// table can never drift from the hashing it is defined by.
var zeroHashes = computeZeroHashes()

func computeZeroHashes() [TreeDepth][32]byte {
	var zeroes [TreeDepth][32]byte
	for i := 1; i < TreeDepth; i++ {
		zeroes[i] = HashPair(zeroes[i-1], zeroes[i-1])
	}
	return zeroes
}

// ZeroHash returns the root of an empty subtree of height level.
// It panics if level is outside [0, TreeDepth).
func ZeroHash(level int) [32]byte {
	return zeroHashes[level]
}

// ZeroHashes returns a copy of the full zero-hash table, one entry per tree
// level.
func ZeroHashes() [][32]byte {
	zeroes := make([][32]byte, TreeDepth)
	copy(zeroes, zeroHashes[:])
	return zeroes
}
