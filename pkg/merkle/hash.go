package merkle

import "github.com/ethereum/go-ethereum/crypto"

// HashPair computes keccak256(left || right) for two 32-byte hashes.
// The concatenation order is part of the cross-chain compatibility contract:
// an independent verifier reproducing this accumulator must hash the left
// child first.
func HashPair(left, right [32]byte) [32]byte {
	data := make([]byte, 64)
	copy(data[0:32], left[:])
	copy(data[32:64], right[:])

	hash := crypto.Keccak256Hash(data)
	return [32]byte(hash)
}
