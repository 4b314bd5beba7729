package accumulator

import (
	"crypto/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Layr-Labs/incremental-merkle-go/pkg/merkle"
	"github.com/Layr-Labs/incremental-merkle-go/pkg/persistence"
	"github.com/Layr-Labs/incremental-merkle-go/pkg/persistence/memory"
)

func newTestService() *Service {
	return NewService(memory.NewMemoryPersistence(), zap.NewNop())
}

func randomLeaf() [32]byte {
	var leaf [32]byte
	_, _ = rand.Read(leaf[:])
	return leaf
}

func TestService_GetTree_Empty(t *testing.T) {
	svc := newTestService()

	tree, err := svc.GetTree()
	require.NoError(t, err)
	require.NotNil(t, tree)
	assert.Equal(t, uint32(0), tree.Count)
	assert.Empty(t, tree.Branch)
}

func TestService_InsertAndGetRoot(t *testing.T) {
	svc := newTestService()

	// The service root must track a directly maintained tree exactly.
	reference := merkle.NewTree()
	for i := 0; i < 20; i++ {
		leaf := randomLeaf()

		returned, err := svc.Insert(leaf)
		require.NoError(t, err)
		require.NoError(t, reference.Insert(leaf))

		assert.Equal(t, reference, returned, "insert %d returned wrong frontier", i)

		got, err := svc.GetRoot()
		require.NoError(t, err)
		want, err := reference.Root()
		require.NoError(t, err)
		assert.Equal(t, want, got, "root mismatch after insert %d", i)
	}
}

func TestService_GetRoot_EmptyTree(t *testing.T) {
	svc := newTestService()

	got, err := svc.GetRoot()
	require.NoError(t, err)

	want, err := merkle.NewTree().Root()
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestService_Insert_TreeFullLeavesStoreUntouched(t *testing.T) {
	store := memory.NewMemoryPersistence()
	svc := NewService(store, zap.NewNop())

	full := &merkle.Tree{Count: uint32(merkle.MaxLeaves)}
	require.NoError(t, store.SaveTree(full))

	before, err := store.LoadTree()
	require.NoError(t, err)
	beforeBytes, err := persistence.MarshalTree(before)
	require.NoError(t, err)

	_, err = svc.Insert(randomLeaf())
	require.ErrorIs(t, err, merkle.ErrTreeFull)

	after, err := store.LoadTree()
	require.NoError(t, err)
	afterBytes, err := persistence.MarshalTree(after)
	require.NoError(t, err)
	assert.Equal(t, beforeBytes, afterBytes)
}

func TestService_BranchRoot(t *testing.T) {
	svc := newTestService()
	leaf := randomLeaf()

	// Stateless pass-through: identical to the library function, with no
	// stored tree involved.
	assert.Equal(t, merkle.BranchRoot(leaf, nil, 3), svc.BranchRoot(leaf, nil, 3))
}
