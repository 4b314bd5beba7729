package memory

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Layr-Labs/incremental-merkle-go/pkg/merkle"
)

func TestMemoryPersistence_SaveAndLoadTree(t *testing.T) {
	mp := NewMemoryPersistence()
	defer func() { _ = mp.Close() }()

	tree := merkle.NewTree()
	require.NoError(t, tree.Insert([32]byte{1}))
	require.NoError(t, tree.Insert([32]byte{2}))

	err := mp.SaveTree(tree)
	require.NoError(t, err)

	loaded, err := mp.LoadTree()
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, tree, loaded)
}

func TestMemoryPersistence_LoadTree_NotFound(t *testing.T) {
	mp := NewMemoryPersistence()
	defer func() { _ = mp.Close() }()

	loaded, err := mp.LoadTree()
	require.NoError(t, err)
	assert.Nil(t, loaded)
}

func TestMemoryPersistence_SaveTree_Nil(t *testing.T) {
	mp := NewMemoryPersistence()
	defer func() { _ = mp.Close() }()

	err := mp.SaveTree(nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "nil tree")
}

func TestMemoryPersistence_DeepCopies(t *testing.T) {
	mp := NewMemoryPersistence()
	defer func() { _ = mp.Close() }()

	tree := merkle.NewTree()
	require.NoError(t, tree.Insert([32]byte{1}))
	require.NoError(t, mp.SaveTree(tree))

	// Mutating the caller's tree must not affect the stored copy.
	require.NoError(t, tree.Insert([32]byte{2}))

	loaded, err := mp.LoadTree()
	require.NoError(t, err)
	assert.Equal(t, uint32(1), loaded.Count)

	// Mutating a loaded tree must not affect the stored copy either.
	require.NoError(t, loaded.Insert([32]byte{3}))
	again, err := mp.LoadTree()
	require.NoError(t, err)
	assert.Equal(t, uint32(1), again.Count)
}

func TestMemoryPersistence_Closed(t *testing.T) {
	mp := NewMemoryPersistence()
	require.NoError(t, mp.Close())
	require.NoError(t, mp.Close()) // Idempotent

	_, err := mp.LoadTree()
	assert.Error(t, err)
	assert.Error(t, mp.SaveTree(merkle.NewTree()))
	assert.Error(t, mp.HealthCheck())
}

func TestMemoryPersistence_ConcurrentAccess(t *testing.T) {
	mp := NewMemoryPersistence()
	defer func() { _ = mp.Close() }()

	require.NoError(t, mp.SaveTree(merkle.NewTree()))

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(2)
		go func(i int) {
			defer wg.Done()
			tree := merkle.NewTree()
			_ = tree.Insert([32]byte{byte(i)})
			_ = mp.SaveTree(tree)
		}(i)
		go func() {
			defer wg.Done()
			_, _ = mp.LoadTree()
		}()
	}
	wg.Wait()

	require.NoError(t, mp.HealthCheck())
}
