package memory

import (
	"fmt"
	"sync"

	"github.com/Layr-Labs/incremental-merkle-go/pkg/merkle"
	"github.com/Layr-Labs/incremental-merkle-go/pkg/persistence"
)

// Ensure MemoryPersistence implements ITreePersistence
var _ persistence.ITreePersistence = (*MemoryPersistence)(nil)

// MemoryPersistence is an in-memory implementation of ITreePersistence.
// This implementation is intended for TESTING ONLY.
//
// The frontier is stored in memory and will be lost when the process exits.
// Thread-safe using sync.RWMutex for concurrent access.
// Deep copies the tree to prevent external mutation.
type MemoryPersistence struct {
	mu sync.RWMutex

	tree   *merkle.Tree
	closed bool
}

// NewMemoryPersistence creates a new in-memory persistence layer.
// Prints a loud warning since this should only be used for testing.
func NewMemoryPersistence() *MemoryPersistence {
	fmt.Println("⚠️  WARNING: Using in-memory persistence - THE TREE WILL BE LOST ON RESTART")
	fmt.Println("⚠️  This should ONLY be used for testing. Use the badger backend for production")

	return &MemoryPersistence{}
}

// LoadTree retrieves the stored frontier, or nil if none has been saved.
func (m *MemoryPersistence) LoadTree() (*merkle.Tree, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.closed {
		return nil, fmt.Errorf("persistence layer is closed")
	}

	if m.tree == nil {
		return nil, nil // Not found is not an error
	}

	// Deep copy to prevent external mutation
	return m.tree.Clone(), nil
}

// SaveTree stores the frontier, replacing any previous record.
func (m *MemoryPersistence) SaveTree(tree *merkle.Tree) error {
	if tree == nil {
		return fmt.Errorf("cannot save nil tree")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return fmt.Errorf("persistence layer is closed")
	}

	// Deep copy to prevent external mutation
	m.tree = tree.Clone()

	return nil
}

// Close marks the persistence layer as closed.
func (m *MemoryPersistence) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.closed = true
	return nil
}

// HealthCheck reports whether the layer is usable.
func (m *MemoryPersistence) HealthCheck() error {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.closed {
		return fmt.Errorf("persistence layer is closed")
	}
	return nil
}
