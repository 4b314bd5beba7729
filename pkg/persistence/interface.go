package persistence

import "github.com/Layr-Labs/incremental-merkle-go/pkg/merkle"

// ITreePersistence defines the interface for persisting the accumulator
// frontier between calls. All implementations must be thread-safe; the
// frontier itself is loaded in full, mutated in memory, and handed back,
// so each backend stores exactly one record per tree instance.
//
// The interface supports:
// - Frontier load/save under a single fixed key
// - Lifecycle management (close, health check)
type ITreePersistence interface {
	// LoadTree retrieves the persisted frontier.
	// Returns nil if no tree has been saved yet (callers treat that as an
	// empty frontier), error only on storage failure.
	LoadTree() (*merkle.Tree, error)

	// SaveTree persists the frontier, overwriting any previous record.
	SaveTree(tree *merkle.Tree) error

	// Close cleanly shuts down the persistence layer.
	// Idempotent - safe to call multiple times.
	// After Close(), all other operations should return errors.
	Close() error

	// HealthCheck verifies the persistence layer is operational.
	// Returns nil if healthy, error describing the problem if not.
	HealthCheck() error
}
