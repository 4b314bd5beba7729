// Package accumulator is the dispatch layer over the incremental merkle
// tree: each external call loads the frontier from persistence, applies at
// most one mutation, and saves it back. It mirrors the entry points of the
// on-chain accumulator contract (get_tree / insert / get_root).
package accumulator

import (
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/Layr-Labs/incremental-merkle-go/pkg/merkle"
	"github.com/Layr-Labs/incremental-merkle-go/pkg/persistence"
)

// Service wires the tree to a persistence backend. It performs one
// load → mutate → save round trip per call and holds no tree state of its
// own between calls.
//
// Concurrent calls against the same stored tree must be serialized by the
// caller; the service adds no locking around the load/save window.
type Service struct {
	store  persistence.ITreePersistence
	logger *zap.Logger
}

// NewService creates an accumulator service on top of a persistence backend.
func NewService(store persistence.ITreePersistence, logger *zap.Logger) *Service {
	return &Service{
		store:  store,
		logger: logger,
	}
}

// GetTree loads the current frontier. An absent record is an empty tree,
// matching the contract's default when nothing has been stored yet.
func (s *Service) GetTree() (*merkle.Tree, error) {
	tree, err := s.store.LoadTree()
	if err != nil {
		return nil, errors.Wrap(err, "loading tree")
	}
	if tree == nil {
		return merkle.NewTree(), nil
	}
	return tree, nil
}

// Insert appends a leaf to the stored tree and returns the post-insertion
// frontier. Nothing is saved when the insertion fails, so a rejected call
// leaves the stored record untouched.
func (s *Service) Insert(leaf [32]byte) (*merkle.Tree, error) {
	tree, err := s.GetTree()
	if err != nil {
		return nil, err
	}

	if err := tree.Insert(leaf); err != nil {
		return nil, err
	}

	if err := s.store.SaveTree(tree); err != nil {
		return nil, errors.Wrap(err, "saving tree")
	}

	s.logger.Sugar().Debugw("Inserted leaf", "count", tree.Count)

	return tree, nil
}

// GetRoot loads the current frontier and derives its root.
func (s *Service) GetRoot() ([32]byte, error) {
	tree, err := s.GetTree()
	if err != nil {
		return [32]byte{}, err
	}
	return tree.Root()
}

// BranchRoot recomputes a root from a leaf, a sibling path, and an index.
// Pass-through to the stateless verifier; requires no stored state.
func (s *Service) BranchRoot(leaf [32]byte, proof [][32]byte, index uint64) [32]byte {
	return merkle.BranchRoot(leaf, proof, index)
}
