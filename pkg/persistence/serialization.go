package persistence

import (
	"encoding/json"
	"fmt"

	"github.com/ethereum/go-ethereum/common/hexutil"

	"github.com/Layr-Labs/incremental-merkle-go/pkg/merkle"
)

// treeRecord is the stored form of a frontier: the branch as hex-encoded
// 32-byte values indexed by tree level, plus the leaf count. This layout is
// the wire contract for the persisted record; the hashes themselves are raw
// 32-byte values with no internal framing.
type treeRecord struct {
	Branch []hexutil.Bytes `json:"branch"`
	Count  uint32          `json:"count"`
}

// MarshalTree serializes a frontier to its stored JSON form.
func MarshalTree(tree *merkle.Tree) ([]byte, error) {
	if tree == nil {
		return nil, fmt.Errorf("cannot marshal nil tree")
	}

	record := treeRecord{
		Branch: make([]hexutil.Bytes, len(tree.Branch)),
		Count:  tree.Count,
	}
	for i, node := range tree.Branch {
		entry := make(hexutil.Bytes, 32)
		copy(entry, node[:])
		record.Branch[i] = entry
	}

	data, err := json.Marshal(&record)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal tree to JSON: %w", err)
	}

	return data, nil
}

// UnmarshalTree deserializes a frontier from its stored JSON form. Records
// whose branch entries are not exactly 32 bytes, or whose branch exceeds the
// tree depth, are rejected with merkle.ErrInvalidState: they indicate a
// corrupted record, not a caller error.
func UnmarshalTree(data []byte) (*merkle.Tree, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("cannot unmarshal empty data")
	}

	var record treeRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, fmt.Errorf("failed to unmarshal JSON to tree: %w", err)
	}

	if len(record.Branch) > merkle.TreeDepth {
		return nil, fmt.Errorf("%w: persisted branch has %d entries, max %d",
			merkle.ErrInvalidState, len(record.Branch), merkle.TreeDepth)
	}

	tree := &merkle.Tree{Count: record.Count}
	if len(record.Branch) > 0 {
		tree.Branch = make([][32]byte, len(record.Branch))
		for i, entry := range record.Branch {
			if len(entry) != 32 {
				return nil, fmt.Errorf("%w: persisted branch entry %d is %d bytes, want 32",
					merkle.ErrInvalidState, i, len(entry))
			}
			copy(tree.Branch[i][:], entry)
		}
	}

	return tree, nil
}
