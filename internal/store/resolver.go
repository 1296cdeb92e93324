package store

import (
	"path/filepath"

	"github.com/pstuifzand/treelist/internal/model"
)

// ExpandRequest describes the single expansion step needed to make progress
// toward revealing TargetPath. Parent is the nearest already-present ancestor
// that is not yet expanded, and RequiredDepth is the minimum number of levels
// the producer should materialize in one step so the target becomes visible.
// TargetPath is carried along so the caller can re-resolve recursively after
// the expansion lands.
type ExpandRequest struct {
	Parent        *model.Item
	TargetPath    string
	RequiredDepth int
}

// ResolveExpansion walks ancestors of target upward until it finds an item
// already present in the store, counting the steps taken. A found ancestor
// that is already expanded, or reaching the filesystem root without a match,
// yields no action. Terminates in at most the number of path segments.
func (s *Store) ResolveExpansion(target string, sourceIndex int) (ExpandRequest, bool) {
	depth := 0
	candidate := target
	for {
		parent := filepath.Dir(candidate)
		if parent == candidate {
			// Reached the root with no match
			return ExpandRequest{}, false
		}
		candidate = parent
		depth++

		pos, found := s.FindByPathAndSource(candidate, sourceIndex)
		if !found {
			continue
		}
		if s.items[pos].Expanded {
			return ExpandRequest{}, false
		}
		return ExpandRequest{
			Parent:        s.items[pos],
			TargetPath:    target,
			RequiredDepth: depth,
		}, true
	}
}
