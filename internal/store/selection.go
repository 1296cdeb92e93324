package store

import (
	"sort"

	"github.com/pstuifzand/treelist/internal/model"
)

// SelectionSet tracks the set of logical indices currently selected. Indices
// are only meaningful against one version of the logical sequence, so every
// structural mutation of the store clears the set rather than remapping it.
type SelectionSet struct {
	indices map[int]struct{}
}

// NewSelectionSet creates an empty selection set
func NewSelectionSet() *SelectionSet {
	return &SelectionSet{
		indices: make(map[int]struct{}),
	}
}

// Toggle adds the index if absent, removes it if present
func (ss *SelectionSet) Toggle(idx int) {
	if _, ok := ss.indices[idx]; ok {
		delete(ss.indices, idx)
	} else {
		ss.indices[idx] = struct{}{}
	}
}

// ToggleAll flips membership for every logical index in 0..n-1. Returns
// false when the sequence is empty and nothing changed.
func (ss *SelectionSet) ToggleAll(n int) bool {
	if n == 0 {
		return false
	}
	for i := 0; i < n; i++ {
		ss.Toggle(i)
	}
	return true
}

// Clear empties the set
func (ss *SelectionSet) Clear() {
	ss.indices = make(map[int]struct{})
}

// Contains reports whether the index is selected
func (ss *SelectionSet) Contains(idx int) bool {
	_, ok := ss.indices[idx]
	return ok
}

// Len returns the number of selected indices
func (ss *SelectionSet) Len() int {
	return len(ss.indices)
}

// Indices returns the selected indices in ascending order
func (ss *SelectionSet) Indices() []int {
	result := make([]int, 0, len(ss.indices))
	for idx := range ss.indices {
		result = append(result, idx)
	}
	sort.Ints(result)
	return result
}

// Resolve returns the selected items from the given sequence snapshot,
// silently dropping indices that no longer resolve. When nothing is selected
// the item under the cursor is returned instead, or an empty result if the
// cursor resolves to nothing.
func (ss *SelectionSet) Resolve(items []*model.Item, cursorIdx int) []*model.Item {
	if len(ss.indices) > 0 {
		result := make([]*model.Item, 0, len(ss.indices))
		for _, idx := range ss.Indices() {
			if idx >= 0 && idx < len(items) {
				result = append(result, items[idx])
			}
		}
		return result
	}

	if cursorIdx >= 0 && cursorIdx < len(items) {
		return []*model.Item{items[cursorIdx]}
	}
	return nil
}
