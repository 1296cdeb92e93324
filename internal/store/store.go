// Package store owns the logical item sequence and its selection state.
package store

import (
	"github.com/pstuifzand/treelist/internal/model"
)

// MaxItems caps how many items a single refresh materializes. Producers may
// hold more; anything beyond the cap is not spliced into the sequence.
const MaxItems = 1000

// Store holds the ordered logical sequence of items. The sequence is flat:
// hierarchy lives in each item's Level, and an expanded item is immediately
// followed by its descendants (the contiguous subtree). All lookups compare
// items by pointer identity or by path key, never by content.
type Store struct {
	items     []*model.Item
	expanded  *ExpandedPaths
	selection *SelectionSet
	prevLen   int
	refreshed bool
}

// NewStore creates an empty store
func NewStore() *Store {
	return &Store{
		items:     make([]*model.Item, 0),
		expanded:  NewExpandedPaths(),
		selection: NewSelectionSet(),
	}
}

// Items returns the logical sequence. Callers must not mutate it.
func (s *Store) Items() []*model.Item {
	return s.items
}

// Len returns the length of the logical sequence
func (s *Store) Len() int {
	return len(s.items)
}

// ItemAt returns the item at the given logical index
func (s *Store) ItemAt(idx int) (*model.Item, bool) {
	if idx < 0 || idx >= len(s.items) {
		return nil, false
	}
	return s.items[idx], true
}

// Selection returns the selection set owned by this store
func (s *Store) Selection() *SelectionSet {
	return s.selection
}

// ExpandedPaths returns the set of path keys currently expanded
func (s *Store) ExpandedPaths() *ExpandedPaths {
	return s.expanded
}

// PrevLen returns the sequence length before the most recent refresh
func (s *Store) PrevLen() int {
	return s.prevLen
}

// Refreshed reports whether a structural mutation happened since the last
// completed redraw
func (s *Store) Refreshed() bool {
	return s.refreshed
}

// ClearRefreshed marks the current sequence as painted
func (s *Store) ClearRefreshed() {
	s.refreshed = false
}

// Refresh replaces the logical sequence with at most MaxItems of the given
// items, preserving producer order. The previous length is recorded for the
// redraw policy and the selection is cleared: indices into the old sequence
// are meaningless against the new one.
func (s *Store) Refresh(newItems []*model.Item) {
	s.prevLen = len(s.items)

	n := len(newItems)
	if n > MaxItems {
		n = MaxItems
	}
	s.items = make([]*model.Item, n)
	copy(s.items, newItems[:n])

	s.refreshed = true
	s.selection.Clear()
}

// FindByIdentity returns the logical index of the item that is the same
// instance as target. Items with identical text are still distinct.
func (s *Store) FindByIdentity(target *model.Item) (int, bool) {
	for idx, item := range s.items {
		if item == target {
			return idx, true
		}
	}
	return 0, false
}

// FindByPathAndSource returns the logical index of the first item matching
// the given path key and source index
func (s *Store) FindByPathAndSource(key string, sourceIndex int) (int, bool) {
	for idx, item := range s.items {
		if item.SameKey(key, sourceIndex) {
			return idx, true
		}
	}
	return 0, false
}

// Expand splices children immediately after parent. The caller passes the
// parent handle with Expanded already set; the stored entry is overwritten
// with it and the parent's path key is recorded. Callers invoke this only on
// a currently-collapsed parent, so no scan for an existing subtree is done.
// If the parent is no longer present (it may have fallen past the refresh
// cap) the children are appended at the end rather than dropped.
func (s *Store) Expand(parent *model.Item, children []*model.Item) {
	pos, found := s.FindByPathAndSource(parent.PathKey(), parent.SourceIndex)
	if !found {
		s.items = append(s.items, children...)
	} else {
		// Safe concatenation: never append into the prefix of the live slice
		spliced := make([]*model.Item, 0, len(s.items)+len(children))
		spliced = append(spliced, s.items[:pos+1]...)
		spliced = append(spliced, children...)
		spliced = append(spliced, s.items[pos+1:]...)
		s.items = spliced

		s.items[pos] = parent
		s.expanded.Add(parent.PathKey())
	}

	s.refreshed = true
	s.selection.Clear()
}

// Collapse removes the contiguous subtree of the given item. The subtree
// ends at the first following item whose level is not greater than the
// target's; if no such item exists it extends to the end of the sequence.
// The stored entry is overwritten with the caller's collapsed handle and the
// path keys of every removed descendant are dropped from the expanded set.
// An item that is no longer present is a no-op.
func (s *Store) Collapse(item *model.Item) {
	defer s.selection.Clear()

	pos, found := s.FindByPathAndSource(item.PathKey(), item.SourceIndex)
	if !found {
		return
	}

	level := s.items[pos].Level
	end := pos + 1
	for end < len(s.items) && s.items[end].Level > level {
		end++
	}

	for i := pos + 1; i < end; i++ {
		s.expanded.Remove(s.items[i].PathKey())
	}

	s.items = append(s.items[:pos+1], s.items[end:]...)
	s.items[pos] = item
	s.expanded.Remove(item.PathKey())

	s.refreshed = true
}
