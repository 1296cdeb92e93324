// Package view derives the host-visible row ordering from the logical
// sequence and decides how each redraw positions the cursor.
package view

import (
	"github.com/pstuifzand/treelist/internal/model"
	"github.com/pstuifzand/treelist/internal/store"
)

// Projector materializes the display-order view of the logical sequence and
// maps host row numbers back to logical items. The view is a copy, rebuilt on
// every redraw; it is never mutated in place.
type Projector struct {
	viewItems []*model.Item
	reversed  bool
}

// NewProjector creates a projector with an empty view
func NewProjector() *Projector {
	return &Projector{}
}

// Project rebuilds the display-order view from the logical sequence. With
// reversed set the iteration order is flipped; levels and parent/child
// adjacency are untouched.
func (p *Projector) Project(items []*model.Item, reversed bool) []*model.Item {
	view := make([]*model.Item, len(items))
	if reversed {
		for i, item := range items {
			view[len(items)-1-i] = item
		}
	} else {
		copy(view, items)
	}
	p.viewItems = view
	p.reversed = reversed
	return view
}

// ViewItems returns the last materialized display-order view
func (p *Projector) ViewItems() []*model.Item {
	return p.viewItems
}

// Len returns the number of rows in the last materialized view
func (p *Projector) Len() int {
	return len(p.viewItems)
}

// ResolveRow maps a 1-based host row number to the logical index of the item
// on that row. The item is re-resolved by identity against the store: once
// the view is reversed the display index says nothing about the logical one,
// and a refresh may have raced ahead of the host's last-known cursor, in
// which case the item is gone and the row does not resolve.
func (p *Projector) ResolveRow(row int, s *store.Store) (int, bool) {
	idx := row - 1
	if idx < 0 || idx >= len(p.viewItems) {
		return 0, false
	}
	return s.FindByIdentity(p.viewItems[idx])
}

// RowForIndex returns the 1-based display row of a logical index in the last
// materialized view
func (p *Projector) RowForIndex(idx int) int {
	if p.reversed {
		return len(p.viewItems) - idx
	}
	return idx + 1
}

// SearchItem locates the logical index of the given item by identity.
// Best effort: an absent item means no cursor move, never an error.
func (p *Projector) SearchItem(target *model.Item, s *store.Store) (int, bool) {
	return s.FindByIdentity(target)
}

// SearchPath locates the logical index of the first item whose path key
// matches the given path, from any source
func (p *Projector) SearchPath(path string, s *store.Store) (int, bool) {
	for idx, item := range s.Items() {
		if item.PathKey() == path {
			return idx, true
		}
	}
	return 0, false
}
