// Package model contains the item model for the tree list
package model

// Item represents a single entry in the flattened tree list.
//
// The list is flat: hierarchy is expressed through Level, and an expanded
// item is immediately followed by its descendants (every following item with
// a greater Level, up to the next item with an equal or smaller Level).
// Items are compared by pointer identity only; two items with identical text
// are still distinct entries.
type Item struct {
	Text        string
	Level       int    // nesting depth, 0 = root level
	Expanded    bool   // true when the item's children are spliced into the list
	IsDir       bool   // true when the item can be expanded
	Path        string // optional addressable key; empty for items without one
	SourceIndex int    // which producer/source contributed the item
}

// NewItem creates a new root-level item
func NewItem(text string) *Item {
	return &Item{
		Text: text,
	}
}

// NewDirItem creates a new expandable item with a path key
func NewDirItem(text, path string, level int) *Item {
	return &Item{
		Text:  text,
		Level: level,
		IsDir: true,
		Path:  path,
	}
}

// PathKey returns the key used to locate this item across structural
// operations: the explicit path when present, the display text otherwise
func (i *Item) PathKey() string {
	if i.Path != "" {
		return i.Path
	}
	return i.Text
}

// SameKey reports whether the item matches the given path key and source
func (i *Item) SameKey(key string, sourceIndex int) bool {
	return i.PathKey() == key && i.SourceIndex == sourceIndex
}
