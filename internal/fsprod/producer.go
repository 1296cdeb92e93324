// Package fsprod produces list items from directory trees. It is the demo
// producer behind the widget; real hosts plug in their own.
package fsprod

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/pstuifzand/treelist/internal/model"
)

// Producer streams filesystem entries as flat items. Every root gets its own
// source index so identical relative names from different roots stay
// distinguishable.
type Producer struct {
	roots []string
	total int
	done  bool
}

// New creates a producer over the given root directories
func New(roots ...string) *Producer {
	return &Producer{roots: roots}
}

// Scan reads the top level of every root and returns the combined batch.
// Entries are ordered directories-first, then by name; the widget preserves
// whatever order the producer delivers.
func (p *Producer) Scan() ([]*model.Item, error) {
	p.done = false

	var items []*model.Item
	for source, root := range p.roots {
		batch, err := readLevel(root, source, 0)
		if err != nil {
			return nil, err
		}
		items = append(items, batch...)
	}

	p.total = len(items)
	p.done = true
	return items, nil
}

// LoadChildren reads the flattened descendants of parent down to the given
// depth. Interior directories that got their children materialized carry
// Expanded, matching the sequence the widget will splice in.
func (p *Producer) LoadChildren(parent *model.Item, depth int) ([]*model.Item, error) {
	if parent.Path == "" {
		return nil, fmt.Errorf("item %q has no path to read", parent.Text)
	}
	return readTree(parent.Path, parent.SourceIndex, parent.Level+1, depth)
}

// Total reports how many items the last scan collected
func (p *Producer) Total() int {
	return p.total
}

// Done reports whether the last scan finished
func (p *Producer) Done() bool {
	return p.done
}

func readTree(dir string, source, level, depth int) ([]*model.Item, error) {
	items, err := readLevel(dir, source, level)
	if err != nil {
		return nil, err
	}
	if depth <= 1 {
		return items, nil
	}

	var out []*model.Item
	for _, item := range items {
		out = append(out, item)
		if !item.IsDir {
			continue
		}
		sub, err := readTree(item.Path, source, level+1, depth-1)
		if err != nil {
			// A single unreadable subdirectory does not fail the whole read
			continue
		}
		if len(sub) > 0 {
			item.Expanded = true
			out = append(out, sub...)
		}
	}
	return out, nil
}

func readLevel(dir string, source, level int) ([]*model.Item, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory %s: %w", dir, err)
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].IsDir() != entries[j].IsDir() {
			return entries[i].IsDir()
		}
		return entries[i].Name() < entries[j].Name()
	})

	items := make([]*model.Item, 0, len(entries))
	for _, entry := range entries {
		items = append(items, &model.Item{
			Text:        entry.Name(),
			Level:       level,
			IsDir:       entry.IsDir(),
			Path:        filepath.Join(dir, entry.Name()),
			SourceIndex: source,
		})
	}
	return items, nil
}
