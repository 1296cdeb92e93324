package view

import (
	"fmt"
	"testing"

	"github.com/pstuifzand/treelist/internal/model"
	"github.com/pstuifzand/treelist/internal/store"
)

func makeStore(n int) (*store.Store, []*model.Item) {
	items := make([]*model.Item, n)
	for i := range items {
		items[i] = model.NewItem(fmt.Sprintf("item %d", i))
	}
	s := store.NewStore()
	s.Refresh(items)
	return s, s.Items()
}

func TestProjectIdentityOrder(t *testing.T) {
	s, items := makeStore(3)

	p := NewProjector()
	view := p.Project(s.Items(), false)

	for i := range items {
		if view[i] != items[i] {
			t.Fatalf("At index %d: display order differs from logical order", i)
		}
	}
}

func TestProjectReversed(t *testing.T) {
	s, items := makeStore(4)

	p := NewProjector()
	view := p.Project(s.Items(), true)

	for i := range items {
		if view[i] != items[len(items)-1-i] {
			t.Fatalf("At index %d: expected %s, got %s", i, items[len(items)-1-i].Text, view[i].Text)
		}
	}
}

func TestProjectReturnsACopy(t *testing.T) {
	s, _ := makeStore(2)

	p := NewProjector()
	view := p.Project(s.Items(), false)

	view[0] = model.NewItem("intruder")
	if s.Items()[0].Text == "intruder" {
		t.Error("Mutating the view reached the logical sequence")
	}
}

func TestResolveRowReversedMapping(t *testing.T) {
	const n = 5
	s, items := makeStore(n)

	p := NewProjector()
	p.Project(s.Items(), true)

	// Row 1 shows the last logical item, row n the first
	idx, ok := p.ResolveRow(1, s)
	if !ok || idx != n-1 {
		t.Errorf("Row 1: expected logical index %d, got %d (ok=%v)", n-1, idx, ok)
	}

	idx, ok = p.ResolveRow(n, s)
	if !ok || idx != 0 {
		t.Errorf("Row %d: expected logical index 0, got %d (ok=%v)", n, idx, ok)
	}

	_ = items
}

func TestResolveRowOutOfRange(t *testing.T) {
	s, _ := makeStore(2)

	p := NewProjector()
	p.Project(s.Items(), false)

	for _, row := range []int{0, -1, 3} {
		if _, ok := p.ResolveRow(row, s); ok {
			t.Errorf("Row %d resolved but is out of range", row)
		}
	}
}

func TestResolveRowAfterConcurrentRefresh(t *testing.T) {
	s, _ := makeStore(3)

	p := NewProjector()
	p.Project(s.Items(), false)

	// A refresh races ahead of the host's last-known cursor: the items the
	// view still references are gone from the store
	s.Refresh([]*model.Item{model.NewItem("fresh")})

	if _, ok := p.ResolveRow(2, s); ok {
		t.Error("Row resolved against an item the refresh removed")
	}
}

func TestRowForIndex(t *testing.T) {
	s, _ := makeStore(4)

	p := NewProjector()
	p.Project(s.Items(), false)
	if row := p.RowForIndex(2); row != 3 {
		t.Errorf("Forward: expected row 3 for index 2, got %d", row)
	}

	p.Project(s.Items(), true)
	if row := p.RowForIndex(0); row != 4 {
		t.Errorf("Reversed: expected row 4 for index 0, got %d", row)
	}
	if row := p.RowForIndex(3); row != 1 {
		t.Errorf("Reversed: expected row 1 for index 3, got %d", row)
	}
}

func TestSearchPath(t *testing.T) {
	dir := model.NewDirItem("dir", "root/dir", 0)
	plain := model.NewItem("plain")

	s := store.NewStore()
	s.Refresh([]*model.Item{plain, dir})

	p := NewProjector()

	idx, ok := p.SearchPath("root/dir", s)
	if !ok || idx != 1 {
		t.Errorf("Expected path match at logical index 1, got %d (ok=%v)", idx, ok)
	}

	// Fallback key is the display text
	idx, ok = p.SearchPath("plain", s)
	if !ok || idx != 0 {
		t.Errorf("Expected text-key match at logical index 0, got %d (ok=%v)", idx, ok)
	}

	if _, ok := p.SearchPath("root/absent", s); ok {
		t.Error("Absent path resolved")
	}
}

func TestSearchItem(t *testing.T) {
	s, items := makeStore(2)

	p := NewProjector()

	idx, ok := p.SearchItem(items[1], s)
	if !ok || idx != 1 {
		t.Errorf("Expected identity match at index 1, got %d (ok=%v)", idx, ok)
	}

	if _, ok := p.SearchItem(model.NewItem("item 1"), s); ok {
		t.Error("Identity search matched by text")
	}
}
