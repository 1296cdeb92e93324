package store

import (
	"testing"

	"github.com/pstuifzand/treelist/internal/model"
)

func TestToggle(t *testing.T) {
	ss := NewSelectionSet()

	ss.Toggle(3)
	if !ss.Contains(3) {
		t.Error("Expected index 3 selected after toggle")
	}

	ss.Toggle(3)
	if ss.Contains(3) {
		t.Error("Expected index 3 deselected after second toggle")
	}
}

func TestToggleAll(t *testing.T) {
	ss := NewSelectionSet()

	if ss.ToggleAll(0) {
		t.Error("ToggleAll on an empty sequence should report nothing changed")
	}

	if !ss.ToggleAll(4) {
		t.Error("ToggleAll on a non-empty sequence should report a change")
	}
	if ss.Len() != 4 {
		t.Errorf("Expected 4 selected, got %d", ss.Len())
	}

	// Flipping membership, not selecting: a partial selection inverts
	ss.Clear()
	ss.Toggle(1)
	ss.Toggle(3)
	ss.ToggleAll(4)
	want := []int{0, 2}
	got := ss.Indices()
	if len(got) != len(want) {
		t.Fatalf("Expected indices %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Expected indices %v, got %v", want, got)
		}
	}
}

func TestResolveSelectedIndices(t *testing.T) {
	items := []*model.Item{
		model.NewItem("zero"),
		model.NewItem("one"),
		model.NewItem("two"),
	}

	ss := NewSelectionSet()
	ss.Toggle(2)
	ss.Toggle(0)

	resolved := ss.Resolve(items, 1)
	if len(resolved) != 2 {
		t.Fatalf("Expected 2 resolved items, got %d", len(resolved))
	}
	if resolved[0] != items[0] || resolved[1] != items[2] {
		t.Error("Resolved items not in ascending index order")
	}
}

func TestResolveDropsStaleIndices(t *testing.T) {
	items := []*model.Item{model.NewItem("only")}

	ss := NewSelectionSet()
	ss.Toggle(0)
	ss.Toggle(5) // index from a longer, older sequence

	resolved := ss.Resolve(items, -1)
	if len(resolved) != 1 {
		t.Fatalf("Expected stale index dropped, got %d items", len(resolved))
	}
	if resolved[0] != items[0] {
		t.Error("Wrong item resolved")
	}
}

func TestResolveFallsBackToCursor(t *testing.T) {
	items := []*model.Item{
		model.NewItem("zero"),
		model.NewItem("one"),
	}

	ss := NewSelectionSet()

	resolved := ss.Resolve(items, 1)
	if len(resolved) != 1 || resolved[0] != items[1] {
		t.Error("Empty selection should resolve to the cursor item")
	}

	resolved = ss.Resolve(items, 7)
	if len(resolved) != 0 {
		t.Error("Unresolvable cursor should yield an empty result")
	}
}
