package ui

import "testing"

func TestJumpIndexBest(t *testing.T) {
	idx := NewJumpIndex([]string{
		"/projects/treelist/main.go",
		"/projects/treelist/internal/store/store.go",
		"/projects/notes/todo.md",
	})

	best, ok := idx.Best("todo")
	if !ok {
		t.Fatal("expected a match for todo")
	}
	if best != "/projects/notes/todo.md" {
		t.Errorf("best match = %q", best)
	}

	_, ok = idx.Best("zzzzzz")
	if ok {
		t.Error("expected no match for zzzzzz")
	}
}

func TestJumpIndexMatchesLimit(t *testing.T) {
	idx := NewJumpIndex([]string{"alpha", "alphabet", "beta"})

	matches := idx.Matches("alp", 1)
	if len(matches) != 1 {
		t.Fatalf("expected 1 match, got %d", len(matches))
	}
	if matches[0] != "alpha" {
		t.Errorf("expected shortest candidate first, got %q", matches[0])
	}

	all := idx.Matches("", 0)
	if len(all) != 3 {
		t.Errorf("empty query should return all candidates, got %d", len(all))
	}
}

func TestJumpIndexSetPaths(t *testing.T) {
	idx := NewJumpIndex([]string{"old"})
	idx.SetPaths([]string{"new"})

	if _, ok := idx.Best("old"); ok {
		t.Error("stale candidate still matched after SetPaths")
	}
	if best, ok := idx.Best("new"); !ok || best != "new" {
		t.Errorf("Best(new) = %q, %v", best, ok)
	}
}
