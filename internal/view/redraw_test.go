package view

import "testing"

func TestShouldSkipSyncIncomplete(t *testing.T) {
	c := NewCoordinator(0, false)

	if !c.ShouldSkip(Status{Sync: true, ProducerDone: false}) {
		t.Error("Synchronous caller must not see a partial paint")
	}
	if c.ShouldSkip(Status{Sync: true, ProducerDone: true}) {
		t.Error("Completed producer should not be skipped")
	}
	if c.ShouldSkip(Status{Sync: false, ProducerDone: false}) {
		t.Error("Asynchronous redraw should proceed while streaming")
	}
}

func TestShouldSkipIgnoreEmpty(t *testing.T) {
	c := NewCoordinator(0, true)

	if !c.ShouldSkip(Status{FirstRefreshDone: false, ProducerTotal: 0}) {
		t.Error("Empty widget should not flash before the first batch")
	}
	if c.ShouldSkip(Status{FirstRefreshDone: true, ProducerTotal: 0}) {
		t.Error("After the first refresh an empty result paints normally")
	}
	if c.ShouldSkip(Status{FirstRefreshDone: false, ProducerTotal: 3}) {
		t.Error("A producer with items paints normally")
	}

	// Without the policy the empty pre-refresh paint goes through
	c = NewCoordinator(0, false)
	if c.ShouldSkip(Status{FirstRefreshDone: false, ProducerTotal: 0}) {
		t.Error("ignore-empty off: redraw should proceed")
	}
}

func TestPlaceDefaultsToTop(t *testing.T) {
	c := NewCoordinator(0, false)

	pl := c.Place(Status{CurLen: 5, PrevLen: 5})
	if pl.CursorRow != 1 {
		t.Errorf("Expected cursor at top, got row %d", pl.CursorRow)
	}
	if pl.ForceReposition {
		t.Error("Stable count without fixed position should keep the host cursor")
	}
}

func TestPlaceFixedCursorAfterRefresh(t *testing.T) {
	c := NewCoordinator(3, false)

	pl := c.Place(Status{Refreshed: true, CurLen: 10, PrevLen: 10})
	if pl.CursorRow != 3 {
		t.Errorf("Expected fixed cursor row 3, got %d", pl.CursorRow)
	}
	if !pl.ForceReposition {
		t.Error("Configured fixed position must force repositioning")
	}

	// Without a refresh the fixed position is not applied, but it still
	// forces repositioning
	pl = c.Place(Status{Refreshed: false, CurLen: 10, PrevLen: 10})
	if pl.CursorRow != 1 {
		t.Errorf("Expected top row without refresh, got %d", pl.CursorRow)
	}
	if !pl.ForceReposition {
		t.Error("Configured fixed position must force repositioning")
	}
}

func TestPlaceForceOnShrink(t *testing.T) {
	c := NewCoordinator(0, false)

	pl := c.Place(Status{CurLen: 3, PrevLen: 8})
	if !pl.ForceReposition {
		t.Error("Shrinking sequence must force repositioning")
	}

	pl = c.Place(Status{CurLen: 8, PrevLen: 3})
	if pl.ForceReposition {
		t.Error("Growing sequence keeps the host cursor")
	}
}

func TestPlaceForceOnReversedCountChange(t *testing.T) {
	c := NewCoordinator(0, false)

	pl := c.Place(Status{CurLen: 6, PrevLen: 6, ReversedChanged: true})
	if !pl.ForceReposition {
		t.Error("Reversed display with changed count must force repositioning")
	}
}

func TestPlaceRestoresSavedCursor(t *testing.T) {
	c := NewCoordinator(3, false)

	saved := &SavedCursor{Row: 7, Col: 12, LineText: "  ▶ src"}
	pl := c.Place(Status{
		Refreshed:        true,
		CurLen:           10,
		PrevLen:          10,
		Saved:            saved,
		SavedLineCurrent: "  ▶ src",
	})

	if !pl.RestoreSaved {
		t.Fatal("Matching saved line text must restore the saved cursor")
	}
	if pl.SavedRow != 7 || pl.SavedCol != 12 {
		t.Errorf("Expected saved position 7:12, got %d:%d", pl.SavedRow, pl.SavedCol)
	}
	// Restoration wins over the fixed position of rule 3
	if pl.CursorRow != 7 {
		t.Errorf("Expected cursor row 7, got %d", pl.CursorRow)
	}

	// The restore itself forces repositioning, even when no fixed line,
	// shrink or reversed change would have
	c = NewCoordinator(0, false)
	pl = c.Place(Status{
		CurLen:           10,
		PrevLen:          10,
		Saved:            saved,
		SavedLineCurrent: "  ▶ src",
	})
	if !pl.RestoreSaved {
		t.Fatal("Matching saved line text must restore the saved cursor")
	}
	if !pl.ForceReposition {
		t.Error("Restoring a saved cursor must force repositioning")
	}
}

func TestPlaceStaleSavedCursorIgnored(t *testing.T) {
	c := NewCoordinator(0, false)

	saved := &SavedCursor{Row: 7, Col: 12, LineText: "  ▶ src"}
	pl := c.Place(Status{
		CurLen:           10,
		PrevLen:          10,
		Saved:            saved,
		SavedLineCurrent: "  ▶ docs", // row content moved on
	})

	if pl.RestoreSaved {
		t.Error("Stale saved position must not be restored")
	}
	if pl.CursorRow != 1 {
		t.Errorf("Expected default top row, got %d", pl.CursorRow)
	}
}

func TestPlaceEmptySavedLineIgnored(t *testing.T) {
	c := NewCoordinator(0, false)

	saved := &SavedCursor{Row: 2, LineText: ""}
	pl := c.Place(Status{Saved: saved, SavedLineCurrent: ""})

	if pl.RestoreSaved {
		t.Error("A saved cursor without line text carries no user intent")
	}
}
