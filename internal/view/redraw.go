package view

// SavedCursor is a host-persisted cursor position plus the text of the row
// it was on when saved. The text is what makes stale-position detection
// possible: the position is only trustworthy while the same text is still on
// that row.
type SavedCursor struct {
	Row      int
	Col      int
	LineText string
}

// Status is the snapshot of widget state the coordinator consults when
// deciding a redraw.
type Status struct {
	Sync             bool // caller requires fully synchronous results
	ProducerDone     bool
	ProducerTotal    int
	Refreshed        bool // structural mutation since the last completed redraw
	FirstRefreshDone bool
	CurLen           int
	PrevLen          int // length at the previous completed redraw
	ReversedChanged  bool // reversed display and the total count changed
	Saved            *SavedCursor
	SavedLineCurrent string // text currently on the saved row, if any
}

// Placement tells the host where to put the cursor for this redraw.
type Placement struct {
	CursorRow       int // 1-based
	ForceReposition bool
	RestoreSaved    bool
	SavedRow        int
	SavedCol        int
}

// Coordinator decides, for each refresh or structural mutation, whether the
// redraw should be skipped and how the cursor should be placed.
type Coordinator struct {
	fixedCursorLine int // 1-based configured cursor position, 0 = unset
	ignoreEmpty     bool
}

// NewCoordinator creates a coordinator with the given policy knobs
func NewCoordinator(fixedCursorLine int, ignoreEmpty bool) *Coordinator {
	return &Coordinator{
		fixedCursorLine: fixedCursorLine,
		ignoreEmpty:     ignoreEmpty,
	}
}

// ShouldSkip applies the early skip rules, in order:
//  1. synchronous callers never see a partial paint: skip while the producer
//     has not signalled completion
//  2. with ignore-empty configured, skip while nothing has refreshed yet this
//     session and the producer reports zero items, so an empty widget is not
//     flashed before the first batch arrives
func (c *Coordinator) ShouldSkip(st Status) bool {
	if st.Sync && !st.ProducerDone {
		return true
	}
	if c.ignoreEmpty && !st.FirstRefreshDone && st.ProducerTotal == 0 {
		return true
	}
	return false
}

// Place computes the cursor placement for a redraw that was not skipped.
//
// The base position is the configured fixed cursor line when a refresh
// occurred, the top row otherwise. Repositioning is forced when a fixed line
// is configured, when the sequence shrank, or when the reversed display made
// the total count change; in every other case the host keeps its cursor row.
// A saved cursor whose row still carries the text it was saved on overrides
// all of that: it reflects a manual cursor placement, not a structural reset,
// and the host is forced to re-seat the cursor there even when nothing else
// asked for a reposition.
func (c *Coordinator) Place(st Status) Placement {
	pl := Placement{CursorRow: 1}

	if c.fixedCursorLine > 0 && st.Refreshed {
		pl.CursorRow = c.fixedCursorLine
	}
	pl.ForceReposition = c.fixedCursorLine > 0 ||
		st.CurLen < st.PrevLen ||
		st.ReversedChanged

	if st.Saved != nil && st.Saved.LineText != "" && st.Saved.LineText == st.SavedLineCurrent {
		pl.RestoreSaved = true
		pl.ForceReposition = true
		pl.SavedRow = st.Saved.Row
		pl.SavedCol = st.Saved.Col
		pl.CursorRow = st.Saved.Row
	}

	return pl
}
