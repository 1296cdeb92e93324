// Package widget ties the item store, selection, projection and redraw
// policy together behind the entry points the host editor calls.
package widget

import (
	"fmt"

	"github.com/pstuifzand/treelist/internal/model"
	"github.com/pstuifzand/treelist/internal/view"
)

// Span marks a highlighted byte range within a rendered row.
type Span struct {
	Start int
	End   int
}

// Host is the narrow surface of the embedding editor. Rendering, cursor
// queries and error reporting all go through it; the widget itself never
// touches a screen.
type Host interface {
	// CursorRow returns the current 1-based row under the cursor
	CursorRow() int
	// RenderRows paints the display-ordered rows with per-row highlight
	// spans. With forceCursorReset the host must move the cursor to
	// cursorRow/cursorCol; otherwise it keeps the cursor where it is.
	RenderRows(rows []string, highlights [][]Span, forceCursorReset bool, cursorRow, cursorCol int) error
	// SavedCursor returns the host-persisted last-known cursor state, if any
	SavedCursor() (view.SavedCursor, bool)
	// ReportError surfaces a failure to the user. Fire and forget.
	ReportError(msg string)
}

// Producer is the external source feeding the widget. Delivery cadence is
// its own business; the widget only asks it for children on demand and for
// its completion state when deciding a redraw.
type Producer interface {
	// LoadChildren returns the flattened descendants of parent down to the
	// given depth, with interior directories carrying Expanded set
	LoadChildren(parent *model.Item, depth int) ([]*model.Item, error)
	// Total reports how many items the producer has collected so far
	Total() int
	// Done reports whether the producer has finished streaming
	Done() bool
}

// ActionResult tells the host what it should do after an action entry point
// returns.
type ActionResult int

const (
	// ActionNone means nothing changed; no follow-up needed
	ActionNone ActionResult = iota
	// ActionRedraw means the host should trigger a redraw
	ActionRedraw
	// ActionRefresh means the host should re-run the producer and push a
	// fresh item batch
	ActionRefresh
)

// ActionKind identifies an item action. The set is closed: every kind must
// have a handler registered at construction, so a missing or mistyped action
// fails loudly instead of becoming a silent no-op.
type ActionKind int

const (
	// ActionOpen opens the item in the host editor
	ActionOpen ActionKind = iota
	// ActionPreview shows the item without leaving the widget
	ActionPreview
	// ActionYankPath copies the item's path key
	ActionYankPath

	actionKindCount
)

func (k ActionKind) String() string {
	switch k {
	case ActionOpen:
		return "open"
	case ActionPreview:
		return "preview"
	case ActionYankPath:
		return "yank-path"
	default:
		return fmt.Sprintf("action(%d)", int(k))
	}
}

func (k ActionKind) valid() bool {
	return k >= 0 && k < actionKindCount
}

// ActionHandler performs one item action on the resolved items.
type ActionHandler func(items []*model.Item, params map[string]string) (ActionResult, error)

// ExpandMode selects how ExpandAction treats an already-expanded item.
type ExpandMode int

const (
	// ExpandToggle collapses an item that is already expanded
	ExpandToggle ExpandMode = iota
	// ExpandOpen leaves an already-expanded item alone
	ExpandOpen
)
