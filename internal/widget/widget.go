package widget

import (
	"fmt"
	"log"
	"strings"

	"github.com/davecgh/go-spew/spew"

	"github.com/pstuifzand/treelist/internal/config"
	"github.com/pstuifzand/treelist/internal/model"
	"github.com/pstuifzand/treelist/internal/store"
	"github.com/pstuifzand/treelist/internal/view"
)

// Widget is the state-management core behind one list instance. It is an
// explicit state object owned by the caller; there is no ambient instance.
// All operations run on the host's event loop, and every structural mutation
// is complete before any host call is issued.
type Widget struct {
	store    *store.Store
	proj     *view.Projector
	coord    *view.Coordinator
	cfg      *config.Config
	host     Host
	producer Producer
	handlers map[ActionKind]ActionHandler

	firstRefreshDone bool
	lastCount        int
	debug            bool
}

// New creates a widget. The handler map must cover every action kind; a gap
// is a startup error, not a runtime surprise.
func New(cfg *config.Config, host Host, producer Producer, handlers map[ActionKind]ActionHandler) (*Widget, error) {
	if _, err := cfg.Reversed(); err != nil {
		return nil, err
	}
	for k := ActionKind(0); k < actionKindCount; k++ {
		if handlers[k] == nil {
			return nil, fmt.Errorf("no handler registered for action %q", k)
		}
	}

	return &Widget{
		store:    store.NewStore(),
		proj:     view.NewProjector(),
		coord:    view.NewCoordinator(cfg.CursorLine, cfg.IgnoreEmpty),
		cfg:      cfg,
		host:     host,
		producer: producer,
		handlers: handlers,
	}, nil
}

// SetDebug enables dumping of redraw placements to the log
func (w *Widget) SetDebug(debug bool) {
	w.debug = debug
}

// Store returns the widget's item store
func (w *Widget) Store() *store.Store {
	return w.store
}

// RefreshItems replaces the logical sequence with a new producer batch and
// redraws. Selection is cleared by the store as part of the replacement.
func (w *Widget) RefreshItems(items []*model.Item) {
	w.store.Refresh(items)
	w.firstRefreshDone = true
	w.redraw(false, -1)
}

// ExpandItem splices children under parent and redraws. The caller passes
// the parent handle with Expanded already set.
func (w *Widget) ExpandItem(parent *model.Item, children []*model.Item) {
	w.store.Expand(parent, children)
	w.redraw(false, -1)
}

// CollapseItem removes the contiguous subtree of item and redraws
func (w *Widget) CollapseItem(item *model.Item) {
	w.store.Collapse(item)
	w.redraw(false, -1)
}

// Redraw repaints the widget. Hosts call this after an action entry point
// returned ActionRedraw.
func (w *Widget) Redraw() {
	w.redraw(false, -1)
}

// RedrawSync repaints only when the producer has finished streaming, so a
// caller that needs complete results never sees a partial paint
func (w *Widget) RedrawSync() {
	w.redraw(true, -1)
}

// ToggleSelect flips selection of the item under the cursor
func (w *Widget) ToggleSelect() ActionResult {
	idx, ok := w.cursorIndex()
	if !ok {
		return ActionNone
	}
	w.store.Selection().Toggle(idx)
	return ActionRedraw
}

// ToggleSelectAll flips selection of every item
func (w *Widget) ToggleSelectAll() ActionResult {
	if !w.store.Selection().ToggleAll(w.store.Len()) {
		return ActionNone
	}
	return ActionRedraw
}

// ClearSelection empties the selection set
func (w *Widget) ClearSelection() ActionResult {
	w.store.Selection().Clear()
	return ActionRedraw
}

// ItemAction runs the handler for kind against the explicit items when
// given, the selected items otherwise, falling back to the item under the
// cursor when nothing is selected
func (w *Widget) ItemAction(kind ActionKind, explicit []*model.Item, params map[string]string) ActionResult {
	if !kind.valid() {
		w.host.ReportError(fmt.Sprintf("unknown action %q", kind))
		return ActionNone
	}

	items := explicit
	if len(items) == 0 {
		cursorIdx := -1
		if idx, ok := w.cursorIndex(); ok {
			cursorIdx = idx
		}
		items = w.store.Selection().Resolve(w.store.Items(), cursorIdx)
	}
	if len(items) == 0 {
		return ActionNone
	}

	result, err := w.handlers[kind](items, params)
	if err != nil {
		w.host.ReportError(fmt.Sprintf("action %q failed: %v", kind, err))
		return ActionNone
	}
	return result
}

// ExpandAction expands the directory under the cursor, asking the producer
// for children down to maxLevel. With ExpandToggle an already-expanded item
// is collapsed instead; with ExpandOpen it is left alone.
func (w *Widget) ExpandAction(mode ExpandMode, maxLevel int) ActionResult {
	idx, ok := w.cursorIndex()
	if !ok {
		return ActionNone
	}
	item, _ := w.store.ItemAt(idx)
	if !item.IsDir {
		return ActionNone
	}

	if item.Expanded {
		if mode == ExpandToggle {
			w.collapse(item)
			return ActionRedraw
		}
		return ActionNone
	}

	children, err := w.producer.LoadChildren(item, maxLevel)
	if err != nil {
		w.host.ReportError(fmt.Sprintf("expand %s: %v", item.PathKey(), err))
		return ActionNone
	}
	item.Expanded = true
	w.store.Expand(item, children)
	return ActionRedraw
}

// CollapseAction collapses the item under the cursor, or its nearest
// expanded ancestor when the item itself is not expanded
func (w *Widget) CollapseAction() ActionResult {
	idx, ok := w.cursorIndex()
	if !ok {
		return ActionNone
	}
	item, _ := w.store.ItemAt(idx)

	if item.Expanded {
		w.collapse(item)
		return ActionRedraw
	}

	// Walk back to the nearest shallower item; that is the parent
	for i := idx - 1; i >= 0; i-- {
		prev, _ := w.store.ItemAt(i)
		if prev.Level < item.Level {
			if prev.Expanded {
				w.collapse(prev)
				return ActionRedraw
			}
			return ActionNone
		}
	}
	return ActionNone
}

// JumpToItem moves the cursor to the given item. An item no longer present
// means no cursor move.
func (w *Widget) JumpToItem(item *model.Item) ActionResult {
	idx, ok := w.proj.SearchItem(item, w.store)
	if !ok {
		return ActionNone
	}
	w.redraw(false, idx)
	return ActionRedraw
}

// JumpToPath moves the cursor to the item with the given path key, expanding
// ancestors as needed to reveal it. Each round asks the resolver for the
// nearest present, not-yet-expanded ancestor and the producer for that
// ancestor's subtree down to the depth that reaches the target, then
// re-resolves. No reachable ancestor means no cursor move.
func (w *Widget) JumpToPath(path string, sourceIndex int) ActionResult {
	prevDepth := int(^uint(0) >> 1)
	for {
		if idx, ok := w.proj.SearchPath(path, w.store); ok {
			w.redraw(false, idx)
			return ActionRedraw
		}

		req, ok := w.store.ResolveExpansion(path, sourceIndex)
		if !ok {
			return ActionNone
		}
		// Each hop must get strictly closer to the target
		if req.RequiredDepth >= prevDepth {
			return ActionNone
		}
		prevDepth = req.RequiredDepth

		children, err := w.producer.LoadChildren(req.Parent, req.RequiredDepth)
		if err != nil {
			w.host.ReportError(fmt.Sprintf("expand %s: %v", req.Parent.PathKey(), err))
			return ActionNone
		}
		req.Parent.Expanded = true
		w.store.Expand(req.Parent, children)
	}
}

func (w *Widget) collapse(item *model.Item) {
	item.Expanded = false
	w.store.Collapse(item)
}

// cursorIndex resolves the host's current cursor row to a logical index
func (w *Widget) cursorIndex() (int, bool) {
	return w.proj.ResolveRow(w.host.CursorRow(), w.store)
}

// redraw runs one decision-projection-paint cycle. jumpIdx, when not
// negative, is a logical index the cursor should land on; it wins over the
// computed base placement but not over a restored saved cursor. A render
// failure is reported and abandons the cycle with all state untouched, so
// the next cycle retries from a clean slate.
func (w *Widget) redraw(sync bool, jumpIdx int) {
	reversed, err := w.cfg.Reversed()
	if err != nil {
		w.host.ReportError(err.Error())
		return
	}

	st := view.Status{
		Sync:             sync,
		ProducerDone:     w.producer.Done(),
		ProducerTotal:    w.producer.Total(),
		Refreshed:        w.store.Refreshed(),
		FirstRefreshDone: w.firstRefreshDone,
		CurLen:           w.store.Len(),
		PrevLen:          w.lastCount,
		ReversedChanged:  reversed && w.lastCount != w.store.Len(),
	}
	if w.coord.ShouldSkip(st) {
		return
	}

	viewItems := w.proj.Project(w.store.Items(), reversed)
	rows := renderRows(viewItems)

	if saved, ok := w.host.SavedCursor(); ok {
		st.Saved = &saved
		if saved.Row >= 1 && saved.Row <= len(rows) {
			st.SavedLineCurrent = rows[saved.Row-1]
		}
	}

	pl := w.coord.Place(st)
	cursorRow, force := pl.CursorRow, pl.ForceReposition
	cursorCol := 0
	if pl.RestoreSaved {
		cursorCol = pl.SavedCol
	}
	if jumpIdx >= 0 && !pl.RestoreSaved {
		cursorRow = w.proj.RowForIndex(jumpIdx)
		force = true
	}

	if w.debug {
		log.Printf("redraw placement:\n%s", spew.Sdump(pl))
	}

	if err := w.host.RenderRows(rows, w.selectionSpans(rows, reversed), force, cursorRow, cursorCol); err != nil {
		w.host.ReportError(fmt.Sprintf("render failed: %v", err))
		return
	}

	w.store.ClearRefreshed()
	w.lastCount = len(viewItems)
}

// renderRows formats each display item as indentation, an expansion arrow
// for directories, and the item text
func renderRows(items []*model.Item) []string {
	rows := make([]string, len(items))
	for i, item := range items {
		var b strings.Builder
		b.WriteString(strings.Repeat("  ", item.Level))
		switch {
		case item.IsDir && item.Expanded:
			b.WriteString("▼ ")
		case item.IsDir:
			b.WriteString("▶ ")
		default:
			b.WriteString("  ")
		}
		b.WriteString(item.Text)
		rows[i] = b.String()
	}
	return rows
}

// selectionSpans marks each selected item's display row with a full-width
// highlight span
func (w *Widget) selectionSpans(rows []string, reversed bool) [][]Span {
	highlights := make([][]Span, len(rows))
	n := len(rows)
	for _, idx := range w.store.Selection().Indices() {
		dispIdx := idx
		if reversed {
			dispIdx = n - 1 - idx
		}
		if dispIdx >= 0 && dispIdx < n {
			highlights[dispIdx] = []Span{{Start: 0, End: len(rows[dispIdx])}}
		}
	}
	return highlights
}
