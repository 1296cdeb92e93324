package ui

import (
	"strings"

	"github.com/pstuifzand/treelist/internal/view"
	"github.com/pstuifzand/treelist/internal/widget"
)

// EditorHost implements the widget's host contract on top of a tcell Screen.
// It keeps the painted rows, tracks the cursor row, and persists the cursor
// position (with its row text) whenever the user moves it by hand.
type EditorHost struct {
	screen *Screen
	log    *MessageLogger

	rows       []string
	highlights [][]widget.Span
	cursorRow  int // 1-based
	cursorCol  int
	offset     int // first visible row index
	saved      *view.SavedCursor
	footer     string
}

// NewEditorHost creates a host painting on the given screen
func NewEditorHost(screen *Screen, log *MessageLogger) *EditorHost {
	return &EditorHost{
		screen:    screen,
		log:       log,
		cursorRow: 1,
	}
}

// CursorRow returns the current 1-based cursor row
func (h *EditorHost) CursorRow() int {
	return h.cursorRow
}

// RenderRows stores the new display rows and repaints. With forceCursorReset
// the cursor moves to cursorRow/cursorCol; otherwise it stays where it is,
// clamped to the new row count.
func (h *EditorHost) RenderRows(rows []string, highlights [][]widget.Span, forceCursorReset bool, cursorRow, cursorCol int) error {
	h.rows = rows
	h.highlights = highlights

	if forceCursorReset {
		h.cursorRow = cursorRow
		h.cursorCol = cursorCol
	}
	h.clampCursor()

	h.paint()
	return nil
}

// SavedCursor returns the last manually-placed cursor position
func (h *EditorHost) SavedCursor() (view.SavedCursor, bool) {
	if h.saved == nil {
		return view.SavedCursor{}, false
	}
	return *h.saved, true
}

// ReportError surfaces a failure on the status line
func (h *EditorHost) ReportError(msg string) {
	h.log.AddError(msg)
	h.paint()
}

// MoveCursor moves the cursor by delta rows and persists the new position
// together with the text it landed on
func (h *EditorHost) MoveCursor(delta int) {
	h.cursorRow += delta
	h.clampCursor()

	if h.cursorRow >= 1 && h.cursorRow <= len(h.rows) {
		h.saved = &view.SavedCursor{
			Row:      h.cursorRow,
			Col:      h.cursorCol,
			LineText: h.rows[h.cursorRow-1],
		}
	}
	h.paint()
}

// SetFooter sets the prompt line shown below the status line
func (h *EditorHost) SetFooter(text string) {
	h.footer = text
	h.paint()
}

// Rows returns the rows of the last render
func (h *EditorHost) Rows() []string {
	return h.rows
}

func (h *EditorHost) clampCursor() {
	if h.cursorRow < 1 {
		h.cursorRow = 1
	}
	if len(h.rows) > 0 && h.cursorRow > len(h.rows) {
		h.cursorRow = len(h.rows)
	}
}

func (h *EditorHost) paint() {
	width, height := h.screen.Size()
	listHeight := height - 1 // bottom line is the status line
	if listHeight < 1 {
		listHeight = 1
	}

	// Keep the cursor row inside the viewport
	cursorIdx := h.cursorRow - 1
	if cursorIdx < h.offset {
		h.offset = cursorIdx
	} else if cursorIdx >= h.offset+listHeight {
		h.offset = cursorIdx - listHeight + 1
	}
	if h.offset < 0 {
		h.offset = 0
	}

	h.screen.Clear()

	y := 0
	for i := h.offset; i < len(h.rows) && y < listHeight; i++ {
		style := h.screen.NormalStyle()
		switch {
		case i == cursorIdx:
			style = h.screen.CursorRowStyle()
		case i < len(h.highlights) && len(h.highlights[i]) > 0:
			style = h.screen.SelectedStyle()
		case strings.Contains(h.rows[i], "▶") || strings.Contains(h.rows[i], "▼"):
			style = h.screen.DirStyle()
		}

		text := TruncateToWidth(h.rows[i], width)
		h.screen.DrawString(0, y, text, style)
		for x := StringWidth(text); x < width; x++ {
			h.screen.SetCell(x, y, ' ', style)
		}
		y++
	}

	// Clear any remaining list lines
	bg := h.screen.BackgroundStyle()
	for ; y < listHeight; y++ {
		for x := 0; x < width; x++ {
			h.screen.SetCell(x, y, ' ', bg)
		}
	}

	h.paintStatus(width, height)
	h.screen.Show()
}

func (h *EditorHost) paintStatus(width, height int) {
	y := height - 1
	bg := h.screen.BackgroundStyle()
	for x := 0; x < width; x++ {
		h.screen.SetCell(x, y, ' ', bg)
	}

	if h.footer != "" {
		h.screen.DrawString(0, y, TruncateToWidth(h.footer, width), h.screen.PromptTextStyle())
		return
	}

	if msg := h.log.Latest(); msg != nil {
		style := h.screen.StatusMessageStyle()
		if msg.IsError {
			style = h.screen.StatusErrorStyle()
		}
		h.screen.DrawString(0, y, TruncateToWidth(msg.Text, width), style)
	}
}
