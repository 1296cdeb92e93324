// Package ui is the demo terminal host for the list widget.
package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/pstuifzand/treelist/internal/theme"
)

// Screen manages the tcell screen and rendering
type Screen struct {
	tcellScreen tcell.Screen
	width       int
	height      int
	Theme       *theme.Theme
}

// NewScreenWithTheme creates a new Screen instance with a specific theme
func NewScreenWithTheme(t *theme.Theme) (*Screen, error) {
	tcellScreen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("failed to create screen: %w", err)
	}

	if err := tcellScreen.Init(); err != nil {
		return nil, fmt.Errorf("failed to init screen: %w", err)
	}

	width, height := tcellScreen.Size()
	return &Screen{
		tcellScreen: tcellScreen,
		width:       width,
		height:      height,
		Theme:       t,
	}, nil
}

// Close closes the screen
func (s *Screen) Close() error {
	s.tcellScreen.Fini()
	return nil
}

// Clear clears the entire screen
func (s *Screen) Clear() {
	s.tcellScreen.Clear()
}

// SetCell sets a cell at the given position
func (s *Screen) SetCell(x, y int, r rune, style tcell.Style) {
	if x >= 0 && x < s.width && y >= 0 && y < s.height {
		s.tcellScreen.SetContent(x, y, r, nil, style)
	}
}

// DrawString draws a string at the given position with the given style
func (s *Screen) DrawString(x, y int, text string, style tcell.Style) {
	for i, r := range text {
		s.SetCell(x+i, y, r, style)
	}
}

// PollEvent polls for the next event (key press, resize, etc.)
func (s *Screen) PollEvent() tcell.Event {
	return s.tcellScreen.PollEvent()
}

// Show shows the screen
func (s *Screen) Show() {
	s.tcellScreen.Show()
}

// Size returns the width and height of the screen
func (s *Screen) Size() (int, int) {
	w, h := s.tcellScreen.Size()
	s.width = w
	s.height = h
	return w, h
}

// GetWidth returns the width of the screen
func (s *Screen) GetWidth() int {
	s.width, _ = s.tcellScreen.Size()
	return s.width
}

// GetHeight returns the height of the screen
func (s *Screen) GetHeight() int {
	_, s.height = s.tcellScreen.Size()
	return s.height
}

// Theme-aware style methods

// NormalStyle returns the style for ordinary list rows
func (s *Screen) NormalStyle() tcell.Style {
	return theme.Style(s.Theme.Colors.NormalText, s.Theme.Colors.Background)
}

// DirStyle returns the style for directory rows
func (s *Screen) DirStyle() tcell.Style {
	return theme.Style(s.Theme.Colors.DirText, s.Theme.Colors.Background)
}

// CursorRowStyle returns the style for the row under the cursor
func (s *Screen) CursorRowStyle() tcell.Style {
	return theme.Style(s.Theme.Colors.Background, s.Theme.Colors.CursorRow).Bold(true)
}

// SelectedStyle returns the style for selected rows
func (s *Screen) SelectedStyle() tcell.Style {
	return theme.Style(s.Theme.Colors.SelectedItem, s.Theme.Colors.Background).Bold(true)
}

// PromptLabelStyle returns the style for the jump prompt label
func (s *Screen) PromptLabelStyle() tcell.Style {
	return theme.Style(s.Theme.Colors.PromptLabel, s.Theme.Colors.Background)
}

// PromptTextStyle returns the style for the jump prompt input
func (s *Screen) PromptTextStyle() tcell.Style {
	return theme.Style(s.Theme.Colors.PromptText, s.Theme.Colors.Background)
}

// MatchStyle returns the style for the best fuzzy match preview
func (s *Screen) MatchStyle() tcell.Style {
	return theme.Style(s.Theme.Colors.MatchText, s.Theme.Colors.Background)
}

// StatusMessageStyle returns the style for status messages
func (s *Screen) StatusMessageStyle() tcell.Style {
	return theme.Style(s.Theme.Colors.StatusMessage, s.Theme.Colors.Background)
}

// StatusErrorStyle returns the style for reported errors
func (s *Screen) StatusErrorStyle() tcell.Style {
	return theme.Style(s.Theme.Colors.StatusError, s.Theme.Colors.Background)
}

// BackgroundStyle returns the default background style for the application
func (s *Screen) BackgroundStyle() tcell.Style {
	return tcell.StyleDefault.Background(s.Theme.Colors.Background)
}
