package theme

import (
	"github.com/gdamore/tcell/v2"
)

// Colors holds all the color definitions for the theme
type Colors struct {
	Background tcell.Color

	// List colors
	NormalText    tcell.Color
	DirText       tcell.Color
	CursorRow     tcell.Color
	SelectedItem  tcell.Color
	CollapsedMark tcell.Color
	ExpandedMark  tcell.Color

	// Jump prompt colors
	PromptLabel tcell.Color
	PromptText  tcell.Color
	MatchText   tcell.Color

	// Status line colors
	StatusMessage tcell.Color
	StatusError   tcell.Color
}

// Theme represents a complete color theme
type Theme struct {
	Name   string
	Colors Colors
}

// Default returns a default theme using terminal defaults
func Default() *Theme {
	return &Theme{
		Name: "default",
		Colors: Colors{
			Background:    tcell.ColorDefault,
			NormalText:    tcell.ColorDefault,
			DirText:       tcell.ColorDefault,
			CursorRow:     tcell.ColorDefault,
			SelectedItem:  tcell.ColorDefault,
			CollapsedMark: tcell.ColorDefault,
			ExpandedMark:  tcell.ColorDefault,
			PromptLabel:   tcell.ColorDefault,
			PromptText:    tcell.ColorDefault,
			MatchText:     tcell.ColorDefault,
			StatusMessage: tcell.ColorDefault,
			StatusError:   tcell.ColorDefault,
		},
	}
}

// TokyoNight returns the Tokyo Night theme
func TokyoNight() *Theme {
	return &Theme{
		Name: "tokyo-night",
		Colors: Colors{
			// Tokyo Night palette
			Background:    ParseColor("#1a1b26"), // Dark background
			NormalText:    ParseColor("#c0caf5"), // Light gray-blue
			DirText:       ParseColor("#7aa2f7"), // Blue
			CursorRow:     ParseColor("#7aa2f7"), // Blue
			SelectedItem:  ParseColor("#e0af68"), // Yellow
			CollapsedMark: ParseColor("#7dcfff"), // Cyan
			ExpandedMark:  ParseColor("#7dcfff"), // Cyan
			PromptLabel:   ParseColor("#bb9af7"), // Magenta
			PromptText:    ParseColor("#c0caf5"), // Light gray-blue
			MatchText:     ParseColor("#9ece6a"), // Green
			StatusMessage: ParseColor("#9ece6a"), // Green
			StatusError:   ParseColor("#f7768e"), // Red
		},
	}
}
