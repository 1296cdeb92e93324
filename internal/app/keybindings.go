package app

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/pstuifzand/treelist/internal/widget"
)

// KeyBinding represents a key binding with its description and handler
type KeyBinding struct {
	Key         rune
	Description string
	Handler     func(*App)
}

// GetKey returns the key of this keybinding
func (kb *KeyBinding) GetKey() rune {
	return kb.Key
}

// GetDescription returns the description of this keybinding
func (kb *KeyBinding) GetDescription() string {
	return kb.Description
}

// InitializeKeybindings sets up all the key bindings
func (a *App) InitializeKeybindings() []KeyBinding {
	return []KeyBinding{
		{
			Key:         'j',
			Description: "Move down",
			Handler: func(app *App) {
				app.host.MoveCursor(1)
			},
		},
		{
			Key:         'k',
			Description: "Move up",
			Handler: func(app *App) {
				app.host.MoveCursor(-1)
			},
		},
		{
			Key:         ' ',
			Description: "Toggle selection on item under cursor",
			Handler: func(app *App) {
				app.apply(app.widget.ToggleSelect())
			},
		},
		{
			Key:         'a',
			Description: "Toggle selection on all items",
			Handler: func(app *App) {
				app.apply(app.widget.ToggleSelectAll())
			},
		},
		{
			Key:         'c',
			Description: "Clear selection",
			Handler: func(app *App) {
				app.apply(app.widget.ClearSelection())
			},
		},
		{
			Key:         'l',
			Description: "Expand item under cursor",
			Handler: func(app *App) {
				app.apply(app.widget.ExpandAction(widget.ExpandOpen, 1))
				app.rebuildJumpIndex()
			},
		},
		{
			Key:         'o',
			Description: "Toggle expansion of item under cursor",
			Handler: func(app *App) {
				app.apply(app.widget.ExpandAction(widget.ExpandToggle, 1))
				app.rebuildJumpIndex()
			},
		},
		{
			Key:         'L',
			Description: "Expand two levels deep",
			Handler: func(app *App) {
				app.apply(app.widget.ExpandAction(widget.ExpandOpen, 2))
				app.rebuildJumpIndex()
			},
		},
		{
			Key:         'h',
			Description: "Collapse item (or its parent)",
			Handler: func(app *App) {
				app.apply(app.widget.CollapseAction())
				app.rebuildJumpIndex()
			},
		},
		{
			Key:         'e',
			Description: "Open item (selection or cursor)",
			Handler: func(app *App) {
				app.apply(app.widget.ItemAction(widget.ActionOpen, nil, nil))
			},
		},
		{
			Key:         'v',
			Description: "Preview item",
			Handler: func(app *App) {
				app.apply(app.widget.ItemAction(widget.ActionPreview, nil, nil))
			},
		},
		{
			Key:         'y',
			Description: "Yank item paths",
			Handler: func(app *App) {
				app.apply(app.widget.ItemAction(widget.ActionYankPath, nil, nil))
			},
		},
		{
			Key:         'r',
			Description: "Refresh from disk",
			Handler: func(app *App) {
				app.refresh()
			},
		},
		{
			Key:         '/',
			Description: "Jump to path (fuzzy)",
			Handler: func(app *App) {
				app.startJump()
			},
		},
		{
			Key:         'D',
			Description: "Toggle debug logging",
			Handler: func(app *App) {
				app.SetDebugMode(!app.debugMode)
			},
		},
		{
			Key:         'q',
			Description: "Quit",
			Handler: func(app *App) {
				app.Quit()
			},
		},
	}
}

// GetKeybindingByKey returns a keybinding for a given key
func (a *App) GetKeybindingByKey(key rune) *KeyBinding {
	for i := range a.keybindings {
		if a.keybindings[i].Key == key {
			return &a.keybindings[i]
		}
	}
	return nil
}

// handleKeypress handles a single keypress in normal mode
func (a *App) handleKeypress(ev *tcell.EventKey) {
	if a.debugMode {
		a.messages.AddMessage(fmt.Sprintf("Key: %v | Rune: %q | Modifiers: %v", ev.Key(), ev.Rune(), ev.Modifiers()))
	}

	switch ev.Key() {
	case tcell.KeyDown:
		a.host.MoveCursor(1)
		return
	case tcell.KeyUp:
		a.host.MoveCursor(-1)
		return
	case tcell.KeyLeft:
		a.apply(a.widget.CollapseAction())
		a.rebuildJumpIndex()
		return
	case tcell.KeyRight:
		a.apply(a.widget.ExpandAction(widget.ExpandOpen, 1))
		a.rebuildJumpIndex()
		return
	case tcell.KeyEnter:
		a.apply(a.widget.ItemAction(widget.ActionOpen, nil, nil))
		return
	case tcell.KeyCtrlL:
		a.widget.RedrawSync()
		return
	case tcell.KeyCtrlR:
		a.refresh()
		return
	case tcell.KeyEscape:
		a.apply(a.widget.ClearSelection())
		return
	}

	if kb := a.GetKeybindingByKey(ev.Rune()); kb != nil {
		kb.Handler(a)
	}
}

// startJump enters the jump prompt
func (a *App) startJump() {
	a.jumpActive = true
	a.jumpQuery = ""
	a.host.SetFooter("jump: ")
}

// handleJumpKey processes one keypress of the jump prompt
func (a *App) handleJumpKey(ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyEscape:
		a.stopJump()
		return
	case tcell.KeyEnter:
		query := a.jumpQuery
		a.stopJump()
		if target, ok := a.jump.Best(query); ok {
			a.apply(a.widget.JumpToPath(target, a.jumpSources[target]))
		} else {
			a.messages.AddMessage("no match for " + query)
		}
		return
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		if len(a.jumpQuery) > 0 {
			a.jumpQuery = a.jumpQuery[:len(a.jumpQuery)-1]
		}
	default:
		if r := ev.Rune(); r != 0 {
			a.jumpQuery += string(r)
		}
	}

	matches := a.jump.Matches(a.jumpQuery, 3)
	footer := "jump: " + a.jumpQuery
	if len(matches) > 0 {
		footer += "  [" + strings.Join(matches, " | ") + "]"
	}
	a.host.SetFooter(footer)
}

func (a *App) stopJump() {
	a.jumpActive = false
	a.jumpQuery = ""
	a.host.SetFooter("")
}
