package app

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/pstuifzand/treelist/internal/config"
	"github.com/pstuifzand/treelist/internal/fsprod"
	"github.com/pstuifzand/treelist/internal/model"
	"github.com/pstuifzand/treelist/internal/theme"
	"github.com/pstuifzand/treelist/internal/ui"
	"github.com/pstuifzand/treelist/internal/widget"
)

// App is the main application controller. It owns the screen, the host
// adapter and the tree widget, and routes key events into widget entry
// points.
type App struct {
	screen   *ui.Screen
	host     *ui.EditorHost
	messages *ui.MessageLogger
	widget   *widget.Widget
	producer *fsprod.Producer
	config   *config.Config
	jump     *ui.JumpIndex

	keybindings []KeyBinding
	jumpSources map[string]int
	jumpQuery   string
	jumpActive  bool
	quit        bool
	debugMode   bool
}

// NewApp creates a new App instance rooted at the given directories
func NewApp(cfg *config.Config, roots ...string) (*App, error) {
	t := theme.LoadThemeOrDefault(cfg.Theme)
	screen, err := ui.NewScreenWithTheme(t)
	if err != nil {
		return nil, fmt.Errorf("failed to create screen: %w", err)
	}

	messages := ui.NewMessageLogger(50)
	host := ui.NewEditorHost(screen, messages)
	producer := fsprod.New(roots...)

	a := &App{
		screen:   screen,
		host:     host,
		messages: messages,
		producer: producer,
		config:   cfg,
		jump:     ui.NewJumpIndex(nil),
	}

	w, err := widget.New(cfg, host, producer, a.handlers())
	if err != nil {
		screen.Close()
		return nil, err
	}
	a.widget = w
	a.keybindings = a.InitializeKeybindings()

	return a, nil
}

// handlers returns the item action table. Every action kind needs an entry.
func (a *App) handlers() map[widget.ActionKind]widget.ActionHandler {
	return map[widget.ActionKind]widget.ActionHandler{
		widget.ActionOpen: func(items []*model.Item, params map[string]string) (widget.ActionResult, error) {
			if len(items) == 0 {
				return widget.ActionNone, nil
			}
			a.messages.AddMessage("open: " + items[0].Text)
			return widget.ActionRedraw, nil
		},
		widget.ActionPreview: func(items []*model.Item, params map[string]string) (widget.ActionResult, error) {
			if len(items) == 0 {
				return widget.ActionNone, nil
			}
			a.messages.AddMessage("preview: " + items[0].PathKey())
			return widget.ActionNone, nil
		},
		widget.ActionYankPath: func(items []*model.Item, params map[string]string) (widget.ActionResult, error) {
			paths := make([]string, 0, len(items))
			for _, it := range items {
				paths = append(paths, it.PathKey())
			}
			a.messages.AddMessage(fmt.Sprintf("yanked %d path(s)", len(paths)))
			return widget.ActionRedraw, nil
		},
	}
}

// Run starts the main event loop
func (a *App) Run() error {
	defer a.Close()

	a.refresh()

	eventChan := make(chan tcell.Event)
	go func() {
		for {
			event := a.screen.PollEvent()
			eventChan <- event
			if event == nil {
				break
			}
		}
	}()

	ticker := time.NewTicker(50 * time.Millisecond)
	defer ticker.Stop()

	for !a.quit {
		select {
		case ev := <-eventChan:
			if ev != nil {
				a.handleRawEvent(ev)
			}
		case <-ticker.C:
			// Redraw decisions live in the widget; an unchanged state is a
			// cheap skip
			a.widget.Redraw()
		}
	}

	return nil
}

// Close closes the application
func (a *App) Close() error {
	if a.screen != nil {
		return a.screen.Close()
	}
	return nil
}

// refresh re-scans the roots and pushes a fresh batch into the widget
func (a *App) refresh() {
	items, err := a.producer.Scan()
	if err != nil {
		a.host.ReportError("scan failed: " + err.Error())
		return
	}
	a.widget.RefreshItems(items)
	a.rebuildJumpIndex()
}

// rebuildJumpIndex collects the path keys currently in the store, keeping
// the source each path came from so a jump resolves against the right root
func (a *App) rebuildJumpIndex() {
	items := a.widget.Store().Items()
	paths := make([]string, 0, len(items))
	sources := make(map[string]int, len(items))
	for _, it := range items {
		key := it.PathKey()
		paths = append(paths, key)
		if _, seen := sources[key]; !seen {
			sources[key] = it.SourceIndex
		}
	}
	a.jump.SetPaths(paths)
	a.jumpSources = sources
}

// apply runs the follow-up an action entry point asked for
func (a *App) apply(result widget.ActionResult) {
	switch result {
	case widget.ActionRedraw:
		a.widget.Redraw()
	case widget.ActionRefresh:
		a.refresh()
	}
}

// handleRawEvent processes raw input events
func (a *App) handleRawEvent(ev tcell.Event) {
	keyEv, ok := ev.(*tcell.EventKey)
	if !ok {
		if _, ok := ev.(*tcell.EventResize); ok {
			a.widget.RedrawSync()
		}
		return
	}

	if a.jumpActive {
		a.handleJumpKey(keyEv)
		return
	}

	a.handleKeypress(keyEv)
}

// SetDebugMode enables or disables debug mode
func (a *App) SetDebugMode(debug bool) {
	a.debugMode = debug
	a.widget.SetDebug(debug)
}

// Quit signals the app to quit
func (a *App) Quit() {
	a.quit = true
}
