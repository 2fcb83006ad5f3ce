package ebiten

import (
	"log/slog"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	engineinput "wumpus/pkg/engine/input"
	"wumpus/pkg/game/locale"
	gamemenu "wumpus/pkg/game/menu"
	"wumpus/pkg/game/renderer"
	"wumpus/pkg/game/state"
)

// New creates a new Ebiten renderer
func New() *EbitenRenderer {
	return &EbitenRenderer{
		windowWidth:    defaultWindowWidth,
		windowHeight:   defaultWindowHeight,
		fontSize:       defaultFontSize,
		inputChan:      make(chan engineinput.Intent, 16),
		done:           make(chan struct{}),
		closed:         make(chan struct{}),
		keyRepeatState: make(map[string]keyRepeatInfo),
		stickState:     make(map[ebiten.GamepadID]float64),
	}
}

// Init loads fonts and configures the window
func (e *EbitenRenderer) Init() {
	if err := e.loadFonts(); err != nil {
		slog.Error("cannot load fonts", "error", err)
	}
	ebiten.SetWindowSize(e.windowWidth, e.windowHeight)
	ebiten.SetWindowTitle(windowTitle)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
}

// Run starts the game loop in its own goroutine and blocks in the Ebiten
// main loop until either the game loop returns or the window is closed.
func (e *EbitenRenderer) Run(loop func()) error {
	go func() {
		defer close(e.done)
		loop()
	}()

	err := ebiten.RunGame(e)
	close(e.closed)
	<-e.done
	return err
}

// Clear is a no-op; Draw repaints the whole window every frame
func (e *EbitenRenderer) Clear() {}

// GetInput blocks until the window produces an Intent.
// Once the window is closed every call returns a quit intent.
func (e *EbitenRenderer) GetInput() engineinput.Intent {
	select {
	case intent := <-e.inputChan:
		return intent
	case <-e.closed:
		return engineinput.Intent{Action: engineinput.ActionQuit}
	}
}

// StyleText wraps text in markup so Draw can color it
func (e *EbitenRenderer) StyleText(text string, style renderer.TextStyle) string {
	function, ok := styleMarkup[style]
	if !ok {
		return text
	}
	return function + "{" + text + "}"
}

// FormatText resolves translations and keeps the rest of the markup for Draw
func (e *EbitenRenderer) FormatText(msg string, args ...any) string {
	return renderer.ReplaceMarkup(func(function, operand string) (string, bool) {
		if function == "GT" {
			return locale.T(operand), true
		}
		return function + "{" + operand + "}", true
	}, msg, args...)
}

// ShowMessage appends a message to the messages panel of the current frame
func (e *EbitenRenderer) ShowMessage(msg string) {
	e.snapshotMutex.Lock()
	defer e.snapshotMutex.Unlock()
	e.snapshot.frame.Messages = append(e.snapshot.frame.Messages, e.FormatText("%s", msg))
}

// Close is a no-op; the window closes when Run returns
func (e *EbitenRenderer) Close() {}

// RenderFrame captures a snapshot of the game for the next Draw
func (e *EbitenRenderer) RenderFrame(g *state.Game) {
	if g == nil {
		return
	}
	f := renderer.BuildFrame(g)

	e.snapshotMutex.Lock()
	defer e.snapshotMutex.Unlock()

	e.snapshot.valid = g.CurrentRoom() != nil
	e.snapshot.frame = f
	if f.Overlay != nil {
		e.snapshot.overlay = f.Overlay
		e.snapshot.overlayUntil = time.Now().UnixMilli() + overlayDuration
	}
}

// RenderMenu implements gamemenu.MenuRenderer for Ebiten.
// It captures the current frame and marks the menu overlay as active.
func (e *EbitenRenderer) RenderMenu(g *state.Game, items []gamemenu.MenuItem, selected int, helpText string, title string) {
	e.RenderFrame(g)

	e.menuMutex.Lock()
	defer e.menuMutex.Unlock()

	e.menu.active = true
	e.menu.selected = selected
	e.menu.helpText = helpText
	e.menu.title = title
	e.menu.items = make([]gamemenu.MenuItem, len(items))
	copy(e.menu.items, items)
}

// ClearMenu hides the menu overlay.
func (e *EbitenRenderer) ClearMenu() {
	e.menuMutex.Lock()
	defer e.menuMutex.Unlock()
	e.menu = menuState{}
}

// Layout returns the game's logical screen size (Ebiten interface)
func (e *EbitenRenderer) Layout(outsideWidth, outsideHeight int) (int, int) {
	e.windowWidth = outsideWidth
	e.windowHeight = outsideHeight
	return outsideWidth, outsideHeight
}

// snapshotCopy returns the current snapshot under the read lock
func (e *EbitenRenderer) snapshotCopy() renderSnapshot {
	e.snapshotMutex.RLock()
	defer e.snapshotMutex.RUnlock()
	return e.snapshot
}

// menuCopy returns the current menu state under the read lock
func (e *EbitenRenderer) menuCopy() menuState {
	e.menuMutex.RLock()
	defer e.menuMutex.RUnlock()
	return e.menu
}
