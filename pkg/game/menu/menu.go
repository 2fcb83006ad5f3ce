// Package menu provides a generic menu system for the game.
package menu

import (
	"fmt"
	"strconv"

	engineinput "wumpus/pkg/engine/input"
	"wumpus/pkg/game/renderer"
	"wumpus/pkg/game/state"
)

// MenuItem represents a single item in a menu.
type MenuItem interface {
	// GetLabel returns the display label for this menu item.
	GetLabel() string
	// IsSelectable returns whether this item can be selected.
	IsSelectable() bool
	// GetHelpText returns optional help text for this item.
	GetHelpText() string
}

// MenuHandler handles menu item selection and activation.
type MenuHandler interface {
	// OnSelect is called when an item is selected (navigated to).
	OnSelect(item MenuItem, index int)

	// OnActivate is called when an item is activated (e.g., Enter pressed).
	// Returns true if the menu should close, and any help text to display.
	OnActivate(item MenuItem, index int) (shouldClose bool, helpText string)
	// OnExit is called when the menu is exited.
	OnExit()
	// GetTitle returns the menu title.
	GetTitle() string
	// GetInstructions returns the menu instructions.
	GetInstructions(selected MenuItem) string
	// ShouldCloseOnAnyAction returns true if the menu should close on any action (not just menu/quit).
	ShouldCloseOnAnyAction() bool
}

// DynamicMenuHandler extends MenuHandler with dynamic menu items.
// RunMenuDynamic calls GetMenuItems each loop iteration so the menu can refresh.
type DynamicMenuHandler interface {
	MenuHandler
	GetMenuItems() []MenuItem
}

// MenuRenderer is an optional interface for renderers that can draw
// a full-screen menu instead of using the message log.
type MenuRenderer interface {
	// RenderMenu draws the menu with the given items, selected index, help text, and title.
	RenderMenu(g *state.Game, items []MenuItem, selected int, helpText string, title string)
	// ClearMenu hides any active menu.
	ClearMenu()
}

// staticItems adapts a fixed item list to DynamicMenuHandler
type staticItems struct {
	MenuHandler
	items []MenuItem
}

func (s staticItems) GetMenuItems() []MenuItem {
	return s.items
}

// RunMenu runs a generic menu with the given items and handler.
func RunMenu(g *state.Game, items []MenuItem, handler MenuHandler) {
	RunMenuDynamic(g, staticItems{MenuHandler: handler, items: items})
}

// RunMenuDynamic runs a menu whose items can change. The handler's GetMenuItems
// is called each loop iteration so the menu content can refresh.
func RunMenuDynamic(g *state.Game, handler DynamicMenuHandler) {
	selected := -1
	helpText := ""

	for {
		items := handler.GetMenuItems()

		// Find first selectable item, or keep current if still valid
		if selected < 0 || selected >= len(items) || !items[selected].IsSelectable() {
			selected = firstSelectable(items)
		}

		if mr, ok := renderer.Current.(MenuRenderer); ok {
			mr.RenderMenu(g, items, selected, helpText, handler.GetTitle())
		} else {
			renderMenuFallback(g, items, selected, helpText, handler)
		}

		intent := renderer.GetInput()

		// Check if handler wants to close on any action (except navigation)
		if handler.ShouldCloseOnAnyAction() && intent.Action != engineinput.ActionNone &&
			intent.Action != engineinput.ActionMenuUp && intent.Action != engineinput.ActionMenuDown {
			closeMenu(g, handler)
			return
		}

		switch intent.Action {
		case engineinput.ActionMenuUp:
			if i := stepSelectable(items, selected, -1); i != selected {
				selected = i
				helpText = ""
				handler.OnSelect(items[selected], selected)
			}
		case engineinput.ActionMenuDown:
			if i := stepSelectable(items, selected, 1); i != selected {
				selected = i
				helpText = ""
				handler.OnSelect(items[selected], selected)
			}
		case engineinput.ActionMove:
			// A typed number picks and activates that entry
			n, err := strconv.Atoi(intent.Arg(0))
			if err != nil || n < 1 || n > len(items) || !items[n-1].IsSelectable() {
				helpText = "No such entry."
				continue
			}
			selected = n - 1
			handler.OnSelect(items[selected], selected)
			fallthrough
		case engineinput.ActionAction:
			if selected >= 0 && selected < len(items) && items[selected].IsSelectable() {
				shouldClose, newHelpText := handler.OnActivate(items[selected], selected)
				helpText = newHelpText
				if shouldClose {
					closeMenu(g, handler)
					return
				}
			}
		case engineinput.ActionOpenMenu, engineinput.ActionQuit, engineinput.ActionBack:
			closeMenu(g, handler)
			return
		default:
			// Ignore other actions while in menu
		}
	}
}

func closeMenu(g *state.Game, handler MenuHandler) {
	g.ClearMessages()
	if mr, ok := renderer.Current.(MenuRenderer); ok {
		mr.ClearMenu()
	}
	handler.OnExit()
}

func firstSelectable(items []MenuItem) int {
	for i, item := range items {
		if item.IsSelectable() {
			return i
		}
	}
	return -1
}

// stepSelectable moves from selected in direction dir to the next selectable
// item, wrapping around. Returns selected if there is none.
func stepSelectable(items []MenuItem, selected, dir int) int {
	n := len(items)
	if n == 0 {
		return selected
	}
	i := selected
	for step := 0; step < n; step++ {
		i = (i + dir + n) % n
		if items[i].IsSelectable() {
			return i
		}
	}
	return selected
}

// renderMenuFallback renders the menu in the message log for renderers
// without MenuRenderer support.
func renderMenuFallback(g *state.Game, items []MenuItem, selected int, helpText string, handler MenuHandler) {
	g.ClearMessages()
	logMessage(g, "=== %s ===", handler.GetTitle())

	var selectedItem MenuItem
	if selected >= 0 && selected < len(items) {
		selectedItem = items[selected]
	}
	if instructions := handler.GetInstructions(selectedItem); instructions != "" {
		logMessage(g, "%s", instructions)
	}
	if helpText != "" {
		logMessage(g, "%s", helpText)
	}

	for i, item := range items {
		prefix := "  "
		if i == selected {
			prefix = "> "
		}
		label := Label(i, item)
		if !item.IsSelectable() {
			label = renderer.StyledSubtle(label)
		}
		logMessage(g, "%s%s", prefix, label)
	}

	renderer.RenderFrame(g)
}

// Label numbers an entry the way RunMenu accepts typed selections
func Label(index int, item MenuItem) string {
	if !item.IsSelectable() {
		return "   " + item.GetLabel()
	}
	return fmt.Sprintf("%2d %s", index+1, item.GetLabel())
}

// Helper function to match logMessage signature
func logMessage(g *state.Game, msg string, a ...any) {
	formatted := renderer.ApplyMarkup(msg, a...)
	g.AddMessage(formatted)
}

