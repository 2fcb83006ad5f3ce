package menu

import "wumpus/pkg/game/state"

// MainMenuAction represents the action type for title screen items.
type MainMenuAction int

const (
	MainMenuActionNewGame MainMenuAction = iota
	MainMenuActionContinue
	MainMenuActionHelp
	MainMenuActionQuit
)

// MainMenuItem represents a menu item in the title screen.
type MainMenuItem struct {
	Label    string
	Action   MainMenuAction
	Disabled bool
}

// GetLabel returns the display label for this menu item.
func (m *MainMenuItem) GetLabel() string {
	return m.Label
}

// IsSelectable returns whether this item can be selected.
func (m *MainMenuItem) IsSelectable() bool {
	return !m.Disabled
}

// GetHelpText returns help text for this menu item.
func (m *MainMenuItem) GetHelpText() string {
	switch m.Action {
	case MainMenuActionNewGame:
		return "Enter the cave with five crooked arrows"
	case MainMenuActionContinue:
		return "Pick up the hunt from the last save"
	case MainMenuActionHelp:
		return "List every command"
	case MainMenuActionQuit:
		return "Exit the game"
	default:
		return ""
	}
}

// MainMenuHandler handles the title screen.
type MainMenuHandler struct {
	selectedAction MainMenuAction
	hasSave        bool
}

// NewMainMenuHandler creates a new title screen handler.
func NewMainMenuHandler(hasSave bool) *MainMenuHandler {
	return &MainMenuHandler{selectedAction: MainMenuActionQuit, hasSave: hasSave}
}

// GetTitle returns the menu title.
func (h *MainMenuHandler) GetTitle() string {
	return "Hunt the Wumpus"
}

// GetInstructions returns the menu instructions.
func (h *MainMenuHandler) GetInstructions(selected MenuItem) string {
	return "Use up/down to select, Enter to activate, q to quit"
}

// OnSelect is called when an item is selected.
func (h *MainMenuHandler) OnSelect(item MenuItem, index int) {}

// OnActivate is called when an item is activated.
func (h *MainMenuHandler) OnActivate(item MenuItem, index int) (shouldClose bool, helpText string) {
	if mainItem, ok := item.(*MainMenuItem); ok {
		h.selectedAction = mainItem.Action
		return true, ""
	}
	return false, ""
}

// OnExit is called when the menu is exited.
func (h *MainMenuHandler) OnExit() {}

// ShouldCloseOnAnyAction returns true if the menu should close on any action.
func (h *MainMenuHandler) ShouldCloseOnAnyAction() bool {
	return false
}

// GetSelectedAction returns the selected action. Closing the menu quits.
func (h *MainMenuHandler) GetSelectedAction() MainMenuAction {
	return h.selectedAction
}

// GetMenuItems returns the menu items for the title screen.
func (h *MainMenuHandler) GetMenuItems() []MenuItem {
	return []MenuItem{
		&MainMenuItem{Label: "New Hunt", Action: MainMenuActionNewGame},
		&MainMenuItem{Label: "Continue", Action: MainMenuActionContinue, Disabled: !h.hasSave},
		&MainMenuItem{Label: "Help", Action: MainMenuActionHelp},
		&MainMenuItem{Label: "Quit", Action: MainMenuActionQuit},
	}
}

// RunMainMenu runs the title screen and returns the selected action.
func RunMainMenu(hasSave bool) MainMenuAction {
	// Minimal game state for rendering
	g := state.NewGame(0)

	for {
		h := NewMainMenuHandler(hasSave)
		RunMenuDynamic(g, h)
		if h.GetSelectedAction() != MainMenuActionHelp {
			return h.GetSelectedAction()
		}
		ShowHelp(g)
	}
}
