package menu

import "wumpus/pkg/game/state"

// GameMenuAction represents the action type for game menu items.
type GameMenuAction int

const (
	GameMenuActionResume GameMenuAction = iota
	GameMenuActionSave
	GameMenuActionLoad
	GameMenuActionRestart
	GameMenuActionHelp
	GameMenuActionQuit
)

// GameMenuItem represents a menu item in the game menu.
type GameMenuItem struct {
	Label  string
	Action GameMenuAction
}

// GetLabel returns the display label for this menu item.
func (m *GameMenuItem) GetLabel() string {
	return m.Label
}

// IsSelectable returns whether this item can be selected.
func (m *GameMenuItem) IsSelectable() bool {
	return true
}

// GetHelpText returns help text for this menu item.
func (m *GameMenuItem) GetHelpText() string {
	switch m.Action {
	case GameMenuActionResume:
		return "Back to the hunt"
	case GameMenuActionSave:
		return "Save the hunt, replacing the previous save"
	case GameMenuActionLoad:
		return "Return to the last save"
	case GameMenuActionRestart:
		return "Start a new hunt in a freshly shuffled cave"
	case GameMenuActionHelp:
		return "List every command"
	case GameMenuActionQuit:
		return "Leave the cave"
	default:
		return ""
	}
}

// GameMenuHandler handles the in-game menu.
type GameMenuHandler struct {
	selectedAction GameMenuAction
}

// NewGameMenuHandler creates a new game menu handler.
func NewGameMenuHandler() *GameMenuHandler {
	return &GameMenuHandler{selectedAction: GameMenuActionResume}
}

// GetTitle returns the menu title.
func (h *GameMenuHandler) GetTitle() string {
	return "Game Menu"
}

// GetInstructions returns the menu instructions.
func (h *GameMenuHandler) GetInstructions(selected MenuItem) string {
	if selected != nil {
		if help := selected.GetHelpText(); help != "" {
			return help
		}
	}
	return "Use up/down to select, Enter to activate, q to close"
}

// OnSelect is called when an item is selected.
func (h *GameMenuHandler) OnSelect(item MenuItem, index int) {}

// OnActivate is called when an item is activated.
func (h *GameMenuHandler) OnActivate(item MenuItem, index int) (shouldClose bool, helpText string) {
	if gameItem, ok := item.(*GameMenuItem); ok {
		h.selectedAction = gameItem.Action
		return true, ""
	}
	return false, ""
}

// OnExit is called when the menu is exited.
func (h *GameMenuHandler) OnExit() {}

// ShouldCloseOnAnyAction returns true if the menu should close on any action.
func (h *GameMenuHandler) ShouldCloseOnAnyAction() bool {
	return false
}

// GetSelectedAction returns the selected action. Closing the menu resumes.
func (h *GameMenuHandler) GetSelectedAction() GameMenuAction {
	return h.selectedAction
}

// GetMenuItems returns the menu items for the game menu.
func (h *GameMenuHandler) GetMenuItems() []MenuItem {
	return []MenuItem{
		&GameMenuItem{Label: "Resume", Action: GameMenuActionResume},
		&GameMenuItem{Label: "Save", Action: GameMenuActionSave},
		&GameMenuItem{Label: "Load", Action: GameMenuActionLoad},
		&GameMenuItem{Label: "Restart", Action: GameMenuActionRestart},
		&GameMenuItem{Label: "Help", Action: GameMenuActionHelp},
		&GameMenuItem{Label: "Quit", Action: GameMenuActionQuit},
	}
}

// RunGameMenu runs the game menu and returns the chosen action
func RunGameMenu(g *state.Game) GameMenuAction {
	h := NewGameMenuHandler()
	RunMenuDynamic(g, h)
	return h.GetSelectedAction()
}
