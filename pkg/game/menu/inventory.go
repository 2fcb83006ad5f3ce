package menu

import (
	"wumpus/pkg/game/renderer"
	"wumpus/pkg/game/state"
)

// InventoryMenuItem represents one carried item.
type InventoryMenuItem struct {
	Item state.InventoryItem
}

// GetLabel returns the display label for this menu item.
func (m *InventoryMenuItem) GetLabel() string {
	label := renderer.InventoryLabel(m.Item)
	if m.Item.Treasure {
		return renderer.StyleText(label, renderer.StyleTreasure)
	}
	return renderer.StyledItem(label)
}

// IsSelectable returns whether this item can be selected.
func (m *InventoryMenuItem) IsSelectable() bool {
	return true
}

// GetHelpText returns help text for this menu item.
func (m *InventoryMenuItem) GetHelpText() string {
	if m.Item.Treasure {
		return "A treasure. Worth 10 points."
	}
	return "Enter to use"
}

// InventoryMenuHandler lets the player pick an item to use.
type InventoryMenuHandler struct {
	g        *state.Game
	selected string
}

// NewInventoryMenuHandler creates a new inventory menu handler.
func NewInventoryMenuHandler(g *state.Game) *InventoryMenuHandler {
	return &InventoryMenuHandler{g: g}
}

// GetTitle returns the menu title.
func (h *InventoryMenuHandler) GetTitle() string {
	return "Inventory"
}

// GetInstructions returns the menu instructions.
func (h *InventoryMenuHandler) GetInstructions(selected MenuItem) string {
	if selected == nil {
		return "Press q to close"
	}
	if item, ok := selected.(*InventoryMenuItem); ok && h.g.Content != nil {
		if def, ok := h.g.Content.Item(item.Item.ID); ok {
			return def.Description
		}
	}
	return "Use up/down or a number to select, Enter to use, q to close"
}

func (h *InventoryMenuHandler) OnSelect(item MenuItem, index int) {}

// OnActivate is called when an item is activated.
func (h *InventoryMenuHandler) OnActivate(item MenuItem, index int) (shouldClose bool, helpText string) {
	if invItem, ok := item.(*InventoryMenuItem); ok {
		h.selected = invItem.Item.ID
		return true, ""
	}
	return false, ""
}

func (h *InventoryMenuHandler) OnExit() {}

// ShouldCloseOnAnyAction returns true if the menu should close on any action.
func (h *InventoryMenuHandler) ShouldCloseOnAnyAction() bool {
	return false
}

// GetMenuItems returns the carried items.
func (h *InventoryMenuHandler) GetMenuItems() []MenuItem {
	inv := h.g.Inventory.Items()
	if len(inv) == 0 {
		return []MenuItem{&InfoMenuItem{Text: "(empty)"}}
	}
	items := make([]MenuItem, len(inv))
	for i, it := range inv {
		items[i] = &InventoryMenuItem{Item: it}
	}
	return items
}

// Selected returns the id of the item chosen, or "" if the menu was closed.
func (h *InventoryMenuHandler) Selected() string {
	return h.selected
}

// ChooseItem runs the inventory menu and returns the chosen item id
func ChooseItem(g *state.Game) string {
	h := NewInventoryMenuHandler(g)
	RunMenuDynamic(g, h)
	return h.Selected()
}
