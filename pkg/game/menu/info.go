package menu

// InfoMenuItem is a non-selectable line of text.
type InfoMenuItem struct {
	Text string
}

// GetLabel returns the display label for this menu item.
func (i *InfoMenuItem) GetLabel() string {
	return i.Text
}

// IsSelectable returns false; info lines are display only.
func (i *InfoMenuItem) IsSelectable() bool {
	return false
}

// GetHelpText returns help text for this menu item.
func (i *InfoMenuItem) GetHelpText() string {
	return ""
}

// InfoMenuHandler shows read-only pages such as the map and the help screen.
// Any key closes it.
type InfoMenuHandler struct {
	title string
	lines []string
}

// NewInfoMenuHandler creates a read-only page
func NewInfoMenuHandler(title string, lines []string) *InfoMenuHandler {
	return &InfoMenuHandler{title: title, lines: lines}
}

// GetTitle returns the menu title.
func (h *InfoMenuHandler) GetTitle() string {
	return h.title
}

// GetInstructions returns the menu instructions.
func (h *InfoMenuHandler) GetInstructions(selected MenuItem) string {
	return "Press Enter to close"
}

func (h *InfoMenuHandler) OnSelect(item MenuItem, index int) {}

func (h *InfoMenuHandler) OnActivate(item MenuItem, index int) (bool, string) {
	return true, ""
}

func (h *InfoMenuHandler) OnExit() {}

// ShouldCloseOnAnyAction returns true; info pages close on any key.
func (h *InfoMenuHandler) ShouldCloseOnAnyAction() bool {
	return true
}

// GetMenuItems returns one info item per line.
func (h *InfoMenuHandler) GetMenuItems() []MenuItem {
	items := make([]MenuItem, len(h.lines))
	for i, line := range h.lines {
		items[i] = &InfoMenuItem{Text: line}
	}
	return items
}
