package tui

import (
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/gookit/color"

	"wumpus/pkg/engine/input"
	"wumpus/pkg/engine/terminal"
	"wumpus/pkg/game/locale"
	"wumpus/pkg/game/menu"
	"wumpus/pkg/game/renderer"
	"wumpus/pkg/game/state"
)

// Layout
const (
	MaxTextWidth = 76
	Indent       = "  "
)

// TUIRenderer is the terminal-based renderer implementation
type TUIRenderer struct {
	styles map[renderer.TextStyle]color.Style
}

// New creates a new TUI renderer
func New() *TUIRenderer {
	return &TUIRenderer{}
}

// Init initializes the TUI renderer (colors, etc.)
func (t *TUIRenderer) Init() {
	t.styles = map[renderer.TextStyle]color.Style{
		renderer.StyleRoom:        {color.FgCyan, color.OpBold},
		renderer.StyleRoomText:    {color.FgWhite},
		renderer.StyleItem:        {color.FgMagenta},
		renderer.StyleAction:      {color.FgMagenta},
		renderer.StyleActionShort: {color.FgMagenta, color.OpBold},
		renderer.StyleDenied:      {color.FgRed, color.OpBold},
		renderer.StyleHazard:      {color.FgRed},
		renderer.StyleTreasure:    {color.FgYellow, color.OpBold},
		renderer.StyleSubtle:      {color.FgGray, color.OpBold},
		renderer.StylePlayer:      {color.FgGreen, color.OpBold},
		renderer.StyleOverlay:     {color.FgBlack, color.BgYellow, color.OpBold},
	}
}

// Clear clears the terminal screen
func (t *TUIRenderer) Clear() {
	c := exec.Command("clear")
	c.Stdout = os.Stdout
	if err := c.Run(); err != nil {
		fmt.Print("\033[H\033[2J")
	}
}

// GetInput gets user input from the terminal and returns a high-level Intent.
func (t *TUIRenderer) GetInput() input.Intent {
	raw := input.RawInput{
		Device: input.DeviceTerminal,
		Code:   input.GetInputWithArrows(),
	}
	debounced := input.NewDebouncedInput(raw)
	return input.MapToIntent(debounced)
}

// StyleText applies a style to text
func (t *TUIRenderer) StyleText(text string, style renderer.TextStyle) string {
	if s, ok := t.styles[style]; ok {
		return s.Sprint(text)
	}
	return text
}

// FormatText formats a message with the markup system
func (t *TUIRenderer) FormatText(msg string, args ...any) string {
	return renderer.ReplaceMarkup(t.markup, msg, args...)
}

func (t *TUIRenderer) markup(function, operand string) (string, bool) {
	switch function {
	case "GT":
		return locale.T(operand), true
	case "ITEM":
		return t.StyleText(operand, renderer.StyleItem), true
	case "ROOM":
		return t.StyleText(operand, renderer.StyleRoom), true
	case "ACTION":
		return t.StyleText(operand[0:1], renderer.StyleActionShort) + t.StyleText(operand[1:], renderer.StyleAction), true
	case "HAZARD":
		return t.StyleText(operand, renderer.StyleHazard), true
	case "TREASURE":
		return t.StyleText(operand, renderer.StyleTreasure), true
	default:
		return "", false
	}
}

// ShowMessage displays a message to the user
func (t *TUIRenderer) ShowMessage(msg string) {
	fmt.Println(t.FormatText("%s", msg))
}

// Close restores the terminal
func (t *TUIRenderer) Close() {
	color.Reset()
}

// RenderFrame renders a complete game frame
func (t *TUIRenderer) RenderFrame(g *state.Game) {
	f := renderer.BuildFrame(g)
	t.Clear()

	if f.Title != "" {
		fmt.Println(t.StyleText(f.Title, renderer.StyleRoom))
		fmt.Println()
	}

	t.printWrapped(f.Description, renderer.StyleRoomText)
	if len(f.Floor) > 0 {
		t.printWrapped("On the floor: "+strings.Join(f.Floor, ", "), renderer.StyleItem)
	}
	if len(f.Exits) > 0 {
		fmt.Printf("\n%sTunnels lead to %s\n", Indent, t.StyleText(renderer.ExitList(f.Exits), renderer.StyleActionShort))
	}

	if f.Overlay != nil {
		t.printOverlay(f.Overlay.Title, f.Overlay.Text)
	}

	t.printStatusBar(f)
	t.printMessagesPane(f.Messages)

	if f.GameOver != "" {
		fmt.Println()
		fmt.Println(t.StyleText(" "+f.GameOver+" ", renderer.StyleOverlay))
	}

	fmt.Printf("\n> ")
}

// RenderMenu draws a menu full screen
func (t *TUIRenderer) RenderMenu(g *state.Game, items []menu.MenuItem, selected int, helpText string, title string) {
	t.Clear()

	fmt.Println(t.StyleText("=== "+title+" ===", renderer.StyleRoom))
	fmt.Println()

	for i, item := range items {
		label := menu.Label(i, item)
		switch {
		case i == selected:
			fmt.Println(t.StyleText("> ", renderer.StylePlayer) + label)
		case !item.IsSelectable():
			fmt.Println("  " + t.StyleText(label, renderer.StyleSubtle))
		default:
			fmt.Println("  " + label)
		}
	}

	fmt.Println()
	if selected >= 0 && selected < len(items) {
		if help := items[selected].GetHelpText(); help != "" {
			fmt.Println(t.StyleText(help, renderer.StyleSubtle))
		}
	}
	if helpText != "" {
		fmt.Println(t.StyleText(helpText, renderer.StyleDenied))
	}
	fmt.Println(t.StyleText("up/down or a number to choose, Enter to select, q to close", renderer.StyleSubtle))
	fmt.Printf("\n> ")
}

// ClearMenu is a no-op; the next frame redraws the screen
func (t *TUIRenderer) ClearMenu() {}

func (t *TUIRenderer) printWrapped(text string, style renderer.TextStyle) {
	width := terminal.GetWidth() - len(Indent)
	if width > MaxTextWidth {
		width = MaxTextWidth
	}
	for _, line := range terminal.Wrap(text, width) {
		fmt.Println(Indent + t.StyleText(line, style))
	}
}

// printOverlay draws a scene overlay as a banner
func (t *TUIRenderer) printOverlay(title, text string) {
	width := terminal.GetWidth()
	if width > MaxTextWidth+4 {
		width = MaxTextWidth + 4
	}

	fmt.Println()
	fmt.Println(t.StyleText(strings.Repeat("═", width), renderer.StyleTreasure))
	fmt.Println(t.StyleText(" "+title+" ", renderer.StyleOverlay))
	for _, line := range terminal.Wrap(text, width-2) {
		fmt.Println(" " + t.FormatText("%s", line))
	}
	fmt.Println(t.StyleText(strings.Repeat("═", width), renderer.StyleTreasure))
}

// printStatusBar renders the inventory status bar
func (t *TUIRenderer) printStatusBar(f renderer.Frame) {
	fmt.Println()

	fmt.Print(t.StyleText("Inventory: ", renderer.StyleSubtle))
	if len(f.Inventory) == 0 {
		fmt.Println(t.StyleText("(empty)", renderer.StyleSubtle))
	} else {
		items := make([]string, len(f.Inventory))
		for i, it := range f.Inventory {
			items[i] = t.StyleText(it, renderer.StyleItem)
		}
		fmt.Println(strings.Join(items, t.StyleText(", ", renderer.StyleSubtle)))
	}

	treasures := "none"
	if len(f.Treasures) > 0 {
		treasures = t.StyleText(strings.Join(f.Treasures, ", "), renderer.StyleTreasure)
	}
	fmt.Printf("%s %d  %s %s  %s %d  %s %d\n",
		t.StyleText("Arrows:", renderer.StyleSubtle), f.Arrows,
		t.StyleText("Treasures:", renderer.StyleSubtle), treasures,
		t.StyleText("Turns:", renderer.StyleSubtle), f.Turns,
		t.StyleText("Score:", renderer.StyleSubtle), f.Score)
}

// printMessagesPane renders the messages log pane
func (t *TUIRenderer) printMessagesPane(messages []string) {
	width := terminal.GetWidth()

	label := " Messages "
	labelLen := len(label)
	sideLen := (width - labelLen) / 2
	if sideLen < 1 {
		sideLen = 1
	}
	rightLen := width - sideLen - labelLen
	if rightLen < 1 {
		rightLen = 1
	}

	fmt.Println()
	fmt.Println(t.StyleText(strings.Repeat("─", sideLen)+label+strings.Repeat("─", rightLen), renderer.StyleSubtle))

	if len(messages) == 0 {
		fmt.Println(t.StyleText("  (no messages)", renderer.StyleSubtle))
	} else {
		for _, msg := range messages {
			fmt.Printf("  %s\n", msg)
		}
	}

	fmt.Println(t.StyleText(strings.Repeat("─", width), renderer.StyleSubtle))
}
