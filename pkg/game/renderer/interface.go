package renderer

import (
	engineinput "wumpus/pkg/engine/input"
	"wumpus/pkg/game/state"
)

// TextStyle represents different text styling options
type TextStyle int

const (
	StyleNormal TextStyle = iota
	StyleRoom
	StyleRoomText
	StyleItem
	StyleAction
	StyleActionShort
	StyleDenied
	StyleHazard
	StyleTreasure
	StyleSubtle
	StylePlayer
	StyleOverlay
)

// Renderer defines the interface for game rendering backends
type Renderer interface {
	// Init initializes the renderer (colors, fonts, window, etc.)
	Init()

	// Clear clears the display
	Clear()

	// RenderFrame renders a complete game frame: room, status bar, messages and prompt
	RenderFrame(g *state.Game)

	// GetInput blocks until the player does something and returns it as an Intent
	GetInput() engineinput.Intent

	// StyleText applies a style to text and returns the styled string
	StyleText(text string, style TextStyle) string

	// FormatText formats a message with the renderer's markup system
	FormatText(msg string, args ...any) string

	// ShowMessage displays a message outside of the game frame
	ShowMessage(msg string)

	// Close releases the display
	Close()
}

// Build information, set with -ldflags
var (
	Version = "dev"
	Commit  = "unknown"
)

// Current holds the active renderer instance
var Current Renderer

// SetRenderer sets the active renderer
func SetRenderer(r Renderer) {
	Current = r
}

// Init initializes the current renderer
func Init() {
	if Current != nil {
		Current.Init()
	}
}

// Clear clears the display using the current renderer
func Clear() {
	if Current != nil {
		Current.Clear()
	}
}

// RenderFrame renders a complete game frame
func RenderFrame(g *state.Game) {
	if Current != nil {
		Current.RenderFrame(g)
	}
}

// GetInput gets user input from the current renderer
func GetInput() engineinput.Intent {
	if Current != nil {
		return Current.GetInput()
	}
	return engineinput.Intent{Action: engineinput.ActionQuit}
}

// StyleText applies a style to text
func StyleText(text string, style TextStyle) string {
	if Current != nil {
		return Current.StyleText(text, style)
	}
	return text
}

// FormatText formats a message with markup
func FormatText(msg string, args ...any) string {
	if Current != nil {
		return Current.FormatText(msg, args...)
	}
	return ApplyMarkup(msg, args...)
}

// ShowMessage displays a message with the current renderer
func ShowMessage(msg string) {
	if Current != nil {
		Current.ShowMessage(msg)
	}
}

// Close releases the current renderer
func Close() {
	if Current != nil {
		Current.Close()
	}
}

// StyledItem styles an item name
func StyledItem(name string) string {
	return StyleText(name, StyleItem)
}

// StyledHazard styles a hazard name
func StyledHazard(name string) string {
	return StyleText(name, StyleHazard)
}

// StyledSubtle styles secondary text
func StyledSubtle(text string) string {
	return StyleText(text, StyleSubtle)
}
