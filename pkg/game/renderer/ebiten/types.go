// Package ebiten provides an Ebiten-based 2D graphical renderer for Hunt the Wumpus.
package ebiten

import (
	"image/color"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	engineinput "wumpus/pkg/engine/input"
	"wumpus/pkg/game/entities"
	gamemenu "wumpus/pkg/game/menu"
	"wumpus/pkg/game/renderer"
)

// renderSnapshot holds a consistent copy of the frame for drawing.
// The game loop writes it from its own goroutine; Draw only reads it.
type renderSnapshot struct {
	valid        bool
	frame        renderer.Frame
	overlay      *entities.OverlayInfo
	overlayUntil int64 // Unix milliseconds until which the overlay is shown
}

// menuState is the menu overlay drawn on top of the frame
type menuState struct {
	active   bool
	items    []gamemenu.MenuItem
	selected int
	helpText string
	title    string
}

// keyRepeatInfo tracks the repeat state for a key or button
type keyRepeatInfo struct {
	firstPressed int64 // Timestamp when first pressed (milliseconds)
	lastRepeat   int64 // Timestamp when last repeat event was sent (milliseconds)
}

// textSegment represents a segment of text with a specific color
type textSegment struct {
	text  string
	color color.Color
}

// EbitenRenderer is the Ebiten-based graphical renderer
type EbitenRenderer struct {
	// Window dimensions
	windowWidth  int
	windowHeight int

	// Font size for all text (adjustable with Ctrl+= / Ctrl+-)
	fontSize float64

	// Font sources for text rendering
	monoFontSource *text.GoTextFaceSource // Monospace font for the prompt and map lines
	sansFontSource *text.GoTextFaceSource // Sans-serif font for UI text
	boldFontSource *text.GoTextFaceSource // Sans-serif bold for titles

	// Cached font faces (recreated when the font size changes)
	cachedFontSize float64
	cachedMonoFace *text.GoTextFace
	cachedSansFace *text.GoTextFace
	cachedBoldFace *text.GoTextFace

	// Cached render snapshot for consistent drawing
	snapshot      renderSnapshot
	snapshotMutex sync.RWMutex

	// Menu overlay state
	menu      menuState
	menuMutex sync.RWMutex

	// Line being typed at the prompt. Only touched from Update and Draw.
	line []rune

	// Input channel for communication between Ebiten and the game loop
	inputChan chan engineinput.Intent

	// done is closed when the game loop returns, closed when the window goes away
	done   chan struct{}
	closed chan struct{}

	// Key repeat state tracking
	keyRepeatState      map[string]keyRepeatInfo
	keyRepeatStateMutex sync.Mutex

	// Previous analog stick position per gamepad (for edge detection)
	stickState map[ebiten.GamepadID]float64
}
