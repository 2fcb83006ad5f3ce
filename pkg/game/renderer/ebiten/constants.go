package ebiten

import "image/color"

// Color palette
var (
	colorBackground      = color.RGBA{18, 14, 12, 255}    // Cave brown-black
	colorPanelBackground = color.RGBA{30, 24, 22, 220}    // Semi-transparent dark
	colorText            = color.RGBA{225, 215, 200, 255} // Warm off-white
	colorSubtle          = color.RGBA{140, 125, 110, 255} // Dusty brown-gray
	colorRoom            = color.RGBA{120, 200, 220, 255} // Pale cyan for room names
	colorItem            = color.RGBA{220, 170, 255, 255} // Bright purple
	colorAction          = color.RGBA{180, 150, 250, 255} // Blue-purple
	colorDenied          = color.RGBA{255, 100, 100, 255} // Bright red
	colorHazard          = color.RGBA{255, 80, 80, 255}   // Bright red
	colorTreasure        = color.RGBA{255, 210, 80, 255}  // Gold
	colorPlayer          = color.RGBA{0, 255, 0, 255}     // Bright green
	colorOverlayBorder   = color.RGBA{255, 210, 80, 200}  // Gold border for scene overlays
	colorMenuHighlight   = color.RGBA{100, 60, 160, 255}  // Dark purple
)

// Font size constraints
const (
	minFontSize     = 10.0
	maxFontSize     = 48.0
	fontSizeStep    = 2.0
	defaultFontSize = 18.0
)

const (
	keyRepeatInitialDelay = 500 // Initial delay before first repeat (milliseconds)
	keyRepeatInterval     = 100 // Interval between repeat events (milliseconds)

	overlayDuration = 4000 // How long a scene overlay stays on screen (milliseconds)
	cursorBlink     = 500  // Prompt cursor blink period (milliseconds)

	defaultWindowWidth  = 1024
	defaultWindowHeight = 768
	windowTitle         = "Hunt the Wumpus"
)
