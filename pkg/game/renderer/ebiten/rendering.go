package ebiten

import (
	"fmt"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"wumpus/pkg/game/renderer"
)

const (
	margin          = 24.0
	maxVisibleLines = 6
)

// Draw renders the game to the screen (Ebiten interface)
func (e *EbitenRenderer) Draw(screen *ebiten.Image) {
	screen.Fill(colorBackground)

	if e.monoFontSource == nil || e.sansFontSource == nil || e.boldFontSource == nil {
		// Can't draw without fonts
		return
	}

	snap := e.snapshotCopy()
	m := e.menuCopy()

	if snap.valid {
		e.drawRoom(screen, &snap)
		e.drawStatusBar(screen, &snap)
		e.drawMessages(screen, &snap)
		if !m.active {
			e.drawPrompt(screen, &snap)
		}
		if snap.overlay != nil && time.Now().UnixMilli() < snap.overlayUntil {
			e.drawOverlay(screen, snap.overlay.Title, snap.overlay.Text)
		}
	}

	if m.active {
		e.drawMenuOverlay(screen, &m)
	}
}

// drawRoom draws the room title, description, floor items and exits
func (e *EbitenRenderer) drawRoom(screen *ebiten.Image, snap *renderSnapshot) {
	f := &snap.frame
	width := float64(screen.Bounds().Dx()) - margin*2
	y := margin

	drawSegments(screen, plainSegments(f.Title, colorRoom), margin, y, e.getBoldFontFace())
	y += e.getBoldFontFace().Size * 1.6

	body := e.getSansFontFace()
	y = e.drawWrapped(screen, plainSegments(f.Description, colorText), margin, y, width, body)

	if len(f.Floor) > 0 {
		y += e.lineHeight() / 2
		segs := []textSegment{{text: "On the floor: ", color: colorSubtle}}
		for i, name := range f.Floor {
			if i > 0 {
				segs = append(segs, textSegment{text: ", ", color: colorSubtle})
			}
			segs = append(segs, textSegment{text: name, color: colorItem})
		}
		y = e.drawWrapped(screen, segs, margin, y, width, body)
	}

	if len(f.Exits) > 0 {
		y += e.lineHeight() / 2
		drawSegments(screen, []textSegment{
			{text: "Tunnels lead to ", color: colorSubtle},
			{text: renderer.ExitList(f.Exits), color: colorAction},
		}, margin, y, body)
	}
}

// drawStatusBar draws inventory and score along the top right
func (e *EbitenRenderer) drawStatusBar(screen *ebiten.Image, snap *renderSnapshot) {
	f := &snap.frame
	face := e.getSansFontFace()
	screenWidth := float64(screen.Bounds().Dx())

	lines := [][]textSegment{
		{
			{text: "Arrows ", color: colorSubtle}, {text: fmt.Sprint(f.Arrows), color: colorText},
			{text: "   Turns ", color: colorSubtle}, {text: fmt.Sprint(f.Turns), color: colorText},
			{text: "   Score ", color: colorSubtle}, {text: fmt.Sprint(f.Score), color: colorTreasure},
		},
	}
	for _, name := range f.Inventory {
		lines = append(lines, plainSegments(name, colorItem))
	}
	for _, name := range f.Treasures {
		lines = append(lines, plainSegments(name, colorTreasure))
	}

	maxWidth := 0.0
	for _, line := range lines {
		if w := segmentsWidth(line, face); w > maxWidth {
			maxWidth = w
		}
	}

	panelW := maxWidth + 20
	panelH := float64(len(lines))*e.lineHeight() + 16
	x := screenWidth - margin - panelW
	y := margin

	vector.DrawFilledRect(screen, float32(x), float32(y), float32(panelW), float32(panelH), colorPanelBackground, false)
	for i, line := range lines {
		drawSegments(screen, line, x+10, y+8+float64(i)*e.lineHeight(), face)
	}
}

// drawMessages draws the newest messages as a bottom-aligned panel, above the prompt
func (e *EbitenRenderer) drawMessages(screen *ebiten.Image, snap *renderSnapshot) {
	f := &snap.frame
	messages := f.Messages
	if f.GameOver != "" {
		messages = append(append([]string(nil), messages...), "TREASURE{"+f.GameOver+"}")
	}
	if len(messages) == 0 {
		return
	}
	if len(messages) > maxVisibleLines {
		messages = messages[len(messages)-maxVisibleLines:]
	}

	face := e.getSansFontFace()
	screenWidth, screenHeight := float64(screen.Bounds().Dx()), float64(screen.Bounds().Dy())
	width := screenWidth - margin*2 - 20

	var lines [][]textSegment
	for _, msg := range messages {
		lines = append(lines, wrapSegments(parseMarkup(msg), face, width)...)
	}

	panelH := float64(len(lines))*e.lineHeight() + 16
	y := screenHeight - margin - e.lineHeight()*2 - panelH

	vector.DrawFilledRect(screen, float32(margin), float32(y), float32(screenWidth-margin*2), float32(panelH), colorPanelBackground, false)
	for i, line := range lines {
		drawSegments(screen, line, margin+10, y+8+float64(i)*e.lineHeight(), face)
	}
}

// drawPrompt draws the line being typed with a blinking cursor
func (e *EbitenRenderer) drawPrompt(screen *ebiten.Image, snap *renderSnapshot) {
	face := e.getMonoFontFace()
	y := float64(screen.Bounds().Dy()) - margin - e.lineHeight()

	prompt := "> " + string(e.line)
	if snap.frame.GameOver != "" && len(e.line) == 0 {
		prompt = "> (press Enter)"
	}
	end := drawSegments(screen, plainSegments(prompt, colorPlayer), margin, y, face)

	if (time.Now().UnixMilli()/cursorBlink)%2 == 0 {
		vector.DrawFilledRect(screen, float32(end+2), float32(y), 2, float32(face.Size*1.2), colorPlayer, false)
	}
}

// drawOverlay draws a scene banner centred on the screen
func (e *EbitenRenderer) drawOverlay(screen *ebiten.Image, title, body string) {
	screenWidth, screenHeight := float64(screen.Bounds().Dx()), float64(screen.Bounds().Dy())
	panelW := screenWidth * 0.6
	face := e.getSansFontFace()
	titleFace := e.getBoldFontFace()

	lines := wrapSegments(parseMarkup(body), face, panelW-48)
	panelH := titleFace.Size*2 + float64(len(lines))*e.lineHeight() + 48
	x := (screenWidth - panelW) / 2
	y := (screenHeight - panelH) / 2

	drawRoundedRectWithShadow(screen, float32(x), float32(y), float32(panelW), float32(panelH), 12, 2,
		color.RGBA{10, 6, 16, 235}, colorOverlayBorder, 1)

	tw := text.Advance(title, titleFace)
	drawSegments(screen, plainSegments(title, colorTreasure), x+(panelW-tw)/2, y+24, titleFace)

	ty := y + 24 + titleFace.Size*2
	for _, line := range lines {
		lw := segmentsWidth(line, face)
		drawSegments(screen, line, x+(panelW-lw)/2, ty, face)
		ty += e.lineHeight()
	}
}

