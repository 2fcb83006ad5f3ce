package ebiten

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	gamemenu "wumpus/pkg/game/menu"
)

// appendRoundedRect adds a rounded rectangle to the path. (x, y) is top-left; w, h are size; r is corner radius.
// Uses clockwise arcs so the path winds correctly for fill.
func appendRoundedRect(p *vector.Path, x, y, w, h, r float32) {
	appendRoundedRectDir(p, x, y, w, h, r, vector.Clockwise)
}

// appendRoundedRectDir adds a rounded rectangle with the given winding direction.
// CounterClockwise creates a hole when combined with an outer clockwise rect.
func appendRoundedRectDir(p *vector.Path, x, y, w, h, r float32, dir vector.Direction) {
	if r <= 0 {
		p.MoveTo(x, y)
		p.LineTo(x, y+h)
		p.LineTo(x+w, y+h)
		p.LineTo(x+w, y)
		p.Close()
		return
	}
	if r > w/2 {
		r = w / 2
	}
	if r > h/2 {
		r = h / 2
	}
	halfPi := float32(math.Pi / 2)
	pi := float32(math.Pi)
	p.MoveTo(x+r, y)
	p.LineTo(x+w-r, y)
	p.Arc(x+w-r, y+r, r, 3*halfPi, 0, dir)
	p.LineTo(x+w, y+h-r)
	p.Arc(x+w-r, y+h-r, r, 0, halfPi, dir)
	p.LineTo(x+r, y+h)
	p.Arc(x+r, y+h-r, r, halfPi, pi, dir)
	p.LineTo(x, y+r)
	p.Arc(x+r, y+r, r, pi, 3*halfPi, dir)
	p.Close()
}

// drawRoundedRectWithShadow draws a rounded rectangle with drop shadow, fill, and border.
// Used by menus and overlays. alpha scales shadow opacity (1.0 = full).
// Shadow color is derived from borderColor (darkened to ~15% brightness).
func drawRoundedRectWithShadow(screen *ebiten.Image, x, y, w, h, cornerRadius, borderWidth float32, bgColor, borderColor color.Color, alpha float32) {
	const shadowSpread = 8
	// Derive shadow from border color (darkened)
	bor, bog, bob, _ := borderColor.RGBA()
	shadowR := uint8((bor >> 8) * 15 / 255)
	shadowG := uint8((bog >> 8) * 15 / 255)
	shadowB := uint8((bob >> 8) * 15 / 255)
	if shadowR < 8 {
		shadowR = 8
	}
	if shadowG < 8 {
		shadowG = 8
	}
	if shadowB < 8 {
		shadowB = 8
	}

	var path vector.Path
	for i := shadowSpread; i >= 1; i-- {
		ringAlpha := uint8(12 + i*8)
		if ringAlpha > 55 {
			ringAlpha = 55
		}
		ringAlpha = uint8(float32(ringAlpha) * alpha)
		path.Reset()
		appendRoundedRect(&path,
			x-float32(i), y-float32(i),
			w+float32(i*2), h+float32(i*2),
			cornerRadius+float32(i))
		appendRoundedRectDir(&path,
			x-float32(i-1), y-float32(i-1),
			w+float32((i-1)*2), h+float32((i-1)*2),
			cornerRadius+float32(i-1), vector.CounterClockwise)
		drawOpts := &vector.DrawPathOptions{AntiAlias: true}
		drawOpts.ColorScale.ScaleWithColor(color.RGBA{shadowR, shadowG, shadowB, ringAlpha})
		vector.FillPath(screen, &path, nil, drawOpts)
	}

	path.Reset()
	appendRoundedRect(&path, x, y, w, h, cornerRadius)
	drawOpts := &vector.DrawPathOptions{AntiAlias: true}
	drawOpts.ColorScale.ScaleWithColor(bgColor)
	vector.FillPath(screen, &path, nil, drawOpts)

	path.Reset()
	appendRoundedRect(&path, x, y, w, h, cornerRadius)
	strokeOpts := &vector.StrokeOptions{Width: borderWidth, MiterLimit: 10}
	drawOpts = &vector.DrawPathOptions{AntiAlias: true}
	drawOpts.ColorScale.ScaleWithColor(borderColor)
	vector.StrokePath(screen, &path, strokeOpts, drawOpts)
}

// drawMenuOverlay draws a panel in the middle of the screen with the menu
// list and a clear highlight for the selected entry.
func (e *EbitenRenderer) drawMenuOverlay(screen *ebiten.Image, m *menuState) {
	if len(m.items) == 0 && m.title == "" {
		return
	}

	screenWidth, screenHeight := float64(screen.Bounds().Dx()), float64(screen.Bounds().Dy())
	face := e.getSansFontFace()
	titleFace := e.getBoldFontFace()
	lineHeight := e.lineHeight()

	const paddingX = 24.0
	const paddingY = 24.0

	panelW := screenWidth * 0.7
	contentW := panelW - paddingX*2

	// Measure everything first so the panel fits its content
	var footer [][]textSegment
	if m.selected >= 0 && m.selected < len(m.items) {
		if help := m.items[m.selected].GetHelpText(); help != "" {
			footer = append(footer, wrapSegments(parseMarkup(help), face, contentW)...)
		}
	}
	if m.helpText != "" {
		footer = append(footer, wrapSegments(plainSegments(m.helpText, colorDenied), face, contentW)...)
	}

	panelH := paddingY*2 + titleFace.Size*2 + float64(len(m.items))*lineHeight
	if len(footer) > 0 {
		panelH += lineHeight/2 + float64(len(footer))*lineHeight
	}
	if panelH > screenHeight-margin*2 {
		panelH = screenHeight - margin*2
	}

	x := (screenWidth - panelW) / 2
	y := (screenHeight - panelH) / 2

	br, bg, bb, _ := colorAction.RGBA()
	border := color.RGBA{uint8(br >> 8), uint8(bg >> 8), uint8(bb >> 8), 200}
	drawRoundedRectWithShadow(screen, float32(x), float32(y), float32(panelW), float32(panelH), 12, 2,
		color.RGBA{10, 6, 16, 220}, border, 1)

	cx := x + paddingX
	cy := y + paddingY
	drawSegments(screen, plainSegments(m.title, colorAction), cx, cy, titleFace)
	cy += titleFace.Size * 2

	_, textHeight := text.Measure("Ag", face, 0)
	for i, item := range m.items {
		label := gamemenu.Label(i, item)
		col := color.Color(colorText)
		if !item.IsSelectable() {
			col = colorSubtle
		}

		if i == m.selected {
			w := text.Advance(label, face) + 16
			vector.DrawFilledRect(screen, float32(cx-8), float32(cy-2), float32(w), float32(textHeight+4), colorMenuHighlight, false)
		}

		segs := parseMarkup(label)
		for j := range segs {
			if segs[j].color == colorText {
				segs[j].color = col
			}
		}
		drawSegments(screen, segs, cx, cy, face)
		cy += lineHeight
	}

	if len(footer) > 0 {
		cy += lineHeight / 2
		for _, line := range footer {
			drawSegments(screen, line, cx, cy, face)
			cy += lineHeight
		}
	}
}
