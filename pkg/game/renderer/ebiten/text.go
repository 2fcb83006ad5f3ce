package ebiten

import (
	"image/color"
	"regexp"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"wumpus/pkg/game/locale"
	"wumpus/pkg/game/renderer"
)

// markupRegex matches FUNCTION{content}
var markupRegex = regexp.MustCompile(`([A-Z][A-Z0-9_]*)\{([^{}]*)\}`)

// styleMarkup is the markup function each text style is written back as
var styleMarkup = map[renderer.TextStyle]string{
	renderer.StyleRoom:        "ROOM",
	renderer.StyleItem:        "ITEM",
	renderer.StyleAction:      "ACTION",
	renderer.StyleActionShort: "ACTION",
	renderer.StyleDenied:      "DENIED",
	renderer.StyleHazard:      "HAZARD",
	renderer.StyleTreasure:    "TREASURE",
	renderer.StyleSubtle:      "SUBTLE",
	renderer.StylePlayer:      "PLAYER",
	renderer.StyleOverlay:     "TREASURE",
}

// markupColor returns the color for a markup function
func markupColor(function string) color.Color {
	switch function {
	case "ITEM":
		return colorItem
	case "ROOM":
		return colorRoom
	case "ACTION":
		return colorAction
	case "HAZARD":
		return colorHazard
	case "TREASURE":
		return colorTreasure
	case "DENIED":
		return colorDenied
	case "SUBTLE":
		return colorSubtle
	case "PLAYER":
		return colorPlayer
	default:
		return colorText
	}
}

// parseMarkup splits a message with markup into colored segments
func parseMarkup(msg string) []textSegment {
	var segments []textSegment

	lastIndex := 0
	for _, match := range markupRegex.FindAllStringSubmatchIndex(msg, -1) {
		if match[0] > lastIndex {
			segments = append(segments, textSegment{text: msg[lastIndex:match[0]], color: colorText})
		}

		function := msg[match[2]:match[3]]
		content := msg[match[4]:match[5]]
		if function == "GT" {
			content = locale.T(content)
		}

		segments = append(segments, textSegment{text: content, color: markupColor(function)})
		lastIndex = match[1]
	}

	if lastIndex < len(msg) {
		segments = append(segments, textSegment{text: msg[lastIndex:], color: colorText})
	}

	if len(segments) == 0 {
		segments = append(segments, textSegment{text: msg, color: colorText})
	}

	return segments
}

// plainSegments wraps a string in a single segment
func plainSegments(s string, col color.Color) []textSegment {
	return []textSegment{{text: s, color: col}}
}

// wrapSegments breaks colored segments into lines no wider than maxWidth pixels.
// Words keep the color of the segment they came from.
func wrapSegments(segments []textSegment, face *text.GoTextFace, maxWidth float64) [][]textSegment {
	var lines [][]textSegment
	var line []textSegment
	lineWidth := 0.0
	spaceWidth := text.Advance(" ", face)

	for _, seg := range segments {
		for _, word := range strings.Fields(seg.text) {
			w := text.Advance(word, face)
			if len(line) > 0 && lineWidth+spaceWidth+w > maxWidth {
				lines = append(lines, line)
				line = nil
				lineWidth = 0
			}
			if len(line) > 0 {
				word = " " + word
				w += spaceWidth
			}
			line = append(line, textSegment{text: word, color: seg.color})
			lineWidth += w
		}
	}
	if len(line) > 0 {
		lines = append(lines, line)
	}
	return lines
}

// drawSegments draws segments left to right starting at (x, y), y being the top of the line
func drawSegments(screen *ebiten.Image, segments []textSegment, x, y float64, face *text.GoTextFace) float64 {
	currentX := x
	for _, seg := range segments {
		if seg.text == "" {
			continue
		}

		op := &text.DrawOptions{}
		op.GeoM.Translate(currentX, y)
		op.ColorScale.ScaleWithColor(seg.color)
		text.Draw(screen, seg.text, face, op)

		currentX += text.Advance(seg.text, face)
	}
	return currentX
}

// drawWrapped draws marked-up text wrapped to maxWidth and returns the y below it
func (e *EbitenRenderer) drawWrapped(screen *ebiten.Image, segments []textSegment, x, y, maxWidth float64, face *text.GoTextFace) float64 {
	for _, line := range wrapSegments(segments, face, maxWidth) {
		drawSegments(screen, line, x, y, face)
		y += e.lineHeight()
	}
	return y
}

// segmentsWidth returns the total advance of a line of segments
func segmentsWidth(segments []textSegment, face *text.GoTextFace) float64 {
	w := 0.0
	for _, seg := range segments {
		w += text.Advance(seg.text, face)
	}
	return w
}
