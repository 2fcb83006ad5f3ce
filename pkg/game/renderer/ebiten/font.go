package ebiten

import (
	"bytes"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
)

// loadFonts parses the bundled Go fonts
func (e *EbitenRenderer) loadFonts() error {
	var err error
	if e.monoFontSource, err = text.NewGoTextFaceSource(bytes.NewReader(gomono.TTF)); err != nil {
		return fmt.Errorf("loading mono font: %w", err)
	}
	if e.sansFontSource, err = text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF)); err != nil {
		return fmt.Errorf("loading sans font: %w", err)
	}
	if e.boldFontSource, err = text.NewGoTextFaceSource(bytes.NewReader(gobold.TTF)); err != nil {
		return fmt.Errorf("loading bold font: %w", err)
	}
	return nil
}

// refreshFaces drops cached faces after a font size change
func (e *EbitenRenderer) refreshFaces() {
	if e.cachedFontSize == e.fontSize {
		return
	}
	e.cachedFontSize = e.fontSize
	e.cachedMonoFace = nil
	e.cachedSansFace = nil
	e.cachedBoldFace = nil
}

// getMonoFontFace returns a cached monospace font face
func (e *EbitenRenderer) getMonoFontFace() *text.GoTextFace {
	e.refreshFaces()
	if e.cachedMonoFace == nil {
		e.cachedMonoFace = &text.GoTextFace{Source: e.monoFontSource, Size: e.fontSize}
	}
	return e.cachedMonoFace
}

// getSansFontFace returns a cached sans-serif font face for UI text
func (e *EbitenRenderer) getSansFontFace() *text.GoTextFace {
	e.refreshFaces()
	if e.cachedSansFace == nil {
		e.cachedSansFace = &text.GoTextFace{Source: e.sansFontSource, Size: e.fontSize}
	}
	return e.cachedSansFace
}

// getBoldFontFace returns a cached bold face, 4pt larger than body text
func (e *EbitenRenderer) getBoldFontFace() *text.GoTextFace {
	e.refreshFaces()
	if e.cachedBoldFace == nil {
		e.cachedBoldFace = &text.GoTextFace{Source: e.boldFontSource, Size: e.fontSize + 4}
	}
	return e.cachedBoldFace
}

// lineHeight is the vertical advance for one line of body text
func (e *EbitenRenderer) lineHeight() float64 {
	return e.fontSize * 1.4
}
