package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/blockfall/geometry"
)

// RGB color definitions
var (
	RgbBackground = tcell.NewRGBColor(26, 27, 38)    // Tokyo Night background
	RgbBorder     = tcell.NewRGBColor(120, 124, 153) // Muted lavender
	RgbSettled    = tcell.NewRGBColor(86, 95, 137)   // Slate for locked cells
	RgbShadow     = tcell.NewRGBColor(65, 72, 104)   // Dim slate for the drop projection
	RgbHudLabel   = tcell.NewRGBColor(180, 180, 180) // Brighter gray
	RgbHudValue   = tcell.NewRGBColor(255, 255, 255) // White
	RgbHelpText   = tcell.NewRGBColor(110, 110, 110) // Dark gray

	// Banner backgrounds
	RgbPausedBg   = tcell.NewRGBColor(135, 206, 250) // Light sky blue
	RgbGameOverBg = tcell.NewRGBColor(200, 50, 50)   // Red
	RgbBannerText = tcell.NewRGBColor(0, 0, 0)       // Dark text for banners
)

// pieceColors is indexed by archetype kind
var pieceColors = [...]tcell.Color{
	geometry.KindMiniI: tcell.NewRGBColor(255, 158, 100), // Orange
	geometry.KindDot:   tcell.NewRGBColor(224, 175, 104), // Sand
	geometry.KindO:     tcell.NewRGBColor(255, 255, 0),   // Bright yellow
	geometry.KindI:     tcell.NewRGBColor(0, 200, 200),   // Vibrant cyan
	geometry.KindL:     tcell.NewRGBColor(255, 165, 0),   // Orange
	geometry.KindJ:     tcell.NewRGBColor(100, 150, 255), // Normal blue
	geometry.KindS:     tcell.NewRGBColor(0, 200, 0),     // Normal green
	geometry.KindZ:     tcell.NewRGBColor(255, 80, 80),   // Normal red
	geometry.KindT:     tcell.NewRGBColor(187, 154, 247), // Purple
	geometry.KindSlash: tcell.NewRGBColor(255, 192, 203), // Pink
}

// PieceColor returns the display color for an archetype
func PieceColor(kind int) tcell.Color {
	if kind < 0 || kind >= len(pieceColors) {
		return RgbHudValue
	}
	return pieceColors[kind]
}
