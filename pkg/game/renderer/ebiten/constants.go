package ebiten

import (
	"image/color"

	"awaresnake/pkg/game/renderer"
	"awaresnake/pkg/game/state"
)

// Color palette
var (
	colorBackground    = color.RGBA{26, 26, 46, 255}    // Dark blue-gray
	colorMapBackground = color.RGBA{15, 15, 26, 255}    // Darker for the board
	colorEmpty         = color.RGBA{32, 32, 52, 255}    // Faint grid cell
	colorHead          = color.RGBA{0, 255, 0, 255}     // Bright green
	colorBody          = color.RGBA{0, 170, 60, 255}    // Darker green
	colorHeadAware     = color.RGBA{220, 170, 255, 255} // Bright purple
	colorBodyAware     = color.RGBA{150, 100, 220, 255} // Purple
	colorHeadEscape    = color.RGBA{255, 80, 80, 255}   // Bright red
	colorBodyEscape    = color.RGBA{190, 50, 50, 255}   // Dark red
	colorDead          = color.RGBA{120, 120, 140, 255} // Medium gray
	colorFood          = color.RGBA{255, 200, 100, 255} // Orange
	colorPanel         = color.RGBA{30, 30, 50, 220}    // Semi-transparent dark
)

// Sizes in pixels
const (
	defaultTileSize = 24
	minTileSize     = 12
	maxTileSize     = 48
	tileSizeStep    = 4
	tileGap         = 1
	boardMargin     = 8

	// Debug text is 16px per line
	lineHeight = 16
	panelLines = 4
)

// colorFor returns the fill of a cell given the frame mood
func colorFor(kind state.CellKind, mood renderer.Mood) color.Color {
	switch kind {
	case state.CellFood:
		return colorFood
	case state.CellHead:
		switch mood {
		case renderer.MoodRealized:
			return colorHeadAware
		case renderer.MoodEscaping:
			return colorHeadEscape
		case renderer.MoodOver:
			return colorDead
		}
		return colorHead
	case state.CellBody:
		switch mood {
		case renderer.MoodRealized:
			return colorBodyAware
		case renderer.MoodEscaping:
			return colorBodyEscape
		case renderer.MoodOver:
			return colorDead
		}
		return colorBody
	default:
		return colorEmpty
	}
}
