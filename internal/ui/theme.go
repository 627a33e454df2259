package ui

import "image/color"

var (
	colBG = color.RGBA{10, 10, 16, 255}

	colTileOff      = color.RGBA{40, 60, 80, 255}
	colTileOn       = color.RGBA{0, 200, 255, 255}
	colTilePlayhead = color.RGBA{235, 255, 255, 255}
	colTileBorder   = color.RGBA{16, 24, 32, 255}

	colParticle = color.RGBA{255, 240, 180, 255}
)

// Opacity rules for the tile states of the frame loop. Ambient glow scales
// with heat but never drops below the floor, so dark tiles stay faintly
// visible.
const (
	alphaPlayhead     = 1.0
	alphaLit          = 0.85
	alphaHover        = 0.30
	alphaAmbientFloor = 0.05
	alphaAmbientCeil  = 0.30
	heatGain          = 0.001 // ambient alpha per unit of accumulated life
)

// Accent-channel tint applied per tile on top of the opacity rules.
const (
	accentTintR = 1.0
	accentTintG = 0.78
	accentTintB = 0.55
)
