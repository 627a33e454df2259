package ui

import "math"

// PixelToTile maps a backing-store pixel position to tile coordinates.
// Positions outside the canvas area resolve to no tile (ok=false); that is a
// normal outcome for a pointer off the grid, not an error.
func PixelToTile(px, py float64, gridW, gridH, canvasW, canvasH int) (tx, ty int, ok bool) {
	if math.IsNaN(px) || math.IsNaN(py) {
		return 0, 0, false
	}
	dx := float64(canvasW) / float64(gridW)
	dy := float64(canvasH) / float64(gridH)
	tx = int(math.Floor(px / dx))
	ty = int(math.Floor(py / dy))
	if tx < 0 || tx >= gridW || ty < 0 || ty >= gridH {
		return 0, 0, false
	}
	return tx, ty, true
}

// DisplayToBacking converts a pointer position in display (CSS) space to
// backing-store pixel space, compensating for any scaling between the
// displayed size and the actual pixel buffer (device pixel ratio included).
func DisplayToBacking(clientX, clientY, displayW, displayH float64, backingW, backingH int) (float64, float64) {
	return clientX * float64(backingW) / displayW, clientY * float64(backingH) / displayH
}
