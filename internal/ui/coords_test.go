package ui

import (
	"math"
	"testing"
)

func TestPixelToTileCenterOfOrigin(t *testing.T) {
	const gridW, gridH = 16, 16
	const canvasW, canvasH = 640, 640
	x, y, ok := PixelToTile(float64(canvasW)/32, float64(canvasH)/32, gridW, gridH, canvasW, canvasH)
	if !ok || x != 0 || y != 0 {
		t.Fatalf("center of tile (0,0) resolved to (%d,%d) ok=%t", x, y, ok)
	}
}

func TestPixelToTileInsideBounds(t *testing.T) {
	const gridW, gridH = 16, 12
	const canvasW, canvasH = 480, 360
	for px := 0.0; px < canvasW; px += 17 {
		for py := 0.0; py < canvasH; py += 13 {
			x, y, ok := PixelToTile(px, py, gridW, gridH, canvasW, canvasH)
			if !ok {
				t.Fatalf("pixel (%f,%f) inside canvas resolved to no tile", px, py)
			}
			if x < 0 || x >= gridW || y < 0 || y >= gridH {
				t.Fatalf("pixel (%f,%f) resolved out of bounds (%d,%d)", px, py, x, y)
			}
		}
	}
}

func TestPixelToTileOutside(t *testing.T) {
	cases := [][2]float64{
		{-1, 10}, {10, -1}, {640, 10}, {10, 640}, {-50, -50}, {1e6, 1e6},
	}
	for _, c := range cases {
		if _, _, ok := PixelToTile(c[0], c[1], 16, 16, 640, 640); ok {
			t.Fatalf("pixel (%f,%f) outside canvas resolved to a tile", c[0], c[1])
		}
	}
}

func TestPixelToTileNonSquareYBound(t *testing.T) {
	// 8 wide, 4 tall: a y just below the canvas bottom must still resolve,
	// and a y past it must not, regardless of the wider x extent.
	const gridW, gridH = 8, 4
	const canvasW, canvasH = 800, 200
	if _, y, ok := PixelToTile(10, 199, gridW, gridH, canvasW, canvasH); !ok || y != 3 {
		t.Fatalf("bottom row resolved to y=%d ok=%t", y, ok)
	}
	if _, _, ok := PixelToTile(10, 250, gridW, gridH, canvasW, canvasH); ok {
		t.Fatalf("y past canvas bottom resolved to a tile")
	}
}

func TestPixelToTileNaNIsNoTile(t *testing.T) {
	if _, _, ok := PixelToTile(math.NaN(), math.NaN(), 16, 16, 640, 640); ok {
		t.Fatalf("NaN position resolved to a tile")
	}
}

func TestDisplayToBacking(t *testing.T) {
	px, py := DisplayToBacking(100, 50, 400, 200, 800, 400)
	if px != 200 || py != 100 {
		t.Fatalf("scaled position = (%f,%f), want (200,100)", px, py)
	}
	px, py = DisplayToBacking(100, 50, 400, 400, 400, 400)
	if px != 100 || py != 50 {
		t.Fatalf("identity scaling moved the position: (%f,%f)", px, py)
	}
}
