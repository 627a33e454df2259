package ui

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

type spriteID int

const (
	spriteOff spriteID = iota
	spriteOn
	spriteOnPlayhead
	spriteCount
)

// viewSnapshot records the dimensions the sprite atlas was built for. It is
// an immutable value replaced wholesale and compared by field equality,
// never patched in place.
type viewSnapshot struct {
	GridW, GridH     int
	CanvasW, CanvasH int
}

// SpriteCache holds the prebuilt tile sprites for the current view. The
// atlas is rebuilt only when a dimension changes; every other frame reuses
// it verbatim, which is the dominant cost saver of the render loop.
type SpriteCache struct {
	view       viewSnapshot
	built      bool
	atlas      [spriteCount]*ebiten.Image
	generation int
}

// buildAtlas renders the sprite variants for the given tile size. Overridden
// in tests to avoid touching the GPU.
var buildAtlas = func(sc *SpriteCache, tileW, tileH int) {
	pad := tileW / 8
	if pad < 1 {
		pad = 1
	}
	inner := image.Rect(pad, pad, tileW-pad, tileH-pad)

	variant := func(fill, border color.Color) *ebiten.Image {
		img := ebiten.NewImage(tileW, tileH)
		drawRect(img, inner, fill, true)
		drawRect(img, inner, border, false)
		return img
	}

	sc.atlas[spriteOff] = variant(colTileOff, colTileBorder)
	sc.atlas[spriteOn] = variant(colTileOn, colTileBorder)
	sc.atlas[spriteOnPlayhead] = variant(colTilePlayhead, colTileOn)
}

// Ensure rebuilds the atlas when view differs from the snapshot of the last
// build. Reports whether a rebuild happened.
func (sc *SpriteCache) Ensure(view viewSnapshot) bool {
	if sc.built && view == sc.view {
		return false
	}
	tileW := view.CanvasW / view.GridW
	tileH := view.CanvasH / view.GridH
	buildAtlas(sc, tileW, tileH)
	sc.view = view
	sc.built = true
	sc.generation++
	return true
}

func (sc *SpriteCache) Generation() int { return sc.generation }

// TileSize returns the per-tile pixel size of the current atlas.
func (sc *SpriteCache) TileSize() (w, h float64) {
	return float64(sc.view.CanvasW) / float64(sc.view.GridW),
		float64(sc.view.CanvasH) / float64(sc.view.GridH)
}

// Draw blits sprite id with its top-left corner at (x,y). Opacity and tint
// are whatever the caller set on op beforehand; the cache holds no drawing
// state of its own.
func (sc *SpriteCache) Draw(dst *ebiten.Image, id spriteID, x, y float64, op *ebiten.DrawImageOptions) {
	op.GeoM.Reset()
	op.GeoM.Translate(x, y)
	dst.DrawImage(sc.atlas[id], op)
}
