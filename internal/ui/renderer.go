package ui

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/ingyamilmolinar/tonegrid/core/model"
	game_log "github.com/ingyamilmolinar/tonegrid/internal/log"
)

const (
	burstCount  = 24  // particles requested per playhead hit
	burstSpread = 2.5 // velocity range, scaled by device pixel ratio
)

// Renderer draws one frame of the grid: tile sprites, playhead, hover
// highlight, heat-driven ambient glow and (in debug mode) the raw particle
// layer. It owns the particle pool and the sprite cache; the pointer
// position arrives as an explicit read-only snapshot each frame.
type Renderer struct {
	pool    *Pool
	sprites *SpriteCache
	heat    []float64

	lastPlayhead int
	hasView      bool

	// DPR is the backing-store to display scale, injected by the host;
	// it sizes particle bursts, never polled from ambient state.
	DPR   float64
	Debug bool

	op     ebiten.DrawImageOptions
	logger *game_log.Logger
}

// NewRenderer sizes the particle pool from the initial canvas dimensions.
// The pool capacity stays fixed afterwards even if the canvas resizes.
func NewRenderer(canvasW, canvasH int, dpr float64, logger *game_log.Logger) *Renderer {
	return &Renderer{
		pool:         NewPool(canvasW, canvasH),
		sprites:      &SpriteCache{},
		lastPlayhead: -1,
		DPR:          dpr,
		logger:       logger,
	}
}

// Pool exposes the particle arena for sampling and tests.
func (r *Renderer) Pool() *Pool { return r.pool }

// Frame advances and draws one frame. dst is the backing store; its bounds
// define canvas pixel space. pointer is the tracker's snapshot for hover
// resolution. The sequence is fixed: advance particles, clear, heat pass,
// sprite cache, hover, tile loop, debug layer, record playhead.
func (r *Renderer) Frame(dst *ebiten.Image, grid *model.Grid, pointer PointerState) {
	r.pool.Advance()

	dst.Fill(colBG)
	b := dst.Bounds()
	canvasW, canvasH := b.Dx(), b.Dy()

	r.heat = r.pool.AccumulateHeat(r.heat, grid.Width, grid.Height, canvasW, canvasH)

	view := viewSnapshot{GridW: grid.Width, GridH: grid.Height, CanvasW: canvasW, CanvasH: canvasH}
	hadView := r.hasView
	if r.sprites.Ensure(view) {
		r.logger.Debugf("[RENDER] Sprite atlas rebuilt: %+v gen=%d", view, r.sprites.Generation())
	}
	r.hasView = true

	// no tile hovers on the very first frame; pointer effects need an
	// established view
	hoverX, hoverY, hovered := 0, 0, false
	if hadView && !pointer.Absent() {
		hoverX, hoverY, hovered = PixelToTile(pointer.X, pointer.Y, grid.Width, grid.Height, canvasW, canvasH)
	}

	dx, dy := r.sprites.TileSize()
	playhead := grid.PlayheadX()
	r.firePlayheadBursts(grid, playhead, dx, dy)
	for x := 0; x < grid.Width; x++ {
		for y := 0; y < grid.Height; y++ {
			tile := grid.Tile(x, y)
			lit := !tile.IsEmpty()

			r.op.ColorScale.Reset()
			if tile.HasNote(model.ChannelAccent) {
				r.op.ColorScale.Scale(accentTintR, accentTintG, accentTintB, 1)
			}

			id := spriteOff
			switch {
			case lit && x == playhead:
				id = spriteOnPlayhead
				r.op.ColorScale.ScaleAlpha(alphaPlayhead)
			case lit:
				id = spriteOn
				r.op.ColorScale.ScaleAlpha(alphaLit)
			case hovered && x == hoverX && y == hoverY:
				r.op.ColorScale.ScaleAlpha(alphaHover)
			default:
				r.op.ColorScale.ScaleAlpha(r.ambientAlpha(model.TileIndex(x, y, grid.Height)))
			}
			r.sprites.Draw(dst, id, float64(x)*dx, float64(y)*dy, &r.op)
		}
	}

	if r.Debug {
		r.drawParticles(dst)
	}

	r.lastPlayhead = playhead
}

// firePlayheadBursts spawns one burst per lit tile of the playhead column,
// but only on the frame the playhead arrives there. Burst centers are tile
// midpoints; spread scales with the device pixel ratio.
func (r *Renderer) firePlayheadBursts(grid *model.Grid, playhead int, dx, dy float64) {
	if playhead < 0 || playhead == r.lastPlayhead {
		return
	}
	for y := 0; y < grid.Height; y++ {
		if !grid.GetTileValue(playhead, y) {
			continue
		}
		cx := (float64(playhead) + 0.5) * dx
		cy := (float64(y) + 0.5) * dy
		n := r.pool.CreateBurst(cx, cy, burstSpread*r.DPR, burstCount)
		r.logger.Debugf("[RENDER] Burst at tile (%d,%d): %d/%d spawned", playhead, y, n, burstCount)
	}
}

// ambientAlpha derives an unlit tile's glow from its heat accumulator:
// floor-biased, clamped into a small brightness range.
func (r *Renderer) ambientAlpha(idx int) float32 {
	a := alphaAmbientFloor + heatGain*r.heat[idx]
	if a > alphaAmbientCeil {
		a = alphaAmbientCeil
	}
	return float32(a)
}

// drawParticles renders every live slot as a small filled marker, ignoring
// tile opacity rules.
func (r *Renderer) drawParticles(dst *ebiten.Image) {
	for _, s := range r.pool.Slots() {
		if s.Life <= 0 {
			continue
		}
		x, y := int(s.X), int(s.Y)
		drawRect(dst, image.Rect(x-1, y-1, x+1, y+1), colParticle, true)
	}
}
