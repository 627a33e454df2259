package ui

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/ingyamilmolinar/tonegrid/core/beat"
	"github.com/ingyamilmolinar/tonegrid/core/model"
	"github.com/ingyamilmolinar/tonegrid/internal/audio"
	"github.com/ingyamilmolinar/tonegrid/internal/config"
	game_log "github.com/ingyamilmolinar/tonegrid/internal/log"
)

// triggerNote plays a row's note. Overridden in tests.
var (
	triggerNote = audio.Trigger
	audioNow    = audio.Now
)

// Game is the thin application shell: it owns the grid, transport, renderer
// and tracker, and wires tracker signals to grid mutation and transport
// steps to the instrument layer.
type Game struct {
	grid      *model.Grid
	renderer  *Renderer
	tracker   *Tracker
	transport *beat.Transport
	logger    *game_log.Logger

	winW, winH int
	dpr        float64
	debugHUD   bool

	// paint gesture: a press picks the value to paint, dragging extends it
	painting     bool
	paintOn      bool
	paintChannel int

	unsubscribe func()
	disposed    bool
}

func New(cfg config.Config, logger *game_log.Logger) *Game {
	g := &Game{
		winW:     cfg.WindowWidth,
		winH:     cfg.WindowHeight,
		dpr:      cfg.DevicePixelRatio,
		debugHUD: cfg.DebugParticles,
		logger:   logger,
	}
	g.grid = model.NewGrid(cfg.GridWidth, cfg.GridHeight, logger)
	g.transport = beat.NewTransport(cfg.BPM, cfg.GridWidth, logger)
	g.transport.OnStep = g.onStep
	g.grid.SetTransport(g.transport.PlayheadX)

	canvasW := int(float64(cfg.WindowWidth) * g.dpr)
	canvasH := int(float64(cfg.WindowHeight) * g.dpr)
	g.renderer = NewRenderer(canvasW, canvasH, g.dpr, logger)
	g.renderer.Debug = cfg.DebugParticles

	g.tracker = NewTracker(logger)
	g.unsubscribe = g.tracker.Subscribe(g.onSignal)

	g.transport.Start()
	return g
}

// Grid exposes the grid state for persistence and tests.
func (g *Game) Grid() *model.Grid { return g.grid }

// LoadShareCode replaces the grid pattern with a decoded share code.
func (g *Game) LoadShareCode(code string) error {
	lit, err := model.DecodeShareCode(code, g.grid.Width, g.grid.Height)
	if err != nil {
		return err
	}
	for x := 0; x < g.grid.Width; x++ {
		for y := 0; y < g.grid.Height; y++ {
			g.grid.ClearTile(x, y)
		}
	}
	for _, c := range lit {
		g.grid.AddNote(c[0], c[1], model.ChannelBase, noteHandleFor(c[1]))
	}
	g.logger.Infof("[GAME] Loaded share code: %d lit tiles", len(lit))
	return nil
}

// noteHandleFor derives the handle stored on a tile from its row; the handle
// only needs to be non-zero and stable for the row.
func noteHandleFor(y int) model.NoteHandle { return model.NoteHandle(y + 1) }

func (g *Game) onSignal(sig Signal) {
	switch sig.Kind {
	case SignalPress:
		if !sig.OnGrid {
			return
		}
		ch := model.ChannelBase
		if isKeyPressed(ebiten.KeyShiftLeft) || isKeyPressed(ebiten.KeyShiftRight) {
			ch = model.ChannelAccent
		}
		g.painting = true
		g.paintChannel = ch
		if g.grid.GetTileValue(sig.TileX, sig.TileY) {
			g.grid.ClearTile(sig.TileX, sig.TileY)
			g.paintOn = false
		} else {
			g.grid.AddNote(sig.TileX, sig.TileY, ch, noteHandleFor(sig.TileY))
			g.paintOn = true
		}
	case SignalMove:
		if !sig.OnGrid || !g.painting {
			return
		}
		lit := g.grid.GetTileValue(sig.TileX, sig.TileY)
		if g.paintOn && !lit {
			g.grid.AddNote(sig.TileX, sig.TileY, g.paintChannel, noteHandleFor(sig.TileY))
		} else if !g.paintOn && lit {
			g.grid.ClearTile(sig.TileX, sig.TileY)
		}
	case SignalRelease:
		g.painting = false
	}
}

// onStep sounds every lit tile of the column the playhead just entered.
func (g *Game) onStep(x int) {
	when := audioNow()
	for y := 0; y < g.grid.Height; y++ {
		tile := g.grid.Tile(x, y)
		if tile.IsEmpty() {
			continue
		}
		triggerNote(y, g.grid.Height, tile.HasNote(model.ChannelAccent), when)
	}
}

func (g *Game) Update() error {
	if g.disposed {
		return nil
	}
	canvasW := int(float64(g.winW) * g.dpr)
	canvasH := int(float64(g.winH) * g.dpr)
	g.tracker.SetView(g.grid.Width, g.grid.Height, canvasW, canvasH, float64(g.winW), float64(g.winH))
	g.tracker.Update()
	g.transport.Tick()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.renderer.Frame(screen, g.grid, g.tracker.Pointer())
	if g.debugHUD {
		msg := fmt.Sprintf("bpm=%d playhead=%d particles=%d/%d",
			g.transport.BPM, g.grid.PlayheadX(), g.renderer.Pool().Live(), g.renderer.Pool().Cap())
		ebitenutil.DebugPrintAt(screen, msg, 4, 4)
	}
}

func (g *Game) Layout(outsideW, outsideH int) (int, int) {
	g.winW, g.winH = outsideW, outsideH
	return int(float64(outsideW) * g.dpr), int(float64(outsideH) * g.dpr)
}

// Dispose tears down listener registrations and stops playback. Safe to
// call more than once.
func (g *Game) Dispose() {
	if g.disposed {
		return
	}
	g.disposed = true
	g.unsubscribe()
	g.tracker.Dispose()
	g.transport.Stop()
	g.logger.Infof("[GAME] Disposed")
}
