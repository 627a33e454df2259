package ui

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	game_log "github.com/ingyamilmolinar/tonegrid/internal/log"
)

// PointerState is the last-known pointer position in backing-store pixel
// space. X/Y are NaN while no pointer is over the interactive surface.
type PointerState struct {
	X, Y     float64
	Dragging bool
}

// Absent reports whether no pointer is currently tracked.
func (p PointerState) Absent() bool { return math.IsNaN(p.X) || math.IsNaN(p.Y) }

// Tracker owns the Pointer State and raises press/move/release signals with
// tile-resolved payloads. Coordinates always resolve through the most recent
// view dimensions pushed by the game shell via SetView.
type Tracker struct {
	state    PointerState
	handlers []func(Signal)

	gridW, gridH       int
	canvasW, canvasH   int
	displayW, displayH float64

	prevDown     bool
	touchActive  bool
	touchScratch []ebiten.TouchID
	disposed     bool

	logger *game_log.Logger
}

func NewTracker(logger *game_log.Logger) *Tracker {
	return &Tracker{
		state:  PointerState{X: math.NaN(), Y: math.NaN()},
		logger: logger,
	}
}

// SetView records the grid, backing-store and display dimensions used for
// all coordinate resolution until the next call.
func (t *Tracker) SetView(gridW, gridH, canvasW, canvasH int, displayW, displayH float64) {
	t.gridW, t.gridH = gridW, gridH
	t.canvasW, t.canvasH = canvasW, canvasH
	t.displayW, t.displayH = displayW, displayH
}

// Pointer returns a read-only snapshot for the renderer's hover pass.
func (t *Tracker) Pointer() PointerState { return t.state }

// Subscribe registers a signal handler and returns its removal function.
// Removal after Dispose is a no-op.
func (t *Tracker) Subscribe(fn func(Signal)) func() {
	t.handlers = append(t.handlers, fn)
	idx := len(t.handlers) - 1
	return func() {
		if idx < len(t.handlers) {
			t.handlers[idx] = nil
		}
	}
}

// PixelCoordsToTileCoords resolves a backing-store pixel position against
// the last view seen. Stateless apart from the view dimensions; usable by
// callers for custom hit testing.
func (t *Tracker) PixelCoordsToTileCoords(px, py float64) (x, y int, ok bool) {
	if t.gridW == 0 || t.gridH == 0 {
		return 0, 0, false
	}
	return PixelToTile(px, py, t.gridW, t.gridH, t.canvasW, t.canvasH)
}

func (t *Tracker) emit(kind SignalKind, px, py float64) {
	sig := Signal{Kind: kind}
	if x, y, ok := t.PixelCoordsToTileCoords(px, py); ok {
		sig.TileX, sig.TileY = x, y
		sig.OnGrid = true
	}
	t.logger.Debugf("[TRACKER] %s tile=(%d,%d) onGrid=%t", kind, sig.TileX, sig.TileY, sig.OnGrid)
	for _, fn := range t.handlers {
		if fn != nil {
			fn(sig)
		}
	}
}

// setAbsent clears the tracked position. Dragging is untouched: a gesture
// ends on button-up or touch-end, never on pointer-leave.
func (t *Tracker) setAbsent() {
	t.state.X, t.state.Y = math.NaN(), math.NaN()
}

// Update reads the input state for this frame, refreshes the Pointer State
// and raises any discrete signals. Called once per tick by the game shell.
func (t *Tracker) Update() {
	if t.disposed {
		return
	}

	t.touchScratch = appendTouchIDs(t.touchScratch[:0])
	if len(t.touchScratch) > 0 {
		t.updateTouches(t.touchScratch)
		return
	}
	if t.touchActive {
		// all touches lifted this frame
		t.touchActive = false
		t.prevDown = false
		t.state.Dragging = false
		t.emit(SignalRelease, t.state.X, t.state.Y)
		t.setAbsent()
		return
	}

	mx, my := cursorPosition()
	px, py := DisplayToBacking(float64(mx), float64(my), t.displayW, t.displayH, t.canvasW, t.canvasH)
	inside := float64(mx) >= 0 && float64(mx) < t.displayW && float64(my) >= 0 && float64(my) < t.displayH

	down := isMouseButtonPressed(ebiten.MouseButtonLeft)
	switch {
	case down && !t.prevDown && inside:
		t.state = PointerState{X: px, Y: py, Dragging: true}
		t.emit(SignalPress, px, py)
	case down && t.prevDown && t.state.Dragging:
		if inside {
			t.state.X, t.state.Y = px, py
		}
		t.emit(SignalMove, px, py)
	case !down && t.prevDown && t.state.Dragging:
		t.state.Dragging = false
		if inside {
			t.state.X, t.state.Y = px, py
		}
		t.emit(SignalRelease, px, py)
	}
	if !inside {
		// pointer left the surface: position is absent, not merely stale
		t.setAbsent()
	} else if !down {
		t.state.X, t.state.Y = px, py
	}
	t.prevDown = down
}

// updateTouches treats every active touch as an independent move, re-mapped
// to its own tile; the first touch-down starts the drag gesture. No
// multi-touch gesture disambiguation happens here.
func (t *Tracker) updateTouches(ids []ebiten.TouchID) {
	t.touchActive = true
	first := true
	for _, id := range ids {
		tx, ty := touchPosition(id)
		px, py := DisplayToBacking(float64(tx), float64(ty), t.displayW, t.displayH, t.canvasW, t.canvasH)
		if first {
			t.state = PointerState{X: px, Y: py, Dragging: true}
			first = false
			if !t.prevDown {
				t.emit(SignalPress, px, py)
				continue
			}
		}
		t.emit(SignalMove, px, py)
	}
	t.prevDown = true
}

// Dispose drops every handler registration. Safe to call more than once;
// after disposal Update is a no-op.
func (t *Tracker) Dispose() {
	if t.disposed {
		return
	}
	t.disposed = true
	t.handlers = nil
	t.state = PointerState{X: math.NaN(), Y: math.NaN()}
	t.logger.Infof("[TRACKER] Disposed")
}
