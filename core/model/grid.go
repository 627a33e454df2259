package model

import (
	game_log "github.com/ingyamilmolinar/tonegrid/internal/log"
)

// Instrument channels per tile. Channel 0 is the base voice; channel 1 is the
// accent voice, rendered with a tint by the UI.
const (
	ChannelBase = iota
	ChannelAccent
	NumChannels
)

// NoteHandle identifies a note registered with the instrument layer.
// The zero value means "no note".
type NoteHandle int

const NoNote NoteHandle = 0

// Tile is one cell of the grid. It is owned by the Grid and mutated only
// through AddNote/RemoveNote; callers hold references, never copies.
type Tile struct {
	notes [NumChannels]NoteHandle
}

func (t *Tile) AddNote(channel int, h NoteHandle) { t.notes[channel] = h }
func (t *Tile) RemoveNote(channel int)            { t.notes[channel] = NoNote }

func (t *Tile) HasNote(channel int) bool { return t.notes[channel] != NoNote }

// Note returns the handle stored for channel, NoNote when unset.
func (t *Tile) Note(channel int) NoteHandle { return t.notes[channel] }

func (t *Tile) IsEmpty() bool {
	for _, n := range t.notes {
		if n != NoNote {
			return false
		}
	}
	return true
}

// TileIndex maps tile coordinates to an index into a column-major tile array.
// Callers must pass the height of the array the index addresses; mixing
// heights across calls is caller error and is not checked here.
func TileIndex(x, y, height int) int { return x*height + y }

// TileCoord is the inverse of TileIndex on 0 <= x < width, 0 <= y < height.
func TileCoord(index, height int) (x, y int) { return index / height, index % height }

// Grid owns the tile state of the sequencer. Width and Height are fixed for
// the lifetime of the grid; Data is column-major (see TileIndex). The
// playhead column is owned by the transport and read through an injected
// callback.
type Grid struct {
	Width  int
	Height int
	Data   []*Tile

	playhead func() int
	logger   *game_log.Logger
}

func NewGrid(width, height int, logger *game_log.Logger) *Grid {
	g := &Grid{
		Width:  width,
		Height: height,
		Data:   make([]*Tile, width*height),
		logger: logger,
	}
	for i := range g.Data {
		g.Data[i] = &Tile{}
	}
	return g
}

// SetTransport injects the playhead source. Until set, PlayheadX reports -1
// (no column sounding).
func (g *Grid) SetTransport(playhead func() int) { g.playhead = playhead }

func (g *Grid) PlayheadX() int {
	if g.playhead == nil {
		return -1
	}
	return g.playhead()
}

// Tile returns the tile at (x,y). Out-of-range coordinates are caller error.
func (g *Grid) Tile(x, y int) *Tile { return g.Data[TileIndex(x, y, g.Height)] }

// GetTileValue reports whether any channel of the tile holds a note.
func (g *Grid) GetTileValue(x, y int) bool { return !g.Tile(x, y).IsEmpty() }

func (g *Grid) AddNote(x, y, channel int, h NoteHandle) {
	g.Tile(x, y).AddNote(channel, h)
	g.logger.Debugf("[GRID] Added note: (%d,%d) ch=%d handle=%d", x, y, channel, h)
}

func (g *Grid) RemoveNote(x, y, channel int) {
	g.Tile(x, y).RemoveNote(channel)
	g.logger.Debugf("[GRID] Removed note: (%d,%d) ch=%d", x, y, channel)
}

// ClearTile removes the notes on every channel of (x,y).
func (g *Grid) ClearTile(x, y int) {
	for ch := 0; ch < NumChannels; ch++ {
		g.Tile(x, y).RemoveNote(ch)
	}
	g.logger.Debugf("[GRID] Cleared tile: (%d,%d)", x, y)
}
