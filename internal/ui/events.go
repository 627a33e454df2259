package ui

// SignalKind enumerates the interaction signals raised by the Tracker. The
// set is closed on purpose: no string-keyed dispatch, every consumer can
// switch exhaustively.
type SignalKind int

const (
	SignalPress SignalKind = iota
	SignalMove
	SignalRelease
	// SignalClick is defined for wiring layers that synthesize clicks from a
	// press/release pair; the Tracker itself never raises it.
	SignalClick
)

func (k SignalKind) String() string {
	switch k {
	case SignalPress:
		return "press"
	case SignalMove:
		return "move"
	case SignalRelease:
		return "release"
	case SignalClick:
		return "click"
	default:
		return "unknown"
	}
}

// Signal is one discrete interaction event. OnGrid is false when the pointer
// did not resolve to a tile (e.g. a release off the canvas); TileX/TileY are
// meaningless in that case.
type Signal struct {
	Kind   SignalKind
	TileX  int
	TileY  int
	OnGrid bool
}
