package beat

import (
	"time"

	game_log "github.com/ingyamilmolinar/tonegrid/internal/log"
)

const stepsPerBeat = 4 // sixteenth-note columns

// Transport advances the playhead across grid columns on wall-clock time and
// fires OnStep once per column entered. Tick is called once per frame by the
// game loop; missed columns (a slow frame) are caught up in order.
type Transport struct {
	BPM    int
	Steps  int // number of columns in the loop
	OnStep func(x int)

	now      func() time.Time
	start    time.Time
	running  bool
	lastStep int // absolute step index already fired, -1 before the first

	logger *game_log.Logger
}

func NewTransport(bpm, steps int, logger *game_log.Logger) *Transport {
	return &Transport{
		BPM:      bpm,
		Steps:    steps,
		now:      time.Now,
		lastStep: -1,
		logger:   logger,
	}
}

func (t *Transport) stepDuration() time.Duration {
	return time.Minute / time.Duration(t.BPM*stepsPerBeat)
}

func (t *Transport) Start() {
	if t.running {
		return
	}
	t.running = true
	t.start = t.now()
	t.lastStep = -1
	t.logger.Infof("[BEAT] Transport started: bpm=%d steps=%d", t.BPM, t.Steps)
}

func (t *Transport) Stop() {
	if !t.running {
		return
	}
	t.running = false
	t.lastStep = -1
	t.logger.Infof("[BEAT] Transport stopped")
}

func (t *Transport) Running() bool { return t.running }

// PlayheadX returns the column currently sounding, or -1 when stopped.
func (t *Transport) PlayheadX() int {
	if !t.running || t.BPM <= 0 || t.Steps <= 0 {
		return -1
	}
	elapsed := t.now().Sub(t.start)
	return int(elapsed/t.stepDuration()) % t.Steps
}

// Tick fires OnStep for every column entered since the previous call. The
// first Tick after Start fires column 0 immediately.
func (t *Transport) Tick() {
	if !t.running || t.BPM <= 0 || t.Steps <= 0 || t.OnStep == nil {
		return
	}
	abs := int(t.now().Sub(t.start) / t.stepDuration())
	for s := t.lastStep + 1; s <= abs; s++ {
		t.OnStep(s % t.Steps)
	}
	t.lastStep = abs
}
