//go:build !test

package audio

import (
	"math"
	"sync"
	"time"

	"github.com/ebitengine/oto/v3"
)

const sampleRate = 44100

var (
	ctx   *oto.Context
	once  sync.Once
	mix   *mixer
	start = time.Now()
)

func initContext() {
	c, ready, err := oto.NewContext(&oto.NewContextOptions{
		SampleRate:   sampleRate,
		ChannelCount: 1,
		Format:       oto.FormatSignedInt16LE,
	})
	if err != nil {
		// leave ctx nil; Trigger will no-op
		return
	}
	<-ready
	ctx = c
	mix = newMixer()
	p := ctx.NewPlayer(mix)
	p.Play()
}

// Now returns the audio clock in seconds since process start.
func Now() float64 { return time.Since(start).Seconds() }

// Trigger schedules a plucked note for the given grid row at an optional
// future time on the audio clock. Accent rows play louder with a slower
// decay. Without an audio device this is a silent no-op.
func Trigger(row, rows int, accent bool, when float64) {
	once.Do(initContext)
	if ctx == nil {
		return
	}
	_ = ctx.Resume()
	delay := 0
	if d := when - Now(); d > 0 {
		delay = int(d * sampleRate)
	}
	v := &voice{
		freq:  NoteFreq(row, rows),
		env:   1,
		gain:  0.18,
		decay: decayPerSample(0.35),
		delay: delay,
	}
	if accent {
		v.gain = 0.28
		v.decay = decayPerSample(0.6)
	}
	mix.add(v)
}

// decayPerSample converts a tail duration in seconds to a per-sample
// exponential envelope factor.
func decayPerSample(tail float64) float64 {
	return math.Pow(1e-4, 1/(tail*sampleRate))
}

/* ------------------------------------------------------------------
   voices & mixer
   ------------------------------------------------------------------ */

type voice struct {
	freq  float64
	phase float64
	env   float64
	gain  float64
	decay float64
	delay int // samples until onset
}

// sample returns the next sample and whether the voice is still live.
func (v *voice) sample() (float64, bool) {
	if v.delay > 0 {
		v.delay--
		return 0, true
	}
	s := math.Sin(v.phase) * v.env * v.gain
	v.phase += 2 * math.Pi * v.freq / sampleRate
	v.env *= v.decay
	return s, v.env > 1e-4
}

// mixer sums active voices into the oto player's pull stream.
type mixer struct {
	mu     sync.Mutex
	voices []*voice
}

func newMixer() *mixer { return &mixer{} }

func (m *mixer) add(v *voice) {
	m.mu.Lock()
	m.voices = append(m.voices, v)
	m.mu.Unlock()
}

func (m *mixer) Read(buf []byte) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := 0; i+1 < len(buf); i += 2 {
		var sum float64
		live := m.voices[:0]
		for _, v := range m.voices {
			s, ok := v.sample()
			sum += s
			if ok {
				live = append(live, v)
			}
		}
		m.voices = live
		if sum > 1 {
			sum = 1
		} else if sum < -1 {
			sum = -1
		}
		s := int16(sum * math.MaxInt16)
		buf[i] = byte(s)
		buf[i+1] = byte(s >> 8)
	}
	return len(buf) / 2 * 2, nil
}
