package audio

import (
	"math"
	"testing"
)

func TestNoteFreqBottomRowIsBase(t *testing.T) {
	const rows = 16
	if got := NoteFreq(rows-1, rows); got != baseFreq {
		t.Fatalf("bottom row freq = %f, want %f", got, baseFreq)
	}
}

func TestNoteFreqDescendsTopToBottom(t *testing.T) {
	const rows = 16
	prev := math.Inf(1)
	for row := 0; row < rows; row++ {
		f := NoteFreq(row, rows)
		if f >= prev {
			t.Fatalf("row %d freq %f not below row above (%f)", row, f, prev)
		}
		prev = f
	}
}

func TestNoteFreqOctaveEveryFiveDegrees(t *testing.T) {
	const rows = 16
	low := NoteFreq(rows-1, rows)
	oct := NoteFreq(rows-1-len(pentatonic), rows)
	if math.Abs(oct-2*low) > 1e-9 {
		t.Fatalf("five degrees up = %f, want octave %f", oct, 2*low)
	}
}
