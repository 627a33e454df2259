package audio

import "math"

// The grid rows map onto a major pentatonic scale so any combination of lit
// tiles stays consonant. Row 0 is the top of the grid and the highest note.
var pentatonic = [...]int{0, 2, 4, 7, 9}

const baseFreq = 220.0 // bottom row, A3

// NoteFreq returns the frequency in Hz for a grid row out of rows total.
func NoteFreq(row, rows int) float64 {
	degree := rows - 1 - row
	semitones := degree/len(pentatonic)*12 + pentatonic[degree%len(pentatonic)]
	return baseFreq * math.Pow(2, float64(semitones)/12)
}
