package model

import (
	"fmt"
	"math/big"
)

// ShareCode serializes the lit-tile pattern to a compact base-36 string.
// Each tile contributes one bit in column-major order; the leading marker bit
// preserves leading dark columns across the round trip. Note channels are not
// encoded: decoding a code yields lit positions, and the application re-binds
// notes to them.
func (g *Grid) ShareCode() string {
	n := new(big.Int)
	n.SetBit(n, g.Width*g.Height, 1) // marker
	for i, t := range g.Data {
		if !t.IsEmpty() {
			n.SetBit(n, i, 1)
		}
	}
	return n.Text(36)
}

// DecodeShareCode parses a share code for a width×height grid and returns the
// lit tile coordinates in column-major order.
func DecodeShareCode(code string, width, height int) ([][2]int, error) {
	n, ok := new(big.Int).SetString(code, 36)
	if !ok {
		return nil, fmt.Errorf("share: invalid code %q", code)
	}
	bits := width * height
	if n.BitLen() != bits+1 {
		return nil, fmt.Errorf("share: code is for %d tiles, want %d", n.BitLen()-1, bits)
	}
	var lit [][2]int
	for i := 0; i < bits; i++ {
		if n.Bit(i) == 1 {
			x, y := TileCoord(i, height)
			lit = append(lit, [2]int{x, y})
		}
	}
	return lit, nil
}
