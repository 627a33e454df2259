package ui

import (
	"math/rand"

	"github.com/ingyamilmolinar/tonegrid/core/model"
)

const (
	// ParticleLifetime is the life assigned to a freshly spawned particle,
	// decremented by one each frame.
	ParticleLifetime = 40.0

	particleDrag = 0.94 // per-frame velocity decay

	// One pool slot per this many canvas pixels, clamped below. The pool is
	// sized once from the initial canvas and never grows, even across
	// resizes: a fixed resource budget, not an oversight.
	poolPixelsPerSlot = 600
	poolMinSlots      = 64
)

// Particle is one slot of the pool. A slot with Life <= 0 is dead and
// eligible for reuse; position is unconstrained, off-canvas particles are
// simply not sampled.
type Particle struct {
	X, Y   float64
	VX, VY float64
	Life   float64
}

// Pool is a fixed-capacity particle arena. Slots are reused in place; no
// particle is ever allocated or freed after construction, which bounds
// per-frame cost to O(capacity).
type Pool struct {
	slots []Particle
}

func NewPool(canvasW, canvasH int) *Pool {
	n := canvasW * canvasH / poolPixelsPerSlot
	if n < poolMinSlots {
		n = poolMinSlots
	}
	return &Pool{slots: make([]Particle, n)}
}

func (p *Pool) Cap() int { return len(p.slots) }

// Live counts the slots currently holding a live particle.
func (p *Pool) Live() int {
	n := 0
	for i := range p.slots {
		if p.slots[i].Life > 0 {
			n++
		}
	}
	return n
}

// Slots exposes the arena for read-only sampling (heat map, debug layer).
func (p *Pool) Slots() []Particle { return p.slots }

// Advance integrates one frame of motion for every live slot.
func (p *Pool) Advance() {
	for i := range p.slots {
		s := &p.slots[i]
		if s.Life <= 0 {
			continue
		}
		s.X += s.VX
		s.Y += s.VY
		s.VX *= particleDrag
		s.VY *= particleDrag
		s.Life--
	}
}

// CreateBurst respawns up to count dead slots at (cx,cy) with random
// velocities within ±spread on each axis. When fewer dead slots are
// available the remainder of the request is dropped; the pool never grows.
// Returns the number actually spawned.
func (p *Pool) CreateBurst(cx, cy, spread float64, count int) int {
	spawned := 0
	for i := range p.slots {
		if spawned >= count {
			break
		}
		s := &p.slots[i]
		if s.Life > 0 {
			continue
		}
		s.X = cx
		s.Y = cy
		s.VX = (rand.Float64()*2 - 1) * spread
		s.VY = (rand.Float64()*2 - 1) * spread
		s.Life = ParticleLifetime
		spawned++
	}
	return spawned
}

// AccumulateHeat maps every live particle to its tile and adds its remaining
// life to that tile's accumulator. The heat slice is reused across frames to
// avoid per-frame allocation; the returned slice has gridW*gridH entries.
// O(capacity), independent of grid size.
func (p *Pool) AccumulateHeat(heat []float64, gridW, gridH, canvasW, canvasH int) []float64 {
	n := gridW * gridH
	if cap(heat) < n {
		heat = make([]float64, n)
	}
	heat = heat[:n]
	for i := range heat {
		heat[i] = 0
	}
	for i := range p.slots {
		s := &p.slots[i]
		if s.Life <= 0 {
			continue
		}
		tx, ty, ok := PixelToTile(s.X, s.Y, gridW, gridH, canvasW, canvasH)
		if !ok {
			continue
		}
		heat[model.TileIndex(tx, ty, gridH)] += s.Life
	}
	return heat
}
