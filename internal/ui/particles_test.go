package ui

import (
	"testing"

	"github.com/ingyamilmolinar/tonegrid/core/model"
)

func TestPoolCapacityIsInvariant(t *testing.T) {
	p := NewPool(640, 640)
	want := p.Cap()
	for i := 0; i < 100; i++ {
		p.CreateBurst(10, 10, 2, 50)
		p.Advance()
	}
	if p.Cap() != want {
		t.Fatalf("capacity changed: %d -> %d", want, p.Cap())
	}
}

func TestPoolMinimumCapacity(t *testing.T) {
	p := NewPool(10, 10)
	if p.Cap() != poolMinSlots {
		t.Fatalf("tiny canvas pool cap = %d, want %d", p.Cap(), poolMinSlots)
	}
}

func TestCreateBurstSpawnsExactly(t *testing.T) {
	p := NewPool(640, 640)
	n := p.CreateBurst(32, 48, 2, 7)
	if n != 7 || p.Live() != 7 {
		t.Fatalf("spawned=%d live=%d, want 7", n, p.Live())
	}
	for i := range p.Slots() {
		s := &p.Slots()[i]
		if s.Life <= 0 {
			continue
		}
		if s.X != 32 || s.Y != 48 {
			t.Fatalf("live slot %d at (%f,%f), want (32,48)", i, s.X, s.Y)
		}
		if s.Life != ParticleLifetime {
			t.Fatalf("live slot %d life=%f, want %f", i, s.Life, ParticleLifetime)
		}
		if s.VX < -2 || s.VX > 2 || s.VY < -2 || s.VY > 2 {
			t.Fatalf("live slot %d velocity (%f,%f) outside ±2", i, s.VX, s.VY)
		}
	}
}

func TestCreateBurstTruncatesWhenFull(t *testing.T) {
	p := NewPool(640, 640)
	if n := p.CreateBurst(0, 0, 1, p.Cap()); n != p.Cap() {
		t.Fatalf("filling burst spawned %d, want %d", n, p.Cap())
	}
	if n := p.CreateBurst(0, 0, 1, 10); n != 0 {
		t.Fatalf("burst into a full pool spawned %d, want 0", n)
	}
	if p.Live() != p.Cap() {
		t.Fatalf("live=%d, want %d", p.Live(), p.Cap())
	}
}

func TestAdvanceDecrementsLifeUntilDead(t *testing.T) {
	p := NewPool(640, 640)
	p.CreateBurst(100, 100, 0, 1)
	prev := ParticleLifetime + 1.0
	steps := 0
	for p.Live() > 0 {
		life := -1.0
		for i := range p.Slots() {
			if p.Slots()[i].Life > 0 {
				life = p.Slots()[i].Life
			}
		}
		if life >= prev {
			t.Fatalf("life %f did not decrease from %f", life, prev)
		}
		prev = life
		p.Advance()
		steps++
		if steps > int(ParticleLifetime)+1 {
			t.Fatalf("particle outlived its lifetime: %d steps", steps)
		}
	}
}

func TestAdvanceAppliesDrag(t *testing.T) {
	p := NewPool(640, 640)
	p.CreateBurst(100, 100, 3, 1)
	var before Particle
	for i := range p.Slots() {
		if p.Slots()[i].Life > 0 {
			before = p.Slots()[i]
		}
	}
	p.Advance()
	for i := range p.Slots() {
		s := p.Slots()[i]
		if s.Life <= 0 {
			continue
		}
		if s.X != before.X+before.VX || s.Y != before.Y+before.VY {
			t.Fatalf("position not integrated: %+v from %+v", s, before)
		}
		if s.VX != before.VX*particleDrag || s.VY != before.VY*particleDrag {
			t.Fatalf("drag not applied: %+v from %+v", s, before)
		}
	}
}

func TestAccumulateHeatPerTile(t *testing.T) {
	const gridW, gridH = 16, 16
	const canvasW, canvasH = 640, 640
	p := NewPool(canvasW, canvasH)
	// three particles parked at the center of tile (4,2), zero velocity
	p.CreateBurst(4.5*40, 2.5*40, 0, 3)

	heat := p.AccumulateHeat(nil, gridW, gridH, canvasW, canvasH)
	if len(heat) != gridW*gridH {
		t.Fatalf("heat len=%d, want %d", len(heat), gridW*gridH)
	}
	idx := model.TileIndex(4, 2, gridH)
	if want := 3 * ParticleLifetime; heat[idx] != want {
		t.Fatalf("heat[%d]=%f, want %f", idx, heat[idx], want)
	}
	for i, h := range heat {
		if i != idx && h != 0 {
			t.Fatalf("heat leaked to tile %d: %f", i, h)
		}
	}

	// dead particles stop contributing
	for i := 0; i <= int(ParticleLifetime); i++ {
		p.Advance()
	}
	heat = p.AccumulateHeat(heat, gridW, gridH, canvasW, canvasH)
	if heat[idx] != 0 {
		t.Fatalf("dead particles still heat tile: %f", heat[idx])
	}
}

func TestAccumulateHeatIgnoresOffCanvas(t *testing.T) {
	p := NewPool(640, 640)
	p.CreateBurst(-50, -50, 0, 5)
	heat := p.AccumulateHeat(nil, 16, 16, 640, 640)
	for i, h := range heat {
		if h != 0 {
			t.Fatalf("off-canvas particle heated tile %d: %f", i, h)
		}
	}
}
