package camera

import "testing"

func TestNewDustFieldBoundedCount(t *testing.T) {
	small := NewDustField(800, 600, 1)
	if len(small.Particles()) != dustMinCount {
		t.Errorf("requested count below min should clamp to %d, got %d", dustMinCount, len(small.Particles()))
	}

	big := NewDustField(800, 600, 1000)
	if len(big.Particles()) != dustMaxCount {
		t.Errorf("requested count above max should clamp to %d, got %d", dustMaxCount, len(big.Particles()))
	}
}

func TestDustFieldWrapsOnScreen(t *testing.T) {
	d := NewDustField(100, 100, 20)
	for i := range d.particles {
		d.particles[i].X = -1
		d.particles[i].VX = 0
		d.particles[i].VY = 0
	}
	d.Update(0.016, 0, 0, 0, 100, 100)
	for _, p := range d.Particles() {
		if p.X < 0 || p.X > 100 {
			t.Fatalf("particle X %v should have wrapped into [0,100]", p.X)
		}
	}
}

func TestDustFieldAlphaBoostedByEnergy(t *testing.T) {
	d := NewDustField(400, 400, 20)
	base := d.particles[0].Alpha

	d.Update(0.016, 0, 0, 1.0, 400, 400)
	boosted := d.particles[0].Alpha
	if boosted <= base {
		t.Errorf("alpha should increase with energy: base=%v boosted=%v", base, boosted)
	}

	d.Update(0.016, 0, 0, 0, 400, 400)
	settled := d.particles[0].Alpha
	if settled != d.particles[0].BaseAlpha {
		t.Errorf("alpha should return to BaseAlpha when energy is 0, got %v want %v", settled, d.particles[0].BaseAlpha)
	}
}
