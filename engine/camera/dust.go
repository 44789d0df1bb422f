package camera

import "math/rand"

// dustSeed fixes the initial scatter so the field looks the same at
// startup across runs, like the teacher's starfield seeding.
const dustSeed = 7

// DustParticle is one drifting background particle (spec.md §4.5: "a
// pool of 16-42 drifting particles whose alpha is boosted by current
// energy and whose velocity is nudged by cameraMotion").
type DustParticle struct {
	X, Y      float64
	VX, VY    float64
	BaseAlpha float64
	Alpha     float64
}

// DustField is the pool of particles rendered on the dust layer.
type DustField struct {
	particles []DustParticle
	rng       *rand.Rand
}

// NewDustField seeds a pool sized between dustMinCount and
// dustMaxCount, spread across a screenW x screenH area.
func NewDustField(screenW, screenH, count int) *DustField {
	if count < dustMinCount {
		count = dustMinCount
	}
	if count > dustMaxCount {
		count = dustMaxCount
	}
	rng := rand.New(rand.NewSource(dustSeed))
	particles := make([]DustParticle, count)
	for i := range particles {
		base := 0.2 + rng.Float64()*0.3
		particles[i] = DustParticle{
			X:         rng.Float64() * float64(screenW),
			Y:         rng.Float64() * float64(screenH),
			VX:        (rng.Float64() - 0.5) * 4,
			VY:        (rng.Float64() - 0.5) * 4,
			BaseAlpha: base,
			Alpha:     base,
		}
	}
	return &DustField{particles: particles, rng: rng}
}

// Particles returns the current particle pool for rendering.
func (d *DustField) Particles() []DustParticle { return d.particles }

// Update drifts every particle, nudges its velocity by the camera's
// motion vector, wraps it back on-screen, and boosts alpha by the
// camera's energy scalar.
func (d *DustField) Update(dt float64, motionX, motionY, energy float64, screenW, screenH int) {
	for i := range d.particles {
		p := &d.particles[i]
		p.VX += motionX * 0.002
		p.VY += motionY * 0.002
		p.X += p.VX * dt
		p.Y += p.VY * dt

		if p.X < 0 {
			p.X += float64(screenW)
		} else if p.X > float64(screenW) {
			p.X -= float64(screenW)
		}
		if p.Y < 0 {
			p.Y += float64(screenH)
		} else if p.Y > float64(screenH) {
			p.Y -= float64(screenH)
		}

		p.Alpha = p.BaseAlpha + energy*0.5
		if p.Alpha > 1 {
			p.Alpha = 1
		}
	}
}
