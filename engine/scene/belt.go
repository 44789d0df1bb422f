package scene

import "math/rand"

// BeltBandCount and BeltSpeckCount are the asteroid belt's fixed
// rendering resolution (spec.md §4.4: "14 overlapping diffuse bands...
// plus 32 deterministic scatter specks").
const (
	BeltBandCount  = 14
	BeltSpeckCount = 32

	// beltSeed is fixed so the belt's scatter pattern is stable across
	// runs and machines, per spec.md's "deterministic scatter specks".
	beltSeed = 0x0ea57e12
)

// BeltBand is one diffuse ring band between the belt's inner and outer
// radius.
type BeltBand struct {
	InnerRadius, OuterRadius float64
	Alpha                    float64
}

// BeltBands generates the belt's bands, evenly overlapping between
// innerR and outerR.
func BeltBands(innerR, outerR float64) []BeltBand {
	if outerR <= innerR {
		innerR, outerR = outerR, innerR
	}
	span := outerR - innerR
	bandWidth := span / float64(BeltBandCount) * 1.6 // bands overlap
	step := span / float64(BeltBandCount)

	bands := make([]BeltBand, BeltBandCount)
	for i := 0; i < BeltBandCount; i++ {
		center := innerR + step*float64(i) + step/2
		bands[i] = BeltBand{
			InnerRadius: center - bandWidth/2,
			OuterRadius: center + bandWidth/2,
			Alpha:       0.06,
		}
	}
	return bands
}

// Speck is one deterministic scatter point within the belt annulus.
type Speck struct {
	Radius, AngleRad float64
	Size             float64
}

// BeltSpecks returns BeltSpeckCount deterministic scatter points spread
// across [innerR, outerR], seeded so the pattern never changes between
// renders.
func BeltSpecks(innerR, outerR float64) []Speck {
	rng := rand.New(rand.NewSource(beltSeed))
	specks := make([]Speck, BeltSpeckCount)
	for i := range specks {
		specks[i] = Speck{
			Radius:   innerR + rng.Float64()*(outerR-innerR),
			AngleRad: rng.Float64() * 2 * 3.141592653589793,
			Size:     0.6 + rng.Float64()*1.4,
		}
	}
	return specks
}
