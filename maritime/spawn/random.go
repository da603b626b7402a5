package spawn

import (
	"math/rand"
)

// randomZ keeps random targets just above the water surface.
const randomZ = 0.2

// RandomTargets produces count placements with the model type chosen
// uniformly from the three SAR targets and x/y uniform in
// [-area/2, area/2]. Deterministic for a given rng seed.
func RandomTargets(rng *rand.Rand, count int, area float64) []Target {
	targets := make([]Target, 0, count)
	for i := 0; i < count; i++ {
		targets = append(targets, Target{
			Model: ModelNames[rng.Intn(len(ModelNames))],
			X:     rng.Float64()*area - area/2,
			Y:     rng.Float64()*area - area/2,
			Z:     randomZ,
		})
	}
	return targets
}
