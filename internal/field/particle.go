package field

import (
	"math"
	"math/rand"
)

// Particle is a drifting point. Size and Opacity are base values before pulsing.
type Particle struct {
	X, Y     float64
	VX, VY   float64
	Size     float64
	Opacity  float64
	Category Category
	Phase    float64
}

func seedParticle(o Options, p Profile, w, h int, rng *rand.Rand) Particle {
	return Particle{
		X:        rng.Float64() * float64(w),
		Y:        rng.Float64() * float64(h),
		VX:       (rng.Float64()*2 - 1) * o.Speed,
		VY:       (rng.Float64()*2 - 1) * o.Speed,
		Size:     o.MinSize + rng.Float64()*(p.MaxSize-o.MinSize),
		Opacity:  o.Opacity.at(rng.Float64()),
		Category: o.Categories[rng.Intn(len(o.Categories))],
		Phase:    rng.Float64() * twoPi,
	}
}

// Wrap moves v to the opposite edge once it leaves [-buffer, dim+buffer].
func Wrap(v, dim, buffer float64) float64 {
	switch {
	case v > dim+buffer:
		return -buffer
	case v < -buffer:
		return dim + buffer
	}
	return v
}

// Repel pushes p away from the pointer at (px, py) when it is within radius.
// The impulse scales with (radius-d)/radius. It reports whether p was touched.
func Repel(p *Particle, px, py, radius, force float64) bool {
	dx := px - p.X
	dy := py - p.Y
	d := math.Hypot(dx, dy)
	if d >= radius || d == 0 {
		return false
	}
	f := (radius - d) / radius
	p.VX -= dx / d * f * force
	p.VY -= dy / d * f * force
	return true
}

// ConnectionOpacity returns the line alpha for two points d apart. Lines exist
// only for d strictly below threshold and fade linearly to zero at it.
func ConnectionOpacity(d, threshold, alpha float64) (float64, bool) {
	if threshold <= 0 || d >= threshold {
		return 0, false
	}
	return (1 - d/threshold) * alpha, true
}
