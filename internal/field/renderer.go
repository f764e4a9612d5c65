// Package field implements a configurable particle field: drifting points
// with pointer repulsion, pulsing, boundary wrap, proximity lines and an
// optional perspective star layer. It draws through the Canvas interface and
// is driven by a Host that schedules one step per display frame.
package field

import (
	"math"
	"math/rand"
)

// Renderer owns one particle set bound to a surface size.
type Renderer struct {
	opts Options
	rng  *rand.Rand

	w, h      int
	profile   Profile
	particles []Particle
	stars     []Star
	frame     int

	pointerX, pointerY float64
	hasPointer         bool
}

// New returns a renderer with no primitives; call Seed or Mount to populate it.
func New(opts Options, rng *rand.Rand) *Renderer {
	return &Renderer{opts: opts.normalized(), rng: rng}
}

// Options returns the normalized configuration bundle.
func (r *Renderer) Options() Options { return r.opts }

// Size returns the recorded surface dimensions.
func (r *Renderer) Size() (int, int) { return r.w, r.h }

// Profile returns the device-class profile chosen at the last seed.
func (r *Renderer) Profile() Profile { return r.profile }

// Particles exposes the live particle set. Callers must not retain it across Seed.
func (r *Renderer) Particles() []Particle { return r.particles }

// Stars exposes the live star set.
func (r *Renderer) Stars() []Star { return r.stars }

// Len is the number of live particles.
func (r *Renderer) Len() int { return len(r.particles) }

// Seed discards every primitive and seeds a fresh set for a w×h surface.
func (r *Renderer) Seed(w, h int) {
	r.w, r.h = w, h
	r.profile = r.opts.Profile(w)
	r.particles = nil
	r.stars = nil
	if w <= 0 || h <= 0 {
		return
	}

	r.particles = make([]Particle, r.profile.Count)
	for i := range r.particles {
		r.particles[i] = seedParticle(r.opts, r.profile, w, h, r.rng)
	}
	if n := r.opts.Stars.Count; n > 0 {
		r.stars = make([]Star, n)
		for i := range r.stars {
			r.stars[i] = seedStar(r.opts.Stars, r.rng)
		}
	}
}

// Resize records the new dimensions and reseeds. With RescaleOnResize the
// particles keep their relative positions instead, as long as the device
// class does not change.
func (r *Renderer) Resize(w, h int) {
	if r.opts.RescaleOnResize && r.w > 0 && r.h > 0 && w > 0 && h > 0 &&
		r.opts.Profile(w) == r.profile {
		sx, sy := float64(w)/float64(r.w), float64(h)/float64(r.h)
		for i := range r.particles {
			r.particles[i].X *= sx
			r.particles[i].Y *= sy
		}
		r.w, r.h = w, h
		return
	}
	r.Seed(w, h)
}

// SetPointer records the latest pointer position.
func (r *Renderer) SetPointer(x, y float64) {
	r.pointerX, r.pointerY = x, y
	r.hasPointer = true
}

// Step advances and draws one frame.
func (r *Renderer) Step(c Canvas, f Frame) {
	r.frame++
	r.paintBackground(c, f.Theme)
	if r.w <= 0 || r.h <= 0 {
		return
	}
	if len(r.stars) > 0 {
		r.drawStars(c, f.Theme)
	}

	o := r.opts
	sizeK, alphaK := 1.0, 1.0
	w, h := float64(r.w), float64(r.h)
	threshold := r.profile.ConnectionDistance
	link := o.Palette.Pick(o.ConnectionCategory, f.Theme)
	boost := 1 + f.Energy

	for i := range r.particles {
		p := &r.particles[i]

		if o.MouseRadius > 0 && r.hasPointer {
			Repel(p, r.pointerX, r.pointerY, o.MouseRadius, o.MouseForce)
		}

		p.X += p.VX
		p.Y += p.VY
		p.VX *= o.SpeedDamping
		p.VY *= o.SpeedDamping

		p.X = Wrap(p.X, w, o.BoundaryBuffer)
		p.Y = Wrap(p.Y, h, o.BoundaryBuffer)

		if o.PulseSpeed != 0 {
			s := math.Sin(float64(r.frame)*o.PulseSpeed+p.Phase) * boost
			sizeK = o.PulseSize.apply(s)
			alphaK = o.PulseOpacity.apply(s)
		}
		size := math.Max(p.Size*sizeK, 0)
		alpha := p.Opacity * alphaK
		col := o.Palette.Pick(p.Category, f.Theme)

		if r.profile.Glow {
			c.Glow(p.X, p.Y, size*o.GlowScale, withAlpha(col, alpha*o.GlowAlpha))
		}
		c.FillCircle(p.X, p.Y, size, withAlpha(col, alpha))

		if threshold <= 0 {
			continue
		}
		for j := i + 1; j < len(r.particles); j++ {
			q := &r.particles[j]
			a, ok := ConnectionOpacity(math.Hypot(p.X-q.X, p.Y-q.Y), threshold, o.ConnectionAlpha)
			if !ok {
				continue
			}
			c.StrokeLine(p.X, p.Y, q.X, q.Y, o.ConnectionWidth, withAlpha(link, a))
		}
	}
}

func (r *Renderer) paintBackground(c Canvas, t Theme) {
	if r.opts.TrailAlpha >= 1 || r.opts.TrailAlpha <= 0 {
		c.Clear()
		return
	}
	w, h := c.Size()
	c.FillRect(0, 0, float64(w), float64(h), withAlpha(t.Background(), r.opts.TrailAlpha))
}
