package field

import "math/rand"

// Star is a point moving toward the viewer. X and Y are world coordinates
// centered on the surface; PrevX and PrevY hold the last projected position.
type Star struct {
	X, Y, Z      float64
	PrevX, PrevY float64
}

// Project returns the screen offset from the surface center.
func (s Star) Project(k float64) (float64, float64) {
	return s.X / (s.Z * k), s.Y / (s.Z * k)
}

func seedStar(o StarOptions, rng *rand.Rand) Star {
	s := Star{
		X: (rng.Float64() - 0.5) * o.Spread,
		Y: (rng.Float64() - 0.5) * o.Spread,
		// (0, Depth] keeps the projection finite
		Z: o.Depth * (1 - rng.Float64()),
	}
	s.PrevX, s.PrevY = s.Project(o.Projection)
	return s
}

// StepStar records the current projection, moves s one frame closer and
// respawns it at full depth once it passes the viewer. It reports whether a
// respawn happened.
func StepStar(s *Star, o StarOptions, rng *rand.Rand) bool {
	s.PrevX, s.PrevY = s.Project(o.Projection)
	s.Z -= o.Speed
	if s.Z > 0 {
		return false
	}
	s.X = (rng.Float64() - 0.5) * o.Spread
	s.Y = (rng.Float64() - 0.5) * o.Spread
	s.Z = o.Depth
	s.PrevX, s.PrevY = s.Project(o.Projection)
	return true
}

func (r *Renderer) drawStars(c Canvas, t Theme) {
	o := r.opts.Stars
	cx, cy := float64(r.w)/2, float64(r.h)/2
	alpha := o.LightAlpha
	if t.Dark {
		alpha = o.DarkAlpha
	}
	col := r.opts.Palette.Pick(Primary, t)

	for i := range r.stars {
		s := &r.stars[i]
		StepStar(s, o, r.rng)

		x, y := s.Project(o.Projection)
		near := 1 - s.Z/o.Depth
		c.StrokeLine(cx+s.PrevX, cy+s.PrevY, cx+x, cy+y, (1+near)*0.5, withAlpha(col, near*alpha))
	}
}
