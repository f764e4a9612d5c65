// Package host drives particle field renderers the way a browser drives
// canvas animations: a frame scheduler, resize and pointer signals, and a
// stage that mounts one section's background at a time.
package host

import (
	"log"
	"math/rand"

	"github.com/iburimskiy/portfolio-backdrop/internal/field"
)

// Stage shows one section at a time. It is the field.Host of the mounted
// renderer and owns the theme and energy handed to every frame.
type Stage struct {
	*Frames
	*Signals

	surface  field.Surface
	sections []Section
	rng      *rand.Rand

	theme  field.Theme
	energy float64

	active   int
	renderer *field.Renderer
	teardown func()
	live     bool
}

func NewStage(surface field.Surface, sections []Section, rng *rand.Rand) *Stage {
	return &Stage{
		Frames:   NewFrames(),
		Signals:  NewSignals(),
		surface:  surface,
		sections: sections,
		rng:      rng,
		active:   -1,
	}
}

func (s *Stage) FrameState() field.Frame {
	return field.Frame{Theme: s.theme, Energy: s.energy}
}

// Show tears down the current background and mounts section i. Out of range
// indexes are ignored.
func (s *Stage) Show(i int) {
	if i < 0 || i >= len(s.sections) {
		return
	}
	s.unmount()

	s.active = i
	sec := s.sections[i]
	s.renderer = field.New(sec.Background(), s.rng)
	_, s.live = s.surface.Context2D()
	s.teardown = s.renderer.Mount(s.surface, s)
	if !s.live {
		log.Printf("section %s: no drawing surface yet, background deferred", sec.Key)
	}
}

// Next cycles to the following section.
func (s *Stage) Next() {
	s.Show((s.active + 1) % len(s.sections))
}

// Resize publishes the viewport size. A section mounted before the surface
// had a size is remounted once it gets one.
func (s *Stage) Resize(w, h int) bool {
	changed := s.Signals.Resize(w, h)
	if changed && !s.live && s.active >= 0 {
		s.Show(s.active)
	}
	return changed
}

func (s *Stage) unmount() {
	if s.teardown != nil {
		s.teardown()
		s.teardown = nil
	}
	s.renderer = nil
	s.live = false
}

// Close stops the running background. The stage can be shown again later.
func (s *Stage) Close() {
	s.unmount()
}

func (s *Stage) Active() int { return s.active }

func (s *Stage) Sections() []Section { return s.sections }

// Section returns the active section; the zero Section before the first Show.
func (s *Stage) Section() Section {
	if s.active < 0 {
		return Section{}
	}
	return s.sections[s.active]
}

// Renderer is the mounted renderer, nil when nothing is shown.
func (s *Stage) Renderer() *field.Renderer { return s.renderer }

// Live reports whether the mounted background is animating.
func (s *Stage) Live() bool { return s.live }

func (s *Stage) Theme() field.Theme { return s.theme }

func (s *Stage) SetTheme(t field.Theme) { s.theme = t }

func (s *Stage) ToggleTheme() field.Theme {
	s.theme.Dark = !s.theme.Dark
	return s.theme
}

// SetEnergy sets the pulse boost for the following frames.
func (s *Stage) SetEnergy(e float64) { s.energy = e }
