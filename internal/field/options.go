package field

import "math"

// Profile holds the settings that change with the device class.
type Profile struct {
	Count              int
	MaxSize            float64
	ConnectionDistance float64 // 0 disables connection lines
	Glow               bool
}

// Range is a closed interval used for randomized seeding.
type Range struct {
	Min, Max float64
}

func (r Range) at(u float64) float64 { return r.Min + u*(r.Max-r.Min) }

// Modulation scales a value by Base + Amp*sin(phase).
type Modulation struct {
	Base, Amp float64
}

func (m Modulation) apply(s float64) float64 {
	if m.Base == 0 && m.Amp == 0 {
		return 1
	}
	return m.Base + m.Amp*s
}

// StarOptions configures the perspective star layer. Count 0 disables it.
type StarOptions struct {
	Count      int
	Speed      float64 // depth decrement per frame
	Depth      float64 // respawn depth
	Spread     float64 // x/y seeded in [-Spread/2, Spread/2)
	Projection float64 // k in x / (z * k)
	LightAlpha float64 // trail alpha at zero depth, light theme
	DarkAlpha  float64
}

// Options is the configuration bundle of one renderer instance.
type Options struct {
	Desktop          Profile
	Mobile           Profile
	MobileBreakpoint int

	MinSize float64
	Opacity Range
	Speed   float64 // velocity components seeded in [-Speed, Speed)

	MouseRadius  float64 // 0 disables pointer interaction
	MouseForce   float64
	SpeedDamping float64 // 1 or 0 disables damping

	PulseSpeed   float64 // radians per frame, 0 disables pulsing
	PulseSize    Modulation
	PulseOpacity Modulation

	BoundaryBuffer float64
	TrailAlpha     float64 // outside (0,1) the surface is cleared every frame

	Categories         []Category
	Palette            Palette
	ConnectionCategory Category
	ConnectionAlpha    float64
	ConnectionWidth    float64
	GlowScale          float64
	GlowAlpha          float64

	Stars StarOptions

	RescaleOnResize bool
}

// Profile returns the device-class profile for a surface of width w.
func (o Options) Profile(w int) Profile {
	if o.MobileBreakpoint > 0 && w < o.MobileBreakpoint {
		return o.Mobile
	}
	return o.Desktop
}

func (o Options) normalized() Options {
	if o.Mobile == (Profile{}) {
		o.Mobile = o.Desktop
	}
	if len(o.Categories) == 0 {
		o.Categories = []Category{Primary}
	}
	if o.Palette == nil {
		o.Palette = Palette{Primary: lime}
	}
	if o.Opacity == (Range{}) {
		o.Opacity = Range{Min: 0.1, Max: 0.4}
	}
	if o.SpeedDamping <= 0 {
		o.SpeedDamping = 1
	}
	if o.ConnectionWidth <= 0 {
		o.ConnectionWidth = 1
	}
	if o.GlowScale <= 0 {
		o.GlowScale = 3
	}
	if o.BoundaryBuffer < 0 {
		o.BoundaryBuffer = 0
	}
	if o.Stars.Count > 0 {
		if o.Stars.Depth <= 0 {
			o.Stars.Depth = 1000
		}
		if o.Stars.Projection <= 0 {
			o.Stars.Projection = 0.001
		}
	}
	return o
}

// Hero is the landing background: pointer repulsion, pulse, glow and a star tunnel.
func Hero() Options {
	return Options{
		Desktop: Profile{Count: 80, MaxSize: 3.5, ConnectionDistance: 80, Glow: true},
		MinSize: 0.5,
		Opacity: Range{Min: 0.1, Max: 0.4},
		Speed:   0.15,

		MouseRadius:  200,
		MouseForce:   0.015,
		SpeedDamping: 0.995,

		PulseSpeed: 0.03,
		PulseSize:  Modulation{Base: 1, Amp: 0.3},

		BoundaryBuffer: 100,
		TrailAlpha:     0.08,

		Categories:         []Category{Primary, Secondary, Accent},
		Palette:            Palette{Primary: lime, Secondary: indigo, Accent: pink},
		ConnectionCategory: Primary,
		ConnectionAlpha:    0.1,
		ConnectionWidth:    0.5,
		GlowScale:          2.5,
		GlowAlpha:          0.35,

		Stars: StarOptions{
			Count:      150,
			Speed:      0.3,
			Depth:      1000,
			Spread:     2000,
			Projection: 0.001,
			LightAlpha: 0.15,
			DarkAlpha:  0.2,
		},
	}
}

// About is the plain network background behind the about section.
func About() Options {
	return Options{
		Desktop: Profile{Count: 80, MaxSize: 2.5, ConnectionDistance: 100},
		MinSize: 0.5,
		Opacity: Range{Min: 0.1, Max: 0.4},
		Speed:   0.15,

		TrailAlpha: 1,

		Categories:         []Category{Primary, Secondary},
		Palette:            Palette{Primary: neon, Secondary: emerald},
		ConnectionCategory: Primary,
		ConnectionAlpha:    0.1,
		ConnectionWidth:    0.5,
	}
}

// Projects pulses and glows on desktop and drops to a sparse field on narrow viewports.
func Projects() Options {
	return Options{
		Desktop:          Profile{Count: 50, MaxSize: 3.5, ConnectionDistance: 150, Glow: true},
		Mobile:           Profile{Count: 20, MaxSize: 2.5},
		MobileBreakpoint: 768,
		MinSize:          0.5,
		Opacity:          Range{Min: 0.1, Max: 0.5},
		Speed:            0.15,

		PulseSpeed:   0.032,
		PulseSize:    Modulation{Base: 1, Amp: 0.2},
		PulseOpacity: Modulation{Base: 1.125, Amp: 0.375},

		BoundaryBuffer: 10,
		TrailAlpha:     1,

		Categories:         []Category{Primary},
		Palette:            Palette{Primary: neon},
		ConnectionCategory: Primary,
		ConnectionAlpha:    0.2,
		ConnectionWidth:    1,
		GlowScale:          3,
		GlowAlpha:          0.3,
	}
}

const twoPi = 2 * math.Pi
