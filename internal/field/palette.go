package field

import "image/color"

// Category selects a palette slot for a particle.
type Category int

const (
	Primary Category = iota
	Secondary
	Accent
)

func (c Category) String() string {
	switch c {
	case Primary:
		return "primary"
	case Secondary:
		return "secondary"
	case Accent:
		return "accent"
	}
	return "unknown"
}

// ThemeColor is an RGB triple per theme. Alpha is ignored.
type ThemeColor struct {
	Light color.RGBA
	Dark  color.RGBA
}

// Palette maps categories to their theme colors.
type Palette map[Category]ThemeColor

// Theme is the presentation state handed to every frame step.
type Theme struct {
	Dark bool
}

var (
	darkBackground  = color.RGBA{R: 26, G: 26, B: 26, A: 255}
	lightBackground = color.RGBA{R: 255, G: 255, B: 255, A: 255}
)

// Background returns the opaque page background for the theme.
func (t Theme) Background() color.RGBA {
	if t.Dark {
		return darkBackground
	}
	return lightBackground
}

// Pick returns the RGB for c under the theme. Unknown categories fall back to Primary.
func (p Palette) Pick(c Category, t Theme) color.RGBA {
	tc, ok := p[c]
	if !ok {
		tc = p[Primary]
	}
	if t.Dark {
		return tc.Dark
	}
	return tc.Light
}

// withAlpha returns c as a non-premultiplied color with alpha a in [0,1].
func withAlpha(c color.RGBA, a float64) color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: uint8(clamp01(a)*255 + 0.5)}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

var (
	lime    = ThemeColor{Light: color.RGBA{R: 101, G: 163, B: 13, A: 255}, Dark: color.RGBA{R: 190, G: 242, B: 100, A: 255}}
	indigo  = ThemeColor{Light: color.RGBA{R: 79, G: 70, B: 229, A: 255}, Dark: color.RGBA{R: 99, G: 102, B: 241, A: 255}}
	pink    = ThemeColor{Light: color.RGBA{R: 219, G: 39, B: 119, A: 255}, Dark: color.RGBA{R: 236, G: 72, B: 153, A: 255}}
	neon    = ThemeColor{Light: color.RGBA{R: 190, G: 242, B: 100, A: 255}, Dark: color.RGBA{R: 190, G: 242, B: 100, A: 255}}
	emerald = ThemeColor{Light: color.RGBA{R: 74, G: 222, B: 128, A: 255}, Dark: color.RGBA{R: 74, G: 222, B: 128, A: 255}}
)
