package game

import (
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/portfolio-backdrop/internal/field"
)

const glowSpriteSize = 64

// Surface is an offscreen ebiten image sized to the window. The particle
// trail lives here between frames, so it is never cleared by ebiten.
type Surface struct {
	img    *ebiten.Image
	canvas *imageCanvas
	glow   *ebiten.Image
}

func NewSurface(w, h int) *Surface {
	s := &Surface{}
	s.canvas = &imageCanvas{s: s}
	s.Resize(w, h)
	return s
}

// Resize reallocates the backing image. A non-positive size leaves the
// surface without a drawing context.
func (s *Surface) Resize(w, h int) {
	if s.img != nil {
		if b := s.img.Bounds(); b.Dx() == w && b.Dy() == h {
			return
		}
		s.img.Deallocate()
		s.img = nil
	}
	if w <= 0 || h <= 0 {
		return
	}
	s.img = ebiten.NewImage(w, h)
}

func (s *Surface) Context2D() (field.Canvas, bool) {
	if s.img == nil {
		return nil, false
	}
	return s.canvas, true
}

// Image is the current backing image, nil when the surface has no size.
func (s *Surface) Image() *ebiten.Image { return s.img }

func (s *Surface) glowSprite() *ebiten.Image {
	if s.glow == nil {
		s.glow = ebiten.NewImageFromImage(radialFalloff(glowSpriteSize))
	}
	return s.glow
}

// radialFalloff renders a white disc whose alpha fades linearly from the
// center to the edge.
func radialFalloff(size int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	c := float64(size) / 2
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			d := math.Hypot(float64(x)+0.5-c, float64(y)+0.5-c) / c
			a := uint8(clamp01(1-d) * 255)
			img.SetRGBA(x, y, color.RGBA{R: a, G: a, B: a, A: a})
		}
	}
	return img
}

// imageCanvas draws on whatever image its surface currently holds, so it
// stays valid across resizes.
type imageCanvas struct {
	s *Surface
}

func (c *imageCanvas) Size() (int, int) {
	if c.s.img == nil {
		return 0, 0
	}
	b := c.s.img.Bounds()
	return b.Dx(), b.Dy()
}

func (c *imageCanvas) Clear() {
	if c.s.img != nil {
		c.s.img.Clear()
	}
}

func (c *imageCanvas) FillRect(x, y, w, h float64, clr color.Color) {
	if c.s.img == nil {
		return
	}
	vector.DrawFilledRect(c.s.img, float32(x), float32(y), float32(w), float32(h), clr, false)
}

func (c *imageCanvas) FillCircle(cx, cy, r float64, clr color.Color) {
	if c.s.img == nil || r <= 0 {
		return
	}
	vector.DrawFilledCircle(c.s.img, float32(cx), float32(cy), float32(r), clr, true)
}

func (c *imageCanvas) Glow(cx, cy, r float64, clr color.Color) {
	if c.s.img == nil || r <= 0 {
		return
	}
	sprite := c.s.glowSprite()
	op := &ebiten.DrawImageOptions{}
	scale := 2 * r / glowSpriteSize
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(cx-r, cy-r)
	op.ColorScale.ScaleWithColor(clr)
	op.Filter = ebiten.FilterLinear
	c.s.img.DrawImage(sprite, op)
}

func (c *imageCanvas) StrokeLine(x0, y0, x1, y1, width float64, clr color.Color) {
	if c.s.img == nil {
		return
	}
	vector.StrokeLine(c.s.img, float32(x0), float32(y0), float32(x1), float32(y1), float32(width), clr, true)
}
