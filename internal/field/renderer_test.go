package field

import (
	"math"
	"math/rand"
	"testing"
)

func newTestRenderer(o Options) *Renderer {
	return New(o, rand.New(rand.NewSource(7)))
}

func TestSeedCount(t *testing.T) {
	tests := []struct {
		name      string
		opts      Options
		w, h      int
		particles int
		stars     int
	}{
		{"hero desktop", Hero(), 1280, 720, 80, 150},
		{"hero narrow", Hero(), 400, 800, 80, 150},
		{"about", About(), 1280, 720, 80, 0},
		{"projects desktop", Projects(), 1280, 720, 50, 0},
		{"projects mobile", Projects(), 767, 1000, 20, 0},
		{"projects breakpoint", Projects(), 768, 1000, 50, 0},
		{"empty surface", Hero(), 0, 0, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newTestRenderer(tt.opts)
			r.Seed(tt.w, tt.h)
			c := &recordingCanvas{w: tt.w, h: tt.h}
			for i := 0; i < 120; i++ {
				r.Step(c, Frame{})
			}
			if r.Len() != tt.particles {
				t.Errorf("particles = %d, want %d", r.Len(), tt.particles)
			}
			if len(r.Stars()) != tt.stars {
				t.Errorf("stars = %d, want %d", len(r.Stars()), tt.stars)
			}
		})
	}
}

func TestWrap(t *testing.T) {
	tests := []struct {
		name           string
		v, dim, buffer float64
		want           float64
	}{
		{"inside", 50, 100, 10, 50},
		{"on upper bound", 110, 100, 10, 110},
		{"past upper bound", 110.01, 100, 10, -10},
		{"on lower bound", -10, 100, 10, -10},
		{"past lower bound", -10.01, 100, 10, 110},
		{"no buffer", 100.5, 100, 0, 0},
		{"far past", 5000, 100, 10, -10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Wrap(tt.v, tt.dim, tt.buffer); got != tt.want {
				t.Errorf("Wrap(%v, %v, %v) = %v, want %v", tt.v, tt.dim, tt.buffer, got, tt.want)
			}
		})
	}
}

func TestPositionsStayWithinBuffer(t *testing.T) {
	for _, o := range []Options{Hero(), About(), Projects()} {
		o.Speed = 40
		o.SpeedDamping = 1
		r := newTestRenderer(o)
		r.Seed(640, 480)
		c := &recordingCanvas{w: 640, h: 480}
		buf := r.Options().BoundaryBuffer

		for i := 0; i < 300; i++ {
			r.Step(c, Frame{})
			for _, p := range r.Particles() {
				if p.X < -buf || p.X > 640+buf || p.Y < -buf || p.Y > 480+buf {
					t.Fatalf("frame %d: particle at (%v, %v) outside buffer %v", i, p.X, p.Y, buf)
				}
			}
		}
	}
}

func TestConnectionOpacity(t *testing.T) {
	tests := []struct {
		name string
		d    float64
		want float64
		ok   bool
	}{
		{"touching", 0, 0.1, true},
		{"half way", 50, 0.05, true},
		{"just inside", 99.99, 0.1 * (1 - 99.99/100), true},
		{"at threshold", 100, 0, false},
		{"beyond", 150, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ConnectionOpacity(tt.d, 100, 0.1)
			if ok != tt.ok || math.Abs(got-tt.want) > 1e-12 {
				t.Errorf("ConnectionOpacity(%v) = (%v, %v), want (%v, %v)", tt.d, got, ok, tt.want, tt.ok)
			}
		})
	}

	prev := math.Inf(1)
	for d := 0.0; d < 100; d += 0.5 {
		a, _ := ConnectionOpacity(d, 100, 0.1)
		if a >= prev {
			t.Fatalf("opacity not decreasing at d=%v: %v >= %v", d, a, prev)
		}
		prev = a
	}
}

func TestConnectionLines(t *testing.T) {
	tests := []struct {
		name  string
		gap   float64
		lines int
	}{
		{"close", 40, 1},
		{"just inside", 99.5, 1},
		{"at threshold", 100, 0},
		{"far", 300, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := About()
			o.Speed = 0
			r := newTestRenderer(o)
			r.Seed(800, 600)
			r.particles = r.particles[:2]
			r.particles[0].X, r.particles[0].Y = 200, 200
			r.particles[1].X, r.particles[1].Y = 200+tt.gap, 200

			c := &recordingCanvas{w: 800, h: 600}
			r.Step(c, Frame{})
			if got := c.count("line"); got != tt.lines {
				t.Errorf("lines = %d, want %d", got, tt.lines)
			}
		})
	}
}

func TestConnectionsDrawnOncePerPair(t *testing.T) {
	o := About()
	o.Speed = 0
	r := newTestRenderer(o)
	r.Seed(800, 600)
	r.particles = r.particles[:4]
	for i := range r.particles {
		r.particles[i].X, r.particles[i].Y = 300+float64(i)*10, 300
	}

	c := &recordingCanvas{w: 800, h: 600}
	r.Step(c, Frame{})
	if got := c.count("line"); got != 6 {
		t.Errorf("lines = %d, want 6 for 4 mutually close particles", got)
	}
}

func TestResizeReseeds(t *testing.T) {
	r := newTestRenderer(Hero())
	r.Seed(800, 600)
	before := map[[2]float64]bool{}
	for _, p := range r.Particles() {
		before[[2]float64{p.X, p.Y}] = true
	}

	r.Resize(1200, 900)

	if w, h := r.Size(); w != 1200 || h != 900 {
		t.Fatalf("Size() = %dx%d, want 1200x900", w, h)
	}
	if r.Len() != 80 {
		t.Fatalf("Len() = %d, want 80", r.Len())
	}
	for _, p := range r.Particles() {
		if before[[2]float64{p.X, p.Y}] {
			t.Errorf("particle at (%v, %v) survived the resize", p.X, p.Y)
		}
	}
}

func TestResizeChangesDeviceClass(t *testing.T) {
	r := newTestRenderer(Projects())
	r.Seed(1280, 720)
	if r.Len() != 50 {
		t.Fatalf("desktop Len() = %d, want 50", r.Len())
	}
	r.Resize(500, 720)
	if r.Len() != 20 {
		t.Fatalf("mobile Len() = %d, want 20", r.Len())
	}
	if r.Profile().Glow {
		t.Error("mobile profile should not glow")
	}
}

func TestResizeRescale(t *testing.T) {
	o := About()
	o.RescaleOnResize = true
	r := newTestRenderer(o)
	r.Seed(800, 600)
	first := r.Particles()[0]

	r.Resize(1600, 300)

	got := r.Particles()[0]
	if got.X != first.X*2 || got.Y != first.Y*0.5 {
		t.Errorf("rescaled to (%v, %v), want (%v, %v)", got.X, got.Y, first.X*2, first.Y*0.5)
	}
	if w, h := r.Size(); w != 1600 || h != 300 {
		t.Errorf("Size() = %dx%d, want 1600x300", w, h)
	}
}

func TestFarPointerLeavesVelocity(t *testing.T) {
	o := Hero()
	o.MouseRadius = 200
	r := newTestRenderer(o)
	r.Seed(1024, 768)
	r.SetPointer(-10000, -10000)
	c := &recordingCanvas{w: 1024, h: 768}

	for frame := 0; frame < 100; frame++ {
		want := make([][2]float64, r.Len())
		for i, p := range r.Particles() {
			want[i] = [2]float64{p.VX * o.SpeedDamping, p.VY * o.SpeedDamping}
		}
		r.Step(c, Frame{})
		for i, p := range r.Particles() {
			if p.VX != want[i][0] || p.VY != want[i][1] {
				t.Fatalf("frame %d particle %d: velocity (%v, %v), want (%v, %v)",
					frame, i, p.VX, p.VY, want[i][0], want[i][1])
			}
		}
	}
}

func TestRepel(t *testing.T) {
	tests := []struct {
		name    string
		px, py  float64
		touched bool
		vxSign  float64
	}{
		{"pointer to the right", 150, 100, true, -1},
		{"pointer to the left", 50, 100, true, 1},
		{"on the particle", 100, 100, false, 0},
		{"at radius", 300, 100, false, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Particle{X: 100, Y: 100}
			if got := Repel(&p, tt.px, tt.py, 200, 0.015); got != tt.touched {
				t.Fatalf("Repel touched = %v, want %v", got, tt.touched)
			}
			if math.Signbit(p.VX) != math.Signbit(tt.vxSign) || (tt.vxSign == 0) != (p.VX == 0) {
				t.Errorf("VX = %v, want sign %v", p.VX, tt.vxSign)
			}
			if p.VY != 0 {
				t.Errorf("VY = %v, want 0", p.VY)
			}
		})
	}
}

func TestBackgroundPaint(t *testing.T) {
	t.Run("trail", func(t *testing.T) {
		r := newTestRenderer(Hero())
		r.Seed(320, 240)
		c := &recordingCanvas{w: 320, h: 240}
		r.Step(c, Frame{Theme: Theme{Dark: true}})

		first := c.ops[0]
		if first.kind != "rect" {
			t.Fatalf("first op = %q, want rect", first.kind)
		}
		if first.c.R != 26 || first.c.A != 20 {
			t.Errorf("trail color = %+v, want dark background at alpha 20", first.c)
		}
	})

	t.Run("clear", func(t *testing.T) {
		r := newTestRenderer(About())
		r.Seed(320, 240)
		c := &recordingCanvas{w: 320, h: 240}
		r.Step(c, Frame{})
		if c.ops[0].kind != "clear" {
			t.Errorf("first op = %q, want clear", c.ops[0].kind)
		}
	})
}

func TestThemeColors(t *testing.T) {
	r := newTestRenderer(Hero())
	r.Seed(320, 240)
	r.particles = r.particles[:1]
	r.particles[0].Category = Secondary
	r.stars = nil

	light := &recordingCanvas{w: 320, h: 240}
	r.Step(light, Frame{})
	dark := &recordingCanvas{w: 320, h: 240}
	r.Step(dark, Frame{Theme: Theme{Dark: true}})

	find := func(c *recordingCanvas) op {
		for _, o := range c.ops {
			if o.kind == "circle" {
				return o
			}
		}
		t.Fatal("no circle drawn")
		return op{}
	}
	if got := find(light).c; got.R != 79 || got.G != 70 || got.B != 229 {
		t.Errorf("light secondary = %+v", got)
	}
	if got := find(dark).c; got.R != 99 || got.G != 102 || got.B != 241 {
		t.Errorf("dark secondary = %+v", got)
	}
}

func TestPulseEnergy(t *testing.T) {
	o := Projects()
	o.Speed = 0
	r := newTestRenderer(o)
	r.Seed(1280, 720)
	r.particles = r.particles[:1]
	r.particles[0].Size = 2
	// sin(frame*speed + phase) == 1 on the first frame
	r.particles[0].Phase = math.Pi/2 - o.PulseSpeed

	radius := func(energy float64) float64 {
		r.frame = 0
		c := &recordingCanvas{w: 1280, h: 720}
		r.Step(c, Frame{Energy: energy})
		for _, o := range c.ops {
			if o.kind == "circle" {
				return o.args[2]
			}
		}
		t.Fatal("no circle drawn")
		return 0
	}

	if got := radius(0); math.Abs(got-2.4) > 1e-9 {
		t.Errorf("calm radius = %v, want 2.4", got)
	}
	if got := radius(1); math.Abs(got-2.8) > 1e-9 {
		t.Errorf("energized radius = %v, want 2.8", got)
	}
}
