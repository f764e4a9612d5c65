package field

import "image/color"

type op struct {
	kind string
	args []float64
	c    color.NRGBA
}

type recordingCanvas struct {
	w, h int
	ops  []op
}

func (c *recordingCanvas) Size() (int, int) { return c.w, c.h }

func (c *recordingCanvas) Clear() { c.ops = append(c.ops, op{kind: "clear"}) }

func (c *recordingCanvas) FillRect(x, y, w, h float64, col color.Color) {
	c.ops = append(c.ops, op{kind: "rect", args: []float64{x, y, w, h}, c: nrgba(col)})
}

func (c *recordingCanvas) FillCircle(cx, cy, r float64, col color.Color) {
	c.ops = append(c.ops, op{kind: "circle", args: []float64{cx, cy, r}, c: nrgba(col)})
}

func (c *recordingCanvas) Glow(cx, cy, r float64, col color.Color) {
	c.ops = append(c.ops, op{kind: "glow", args: []float64{cx, cy, r}, c: nrgba(col)})
}

func (c *recordingCanvas) StrokeLine(x0, y0, x1, y1, width float64, col color.Color) {
	c.ops = append(c.ops, op{kind: "line", args: []float64{x0, y0, x1, y1, width}, c: nrgba(col)})
}

func (c *recordingCanvas) count(kind string) int {
	n := 0
	for _, o := range c.ops {
		if o.kind == kind {
			n++
		}
	}
	return n
}

func nrgba(col color.Color) color.NRGBA {
	return color.NRGBAModel.Convert(col).(color.NRGBA)
}

type fakeSurface struct {
	canvas *recordingCanvas
}

func (s fakeSurface) Context2D() (Canvas, bool) {
	if s.canvas == nil {
		return nil, false
	}
	return s.canvas, true
}

type fakeHost struct {
	next    FrameID
	pending map[FrameID]func()
	resize  map[int]func(w, h int)
	pointer map[int]func(x, y float64)
	subs    int
	theme   Theme
}

func newFakeHost() *fakeHost {
	return &fakeHost{
		pending: map[FrameID]func(){},
		resize:  map[int]func(w, h int){},
		pointer: map[int]func(x, y float64){},
	}
}

func (h *fakeHost) RequestFrame(fn func()) FrameID {
	h.next++
	h.pending[h.next] = fn
	return h.next
}

func (h *fakeHost) CancelFrame(id FrameID) { delete(h.pending, id) }

func (h *fakeHost) OnResize(fn func(w, h int)) func() {
	h.subs++
	id := h.subs
	h.resize[id] = fn
	return func() { delete(h.resize, id) }
}

func (h *fakeHost) OnPointerMove(fn func(x, y float64)) func() {
	h.subs++
	id := h.subs
	h.pointer[id] = fn
	return func() { delete(h.pointer, id) }
}

func (h *fakeHost) FrameState() Frame { return Frame{Theme: h.theme} }

// tick runs every callback pending at the start of the tick.
func (h *fakeHost) tick() {
	due := h.pending
	h.pending = map[FrameID]func(){}
	for _, fn := range due {
		fn()
	}
}

func (h *fakeHost) fireResize(w, ht int) {
	for _, fn := range h.resize {
		fn(w, ht)
	}
}

func (h *fakeHost) movePointer(x, y float64) {
	for _, fn := range h.pointer {
		fn(x, y)
	}
}
