package host

// Signals fans viewport and pointer changes out to subscribers. Publishing
// an unchanged value is a no-op.
type Signals struct {
	nextID  int
	resize  map[int]func(w, h int)
	pointer map[int]func(x, y float64)

	w, h       int
	px, py     float64
	hasPointer bool
}

func NewSignals() *Signals {
	return &Signals{
		resize:  map[int]func(w, h int){},
		pointer: map[int]func(x, y float64){},
	}
}

func (s *Signals) OnResize(fn func(w, h int)) func() {
	s.nextID++
	id := s.nextID
	s.resize[id] = fn
	return func() { delete(s.resize, id) }
}

func (s *Signals) OnPointerMove(fn func(x, y float64)) func() {
	s.nextID++
	id := s.nextID
	s.pointer[id] = fn
	if s.hasPointer {
		fn(s.px, s.py)
	}
	return func() { delete(s.pointer, id) }
}

// Resize publishes a new viewport size and reports whether it changed.
func (s *Signals) Resize(w, h int) bool {
	if w == s.w && h == s.h {
		return false
	}
	s.w, s.h = w, h
	for _, fn := range s.resize {
		fn(w, h)
	}
	return true
}

func (s *Signals) Pointer(x, y float64) {
	if s.hasPointer && x == s.px && y == s.py {
		return
	}
	s.px, s.py, s.hasPointer = x, y, true
	for _, fn := range s.pointer {
		fn(x, y)
	}
}

func (s *Signals) Size() (int, int) { return s.w, s.h }

// Subscribers is the number of live resize and pointer subscriptions.
func (s *Signals) Subscribers() int { return len(s.resize) + len(s.pointer) }
