package host

import (
	"sort"

	"github.com/iburimskiy/portfolio-backdrop/internal/field"
)

// Frames is a requestAnimationFrame-style scheduler ticked once per display
// frame by the game loop. A callback runs at most once; to keep animating it
// requests the next frame itself.
type Frames struct {
	next    field.FrameID
	pending map[field.FrameID]func()
	due     map[field.FrameID]func()
}

func NewFrames() *Frames {
	return &Frames{pending: map[field.FrameID]func(){}}
}

func (f *Frames) RequestFrame(fn func()) field.FrameID {
	f.next++
	f.pending[f.next] = fn
	return f.next
}

// CancelFrame drops a scheduled callback, including one due later in the
// tick that is currently running. Unknown or already run ids are ignored.
func (f *Frames) CancelFrame(id field.FrameID) {
	delete(f.pending, id)
	delete(f.due, id)
}

// Tick runs the callbacks that were pending when it started, in request
// order, and returns how many ran. Callbacks requested during the tick wait
// for the next one.
func (f *Frames) Tick() int {
	if len(f.pending) == 0 {
		return 0
	}
	f.due = f.pending
	f.pending = map[field.FrameID]func(){}
	defer func() { f.due = nil }()

	ids := make([]field.FrameID, 0, len(f.due))
	for id := range f.due {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	ran := 0
	for _, id := range ids {
		fn, ok := f.due[id]
		if !ok {
			continue
		}
		delete(f.due, id)
		fn()
		ran++
	}
	return ran
}

// Pending is the number of callbacks waiting for the next tick.
func (f *Frames) Pending() int { return len(f.pending) }
