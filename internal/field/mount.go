package field

// Mount binds r to surface and starts the frame loop on host. When the
// surface has no 2D context nothing is started and the returned teardown
// does nothing. Teardown cancels the pending frame and drops the resize and
// pointer subscriptions; calling it more than once is safe.
func (r *Renderer) Mount(surface Surface, host Host) (teardown func()) {
	c, ok := surface.Context2D()
	if !ok {
		return func() {}
	}

	r.Seed(c.Size())

	var (
		stopped bool
		pending FrameID
		cancels []func()
	)
	cancels = append(cancels,
		host.OnResize(r.Resize),
		host.OnPointerMove(r.SetPointer),
	)

	var tick func()
	tick = func() {
		if stopped {
			return
		}
		r.Step(c, host.FrameState())
		if stopped {
			return
		}
		pending = host.RequestFrame(tick)
	}
	pending = host.RequestFrame(tick)

	return func() {
		if stopped {
			return
		}
		stopped = true
		host.CancelFrame(pending)
		for _, cancel := range cancels {
			cancel()
		}
	}
}
