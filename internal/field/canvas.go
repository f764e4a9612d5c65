package field

import "image/color"

// Canvas is a 2D raster drawing context. Coordinates are in surface pixels.
type Canvas interface {
	Size() (w, h int)
	// Clear makes every pixel transparent.
	Clear()
	FillRect(x, y, w, h float64, c color.Color)
	FillCircle(cx, cy, r float64, c color.Color)
	// Glow draws a radial falloff from c at the center to transparent at radius r.
	Glow(cx, cy, r float64, c color.Color)
	StrokeLine(x0, y0, x1, y1, width float64, c color.Color)
}

// Surface is a drawing target that may or may not offer a 2D context.
type Surface interface {
	Context2D() (Canvas, bool)
}

// FrameID identifies a scheduled frame callback.
type FrameID uint64

// Frame is the presentation state handed to a single step.
type Frame struct {
	Theme Theme
	// Energy boosts the pulse amplitude by a factor of 1+Energy.
	Energy float64
}

// Host schedules frame callbacks and delivers viewport and pointer signals.
type Host interface {
	RequestFrame(fn func()) FrameID
	CancelFrame(id FrameID)
	OnResize(fn func(w, h int)) (cancel func())
	OnPointerMove(fn func(x, y float64)) (cancel func())
	// FrameState is read once per frame; the renderer never writes presentation state.
	FrameState() Frame
}
