package gldraw

// FrameEnvironment is the per-frame input handed to Command.Draw and from
// there to every uniform provider. It is supplied by the frame loop.
type FrameEnvironment struct {
	// ElapsedTime is seconds since the loop started, monotonic.
	ElapsedTime float64

	// FrameTick counts frames, starting at zero.
	FrameTick uint64

	// ViewportWidth and ViewportHeight are the framebuffer size in pixels.
	ViewportWidth  uint32
	ViewportHeight uint32
}

// Aspect returns width/height, or 1 for an empty viewport.
func (e FrameEnvironment) Aspect() float32 {
	if e.ViewportHeight == 0 {
		return 1
	}
	return float32(e.ViewportWidth) / float32(e.ViewportHeight)
}
