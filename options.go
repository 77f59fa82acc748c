package primitives

// CanvasOption configures a Canvas during creation.
// Use functional options to customize how NewCanvas interprets its buffer.
//
// Example:
//
//	// Height derived from the buffer length
//	cv, err := primitives.NewCanvas(frame, 800)
//
//	// Explicit height; frame may be longer than 800*600*4 bytes
//	cv, err := primitives.NewCanvas(frame, 800, primitives.WithHeight(600))
type CanvasOption func(*canvasOptions)

// canvasOptions holds optional configuration for Canvas creation.
type canvasOptions struct {
	height int // negative: derive from the buffer length
}

// defaultCanvasOptions returns the default canvas options.
func defaultCanvasOptions() canvasOptions {
	return canvasOptions{
		height: -1,
	}
}

// WithHeight sets the canvas height explicitly instead of deriving it from
// the buffer length. The buffer must hold at least 4*width*height bytes;
// any tail beyond that is left untouched. A negative height restores the
// default derivation.
func WithHeight(h int) CanvasOption {
	return func(o *canvasOptions) {
		o.height = h
	}
}
