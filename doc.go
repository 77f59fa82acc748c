// Package primitives draws simple 2D shapes into an RGBA pixel buffer.
//
// # Overview
//
// primitives is a small software rasterizer for frame buffers owned by
// something else: a window surface, a texture upload buffer, an
// image.NRGBA. It draws lines, circles, squares, rectangles, triangles and
// polygon outlines, writing opaque pixels straight into the buffer.
//
// # Quick Start
//
//	frame := make([]uint8, 800*800*4) // or pixels from your surface
//
//	primitives.DrawCircleFilled(frame, 800, primitives.Pt(200, 200), 50, primitives.White)
//	primitives.DrawTriangle(frame, 800,
//	    image.Pt(200, 400), image.Pt(300, 200), image.Pt(400, 400), primitives.Blue)
//
// The same operations are available as methods on a Canvas, which also
// implements image.Image and draw.Image:
//
//	cv, err := primitives.NewCanvas(frame, 800)
//	if err != nil {
//	    return err
//	}
//	cv.DrawRectFilled(image.Pt(10, 10), image.Pt(90, 40), primitives.Red)
//	err = cv.SavePNG("frame.png")
//
// # Canvas
//
// A canvas is a row-major buffer with 4 bytes (R, G, B, A) per pixel. The
// caller supplies the width; the height is len(buf)/4/width unless given
// with WithHeight. The library never allocates, grows or retains a borrowed
// buffer.
//
// # Coordinate System
//
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//   - Fractional coordinates are truncated toward zero
//
// # Clipping and Errors
//
// Every pixel goes through WritePixel, which silently drops coordinates
// outside the canvas, so shapes may extend past any edge. The only error
// path is a programming error: DrawRectFilled panics when its corners are
// out of order.
//
// # Blending
//
// There is none. A write replaces all four bytes of a pixel, alpha
// included.
//
// # Concurrency
//
// Draw calls are synchronous and keep no state between calls. Drawing into
// the same buffer from several goroutines needs external synchronization.
package primitives

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
