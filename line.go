package primitives

import (
	"context"
	"log/slog"

	"github.com/gogpu/primitives/internal/raster"
)

// DrawLine draws a one-pixel line from p0 to p1 into buf, a row-major RGBA
// buffer width pixels wide. See Canvas.DrawLine.
func DrawLine(buf []uint8, width int, p0, p1 Point, c Color) {
	cv := borrow(buf, width)
	cv.DrawLine(p0, p1, c)
}

// DrawLine draws a one-pixel line from p0 to p1 with Bresenham's algorithm.
//
// Endpoints are truncated toward zero. Both endpoints are drawn, so a
// zero-length line sets exactly one pixel, and swapping p0 and p1 sets the
// same pixels. A NaN, infinite or out-of-range endpoint draws nothing.
func (cv *Canvas) DrawLine(p0, p1 Point, c Color) {
	if !p0.drawable() || !p1.drawable() {
		Logger().Warn("primitives: line endpoint not drawable", "p0", p0, "p1", p1)
		return
	}
	a, b := p0.Trunc(), p1.Trunc()
	cv.line(a.X, a.Y, b.X, b.Y, c)
}

// line steps only through the columns (or rows, for steep lines) of the
// canvas, so its cost is bounded by the canvas size.
func (cv *Canvas) line(x0, y0, x1, y1 int, c Color) {
	if !inRange(x0) || !inRange(y0) || !inRange(x1) || !inRange(y1) {
		Logger().Warn("primitives: line endpoint out of range", "x0", x0, "y0", y0, "x1", x1, "y1", y1)
		return
	}
	l := raster.NewLineClip(x0, y0, x1, y1, cv.Bounds())
	if lg := Logger(); lg.Enabled(context.Background(), slog.LevelDebug) {
		lg.Debug("primitives: line", "x0", x0, "y0", y0, "x1", x1, "y1", y1, "pixels", l.Len())
	}
	for x, y, ok := l.Next(); ok; x, y, ok = l.Next() {
		cv.SetPixel(x, y, c)
	}
}
