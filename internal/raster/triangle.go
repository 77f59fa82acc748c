package raster

import (
	"image"
	"math"

	"github.com/gogpu/primitives/internal/geom"
)

// Span is an inclusive run of pixels X0..X1 on row Y.
type Span struct {
	Y, X0, X1 int
}

// Len returns the number of pixels in the span.
func (s Span) Len() int {
	if s.X1 < s.X0 {
		return 0
	}
	return s.X1 - s.X0 + 1
}

// TriangleSpans sweeps the triangle v0 v1 v2 top to bottom and calls fn
// with one span per covered row, clipped to clip. Rows or spans that fall
// entirely outside clip are skipped.
//
// The vertices are sorted by y. Rows above the middle vertex interpolate
// between the long edge (top to bottom vertex) and the upper short edge;
// the remaining rows use the long edge and the lower short edge. Each span
// is widened outward to whole pixels (floor on the left, ceil on the
// right), which keeps the fill mirror-symmetric and makes it cover every
// vertex. Flat edges never divide by zero: a horizontal short edge is
// represented by its first endpoint, and a triangle with all three vertices
// on one row becomes a single span.
func TriangleSpans(v0, v1, v2 image.Point, clip image.Rectangle, fn func(Span)) {
	if clip.Empty() {
		return
	}
	top, mid, bot := geom.Sort3(v0, v1, v2, func(p image.Point) int { return p.Y })

	if top.Y == bot.Y {
		emit(Span{Y: top.Y, X0: min(top.X, mid.X, bot.X), X1: max(top.X, mid.X, bot.X)}, clip, fn)
		return
	}

	y0 := geom.Clamp(top.Y, clip.Min.Y, clip.Max.Y-1)
	y1 := geom.Clamp(bot.Y, clip.Min.Y, clip.Max.Y-1)
	if top.Y >= clip.Max.Y || bot.Y < clip.Min.Y {
		return
	}
	for y := y0; y <= y1; y++ {
		xa := edgeX(top, bot, y)
		var xb float64
		if y < mid.Y {
			xb = edgeX(top, mid, y)
		} else {
			xb = edgeX(mid, bot, y)
		}
		lo, hi := math.Min(xa, xb), math.Max(xa, xb)
		emit(Span{Y: y, X0: int(math.Floor(lo)), X1: int(math.Ceil(hi))}, clip, fn)
	}
}

// edgeX returns the x coordinate of edge p-q at row y. A horizontal edge
// has no single x per row, so p.X stands in for it.
func edgeX(p, q image.Point, y int) float64 {
	h := q.Y - p.Y
	if h == 0 {
		return float64(p.X)
	}
	return float64(p.X) + float64((q.X-p.X)*(y-p.Y))/float64(h)
}

func emit(s Span, clip image.Rectangle, fn func(Span)) {
	if s.Y < clip.Min.Y || s.Y >= clip.Max.Y {
		return
	}
	if s.X1 < clip.Min.X || s.X0 >= clip.Max.X {
		return
	}
	s.X0 = geom.Clamp(s.X0, clip.Min.X, clip.Max.X-1)
	s.X1 = geom.Clamp(s.X1, clip.Min.X, clip.Max.X-1)
	fn(s)
}
