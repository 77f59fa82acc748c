package primitives

import (
	"image"

	"github.com/gogpu/primitives/internal/raster"
)

// DrawTriangle draws a triangle outline into buf. See Canvas.DrawTriangle.
func DrawTriangle(buf []uint8, width int, v0, v1, v2 image.Point, c Color) {
	cv := borrow(buf, width)
	cv.DrawTriangle(v0, v1, v2, c)
}

// DrawTriangleFilled draws a filled triangle into buf. See Canvas.DrawTriangleFilled.
func DrawTriangleFilled(buf []uint8, width int, v0, v1, v2 image.Point, c Color) {
	cv := borrow(buf, width)
	cv.DrawTriangleFilled(v0, v1, v2, c)
}

// DrawTriangle draws the edges v0-v1, v1-v2 and v2-v0.
func (cv *Canvas) DrawTriangle(v0, v1, v2 image.Point, c Color) {
	cv.closedPath([]image.Point{v0, v1, v2}, c)
}

// DrawTriangleFilled fills the triangle v0 v1 v2 one row at a time.
//
// Each row is widened outward to whole pixels, so the fill always covers
// the vertices and any axis-aligned or 45 degree edge of the matching
// outline. Along shallow slanted edges the Bresenham outline may still
// poke out by part of a run. Triangles whose vertices share a row never
// divide by zero; a fully flat triangle fills a single row.
func (cv *Canvas) DrawTriangleFilled(v0, v1, v2 image.Point, c Color) {
	if v0.Y == v1.Y || v1.Y == v2.Y || v0.Y == v2.Y {
		Logger().Debug("primitives: triangle with a horizontal edge",
			"v0", v0, "v1", v1, "v2", v2)
	}
	raster.TriangleSpans(v0, v1, v2, cv.Bounds(), func(s raster.Span) {
		cv.hline(s.X0, s.X1, s.Y, c)
	})
}
