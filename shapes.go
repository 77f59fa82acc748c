package primitives

import (
	"image"
	"math"
)

// DrawPolygon draws a closed polygon outline into buf. See Canvas.DrawPolygon.
func DrawPolygon(buf []uint8, width int, points []Point, c Color) {
	cv := borrow(buf, width)
	cv.DrawPolygon(points, c)
}

// DrawRegularPolygon draws a regular polygon outline into buf.
// See Canvas.DrawRegularPolygon.
func DrawRegularPolygon(buf []uint8, width, n int, center Point, r, rotation float64, c Color) {
	cv := borrow(buf, width)
	cv.DrawRegularPolygon(n, center, r, rotation, c)
}

// DrawPolygon draws lines between consecutive points and from the last
// point back to the first. Only the outline is drawn. If any point is NaN,
// infinite or out of range, nothing is drawn.
func (cv *Canvas) DrawPolygon(points []Point, c Color) {
	pts := make([]image.Point, len(points))
	for i, p := range points {
		if !p.drawable() {
			Logger().Warn("primitives: polygon vertex not drawable", "index", i, "point", p)
			return
		}
		pts[i] = p.Trunc()
	}
	cv.closedPath(pts, c)
}

// DrawRegularPolygon draws the outline of a regular polygon with n sides
// inscribed in a circle of radius r. The first vertex sits at angle
// rotation (radians, clockwise on screen since y grows downward).
// Fewer than three sides, or a non-finite center, radius or rotation,
// draws nothing.
func (cv *Canvas) DrawRegularPolygon(n int, center Point, r, rotation float64, c Color) {
	if n < 3 {
		return
	}
	angle := 2.0 * math.Pi / float64(n)
	pts := make([]Point, n)
	for i := range n {
		a := rotation + angle*float64(i)
		pts[i] = Pt(center.X+r*math.Cos(a), center.Y+r*math.Sin(a))
	}
	cv.DrawPolygon(pts, c)
}

// closedPath draws every edge of the closed path through pts exactly once.
func (cv *Canvas) closedPath(pts []image.Point, c Color) {
	switch len(pts) {
	case 0:
		return
	case 1:
		cv.line(pts[0].X, pts[0].Y, pts[0].X, pts[0].Y, c)
		return
	case 2:
		cv.line(pts[0].X, pts[0].Y, pts[1].X, pts[1].Y, c)
		return
	}
	for i, p := range pts {
		q := pts[(i+1)%len(pts)]
		cv.line(p.X, p.Y, q.X, q.Y, c)
	}
}
