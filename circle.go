package primitives

import (
	"math"

	"github.com/gogpu/primitives/internal/geom"
)

// DrawCircle draws a circle outline into buf. See Canvas.DrawCircle.
func DrawCircle(buf []uint8, width int, center Point, radius, outlineWidth float64, c Color) {
	cv := borrow(buf, width)
	cv.DrawCircle(center, radius, outlineWidth, c)
}

// DrawCircleFilled draws a filled circle into buf. See Canvas.DrawCircleFilled.
func DrawCircleFilled(buf []uint8, width int, center Point, radius float64, c Color) {
	cv := borrow(buf, width)
	cv.DrawCircleFilled(center, radius, c)
}

// DrawCircle draws the ring of pixels whose distance d from center satisfies
// radius-outlineWidth <= d <= radius. An outline width of radius or more
// fills the whole disc.
func (cv *Canvas) DrawCircle(center Point, radius, outlineWidth float64, c Color) {
	inner := radius - outlineWidth
	cv.disc(center, radius, func(d float64) bool { return d >= inner }, c)
}

// DrawCircleFilled draws every pixel within radius of center.
func (cv *Canvas) DrawCircleFilled(center Point, radius float64, c Color) {
	cv.disc(center, radius, func(float64) bool { return true }, c)
}

// disc tests every integer coordinate of the circle's bounding box, clamped
// to the canvas, and writes those with distance <= radius that also pass keep.
func (cv *Canvas) disc(center Point, radius float64, keep func(d float64) bool, c Color) {
	if !(radius >= 0) || math.IsNaN(center.X) || math.IsNaN(center.Y) {
		return
	}
	if cv.width == 0 || cv.height == 0 {
		return
	}
	lo := center.Sub(Pt(radius, radius)).Trunc()
	hi := center.Add(Pt(radius, radius)).Trunc()
	if hi.X < 0 || hi.Y < 0 || lo.X >= cv.width || lo.Y >= cv.height {
		return
	}
	x0, x1 := geom.Clamp(lo.X, 0, cv.width-1), geom.Clamp(hi.X, 0, cv.width-1)
	y0, y1 := geom.Clamp(lo.Y, 0, cv.height-1), geom.Clamp(hi.Y, 0, cv.height-1)

	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			d := geom.Distance(center.X, center.Y, float64(x), float64(y))
			if d <= radius && keep(d) {
				cv.SetPixel(x, y, c)
			}
		}
	}
}
