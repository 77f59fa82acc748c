package primitives

import (
	"image"
	"math"

	"github.com/gogpu/primitives/internal/geom"
)

// maxCoord bounds the coordinate magnitude the rasterizers accept. Beyond it
// float64 has no fractional part and the line stepper's doubled extents
// would overflow.
const maxCoord = 1 << 52

// Point represents a position in canvas space with fractional coordinates.
type Point struct {
	X, Y float64
}

// Pt is a convenience function to create a Point.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// PtFrom converts an integer point.
func PtFrom(p image.Point) Point {
	return Point{X: float64(p.X), Y: float64(p.Y)}
}

// Add returns the sum of two points (vector addition).
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the difference of two points (vector subtraction).
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Distance returns the distance between two points.
func (p Point) Distance(q Point) float64 {
	return geom.Distance(p.X, p.Y, q.X, q.Y)
}

// Trunc returns the pixel containing p, truncating each coordinate toward
// zero. Every rasterizer converts fractional input this way.
func (p Point) Trunc() image.Point {
	return image.Point{X: int(p.X), Y: int(p.Y)}
}

// drawable reports whether both coordinates are finite and within maxCoord.
func (p Point) drawable() bool {
	return math.Abs(p.X) <= maxCoord && math.Abs(p.Y) <= maxCoord
}

func inRange(v int) bool {
	return -maxCoord <= int64(v) && int64(v) <= maxCoord
}
