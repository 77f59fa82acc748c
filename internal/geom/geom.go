// Package geom holds the small numeric helpers shared by the rasterizers:
// point distance, a stable three-element sort and a generic clamp.
package geom

import (
	"math"

	"golang.org/x/exp/constraints"
	"gonum.org/v1/gonum/spatial/r2"
)

// Clamp restricts v to the closed range [lo, hi].
// The result is undefined if lo > hi.
func Clamp[T constraints.Ordered](v, lo, hi T) T {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// DistanceSquared returns the squared Euclidean distance between
// (x0, y0) and (x1, y1).
func DistanceSquared(x0, y0, x1, y1 float64) float64 {
	return r2.Norm2(r2.Sub(r2.Vec{X: x1, Y: y1}, r2.Vec{X: x0, Y: y0}))
}

// Distance returns the Euclidean distance between (x0, y0) and (x1, y1).
//
// It is computed as sqrt(dx*dx + dy*dy) rather than with math.Hypot so that
// integer inputs produce a correctly rounded result: Distance(...) <= r
// holds exactly when dx*dx + dy*dy <= r*r for integer r.
func Distance(x0, y0, x1, y1 float64) float64 {
	return math.Sqrt(DistanceSquared(x0, y0, x1, y1))
}

// Sort3 returns a, b and c ordered ascending by key. The sort is stable:
// elements with equal keys keep their argument order.
func Sort3[T any, K constraints.Ordered](a, b, c T, key func(T) K) (T, T, T) {
	if key(b) < key(a) {
		a, b = b, a
	}
	if key(c) < key(b) {
		b, c = c, b
	}
	if key(b) < key(a) {
		a, b = b, a
	}
	return a, b, c
}
