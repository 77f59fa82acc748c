// Package raster turns primitive geometry into integer pixel coordinates.
//
// Everything here is pure: the steppers and sweeps yield coordinates and
// never touch a pixel buffer. The root package feeds their output through
// its bounds-checked pixel write.
package raster

import (
	"image"
	"math/bits"
)

// axes maps between (x, y) and (major, minor) coordinates of a line.
// A steep line steps along y, so its major axis is y.
type axes struct {
	steep bool
}

func (a axes) split(x, y int) (major, minor int) {
	if a.steep {
		return y, x
	}
	return x, y
}

func (a axes) join(major, minor int) (x, y int) {
	if a.steep {
		return minor, major
	}
	return major, minor
}

// Line is a Bresenham stepper over the pixels of a segment.
//
// Both endpoints are included, so a zero-length segment yields exactly one
// pixel. The stepper always walks in increasing major-axis order, which
// makes Line(a, b) and Line(b, a) yield the same pixels.
type Line struct {
	axes axes

	major, last int // current and final major coordinate
	minor       int
	step        int // minor direction: -1, 0 or +1

	dmajor  int // major extent, >= 0
	dminor2 int // doubled absolute minor extent
	err     int // doubled error term

	done bool
}

// NewLine returns a stepper from (x0, y0) to (x1, y1).
func NewLine(x0, y0, x1, y1 int) Line {
	ax := axes{steep: abs(x1-x0) < abs(y1-y0)}

	m0, n0 := ax.split(x0, y0)
	m1, n1 := ax.split(x1, y1)
	if m0 > m1 {
		m0, m1 = m1, m0
		n0, n1 = n1, n0
	}

	step := 0
	switch {
	case n1 > n0:
		step = 1
	case n1 < n0:
		step = -1
	}

	return Line{
		axes:    ax,
		major:   m0,
		last:    m1,
		minor:   n0,
		step:    step,
		dmajor:  m1 - m0,
		dminor2: abs(n1-n0) * 2,
	}
}

// NewLineClip returns a stepper over the pixels of the segment from
// (x0, y0) to (x1, y1) whose major coordinate lies inside clip. It yields
// exactly those pixels of NewLine(x0, y0, x1, y1), but the number of steps
// is bounded by the clip extent instead of the segment length.
func NewLineClip(x0, y0, x1, y1 int, clip image.Rectangle) Line {
	l := NewLine(x0, y0, x1, y1)
	lo, hi := clip.Min.X, clip.Max.X-1
	if l.axes.steep {
		lo, hi = clip.Min.Y, clip.Max.Y-1
	}
	l.last = min(l.last, hi)
	switch {
	case l.major > l.last, lo > l.last:
		l.done = true
	case l.major < lo:
		l.skip(lo - l.major)
	}
	return l
}

// skip moves a fresh stepper k > 0 pixels forward in closed form.
//
// After k steps the error term has absorbed k*dminor2 and the minor axis
// has moved q times, where q is the unique count that keeps the error in
// (-dmajor, dmajor]. The product may exceed 64 bits.
func (l *Line) skip(k int) {
	hi, lo := bits.Mul64(uint64(k), uint64(l.dminor2))
	lo, carry := bits.Add64(lo, uint64(l.dmajor-1), 0)
	q, rem := bits.Div64(hi+carry, lo, uint64(l.dmajor)*2)
	l.major += k
	l.minor += l.step * int(q)
	l.err = int(rem) - (l.dmajor - 1)
}

// Len returns the number of pixels the stepper has left to yield.
func (l *Line) Len() int {
	if l.done {
		return 0
	}
	return l.last - l.major + 1
}

// Next returns the next pixel of the line. ok is false once every pixel
// has been returned.
func (l *Line) Next() (x, y int, ok bool) {
	if l.done {
		return 0, 0, false
	}
	x, y = l.axes.join(l.major, l.minor)

	if l.major == l.last {
		l.done = true
		return x, y, true
	}
	l.major++
	l.err += l.dminor2
	if l.err > l.dmajor {
		l.minor += l.step
		l.err -= l.dmajor * 2
	}
	return x, y, true
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
