package primitives

import (
	"errors"
	"fmt"
	"image"
)

// ErrCornerOrder is the panic value (wrapped) of DrawRectFilled when its
// first corner is not at or above-left of the second.
var ErrCornerOrder = errors.New("primitives: rect corners out of order")

// DrawSquare draws a square outline into buf. See Canvas.DrawSquare.
func DrawSquare(buf []uint8, width int, center Point, side float64, c Color) {
	cv := borrow(buf, width)
	cv.DrawSquare(center, side, c)
}

// DrawSquareFilled draws a filled square into buf. See Canvas.DrawSquareFilled.
func DrawSquareFilled(buf []uint8, width int, center Point, side float64, c Color) {
	cv := borrow(buf, width)
	cv.DrawSquareFilled(center, side, c)
}

// DrawRect draws a rectangle outline into buf. See Canvas.DrawRect.
func DrawRect(buf []uint8, width int, c0, c1 image.Point, c Color) {
	cv := borrow(buf, width)
	cv.DrawRect(c0, c1, c)
}

// DrawRectFilled draws a filled rectangle into buf. See Canvas.DrawRectFilled.
func DrawRectFilled(buf []uint8, width int, c0, c1 image.Point, c Color) {
	cv := borrow(buf, width)
	cv.DrawRectFilled(c0, c1, c)
}

// squareCorners returns the inclusive corners of a square, truncating
// center ± side/2 toward zero.
func squareCorners(center Point, side float64) (lo, hi image.Point) {
	half := Pt(side/2, side/2)
	return center.Sub(half).Trunc(), center.Add(half).Trunc()
}

// DrawSquare draws the four edges of the square centered at center.
// A negative or NaN side, or a non-finite center, draws nothing.
func (cv *Canvas) DrawSquare(center Point, side float64, c Color) {
	if !(side >= 0) || !center.drawable() || !Pt(side, side).drawable() {
		return
	}
	lo, hi := squareCorners(center, side)
	cv.DrawRect(lo, hi, c)
}

// DrawSquareFilled draws every pixel of the square centered at center,
// edges included. A negative or NaN side, or a non-finite center, draws
// nothing.
func (cv *Canvas) DrawSquareFilled(center Point, side float64, c Color) {
	if !(side >= 0) || !center.drawable() || !Pt(side, side).drawable() {
		return
	}
	lo, hi := squareCorners(center, side)
	cv.fillBox(image.Rectangle{Min: lo, Max: hi}, c)
}

// DrawRect draws the four edges of the rectangle with opposite corners c0
// and c1, given in any order. Each edge is drawn once: top, right, bottom,
// then left.
func (cv *Canvas) DrawRect(c0, c1 image.Point, c Color) {
	lo := image.Pt(min(c0.X, c1.X), min(c0.Y, c1.Y))
	hi := image.Pt(max(c0.X, c1.X), max(c0.Y, c1.Y))
	cv.closedPath([]image.Point{
		lo,
		{X: hi.X, Y: lo.Y},
		hi,
		{X: lo.X, Y: hi.Y},
	}, c)
}

// DrawRectFilled fills the rectangle from c0 to c1, both inclusive.
//
// c0 must not lie right of or below c1. Violating that is a programming
// error: DrawRectFilled panics with an error wrapping ErrCornerOrder and
// leaves the canvas untouched.
func (cv *Canvas) DrawRectFilled(c0, c1 image.Point, c Color) {
	if c0.X > c1.X || c0.Y > c1.Y {
		err := fmt.Errorf("%w: %v is not <= %v", ErrCornerOrder, c0, c1)
		Logger().Error("primitives: DrawRectFilled", "err", err)
		panic(err)
	}
	cv.fillBox(image.Rectangle{Min: c0, Max: c1}, c)
}
