package main

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"

	"golang.org/x/image/bmp"
	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/primitives"
)

// drawLabel writes text in the top-left corner of the canvas. The canvas
// is a draw.Image, so x/image/font renders straight into it.
func drawLabel(cv *primitives.Canvas, text string, c primitives.Color) {
	face := basicfont.Face7x13
	d := &font.Drawer{
		Dst:  cv,
		Src:  image.NewUniform(c),
		Face: face,
		Dot:  fixed.P(8, 8+face.Ascent),
	}
	d.DrawString(text)
}

// present returns the image to encode: the canvas itself, or a
// nearest-neighbor enlargement when scale > 1.
func present(cv *primitives.Canvas, scale int) image.Image {
	if scale <= 1 {
		return cv
	}
	dst := image.NewNRGBA(image.Rect(0, 0, cv.Width()*scale, cv.Height()*scale))
	xdraw.NearestNeighbor.Scale(dst, dst.Bounds(), cv, cv.Bounds(), xdraw.Src, nil)
	return dst
}

// encode writes img to w in the named format.
func encode(w io.Writer, img image.Image, format string) error {
	switch format {
	case "png":
		return png.Encode(w, img)
	case "bmp":
		return bmp.Encode(w, img)
	default:
		return fmt.Errorf("unsupported format %q (want png or bmp)", format)
	}
}

// countPainted returns how many pixels differ from bg.
func countPainted(img image.Image, bg color.Color) int {
	want := primitives.FromColor(bg)
	b := img.Bounds()
	n := 0
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if primitives.FromColor(img.At(x, y)) != want {
				n++
			}
		}
	}
	return n
}
