package primitives

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"os"

	"github.com/gogpu/primitives/internal/geom"
)

// Errors returned by the canvas constructors.
var (
	ErrInvalidWidth = errors.New("primitives: canvas width must be positive")
	ErrBufferSize   = errors.New("primitives: buffer length does not match canvas size")
	ErrStride       = errors.New("primitives: image stride must equal 4*width")
)

// Canvas is a row-major RGBA pixel buffer, 4 bytes per pixel.
//
// A canvas created with NewCanvas borrows the caller's buffer: drawing
// writes straight into it and the canvas never reallocates it.
type Canvas struct {
	width  int
	height int
	data   []uint8 // RGBA format, 4 bytes per pixel
}

// NewCanvas wraps buf as a canvas of the given width.
//
// The height is len(buf)/4/width unless WithHeight supplies it. Without an
// explicit height, len(buf) must be a multiple of 4*width; with one, buf
// must hold at least 4*width*height bytes.
func NewCanvas(buf []uint8, width int, opts ...CanvasOption) (*Canvas, error) {
	o := defaultCanvasOptions()
	for _, opt := range opts {
		opt(&o)
	}

	if width <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidWidth, width)
	}
	rowBytes := 4 * width

	height := o.height
	switch {
	case height < 0:
		if len(buf)%rowBytes != 0 {
			return nil, fmt.Errorf("%w: %d bytes is not a multiple of %d", ErrBufferSize, len(buf), rowBytes)
		}
		height = len(buf) / rowBytes
	case len(buf) < rowBytes*height:
		return nil, fmt.Errorf("%w: %dx%d needs %d bytes, got %d", ErrBufferSize, width, height, rowBytes*height, len(buf))
	}

	return &Canvas{
		width:  width,
		height: height,
		data:   buf[:rowBytes*height],
	}, nil
}

// NewCanvasSize allocates a zeroed (transparent) canvas.
// Negative dimensions are treated as zero.
func NewCanvasSize(width, height int) *Canvas {
	width, height = max(width, 0), max(height, 0)
	return &Canvas{
		width:  width,
		height: height,
		data:   make([]uint8, width*height*4),
	}
}

// NewCanvasFromImage returns a canvas that draws directly into img's pixels.
// Canvas coordinate (0, 0) maps to img.Rect.Min.
func NewCanvasFromImage(img *image.NRGBA) (*Canvas, error) {
	w, h := img.Rect.Dx(), img.Rect.Dy()
	if w <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidWidth, w)
	}
	if img.Stride != 4*w {
		return nil, fmt.Errorf("%w: stride %d, width %d", ErrStride, img.Stride, w)
	}
	return NewCanvas(img.Pix, w, WithHeight(h))
}

// borrow wraps a caller buffer for the package-level draw functions. It
// never fails: a non-positive width yields an empty canvas and a ragged
// tail is ignored, both with a warning.
func borrow(buf []uint8, width int) Canvas {
	if width <= 0 {
		Logger().Warn("primitives: non-positive canvas width, nothing drawn", "width", width)
		return Canvas{}
	}
	rowBytes := 4 * width
	if len(buf)%rowBytes != 0 {
		Logger().Warn("primitives: buffer length is not a whole number of rows",
			"len", len(buf), "width", width)
	}
	height := len(buf) / rowBytes
	return Canvas{width: width, height: height, data: buf[:rowBytes*height]}
}

// WritePixel writes c at (x, y) of a row-major RGBA buffer.
//
// Coordinates outside [0, width) x [0, height), or whose offset would fall
// outside buf, are silently ignored. This is the only place that turns a
// coordinate into a buffer offset.
func WritePixel(buf []uint8, width, height, x, y int, c Color) {
	if x < 0 || y < 0 || x >= width || y >= height {
		return
	}
	i := (y*width + x) * 4
	if i+4 > len(buf) {
		return
	}
	copy(buf[i:i+4], c[:])
}

// Width returns the width of the canvas in pixels.
func (cv *Canvas) Width() int {
	return cv.width
}

// Height returns the height of the canvas in pixels.
func (cv *Canvas) Height() int {
	return cv.height
}

// Data returns the raw pixel data (RGBA format).
func (cv *Canvas) Data() []uint8 {
	return cv.data
}

// SetPixel overwrites a single pixel. Out-of-canvas coordinates are ignored.
func (cv *Canvas) SetPixel(x, y int, c Color) {
	WritePixel(cv.data, cv.width, cv.height, x, y, c)
}

// Pixel returns the color of a single pixel, or Transparent outside the canvas.
func (cv *Canvas) Pixel(x, y int) Color {
	if x < 0 || x >= cv.width || y < 0 || y >= cv.height {
		return Transparent
	}
	i := (y*cv.width + x) * 4
	return Color(cv.data[i : i+4])
}

// Clear fills the entire canvas with a color.
func (cv *Canvas) Clear(c Color) {
	for i := 0; i+4 <= len(cv.data); i += 4 {
		copy(cv.data[i:i+4], c[:])
	}
}

// hline writes the inclusive run x0..x1 on row y, clipped to the canvas.
// It produces the same pixels as a horizontal DrawLine.
func (cv *Canvas) hline(x0, x1, y int, c Color) {
	if x0 > x1 {
		x0, x1 = x1, x0
	}
	if y < 0 || y >= cv.height || x1 < 0 || x0 >= cv.width {
		return
	}
	x0 = geom.Clamp(x0, 0, cv.width-1)
	x1 = geom.Clamp(x1, 0, cv.width-1)
	for x := x0; x <= x1; x++ {
		cv.SetPixel(x, y, c)
	}
}

// fillBox writes every pixel of the inclusive box r.Min..r.Max (Max is
// part of the box, unlike image.Rectangle), clipped to the canvas.
func (cv *Canvas) fillBox(r image.Rectangle, c Color) {
	if r.Min.X > r.Max.X || r.Min.Y > r.Max.Y {
		return
	}
	if r.Max.Y < 0 || r.Min.Y >= cv.height {
		return
	}
	y0 := geom.Clamp(r.Min.Y, 0, cv.height-1)
	y1 := geom.Clamp(r.Max.Y, 0, cv.height-1)
	for y := y0; y <= y1; y++ {
		cv.hline(r.Min.X, r.Max.X, y, c)
	}
}

// ToImage copies the canvas into a new image.NRGBA.
func (cv *Canvas) ToImage() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, cv.width, cv.height))
	copy(img.Pix, cv.data)
	return img
}

// EncodePNG writes the canvas to w as a PNG image.
func (cv *Canvas) EncodePNG(w io.Writer) error {
	return png.Encode(w, cv.ToImage())
}

// SavePNG saves the canvas to a PNG file.
func (cv *Canvas) SavePNG(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	if err := cv.EncodePNG(f); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

// At implements the image.Image interface.
func (cv *Canvas) At(x, y int) color.Color {
	return cv.Pixel(x, y).NRGBA()
}

// Bounds implements the image.Image interface.
func (cv *Canvas) Bounds() image.Rectangle {
	return image.Rect(0, 0, cv.width, cv.height)
}

// ColorModel implements the image.Image interface.
func (cv *Canvas) ColorModel() color.Model {
	return color.NRGBAModel
}

// Set implements the draw.Image interface. Like every other write it
// overwrites the pixel; compositing, if any, is the caller's business.
func (cv *Canvas) Set(x, y int, c color.Color) {
	cv.SetPixel(x, y, FromColor(c))
}
