package primitives

import (
	"image"
	"testing"
)

const benchSize = 800

func BenchmarkWritePixel(b *testing.B) {
	buf := make([]uint8, 4*benchSize*benchSize)
	b.ReportAllocs()
	for i := 0; b.Loop(); i++ {
		WritePixel(buf, benchSize, benchSize, i%benchSize, (i/benchSize)%benchSize, White)
	}
}

func BenchmarkDrawLine(b *testing.B) {
	cv := NewCanvasSize(benchSize, benchSize)
	lines := []struct {
		name   string
		p0, p1 Point
	}{
		{"horizontal", Pt(0, 400), Pt(799, 400)},
		{"diagonal", Pt(0, 0), Pt(799, 799)},
		{"steep", Pt(200, 0), Pt(300, 799)},
	}
	for _, l := range lines {
		b.Run(l.name, func(b *testing.B) {
			for b.Loop() {
				cv.DrawLine(l.p0, l.p1, White)
			}
		})
	}
}

func BenchmarkDrawCircleFilled(b *testing.B) {
	cv := NewCanvasSize(benchSize, benchSize)
	for _, r := range []struct {
		name   string
		radius float64
	}{{"r10", 10}, {"r50", 50}, {"r200", 200}} {
		b.Run(r.name, func(b *testing.B) {
			for b.Loop() {
				cv.DrawCircleFilled(Pt(400, 400), r.radius, White)
			}
		})
	}
}

func BenchmarkDrawSquareFilled(b *testing.B) {
	cv := NewCanvasSize(benchSize, benchSize)
	for b.Loop() {
		cv.DrawSquareFilled(Pt(200, 200), 100, White)
	}
}

func BenchmarkDrawTriangleFilled(b *testing.B) {
	cv := NewCanvasSize(benchSize, benchSize)
	for b.Loop() {
		cv.DrawTriangleFilled(image.Pt(410, 500), image.Pt(700, 180), image.Pt(430, 430), Red)
	}
}
