package primitives

import (
	"bytes"
	"errors"
	"image"
	"testing"
)

// boxEdges returns the pixels on the border of the inclusive box lo..hi.
func boxEdges(lo, hi image.Point) map[image.Point]bool {
	set := map[image.Point]bool{}
	for x := lo.X; x <= hi.X; x++ {
		set[image.Pt(x, lo.Y)] = true
		set[image.Pt(x, hi.Y)] = true
	}
	for y := lo.Y; y <= hi.Y; y++ {
		set[image.Pt(lo.X, y)] = true
		set[image.Pt(hi.X, y)] = true
	}
	return set
}

func TestDrawSquareOutline(t *testing.T) {
	buf := make([]uint8, 4*50*50)
	cv, err := NewCanvas(buf, 50)
	if err != nil {
		t.Fatalf("NewCanvas() error = %v", err)
	}
	cv.Clear(Black)

	DrawSquare(buf, 50, Pt(25, 25), 10, Green)

	want := boxEdges(image.Pt(20, 20), image.Pt(30, 30))
	if len(want) != 40 {
		t.Fatalf("test setup: %d edge pixels, want 40", len(want))
	}
	assertOnly(t, cv, want, Green, Black)
}

// Every edge must be present; a corner-to-corner diagonal must not.
func TestDrawRectEdgesOnce(t *testing.T) {
	var edges []image.Point
	cv := newBlackCanvas(20, 20)
	cv.DrawRect(image.Pt(2, 3), image.Pt(12, 9), White)
	assertOnly(t, cv, boxEdges(image.Pt(2, 3), image.Pt(12, 9)), White, Black)

	for _, p := range []image.Point{{7, 6}, {5, 5}} {
		if cv.Pixel(p.X, p.Y) != Black {
			edges = append(edges, p)
		}
	}
	if len(edges) > 0 {
		t.Errorf("interior pixels painted: %v", edges)
	}
}

func TestDrawRectCornerOrder(t *testing.T) {
	want := boxEdges(image.Pt(2, 3), image.Pt(12, 9))
	corners := [][2]image.Point{
		{{2, 3}, {12, 9}},
		{{12, 9}, {2, 3}},
		{{12, 3}, {2, 9}},
		{{2, 9}, {12, 3}},
	}
	for _, c := range corners {
		cv := newBlackCanvas(20, 20)
		DrawRect(cv.Data(), 20, c[0], c[1], Red)
		assertOnly(t, cv, want, Red, Black)
	}
}

func TestDrawRectDegenerate(t *testing.T) {
	cv := newBlackCanvas(10, 10)
	cv.DrawRect(image.Pt(4, 4), image.Pt(4, 4), White)
	assertOnly(t, cv, map[image.Point]bool{{4, 4}: true}, White, Black)

	cv = newBlackCanvas(10, 10)
	cv.DrawRect(image.Pt(1, 4), image.Pt(6, 4), White)
	assertOnly(t, cv, boxEdges(image.Pt(1, 4), image.Pt(6, 4)), White, Black)
}

func TestDrawRectFilled(t *testing.T) {
	cv := newBlackCanvas(20, 20)
	DrawRectFilled(cv.Data(), 20, image.Pt(3, 4), image.Pt(7, 5), Blue)
	want := map[image.Point]bool{}
	for y := 4; y <= 5; y++ {
		for x := 3; x <= 7; x++ {
			want[image.Pt(x, y)] = true
		}
	}
	assertOnly(t, cv, want, Blue, Black)
}

func TestDrawRectFilledCornerOrderPanics(t *testing.T) {
	buf := make([]uint8, 4*50*50)
	for i := range buf {
		buf[i] = 0x5a
	}
	before := bytes.Clone(buf)

	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("DrawRectFilled with reversed corners did not panic")
		}
		err, ok := r.(error)
		if !ok || !errors.Is(err, ErrCornerOrder) {
			t.Errorf("panic value = %v, want error wrapping ErrCornerOrder", r)
		}
		if !bytes.Equal(buf, before) {
			t.Error("buffer modified before the panic")
		}
	}()
	DrawRectFilled(buf, 50, image.Pt(5, 5), image.Pt(2, 2), Blue)
}

func TestDrawRectFilledSingleAxisReversedPanics(t *testing.T) {
	for _, c := range [][2]image.Point{{{5, 1}, {2, 9}}, {{1, 9}, {5, 2}}} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("DrawRectFilled(%v, %v) did not panic", c[0], c[1])
				}
			}()
			newBlackCanvas(10, 10).DrawRectFilled(c[0], c[1], White)
		}()
	}
}

func TestDrawSquareFilled(t *testing.T) {
	cv := newBlackCanvas(50, 50)
	cv.DrawSquareFilled(Pt(25, 25), 10, White)
	got := painted(cv, White)
	if len(got) != 121 {
		t.Errorf("painted %d pixels, want 121 (11x11 inclusive box)", len(got))
	}
	for p := range got {
		if p.X < 20 || p.X > 30 || p.Y < 20 || p.Y > 30 {
			t.Errorf("pixel %v outside 20..30", p)
		}
	}
}

// The filled square must cover exactly its own outline plus the interior.
func TestDrawSquareFilledCoversOutline(t *testing.T) {
	for _, side := range []float64{0, 1, 3, 7.5, 12} {
		fill := newBlackCanvas(40, 40)
		fill.DrawSquareFilled(Pt(19.5, 20.2), side, White)
		filled := painted(fill, White)

		outline := newBlackCanvas(40, 40)
		outline.DrawSquare(Pt(19.5, 20.2), side, White)
		for p := range painted(outline, White) {
			if !filled[p] {
				t.Errorf("side %v: outline pixel %v outside fill", side, p)
			}
		}
	}
}

func TestDrawSquareNegativeSide(t *testing.T) {
	cv := newBlackCanvas(10, 10)
	cv.DrawSquare(Pt(5, 5), -4, White)
	cv.DrawSquareFilled(Pt(5, 5), -4, White)
	if n := len(painted(cv, White)); n != 0 {
		t.Errorf("negative side painted %d pixels", n)
	}
}

func TestDrawSquareFilledClipped(t *testing.T) {
	cv := newBlackCanvas(10, 10)
	cv.DrawSquareFilled(Pt(0, 9), 4, White)
	want := map[image.Point]bool{}
	for y := 7; y <= 9; y++ {
		for x := 0; x <= 2; x++ {
			want[image.Pt(x, y)] = true
		}
	}
	assertOnly(t, cv, want, White, Black)
}
