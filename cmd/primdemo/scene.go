package main

import (
	"fmt"
	"image"
	"slices"

	"github.com/gogpu/primitives"
)

// scene draws one demo onto a canvas. Coordinates are laid out for an
// 800x800 canvas; shapes that run past a smaller canvas are clipped.
type scene struct {
	name  string
	draw  func(cv *primitives.Canvas)
	label string
}

var scenes = []scene{
	{name: "circles", draw: drawCircles, label: "circles: outline and filled"},
	{name: "squares", draw: drawSquares, label: "squares: outline and filled"},
	{name: "triangles", draw: drawTriangles, label: "triangles: outline and filled"},
}

// lookupScenes resolves a -scene flag value. "all" selects every scene.
func lookupScenes(name string) ([]scene, error) {
	if name == "all" {
		return scenes, nil
	}
	i := slices.IndexFunc(scenes, func(s scene) bool { return s.name == name })
	if i < 0 {
		return nil, fmt.Errorf("unknown scene %q", name)
	}
	return scenes[i : i+1], nil
}

func drawCircles(cv *primitives.Canvas) {
	cv.DrawCircle(primitives.Pt(200, 200), 120, 1, primitives.White)
	cv.DrawCircleFilled(primitives.Pt(500, 400), 180, primitives.Red)
	cv.DrawCircleFilled(primitives.Pt(100, 690), 150, primitives.Green)
	// Centered off the right edge: only the left part of the ring shows.
	cv.DrawCircle(primitives.Pt(820, 50), 250, 5, primitives.Blue)
}

func drawSquares(cv *primitives.Canvas) {
	cv.DrawSquare(primitives.Pt(200, 200), 120, primitives.White)
	cv.DrawSquareFilled(primitives.Pt(600, 100), 400, primitives.Red)
	cv.DrawSquare(primitives.Pt(100, 700), 300, primitives.Green)
	cv.DrawSquareFilled(primitives.Pt(550, 500), 200, primitives.Blue)
	cv.DrawRect(image.Pt(300, 620), image.Pt(760, 780), primitives.Yellow)
	cv.DrawRectFilled(image.Pt(320, 640), image.Pt(400, 700), primitives.Cyan)
}

func drawTriangles(cv *primitives.Canvas) {
	cv.DrawTriangle(image.Pt(200, 400), image.Pt(300, 200), image.Pt(400, 400), primitives.White)
	cv.DrawTriangleFilled(image.Pt(410, 500), image.Pt(700, 180), image.Pt(430, 430), primitives.Red)
	cv.DrawTriangle(image.Pt(410, 500), image.Pt(700, 180), image.Pt(430, 430), primitives.Blue)
	cv.DrawRegularPolygon(6, primitives.Pt(200, 650), 100, 0, primitives.Magenta)
}
