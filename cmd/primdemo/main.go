// Command primdemo renders the primitives demo scenes into an image file.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/gogpu/primitives"
)

type config struct {
	width, height int
	scene         string
	output        string
	format        string
	scale         int
	labels        bool
	background    primitives.Color
	verbose       bool
}

func parseFlags(args []string) (config, error) {
	var (
		cfg config
		bg  string
	)
	fs := flag.NewFlagSet("primdemo", flag.ContinueOnError)
	fs.IntVar(&cfg.width, "width", 800, "canvas width")
	fs.IntVar(&cfg.height, "height", 800, "canvas height")
	fs.StringVar(&cfg.scene, "scene", "all", "scene to draw: circles, squares, triangles or all")
	fs.StringVar(&cfg.output, "output", "primitives.png", "output file")
	fs.StringVar(&cfg.format, "format", "png", "output format: png or bmp")
	fs.IntVar(&cfg.scale, "scale", 1, "integer upscale factor (nearest neighbor)")
	fs.BoolVar(&cfg.labels, "labels", true, "caption each scene")
	fs.StringVar(&bg, "bg", "#000", "background color as RGB, RGBA, RRGGBB or RRGGBBAA hex")
	fs.BoolVar(&cfg.verbose, "v", false, "enable debug logging")
	if err := fs.Parse(args); err != nil {
		return config{}, err
	}
	if cfg.width <= 0 || cfg.height <= 0 {
		return config{}, fmt.Errorf("invalid canvas size %dx%d", cfg.width, cfg.height)
	}
	if cfg.scale < 1 {
		return config{}, fmt.Errorf("invalid scale %d", cfg.scale)
	}
	var err error
	if cfg.background, err = primitives.ParseHex(bg); err != nil {
		return config{}, err
	}
	return cfg, nil
}

func main() {
	cfg, err := parseFlags(os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "primdemo:", err)
		os.Exit(2)
	}

	level := slog.LevelInfo
	if cfg.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	primitives.SetLogger(logger)

	if err := run(cfg, os.Stdout); err != nil {
		logger.Error("primdemo failed", "err", err)
		os.Exit(1)
	}
}

// run stacks the selected scenes vertically, one width x height tile each,
// and writes the result to cfg.output.
func run(cfg config, stdout io.Writer) error {
	selected, err := lookupScenes(cfg.scene)
	if err != nil {
		return err
	}

	frame := make([]uint8, cfg.width*cfg.height*len(selected)*4)
	cv, err := primitives.NewCanvas(frame, cfg.width, primitives.WithHeight(cfg.height*len(selected)))
	if err != nil {
		return err
	}
	cv.Clear(cfg.background)

	for i, s := range selected {
		tile, err := primitives.NewCanvas(frame[i*cfg.width*cfg.height*4:], cfg.width, primitives.WithHeight(cfg.height))
		if err != nil {
			return err
		}
		s.draw(tile)
		if cfg.labels {
			drawLabel(tile, s.label, primitives.Yellow)
		}
		primitives.Logger().Info("scene drawn", "scene", s.name)
	}

	f, err := os.Create(cfg.output) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	img := present(cv, cfg.scale)
	if err := encode(f, img, cfg.format); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}

	p := message.NewPrinter(language.English)
	b := img.Bounds()
	_, err = p.Fprintf(stdout, "%s: %dx%d, %d of %d pixels painted\n",
		cfg.output, b.Dx(), b.Dy(), countPainted(cv, cfg.background), cv.Width()*cv.Height())
	return err
}
