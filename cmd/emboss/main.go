// seehuhn.de/go/emboss - layered gradient text rendering
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Emboss renders two lines of text as layered gradient artwork and writes
// the result as a PNG file.
//
// Usage:
//
//	emboss [flags] UPPER [LOWER]
//
// The look of the image is controlled by an optional Lua style file (-c);
// individual settings can be overridden on the command line.  With -watch,
// the image is rendered again whenever the style file changes.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"image/png"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gobolditalic"

	"seehuhn.de/go/emboss"
	"seehuhn.de/go/emboss/glyph"
	"seehuhn.de/go/emboss/style"
)

// Version can be set at build time using
//
//	go build -ldflags "-X main.Version=x.y.z"
var Version = "0.1.0-dev"

// defaultLower is used when no second text is given.
const defaultLower = "欲しい!"

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

type settings struct {
	out       string
	stylePath string
	upperFont string
	lowerFont string
	opts      emboss.Options
	set       map[string]bool
	watch     bool
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("emboss", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintln(stderr, "usage: emboss [flags] UPPER [LOWER]")
		fs.PrintDefaults()
	}

	def := emboss.DefaultOptions()
	var s settings
	fs.StringVar(&s.out, "o", "out.png", "output PNG file")
	fs.StringVar(&s.stylePath, "c", "", "Lua style file")
	fs.StringVar(&s.upperFont, "upper-font", "", "font file for the upper text (default Go Bold)")
	fs.StringVar(&s.lowerFont, "lower-font", "", "font file for the lower text (default Go Bold Italic)")
	fs.IntVar(&s.opts.Width, "width", def.Width, "canvas width in pixels")
	fs.IntVar(&s.opts.Height, "height", def.Height, "canvas height in pixels")
	fs.IntVar(&s.opts.LeftMargin, "margin", def.LeftMargin, "left margin of the text in pixels")
	fs.IntVar(&s.opts.Subset, "subset", def.Subset, "horizontal offset of the lower text in pixels")
	fs.Float64Var(&s.opts.FontSize, "size", def.FontSize, "font size in pixels")
	fs.BoolVar(&s.opts.Opaque, "opaque", def.Opaque, "flatten the image onto the background")
	fs.BoolVar(&s.watch, "watch", false, "render again when the style file changes")
	verbose := fs.Bool("v", false, "log debug messages")
	version := fs.Bool("version", false, "print version and exit")
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 1
	}

	if *version {
		fmt.Fprintf(stdout, "emboss version %s\n", Version)
		return 0
	}

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
	emboss.SetLogger(logger)
	defer emboss.SetLogger(nil)

	if fs.NArg() < 1 || fs.NArg() > 2 {
		fs.Usage()
		return 1
	}
	upperText, lowerText := fs.Arg(0), defaultLower
	if fs.NArg() == 2 {
		lowerText = fs.Arg(1)
	}

	s.set = make(map[string]bool)
	fs.Visit(func(f *flag.Flag) { s.set[f.Name] = true })

	if s.watch && s.stylePath == "" {
		logger.Error("-watch needs a style file, use -c")
		return 1
	}

	if err := s.render(upperText, lowerText, logger); err != nil {
		logger.Error("render failed", "error", err)
		if !s.watch {
			return 1
		}
	}
	if !s.watch {
		return 0
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	logger.Info("watching for changes", "file", s.stylePath)
	err := watch(ctx, s.stylePath, defaultDebounce, func() {
		if err := s.render(upperText, lowerText, logger); err != nil {
			logger.Error("render failed", "error", err)
		}
	})
	if err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("watching failed", "error", err)
		return 1
	}
	return 0
}

// load reads the style file, if any, and applies the command line
// settings on top of it.
func (s *settings) load() (*style.Style, error) {
	st := style.Default()
	if s.stylePath != "" {
		var err error
		st, err = style.Load(s.stylePath)
		if err != nil {
			return nil, err
		}
	}

	o := &st.Options
	if s.set["width"] {
		o.Width = s.opts.Width
	}
	if s.set["height"] {
		o.Height = s.opts.Height
	}
	if s.set["margin"] {
		o.LeftMargin = s.opts.LeftMargin
	}
	if s.set["subset"] {
		o.Subset = s.opts.Subset
	}
	if s.set["size"] {
		o.FontSize = s.opts.FontSize
	}
	if s.set["opaque"] {
		o.Opaque = s.opts.Opaque
	}
	if s.upperFont != "" {
		st.UpperFont = s.upperFont
	}
	if s.lowerFont != "" {
		st.LowerFont = s.lowerFont
	}
	return st, nil
}

func (s *settings) render(upperText, lowerText string, logger *slog.Logger) error {
	st, err := s.load()
	if err != nil {
		return err
	}

	upper, err := glyph.ParseFont(gobold.TTF)
	if err != nil {
		return err
	}
	lower, err := glyph.ParseFont(gobolditalic.TTF)
	if err != nil {
		return err
	}
	r, err := st.NewRenderer(upper, lower)
	if err != nil {
		return err
	}

	img, err := r.Render(upperText, lowerText)
	if err != nil {
		return err
	}

	fd, err := os.Create(s.out)
	if err != nil {
		return err
	}
	err = png.Encode(fd, img)
	err2 := fd.Close()
	if err == nil {
		err = err2
	}
	if err != nil {
		return err
	}

	b := img.Bounds()
	logger.Info("image written", "file", s.out, "width", b.Dx(), "height", b.Dy())
	return nil
}
